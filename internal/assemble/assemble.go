// Copyright (c) 2026 Front-Fusion Labs <hello@frontfusion.dev>
// All rights reserved. See LICENSE for details.

// Package assemble turns a single generated source file into the complete
// file set for the chosen output mode. Plain Tailwind output is a single
// markup file; React output wraps the generated component in a fixed
// Vite + Tailwind project scaffold. The scaffold files are constants:
// they never vary with the prompt and are never passed through the theme
// rewriter — only the primary file carries generated content.
package assemble

import "frontfusion/internal/models"

// File paths within an assembled set.
const (
	// PrimaryMarkupFile is the single output of plain Tailwind mode.
	PrimaryMarkupFile = "index.html"

	// ComponentEntryFile holds the generated component in React mode.
	ComponentEntryFile = "src/App.jsx"

	// BundleEntryFile is the fixed entry point the bundler compiles.
	BundleEntryFile = "src/main.jsx"
)

// Assemble produces the file set for primary generated content in the
// given output mode. It is a pure function: no filesystem access, and the
// returned map is freshly allocated on every call.
func Assemble(primary string, fw models.Framework) map[string]string {
	if !fw.IsComponent() {
		return map[string]string{PrimaryMarkupFile: primary}
	}

	files := make(map[string]string, len(scaffoldFiles)+1)
	files[ComponentEntryFile] = primary
	for path, content := range scaffoldFiles {
		files[path] = content
	}
	return files
}

// Primary returns the path of the human-authored file in a set assembled
// for the given mode.
func Primary(fw models.Framework) string {
	if fw.IsComponent() {
		return ComponentEntryFile
	}
	return PrimaryMarkupFile
}
