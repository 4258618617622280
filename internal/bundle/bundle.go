// Copyright (c) 2026 Front-Fusion Labs <hello@frontfusion.dev>
// All rights reserved. See LICENSE for details.

// Package bundle compiles a generated multi-file project into a single
// previewable artifact. Each compile stages the file set in its own
// uniquely named temporary workspace, runs esbuild against the fixed
// entry point with the output kept in memory, and removes the workspace
// unconditionally — on the success path and on every failure path.
// Unique per-invocation directories make concurrent compiles safe; a
// semaphore additionally bounds how many run at once since bundling is
// CPU-heavy.
package bundle

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/evanw/esbuild/pkg/api"
	"github.com/google/uuid"

	"frontfusion/internal/apperr"
	"frontfusion/internal/assemble"
)

// workspacePrefix names compile workspaces under the system temp dir.
const workspacePrefix = "frontfusion-compile-"

// DefaultConcurrency is the default bound on simultaneous compiles.
const DefaultConcurrency = 4

// Compiler stages file sets and runs the build toolchain.
type Compiler struct {
	tempRoot string
	sem      chan struct{}
}

// New creates a Compiler that allows up to concurrency simultaneous
// builds. Zero or negative values fall back to DefaultConcurrency.
func New(concurrency int) *Compiler {
	if concurrency <= 0 {
		concurrency = DefaultConcurrency
	}
	return &Compiler{
		tempRoot: os.TempDir(),
		sem:      make(chan struct{}, concurrency),
	}
}

// Compile writes the file set to a fresh workspace, bundles the entry
// point, and returns the compiled JavaScript. Toolchain failures are
// returned as structured errors carrying the toolchain's message; they
// never panic past this boundary.
func (c *Compiler) Compile(ctx context.Context, files map[string]string) (string, error) {
	if len(files) == 0 {
		return "", apperr.New(apperr.Validation, "No files to compile")
	}
	if _, ok := files[assemble.BundleEntryFile]; !ok {
		return "", apperr.New(apperr.Validation, "Missing entry point "+assemble.BundleEntryFile)
	}

	select {
	case c.sem <- struct{}{}:
		defer func() { <-c.sem }()
	case <-ctx.Done():
		return "", apperr.Wrap(apperr.Internal, "Compile cancelled", ctx.Err())
	}

	// One directory per invocation; the uuid removes any chance of two
	// concurrent compiles sharing a workspace.
	workspace := filepath.Join(c.tempRoot, workspacePrefix+uuid.NewString())
	defer func() {
		if err := os.RemoveAll(workspace); err != nil {
			slog.Error("workspace cleanup failed", "workspace", workspace, "error", err)
		}
	}()

	if err := stageFiles(workspace, files); err != nil {
		return "", apperr.Wrap(apperr.Internal, "Failed to prepare compile workspace", err)
	}

	result := api.Build(api.BuildOptions{
		AbsWorkingDir: workspace,
		EntryPoints:   []string{filepath.Join(workspace, assemble.BundleEntryFile)},
		Bundle:        true,
		Write:         false,
		Format:        api.FormatESModule,
		// Bare imports (react, react-dom) stay external: the preview shim
		// resolves them from a CDN, and the workspace has no node_modules.
		Packages: api.PackagesExternal,
		Loader: map[string]api.Loader{
			".jsx": api.LoaderJSX,
			".js":  api.LoaderJSX,
			".css": api.LoaderCSS,
		},
		LogLevel: api.LogLevelSilent,
	})

	if len(result.Errors) > 0 {
		msg := formatBuildErrors(result.Errors)
		slog.Warn("bundle compile failed", "workspace", workspace, "detail", msg)
		return "", apperr.New(apperr.Upstream, "Compilation failed: "+msg)
	}

	for _, out := range result.OutputFiles {
		if strings.HasSuffix(out.Path, ".js") {
			return string(out.Contents), nil
		}
	}
	if len(result.OutputFiles) > 0 {
		return string(result.OutputFiles[0].Contents), nil
	}
	return "", apperr.New(apperr.Upstream, "Compilation produced no output")
}

// stageFiles writes every file in the set under the workspace, creating
// parent directories as needed. Paths are cleaned and confined to the
// workspace so a hostile file name cannot escape it.
func stageFiles(workspace string, files map[string]string) error {
	for name, content := range files {
		rel := filepath.Clean(filepath.FromSlash(name))
		if rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) || filepath.IsAbs(rel) {
			return fmt.Errorf("file path %q escapes workspace", name)
		}
		path := filepath.Join(workspace, rel)
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return fmt.Errorf("create dir for %s: %w", name, err)
		}
		if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
			return fmt.Errorf("write %s: %w", name, err)
		}
	}
	return nil
}

// formatBuildErrors flattens esbuild messages into one diagnostic string.
func formatBuildErrors(msgs []api.Message) string {
	parts := make([]string, 0, len(msgs))
	for _, m := range msgs {
		if m.Location != nil {
			parts = append(parts, fmt.Sprintf("%s:%d: %s", m.Location.File, m.Location.Line, m.Text))
			continue
		}
		parts = append(parts, m.Text)
	}
	return strings.Join(parts, "; ")
}
