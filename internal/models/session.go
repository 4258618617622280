// Copyright (c) 2026 Front-Fusion Labs <hello@frontfusion.dev>
// All rights reserved. See LICENSE for details.

// Package models defines the data structures that map to database tables
// and provides the core types used throughout the application.
package models

import (
	"time"

	"github.com/google/uuid"
)

// Framework selects the output mode of a generation: plain Tailwind markup,
// a React component project, or both combined.
type Framework string

const (
	FrameworkTailwind Framework = "tailwind"
	FrameworkReact    Framework = "react"
	FrameworkBoth     Framework = "both"
)

// Valid reports whether f is one of the known output modes.
func (f Framework) Valid() bool {
	switch f {
	case FrameworkTailwind, FrameworkReact, FrameworkBoth:
		return true
	}
	return false
}

// IsComponent reports whether the framework produces a multi-file React
// project rather than a single markup file.
func (f Framework) IsComponent() bool {
	return f == FrameworkReact || f == FrameworkBoth
}

// Session is a named, owner-scoped snapshot of a generation: the prompt,
// the produced file set, the chosen output mode, and the UI cursor state.
// Names are unique per owner; every query against sessions is scoped to
// OwnerID so records never leak across tenants.
type Session struct {
	ID      uuid.UUID `json:"id"`
	OwnerID uuid.UUID `json:"-"`
	Name    string    `json:"name"`

	// Files maps file path to file content. The content is owner-controlled
	// free text; the store only performs shape and size validation on it.
	Files     map[string]string `json:"files"`
	Framework Framework         `json:"framework"`
	Prompt    string            `json:"prompt"`

	// ActiveFile is a UI-state hint naming the file the editor had open.
	// It is not validated against Files at write time; a dangling reference
	// resolves to "no active file" when the session is loaded.
	ActiveFile   string `json:"active_file"`
	HasGenerated bool   `json:"has_generated"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// SessionSummary is the projection returned by list views. The full files
// payload is withheld from listings for payload-size reasons.
type SessionSummary struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Framework Framework `json:"framework"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
