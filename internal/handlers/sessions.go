// Copyright (c) 2026 Front-Fusion Labs <hello@frontfusion.dev>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"frontfusion/internal/apperr"
	"frontfusion/internal/middleware"
	"frontfusion/internal/models"
	"frontfusion/internal/store"
)

// Sessions serves the per-owner session CRUD endpoints. Every handler is
// scoped to the authenticated owner taken from the request context; a
// session belonging to someone else is indistinguishable from one that
// does not exist.
type Sessions struct {
	store *store.SessionStore
}

func NewSessions(st *store.SessionStore) *Sessions {
	return &Sessions{store: st}
}

type saveSessionRequest struct {
	Name         string            `json:"name"`
	Files        map[string]string `json:"files"`
	Framework    models.Framework  `json:"framework"`
	Prompt       string            `json:"prompt"`
	ActiveFile   string            `json:"active_file"`
	HasGenerated bool              `json:"has_generated"`
}

// Save creates a new named session for the authenticated owner.
func (h *Sessions) Save(w http.ResponseWriter, r *http.Request) {
	var req saveSessionRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, err)
		return
	}
	sess, err := h.store.Create(&models.Session{
		OwnerID:      middleware.OwnerFromCtx(r.Context()),
		Name:         req.Name,
		Files:        req.Files,
		Framework:    req.Framework,
		Prompt:       req.Prompt,
		ActiveFile:   req.ActiveFile,
		HasGenerated: req.HasGenerated,
	})
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, map[string]any{
		"message": "Session saved successfully",
		"session": sess,
	})
}

// List returns the owner's sessions as summaries, newest first. File
// contents are deliberately omitted from the projection.
func (h *Sessions) List(w http.ResponseWriter, r *http.Request) {
	sessions, err := h.store.List(middleware.OwnerFromCtx(r.Context()))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"sessions": sessions})
}

// Get returns a single session with its full file set.
func (h *Sessions) Get(w http.ResponseWriter, r *http.Request) {
	id, err := sessionID(r)
	if err != nil {
		writeError(w, err)
		return
	}
	sess, err := h.store.FindByID(middleware.OwnerFromCtx(r.Context()), id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"session": sess})
}

type updateSessionRequest struct {
	Name         *string           `json:"name"`
	Files        map[string]string `json:"files"`
	Framework    *models.Framework `json:"framework"`
	Prompt       *string           `json:"prompt"`
	ActiveFile   *string           `json:"active_file"`
	HasGenerated *bool             `json:"has_generated"`
}

// Update applies a partial update. Pointer fields distinguish an absent
// key from an explicit zero value, so a client can clear active_file by
// sending an empty string.
func (h *Sessions) Update(w http.ResponseWriter, r *http.Request) {
	id, err := sessionID(r)
	if err != nil {
		writeError(w, err)
		return
	}
	var req updateSessionRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, err)
		return
	}
	sess, err := h.store.Update(middleware.OwnerFromCtx(r.Context()), id, store.SessionUpdate{
		Name:         req.Name,
		Files:        req.Files,
		Framework:    req.Framework,
		Prompt:       req.Prompt,
		ActiveFile:   req.ActiveFile,
		HasGenerated: req.HasGenerated,
	})
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"message": "Session updated successfully",
		"session": sess,
	})
}

// Delete removes a session permanently.
func (h *Sessions) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := sessionID(r)
	if err != nil {
		writeError(w, err)
		return
	}
	if err := h.store.Delete(middleware.OwnerFromCtx(r.Context()), id); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "Session deleted successfully"})
}

func sessionID(r *http.Request) (uuid.UUID, error) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		return uuid.Nil, apperr.New(apperr.Validation, "Invalid session id")
	}
	return id, nil
}
