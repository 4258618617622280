// Copyright (c) 2026 Front-Fusion Labs <hello@frontfusion.dev>
// All rights reserved. See LICENSE for details.

// Package store persists sessions in PostgreSQL. Every query is scoped to
// the owning account: a session that exists but belongs to another owner
// is indistinguishable from one that does not exist.
package store

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"

	"frontfusion/internal/apperr"
	"frontfusion/internal/models"
)

// maxFileLen bounds a single file's content; the store performs no other
// interpretation of file text beyond the executable-payload guard.
const maxFileLen = 500_000

// SessionStore handles all session database operations.
type SessionStore struct {
	db *sql.DB
}

// NewSessionStore creates a new SessionStore with the given connection.
func NewSessionStore(db *sql.DB) *SessionStore {
	return &SessionStore{db: db}
}

// sessionColumns lists the columns selected in session queries.
const sessionColumns = `id, owner_id, name, files, framework, prompt, active_file, has_generated, created_at, updated_at`

// scanSession scans a full session row, decoding the files JSON payload.
func scanSession(scanner interface{ Scan(...any) error }) (*models.Session, error) {
	var s models.Session
	var files []byte
	err := scanner.Scan(
		&s.ID, &s.OwnerID, &s.Name, &files, &s.Framework,
		&s.Prompt, &s.ActiveFile, &s.HasGenerated, &s.CreatedAt, &s.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	if err := json.Unmarshal(files, &s.Files); err != nil {
		return nil, fmt.Errorf("decode files: %w", err)
	}
	return &s, nil
}

// Create inserts a new session for the owner. The (owner_id, name) unique
// index is the authoritative conflict check; the pre-insert lookup only
// exists to return a friendlier error on the common path, since a
// concurrent create can still slip between check and insert.
func (s *SessionStore) Create(sess *models.Session) (*models.Session, error) {
	sess.Name = strings.TrimSpace(sess.Name)
	if err := validateSession(sess); err != nil {
		return nil, err
	}

	exists, err := s.nameExists(sess.OwnerID, sess.Name, uuid.Nil)
	if err != nil {
		return nil, apperr.Wrap(apperr.Internal, "Failed to save session", err)
	}
	if exists {
		return nil, apperr.New(apperr.Conflict, "Session name already exists")
	}

	files, err := json.Marshal(sess.Files)
	if err != nil {
		return nil, apperr.Wrap(apperr.Internal, "Failed to save session", err)
	}

	row := s.db.QueryRow(`
		INSERT INTO sessions (owner_id, name, files, framework, prompt, active_file, has_generated)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING `+sessionColumns,
		sess.OwnerID, sess.Name, files, sess.Framework,
		sess.Prompt, sess.ActiveFile, sess.HasGenerated,
	)
	created, err := scanSession(row)
	if isUniqueViolation(err) {
		return nil, apperr.New(apperr.Conflict, "Session name already exists")
	}
	if err != nil {
		return nil, apperr.Wrap(apperr.Internal, "Failed to save session", err)
	}
	return created, nil
}

// List returns the owner's sessions newest first, projected to summary
// fields. The files payload is withheld from list views.
func (s *SessionStore) List(ownerID uuid.UUID) ([]models.SessionSummary, error) {
	rows, err := s.db.Query(`
		SELECT id, name, framework, created_at, updated_at
		FROM sessions
		WHERE owner_id = $1
		ORDER BY created_at DESC
	`, ownerID)
	if err != nil {
		return nil, apperr.Wrap(apperr.Internal, "Failed to fetch sessions", err)
	}
	defer rows.Close()

	var items []models.SessionSummary
	for rows.Next() {
		var sum models.SessionSummary
		if err := rows.Scan(&sum.ID, &sum.Name, &sum.Framework, &sum.CreatedAt, &sum.UpdatedAt); err != nil {
			return nil, apperr.Wrap(apperr.Internal, "Failed to fetch sessions", err)
		}
		items = append(items, sum)
	}
	if err := rows.Err(); err != nil {
		return nil, apperr.Wrap(apperr.Internal, "Failed to fetch sessions", err)
	}
	return items, nil
}

// FindByID retrieves a session by id, scoped to the owner. A session
// owned by someone else is reported as not found.
func (s *SessionStore) FindByID(ownerID, id uuid.UUID) (*models.Session, error) {
	row := s.db.QueryRow(`
		SELECT `+sessionColumns+` FROM sessions WHERE id = $1 AND owner_id = $2
	`, id, ownerID)
	sess, err := scanSession(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, apperr.New(apperr.NotFound, "Session not found")
	}
	if err != nil {
		return nil, apperr.Wrap(apperr.Internal, "Failed to fetch session", err)
	}
	return sess, nil
}

// SessionUpdate carries a partial update. Nil pointers mean "field not
// supplied"; pointers to zero values mean "set to the zero value". This
// explicit-presence contract lets callers clear ActiveFile to "" or flip
// HasGenerated to false.
type SessionUpdate struct {
	Name         *string
	Files        map[string]string
	Framework    *models.Framework
	Prompt       *string
	ActiveFile   *string
	HasGenerated *bool
}

// Update applies the supplied fields to an owner's session. Last write
// wins: there is no optimistic locking, and two concurrent updates by the
// same owner may silently overwrite each other.
func (s *SessionStore) Update(ownerID, id uuid.UUID, upd SessionUpdate) (*models.Session, error) {
	sess, err := s.FindByID(ownerID, id)
	if err != nil {
		return nil, err
	}

	if upd.Name != nil {
		name := strings.TrimSpace(*upd.Name)
		if name == "" {
			return nil, apperr.New(apperr.Validation, "Session name must not be empty")
		}
		if name != sess.Name {
			exists, err := s.nameExists(ownerID, name, id)
			if err != nil {
				return nil, apperr.Wrap(apperr.Internal, "Failed to update session", err)
			}
			if exists {
				return nil, apperr.New(apperr.Conflict, "A session with this name already exists")
			}
		}
		sess.Name = name
	}
	if upd.Files != nil {
		if err := validateFiles(upd.Files); err != nil {
			return nil, err
		}
		sess.Files = upd.Files
	}
	if upd.Framework != nil {
		if !upd.Framework.Valid() {
			return nil, apperr.New(apperr.Validation, "Invalid framework value")
		}
		sess.Framework = *upd.Framework
	}
	if upd.Prompt != nil {
		sess.Prompt = *upd.Prompt
	}
	if upd.ActiveFile != nil {
		sess.ActiveFile = *upd.ActiveFile
	}
	if upd.HasGenerated != nil {
		sess.HasGenerated = *upd.HasGenerated
	}

	files, err := json.Marshal(sess.Files)
	if err != nil {
		return nil, apperr.Wrap(apperr.Internal, "Failed to update session", err)
	}

	row := s.db.QueryRow(`
		UPDATE sessions SET
			name = $1, files = $2, framework = $3, prompt = $4,
			active_file = $5, has_generated = $6, updated_at = NOW()
		WHERE id = $7 AND owner_id = $8
		RETURNING `+sessionColumns,
		sess.Name, files, sess.Framework, sess.Prompt,
		sess.ActiveFile, sess.HasGenerated, id, ownerID,
	)
	updated, err := scanSession(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, apperr.New(apperr.NotFound, "Session not found")
	}
	if isUniqueViolation(err) {
		return nil, apperr.New(apperr.Conflict, "A session with this name already exists")
	}
	if err != nil {
		return nil, apperr.Wrap(apperr.Internal, "Failed to update session", err)
	}
	return updated, nil
}

// Delete removes an owner's session. Absent or foreign sessions both
// report not found.
func (s *SessionStore) Delete(ownerID, id uuid.UUID) error {
	result, err := s.db.Exec(`DELETE FROM sessions WHERE id = $1 AND owner_id = $2`, id, ownerID)
	if err != nil {
		return apperr.Wrap(apperr.Internal, "Failed to delete session", err)
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return apperr.New(apperr.NotFound, "Session not found")
	}
	return nil
}

// nameExists checks the owner's namespace for a name, excluding one id
// (pass uuid.Nil to exclude nothing). Fast-path check only — the unique
// index remains the safety mechanism.
func (s *SessionStore) nameExists(ownerID uuid.UUID, name string, exclude uuid.UUID) (bool, error) {
	var count int
	err := s.db.QueryRow(`
		SELECT COUNT(*) FROM sessions WHERE owner_id = $1 AND name = $2 AND id != $3
	`, ownerID, name, exclude).Scan(&count)
	if err != nil {
		return false, fmt.Errorf("check session name: %w", err)
	}
	return count > 0, nil
}

// validateSession checks the required create fields.
func validateSession(sess *models.Session) error {
	if sess.Name == "" || len(sess.Files) == 0 || sess.Framework == "" {
		return apperr.New(apperr.Validation, "Session name, valid files, and framework are required")
	}
	if !sess.Framework.Valid() {
		return apperr.New(apperr.Validation, "Invalid framework value")
	}
	return validateFiles(sess.Files)
}

// validateFiles applies the shallow executable-payload guard. This is a
// textual check against storing obvious script payloads verbatim, not a
// security boundary.
func validateFiles(files map[string]string) error {
	for _, content := range files {
		if len(content) > maxFileLen {
			return apperr.New(apperr.Validation, "File content is too large")
		}
		if strings.Contains(content, "<script>") || strings.Contains(content, "eval(") {
			return apperr.New(apperr.Validation, "Invalid code content detected")
		}
	}
	return nil
}

// isUniqueViolation reports whether err is a PostgreSQL unique constraint
// violation (SQLSTATE 23505).
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}
