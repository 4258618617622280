// Copyright (c) 2026 Front-Fusion Labs <hello@frontfusion.dev>
// All rights reserved. See LICENSE for details.

// Package handlers implements the HTTP boundary of the Front-Fusion API.
// Handlers parse requests, call into the core packages, and convert every
// failure to the error taxonomy before responding — no raw internal error
// ever reaches a client.
package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"frontfusion/internal/apperr"
)

// writeJSON serializes v as the response body with the given status.
// Escaping is disabled: payloads are generated HTML/JSX source, and
// clients expect the angle brackets literal.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		slog.Error("response encode failed", "error", err)
	}
}

// writeError maps err through the taxonomy to a status and short message.
// Server-side failures are logged with their full detail here, at the one
// place every error passes through.
func writeError(w http.ResponseWriter, err error) {
	status := apperr.StatusOf(err)
	if status >= http.StatusInternalServerError {
		slog.Error("request failed", "error", err)
	}
	writeJSON(w, status, map[string]string{"error": apperr.MessageOf(err)})
}

// decodeJSON parses the request body into dst, translating malformed
// payloads to a validation error.
func decodeJSON(r *http.Request, dst any) error {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		return apperr.Wrap(apperr.Validation, "Invalid request body", err)
	}
	return nil
}
