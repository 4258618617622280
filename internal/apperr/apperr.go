// Copyright (c) 2026 Front-Fusion Labs <hello@frontfusion.dev>
// All rights reserved. See LICENSE for details.

// Package apperr defines the error taxonomy used at the service boundary.
// Every handler converts internal failures to one of these kinds before
// responding; raw errors never cross the HTTP layer.
package apperr

import (
	"errors"
	"net/http"
)

// Kind classifies a boundary error and determines its HTTP status.
type Kind int

const (
	// Validation marks missing, empty, or ill-typed input. Never retried.
	Validation Kind = iota
	// Unauthorized marks a missing or invalid caller identity.
	Unauthorized
	// NotFound marks a record that is absent or owned by another caller.
	// Ownership failures are deliberately reported as not-found so that
	// record existence does not leak across tenants.
	NotFound
	// Conflict marks a duplicate session name within an owner's namespace.
	Conflict
	// Upstream marks a generative-call or build-toolchain failure. The
	// original detail is logged, not surfaced.
	Upstream
	// Internal marks a storage or filesystem fault.
	Internal
)

// Status maps a kind to its HTTP status code.
func (k Kind) Status() int {
	switch k {
	case Validation:
		return http.StatusBadRequest
	case Unauthorized:
		return http.StatusUnauthorized
	case NotFound:
		return http.StatusNotFound
	case Conflict:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// Error is a classified boundary error with a short user-facing message.
type Error struct {
	Kind    Kind
	Message string
	Err     error // wrapped internal cause; logged, never serialized
}

func (e *Error) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *Error) Unwrap() error { return e.Err }

// New creates a classified error with a user-facing message.
func New(kind Kind, message string) *Error {
	return &Error{Kind: kind, Message: message}
}

// Wrap classifies an internal error, attaching a user-facing message.
func Wrap(kind Kind, message string, err error) *Error {
	return &Error{Kind: kind, Message: message, Err: err}
}

// StatusOf returns the HTTP status for err. Unclassified errors map to 500.
func StatusOf(err error) int {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind.Status()
	}
	return http.StatusInternalServerError
}

// MessageOf returns the user-facing message for err. Unclassified errors
// yield a generic message so internal detail is never exposed.
func MessageOf(err error) string {
	var e *Error
	if errors.As(err, &e) {
		return e.Message
	}
	return "Internal server error. Please try again later."
}

// IsKind reports whether err carries the given kind.
func IsKind(err error, kind Kind) bool {
	var e *Error
	return errors.As(err, &e) && e.Kind == kind
}
