// Copyright (c) 2026 Front-Fusion Labs <hello@frontfusion.dev>
// All rights reserved. See LICENSE for details.

package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// contextKey is an unexported type for context keys to prevent collisions.
type contextKey string

// ownerKey is the context key for the authenticated owner id.
const ownerKey contextKey = "owner"

// Verifier checks bearer tokens issued by the external identity provider
// and resolves them to an owner id. This service never issues tokens and
// never reads credentials beyond the signed subject claim.
type Verifier struct {
	secret []byte
}

// NewVerifier creates a Verifier for HS256 tokens signed with secret.
func NewVerifier(secret string) *Verifier {
	return &Verifier{secret: []byte(secret)}
}

// RequireOwner rejects requests without a valid bearer token and places
// the resolved owner id in the request context for downstream handlers.
func (v *Verifier) RequireOwner(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ownerID, ok := v.resolve(r)
		if !ok {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusUnauthorized)
			w.Write([]byte(`{"error":"Please authenticate"}`))
			return
		}

		ctx := context.WithValue(r.Context(), ownerKey, ownerID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// resolve parses and verifies the Authorization header, returning the
// owner id from the subject claim.
func (v *Verifier) resolve(r *http.Request) (uuid.UUID, bool) {
	header := r.Header.Get("Authorization")
	if !strings.HasPrefix(header, "Bearer ") {
		return uuid.Nil, false
	}
	tokenStr := strings.TrimPrefix(header, "Bearer ")

	token, err := jwt.Parse(tokenStr, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return v.secret, nil
	})
	if err != nil || !token.Valid {
		return uuid.Nil, false
	}

	sub, err := token.Claims.GetSubject()
	if err != nil || sub == "" {
		return uuid.Nil, false
	}

	ownerID, err := uuid.Parse(sub)
	if err != nil {
		return uuid.Nil, false
	}
	return ownerID, true
}

// OwnerFromCtx returns the authenticated owner id placed in the context
// by RequireOwner, or uuid.Nil when the request is unauthenticated.
func OwnerFromCtx(ctx context.Context) uuid.UUID {
	if id, ok := ctx.Value(ownerKey).(uuid.UUID); ok {
		return id
	}
	return uuid.Nil
}
