// Copyright (c) 2026 Front-Fusion Labs <hello@frontfusion.dev>
// All rights reserved. See LICENSE for details.

// Package router sets up all HTTP routes and middleware chains for the
// Front-Fusion API. Generation endpoints are rate limited; session
// endpoints additionally require a verified bearer token.
package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"frontfusion/internal/handlers"
	"frontfusion/internal/middleware"
)

// New creates and returns the configured Chi router with all middleware
// and route groups wired up.
func New(verifier *middleware.Verifier, limiter *middleware.RateLimiter, ai *handlers.AI, sessions *handlers.Sessions) chi.Router {
	r := chi.NewRouter()

	// Global middleware — applied to every request.
	r.Use(middleware.Recoverer)
	r.Use(middleware.Logger)

	// Health check — no auth, no rate limit.
	r.Get("/health", healthHandler)

	r.Route("/code", func(r chi.Router) {
		// Generation and compile — rate limited, no auth required.
		r.Group(func(r chi.Router) {
			r.Use(limiter.Middleware)
			r.Post("/generate-ui", ai.GenerateUI)
			r.Post("/correct-ui", ai.CorrectUI)
			r.Post("/modify-code", ai.ModifyCode)
			r.Post("/apply-theme", ai.ApplyTheme)
			r.Post("/compile", ai.Compile)
		})

		// Session persistence — owner-scoped, bearer token required.
		r.Route("/sessions", func(r chi.Router) {
			r.Use(verifier.RequireOwner)
			r.Post("/", sessions.Save)
			r.Get("/", sessions.List)
			r.Get("/{id}", sessions.Get)
			r.Put("/{id}", sessions.Update)
			r.Delete("/{id}", sessions.Delete)
		})
	})

	return r
}

func healthHandler(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status":"ok"}`))
}
