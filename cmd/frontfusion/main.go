// Copyright (c) 2026 Front-Fusion Labs <hello@frontfusion.dev>
// All rights reserved. See LICENSE for details.

// Package main is the entry point for the Front-Fusion API server.
// It loads configuration, connects to services, sets up routing, and starts
// the HTTP server with graceful shutdown support.
package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"frontfusion/internal/ai"
	"frontfusion/internal/bundle"
	"frontfusion/internal/cache"
	"frontfusion/internal/config"
	"frontfusion/internal/database"
	"frontfusion/internal/handlers"
	"frontfusion/internal/middleware"
	"frontfusion/internal/router"
	"frontfusion/internal/store"
)

func main() {
	// Structured logger — text output, debug level everywhere for now.
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelDebug,
	}))
	slog.SetDefault(logger)

	// Load configuration from environment variables.
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load configuration", "error", err)
		os.Exit(1)
	}

	slog.Info("configuration loaded",
		"env", cfg.Env,
		"addr", cfg.Addr(),
	)

	// Connect to PostgreSQL.
	db, err := database.Connect(cfg.DSN())
	if err != nil {
		slog.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	// Run pending migrations.
	if err := database.Migrate(db); err != nil {
		slog.Error("failed to run migrations", "error", err)
		os.Exit(1)
	}

	// Connect to Valkey (Redis-compatible cache). The result cache is a
	// warm-start optimization only; the app degrades gracefully without it.
	var results *cache.ResultCache
	valkeyClient, err := cache.ConnectValkey(cfg.ValkeyHost, cfg.ValkeyPort, cfg.ValkeyPassword)
	if err != nil {
		slog.Warn("valkey unavailable — generation result cache disabled", "error", err)
	} else {
		defer valkeyClient.Close()
		results = cache.NewResultCache(valkeyClient, cache.DefaultResultTTL)
	}

	// Initialize the AI provider registry with all configured providers.
	aiRegistry := ai.NewRegistry(cfg.AIProvider, map[string]ai.ProviderConfig{
		"gemini": {APIKey: cfg.GeminiKey, Model: cfg.GeminiModel, BaseURL: cfg.GeminiBaseURL},
		"claude": {APIKey: cfg.ClaudeKey, Model: cfg.ClaudeModel, BaseURL: cfg.ClaudeBaseURL},
		"openai": {APIKey: cfg.OpenAIKey, Model: cfg.OpenAIModel, BaseURL: cfg.OpenAIBaseURL},
	})

	slog.Info("ai providers initialized",
		"active", aiRegistry.ActiveName(),
		"available", aiRegistry.Available(),
	)

	generator := ai.NewGenerator(aiRegistry)
	compiler := bundle.New(cfg.CompileConcurrency)
	sessionStore := store.NewSessionStore(db)

	// Bearer-token verification for session routes and a sliding-window
	// rate limit for the generation endpoints.
	verifier := middleware.NewVerifier(cfg.JWTSecret)
	limiter := middleware.NewRateLimiter(30, time.Minute)
	defer limiter.Stop()

	// Create handler groups with their dependencies.
	aiHandlers := handlers.NewAI(generator, compiler, results)
	sessionHandlers := handlers.NewSessions(sessionStore)

	// Set up the Chi router with all middleware and routes.
	r := router.New(verifier, limiter, aiHandlers, sessionHandlers)

	// Create the HTTP server with sensible timeouts.
	// WriteTimeout must accommodate AI endpoints that wait on LLM responses
	// (typically 10-30s, up to 60s for complex prompts).
	srv := &http.Server{
		Addr:         cfg.Addr(),
		Handler:      r,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 90 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	// Start the server in a goroutine so we can listen for shutdown signals.
	go func() {
		slog.Info("server starting", "addr", cfg.Addr())
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("server failed to start", "error", err)
			os.Exit(1)
		}
	}()

	// Graceful shutdown: wait for SIGINT or SIGTERM, then drain connections.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	sig := <-quit
	slog.Info("shutdown signal received", "signal", sig)

	// Give active requests up to 30 seconds to complete.
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		slog.Error("server forced to shutdown", "error", err)
		os.Exit(1)
	}

	slog.Info("server stopped gracefully")
}
