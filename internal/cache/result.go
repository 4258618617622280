// Copyright (c) 2026 Front-Fusion Labs <hello@frontfusion.dev>
// All rights reserved. See LICENSE for details.

// result.go provides a Valkey-backed cache of recent generation results,
// keyed by a digest of the final prompt. It is purely a warm-start
// optimization: identical prompts re-submitted within the TTL skip the
// external round trip. Durable session state never lives here — the
// store is the single source of truth.
package cache

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	// resultKeyPrefix namespaces generation result keys in Valkey.
	resultKeyPrefix = "gen:"

	// DefaultResultTTL is how long a generation result stays cached.
	DefaultResultTTL = 10 * time.Minute
)

// ResultCache caches generation output keyed by prompt digest.
type ResultCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewResultCache creates a result cache backed by the given Valkey client.
func NewResultCache(client *redis.Client, ttl time.Duration) *ResultCache {
	if ttl == 0 {
		ttl = DefaultResultTTL
	}
	return &ResultCache{client: client, ttl: ttl}
}

// Get retrieves a cached result for the prompt. Returns false on miss or
// on any cache error — a broken cache must never fail a generation.
func (rc *ResultCache) Get(ctx context.Context, prompt string) (string, bool) {
	val, err := rc.client.Get(ctx, resultKey(prompt)).Result()
	if err == redis.Nil {
		return "", false
	}
	if err != nil {
		slog.Warn("result cache get error", "error", err)
		return "", false
	}
	slog.Debug("result cache hit")
	return val, true
}

// Set stores a generation result with the configured TTL. Errors are
// logged and swallowed for the same reason as Get.
func (rc *ResultCache) Set(ctx context.Context, prompt, result string) {
	if err := rc.client.Set(ctx, resultKey(prompt), result, rc.ttl).Err(); err != nil {
		slog.Warn("result cache set error", "error", err)
	}
}

// resultKey digests the prompt so arbitrary user text never becomes a
// raw Valkey key.
func resultKey(prompt string) string {
	sum := sha256.Sum256([]byte(prompt))
	return resultKeyPrefix + hex.EncodeToString(sum[:])
}
