// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// category.go provides a Valkey-backed cache for serialized category
// projections. Single-category reads skip the database on a hit; any
// mutation invalidates the affected entry. Cache failures degrade to
// misses — they are logged, never surfaced to the caller.
package cache

import (
	"context"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	// categoryKeyPrefix is the Valkey key prefix for cached categories.
	categoryKeyPrefix = "category:"

	// DefaultCategoryTTL is how long a cached projection stays valid.
	DefaultCategoryTTL = 5 * time.Minute
)

// CategoryCache manages serialized category projections in Valkey.
type CategoryCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewCategoryCache creates a category cache backed by the given client.
func NewCategoryCache(client *redis.Client, ttl time.Duration) *CategoryCache {
	if ttl == 0 {
		ttl = DefaultCategoryTTL
	}
	return &CategoryCache{client: client, ttl: ttl}
}

// Get retrieves the cached projection for a category id. The second
// return is false on a miss.
func (cc *CategoryCache) Get(ctx context.Context, id string) ([]byte, bool) {
	val, err := cc.client.Get(ctx, categoryKeyPrefix+id).Bytes()
	if err == redis.Nil {
		return nil, false
	}
	if err != nil {
		slog.Warn("category cache get error", "id", id, "error", err)
		return nil, false
	}
	slog.Debug("category cache hit", "id", id)
	return val, true
}

// Set stores a serialized projection with the configured TTL.
func (cc *CategoryCache) Set(ctx context.Context, id string, payload []byte) {
	if err := cc.client.Set(ctx, categoryKeyPrefix+id, payload, cc.ttl).Err(); err != nil {
		slog.Warn("category cache set error", "id", id, "error", err)
	}
}

// Invalidate removes a single category from the cache.
func (cc *CategoryCache) Invalidate(ctx context.Context, id string) {
	if err := cc.client.Del(ctx, categoryKeyPrefix+id).Err(); err != nil {
		slog.Warn("category cache invalidate error", "id", id, "error", err)
	}
	slog.Debug("category cache invalidated", "id", id)
}
