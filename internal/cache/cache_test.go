// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package cache

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
)

// testValkeyClient returns a Redis client for tests.
// Skips if Valkey is unavailable.
func testValkeyClient(t *testing.T) *redis.Client {
	t.Helper()

	host := envOr("VALKEY_HOST", "localhost")
	port := envOr("VALKEY_PORT", "6379")
	password := os.Getenv("VALKEY_PASSWORD")

	client := redis.NewClient(&redis.Options{
		Addr:     host + ":" + port,
		Password: password,
		DB:       15, // Use DB 15 for tests.
	})

	ctx := context.Background()
	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		t.Skipf("skipping integration test: Valkey not reachable: %v", err)
	}

	t.Cleanup(func() {
		keys, _ := client.Keys(ctx, "category:*").Result()
		if len(keys) > 0 {
			client.Del(ctx, keys...)
		}
		client.Close()
	})

	return client
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func TestConnectValkey(t *testing.T) {
	host := envOr("VALKEY_HOST", "localhost")
	port := envOr("VALKEY_PORT", "6379")

	client, err := ConnectValkey(host, port, "")
	if err != nil {
		t.Skipf("skipping: Valkey not available: %v", err)
	}
	defer client.Close()

	// Verify connection.
	ctx := context.Background()
	pong, err := client.Ping(ctx).Result()
	if err != nil {
		t.Fatalf("Ping: %v", err)
	}
	if pong != "PONG" {
		t.Errorf("expected PONG, got %q", pong)
	}
}

func TestCategoryCacheSetAndGet(t *testing.T) {
	client := testValkeyClient(t)
	cc := NewCategoryCache(client, 1*time.Minute)

	ctx := context.Background()

	// Miss.
	data, ok := cc.Get(ctx, "test-id")
	if ok {
		t.Error("expected cache miss")
	}
	if data != nil {
		t.Error("expected nil data on miss")
	}

	// Set.
	payload := []byte(`{"id":"test-id","name":"Movie"}`)
	cc.Set(ctx, "test-id", payload)

	// Hit.
	data, ok = cc.Get(ctx, "test-id")
	if !ok {
		t.Error("expected cache hit")
	}
	if string(data) != string(payload) {
		t.Errorf("data mismatch: got %q, want %q", data, payload)
	}
}

func TestCategoryCacheInvalidate(t *testing.T) {
	client := testValkeyClient(t)
	cc := NewCategoryCache(client, 1*time.Minute)

	ctx := context.Background()

	cc.Set(ctx, "invalidate-me", []byte("cached"))

	// Verify it's cached.
	_, ok := cc.Get(ctx, "invalidate-me")
	if !ok {
		t.Fatal("expected cache hit before invalidation")
	}

	// Invalidate.
	cc.Invalidate(ctx, "invalidate-me")

	// Verify it's gone.
	_, ok = cc.Get(ctx, "invalidate-me")
	if ok {
		t.Error("expected cache miss after invalidation")
	}
}

func TestCategoryCacheKeysAreScoped(t *testing.T) {
	client := testValkeyClient(t)
	cc := NewCategoryCache(client, 1*time.Minute)

	ctx := context.Background()
	cc.Set(ctx, "scoped-id", []byte("scoped"))

	// The raw id without the prefix must not resolve.
	if err := client.Get(ctx, "scoped-id").Err(); err != redis.Nil {
		t.Errorf("unprefixed key lookup: err = %v, want redis.Nil", err)
	}
	if err := client.Get(ctx, "category:scoped-id").Err(); err != nil {
		t.Errorf("prefixed key lookup: %v", err)
	}
}

func TestNewCategoryCacheDefaultTTL(t *testing.T) {
	client := testValkeyClient(t)

	// TTL = 0 should use default.
	cc := NewCategoryCache(client, 0)
	if cc.ttl != DefaultCategoryTTL {
		t.Errorf("expected DefaultCategoryTTL (%v), got %v", DefaultCategoryTTL, cc.ttl)
	}
}
