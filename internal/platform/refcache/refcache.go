// Copyright (c) 2026 Librarium. All rights reserved.
// Author: thirawat.bk@gmail.com

/*
Package refcache caches bulk reference-collection responses in Redis.

The admin book forms fetch every reference collection (authors, publishers,
languages, file types) once per form session, which makes those list
endpoints by far the hottest reads in the system. Entries expire after
[constants.ReferenceListTTL]; creates invalidate their collection eagerly.

# Failure Policy

The cache is strictly an accelerator: any Redis failure degrades to a
database read and is logged at warn level, never surfaced to the caller.
*/
package refcache

import (
	"context"
	"encoding/json"
	"log/slog"

	"github.com/redis/go-redis/v9"

	"github.com/thirawat/librarium/internal/platform/constants"
)

// Cache wraps a Redis client with JSON list get/set semantics.
type Cache struct {
	client *redis.Client
	logger *slog.Logger
}

// New constructs a reference-list cache over an existing Redis client.
func New(client *redis.Client, logger *slog.Logger) *Cache {
	return &Cache{client: client, logger: logger}
}

// GetList loads a cached collection into target.
// It returns false on miss or any Redis/decoding failure.
func (cache *Cache) GetList(ctx context.Context, collection string, target interface{}) bool {
	payload, err := cache.client.Get(ctx, key(collection)).Bytes()
	if err != nil {
		if err != redis.Nil {
			cache.logger.Warn("refcache_get_failed",
				slog.String("collection", collection),
				slog.Any("error", err),
			)
		}
		return false
	}

	if err := json.Unmarshal(payload, target); err != nil {
		cache.logger.Warn("refcache_decode_failed",
			slog.String("collection", collection),
			slog.Any("error", err),
		)
		return false
	}

	return true
}

// SetList stores a collection snapshot with the standard TTL.
func (cache *Cache) SetList(ctx context.Context, collection string, value interface{}) {
	payload, err := json.Marshal(value)
	if err != nil {
		cache.logger.Warn("refcache_encode_failed",
			slog.String("collection", collection),
			slog.Any("error", err),
		)
		return
	}

	if err := cache.client.Set(ctx, key(collection), payload, constants.ReferenceListTTL).Err(); err != nil {
		cache.logger.Warn("refcache_set_failed",
			slog.String("collection", collection),
			slog.Any("error", err),
		)
	}
}

// Invalidate drops a collection snapshot after a mutation.
func (cache *Cache) Invalidate(ctx context.Context, collection string) {
	if err := cache.client.Del(ctx, key(collection)).Err(); err != nil {
		cache.logger.Warn("refcache_invalidate_failed",
			slog.String("collection", collection),
			slog.Any("error", err),
		)
	}
}

func key(collection string) string {
	return constants.RedisPrefixReferenceList + collection
}
