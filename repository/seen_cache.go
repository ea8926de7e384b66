package repository

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"knowledge-ingestor/domain"

	"github.com/redis/go-redis/v9"
)

// redisSeenCache marks composite keys in Redis with a TTL. Every scheduled
// run re-fetches largely the same "top N" items, so most lookups hit here
// instead of the store. Cache failures are logged and treated as misses.
type redisSeenCache struct {
	client *redis.Client
	logger *slog.Logger
	ttl    time.Duration
}

// NewRedisSeenCache creates a Redis-backed seen cache.
func NewRedisSeenCache(client *redis.Client, ttl time.Duration, logger *slog.Logger) SeenCache {
	return &redisSeenCache{
		client: client,
		logger: logger,
		ttl:    ttl,
	}
}

func seenKey(source domain.Source, sourceID string) string {
	return fmt.Sprintf("knowledge:seen:%s:%s", source, sourceID)
}

// Seen reports whether the key was marked recently.
func (c *redisSeenCache) Seen(ctx context.Context, source domain.Source, sourceID string) bool {
	n, err := c.client.Exists(ctx, seenKey(source, sourceID)).Result()
	if err != nil {
		c.logger.WarnContext(ctx, "seen cache lookup failed, falling through to store",
			"error", err, "source", source, "source_id", sourceID)
		return false
	}

	return n > 0
}

// Mark records the key. Expiry keeps the cache bounded; after the TTL the
// store lookup takes over again.
func (c *redisSeenCache) Mark(ctx context.Context, source domain.Source, sourceID string) {
	if err := c.client.Set(ctx, seenKey(source, sourceID), 1, c.ttl).Err(); err != nil {
		c.logger.WarnContext(ctx, "seen cache mark failed",
			"error", err, "source", source, "source_id", sourceID)
	}
}
