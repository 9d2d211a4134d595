package cache

import (
	"context"
	"encoding/json"
	"log/slog"
	"strings"
	"time"

	"organic/config"
	"organic/internal/domain/querykey"
	"organic/internal/domain/service"
	"organic/internal/errors"

	"github.com/redis/go-redis/v9"
)

const defaultQueryCacheTTL = 5 * time.Minute

// queryCache implements service.QueryCache on Redis. Values are stored as
// JSON under prefixed keys so invalidation can walk key prefixes with SCAN.
type queryCache struct {
	client *redis.Client
	prefix string
	ttl    time.Duration
	logger *slog.Logger
}

// NewQueryCache is the constructor for queryCache. A nil Redis client yields
// a disabled cache: every Get misses and Set/Invalidate are no-ops.
func NewQueryCache(client *redis.Client, cfg *config.Config, logger *slog.Logger) service.QueryCache {
	ttl := defaultQueryCacheTTL
	if cfg != nil && cfg.Cache.TTL > 0 {
		ttl = cfg.Cache.TTL
	}

	prefix := "organic"
	if cfg != nil && cfg.Env.ServiceName != "" {
		prefix = cfg.Env.ServiceName
	}

	return &queryCache{
		client: client,
		prefix: prefix,
		ttl:    ttl,
		logger: logger,
	}
}

func (c *queryCache) prefixedKey(key querykey.Key) string {
	var builder strings.Builder
	rendered := key.String()
	builder.Grow(len(c.prefix) + 1 + len(rendered))
	builder.WriteString(c.prefix)
	builder.WriteString(":")
	builder.WriteString(rendered)

	return builder.String()
}

// Get loads the cached value for key into dest.
func (c *queryCache) Get(ctx context.Context, key querykey.Key, dest any) error {
	if c.client == nil {
		return service.ErrCacheMiss
	}

	raw, err := c.client.Get(ctx, c.prefixedKey(key)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return service.ErrCacheMiss
		}

		return errors.Wrap(err, "failed to get cached query")
	}

	if err := json.Unmarshal(raw, dest); err != nil {
		// A corrupt entry behaves like a miss; the next Set overwrites it.
		c.logger.Warn("dropping undecodable cache entry", slog.String("key", key.String()), slog.String("error", err.Error()))

		return service.ErrCacheMiss
	}

	return nil
}

// Set stores value under key with the configured TTL.
func (c *queryCache) Set(ctx context.Context, key querykey.Key, value any) error {
	if c.client == nil {
		return nil
	}

	raw, err := json.Marshal(value)
	if err != nil {
		return errors.Wrap(err, "failed to marshal cached query")
	}

	if err := c.client.Set(ctx, c.prefixedKey(key), raw, c.ttl).Err(); err != nil {
		return errors.Wrap(err, "failed to set cached query")
	}

	return nil
}

// Invalidate removes every cached value whose key starts with one of the prefixes.
func (c *queryCache) Invalidate(ctx context.Context, prefixes ...querykey.Key) error {
	if c.client == nil {
		return nil
	}

	for _, prefix := range prefixes {
		if err := c.deleteByPattern(ctx, c.prefixedKey(prefix)+"*"); err != nil {
			return err
		}
	}

	return nil
}

func (c *queryCache) deleteByPattern(ctx context.Context, pattern string) error {
	var cursor uint64
	for {
		keys, nextCursor, err := c.client.Scan(ctx, cursor, pattern, 100).Result()
		if err != nil {
			return errors.Wrap(err, "failed to scan cache keys")
		}

		if len(keys) > 0 {
			if err := c.client.Del(ctx, keys...).Err(); err != nil {
				return errors.Wrap(err, "failed to delete cache keys")
			}
		}

		cursor = nextCursor
		if cursor == 0 {
			return nil
		}
	}
}
