// Package impl contains the concrete implementations of the use case interfaces.
package impl

import (
	"context"
	"log/slog"

	"organic/internal/domain/querykey"
	"organic/internal/domain/service"

	"github.com/pkg/errors"
)

// fetchCached is the read-through path: serve from the cache when possible,
// otherwise load from the source and store the result. Cache failures only
// ever log; the caller always gets the loaded value.
func fetchCached[T any](ctx context.Context, cache service.QueryCache, logger *slog.Logger, key querykey.Key, load func(context.Context) (T, error)) (T, error) {
	var cached T
	if err := cache.Get(ctx, key, &cached); err == nil {
		return cached, nil
	} else if !errors.Is(err, service.ErrCacheMiss) {
		logger.Warn("query cache read failed",
			slog.String("key", key.String()),
			slog.String("error", err.Error()),
		)
	}

	loaded, err := load(ctx)
	if err != nil {
		return loaded, err
	}

	if err := cache.Set(ctx, key, loaded); err != nil {
		logger.Warn("query cache write failed",
			slog.String("key", key.String()),
			slog.String("error", err.Error()),
		)
	}

	return loaded, nil
}

// invalidateResource drops all cached queries reachable from a resource's
// registry prefixes. Failures log and are otherwise ignored: a stale entry
// expires with its TTL.
func invalidateResource(ctx context.Context, cache service.QueryCache, logger *slog.Logger, registry *querykey.Registry, resource querykey.Resource) {
	prefixes := registry.PrefixesFor(resource)
	if len(prefixes) == 0 {
		return
	}

	if err := cache.Invalidate(ctx, prefixes...); err != nil {
		logger.Warn("query cache invalidation failed",
			slog.String("resource", string(resource)),
			slog.String("error", err.Error()),
		)
	}
}
