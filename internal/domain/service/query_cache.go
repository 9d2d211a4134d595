package service

import (
	"context"

	"organic/internal/domain/querykey"
	"organic/internal/errors"
)

// ErrCacheMiss is returned when a key has no cached value.
var ErrCacheMiss = errors.New("cache miss")

// QueryCache defines the interface for the read-through query result cache.
// Implementations serialize values as JSON. Cache failures must never break
// reads; callers fall through to the repository on any error.
type QueryCache interface {
	// Get loads the cached value for key into dest. Returns ErrCacheMiss when absent.
	Get(ctx context.Context, key querykey.Key, dest any) error

	// Set stores value under key with the configured TTL.
	Set(ctx context.Context, key querykey.Key, value any) error

	// Invalidate removes every cached value whose key starts with one of the prefixes.
	Invalidate(ctx context.Context, prefixes ...querykey.Key) error
}
