package impl

import (
	"context"
	"encoding/json"
	"strings"

	"organic/internal/domain/querykey"
	"organic/internal/domain/service"
)

// memoryCache is a map-backed QueryCache for tests that observe caching
// behavior: which keys hit, which miss, and what invalidation drops.
type memoryCache struct {
	entries map[string][]byte
}

func newMemoryCache() *memoryCache {
	return &memoryCache{entries: make(map[string][]byte)}
}

func (m *memoryCache) Get(_ context.Context, key querykey.Key, dest any) error {
	raw, ok := m.entries[key.String()]
	if !ok {
		return service.ErrCacheMiss
	}

	return json.Unmarshal(raw, dest)
}

func (m *memoryCache) Set(_ context.Context, key querykey.Key, value any) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return err
	}
	m.entries[key.String()] = raw

	return nil
}

func (m *memoryCache) Invalidate(_ context.Context, prefixes ...querykey.Key) error {
	for stored := range m.entries {
		for _, prefix := range prefixes {
			if strings.HasPrefix(stored, prefix.String()) {
				delete(m.entries, stored)

				break
			}
		}
	}

	return nil
}
