package cache

import (
	"context"
	"strings"
	"sync"
	"time"
)

type entry[T any] struct {
	value    T
	storedAt time.Time
}

// Cache is a concurrency-safe in-memory map of key -> (value, storedAt)
// with a single time-to-live for all entries. Expired entries are
// logically dead and overwritten lazily; there is no eviction goroutine.
type Cache[T any] struct {
	mu sync.RWMutex

	ttl     time.Duration
	entries map[string]entry[T]

	// now is swappable for tests.
	now func() time.Time
}

// New creates a Cache whose entries are readable for ttl after each Set.
// A ttl <= 0 disables caching entirely: Set is a no-op and every Get
// misses.
func New[T any](ttl time.Duration) *Cache[T] {
	return &Cache[T]{
		ttl:     ttl,
		entries: make(map[string]entry[T]),
		now:     time.Now,
	}
}

// Get returns the cached value for key if one was stored less than the
// TTL ago.
func (c *Cache[T]) Get(key string) (T, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	e, ok := c.entries[key]
	if !ok || c.ttl <= 0 || c.now().Sub(e.storedAt) >= c.ttl {
		var zero T
		return zero, false
	}
	return e.value, true
}

// Set stores value under key with storedAt = now, replacing any previous
// entry. Two concurrent misses for the same key may both fetch and both
// store; last write wins.
func (c *Cache[T]) Set(key string, value T) {
	if c.ttl <= 0 {
		return
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	c.entries[key] = entry[T]{value: value, storedAt: c.now()}
}

// Len reports the number of physical entries, expired or not.
func (c *Cache[T]) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}

// Key builds a canonical cache key from request parameters.
func Key(parts ...string) string {
	lowered := make([]string, 0, len(parts))
	for _, p := range parts {
		lowered = append(lowered, strings.ToLower(strings.TrimSpace(p)))
	}
	return strings.Join(lowered, "|")
}

// LiveFunc performs the live network call for WithFallback. Returning an
// error (including "succeeded but empty") routes the caller to fallback.
type LiveFunc[T any] func(ctx context.Context) (T, error)

// WithFallback is the cache-then-fetch-then-fallback pipeline shared by
// every provider:
//
//  1. a fresh cache entry for key is returned as-is, with no network call;
//  2. otherwise, if the provider is enabled, live is invoked and a
//     successful result is cached and returned;
//  3. on a disabled provider or any live error, fallback's result is
//     returned without being cached.
//
// The returned bool is true when the value is live or cached truth, false
// when it came from fallback. WithFallback never returns an error.
func WithFallback[T any](ctx context.Context, c *Cache[T], key string, enabled bool, live LiveFunc[T], fallback func() T) (T, bool) {
	if v, ok := c.Get(key); ok {
		return v, true
	}

	if enabled {
		v, err := live(ctx)
		if err == nil {
			c.Set(key, v)
			return v, true
		}
	}

	return fallback(), false
}
