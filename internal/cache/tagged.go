package cache

import (
	"context"
	"sync"

	"article-cms/internal/metrics"
)

type entry struct {
	value any
	seen  map[string]uint64
}

// TaggedCache is a read-through cache whose entries are keyed by a string
// and guarded by a set of tags. An entry is served only while every one of
// its tags is still at the generation observed when the entry was computed.
type TaggedCache struct {
	store   Store
	mu      sync.RWMutex
	entries map[string]entry
}

// NewTaggedCache creates an empty tagged cache over the given registry.
func NewTaggedCache(store Store) *TaggedCache {
	return &TaggedCache{
		store:   store,
		entries: make(map[string]entry),
	}
}

// Get returns the cached value for key if present and all its tags are
// still valid.
func (c *TaggedCache) Get(ctx context.Context, key string) (any, bool) {
	c.mu.RLock()
	e, ok := c.entries[key]
	c.mu.RUnlock()
	if !ok {
		metrics.CacheLookupsTotal.WithLabelValues("miss").Inc()
		return nil, false
	}

	for tag, seen := range e.seen {
		valid, err := c.store.IsValid(ctx, tag, seen)
		if err != nil || !valid {
			metrics.CacheLookupsTotal.WithLabelValues("miss").Inc()
			return nil, false
		}
	}

	metrics.CacheLookupsTotal.WithLabelValues("hit").Inc()
	return e.value, true
}

// GetOrCompute returns the cached value for key, or runs compute and caches
// the result under tags. Tag generations are snapshotted before compute
// runs, so an invalidation racing the computation expires the entry rather
// than hiding the mutation.
func (c *TaggedCache) GetOrCompute(ctx context.Context, key string, tags []string, compute func(context.Context) (any, error)) (any, error) {
	if v, ok := c.Get(ctx, key); ok {
		return v, nil
	}

	seen := make(map[string]uint64, len(tags))
	for _, tag := range tags {
		gen, err := c.store.Generation(ctx, tag)
		if err != nil {
			// Registry trouble never blocks reads; serve uncached.
			return compute(ctx)
		}
		seen[tag] = gen
	}

	value, err := compute(ctx)
	if err != nil {
		return nil, err
	}

	c.mu.Lock()
	c.entries[key] = entry{value: value, seen: seen}
	c.mu.Unlock()

	return value, nil
}
