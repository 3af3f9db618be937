package cache

import (
	"context"
	"sync"
)

// Store is the tag registry. Entries are invalidated, not removed: each tag
// carries a monotonically increasing generation, and a result computed at
// generation N is valid exactly while the tag is still at N. Invalidating a
// tag that was never seen is safe, as is redundant invalidation.
type Store interface {
	// Invalidate bumps the tag's generation.
	Invalidate(ctx context.Context, tag string) error
	// Generation returns the tag's current generation. Unseen tags are at 0.
	Generation(ctx context.Context, tag string) (uint64, error)
	// IsValid reports whether a result computed at generation seen is still
	// valid for the tag.
	IsValid(ctx context.Context, tag string, seen uint64) (bool, error)
}

// MemoryStore is the process-wide in-memory registry. Initialized once at
// process start; no teardown required.
type MemoryStore struct {
	mu   sync.RWMutex
	gens map[string]uint64
}

// NewMemoryStore creates an empty in-memory registry.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{gens: make(map[string]uint64)}
}

// Invalidate bumps the tag's generation.
func (s *MemoryStore) Invalidate(_ context.Context, tag string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.gens[tag]++
	return nil
}

// Generation returns the tag's current generation.
func (s *MemoryStore) Generation(_ context.Context, tag string) (uint64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.gens[tag], nil
}

// IsValid reports whether a result computed at generation seen is still valid.
func (s *MemoryStore) IsValid(ctx context.Context, tag string, seen uint64) (bool, error) {
	gen, err := s.Generation(ctx, tag)
	if err != nil {
		return false, err
	}
	return gen == seen, nil
}
