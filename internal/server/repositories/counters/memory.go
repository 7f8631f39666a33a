package counters

import (
	"context"
	"sync"
)

// MemoryRepository is a map-backed counter store for DSN-less runs and tests.
type MemoryRepository struct {
	mu     sync.RWMutex
	counts map[string]int64
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{counts: make(map[string]int64)}
}

func (r *MemoryRepository) Load(ctx context.Context, name string) (int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.counts[name], nil
}

func (r *MemoryRepository) Save(ctx context.Context, name string, count int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.counts[name] = count
	return nil
}
