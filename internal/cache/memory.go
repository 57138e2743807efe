package cache

import (
	"context"
	"sync"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
)

// MemoryBackend is an in-process cache backend bounded by size and TTL.
// Entries share the TTL given at construction; per-call TTLs are ignored.
type MemoryBackend struct {
	mu  sync.Mutex
	lru *expirable.LRU[string, int64]
}

// NewMemoryBackend creates an in-process cache backend
func NewMemoryBackend(size int, ttl time.Duration) *MemoryBackend {
	return &MemoryBackend{
		lru: expirable.NewLRU[string, int64](size, nil, ttl),
	}
}

// Get returns the counter stored at key
func (b *MemoryBackend) Get(_ context.Context, key string) (int64, bool, error) {
	value, ok := b.lru.Get(key)
	return value, ok, nil
}

// Set stores a counter
func (b *MemoryBackend) Set(_ context.Context, key string, value int64, _ time.Duration) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.lru.Add(key, value)
	return nil
}

// Delete removes a key
func (b *MemoryBackend) Delete(_ context.Context, key string) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.lru.Remove(key)
	return nil
}

// AddIfExists adjusts an existing counter under the backend lock
func (b *MemoryBackend) AddIfExists(_ context.Context, key string, delta int64) (int64, bool, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	current, ok := b.lru.Get(key)
	if !ok {
		return 0, false, nil
	}

	next := current + delta
	if next < 0 {
		next = 0
	}
	b.lru.Add(key, next)

	return next, true, nil
}
