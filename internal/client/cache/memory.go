package cache

import (
	"hash/maphash"
	"sync"
)

// Memory is a concurrent-safe sharded map cache.
type Memory[V any] struct {
	shards    []*shard[V]
	shardMask uint64
	seed      maphash.Seed
}

type shard[V any] struct {
	mu    sync.RWMutex
	items map[string]V
}

// NewMemory creates an empty memory cache.
func NewMemory[V any](opts ...Option) *Memory[V] {
	o := buildOptions(opts)

	m := &Memory[V]{
		shards:    make([]*shard[V], o.shards),
		shardMask: uint64(o.shards - 1),
		seed:      maphash.MakeSeed(),
	}
	for i := range m.shards {
		m.shards[i] = &shard[V]{items: make(map[string]V)}
	}
	return m
}

func (m *Memory[V]) getShard(key string) *shard[V] {
	return m.shards[maphash.String(m.seed, key)&m.shardMask]
}

// Get returns the entry for key.
func (m *Memory[V]) Get(key string) (V, bool) {
	s := m.getShard(key)
	s.mu.RLock()
	defer s.mu.RUnlock()
	v, ok := s.items[key]
	return v, ok
}

// Put stores v under key.
func (m *Memory[V]) Put(key string, v V) error {
	s := m.getShard(key)
	s.mu.Lock()
	defer s.mu.Unlock()
	s.items[key] = v
	return nil
}

// Invalidate drops the entry for key.
func (m *Memory[V]) Invalidate(key string) {
	s := m.getShard(key)
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.items, key)
}

// Purge drops every entry.
func (m *Memory[V]) Purge() {
	for _, s := range m.shards {
		s.mu.Lock()
		s.items = make(map[string]V)
		s.mu.Unlock()
	}
}

// Len returns the number of entries.
func (m *Memory[V]) Len() int {
	n := 0
	for _, s := range m.shards {
		s.mu.RLock()
		n += len(s.items)
		s.mu.RUnlock()
	}
	return n
}

// Close is a no-op.
func (m *Memory[V]) Close() error {
	return nil
}
