// Package cache provides a concurrent in-memory map for values that live as
// long as their owner, such as decoded emoji bitmaps.
package cache

import (
	"hash/fnv"
	"sync"
	"sync/atomic"
)

const (
	// ShardCount is the number of shards for reduced lock contention.
	// Must be a power of 2 for fast modulo via bitwise AND.
	ShardCount = 16

	shardMask = ShardCount - 1
)

// Hasher is a function that computes a hash for a key.
// Used by Sharded for shard selection.
type Hasher[K any] func(K) uint64

// StringHasher computes FNV-1a hash of a string key.
func StringHasher(s string) uint64 {
	h := fnv.New64a()
	_, _ = h.Write([]byte(s)) // fnv.Write never returns an error
	return h.Sum64()
}

// IntHasher spreads small integer keys across shards.
func IntHasher(k int) uint64 {
	x := uint64(k) * 0x9e3779b97f4a7c15
	return x ^ x>>32
}

// Sharded is a thread-safe map split into shards, each guarded by its own
// RWMutex. Readers of different keys rarely contend and readers of the same
// key never block each other.
//
// Entries are never evicted.
type Sharded[K comparable, V any] struct {
	shards [ShardCount]*shard[K, V]
	hasher Hasher[K]

	hits   atomic.Uint64
	misses atomic.Uint64
}

type shard[K comparable, V any] struct {
	mu      sync.RWMutex
	entries map[K]V
}

// Stats is a snapshot of cache counters.
type Stats struct {
	Len    int
	Hits   uint64
	Misses uint64
}

// NewSharded creates an empty sharded map using hasher for shard selection.
func NewSharded[K comparable, V any](hasher Hasher[K]) *Sharded[K, V] {
	c := &Sharded[K, V]{hasher: hasher}
	for i := range c.shards {
		c.shards[i] = &shard[K, V]{entries: make(map[K]V)}
	}
	return c
}

func (c *Sharded[K, V]) shardFor(key K) *shard[K, V] {
	return c.shards[c.hasher(key)&shardMask]
}

// Get retrieves a value by key.
// Returns (value, true) if found, (zero, false) otherwise.
func (c *Sharded[K, V]) Get(key K) (V, bool) {
	s := c.shardFor(key)

	s.mu.RLock()
	v, ok := s.entries[key]
	s.mu.RUnlock()

	if ok {
		c.hits.Add(1)
	} else {
		c.misses.Add(1)
	}
	return v, ok
}

// Set stores a value, replacing any previous value for key.
//
// The value is stored as-is (not copied). Callers should not modify it
// after caching.
func (c *Sharded[K, V]) Set(key K, value V) {
	s := c.shardFor(key)

	s.mu.Lock()
	s.entries[key] = value
	s.mu.Unlock()
}

// GetOrCreate returns the cached value or stores the result of create.
// create runs under the shard's write lock, so keep it fast and free of I/O;
// slow producers should be deduplicated outside the cache.
func (c *Sharded[K, V]) GetOrCreate(key K, create func() V) V {
	if v, ok := c.Get(key); ok {
		return v
	}

	s := c.shardFor(key)
	s.mu.Lock()
	defer s.mu.Unlock()

	if v, ok := s.entries[key]; ok {
		return v
	}
	v := create()
	s.entries[key] = v
	return v
}

// Len returns the total number of entries across all shards.
func (c *Sharded[K, V]) Len() int {
	total := 0
	for _, s := range c.shards {
		s.mu.RLock()
		total += len(s.entries)
		s.mu.RUnlock()
	}
	return total
}

// Stats returns current cache statistics.
func (c *Sharded[K, V]) Stats() Stats {
	return Stats{
		Len:    c.Len(),
		Hits:   c.hits.Load(),
		Misses: c.misses.Load(),
	}
}
