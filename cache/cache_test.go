package cache

import (
	"strconv"
	"sync"
	"testing"
)

func TestShardedGetSet(t *testing.T) {
	c := NewSharded[string, int](StringHasher)

	c.Set("key1", 42)

	val, ok := c.Get("key1")
	if !ok {
		t.Error("expected key1 to exist")
	}
	if val != 42 {
		t.Errorf("expected 42, got %d", val)
	}

	if _, ok := c.Get("nonexistent"); ok {
		t.Error("expected nonexistent key to not exist")
	}

	c.Set("key1", 7)
	if val, _ := c.Get("key1"); val != 7 {
		t.Errorf("expected overwritten value 7, got %d", val)
	}
}

func TestShardedGetOrCreate(t *testing.T) {
	c := NewSharded[string, int](StringHasher)
	createCalled := 0

	val := c.GetOrCreate("key1", func() int {
		createCalled++
		return 100
	})
	if val != 100 {
		t.Errorf("expected 100, got %d", val)
	}

	val = c.GetOrCreate("key1", func() int {
		createCalled++
		return 200
	})
	if val != 100 {
		t.Errorf("expected 100 (cached), got %d", val)
	}
	if createCalled != 1 {
		t.Errorf("expected create called once, got %d", createCalled)
	}
}

func TestShardedNeverEvicts(t *testing.T) {
	c := NewSharded[string, int](StringHasher)
	const n = 5000
	for i := 0; i < n; i++ {
		c.Set(strconv.Itoa(i), i)
	}
	if c.Len() != n {
		t.Fatalf("Len() = %d, want %d", c.Len(), n)
	}
	for i := 0; i < n; i++ {
		if v, ok := c.Get(strconv.Itoa(i)); !ok || v != i {
			t.Fatalf("Get(%d) = %d, %v", i, v, ok)
		}
	}
}

func TestIntHasherSpreads(t *testing.T) {
	seen := make(map[uint64]bool)
	for k := 0; k < 64; k++ {
		seen[IntHasher(k)&shardMask] = true
	}
	if len(seen) < ShardCount/2 {
		t.Errorf("64 consecutive keys hit %d of %d shards", len(seen), ShardCount)
	}
}

func TestShardedStats(t *testing.T) {
	c := NewSharded[string, int](StringHasher)
	c.Set("a", 1)
	c.Get("a")
	c.Get("a")
	c.Get("b")

	s := c.Stats()
	if s.Hits != 2 || s.Misses != 1 || s.Len != 1 {
		t.Errorf("Stats() = %+v, want 2 hits, 1 miss, len 1", s)
	}
}

func TestShardedConcurrent(t *testing.T) {
	c := NewSharded[string, int](StringHasher)
	var wg sync.WaitGroup
	created := make([]int, 8)

	for g := 0; g < 8; g++ {
		wg.Add(1)
		go func(g int) {
			defer wg.Done()
			for i := 0; i < 500; i++ {
				key := strconv.Itoa(i % 50)
				c.GetOrCreate(key, func() int {
					created[g]++
					return i % 50
				})
				c.Get(key)
			}
		}(g)
	}
	wg.Wait()

	total := 0
	for _, n := range created {
		total += n
	}
	if total != 50 {
		t.Errorf("create called %d times, want 50", total)
	}
	if c.Len() != 50 {
		t.Errorf("Len() = %d, want 50", c.Len())
	}
}
