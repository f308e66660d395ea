package text

import (
	"cmp"
	"slices"
	"sync"
)

// Cache is a generic LRU cache with a soft limit. When an insertion pushes
// the cache past the limit, the least recently used quarter is dropped.
//
// Cache is safe for concurrent use.
// Cache must not be copied after creation (has mutex).
type Cache[K comparable, V any] struct {
	mu      sync.Mutex
	entries map[K]*cacheEntry[V]
	limit   int
	clock   uint64
}

type cacheEntry[V any] struct {
	value V
	used  uint64
}

// NewCache creates a cache holding about limit entries.
// A limit of 0 means unlimited.
func NewCache[K comparable, V any](limit int) *Cache[K, V] {
	return &Cache[K, V]{
		entries: make(map[K]*cacheEntry[V]),
		limit:   limit,
	}
}

// Get returns the cached value for key and marks it as recently used.
func (c *Cache[K, V]) Get(key K) (V, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	e, ok := c.entries[key]
	if !ok {
		var zero V
		return zero, false
	}
	c.clock++
	e.used = c.clock
	return e.value, true
}

// Set stores value under key.
func (c *Cache[K, V]) Set(key K, value V) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.insert(key, value)
}

// GetOrCreate returns the cached value for key, calling create to fill the
// entry on a miss. create runs under the cache lock, so concurrent callers
// never create the same entry twice.
func (c *Cache[K, V]) GetOrCreate(key K, create func() V) V {
	c.mu.Lock()
	defer c.mu.Unlock()

	if e, ok := c.entries[key]; ok {
		c.clock++
		e.used = c.clock
		return e.value
	}
	v := create()
	c.insert(key, v)
	return v
}

// Clear removes all entries.
func (c *Cache[K, V]) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.entries = make(map[K]*cacheEntry[V])
	c.clock = 0
}

// Len returns the number of entries.
func (c *Cache[K, V]) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}

// insert stores an entry and evicts if needed. Caller must hold c.mu.
func (c *Cache[K, V]) insert(key K, value V) {
	c.clock++
	c.entries[key] = &cacheEntry[V]{value: value, used: c.clock}
	if c.limit > 0 && len(c.entries) > c.limit {
		c.evict()
	}
}

// evict shrinks the cache to three quarters of the limit, oldest first.
// Caller must hold c.mu.
func (c *Cache[K, V]) evict() {
	keep := max(c.limit*3/4, 1)
	drop := len(c.entries) - keep
	if drop <= 0 {
		return
	}

	type aged struct {
		key  K
		used uint64
	}
	all := make([]aged, 0, len(c.entries))
	for k, e := range c.entries {
		all = append(all, aged{k, e.used})
	}
	slices.SortFunc(all, func(a, b aged) int { return cmp.Compare(a.used, b.used) })

	for _, a := range all[:drop] {
		delete(c.entries, a.key)
	}
}
