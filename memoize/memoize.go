// Package memoize provides a small bounded result cache for pure functions.
//
// Readability metrics recompute the same counts over the same text many
// times (the consensus grade alone touches eight formulas that all share
// word, sentence, and syllable counts), so each expensive operation keeps a
// [Cache] keyed by its full argument tuple. Keys must carry every input
// that influences the result, including language tags and boolean policy
// flags; two policy variants never share a bucket.
//
// Caches are safe for concurrent use. Concurrent callers computing the same
// key may race; the last writer wins, which is harmless because cached
// functions are deterministic.
package memoize

import (
	"container/list"
	"sync"
)

// DefaultCapacity is the entry limit applied when a cache is created with a
// non-positive capacity.
const DefaultCapacity = 128

// Cache is a fixed-capacity memoization cache with least-recently-used
// eviction. The zero value is not usable; create instances with [New].
type Cache[K comparable, V any] struct {
	mu       sync.Mutex
	capacity int
	entries  map[K]*list.Element
	order    *list.List // front is most recently used
}

type entry[K comparable, V any] struct {
	key   K
	value V
}

// New creates a cache holding at most capacity entries. A non-positive
// capacity falls back to [DefaultCapacity].
func New[K comparable, V any](capacity int) *Cache[K, V] {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	return &Cache[K, V]{
		capacity: capacity,
		entries:  make(map[K]*list.Element),
		order:    list.New(),
	}
}

// Get returns the cached value for key, marking it as recently used.
func (c *Cache[K, V]) Get(key K) (V, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	elem, ok := c.entries[key]
	if !ok {
		var zero V
		return zero, false
	}
	c.order.MoveToFront(elem)
	return elem.Value.(*entry[K, V]).value, true
}

// Put stores value under key, evicting the least-recently-used entries if
// the cache is full. Storing an existing key updates its value and marks it
// as recently used.
func (c *Cache[K, V]) Put(key K, value V) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if elem, ok := c.entries[key]; ok {
		elem.Value.(*entry[K, V]).value = value
		c.order.MoveToFront(elem)
		return
	}

	for c.order.Len() >= c.capacity {
		oldest := c.order.Back()
		if oldest == nil {
			break
		}
		c.order.Remove(oldest)
		delete(c.entries, oldest.Value.(*entry[K, V]).key)
	}

	c.entries[key] = c.order.PushFront(&entry[K, V]{key: key, value: value})
}

// Do returns the cached value for key, computing and storing it on a miss.
// The compute function runs outside the cache lock, so concurrent callers
// with the same key may both compute; results are identical for pure
// functions and the last write wins.
func (c *Cache[K, V]) Do(key K, compute func() V) V {
	if v, ok := c.Get(key); ok {
		return v
	}
	v := compute()
	c.Put(key, v)
	return v
}

// Len reports the number of cached entries.
func (c *Cache[K, V]) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.order.Len()
}

// Purge removes all entries.
func (c *Cache[K, V]) Purge() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries = make(map[K]*list.Element)
	c.order.Init()
}
