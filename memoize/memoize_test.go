package memoize

import (
	"sync"
	"testing"
)

func TestCacheGetPut(t *testing.T) {
	c := New[string, int](4)

	if _, ok := c.Get("missing"); ok {
		t.Error("Get on empty cache reported a hit")
	}

	c.Put("a", 1)
	c.Put("b", 2)

	got, ok := c.Get("a")
	if !ok || got != 1 {
		t.Errorf("Get(a) = %d, %v; want 1, true", got, ok)
	}
	if c.Len() != 2 {
		t.Errorf("Len() = %d; want 2", c.Len())
	}
}

func TestCacheUpdateExisting(t *testing.T) {
	c := New[string, int](4)
	c.Put("a", 1)
	c.Put("a", 10)

	if got, _ := c.Get("a"); got != 10 {
		t.Errorf("Get(a) = %d; want 10 after update", got)
	}
	if c.Len() != 1 {
		t.Errorf("Len() = %d; want 1 after updating the same key", c.Len())
	}
}

func TestCacheEviction(t *testing.T) {
	c := New[string, int](2)
	c.Put("a", 1)
	c.Put("b", 2)
	c.Put("c", 3) // evicts a

	if _, ok := c.Get("a"); ok {
		t.Error("oldest entry survived eviction")
	}
	for _, key := range []string{"b", "c"} {
		if _, ok := c.Get(key); !ok {
			t.Errorf("entry %q missing after eviction of older key", key)
		}
	}
}

func TestCacheEvictionRespectsRecentUse(t *testing.T) {
	c := New[string, int](2)
	c.Put("a", 1)
	c.Put("b", 2)
	c.Get("a")    // refresh a; b is now least recently used
	c.Put("c", 3) // evicts b

	if _, ok := c.Get("b"); ok {
		t.Error("least recently used entry survived eviction")
	}
	if _, ok := c.Get("a"); !ok {
		t.Error("recently used entry was evicted")
	}
}

// Keys differing only in a policy flag must occupy separate entries; folding
// them would let one tokenization policy answer for another.
func TestCachePolicyFlagsSeparateKeys(t *testing.T) {
	type key struct {
		text         string
		ignoreSpaces bool
	}

	c := New[key, int](8)
	c.Put(key{"some text", true}, 8)
	c.Put(key{"some text", false}, 9)

	tests := []struct {
		name string
		key  key
		want int
	}{
		{"spaces ignored", key{"some text", true}, 8},
		{"spaces counted", key{"some text", false}, 9},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := c.Get(tt.key)
			if !ok || got != tt.want {
				t.Errorf("Get(%+v) = %d, %v; want %d, true", tt.key, got, ok, tt.want)
			}
		})
	}
}

func TestCacheDo(t *testing.T) {
	c := New[string, int](4)

	calls := 0
	compute := func() int {
		calls++
		return 42
	}

	if got := c.Do("k", compute); got != 42 {
		t.Errorf("Do = %d; want 42", got)
	}
	if got := c.Do("k", compute); got != 42 {
		t.Errorf("Do on warm cache = %d; want 42", got)
	}
	if calls != 1 {
		t.Errorf("compute ran %d times; want 1", calls)
	}
}

func TestCacheDefaultCapacity(t *testing.T) {
	c := New[int, int](0)
	for i := 0; i < DefaultCapacity+10; i++ {
		c.Put(i, i)
	}
	if c.Len() != DefaultCapacity {
		t.Errorf("Len() = %d; want %d", c.Len(), DefaultCapacity)
	}
}

func TestCachePurge(t *testing.T) {
	c := New[string, int](4)
	c.Put("a", 1)
	c.Put("b", 2)
	c.Purge()

	if c.Len() != 0 {
		t.Errorf("Len() = %d after Purge; want 0", c.Len())
	}
	if _, ok := c.Get("a"); ok {
		t.Error("entry survived Purge")
	}
}

func TestCacheConcurrentDo(t *testing.T) {
	c := New[int, int](64)

	var wg sync.WaitGroup
	for g := 0; g < 8; g++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < 200; i++ {
				key := i % 10
				got := c.Do(key, func() int { return key * key })
				if got != key*key {
					t.Errorf("Do(%d) = %d; want %d", key, got, key*key)
					return
				}
			}
		}()
	}
	wg.Wait()
}
