package text

import (
	"slices"
	"sync"

	"golang.org/x/image/font/opentype"
)

// cache is a thread-safe map with a soft size limit. When it grows past
// the limit the least recently used quarter of the entries is dropped.
type cache[K comparable, V any] struct {
	mu        sync.Mutex
	entries   map[K]*cacheEntry[V]
	softLimit int
	tick      int64
}

type cacheEntry[V any] struct {
	value V
	atime int64
}

// newCache returns an empty cache. A softLimit of 0 means unlimited.
func newCache[K comparable, V any](softLimit int) *cache[K, V] {
	return &cache[K, V]{
		entries:   make(map[K]*cacheEntry[V]),
		softLimit: softLimit,
	}
}

// getOrCreate returns the value cached under key, calling create under the
// lock when there is none.
func (c *cache[K, V]) getOrCreate(key K, create func() V) V {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.tick++
	if e, ok := c.entries[key]; ok {
		e.atime = c.tick
		return e.value
	}

	v := create()
	c.entries[key] = &cacheEntry[V]{value: v, atime: c.tick}
	if c.softLimit > 0 && len(c.entries) > c.softLimit {
		c.evictOldest()
	}
	return v
}

func (c *cache[K, V]) clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries = make(map[K]*cacheEntry[V])
	c.tick = 0
}

func (c *cache[K, V]) len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}

// evictOldest shrinks the cache to three quarters of its soft limit.
// Caller must hold c.mu.
func (c *cache[K, V]) evictOldest() {
	target := max(c.softLimit*3/4, 1)
	n := len(c.entries) - target
	if n <= 0 {
		return
	}

	type aged struct {
		key   K
		atime int64
	}
	all := make([]aged, 0, len(c.entries))
	for k, e := range c.entries {
		all = append(all, aged{k, e.atime})
	}
	slices.SortFunc(all, func(a, b aged) int {
		return int(a.atime - b.atime)
	})
	for _, a := range all[:n] {
		delete(c.entries, a.key)
	}
}

// fontKey identifies a font file together with the rune it was checked for.
// require is -1 when no coverage check was made.
type fontKey struct {
	path    string
	require rune
}

// loadedFont is a parsed font file. err is kept so that a missing or
// broken file is not retried on every render.
type loadedFont struct {
	font    *opentype.Font
	covered bool
	err     error
}

// fontFiles holds parsed font files for the life of the process. System
// fonts such as Apple Color Emoji are large, and an icon set renders the
// same glyph at many sizes.
var fontFiles = newCache[fontKey, loadedFont](32)
