package words

import (
	"context"
	"sync"
)

// Cache memoises a Source per word length. Replace swaps the source and
// drops everything cached so far.
type Cache struct {
	mu      sync.Mutex
	src     Source
	byLen   map[int][]string
	version uint64
}

// NewCache wraps src.
func NewCache(src Source) *Cache {
	return &Cache{src: src, byLen: make(map[int][]string)}
}

// Words returns the cached list for length, loading it on first use.
// Failed loads are not cached.
func (c *Cache) Words(ctx context.Context, length int) ([]string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if ws, ok := c.byLen[length]; ok {
		return ws, nil
	}
	ws, err := Load(ctx, c.src, length)
	if err != nil {
		return nil, err
	}
	c.byLen[length] = ws
	return ws, nil
}

// Replace installs a new source and invalidates the cache.
func (c *Cache) Replace(src Source) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.src = src
	c.byLen = make(map[int][]string)
	c.version++
}

// Version increases every time the source is replaced.
func (c *Cache) Version() uint64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.version
}

// Stats returns the number of cached words per length.
func (c *Cache) Stats() map[int]int {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make(map[int]int, len(c.byLen))
	for n, ws := range c.byLen {
		out[n] = len(ws)
	}
	return out
}

func (c *Cache) String() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.src == nil {
		return "none"
	}
	if s, ok := c.src.(interface{ String() string }); ok {
		return s.String()
	}
	return "custom"
}
