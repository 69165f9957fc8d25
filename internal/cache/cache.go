package cache

import (
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
)

// PageCache holds rendered public list responses keyed by path so
// repeated anonymous page loads skip the database. Entries expire after
// the configured TTL and are evicted early on content writes or through
// the /revalidate and /cache/clear endpoints.
type PageCache struct {
	lru *expirable.LRU[string, []byte]
}

// New creates a page cache. size bounds the number of cached paths.
func New(size int, ttl time.Duration) *PageCache {
	if size <= 0 {
		size = 128
	}
	return &PageCache{
		lru: expirable.NewLRU[string, []byte](size, nil, ttl),
	}
}

// Get returns the cached response body for a path, if fresh.
func (c *PageCache) Get(path string) ([]byte, bool) {
	return c.lru.Get(path)
}

// Set stores a response body for a path.
func (c *PageCache) Set(path string, body []byte) {
	c.lru.Add(path, body)
}

// Invalidate drops the entry for one path.
func (c *PageCache) Invalidate(path string) {
	c.lru.Remove(path)
}

// Clear drops every cached entry.
func (c *PageCache) Clear() {
	c.lru.Purge()
}

// Len reports the number of cached paths.
func (c *PageCache) Len() int {
	return c.lru.Len()
}
