// Package tokencache provides a small TTL cache for engine session tokens.
// The cache is an explicit, injectable object owned by the composition
// root; engines never reach for it directly, they receive primed values
// through the query's engine-data side channel.
package tokencache

import (
	"sync"
	"time"
)

// DefaultTTL is used when New is given a non-positive TTL.
const DefaultTTL = 10 * time.Minute

type item struct {
	value   string
	expires time.Time
}

// Cache is a mutex-guarded string cache with per-entry expiry.
type Cache struct {
	mu    sync.Mutex
	ttl   time.Duration
	items map[string]item
	// now is replaceable in tests.
	now func() time.Time
}

// New creates a cache whose entries expire ttl after they are set.
func New(ttl time.Duration) *Cache {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Cache{
		ttl:   ttl,
		items: make(map[string]item),
		now:   time.Now,
	}
}

// Get returns the cached value for key if it has not expired. Expired
// entries are evicted lazily on access.
func (c *Cache) Get(key string) (string, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	it, ok := c.items[key]
	if !ok {
		return "", false
	}
	if c.now().After(it.expires) {
		delete(c.items, key)
		return "", false
	}
	return it.value, true
}

// Set stores value under key with a fresh TTL.
func (c *Cache) Set(key, value string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.items[key] = item{value: value, expires: c.now().Add(c.ttl)}
}

// Len returns the number of entries, counting not-yet-evicted expired ones.
func (c *Cache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.items)
}

// Purge removes every expired entry.
func (c *Cache) Purge() {
	c.mu.Lock()
	defer c.mu.Unlock()

	now := c.now()
	for key, it := range c.items {
		if now.After(it.expires) {
			delete(c.items, key)
		}
	}
}
