package sdrfeatures

import (
	"sync"
	"time"
)

// DefaultCacheTTL is how long a probe result is trusted before the
// requirement is probed again.
const DefaultCacheTTL = 2 * time.Hour

type cacheEntry struct {
	value   bool
	validTo time.Time
}

// Cache stores probe results keyed by requirement name for a bounded time
// window. Entries are never evicted; an expired entry reads as a miss and
// is overwritten by the next probe. Safe for concurrent use.
//
// The cache is constructed explicitly and handed to a Detector, so tests
// can supply a fake clock and hosts control its lifecycle.
type Cache struct {
	mu      sync.Mutex
	entries map[string]cacheEntry
	ttl     time.Duration
	now     func() time.Time
}

// CacheOption configures a Cache.
type CacheOption func(*Cache)

// WithTTL overrides the validity window for new entries.
func WithTTL(ttl time.Duration) CacheOption {
	return func(c *Cache) {
		c.ttl = ttl
	}
}

// WithClock overrides the time source. For tests.
func WithClock(now func() time.Time) CacheOption {
	return func(c *Cache) {
		c.now = now
	}
}

// NewCache creates a cache with the default 2 hour TTL.
func NewCache(opts ...CacheOption) *Cache {
	c := &Cache{
		entries: make(map[string]cacheEntry),
		ttl:     DefaultCacheTTL,
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Has reports whether a live entry exists for name. Expiry is checked
// against the clock at read time; there is no background eviction.
func (c *Cache) Has(name string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	entry, ok := c.entries[name]
	if !ok {
		return false
	}
	return entry.validTo.After(c.now())
}

// Get returns the cached value for name. The zero value is returned for
// absent or expired entries; callers are expected to check Has first.
func (c *Cache) Get(name string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.entries[name].value
}

// Set stores value for name, valid until now + TTL, overwriting any prior
// entry.
func (c *Cache) Set(name string, value bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[name] = cacheEntry{value: value, validTo: c.now().Add(c.ttl)}
}
