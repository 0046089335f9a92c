package cache

import (
	"sync"
	"time"

	"github.com/weatherly-app/weatherly/internal/weather"
)

type entry struct {
	results  []weather.SearchResultItem
	storedAt time.Time
}

// SearchCache memoizes normalized search results per lowercased query for
// a fixed time window. The clock is injected so expiry is testable without
// sleeping. Concurrent misses for the same key may both populate the
// entry; last writer wins and the values are equivalent.
type SearchCache struct {
	mu   sync.RWMutex
	data map[string]entry
	ttl  time.Duration
	now  func() time.Time
}

// NewSearchCache creates a cache with the given TTL. A nil clock defaults
// to time.Now.
func NewSearchCache(ttl time.Duration, now func() time.Time) *SearchCache {
	if now == nil {
		now = time.Now
	}
	return &SearchCache{
		data: make(map[string]entry),
		ttl:  ttl,
		now:  now,
	}
}

// Get returns the cached results for key. Entries older than the TTL are
// treated as absent.
func (c *SearchCache) Get(key string) ([]weather.SearchResultItem, bool) {
	c.mu.RLock()
	e, ok := c.data[key]
	c.mu.RUnlock()

	if !ok || c.now().Sub(e.storedAt) >= c.ttl {
		return nil, false
	}
	return e.results, true
}

// Set stores results for key, stamped with the current clock reading.
func (c *SearchCache) Set(key string, results []weather.SearchResultItem) {
	c.mu.Lock()
	c.data[key] = entry{results: results, storedAt: c.now()}
	c.mu.Unlock()
}

// Purge drops all expired entries. Expiry is already enforced on read;
// purging only bounds memory between sweeps.
func (c *SearchCache) Purge() int {
	now := c.now()

	c.mu.Lock()
	defer c.mu.Unlock()

	removed := 0
	for key, e := range c.data {
		if now.Sub(e.storedAt) >= c.ttl {
			delete(c.data, key)
			removed++
		}
	}
	return removed
}

// Len reports the number of resident entries, expired or not.
func (c *SearchCache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.data)
}
