package cache

import (
	"route-weather-service/internal/platform/obs"
	"sync"
	"time"
)

const layerMemory = "memory"

type entry[V any] struct {
	value     V
	expiresAt time.Time
}

// MemoryCache is a process-local TTL cache.
//
// Expired entries are evicted lazily by the read that observes them; there
// is no background sweeper. Writes to one key are last-writer-wins.
// The cache is safe for concurrent use.
type MemoryCache[V any] struct {
	mu       sync.RWMutex
	items    map[string]entry[V]
	now      func() time.Time
	category string
	metrics  obs.Metrics
}

// NewMemoryCache creates an empty cache. category labels hit/miss metrics;
// metrics may be nil.
func NewMemoryCache[V any](category string, metrics obs.Metrics) *MemoryCache[V] {
	if metrics == nil {
		metrics = obs.NoopMetrics{}
	}
	return &MemoryCache[V]{
		items:    make(map[string]entry[V]),
		now:      time.Now,
		category: category,
		metrics:  metrics,
	}
}

// WithClock replaces the time source. Intended for tests.
func (c *MemoryCache[V]) WithClock(now func() time.Time) *MemoryCache[V] {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = now
	return c
}

// Get returns the value for key while it is unexpired.
func (c *MemoryCache[V]) Get(key string) (V, bool) {
	c.mu.RLock()
	e, ok := c.items[key]
	now := c.now()
	c.mu.RUnlock()

	var zero V
	if !ok {
		c.metrics.CacheMiss(layerMemory, c.category)
		return zero, false
	}

	if now.After(e.expiresAt) {
		c.mu.Lock()
		// A concurrent Set may have refreshed the entry since the read above.
		if cur, ok := c.items[key]; ok && c.now().After(cur.expiresAt) {
			delete(c.items, key)
		}
		c.mu.Unlock()

		c.metrics.CacheMiss(layerMemory, c.category)
		return zero, false
	}

	c.metrics.CacheHit(layerMemory, c.category)
	return e.value, true
}

// Set overwrites key with value, expiring ttl from now.
func (c *MemoryCache[V]) Set(key string, value V, ttl time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.items[key] = entry[V]{value: value, expiresAt: c.now().Add(ttl)}
}

// Len reports the number of stored entries, expired ones included.
func (c *MemoryCache[V]) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.items)
}
