package cache

import (
	"sync"
	"testing"
	"time"
)

type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

func TestMemoryCacheGetSet(t *testing.T) {
	clock := &fakeClock{now: time.Date(2026, 1, 1, 8, 0, 0, 0, time.UTC)}
	c := NewMemoryCache[int]("route", nil).WithClock(clock.Now)

	if _, ok := c.Get("a"); ok {
		t.Fatalf("expected miss on empty cache")
	}

	c.Set("a", 42, time.Minute)
	got, ok := c.Get("a")
	if !ok || got != 42 {
		t.Fatalf("Get(a) = %d, %v; want 42, true", got, ok)
	}
}

func TestMemoryCacheExpiresLazily(t *testing.T) {
	clock := &fakeClock{now: time.Date(2026, 1, 1, 8, 0, 0, 0, time.UTC)}
	c := NewMemoryCache[string]("weather", nil).WithClock(clock.Now)

	c.Set("k", "v", 5*time.Minute)

	// Exactly at expiresAt the entry is still valid.
	clock.Advance(5 * time.Minute)
	if _, ok := c.Get("k"); !ok {
		t.Fatalf("expected hit at expiry instant")
	}

	clock.Advance(time.Nanosecond)
	if _, ok := c.Get("k"); ok {
		t.Fatalf("expected miss after expiry")
	}
	if c.Len() != 0 {
		t.Fatalf("expired entry not evicted on read, len=%d", c.Len())
	}
}

func TestMemoryCacheSetOverwritesExpiry(t *testing.T) {
	clock := &fakeClock{now: time.Date(2026, 1, 1, 8, 0, 0, 0, time.UTC)}
	c := NewMemoryCache[string]("geocode", nil).WithClock(clock.Now)

	c.Set("k", "old", time.Minute)
	clock.Advance(50 * time.Second)
	c.Set("k", "new", time.Minute)
	clock.Advance(50 * time.Second)

	got, ok := c.Get("k")
	if !ok || got != "new" {
		t.Fatalf("Get(k) = %q, %v; want new, true", got, ok)
	}
}

func TestMemoryCacheReportsMetrics(t *testing.T) {
	m := newRecordingMetrics()
	c := NewMemoryCache[int]("route", m)

	c.Get("missing")
	c.Set("present", 1, time.Minute)
	c.Get("present")

	if m.misses["memory/route"] != 1 || m.hits["memory/route"] != 1 {
		t.Fatalf("hits=%v misses=%v", m.hits, m.misses)
	}
}

func TestMemoryCacheConcurrentAccess(t *testing.T) {
	c := NewMemoryCache[int]("route", nil)

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				c.Set("shared", n, time.Minute)
				c.Get("shared")
			}
		}(i)
	}
	wg.Wait()

	if _, ok := c.Get("shared"); !ok {
		t.Fatalf("expected shared key to be present")
	}
}
