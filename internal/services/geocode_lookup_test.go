package services

import (
	"context"
	"route-weather-service/internal/adapters/cache"
	"route-weather-service/internal/domain"
	"testing"
	"time"
)

func newGeocodeLookup(g *fakeGeocoder, clock *fakeClock) *GeocodeLookup {
	c := cache.NewMemoryCache[GeocodeResult]("geocode", nil).WithClock(clock.Now)
	return NewGeocodeLookup(g, c, 24*time.Hour, nil)
}

func TestGeocodeLookupCachesHits(t *testing.T) {
	g := &fakeGeocoder{places: map[string]domain.Coordinates{"Rio": {Lat: -22.9, Lon: -43.17}}}
	lookup := newGeocodeLookup(g, newFakeClock())

	for _, name := range []string{"Rio", "rio", "  RIO "} {
		got, ok := lookup.Geocode(context.Background(), name)
		if !ok || got.Lat != -22.9 {
			t.Fatalf("Geocode(%q) = %+v, %v", name, got, ok)
		}
	}

	if g.calls.Load() != 1 {
		t.Fatalf("upstream calls = %d, want 1", g.calls.Load())
	}
}

func TestGeocodeLookupCachesNegativeResults(t *testing.T) {
	g := &fakeGeocoder{places: map[string]domain.Coordinates{}}
	lookup := newGeocodeLookup(g, newFakeClock())

	for i := 0; i < 3; i++ {
		if _, ok := lookup.Geocode(context.Background(), "Atlantis"); ok {
			t.Fatalf("expected not found")
		}
	}

	if g.calls.Load() != 1 {
		t.Fatalf("upstream calls = %d, want 1", g.calls.Load())
	}
}

func TestGeocodeLookupTreatsFailureAsNotFound(t *testing.T) {
	g := &fakeGeocoder{err: errUpstream}
	clock := newFakeClock()
	lookup := newGeocodeLookup(g, clock)

	if _, ok := lookup.Geocode(context.Background(), "Rio"); ok {
		t.Fatalf("expected not found")
	}

	clock.Advance(24*time.Hour + time.Second)
	g.err = nil
	g.places = map[string]domain.Coordinates{"Rio": {Lat: 1, Lon: 2}}

	if _, ok := lookup.Geocode(context.Background(), "Rio"); !ok {
		t.Fatalf("expected recompute after expiry")
	}
	if g.calls.Load() != 2 {
		t.Fatalf("upstream calls = %d, want 2", g.calls.Load())
	}
}

func TestNormalizeKey(t *testing.T) {
	cases := map[string]string{
		"São Paulo":       "são paulo",
		"  SÃO   PAULO  ": "são paulo",
		"Straße":          "strasse",
	}
	for in, want := range cases {
		if got := normalizeKey(in); got != want {
			t.Errorf("normalizeKey(%q) = %q, want %q", in, got, want)
		}
	}
}
