package services

import (
	"context"
	"errors"
	"fmt"
	"route-weather-service/internal/domain"
	"sync"
	"sync/atomic"
	"time"
)

var errUpstream = errors.New("upstream 503")

type fakeGeocoder struct {
	places map[string]domain.Coordinates
	err    error
	calls  atomic.Int32
}

func (f *fakeGeocoder) Geocode(ctx context.Context, placeName string) (domain.Coordinates, error) {
	f.calls.Add(1)
	if f.err != nil {
		return domain.Coordinates{}, f.err
	}
	c, ok := f.places[placeName]
	if !ok {
		return domain.Coordinates{}, fmt.Errorf("geocode %q: %w", placeName, domain.ErrNotFound)
	}
	return c, nil
}

type fakePlaceWeather struct {
	info  domain.WeatherInfo
	err   error
	calls atomic.Int32
}

func (f *fakePlaceWeather) CurrentByPlace(ctx context.Context, placeName string) (domain.WeatherInfo, error) {
	f.calls.Add(1)
	return f.info, f.err
}

type fakeCoordWeather struct {
	info  domain.WeatherInfo
	err   error
	calls atomic.Int32
}

func (f *fakeCoordWeather) CurrentAt(ctx context.Context, at domain.Coordinates) (domain.WeatherInfo, error) {
	f.calls.Add(1)
	return f.info, f.err
}

type fakeRouteProvider struct {
	info  domain.RouteInfo
	err   error
	delay time.Duration
	calls atomic.Int32
}

func (f *fakeRouteProvider) Route(ctx context.Context, from, to domain.Coordinates, mode domain.TravelMode) (domain.RouteInfo, error) {
	f.calls.Add(1)
	if f.delay > 0 {
		select {
		case <-ctx.Done():
			return domain.RouteInfo{}, ctx.Err()
		case <-time.After(f.delay):
		}
	}
	return f.info, f.err
}

type fakeClock struct {
	mu sync.Mutex
	t  time.Time
}

func newFakeClock() *fakeClock {
	return &fakeClock{t: time.Date(2026, 1, 1, 8, 0, 0, 0, time.UTC)}
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.t
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.t = c.t.Add(d)
}

type recordingMetrics struct {
	mu       sync.Mutex
	provider map[string]int
}

func newRecordingMetrics() *recordingMetrics {
	return &recordingMetrics{provider: map[string]int{}}
}

func (m *recordingMetrics) ProviderRequest(provider, outcome string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.provider[provider+"/"+outcome]++
}

func (m *recordingMetrics) CacheHit(string, string)                        {}
func (m *recordingMetrics) CacheMiss(string, string)                       {}
func (m *recordingMetrics) HTTPRequest(string, string, int, time.Duration) {}
