package services

import (
	"context"
	"fmt"
	"route-weather-service/internal/domain"
	"route-weather-service/internal/platform/obs"
	"route-weather-service/internal/ports"
	"time"
)

// RouteLookup answers distance/duration queries between two place names.
// Without a RouteProvider it only ever produces the synthetic estimate.
type RouteLookup struct {
	provider ports.RouteProvider
	geocode  *GeocodeLookup
	cache    ports.TTLCache[domain.RouteInfo]
	ttl      time.Duration
	timeout  time.Duration
	metrics  obs.Metrics
}

// NewRouteLookup wires the chain. provider must be a nil interface when no
// routing credential is configured. timeout bounds each provider call.
func NewRouteLookup(
	provider ports.RouteProvider,
	geocode *GeocodeLookup,
	cache ports.TTLCache[domain.RouteInfo],
	ttl time.Duration,
	timeout time.Duration,
	metrics obs.Metrics,
) *RouteLookup {
	if metrics == nil {
		metrics = obs.NoopMetrics{}
	}
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	return &RouteLookup{
		provider: provider,
		geocode:  geocode,
		cache:    cache,
		ttl:      ttl,
		timeout:  timeout,
		metrics:  metrics,
	}
}

func (r *RouteLookup) RouteInfo(ctx context.Context, origin, destination string, mode domain.TravelMode) domain.RouteInfo {
	if r.provider == nil {
		return SyntheticRoute(origin, destination)
	}

	key := normalizeKey(fmt.Sprintf("route:%s|%s|%s", origin, destination, mode))

	if hit, ok := r.cache.Get(key); ok {
		return hit
	}

	strategies := []Strategy[domain.RouteInfo]{{
		Name: "ors",
		Run: func(ctx context.Context) (domain.RouteInfo, error) {
			return r.fromProvider(ctx, origin, destination, mode)
		},
	}}

	info := FirstSuccess(ctx, r.metrics, strategies, func() domain.RouteInfo {
		return SyntheticRoute(origin, destination)
	})

	r.cache.Set(key, info, r.ttl)
	return info
}

func (r *RouteLookup) fromProvider(
	ctx context.Context,
	origin string,
	destination string,
	mode domain.TravelMode,
) (domain.RouteInfo, error) {
	if r.geocode == nil {
		return domain.RouteInfo{}, fmt.Errorf("route lookup: no geocoder configured")
	}

	from, ok := r.geocode.Geocode(ctx, origin)
	if !ok {
		return domain.RouteInfo{}, fmt.Errorf("route lookup: origin: %w: %q", errSkippedGeocode, origin)
	}
	to, ok := r.geocode.Geocode(ctx, destination)
	if !ok {
		return domain.RouteInfo{}, fmt.Errorf("route lookup: destination: %w: %q", errSkippedGeocode, destination)
	}

	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	return r.provider.Route(ctx, from, to, mode)
}

// SyntheticRoute is the deterministic estimate used when no provider answers.
// Lengths are counted in runes of the normalized names.
func SyntheticRoute(origin, destination string) domain.RouteInfo {
	o, d := placeLength(origin), placeLength(destination)

	diff := o - d
	if diff < 0 {
		diff = -diff
	}
	base := diff + o + d

	return domain.RouteInfo{
		DistanceMeters:  1000 * base,
		DurationSeconds: 60 * base,
	}
}
