package services

import (
	"context"
	"errors"
	"log"
	"route-weather-service/internal/domain"
	"route-weather-service/internal/platform/obs"
	"route-weather-service/internal/ports"
	"time"
)

const geocodeProvider = "nominatim"

// GeocodeResult is what the geocode cache stores. Found=false records a
// negative lookup so that unknown places are not re-queried until expiry.
type GeocodeResult struct {
	Coords domain.Coordinates
	Found  bool
}

// GeocodeLookup resolves place names through an in-process cache in front
// of a Geocoder. It never returns an error.
type GeocodeLookup struct {
	geocoder ports.Geocoder
	cache    ports.TTLCache[GeocodeResult]
	ttl      time.Duration
	metrics  obs.Metrics
}

func NewGeocodeLookup(
	geocoder ports.Geocoder,
	cache ports.TTLCache[GeocodeResult],
	ttl time.Duration,
	metrics obs.Metrics,
) *GeocodeLookup {
	if metrics == nil {
		metrics = obs.NoopMetrics{}
	}
	return &GeocodeLookup{geocoder: geocoder, cache: cache, ttl: ttl, metrics: metrics}
}

// Geocode returns the coordinates for placeName, or false when no provider
// could resolve it.
func (g *GeocodeLookup) Geocode(ctx context.Context, placeName string) (domain.Coordinates, bool) {
	key := "geocode:" + normalizeKey(placeName)

	if hit, ok := g.cache.Get(key); ok {
		return hit.Coords, hit.Found
	}

	var result GeocodeResult
	if g.geocoder != nil {
		coords, err := g.geocoder.Geocode(ctx, placeName)
		switch {
		case err == nil:
			g.metrics.ProviderRequest(geocodeProvider, "ok")
			result = GeocodeResult{Coords: coords, Found: true}
		case errors.Is(err, domain.ErrNotFound):
			g.metrics.ProviderRequest(geocodeProvider, "not_found")
		default:
			g.metrics.ProviderRequest(geocodeProvider, "error")
			log.Printf("req_id=%s geocode place=%q err=%v", obs.RequestID(ctx), placeName, err)
		}
	}

	g.cache.Set(key, result, g.ttl)
	return result.Coords, result.Found
}
