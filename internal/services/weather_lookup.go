package services

import (
	"context"
	"fmt"
	"route-weather-service/internal/domain"
	"route-weather-service/internal/platform/obs"
	"route-weather-service/internal/ports"
	"time"
)

const syntheticWeatherSummary = "clear sky (estimated)"

// WeatherLookup answers current-weather queries for a place name.
//
// With a credentialed provider configured the chain is
// credentialed -> synthetic. Without one it is geocode + keyless -> synthetic.
// The two provider paths are never mixed.
type WeatherLookup struct {
	byPlace  ports.PlaceWeatherProvider
	byCoords ports.CoordinateWeatherProvider
	geocode  *GeocodeLookup
	cache    ports.TTLCache[domain.WeatherInfo]
	ttl      time.Duration
	metrics  obs.Metrics
}

// NewWeatherLookup wires the chain. byPlace must be a nil interface when no
// credential is configured.
func NewWeatherLookup(
	byPlace ports.PlaceWeatherProvider,
	byCoords ports.CoordinateWeatherProvider,
	geocode *GeocodeLookup,
	cache ports.TTLCache[domain.WeatherInfo],
	ttl time.Duration,
	metrics obs.Metrics,
) *WeatherLookup {
	if metrics == nil {
		metrics = obs.NoopMetrics{}
	}
	return &WeatherLookup{
		byPlace:  byPlace,
		byCoords: byCoords,
		geocode:  geocode,
		cache:    cache,
		ttl:      ttl,
		metrics:  metrics,
	}
}

// CurrentWeather always returns a value; see SyntheticWeather for the last resort.
func (w *WeatherLookup) CurrentWeather(ctx context.Context, placeName string) domain.WeatherInfo {
	key := "weather:" + normalizeKey(placeName)

	if hit, ok := w.cache.Get(key); ok {
		return hit
	}

	info := FirstSuccess(ctx, w.metrics, w.strategies(placeName), func() domain.WeatherInfo {
		return SyntheticWeather(placeName)
	})

	w.cache.Set(key, info, w.ttl)
	return info
}

func (w *WeatherLookup) strategies(placeName string) []Strategy[domain.WeatherInfo] {
	if w.byPlace != nil {
		return []Strategy[domain.WeatherInfo]{{
			Name: "openweather",
			Run: func(ctx context.Context) (domain.WeatherInfo, error) {
				return w.byPlace.CurrentByPlace(ctx, placeName)
			},
		}}
	}

	if w.byCoords != nil && w.geocode != nil {
		return []Strategy[domain.WeatherInfo]{{
			Name: "open-meteo",
			Run: func(ctx context.Context) (domain.WeatherInfo, error) {
				at, found := w.geocode.Geocode(ctx, placeName)
				if !found {
					return domain.WeatherInfo{}, fmt.Errorf("%w: %q", errSkippedGeocode, placeName)
				}
				return w.byCoords.CurrentAt(ctx, at)
			},
		}}
	}

	return nil
}

// SyntheticWeather is the deterministic estimate used when no provider answers.
func SyntheticWeather(placeName string) domain.WeatherInfo {
	return domain.WeatherInfo{
		TemperatureCelsius: float64(15 + placeLength(placeName)%15),
		Summary:            syntheticWeatherSummary,
	}
}
