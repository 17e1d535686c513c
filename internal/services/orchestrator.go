package services

import (
	"context"
	"fmt"
	"log"
	"route-weather-service/internal/domain"
	"route-weather-service/internal/platform/obs"
	"route-weather-service/internal/ports"
	"time"

	"golang.org/x/sync/errgroup"
)

// Orchestrator produces combined route + destination weather answers,
// memoised in the shared cache.
type Orchestrator struct {
	routes  *RouteLookup
	weather *WeatherLookup
	shared  ports.SharedCache
	now     func() time.Time
}

// NewOrchestrator wires the lookups. shared may be nil, in which case every
// call recomputes.
func NewOrchestrator(routes *RouteLookup, weather *WeatherLookup, shared ports.SharedCache) *Orchestrator {
	return &Orchestrator{
		routes:  routes,
		weather: weather,
		shared:  shared,
		now:     time.Now,
	}
}

// WithClock replaces the clock used to stamp ObservedAt.
func (o *Orchestrator) WithClock(now func() time.Time) *Orchestrator {
	o.now = now
	return o
}

func combinedKey(origin, destination string, mode domain.TravelMode) string {
	return normalizeKey(fmt.Sprintf("%s|%s|%s", origin, destination, mode))
}

// GetCombinedAnswer never fails: lookups are total and shared cache
// failures are logged and skipped.
func (o *Orchestrator) GetCombinedAnswer(
	ctx context.Context,
	origin string,
	destination string,
	mode domain.TravelMode,
) domain.CombinedAnswer {
	key := combinedKey(origin, destination, mode)

	var cached domain.CombinedAnswer
	if o.shared != nil && o.shared.GetJSON(ctx, key, &cached) {
		return cached
	}

	var (
		route domain.RouteInfo
		wx    domain.WeatherInfo
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		route = o.routes.RouteInfo(gctx, origin, destination, mode)
		return nil
	})
	g.Go(func() error {
		wx = o.weather.CurrentWeather(gctx, destination)
		return nil
	})
	_ = g.Wait()

	answer := domain.CombinedAnswer{
		Origin:      origin,
		Destination: destination,
		Mode:        mode,
		RouteInfo:   route,
		Weather: domain.WeatherReport{
			Place:       destination,
			WeatherInfo: wx,
			ObservedAt:  o.now().UTC(),
		},
	}

	if o.shared != nil {
		if err := o.shared.SetJSON(ctx, key, answer, 0); err != nil {
			log.Printf("req_id=%s combined cache write key=%q err=%v", obs.RequestID(ctx), key, err)
		}
	}

	return answer
}
