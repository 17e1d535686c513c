package services

import (
	"context"
	"errors"
	"log"
	"route-weather-service/internal/platform/obs"
)

// errSkippedGeocode marks a strategy that never reached its provider
// because a place could not be geocoded.
var errSkippedGeocode = errors.New("place not geocoded")

// Strategy is one named source in a fallback chain.
type Strategy[T any] struct {
	Name string
	Run  func(ctx context.Context) (T, error)
}

// FirstSuccess runs strategies in order and returns the first value produced
// without error. When every strategy fails, terminal supplies the answer.
//
// Failures are logged and counted; they never reach the caller.
func FirstSuccess[T any](
	ctx context.Context,
	metrics obs.Metrics,
	strategies []Strategy[T],
	terminal func() T,
) T {
	for _, s := range strategies {
		v, err := s.Run(ctx)
		if err == nil {
			metrics.ProviderRequest(s.Name, "ok")
			return v
		}

		outcome := "error"
		if errors.Is(err, errSkippedGeocode) {
			outcome = "skipped_geocode"
		}
		metrics.ProviderRequest(s.Name, outcome)
		log.Printf("req_id=%s strategy=%s outcome=%s fallback err=%v", obs.RequestID(ctx), s.Name, outcome, err)
	}

	return terminal()
}
