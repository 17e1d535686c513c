package ports

import (
	"context"
	"route-weather-service/internal/domain"
)

// Contract for retrieving travel distance and duration between two points.
type RouteProvider interface {
	// Return distance and duration of the first candidate path from -> to.
	Route(ctx context.Context, from, to domain.Coordinates, mode domain.TravelMode) (domain.RouteInfo, error)
}
