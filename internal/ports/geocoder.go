package ports

import (
	"context"
	"route-weather-service/internal/domain"
)

// Contract for resolving a free-text place name to coordinates.
type Geocoder interface {
	// Return the best match for placeName, or an error wrapping
	// domain.ErrNotFound when the provider has no match.
	Geocode(ctx context.Context, placeName string) (domain.Coordinates, error)
}
