package ports

import (
	"context"
	"route-weather-service/internal/domain"
)

// A weather source queried directly by place name (credentialed).
type PlaceWeatherProvider interface {
	CurrentByPlace(ctx context.Context, placeName string) (domain.WeatherInfo, error)
}

// A weather source queried by coordinates (keyless).
type CoordinateWeatherProvider interface {
	CurrentAt(ctx context.Context, at domain.Coordinates) (domain.WeatherInfo, error)
}
