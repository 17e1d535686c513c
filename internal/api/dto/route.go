package dto

import (
	"route-weather-service/internal/domain"
	"time"
)

type WeatherResponse struct {
	TemperatureCelsius float64 `json:"temperature_celsius"`
	Summary            string  `json:"summary"`
}

type RouteWeatherResponse struct {
	Place              string    `json:"place"`
	TemperatureCelsius float64   `json:"temperature_celsius"`
	Summary            string    `json:"summary"`
	ObservedAt         time.Time `json:"observed_at"`
}

type RouteResponse struct {
	Origin          string               `json:"origin"`
	Destination     string               `json:"destination"`
	Mode            string               `json:"mode"`
	DistanceMeters  int                  `json:"distance_meters"`
	DurationSeconds int                  `json:"duration_seconds"`
	Weather         RouteWeatherResponse `json:"weather"`
}

func NewWeatherResponse(w domain.WeatherInfo) WeatherResponse {
	return WeatherResponse{TemperatureCelsius: w.TemperatureCelsius, Summary: w.Summary}
}

func NewRouteResponse(a domain.CombinedAnswer) RouteResponse {
	return RouteResponse{
		Origin:          a.Origin,
		Destination:     a.Destination,
		Mode:            a.Mode.String(),
		DistanceMeters:  a.DistanceMeters,
		DurationSeconds: a.DurationSeconds,
		Weather: RouteWeatherResponse{
			Place:              a.Weather.Place,
			TemperatureCelsius: a.Weather.TemperatureCelsius,
			Summary:            a.Weather.Summary,
			ObservedAt:         a.Weather.ObservedAt,
		},
	}
}
