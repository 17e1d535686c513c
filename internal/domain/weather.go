package domain

import "time"

// Current weather for a place.
type WeatherInfo struct {
	TemperatureCelsius float64 `json:"temperatureCelsius"`
	Summary            string  `json:"summary"`
}

// WeatherReport is a WeatherInfo tied to the place it was looked up for
// and the moment it was captured.
type WeatherReport struct {
	Place string `json:"place"`
	WeatherInfo
	ObservedAt time.Time `json:"observedAt"`
}
