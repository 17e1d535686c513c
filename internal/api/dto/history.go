package dto

import "time"

type HistoryItemResponse struct {
	ID                 int64     `json:"id"`
	Origin             string    `json:"origin"`
	Destination        string    `json:"destination"`
	Mode               string    `json:"mode"`
	DistanceMeters     int       `json:"distance_meters"`
	DurationSeconds    int       `json:"duration_seconds"`
	TemperatureCelsius float64   `json:"temperature_celsius"`
	WeatherSummary     string    `json:"weather_summary"`
	UserID             string    `json:"user_id"`
	CreatedAt          time.Time `json:"created_at"`
}

type ListHistoryResponse struct {
	Items []HistoryItemResponse `json:"items"`
}
