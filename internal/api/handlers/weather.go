package handlers

import (
	"context"
	"net/http"
	"route-weather-service/internal/api/dto"
	"route-weather-service/internal/domain"
)

type WeatherReader interface {
	CurrentWeather(ctx context.Context, placeName string) domain.WeatherInfo
}

type WeatherHandler struct {
	Weather WeatherReader
}

// Get returns the current weather for ?city=.
func (h *WeatherHandler) Get(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.Header().Set("Allow", http.MethodGet)
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	city, ok := placeParam(r, "city")
	if !ok {
		writeError(w, r, http.StatusBadRequest, "city must be at least 2 characters")
		return
	}

	info := h.Weather.CurrentWeather(r.Context(), city)
	writeJSON(w, r, http.StatusOK, dto.NewWeatherResponse(info))
}
