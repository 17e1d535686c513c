package handlers

import (
	"log"
	"net/http"
	"route-weather-service/internal/api/dto"
	"route-weather-service/internal/platform/obs"
	"route-weather-service/internal/ports"
)

const historyLimit = 50

type HistoryHandler struct {
	History ports.HistoryRepository
}

// List returns the caller's most recent route queries, newest first.
func (h *HistoryHandler) List(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.Header().Set("Allow", http.MethodGet)
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	user := userID(r)
	if user == "" {
		writeError(w, r, http.StatusUnauthorized, "missing "+UserIDHeader+" header")
		return
	}

	if h.History == nil {
		writeError(w, r, http.StatusServiceUnavailable, "history is not configured")
		return
	}

	records, err := h.History.ListByUser(r.Context(), user, historyLimit)
	if err != nil {
		log.Printf("req_id=%s list history failed: %v", obs.RequestID(r.Context()), err)
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}

	res := dto.ListHistoryResponse{Items: make([]dto.HistoryItemResponse, 0, len(records))}
	for _, rec := range records {
		res.Items = append(res.Items, dto.HistoryItemResponse{
			ID:                 rec.ID,
			Origin:             rec.Answer.Origin,
			Destination:        rec.Answer.Destination,
			Mode:               rec.Answer.Mode.String(),
			DistanceMeters:     rec.Answer.DistanceMeters,
			DurationSeconds:    rec.Answer.DurationSeconds,
			TemperatureCelsius: rec.Answer.Weather.TemperatureCelsius,
			WeatherSummary:     rec.Answer.Weather.Summary,
			UserID:             rec.UserID,
			CreatedAt:          rec.CreatedAt,
		})
	}

	writeJSON(w, r, http.StatusOK, res)
}
