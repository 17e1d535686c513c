package handlers

import (
	"context"
	"log"
	"net/http"
	"route-weather-service/internal/api/dto"
	"route-weather-service/internal/domain"
	"route-weather-service/internal/platform/obs"
	"route-weather-service/internal/ports"
)

type CombinedAnswerer interface {
	GetCombinedAnswer(ctx context.Context, origin, destination string, mode domain.TravelMode) domain.CombinedAnswer
}

type RouteHandler struct {
	Answers CombinedAnswerer
	// History is nil when no database is configured.
	History ports.HistoryRepository
}

// Get answers ?origin=&destination=&mode= with route and destination weather.
// Identified callers get the answer appended to their history.
func (h *RouteHandler) Get(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.Header().Set("Allow", http.MethodGet)
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	origin, ok := placeParam(r, "origin")
	if !ok {
		writeError(w, r, http.StatusBadRequest, "origin must be at least 2 characters")
		return
	}
	destination, ok := placeParam(r, "destination")
	if !ok {
		writeError(w, r, http.StatusBadRequest, "destination must be at least 2 characters")
		return
	}

	mode, err := domain.ParseTravelMode(r.URL.Query().Get("mode"))
	if err != nil {
		writeError(w, r, http.StatusBadRequest, "mode must be one of DRIVING, WALKING, BICYCLING, TRANSIT")
		return
	}

	answer := h.Answers.GetCombinedAnswer(r.Context(), origin, destination, mode)

	if user := userID(r); user != "" && h.History != nil {
		// History is best-effort; the caller still gets the answer.
		if err := h.History.Record(r.Context(), user, answer); err != nil {
			log.Printf("req_id=%s record history failed: user_id=%q err=%v", obs.RequestID(r.Context()), user, err)
		}
	}

	writeJSON(w, r, http.StatusOK, dto.NewRouteResponse(answer))
}
