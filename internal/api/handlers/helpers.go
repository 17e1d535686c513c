package handlers

import (
	"encoding/json"
	"log"
	"net/http"
	"route-weather-service/internal/platform/obs"
	"strings"
)

// UserIDHeader carries the caller identity established by the upstream auth gateway.
const UserIDHeader = "X-User-ID"

const minPlaceLength = 2

func writeJSON(w http.ResponseWriter, r *http.Request, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("encode failed: req_id=%s method=%s path=%s err=%v", obs.RequestID(r.Context()), r.Method, r.URL.Path, err)
	}
}

func writeError(w http.ResponseWriter, r *http.Request, status int, msg string) {
	writeJSON(w, r, status, map[string]string{"error": msg})
}

func userID(r *http.Request) string {
	return strings.TrimSpace(r.Header.Get(UserIDHeader))
}

// placeParam returns the trimmed query parameter and whether it is long enough.
func placeParam(r *http.Request, name string) (string, bool) {
	v := strings.TrimSpace(r.URL.Query().Get(name))
	return v, len([]rune(v)) >= minPlaceLength
}
