package api

import (
	"net/http"
	"route-weather-service/internal/api/handlers"
	"route-weather-service/internal/platform/obs"
	"route-weather-service/internal/ports"
)

// Dependencies the HTTP layer needs. History and MetricsHandler are optional.
type Deps struct {
	Answers        handlers.CombinedAnswerer
	Weather        handlers.WeatherReader
	History        ports.HistoryRepository
	Metrics        obs.Metrics
	MetricsHandler http.Handler
}

// NewRouter wires HTTP handlers with their dependencies and returns an http.Handler.
// This is the API composition root (handlers stay unaware of concrete adapters).
func NewRouter(deps Deps) http.Handler {
	mux := http.NewServeMux()

	routeHandler := &handlers.RouteHandler{Answers: deps.Answers, History: deps.History}
	weatherHandler := &handlers.WeatherHandler{Weather: deps.Weather}
	historyHandler := &handlers.HistoryHandler{History: deps.History}

	routes := map[string]http.HandlerFunc{
		"/health":  handlers.Health,
		"/route":   routeHandler.Get,
		"/weather": weatherHandler.Get,
		"/history": historyHandler.List,
	}
	for path, h := range routes {
		mux.HandleFunc(path, h)
	}

	known := make(map[string]bool, len(routes)+1)
	for path := range routes {
		known[path] = true
	}

	if deps.MetricsHandler != nil {
		mux.Handle("/metrics", deps.MetricsHandler)
		known["/metrics"] = true
	}

	metrics := deps.Metrics
	if metrics == nil {
		metrics = obs.NoopMetrics{}
	}

	return requestIDMiddleware(loggingMiddleware(mux, metrics, known))
}
