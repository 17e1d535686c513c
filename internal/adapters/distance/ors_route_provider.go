package distance

import (
	"errors"
	"net/http"
	"route-weather-service/internal/domain"
	"time"
)

// ORSRouteProvider implements ports.RouteProvider using the
// OpenRouteService Directions API.
//
// Transient failures (network errors, 429, 5xx) are retried with
// exponential backoff inside the caller's deadline.
// The provider is safe for concurrent use.
type ORSRouteProvider struct {
	session     *http.Client
	apiKey      string
	baseURL     string
	maxAttempts int
	backoff     time.Duration
}

func NewORSRouteProvider(apiKey, baseURL string, timeout time.Duration) (*ORSRouteProvider, error) {
	if apiKey == "" {
		return nil, errors.New("ORS api key is empty")
	}
	if timeout <= 0 {
		timeout = 10 * time.Second
	}

	provider := &ORSRouteProvider{
		session:     &http.Client{Timeout: timeout},
		apiKey:      apiKey,
		baseURL:     baseURL,
		maxAttempts: 4,
		backoff:     200 * time.Millisecond,
	}

	return provider, nil
}

// WithRetry overrides the retry policy. maxAttempts < 1 is treated as 1.
func (o *ORSRouteProvider) WithRetry(maxAttempts int, backoff time.Duration) *ORSRouteProvider {
	if maxAttempts < 1 {
		maxAttempts = 1
	}
	o.maxAttempts = maxAttempts
	o.backoff = backoff
	return o
}

// Profile maps a travel mode to an ORS routing profile.
// ORS has no public transit profile; transit is routed as driving.
func Profile(mode domain.TravelMode) string {
	switch mode {
	case domain.ModeWalking:
		return "foot-walking"
	case domain.ModeBicycling:
		return "cycling-regular"
	default:
		return "driving-car"
	}
}
