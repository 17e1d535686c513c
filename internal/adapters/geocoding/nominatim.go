package geocoding

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"route-weather-service/internal/domain"
	"route-weather-service/internal/platform/obs"
	"strconv"
	"time"

	"golang.org/x/time/rate"
)

// NominatimGeocoder implements ports.Geocoder against OSM Nominatim.
//
// Nominatim requires no credential but asks clients to identify themselves
// and stay under one request per second; both are enforced here.
// The geocoder is safe for concurrent use.
type NominatimGeocoder struct {
	session   *http.Client
	baseURL   string
	userAgent string
	limiter   *rate.Limiter
	timeout   time.Duration
}

func NewNominatimGeocoder(baseURL, userAgent string, requestsPerSec float64, timeout time.Duration) *NominatimGeocoder {
	if timeout <= 0 {
		timeout = 5 * time.Second
	}

	limit := rate.Inf
	if requestsPerSec > 0 {
		limit = rate.Limit(requestsPerSec)
	}

	return &NominatimGeocoder{
		session:   &http.Client{Timeout: timeout},
		baseURL:   baseURL,
		userAgent: userAgent,
		limiter:   rate.NewLimiter(limit, 1),
		timeout:   timeout,
	}
}

type searchResult struct {
	Lat string `json:"lat"`
	Lon string `json:"lon"`
}

// Geocode returns the single best match for placeName.
// The timeout covers the rate limiter queue as well as the request, so a
// backlog of lookups fails fast instead of waiting its turn.
func (n *NominatimGeocoder) Geocode(ctx context.Context, placeName string) (_ domain.Coordinates, err error) {
	defer obs.Time(ctx, "nominatim.Geocode")(&err)

	ctx, cancel := context.WithTimeout(ctx, n.timeout)
	defer cancel()

	if err := n.limiter.Wait(ctx); err != nil {
		return domain.Coordinates{}, fmt.Errorf("nominatim geocode: rate limit wait: %w", err)
	}

	params := url.Values{
		"q":      {placeName},
		"format": {"json"},
		"limit":  {"1"},
	}
	endpoint := n.baseURL + "/search?" + params.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return domain.Coordinates{}, fmt.Errorf("nominatim geocode: create request: %w", err)
	}
	req.Header.Set("User-Agent", n.userAgent)
	req.Header.Set("Accept", "application/json")

	resp, err := n.session.Do(req)
	if err != nil {
		return domain.Coordinates{}, fmt.Errorf("nominatim geocode: execute request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return domain.Coordinates{}, fmt.Errorf("nominatim geocode: unexpected status: %d", resp.StatusCode)
	}

	var results []searchResult
	if err := json.NewDecoder(resp.Body).Decode(&results); err != nil {
		return domain.Coordinates{}, fmt.Errorf("nominatim geocode: decode response: %w", err)
	}

	if len(results) == 0 || results[0].Lat == "" || results[0].Lon == "" {
		return domain.Coordinates{}, fmt.Errorf("nominatim geocode %q: %w", placeName, domain.ErrNotFound)
	}

	lat, err := strconv.ParseFloat(results[0].Lat, 64)
	if err != nil {
		return domain.Coordinates{}, fmt.Errorf("nominatim geocode: parse lat %q: %w", results[0].Lat, err)
	}
	lon, err := strconv.ParseFloat(results[0].Lon, 64)
	if err != nil {
		return domain.Coordinates{}, fmt.Errorf("nominatim geocode: parse lon %q: %w", results[0].Lon, err)
	}

	return domain.Coordinates{Lat: lat, Lon: lon}, nil
}
