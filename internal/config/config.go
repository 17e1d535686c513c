package config

import (
	"log"
	"os"
	"strconv"
	"strings"
	"time"
)

// Config collects every setting the server reads from the environment.
// Empty credentials are valid: they select the synthetic fallbacks.
type Config struct {
	Port        string
	DatabaseURL string

	RedisURL         string
	RouteCachePrefix string
	RouteCacheTTL    time.Duration

	GeocodeCacheTTL     time.Duration
	WeatherCacheTTL     time.Duration
	RouteLookupCacheTTL time.Duration

	ProviderTimeout time.Duration
	RouteTimeout    time.Duration

	NominatimURL       string
	NominatimUserAgent string
	NominatimRPS       float64

	OpenWeatherURL    string
	OpenWeatherAPIKey string
	OpenMeteoURL      string

	ORSURL    string
	ORSAPIKey string
}

// Load reads Config from the process environment.
func Load() Config {
	return Config{
		Port:        Get("PORT", "8080"),
		DatabaseURL: strings.TrimSpace(os.Getenv("DATABASE_URL")),

		RedisURL:         Get("REDIS_URL", "redis://localhost:6379"),
		RouteCachePrefix: Get("ROUTE_CACHE_PREFIX", "rota_cache:"),
		RouteCacheTTL:    time.Duration(GetInt("ROUTE_CACHE_TTL_SECONDS", 600)) * time.Second,

		GeocodeCacheTTL:     GetDuration("GEOCODE_CACHE_TTL", 24*time.Hour),
		WeatherCacheTTL:     GetDuration("WEATHER_CACHE_TTL", 5*time.Minute),
		RouteLookupCacheTTL: GetDuration("ROUTE_LOOKUP_CACHE_TTL", 5*time.Minute),

		ProviderTimeout: GetDuration("PROVIDER_TIMEOUT", 5*time.Second),
		RouteTimeout:    GetDuration("ROUTE_TIMEOUT", 5*time.Second),

		NominatimURL:       Get("NOMINATIM_URL", "https://nominatim.openstreetmap.org"),
		NominatimUserAgent: Get("NOMINATIM_USER_AGENT", "route-weather-service/1.0"),
		NominatimRPS:       GetFloat("NOMINATIM_RPS", 1),

		OpenWeatherURL:    Get("OPENWEATHER_URL", "https://api.openweathermap.org"),
		OpenWeatherAPIKey: strings.TrimSpace(os.Getenv("OPENWEATHER_API_KEY")),
		OpenMeteoURL:      Get("OPEN_METEO_URL", "https://api.open-meteo.com"),

		ORSURL:    Get("ORS_URL", "https://api.openrouteservice.org"),
		ORSAPIKey: strings.TrimSpace(os.Getenv("ORS_API_KEY")),
	}
}

// Get returns the value of key, or fallback when unset or blank.
func Get(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}

func GetInt(key string, fallback int) int {
	v := Get(key, "")
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		log.Printf("config: invalid int %s=%q, using %d", key, v, fallback)
		return fallback
	}
	return n
}

func GetFloat(key string, fallback float64) float64 {
	v := Get(key, "")
	if v == "" {
		return fallback
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		log.Printf("config: invalid float %s=%q, using %v", key, v, fallback)
		return fallback
	}
	return f
}

// GetDuration parses values such as "5m" or "24h".
func GetDuration(key string, fallback time.Duration) time.Duration {
	v := Get(key, "")
	if v == "" {
		return fallback
	}
	d, err := time.ParseDuration(v)
	if err != nil || d <= 0 {
		log.Printf("config: invalid duration %s=%q, using %s", key, v, fallback)
		return fallback
	}
	return d
}
