package config

import (
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	for _, k := range []string{"PORT", "REDIS_URL", "ROUTE_CACHE_TTL_SECONDS", "ROUTE_CACHE_PREFIX", "ORS_API_KEY", "OPENWEATHER_API_KEY", "WEATHER_CACHE_TTL"} {
		t.Setenv(k, "")
	}

	cfg := Load()

	if cfg.Port != "8080" {
		t.Errorf("Port = %q, want 8080", cfg.Port)
	}
	if cfg.RouteCacheTTL != 600*time.Second {
		t.Errorf("RouteCacheTTL = %s, want 10m", cfg.RouteCacheTTL)
	}
	if cfg.RouteCachePrefix != "rota_cache:" {
		t.Errorf("RouteCachePrefix = %q", cfg.RouteCachePrefix)
	}
	if cfg.WeatherCacheTTL != 5*time.Minute {
		t.Errorf("WeatherCacheTTL = %s, want 5m", cfg.WeatherCacheTTL)
	}
	if cfg.ORSAPIKey != "" || cfg.OpenWeatherAPIKey != "" {
		t.Errorf("expected empty credentials, got ors=%q ow=%q", cfg.ORSAPIKey, cfg.OpenWeatherAPIKey)
	}
}

func TestGetDurationFallsBackOnGarbage(t *testing.T) {
	t.Setenv("SOME_TTL", "soon")
	if got := GetDuration("SOME_TTL", time.Minute); got != time.Minute {
		t.Fatalf("GetDuration = %s, want 1m", got)
	}

	t.Setenv("SOME_TTL", "90s")
	if got := GetDuration("SOME_TTL", time.Minute); got != 90*time.Second {
		t.Fatalf("GetDuration = %s, want 90s", got)
	}
}

func TestGetIntOverride(t *testing.T) {
	t.Setenv("ROUTE_CACHE_TTL_SECONDS", "30")
	if got := Load().RouteCacheTTL; got != 30*time.Second {
		t.Fatalf("RouteCacheTTL = %s, want 30s", got)
	}
}
