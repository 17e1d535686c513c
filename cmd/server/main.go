package main

import (
	"context"
	"database/sql"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"route-weather-service/internal/adapters/cache"
	"route-weather-service/internal/adapters/distance"
	"route-weather-service/internal/adapters/geocoding"
	"route-weather-service/internal/adapters/repositories"
	"route-weather-service/internal/adapters/weather"
	"route-weather-service/internal/api"
	"route-weather-service/internal/config"
	"route-weather-service/internal/domain"
	"route-weather-service/internal/platform/db"
	"route-weather-service/internal/platform/obs"
	"route-weather-service/internal/ports"
	"route-weather-service/internal/services"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// main is the application composition root.
// It wires concrete adapters (Redis, Nominatim, OpenWeather, Open-Meteo, ORS, Postgres)
// behind ports and starts the HTTP server.
func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found (using environment variables)")
	}

	cfg := config.Load()

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	metrics := obs.NewPromMetrics(reg)

	shared, err := cache.NewRedisCache(cfg.RedisURL, cfg.RouteCachePrefix, cfg.RouteCacheTTL, metrics)
	if err != nil {
		log.Fatal(err)
	}
	defer shared.Close()

	pingCtx, cancelPing := context.WithTimeout(context.Background(), 2*time.Second)
	if err := shared.Ping(pingCtx); err != nil {
		log.Printf("redis unreachable at startup (shared cache degrades to misses): %v", err)
	}
	cancelPing()

	// Lookups are total; missing credentials only narrow the fallback chain.
	geocoder := geocoding.NewNominatimGeocoder(cfg.NominatimURL, cfg.NominatimUserAgent, cfg.NominatimRPS, cfg.ProviderTimeout)
	geocodeLookup := services.NewGeocodeLookup(
		geocoder,
		cache.NewMemoryCache[services.GeocodeResult]("geocode", metrics),
		cfg.GeocodeCacheTTL,
		metrics,
	)

	var byPlace ports.PlaceWeatherProvider
	if cfg.OpenWeatherAPIKey != "" {
		ow, err := weather.NewOpenWeatherProvider(cfg.OpenWeatherAPIKey, cfg.OpenWeatherURL, cfg.ProviderTimeout)
		if err != nil {
			log.Fatal(err)
		}
		byPlace = ow
	} else {
		log.Println("OPENWEATHER_API_KEY not set; using Open-Meteo for weather")
	}

	weatherLookup := services.NewWeatherLookup(
		byPlace,
		weather.NewOpenMeteoProvider(cfg.OpenMeteoURL, cfg.ProviderTimeout),
		geocodeLookup,
		cache.NewMemoryCache[domain.WeatherInfo]("weather", metrics),
		cfg.WeatherCacheTTL,
		metrics,
	)

	var routeProvider ports.RouteProvider
	if cfg.ORSAPIKey != "" {
		ors, err := distance.NewORSRouteProvider(cfg.ORSAPIKey, cfg.ORSURL, cfg.ProviderTimeout)
		if err != nil {
			log.Fatal(err)
		}
		routeProvider = ors
	} else {
		log.Println("ORS_API_KEY not set; routes will be estimated")
	}

	routeLookup := services.NewRouteLookup(
		routeProvider,
		geocodeLookup,
		cache.NewMemoryCache[domain.RouteInfo]("route", metrics),
		cfg.RouteLookupCacheTTL,
		cfg.RouteTimeout,
		metrics,
	)

	orchestrator := services.NewOrchestrator(routeLookup, weatherLookup, shared)

	var history ports.HistoryRepository
	if cfg.DatabaseURL != "" {
		conn, err := openHistoryDB(cfg.DatabaseURL)
		if err != nil {
			log.Fatal(err)
		}
		defer conn.Close()
		history = repositories.NewPostgresHistoryRepository(conn)
	} else {
		log.Println("DATABASE_URL not set; history disabled")
	}

	router := api.NewRouter(api.Deps{
		Answers:        orchestrator,
		Weather:        weatherLookup,
		History:        history,
		Metrics:        metrics,
		MetricsHandler: promhttp.HandlerFor(reg, promhttp.HandlerOpts{}),
	})

	// Timeouts leave room for a cold-cache route query (geocode x2, routing, weather).
	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      60 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		log.Printf("Server listening addr=:%s", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal(err)
		}
	}()

	<-ctx.Done()
	log.Println("Shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Printf("shutdown: %v", err)
	}
}

// openHistoryDB connects and makes sure the history table exists.
func openHistoryDB(databaseURL string) (*sql.DB, error) {
	conn, err := db.Open(databaseURL)
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := repositories.InitSchema(ctx, conn); err != nil {
		conn.Close()
		return nil, err
	}

	return conn, nil
}
