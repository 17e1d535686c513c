package obs

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Metrics receives best-effort observability events.
// Implementations must never affect the outcome of the operation reporting them.
type Metrics interface {
	CacheHit(layer, category string)
	CacheMiss(layer, category string)
	ProviderRequest(provider, outcome string)
	HTTPRequest(method, route string, status int, dur time.Duration)
}

// NoopMetrics discards every event.
type NoopMetrics struct{}

func (NoopMetrics) CacheHit(string, string)                        {}
func (NoopMetrics) CacheMiss(string, string)                       {}
func (NoopMetrics) ProviderRequest(string, string)                 {}
func (NoopMetrics) HTTPRequest(string, string, int, time.Duration) {}

// PromMetrics exports events as Prometheus collectors.
type PromMetrics struct {
	cacheHits     *prometheus.CounterVec
	cacheMisses   *prometheus.CounterVec
	providerCalls *prometheus.CounterVec
	httpRequests  *prometheus.CounterVec
	httpDuration  *prometheus.HistogramVec
}

// NewPromMetrics creates the collectors and registers them with reg.
func NewPromMetrics(reg prometheus.Registerer) *PromMetrics {
	m := &PromMetrics{
		cacheHits: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "cache_hits_total",
			Help: "Cache hits by layer and lookup category.",
		}, []string{"layer", "category"}),
		cacheMisses: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "cache_misses_total",
			Help: "Cache misses by layer and lookup category.",
		}, []string{"layer", "category"}),
		providerCalls: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "provider_requests_total",
			Help: "Upstream provider calls by outcome.",
		}, []string{"provider", "outcome"}),
		httpRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total HTTP requests.",
		}, []string{"method", "route", "status"}),
		httpDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request duration in seconds.",
			Buckets: []float64{0.05, 0.1, 0.25, 0.5, 1, 2, 5, 10},
		}, []string{"method", "route", "status"}),
	}

	reg.MustRegister(m.cacheHits, m.cacheMisses, m.providerCalls, m.httpRequests, m.httpDuration)
	return m
}

func (m *PromMetrics) CacheHit(layer, category string) {
	m.cacheHits.WithLabelValues(layer, category).Inc()
}

func (m *PromMetrics) CacheMiss(layer, category string) {
	m.cacheMisses.WithLabelValues(layer, category).Inc()
}

func (m *PromMetrics) ProviderRequest(provider, outcome string) {
	m.providerCalls.WithLabelValues(provider, outcome).Inc()
}

func (m *PromMetrics) HTTPRequest(method, route string, status int, dur time.Duration) {
	code := strconv.Itoa(status)
	m.httpRequests.WithLabelValues(method, route, code).Inc()
	m.httpDuration.WithLabelValues(method, route, code).Observe(dur.Seconds())
}
