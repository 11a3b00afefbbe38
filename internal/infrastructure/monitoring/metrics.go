// Package monitoring provides Prometheus metrics collection for the
// meal-planning services.
package monitoring

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"go.uber.org/zap"
)

// MetricsCollector handles Prometheus metrics collection
type MetricsCollector struct {
	logger   *zap.Logger
	registry *prometheus.Registry

	// HTTP metrics
	httpRequestsTotal   *prometheus.CounterVec
	httpRequestDuration *prometheus.HistogramVec

	// Business metrics
	recipesCreatedTotal     prometheus.Counter
	pantryItemsTotal        prometheus.Gauge
	conversionsTotal        *prometheus.CounterVec
	recommendationsTotal    prometheus.Counter
	recommendationDuration  prometheus.Histogram
	recommendationCacheHits prometheus.Counter
	recommendationCacheMiss prometheus.Counter
}

// NewMetricsCollector creates a new metrics collector
func NewMetricsCollector(logger *zap.Logger) *MetricsCollector {
	// Each collector owns its registry so tests can build as many
	// collectors as they like without duplicate registration panics.
	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector())
	registry.MustRegister(collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	factory := promauto.With(registry)

	return &MetricsCollector{
		logger:   logger,
		registry: registry,

		httpRequestsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "http_requests_total",
				Help: "Total number of HTTP requests",
			},
			[]string{"method", "path", "status_code"},
		),
		httpRequestDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "http_request_duration_seconds",
				Help:    "HTTP request duration in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"method", "path", "status_code"},
		),

		recipesCreatedTotal: factory.NewCounter(
			prometheus.CounterOpts{
				Name: "recipes_created_total",
				Help: "Total number of recipes created",
			},
		),
		pantryItemsTotal: factory.NewGauge(
			prometheus.GaugeOpts{
				Name: "pantry_items_total",
				Help: "Current number of items in the pantry",
			},
		),
		conversionsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "unit_conversions_total",
				Help: "Total number of unit conversion lookups by outcome",
			},
			[]string{"outcome"},
		),
		recommendationsTotal: factory.NewCounter(
			prometheus.CounterOpts{
				Name: "recommendations_total",
				Help: "Total number of recommendation computations",
			},
		),
		recommendationDuration: factory.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "recommendation_duration_seconds",
				Help:    "Time spent scoring the catalog against the pantry",
				Buckets: prometheus.ExponentialBuckets(0.001, 2, 12),
			},
		),
		recommendationCacheHits: factory.NewCounter(
			prometheus.CounterOpts{
				Name: "recommendation_cache_hits_total",
				Help: "Recommendation results served from cache",
			},
		),
		recommendationCacheMiss: factory.NewCounter(
			prometheus.CounterOpts{
				Name: "recommendation_cache_misses_total",
				Help: "Recommendation results recomputed on cache miss",
			},
		),
	}
}

// Registry exposes the collector's registry for the /metrics endpoint.
func (m *MetricsCollector) Registry() *prometheus.Registry {
	return m.registry
}

// RecordHTTPRequest records metrics for an HTTP request
func (m *MetricsCollector) RecordHTTPRequest(method, path, statusCode string, duration time.Duration) {
	m.httpRequestsTotal.WithLabelValues(method, path, statusCode).Inc()
	m.httpRequestDuration.WithLabelValues(method, path, statusCode).Observe(duration.Seconds())
}

// RecordRecipeCreated increments the recipe creation counter
func (m *MetricsCollector) RecordRecipeCreated() {
	m.recipesCreatedTotal.Inc()
}

// SetPantrySize updates the pantry size gauge
func (m *MetricsCollector) SetPantrySize(n int) {
	m.pantryItemsTotal.Set(float64(n))
}

// RecordConversion records a conversion lookup outcome.
// Outcome is one of "informal", "standard", "density" or "unknown".
func (m *MetricsCollector) RecordConversion(outcome string) {
	m.conversionsTotal.WithLabelValues(outcome).Inc()
}

// RecordRecommendation records a full recommendation computation
func (m *MetricsCollector) RecordRecommendation(duration time.Duration) {
	m.recommendationsTotal.Inc()
	m.recommendationDuration.Observe(duration.Seconds())
}

// RecordRecommendationCacheHit increments the cache hit counter
func (m *MetricsCollector) RecordRecommendationCacheHit() {
	m.recommendationCacheHits.Inc()
}

// RecordRecommendationCacheMiss increments the cache miss counter
func (m *MetricsCollector) RecordRecommendationCacheMiss() {
	m.recommendationCacheMiss.Inc()
}
