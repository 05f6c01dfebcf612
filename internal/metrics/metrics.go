package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// MetricsRegistry holds all Prometheus metrics for Bidboard
type MetricsRegistry struct {
	// HTTP Metrics
	HTTPRequestsTotal    prometheus.CounterVec
	HTTPRequestDuration  prometheus.HistogramVec
	HTTPRequestsInFlight prometheus.GaugeVec

	// Cache Metrics
	CacheHitsTotal   prometheus.CounterVec
	CacheMissesTotal prometheus.CounterVec

	// Business Metrics
	RankingsComputedTotal  prometheus.Counter
	SchedulesBuiltTotal    prometheus.Counter
	RosterImportsTotal     prometheus.Counter
	RosterPairingsImported prometheus.Gauge
	AssistantRequestsTotal prometheus.CounterVec
	ScheduleBuildDuration  prometheus.Histogram
}

// NewMetricsRegistry initializes and returns a new MetricsRegistry with all metrics
func NewMetricsRegistry() *MetricsRegistry {
	return &MetricsRegistry{
		// HTTP Metrics
		HTTPRequestsTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "bidboard_http_requests_total",
				Help: "Total HTTP requests processed by endpoint, method, and status code",
			},
			[]string{"endpoint", "method", "status_code"},
		),
		HTTPRequestDuration: *promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "bidboard_http_request_duration_seconds",
				Help:    "HTTP request latency distribution in seconds",
				Buckets: []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
			},
			[]string{"endpoint", "method"},
		),
		HTTPRequestsInFlight: *promauto.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "bidboard_http_requests_in_flight",
				Help: "Number of HTTP requests currently being processed",
			},
			[]string{"endpoint"},
		),

		// Cache Metrics
		CacheHitsTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "bidboard_cache_hits_total",
				Help: "Total cache hits by cache key pattern",
			},
			[]string{"cache_key_pattern"},
		),
		CacheMissesTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "bidboard_cache_misses_total",
				Help: "Total cache misses by cache key pattern",
			},
			[]string{"cache_key_pattern"},
		),

		// Business Metrics
		RankingsComputedTotal: promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "bidboard_rankings_computed_total",
				Help: "Total ranking passes over the pairing pool",
			},
		),
		SchedulesBuiltTotal: promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "bidboard_schedules_built_total",
				Help: "Total schedule generation passes (three plans each)",
			},
		),
		RosterImportsTotal: promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "bidboard_roster_imports_total",
				Help: "Total roster CSV imports accepted",
			},
		),
		RosterPairingsImported: promauto.NewGauge(
			prometheus.GaugeOpts{
				Name: "bidboard_roster_pairings",
				Help: "Pairings held from the most recent roster import",
			},
		),
		AssistantRequestsTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "bidboard_assistant_requests_total",
				Help: "Assistant Q&A requests by outcome",
			},
			[]string{"outcome"},
		),
		ScheduleBuildDuration: promauto.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "bidboard_schedule_build_duration_seconds",
				Help:    "Wall time of one three-plan schedule generation",
				Buckets: []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5},
			},
		),
	}
}
