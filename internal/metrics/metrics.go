package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Query/cache metrics
var (
	// CacheHits tracks cache lookups served without a network call, by resource.
	CacheHits = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "query_cache_hits_total",
			Help: "Cache lookups served from a fresh entry, by resource",
		},
		[]string{"resource"},
	)

	// CacheMisses tracks cache lookups that triggered a fetch, by resource.
	CacheMisses = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "query_cache_misses_total",
			Help: "Cache lookups that triggered a fetch, by resource",
		},
		[]string{"resource"},
	)

	// CacheEvictions tracks entries removed after the retention window.
	CacheEvictions = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "query_cache_evictions_total",
			Help: "Cache entries evicted after the retention window",
		},
	)

	// FetchRetries tracks automatic retries of failed fetches, by resource.
	FetchRetries = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "query_fetch_retries_total",
			Help: "Automatic retries of failed fetches, by resource",
		},
		[]string{"resource"},
	)
)

// API client metrics
var (
	// RequestDuration tracks API request latency in seconds by resource and method.
	RequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "api_request_duration_seconds",
			Help:    "API request duration in seconds",
			Buckets: []float64{.005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10},
		},
		[]string{"resource", "method"},
	)

	// RequestErrors tracks failed API requests by resource and error type.
	RequestErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "api_request_errors_total",
			Help: "Failed API requests by resource and error type",
		},
		[]string{"resource", "type"},
	)

	// BreakerStateChanges tracks circuit breaker state transitions.
	BreakerStateChanges = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "api_breaker_state_changes_total",
			Help: "Circuit breaker state transitions by new state",
		},
		[]string{"state"},
	)
)

// Mutation metrics
var (
	// MutationsTotal tracks mutations by resource, operation, and outcome.
	MutationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "mutations_total",
			Help: "Mutations by resource, operation, and outcome",
		},
		[]string{"resource", "operation", "outcome"},
	)
)
