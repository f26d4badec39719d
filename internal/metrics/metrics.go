package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds all Prometheus metrics for the application
// Using promauto automatically registers metrics with the default registry

var (
	// ==================== HTTP METRICS ====================

	// HTTPRequestDuration tracks the duration of HTTP requests
	// Histogram allows us to calculate percentiles (P50, P95, P99)
	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "Duration of HTTP requests in seconds",
			Buckets: []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10},
		},
		[]string{"method", "endpoint", "status"},
	)

	// HTTPRequestsTotal counts total HTTP requests
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "endpoint", "status"},
	)

	// HTTPRequestsInFlight tracks currently processing requests
	HTTPRequestsInFlight = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "http_requests_in_flight",
			Help: "Number of HTTP requests currently being processed",
		},
	)

	// ==================== PROBE METRICS ====================

	// ProbeDuration tracks liveness probe round-trip latency
	// Bucket range is wide because probes hit arbitrary external hosts
	ProbeDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "probe_duration_seconds",
			Help:    "Duration of URI liveness probes in seconds",
			Buckets: []float64{.01, .05, .1, .25, .5, 1, 2.5, 5, 10},
		},
	)

	// ProbesTotal counts probes by outcome (live or dead)
	ProbesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "probes_total",
			Help: "Total number of URI liveness probes by outcome",
		},
		[]string{"outcome"},
	)

	// ==================== BUSINESS METRICS ====================

	// RegistrationsAcceptedTotal counts accepted registrations
	RegistrationsAcceptedTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "registrations_accepted_total",
			Help: "Total number of accepted bookmark registrations",
		},
	)

	// RegistrationsRejectedTotal counts rejected registrations
	RegistrationsRejectedTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "registrations_rejected_total",
			Help: "Total number of rejected bookmark registrations",
		},
	)

	// RedirectsTotal counts successful redirects
	RedirectsTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "redirects_total",
			Help: "Total number of successful redirects",
		},
	)

	// LookupMissesTotal counts lookups of unknown short names
	LookupMissesTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "lookup_misses_total",
			Help: "Total number of lookups for unregistered short names",
		},
	)

	// BookmarkCount tracks the number of registered mappings
	BookmarkCount = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "bookmarks",
			Help: "Number of registered short name mappings",
		},
	)
)

// RecordProbe records one probe outcome ("live" or "dead") with its latency
func RecordProbe(outcome string, seconds float64) {
	ProbeDuration.Observe(seconds)
	ProbesTotal.WithLabelValues(outcome).Inc()
}

// RecordAccepted increments the accepted registrations counter
func RecordAccepted() {
	RegistrationsAcceptedTotal.Inc()
}

// RecordRejected increments the rejected registrations counter
func RecordRejected() {
	RegistrationsRejectedTotal.Inc()
}

// RecordRedirect increments the redirect counter
func RecordRedirect() {
	RedirectsTotal.Inc()
}

// RecordLookupMiss increments the unknown-short-name counter
func RecordLookupMiss() {
	LookupMissesTotal.Inc()
}
