// Package metrics provides Prometheus metrics for the healthtrack service.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Manager holds all Prometheus instruments of the service.
type Manager struct {
	registry prometheus.Registerer

	predictionsTotal  *prometheus.CounterVec
	predictionLatency prometheus.Histogram

	narrativeRequests *prometheus.CounterVec
	narrativeLatency  prometheus.Histogram

	storeFailures prometheus.Counter

	httpRequests        *prometheus.CounterVec
	httpRequestDuration *prometheus.HistogramVec
}

// Global metrics manager instance.
var globalManager *Manager

// Custom registry to avoid default Go metrics.
var customRegistry = prometheus.NewRegistry()

func init() {
	globalManager = NewManager(customRegistry)
}

// NewManager creates a metrics manager registering all instruments on reg.
func NewManager(reg prometheus.Registerer) *Manager {
	m := &Manager{registry: reg}

	auto := promauto.With(reg)

	m.predictionsTotal = auto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "healthtrack",
			Name:      "predictions_total",
			Help:      "Total number of risk predictions by outcome label",
		},
		[]string{"outcome"},
	)

	m.predictionLatency = auto.NewHistogram(prometheus.HistogramOpts{
		Namespace: "healthtrack",
		Name:      "prediction_latency_seconds",
		Help:      "Histogram of end-to-end prediction pipeline latency",
		Buckets:   prometheus.DefBuckets,
	})

	m.narrativeRequests = auto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "healthtrack",
			Name:      "narrative_requests_total",
			Help:      "Total number of narrative generations by status",
		},
		[]string{"status"},
	)

	m.narrativeLatency = auto.NewHistogram(prometheus.HistogramOpts{
		Namespace: "healthtrack",
		Name:      "narrative_latency_seconds",
		Help:      "Histogram of narrative generation latency including the completion call",
		Buckets:   prometheus.DefBuckets,
	})

	m.storeFailures = auto.NewCounter(prometheus.CounterOpts{
		Namespace: "healthtrack",
		Name:      "store_failures_total",
		Help:      "Total number of prediction store write failures surfaced as warnings",
	})

	m.httpRequests = auto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "healthtrack",
			Name:      "http_requests_total",
			Help:      "Total number of HTTP requests by endpoint, method and status code",
		},
		[]string{"endpoint", "method", "status_code"},
	)

	m.httpRequestDuration = auto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "healthtrack",
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request duration by endpoint, method and status code",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"endpoint", "method", "status_code"},
	)

	return m
}

// RecordPrediction increments the prediction counter for the given outcome.
func RecordPrediction(outcome string) {
	globalManager.predictionsTotal.WithLabelValues(outcome).Inc()
}

// RecordPredictionLatency records end-to-end prediction pipeline latency.
func RecordPredictionLatency(seconds float64) {
	globalManager.predictionLatency.Observe(seconds)
}

// RecordNarrativeRequest increments the narrative counter for the given
// status ("ok" or "error").
func RecordNarrativeRequest(status string) {
	globalManager.narrativeRequests.WithLabelValues(status).Inc()
}

// RecordNarrativeLatency records narrative generation latency.
func RecordNarrativeLatency(seconds float64) {
	globalManager.narrativeLatency.Observe(seconds)
}

// RecordStoreFailure increments the store failure counter.
func RecordStoreFailure() {
	globalManager.storeFailures.Inc()
}

// RecordHTTPRequest records one finished HTTP request.
func RecordHTTPRequest(endpoint, method, statusCode string, durationSeconds float64) {
	globalManager.httpRequests.WithLabelValues(endpoint, method, statusCode).Inc()
	globalManager.httpRequestDuration.WithLabelValues(endpoint, method, statusCode).Observe(durationSeconds)
}

// GetRegistry returns the custom Prometheus registry used by our metrics.
func GetRegistry() *prometheus.Registry {
	return customRegistry
}
