// Package metrics owns the prometheus registry of the service.
package metrics

import (
	"database/sql"
	"net/http"
	"time"

	"pinmap/internal/errors"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "pinmap"

// Store call outcomes.
const (
	OutcomeOK          = "ok"
	OutcomeNotFound    = "not_found"
	OutcomeInvalid     = "invalid"
	OutcomeUnavailable = "unavailable"
	OutcomeError       = "error"
)

// Metrics holds every collector, registered on a private registry.
type Metrics struct {
	registry *prometheus.Registry

	StoreRequests  *prometheus.CounterVec
	StoreDuration  *prometheus.HistogramVec
	BreakerState   *prometheus.GaugeVec
	MarkerOps      *prometheus.CounterVec
	ActiveSessions prometheus.Gauge
	Exports        *prometheus.CounterVec
}

// New creates the collectors and registers them together with the Go
// runtime and process collectors.
func New() *Metrics {
	registry := prometheus.NewRegistry()

	m := &Metrics{
		registry: registry,
		StoreRequests: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "store_requests_total",
				Help:      "Total number of pin store calls",
			},
			[]string{"backend", "operation", "outcome"},
		),
		StoreDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "store_request_duration_seconds",
				Help:      "Pin store call duration in seconds",
				Buckets:   prometheus.DefBuckets,
			},
			[]string{"backend", "operation"},
		),
		BreakerState: prometheus.NewGaugeVec(
			prometheus.GaugeOpts{
				Namespace: namespace,
				Name:      "store_breaker_state",
				Help:      "Circuit breaker state: 0 closed, 1 half-open, 2 open",
			},
			[]string{"name"},
		),
		MarkerOps: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "marker_operations_total",
				Help:      "Markers placed and destroyed on map surfaces",
			},
			[]string{"action"},
		),
		ActiveSessions: prometheus.NewGauge(
			prometheus.GaugeOpts{
				Namespace: namespace,
				Name:      "active_sessions",
				Help:      "Number of open map sessions",
			},
		),
		Exports: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "exports_total",
				Help:      "GeoJSON snapshot exports",
			},
			[]string{"outcome"},
		),
	}

	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		m.StoreRequests,
		m.StoreDuration,
		m.BreakerState,
		m.MarkerOps,
		m.ActiveSessions,
		m.Exports,
	)

	return m
}

// Registry exposes the underlying registry, mainly for tests.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// RegisterDBStats exports connection pool statistics of db under the given name.
func (m *Metrics) RegisterDBStats(db *sql.DB, name string) error {
	if err := m.registry.Register(collectors.NewDBStatsCollector(db, name)); err != nil {
		return errors.Wrap(err, "failed to register db stats collector")
	}

	return nil
}

// Handler serves the registry in the prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

// ObserveStore records one store call.
func (m *Metrics) ObserveStore(backend, operation, outcome string, elapsed time.Duration) {
	m.StoreRequests.WithLabelValues(backend, operation, outcome).Inc()
	m.StoreDuration.WithLabelValues(backend, operation).Observe(elapsed.Seconds())
}

// ObserveMarkers records the result of one reconciliation pass.
func (m *Metrics) ObserveMarkers(placed, destroyed, placeFailed, destroyFailed int) {
	m.MarkerOps.WithLabelValues("placed").Add(float64(placed))
	m.MarkerOps.WithLabelValues("destroyed").Add(float64(destroyed))
	m.MarkerOps.WithLabelValues("place_failed").Add(float64(placeFailed))
	m.MarkerOps.WithLabelValues("destroy_failed").Add(float64(destroyFailed))
}
