// Package metrics provides Prometheus metrics for the records dashboard
package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "records_dashboard"

// Manager owns the dashboard's metrics and the registry they live on
type Manager struct {
	registry *prometheus.Registry

	extractions        *prometheus.CounterVec
	extractionDuration prometheus.Histogram
	snapshotRecords    prometheus.Gauge
	filterPasses       prometheus.Counter
	filterWarnings     prometheus.Counter
	httpRequests       *prometheus.CounterVec
}

// NewManager registers all metrics on a fresh registry
func NewManager() *Manager {
	reg := prometheus.NewRegistry()
	auto := promauto.With(reg)

	return &Manager{
		registry: reg,
		extractions: auto.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "extractions_total",
			Help:      "Total number of page extractions by result",
		}, []string{"result"}),
		extractionDuration: auto.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "extraction_duration_seconds",
			Help:      "Time spent fetching and extracting a records page",
			Buckets:   prometheus.DefBuckets,
		}),
		snapshotRecords: auto.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "snapshot_records",
			Help:      "Number of records in the current snapshot",
		}),
		filterPasses: auto.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "filter_passes_total",
			Help:      "Total number of filter passes",
		}),
		filterWarnings: auto.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "filter_warnings_total",
			Help:      "Total number of filter steps skipped with a warning",
		}),
		httpRequests: auto.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "Total number of HTTP requests by endpoint and status code",
		}, []string{"endpoint", "status_code"}),
	}
}

// ObserveExtraction records one extraction attempt
func (m *Manager) ObserveExtraction(d time.Duration, records int, err error) {
	if m == nil {
		return
	}
	m.extractionDuration.Observe(d.Seconds())
	if err != nil {
		m.extractions.WithLabelValues("error").Inc()
		return
	}
	m.extractions.WithLabelValues("ok").Inc()
	m.snapshotRecords.Set(float64(records))
}

// ObserveFilter records one filter pass and its warnings
func (m *Manager) ObserveFilter(warnings int) {
	if m == nil {
		return
	}
	m.filterPasses.Inc()
	m.filterWarnings.Add(float64(warnings))
}

// ObserveRequest counts one HTTP request
func (m *Manager) ObserveRequest(endpoint, statusCode string) {
	if m == nil {
		return
	}
	m.httpRequests.WithLabelValues(endpoint, statusCode).Inc()
}

// Handler serves the registry in the Prometheus text format
func (m *Manager) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

// Registry exposes the underlying registry, mainly for tests
func (m *Manager) Registry() *prometheus.Registry {
	return m.registry
}
