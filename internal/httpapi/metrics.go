package httpapi

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics bundles Prometheus collectors for the catalog pipeline.
type Metrics struct {
	Registry          *prometheus.Registry
	SearchesTotal     prometheus.Counter
	ExportsTotal      *prometheus.CounterVec
	ExportErrorsTotal *prometheus.CounterVec
	ExportDuration    *prometheus.HistogramVec
}

// NewMetrics constructs and registers all metrics on a dedicated registry.
func NewMetrics() *Metrics {
	registry := prometheus.NewRegistry()

	searches := prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "catalog_searches_total",
			Help: "Total search requests served.",
		},
	)
	exports := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "catalog_exports_total",
			Help: "Total completed exports by kind.",
		},
		[]string{"kind"},
	)
	exportErrors := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "catalog_export_errors_total",
			Help: "Total failed exports by kind.",
		},
		[]string{"kind"},
	)
	exportDuration := prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "catalog_export_duration_seconds",
			Help:    "Export generation latency by kind.",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"kind"},
	)

	registry.MustRegister(searches, exports, exportErrors, exportDuration)

	return &Metrics{
		Registry:          registry,
		SearchesTotal:     searches,
		ExportsTotal:      exports,
		ExportErrorsTotal: exportErrors,
		ExportDuration:    exportDuration,
	}
}
