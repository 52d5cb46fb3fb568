package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

func (r *Registry) initImportMetrics() {
	r.ImportsTotal = promauto.With(r.registry).NewCounterVec(
		prometheus.CounterOpts{
			Name: "rincraft_imports_total",
			Help: "Total number of RIN file-pair imports",
		},
		[]string{"status"},
	)

	r.ImportDuration = promauto.With(r.registry).NewHistogram(
		prometheus.HistogramOpts{
			Name:    "rincraft_import_duration_seconds",
			Help:    "Import duration in seconds",
			Buckets: []float64{0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1.0, 5.0},
		},
	)

	r.ImportRowsTotal = promauto.With(r.registry).NewCounterVec(
		prometheus.CounterOpts{
			Name: "rincraft_import_rows_total",
			Help: "Total number of data rows consumed from RIN files",
		},
		[]string{"file"},
	)

	r.ImportRowsSkipped = promauto.With(r.registry).NewCounterVec(
		prometheus.CounterOpts{
			Name: "rincraft_import_rows_skipped_total",
			Help: "Data rows skipped for too few fields or unknown node references",
		},
		[]string{"file", "reason"},
	)

	r.ImportFieldDefaults = promauto.With(r.registry).NewCounter(
		prometheus.CounterOpts{
			Name: "rincraft_import_field_defaults_total",
			Help: "Numeric fields that failed to parse and were defaulted to zero",
		},
	)

	r.GraphNodesTotal = promauto.With(r.registry).NewGauge(
		prometheus.GaugeOpts{
			Name: "rincraft_graph_nodes_total",
			Help: "Number of residue nodes in the most recently imported graph",
		},
	)

	r.GraphEdgesTotal = promauto.With(r.registry).NewGauge(
		prometheus.GaugeOpts{
			Name: "rincraft_graph_edges_total",
			Help: "Number of interaction edges in the most recently imported graph",
		},
	)
}
