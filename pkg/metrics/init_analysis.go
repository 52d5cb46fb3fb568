package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

func (r *Registry) initAnalysisMetrics() {
	r.AnalysesTotal = promauto.With(r.registry).NewCounterVec(
		prometheus.CounterOpts{
			Name: "rincraft_analyses_total",
			Help: "Total number of topology analysis passes",
		},
		[]string{"pass", "status"},
	)

	r.AnalysisDuration = promauto.With(r.registry).NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "rincraft_analysis_duration_seconds",
			Help:    "Topology analysis pass duration in seconds",
			Buckets: []float64{0.0001, 0.001, 0.01, 0.1, 1.0},
		},
		[]string{"pass"},
	)

	r.SegmentsPerChain = promauto.With(r.registry).NewHistogram(
		prometheus.HistogramOpts{
			Name:    "rincraft_segments_per_chain",
			Help:    "Secondary-structure segments found per analyzed chain",
			Buckets: []float64{1, 2, 4, 8, 16, 32, 64},
		},
	)

	r.SubgraphsPerRun = promauto.With(r.registry).NewHistogram(
		prometheus.HistogramOpts{
			Name:    "rincraft_subgraphs_per_run",
			Help:    "Interacting-pair subgraphs produced per analysis run",
			Buckets: []float64{1, 2, 4, 8, 16, 32, 64},
		},
	)

	r.SubgraphEdgeCount = promauto.With(r.registry).NewHistogram(
		prometheus.HistogramOpts{
			Name:    "rincraft_subgraph_edges",
			Help:    "Qualifying edges per derived subgraph",
			Buckets: []float64{1, 2, 5, 10, 25, 50, 100},
		},
	)
}

func (r *Registry) initLayoutMetrics() {
	r.LayoutsTotal = promauto.With(r.registry).NewCounterVec(
		prometheus.CounterOpts{
			Name: "rincraft_layouts_total",
			Help: "Total number of bipartite layout computations",
		},
		[]string{"orientation"},
	)

	r.LayoutReversals = promauto.With(r.registry).NewCounter(
		prometheus.CounterOpts{
			Name: "rincraft_layout_reversals_total",
			Help: "Layouts where the reversed secondary ordering won",
		},
	)

	r.LayoutEdgeLength = promauto.With(r.registry).NewHistogram(
		prometheus.HistogramOpts{
			Name:    "rincraft_layout_total_edge_length",
			Help:    "Total Euclidean edge length of the chosen arrangement",
			Buckets: []float64{1, 5, 10, 50, 100, 500, 1000},
		},
	)
}
