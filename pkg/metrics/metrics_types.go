package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

// Registry holds all metrics for the application
type Registry struct {
	// Import Metrics
	ImportsTotal        *prometheus.CounterVec
	ImportDuration      prometheus.Histogram
	ImportRowsTotal     *prometheus.CounterVec
	ImportRowsSkipped   *prometheus.CounterVec
	ImportFieldDefaults prometheus.Counter

	// Graph Metrics
	GraphNodesTotal prometheus.Gauge
	GraphEdgesTotal prometheus.Gauge

	// Analysis Metrics
	AnalysesTotal     *prometheus.CounterVec
	AnalysisDuration  *prometheus.HistogramVec
	SegmentsPerChain  prometheus.Histogram
	SubgraphsPerRun   prometheus.Histogram
	SubgraphEdgeCount prometheus.Histogram

	// Layout Metrics
	LayoutsTotal     *prometheus.CounterVec
	LayoutReversals  prometheus.Counter
	LayoutEdgeLength prometheus.Histogram

	registry *prometheus.Registry
	mu       sync.RWMutex
}

var (
	// Global registry instance
	defaultRegistry *Registry
	once            sync.Once
)

// DefaultRegistry returns the global metrics registry
func DefaultRegistry() *Registry {
	once.Do(func() {
		defaultRegistry = NewRegistry()
	})
	return defaultRegistry
}

// NewRegistry creates a new metrics registry with all metrics initialized
func NewRegistry() *Registry {
	reg := prometheus.NewRegistry()

	r := &Registry{
		registry: reg,
	}

	r.initImportMetrics()
	r.initAnalysisMetrics()
	r.initLayoutMetrics()

	return r
}

// GetPrometheusRegistry returns the underlying Prometheus registry
func (r *Registry) GetPrometheusRegistry() *prometheus.Registry {
	return r.registry
}
