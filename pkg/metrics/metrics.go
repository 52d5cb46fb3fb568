package metrics

import (
	"time"
)

// RecordImport records one file-pair import with its duration.
func (r *Registry) RecordImport(status string, duration time.Duration) {
	r.ImportsTotal.WithLabelValues(status).Inc()
	r.ImportDuration.Observe(duration.Seconds())
}

// RecordImportRows records consumed and skipped row counts for one file.
func (r *Registry) RecordImportRows(file string, consumed, shortRows, unknownRefs, fieldDefaults int) {
	r.ImportRowsTotal.WithLabelValues(file).Add(float64(consumed))
	if shortRows > 0 {
		r.ImportRowsSkipped.WithLabelValues(file, "short_row").Add(float64(shortRows))
	}
	if unknownRefs > 0 {
		r.ImportRowsSkipped.WithLabelValues(file, "unknown_node").Add(float64(unknownRefs))
	}
	if fieldDefaults > 0 {
		r.ImportFieldDefaults.Add(float64(fieldDefaults))
	}
}

// SetGraphSize records the size of the most recently imported graph.
func (r *Registry) SetGraphSize(nodes, edges int) {
	r.GraphNodesTotal.Set(float64(nodes))
	r.GraphEdgesTotal.Set(float64(edges))
}

// RecordAnalysis records one topology analysis pass.
func (r *Registry) RecordAnalysis(pass, status string, duration time.Duration) {
	r.AnalysesTotal.WithLabelValues(pass, status).Inc()
	r.AnalysisDuration.WithLabelValues(pass).Observe(duration.Seconds())
}

// RecordSegmentation records segment counts for one analyzed chain.
func (r *Registry) RecordSegmentation(segments int) {
	r.SegmentsPerChain.Observe(float64(segments))
}

// RecordSubgraphs records the derived subgraphs of one analysis run.
func (r *Registry) RecordSubgraphs(count int, edgeCounts []int) {
	r.SubgraphsPerRun.Observe(float64(count))
	for _, n := range edgeCounts {
		r.SubgraphEdgeCount.Observe(float64(n))
	}
}

// RecordLayout records one layout computation.
func (r *Registry) RecordLayout(orientation string, reversed bool) {
	r.LayoutsTotal.WithLabelValues(orientation).Inc()
	if reversed {
		r.LayoutReversals.Inc()
	}
}

// ObserveLayoutLength records the total edge length of a chosen layout.
func (r *Registry) ObserveLayoutLength(totalLength float64) {
	r.LayoutEdgeLength.Observe(totalLength)
}
