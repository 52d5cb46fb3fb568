package layout

import (
	"math"
	"sort"

	"github.com/proteincraft/rincraft/pkg/graph"
	"github.com/proteincraft/rincraft/pkg/logging"
	"github.com/proteincraft/rincraft/pkg/metrics"
)

// Position represents a 2D coordinate
type Position struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Orientation selects the bipartite arrangement of the two groups.
type Orientation string

const (
	// OrientationVertical places the groups as two columns.
	OrientationVertical Orientation = "vertical"
	// OrientationHorizontal places the groups as two rows.
	OrientationHorizontal Orientation = "horizontal"
)

// Config configures the bipartite layout geometry.
type Config struct {
	ColumnGap float64 // X distance between the two columns (vertical)
	RowStep   float64 // Y step between consecutive nodes in a column
	RowGap    float64 // Y distance between the two rows (horizontal)
	ColStep   float64 // X step between consecutive nodes in a row
}

// DefaultConfig returns the geometry the renderer expects.
func DefaultConfig() *Config {
	return &Config{
		ColumnGap: 3.0,
		RowStep:   -1.5,
		RowGap:    -1.5,
		ColStep:   3.0,
	}
}

// BipartiteLayout arranges two node groups as columns or rows, each
// group ordered by ascending sequence position.
type BipartiteLayout struct {
	config  *Config
	logger  logging.Logger
	metrics *metrics.Registry
}

// NewBipartiteLayout creates a bipartite layout. A nil config gets the
// default geometry; a nil logger is replaced with a no-op logger; a nil
// registry is replaced with the default registry.
func NewBipartiteLayout(config *Config, logger logging.Logger, reg *metrics.Registry) *BipartiteLayout {
	if config == nil {
		config = DefaultConfig()
	}
	if logger == nil {
		logger = logging.NewNopLogger()
	}
	if reg == nil {
		reg = metrics.DefaultRegistry()
	}
	return &BipartiteLayout{config: config, logger: logger, metrics: reg}
}

// ComputeLayout places groupA and groupB per the requested orientation
// and returns positions keyed by node ID. The input graph is never
// mutated. An unrecognized orientation falls back to vertical with a
// logged warning.
func (bl *BipartiteLayout) ComputeLayout(orientation Orientation, groupA, groupB []*graph.Node) map[string]Position {
	switch orientation {
	case OrientationVertical, OrientationHorizontal:
	default:
		bl.logger.Warn("unrecognized layout orientation, using vertical",
			logging.String("orientation", string(orientation)))
		orientation = OrientationVertical
	}
	bl.metrics.RecordLayout(string(orientation), false)

	a := sortedByPosition(groupA)
	b := sortedByPosition(groupB)
	positions := make(map[string]Position, len(a)+len(b))

	if orientation == OrientationHorizontal {
		x := 0.0
		for _, n := range a {
			positions[n.ID] = Position{X: x, Y: 0}
			x += bl.config.ColStep
		}
		x = 0.0
		for _, n := range b {
			positions[n.ID] = Position{X: x, Y: bl.config.RowGap}
			x += bl.config.ColStep
		}
		return positions
	}

	y := 0.0
	for _, n := range a {
		positions[n.ID] = Position{X: 0, Y: y}
		y += bl.config.RowStep
	}
	y = 0.0
	for _, n := range b {
		positions[n.ID] = Position{X: bl.config.ColumnGap, Y: y}
		y += bl.config.RowStep
	}
	return positions
}

func sortedByPosition(nodes []*graph.Node) []*graph.Node {
	out := make([]*graph.Node, len(nodes))
	copy(out, nodes)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Position < out[j].Position
	})
	return out
}

// TotalEdgeLength sums the Euclidean length of every subgraph edge
// under the given positions. Edges with an unpositioned endpoint
// contribute nothing.
func TotalEdgeLength(sg *graph.Subgraph, positions map[string]Position) float64 {
	total := 0.0
	for _, e := range sg.Edges {
		src, ok := positions[e.Source]
		if !ok {
			continue
		}
		dst, ok := positions[e.Target]
		if !ok {
			continue
		}
		dx := src.X - dst.X
		dy := src.Y - dst.Y
		total += math.Sqrt(dx*dx + dy*dy)
	}
	return total
}
