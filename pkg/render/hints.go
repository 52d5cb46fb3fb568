// Package render produces presentation hints and JSON exports for an
// external viewer. Core analysis packages never import it.
package render

import (
	"fmt"

	"github.com/proteincraft/rincraft/pkg/graph"
)

// Node shape codes understood by the downstream renderer.
const (
	ShapeDefault = 15
	ShapeSheet   = 18
	ShapeHelix   = 14
)

// Color is an RGBA tuple.
type Color struct {
	R uint8 `json:"r"`
	G uint8 `json:"g"`
	B uint8 `json:"b"`
	A uint8 `json:"a"`
}

var (
	colorBinderChain = Color{129, 109, 249, 255}
	colorTargetChain = Color{251, 134, 134, 255}

	colorCovalent = Color{20, 20, 20, 255}
	colorVDW      = Color{180, 180, 180, 255}
	colorHBond    = Color{61, 119, 176, 255}
	colorOther    = Color{255, 28, 77, 255}
)

// NodeHint is the per-node presentation record.
type NodeHint struct {
	Shape int    `json:"shape"`
	Color *Color `json:"color,omitempty"`
	Label string `json:"label"`
}

// EdgeHint is the per-edge presentation record.
type EdgeHint struct {
	Color Color `json:"color"`
}

// HintTable maps node and edge identities to presentation hints. It is
// a side table: the graph itself carries no display state.
type HintTable struct {
	Nodes map[string]NodeHint `json:"nodes"`
	Edges []EdgeHint          `json:"edges"`
}

// NodeShape returns the renderer shape code for a residue's secondary
// structure.
func NodeShape(dssp string) int {
	switch dssp {
	case "E":
		return ShapeSheet
	case "H":
		return ShapeHelix
	default:
		return ShapeDefault
	}
}

// NodeColor returns the chain color, or nil for chains the renderer
// colors itself.
func NodeColor(chain string) *Color {
	switch chain {
	case "A":
		c := colorBinderChain
		return &c
	case "B":
		c := colorTargetChain
		return &c
	default:
		return nil
	}
}

// NodeLabel formats the residue label shown next to each node.
func NodeLabel(n *graph.Node) string {
	return fmt.Sprintf("%d:%s", n.Position, n.OneLetter)
}

// EdgeColor returns the interaction category color.
func EdgeColor(category graph.Category) Color {
	switch category {
	case graph.CategoryCovalent:
		return colorCovalent
	case graph.CategoryVDW:
		return colorVDW
	case graph.CategoryHBond:
		return colorHBond
	default:
		return colorOther
	}
}

// BuildHints computes the full presentation side table for a graph.
// Edge hints are indexed parallel to g.Edges().
func BuildHints(g *graph.Graph) *HintTable {
	nodes := g.Nodes()
	edges := g.Edges()
	t := &HintTable{
		Nodes: make(map[string]NodeHint, len(nodes)),
		Edges: make([]EdgeHint, 0, len(edges)),
	}
	for _, n := range nodes {
		t.Nodes[n.ID] = NodeHint{
			Shape: NodeShape(n.Dssp),
			Color: NodeColor(n.Chain),
			Label: NodeLabel(n),
		}
	}
	for _, e := range edges {
		t.Edges = append(t.Edges, EdgeHint{Color: EdgeColor(e.Category)})
	}
	return t
}
