package render

import (
	"encoding/json"

	"github.com/proteincraft/rincraft/pkg/graph"
	"github.com/proteincraft/rincraft/pkg/layout"
)

// Visualization bundles a graph view with layout positions and
// presentation hints for export to the host renderer.
type Visualization struct {
	Name      string
	Nodes     []*graph.Node
	Edges     []*graph.Edge
	Positions map[string]layout.Position
	Hints     *HintTable
}

// FromGraph builds a visualization over the whole structure graph.
func FromGraph(g *graph.Graph, positions map[string]layout.Position) *Visualization {
	return &Visualization{
		Name:      g.Name,
		Nodes:     g.Nodes(),
		Edges:     g.Edges(),
		Positions: positions,
		Hints:     BuildHints(g),
	}
}

// FromSubgraph builds a visualization over a derived subgraph, reusing
// hints computed for the parent graph.
func FromSubgraph(sg *graph.Subgraph, positions map[string]layout.Position, hints *HintTable) *Visualization {
	return &Visualization{
		Name:      sg.Name,
		Nodes:     sg.Nodes,
		Edges:     sg.Edges,
		Positions: positions,
		Hints:     hints,
	}
}

// ExportJSON exports the visualization to JSON
func (v *Visualization) ExportJSON() ([]byte, error) {
	type NodeViz struct {
		ID        string  `json:"id"`
		Chain     string  `json:"chain"`
		Position  int     `json:"position"`
		Residue   string  `json:"residue"`
		OneLetter string  `json:"oneLetter"`
		Dssp      string  `json:"dssp"`
		X         float64 `json:"x"`
		Y         float64 `json:"y"`
		Shape     int     `json:"shape"`
		Color     *Color  `json:"color,omitempty"`
		Label     string  `json:"label"`
	}

	type EdgeViz struct {
		Source      string  `json:"source"`
		Target      string  `json:"target"`
		Interaction string  `json:"interaction"`
		Category    string  `json:"category"`
		Distance    float64 `json:"distance"`
		Color       Color   `json:"color"`
	}

	type VizData struct {
		Name  string    `json:"name"`
		Nodes []NodeViz `json:"nodes"`
		Edges []EdgeViz `json:"edges"`
	}

	data := VizData{
		Name:  v.Name,
		Nodes: make([]NodeViz, 0, len(v.Nodes)),
		Edges: make([]EdgeViz, 0, len(v.Edges)),
	}

	for _, n := range v.Nodes {
		pos := v.Positions[n.ID]
		nv := NodeViz{
			ID:        n.ID,
			Chain:     n.Chain,
			Position:  n.Position,
			Residue:   n.Residue,
			OneLetter: n.OneLetter,
			Dssp:      n.Dssp,
			X:         pos.X,
			Y:         pos.Y,
		}
		if v.Hints != nil {
			if h, ok := v.Hints.Nodes[n.ID]; ok {
				nv.Shape = h.Shape
				nv.Color = h.Color
				nv.Label = h.Label
			}
		}
		data.Nodes = append(data.Nodes, nv)
	}

	for _, e := range v.Edges {
		data.Edges = append(data.Edges, EdgeViz{
			Source:      e.Source,
			Target:      e.Target,
			Interaction: e.Interaction,
			Category:    e.Category.String(),
			Distance:    e.Distance,
			Color:       EdgeColor(e.Category),
		})
	}

	return json.Marshal(data)
}
