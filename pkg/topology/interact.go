package topology

import (
	"fmt"

	"github.com/proteincraft/rincraft/pkg/graph"
)

// Qualifies reports whether an edge participates in topology analysis:
// never covalent, and van der Waals only when explicitly included.
func Qualifies(e *graph.Edge, includeVDW bool) bool {
	if e.Interaction == "" {
		return false
	}
	if graph.IsCovalent(e.Interaction) {
		return false
	}
	if e.Category == graph.CategoryVDW && !includeVDW {
		return false
	}
	return true
}

// Interacts reports whether at least one qualifying edge connects the
// two segments. The search walks the edges incident to segment a and
// short-circuits on the first match, so the result is independent of
// argument order.
func Interacts(g *graph.Graph, a, b *Segment, includeVDW bool) bool {
	inB := make(map[string]bool, len(b.Nodes))
	for _, n := range b.Nodes {
		inB[n.ID] = true
	}
	for _, n := range a.Nodes {
		for _, e := range g.IncidentEdges(n.ID) {
			if !Qualifies(e, includeVDW) {
				continue
			}
			if inB[e.Other(n.ID)] {
				return true
			}
		}
	}
	return false
}

// PairName names the derived subgraph for an interacting segment pair.
func PairName(a, b *Segment) string {
	return fmt.Sprintf("CompA_%d_%d__CompB_%d_%d", a.StartPos, a.EndPos, b.StartPos, b.EndPos)
}

// PairSubgraph builds a fresh derived view for one interacting pair:
// the union of both segments' nodes plus every qualifying edge that
// crosses between them. Qualifying edges inside a single segment are
// excluded. Nodes left without a qualifying edge are kept and flagged
// Isolated for the renderer.
func PairSubgraph(g *graph.Graph, a, b *Segment, includeVDW bool) *graph.Subgraph {
	sg := graph.NewSubgraph(PairName(a, b))

	inA := make(map[string]bool, len(a.Nodes))
	for _, n := range a.Nodes {
		inA[n.ID] = true
		sg.AddNode(n)
	}
	inB := make(map[string]bool, len(b.Nodes))
	for _, n := range b.Nodes {
		inB[n.ID] = true
		sg.AddNode(n)
	}

	seen := make(map[*graph.Edge]bool)
	for _, n := range a.Nodes {
		for _, e := range g.IncidentEdges(n.ID) {
			if seen[e] || !Qualifies(e, includeVDW) {
				continue
			}
			crosses := (inA[e.Source] && inB[e.Target]) || (inB[e.Source] && inA[e.Target])
			if !crosses {
				continue
			}
			seen[e] = true
			sg.AddEdge(e)
		}
	}

	sg.MarkIsolated()
	return sg
}

// SegmentPair couples an interacting segment pair with its derived view.
type SegmentPair struct {
	A        *Segment
	B        *Segment
	Subgraph *graph.Subgraph
}

// IntraInteractions segments the given chain and builds one subgraph per
// interacting segment pair, registering each on the graph (replacing any
// prior view of the same name). Returns the pairs in (i, j) order.
func IntraInteractions(g *graph.Graph, chain string, includeVDW bool) []SegmentPair {
	segments := SegmentChain(g, chain)

	var pairs []SegmentPair
	for i := range segments {
		for j := i + 1; j < len(segments); j++ {
			if !Interacts(g, &segments[i], &segments[j], includeVDW) {
				continue
			}
			sg := PairSubgraph(g, &segments[i], &segments[j], includeVDW)
			g.RegisterSubgraph(sg)
			pairs = append(pairs, SegmentPair{A: &segments[i], B: &segments[j], Subgraph: sg})
		}
	}
	return pairs
}
