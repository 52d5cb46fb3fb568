package topology

import (
	"sort"

	"github.com/proteincraft/rincraft/pkg/graph"
)

// Cross-chain subgraph names registered on the graph.
const (
	BinderTargetName      = "BinderTargetInteraction"
	BinderTargetNameNoVDW = "BinderTargetInteractionNoVDW"
)

// InteractingChainNodes identifies the binder and target nodes joined by
// at least one qualifying cross-chain edge. Both lists are sorted by
// ascending sequence position, ready for the layout optimizer.
func InteractingChainNodes(g *graph.Graph, binder, target string, includeVDW bool) ([]*graph.Node, []*graph.Node) {
	binderSet := make(map[string]*graph.Node)
	targetSet := make(map[string]*graph.Node)

	for _, e := range g.Edges() {
		if !Qualifies(e, includeVDW) {
			continue
		}
		src, err := g.NodeByID(e.Source)
		if err != nil {
			continue
		}
		dst, err := g.NodeByID(e.Target)
		if err != nil {
			continue
		}

		switch {
		case src.Chain == binder && dst.Chain == target:
			binderSet[src.ID] = src
			targetSet[dst.ID] = dst
		case src.Chain == target && dst.Chain == binder:
			binderSet[dst.ID] = dst
			targetSet[src.ID] = src
		}
	}

	return sortByPosition(binderSet), sortByPosition(targetSet)
}

func sortByPosition(set map[string]*graph.Node) []*graph.Node {
	out := make([]*graph.Node, 0, len(set))
	for _, n := range set {
		out = append(out, n)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Position != out[j].Position {
			return out[i].Position < out[j].Position
		}
		return out[i].ID < out[j].ID
	})
	return out
}

// CrossChainSubgraph builds a fresh derived view of the qualifying
// binder-target edges: the interacting nodes of both chains plus every
// qualifying edge between the two chains. Same-chain edges are not part
// of this view. The view replaces any registered predecessor of the
// same name.
func CrossChainSubgraph(g *graph.Graph, binder, target string, includeVDW bool) *graph.Subgraph {
	name := BinderTargetName
	if !includeVDW {
		name = BinderTargetNameNoVDW
	}
	sg := graph.NewSubgraph(name)

	binderNodes, targetNodes := InteractingChainNodes(g, binder, target, includeVDW)
	for _, n := range binderNodes {
		sg.AddNode(n)
	}
	for _, n := range targetNodes {
		sg.AddNode(n)
	}

	for _, e := range g.Edges() {
		if !Qualifies(e, includeVDW) {
			continue
		}
		if !sg.Contains(e.Source) || !sg.Contains(e.Target) {
			continue
		}
		src, _ := g.NodeByID(e.Source)
		dst, _ := g.NodeByID(e.Target)
		if src.Chain == dst.Chain {
			continue
		}
		sg.AddEdge(e)
	}

	sg.MarkIsolated()
	g.RegisterSubgraph(sg)
	return sg
}

// InterChainCounts tallies cross-chain interactions by category bucket.
type InterChainCounts struct {
	Total      int
	VDW        int
	HBond      int
	Other      int
	WithoutVDW int
}

// CountInterChain walks every edge once and counts those whose endpoints
// sit on different chains, bucketed by interaction category. Categories
// other than VDW and HBOND, covalent included, land in Other.
func CountInterChain(g *graph.Graph) InterChainCounts {
	var counts InterChainCounts
	for _, e := range g.Edges() {
		src, err := g.NodeByID(e.Source)
		if err != nil {
			continue
		}
		dst, err := g.NodeByID(e.Target)
		if err != nil {
			continue
		}
		if src.Chain == dst.Chain {
			continue
		}
		counts.Total++
		switch e.Category {
		case graph.CategoryVDW:
			counts.VDW++
		case graph.CategoryHBond:
			counts.HBond++
		default:
			counts.Other++
		}
	}
	counts.WithoutVDW = counts.Total - counts.VDW
	return counts
}
