package topology

import (
	"github.com/proteincraft/rincraft/pkg/graph"
)

// StructureMetrics is the per-structure summary row produced by the
// analysis passes. Field names follow the downstream results table.
type StructureMetrics struct {
	InterChainTotal      int `json:"inter_chain_total"`
	InterChainWithoutVDW int `json:"inter_chain_without_vdw"`
	InterChainHBond      int `json:"inter_chain_hbond"`
	InterChainVDW        int `json:"inter_chain_vdw"`
	InterChainOther      int `json:"inter_chain_other"`

	BinderComponentsBonds           int `json:"binder_components_bonds"`
	BinderComponentsBondsWithoutVDW int `json:"binder_components_bonds_without_vdw"`

	// BinderTargetBonds counts qualifying cross-chain edges, while the
	// LargestComponent fields count the nodes of the biggest connected
	// component. The mismatch in units is deliberate and load-bearing:
	// downstream score tables are calibrated against it.
	BinderTargetBonds                      int `json:"binder_target_bonds"`
	BinderTargetBondsLargestComponent      int `json:"binder_target_bonds_largest_component"`
	BinderTargetBondsNoVDW                 int `json:"binder_target_bonds_no_vdw"`
	BinderTargetBondsNoVDWLargestComponent int `json:"binder_target_bonds_no_vdw_largest_component"`
}

// ComputeStructureMetrics runs the full analysis over one structure
// graph: inter-chain category tallies, intra-binder segment pair bonds,
// and binder-target connectivity with and without VDW contacts. The
// derived subgraphs it builds are registered on the graph as a side
// effect, replacing any prior runs.
func ComputeStructureMetrics(g *graph.Graph) StructureMetrics {
	var m StructureMetrics

	counts := CountInterChain(g)
	m.InterChainTotal = counts.Total
	m.InterChainWithoutVDW = counts.WithoutVDW
	m.InterChainHBond = counts.HBond
	m.InterChainVDW = counts.VDW
	m.InterChainOther = counts.Other

	for _, p := range IntraInteractions(g, BinderChain, true) {
		m.BinderComponentsBonds += p.Subgraph.EdgeCount()
		for _, e := range p.Subgraph.Edges {
			if e.Category != graph.CategoryVDW {
				m.BinderComponentsBondsWithoutVDW++
			}
		}
	}

	withVDW := CrossChainSubgraph(g, BinderChain, TargetChain, true)
	m.BinderTargetBonds = withVDW.EdgeCount()
	m.BinderTargetBondsLargestComponent = LargestComponentNodes(withVDW)

	noVDW := CrossChainSubgraph(g, BinderChain, TargetChain, false)
	m.BinderTargetBondsNoVDW = noVDW.EdgeCount()
	m.BinderTargetBondsNoVDWLargestComponent = LargestComponentNodes(noVDW)

	return m
}
