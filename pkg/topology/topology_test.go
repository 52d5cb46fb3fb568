package topology

import (
	"testing"

	"github.com/proteincraft/rincraft/pkg/graph"
)

func addNode(t *testing.T, g *graph.Graph, id, chain string, pos int, dssp string) *graph.Node {
	t.Helper()
	n := &graph.Node{ID: id, Chain: chain, Position: pos, Residue: "ALA", OneLetter: "A", Dssp: dssp}
	if err := g.AddNode(n); err != nil {
		t.Fatalf("AddNode(%s): %v", id, err)
	}
	return n
}

func addEdge(t *testing.T, g *graph.Graph, src, dst, interaction string) {
	t.Helper()
	e := &graph.Edge{Source: src, Target: dst, Interaction: interaction, Category: graph.Classify(interaction)}
	if err := g.AddEdge(e); err != nil {
		t.Fatalf("AddEdge(%s-%s): %v", src, dst, err)
	}
}

// twoSegmentGraph builds chain A with a helix at 1-2 and a strand at
// 5-6, plus chain B loop residues at 1-2.
func twoSegmentGraph(t *testing.T) *graph.Graph {
	t.Helper()
	g := graph.New("RING_test")
	addNode(t, g, "A:1:_:ALA", "A", 1, "H")
	addNode(t, g, "A:2:_:GLY", "A", 2, "H")
	addNode(t, g, "A:5:_:SER", "A", 5, "E")
	addNode(t, g, "A:6:_:LEU", "A", 6, "E")
	addNode(t, g, "B:1:_:TRP", "B", 1, " ")
	addNode(t, g, "B:2:_:TYR", "B", 2, " ")
	return g
}

func TestSegmentChain(t *testing.T) {
	g := twoSegmentGraph(t)

	segments := SegmentChain(g, "A")
	if len(segments) != 2 {
		t.Fatalf("expected 2 segments, got %d", len(segments))
	}
	if segments[0].Code != "H" || segments[0].StartPos != 1 || segments[0].EndPos != 2 {
		t.Errorf("unexpected first segment: %+v", segments[0])
	}
	if segments[1].Code != "E" || segments[1].StartPos != 5 || segments[1].EndPos != 6 {
		t.Errorf("unexpected second segment: %+v", segments[1])
	}

	if got := SegmentChain(g, "B"); len(got) != 0 {
		t.Errorf("loop-only chain must yield no segments, got %d", len(got))
	}
}

func TestSegmentChainBreaks(t *testing.T) {
	g := graph.New("RING_test")
	addNode(t, g, "A:1:_:ALA", "A", 1, "H")
	addNode(t, g, "A:2:_:GLY", "A", 2, "E") // code change breaks the run
	addNode(t, g, "A:3:_:SER", "A", 3, "E")
	addNode(t, g, "A:5:_:LEU", "A", 5, "E") // position gap breaks the run

	segments := SegmentChain(g, "A")
	if len(segments) != 3 {
		t.Fatalf("expected 3 segments, got %d", len(segments))
	}
	spans := [][2]int{{1, 1}, {2, 3}, {5, 5}}
	for i, want := range spans {
		if segments[i].StartPos != want[0] || segments[i].EndPos != want[1] {
			t.Errorf("segment %d: got %d-%d, want %d-%d",
				i, segments[i].StartPos, segments[i].EndPos, want[0], want[1])
		}
	}
}

func TestSegmentChainDeterministic(t *testing.T) {
	g := twoSegmentGraph(t)
	first := SegmentChain(g, "A")
	second := SegmentChain(g, "A")
	if len(first) != len(second) {
		t.Fatalf("segment count changed between runs: %d vs %d", len(first), len(second))
	}
	for i := range first {
		if first[i].Name() != second[i].Name() {
			t.Errorf("segment %d differs between runs: %s vs %s", i, first[i].Name(), second[i].Name())
		}
	}
}

func TestQualifies(t *testing.T) {
	tests := []struct {
		interaction string
		includeVDW  bool
		want        bool
	}{
		{"HBOND:MC_MC", false, true},
		{"IONIC:SC_SC", false, true},
		{"VDW:SC_SC", true, true},
		{"VDW:SC_SC", false, false},
		{"COV:PEP", true, false},
		{"PEPTIDE BOND", true, false},
		{"", true, false},
	}
	for _, tt := range tests {
		e := &graph.Edge{Interaction: tt.interaction, Category: graph.Classify(tt.interaction)}
		if got := Qualifies(e, tt.includeVDW); got != tt.want {
			t.Errorf("Qualifies(%q, vdw=%v) = %v, want %v", tt.interaction, tt.includeVDW, got, tt.want)
		}
	}
}

func TestInteractsSymmetry(t *testing.T) {
	g := twoSegmentGraph(t)
	addEdge(t, g, "A:1:_:ALA", "A:5:_:SER", "HBOND:MC_MC")

	segments := SegmentChain(g, "A")
	a, b := &segments[0], &segments[1]

	if !Interacts(g, a, b, false) {
		t.Error("segments joined by a hydrogen bond must interact")
	}
	if Interacts(g, a, b, false) != Interacts(g, b, a, false) {
		t.Error("Interacts must be symmetric")
	}
}

func TestInteractsFilters(t *testing.T) {
	g := twoSegmentGraph(t)
	addEdge(t, g, "A:2:_:GLY", "A:5:_:SER", "VDW:SC_SC")
	addEdge(t, g, "A:1:_:ALA", "A:6:_:LEU", "COV:DISULFIDE")

	segments := SegmentChain(g, "A")
	a, b := &segments[0], &segments[1]

	if Interacts(g, a, b, false) {
		t.Error("VDW-only contact must not qualify when VDW is excluded")
	}
	if !Interacts(g, a, b, true) {
		t.Error("VDW contact must qualify when VDW is included")
	}
}

func TestPairSubgraph(t *testing.T) {
	g := twoSegmentGraph(t)
	addEdge(t, g, "A:1:_:ALA", "A:5:_:SER", "HBOND:MC_MC")
	addEdge(t, g, "A:1:_:ALA", "A:2:_:GLY", "IONIC:SC_SC") // same-segment: excluded
	addEdge(t, g, "A:2:_:GLY", "A:6:_:LEU", "COV:DISULFIDE")

	segments := SegmentChain(g, "A")
	sg := PairSubgraph(g, &segments[0], &segments[1], true)

	if sg.Name != "CompA_1_2__CompB_5_6" {
		t.Errorf("unexpected pair name %q", sg.Name)
	}
	if sg.NodeCount() != 4 {
		t.Errorf("expected union of both segments (4 nodes), got %d", sg.NodeCount())
	}
	if sg.EdgeCount() != 1 {
		t.Fatalf("expected only the qualifying cross-segment edge, got %d", sg.EdgeCount())
	}
	if sg.Edges[0].Interaction != "HBOND:MC_MC" {
		t.Errorf("unexpected edge kept: %+v", sg.Edges[0])
	}
	if !sg.Isolated["A:2:_:GLY"] {
		t.Error("node without qualifying pair edges must be flagged isolated")
	}
}

func TestIntraInteractionsRegistersViews(t *testing.T) {
	g := twoSegmentGraph(t)
	addEdge(t, g, "A:1:_:ALA", "A:5:_:SER", "HBOND:MC_MC")

	pairs := IntraInteractions(g, "A", true)
	if len(pairs) != 1 {
		t.Fatalf("expected 1 interacting pair, got %d", len(pairs))
	}
	name := pairs[0].Subgraph.Name
	if g.SubgraphByName(name) != pairs[0].Subgraph {
		t.Error("pair subgraph must be registered on the graph")
	}

	// Re-running replaces, never accumulates.
	again := IntraInteractions(g, "A", true)
	if g.SubgraphByName(name) != again[0].Subgraph {
		t.Error("re-running must replace the registered view")
	}
	if len(g.SubgraphNames()) != 1 {
		t.Errorf("expected 1 registered view, got %v", g.SubgraphNames())
	}
}

func TestConnectedComponents(t *testing.T) {
	g := twoSegmentGraph(t)
	sg := graph.NewSubgraph("view")
	for _, id := range []string{"A:1:_:ALA", "A:2:_:GLY", "A:5:_:SER", "A:6:_:LEU"} {
		n, err := g.NodeByID(id)
		if err != nil {
			t.Fatalf("NodeByID(%s): %v", id, err)
		}
		sg.AddNode(n)
	}
	sg.AddEdge(&graph.Edge{Source: "A:1:_:ALA", Target: "A:2:_:GLY", Interaction: "HBOND:MC_MC", Category: graph.CategoryHBond})

	components := ConnectedComponents(sg)
	if len(components) != 3 {
		t.Fatalf("expected 3 components (one pair, two singletons), got %d", len(components))
	}
	if LargestComponentNodes(sg) != 2 {
		t.Errorf("expected largest component of 2 nodes, got %d", LargestComponentNodes(sg))
	}

	empty := graph.NewSubgraph("empty")
	if LargestComponentNodes(empty) != 0 {
		t.Error("empty view must report 0")
	}
}

func TestCountInterChain(t *testing.T) {
	g := twoSegmentGraph(t)
	addEdge(t, g, "A:1:_:ALA", "B:1:_:TRP", "HBOND:MC_MC")
	addEdge(t, g, "A:2:_:GLY", "B:1:_:TRP", "VDW:SC_SC")
	addEdge(t, g, "A:5:_:SER", "B:2:_:TYR", "IONIC:SC_SC")
	addEdge(t, g, "A:1:_:ALA", "A:2:_:GLY", "HBOND:MC_MC") // same chain: ignored

	counts := CountInterChain(g)
	if counts.Total != 3 {
		t.Errorf("expected 3 inter-chain edges, got %d", counts.Total)
	}
	if counts.HBond != 1 || counts.VDW != 1 || counts.Other != 1 {
		t.Errorf("unexpected category buckets: %+v", counts)
	}
	if counts.WithoutVDW != 2 {
		t.Errorf("expected 2 without VDW, got %d", counts.WithoutVDW)
	}
}

func TestInteractingChainNodes(t *testing.T) {
	g := twoSegmentGraph(t)
	addEdge(t, g, "A:5:_:SER", "B:2:_:TYR", "HBOND:MC_MC")
	addEdge(t, g, "A:1:_:ALA", "B:1:_:TRP", "VDW:SC_SC")
	addEdge(t, g, "A:1:_:ALA", "A:2:_:GLY", "HBOND:MC_MC") // same chain: ignored

	binder, target := InteractingChainNodes(g, "A", "B", true)
	if len(binder) != 2 || len(target) != 2 {
		t.Fatalf("expected 2 binder and 2 target nodes, got %d and %d", len(binder), len(target))
	}
	if binder[0].Position > binder[1].Position {
		t.Error("binder nodes must be sorted by position")
	}

	// Excluding VDW drops the A1-B1 contact entirely.
	binder, target = InteractingChainNodes(g, "A", "B", false)
	if len(binder) != 1 || binder[0].ID != "A:5:_:SER" {
		t.Errorf("expected only the hydrogen-bonded binder node, got %v", binder)
	}
	if len(target) != 1 || target[0].ID != "B:2:_:TYR" {
		t.Errorf("expected only the hydrogen-bonded target node, got %v", target)
	}
}

func TestCrossChainSubgraph(t *testing.T) {
	g := twoSegmentGraph(t)
	addEdge(t, g, "A:1:_:ALA", "B:1:_:TRP", "HBOND:MC_MC")
	addEdge(t, g, "A:2:_:GLY", "B:2:_:TYR", "VDW:SC_SC")
	addEdge(t, g, "A:1:_:ALA", "A:2:_:GLY", "IONIC:SC_SC") // same chain: excluded from view
	addEdge(t, g, "B:1:_:TRP", "B:2:_:TYR", "COV:PEP")

	sg := CrossChainSubgraph(g, "A", "B", true)
	if sg.Name != BinderTargetName {
		t.Errorf("unexpected view name %q", sg.Name)
	}
	if sg.NodeCount() != 4 {
		t.Errorf("expected 4 interacting nodes, got %d", sg.NodeCount())
	}
	if sg.EdgeCount() != 2 {
		t.Errorf("expected only cross-chain qualifying edges, got %d", sg.EdgeCount())
	}
	if g.SubgraphByName(BinderTargetName) != sg {
		t.Error("cross-chain view must be registered on the graph")
	}

	noVDW := CrossChainSubgraph(g, "A", "B", false)
	if noVDW.EdgeCount() != 1 {
		t.Errorf("expected 1 edge without VDW, got %d", noVDW.EdgeCount())
	}
}

func TestComputeStructureMetrics(t *testing.T) {
	g := twoSegmentGraph(t)
	// Intra-binder segment pair contact.
	addEdge(t, g, "A:1:_:ALA", "A:5:_:SER", "HBOND:MC_MC")
	// Binder-target contacts.
	addEdge(t, g, "A:1:_:ALA", "B:1:_:TRP", "HBOND:MC_MC")
	addEdge(t, g, "A:2:_:GLY", "B:1:_:TRP", "VDW:SC_SC")
	addEdge(t, g, "A:6:_:LEU", "B:2:_:TYR", "IONIC:SC_SC")

	m := ComputeStructureMetrics(g)

	if m.InterChainTotal != 3 || m.InterChainWithoutVDW != 2 {
		t.Errorf("unexpected inter-chain totals: %+v", m)
	}
	if m.InterChainHBond != 1 || m.InterChainVDW != 1 || m.InterChainOther != 1 {
		t.Errorf("unexpected inter-chain buckets: %+v", m)
	}
	if m.BinderComponentsBonds != 1 || m.BinderComponentsBondsWithoutVDW != 1 {
		t.Errorf("unexpected binder component bonds: %+v", m)
	}
	if m.BinderTargetBonds != 3 {
		t.Errorf("expected 3 binder-target bonds, got %d", m.BinderTargetBonds)
	}
	// A1-B1 and A2-B1 share B1: a 3-node component. A6-B2 is a 2-node one.
	if m.BinderTargetBondsLargestComponent != 3 {
		t.Errorf("expected largest component of 3 nodes, got %d", m.BinderTargetBondsLargestComponent)
	}
	if m.BinderTargetBondsNoVDW != 2 {
		t.Errorf("expected 2 bonds without VDW, got %d", m.BinderTargetBondsNoVDW)
	}
	if m.BinderTargetBondsNoVDWLargestComponent != 2 {
		t.Errorf("expected largest no-VDW component of 2 nodes, got %d", m.BinderTargetBondsNoVDWLargestComponent)
	}
}

// TestHelixStrandVDWOnlyInterface runs a compact whole-pass check: an
// adjacent helix and strand on chain A joined by one hydrogen bond,
// with chain B attached through a single van der Waals contact only.
func TestHelixStrandVDWOnlyInterface(t *testing.T) {
	g := graph.New("RING_test")
	addNode(t, g, "A:1:_:ALA", "A", 1, "H")
	addNode(t, g, "A:2:_:GLY", "A", 2, "H")
	addNode(t, g, "A:3:_:SER", "A", 3, "E")
	addNode(t, g, "A:4:_:LEU", "A", 4, "E")
	addNode(t, g, "B:1:_:TRP", "B", 1, "L")
	addNode(t, g, "B:2:_:TYR", "B", 2, "L")
	addEdge(t, g, "A:1:_:ALA", "A:4:_:LEU", "HBOND:SC_SC")
	addEdge(t, g, "A:2:_:GLY", "B:1:_:TRP", "VDW:MC_SC")

	segments := SegmentChain(g, "A")
	if len(segments) != 2 {
		t.Fatalf("expected 2 segments, got %d", len(segments))
	}
	if segments[0].Code != "H" || segments[0].StartPos != 1 || segments[0].EndPos != 2 {
		t.Errorf("unexpected helix segment: %+v", segments[0])
	}
	if segments[1].Code != "E" || segments[1].StartPos != 3 || segments[1].EndPos != 4 {
		t.Errorf("unexpected strand segment: %+v", segments[1])
	}
	if got := SegmentChain(g, "B"); len(got) != 0 {
		t.Errorf("loop-only chain must yield no segments, got %d", len(got))
	}

	pairs := IntraInteractions(g, "A", true)
	if len(pairs) != 1 {
		t.Fatalf("helix and strand must interact through the hydrogen bond, got %d pairs", len(pairs))
	}
	sg := pairs[0].Subgraph
	if sg.Name != "CompA_1_2__CompB_3_4" {
		t.Errorf("unexpected pair subgraph name %q", sg.Name)
	}
	if sg.NodeCount() != 4 || sg.EdgeCount() != 1 {
		t.Errorf("pair subgraph has %d nodes / %d edges, want 4 / 1", sg.NodeCount(), sg.EdgeCount())
	}

	// With VDW the interface is the single A2-B1 contact.
	withVDW := CrossChainSubgraph(g, "A", "B", true)
	if withVDW.NodeCount() != 2 || withVDW.EdgeCount() != 1 {
		t.Errorf("VDW interface has %d nodes / %d edges, want 2 / 1", withVDW.NodeCount(), withVDW.EdgeCount())
	}
	if got := LargestComponentNodes(withVDW); got != 2 {
		t.Errorf("largest VDW component = %d, want 2", got)
	}

	// Without VDW no cross-chain edge qualifies at all.
	withoutVDW := CrossChainSubgraph(g, "A", "B", false)
	if withoutVDW.NodeCount() != 0 || withoutVDW.EdgeCount() != 0 {
		t.Errorf("no-VDW interface has %d nodes / %d edges, want empty", withoutVDW.NodeCount(), withoutVDW.EdgeCount())
	}
	if got := LargestComponentNodes(withoutVDW); got != 0 {
		t.Errorf("largest no-VDW component = %d, want 0", got)
	}

	m := ComputeStructureMetrics(g)
	if m.BinderTargetBonds != 1 || m.BinderTargetBondsLargestComponent != 2 {
		t.Errorf("unexpected VDW interface metrics: %+v", m)
	}
	if m.BinderTargetBondsNoVDW != 0 || m.BinderTargetBondsNoVDWLargestComponent != 0 {
		t.Errorf("VDW-only interface must zero the no-VDW metrics: %+v", m)
	}
}
