package rin

import (
	"errors"
	"strings"
	"testing"

	"github.com/proteincraft/rincraft/pkg/graph"
	"github.com/proteincraft/rincraft/pkg/logging"
)

const nodeHeader = "NodeId\tChain\tPosition\tResidue\tType\tDssp\tDegree\tBfactor_CA\tx\ty\tz\tpdbFileName\tModel"
const edgeHeader = "NodeId1\tInteraction\tNodeId2\tDistance\tAngle\tAtom1\tAtom2\tDonor\tPositive\tCation\tOrientation\tModel"

func nodeRow(id, chain string, pos, dssp string) string {
	return strings.Join([]string{id, chain, pos, resOf(id), "RES", dssp, "3", "25.0", "1.0", "2.0", "3.0", "test.pdb", "1"}, "\t")
}

func resOf(id string) string {
	parts := strings.Split(id, ":")
	return parts[len(parts)-1]
}

func edgeRow(src, interaction, dst string) string {
	return strings.Join([]string{src, interaction, dst, "3.1", "0.0", "CA", "CB", "", "", "", "", "1"}, "\t")
}

func importStrings(t *testing.T, nodes, edges []string) (*graph.Graph, *Report) {
	t.Helper()
	imp := NewImporter(logging.NewNopLogger(), nil)
	g, report, err := imp.Import("RING_test",
		strings.NewReader(strings.Join(nodes, "\n")),
		strings.NewReader(strings.Join(edges, "\n")))
	if err != nil {
		t.Fatalf("Import failed: %v", err)
	}
	return g, report
}

func TestImportBuildsGraph(t *testing.T) {
	g, report := importStrings(t,
		[]string{
			nodeHeader,
			nodeRow("A:1:_:MET", "A", "1", "H"),
			nodeRow("A:2:_:ALA", "A", "2", "H"),
			nodeRow("B:1:_:GLY", "B", "1", "E"),
		},
		[]string{
			edgeHeader,
			edgeRow("A:1:_:MET", "HBOND:MC_MC", "B:1:_:GLY"),
		})

	stats := g.Stats()
	if stats.NodeCount != 3 {
		t.Errorf("expected 3 nodes, got %d", stats.NodeCount)
	}
	// One backbone edge (A1-A2) plus one table edge.
	if stats.EdgeCount != 2 {
		t.Errorf("expected 2 edges, got %d", stats.EdgeCount)
	}
	if report.BackboneEdges != 1 {
		t.Errorf("expected 1 backbone edge, got %d", report.BackboneEdges)
	}
	if !report.Clean() {
		t.Errorf("expected clean report, got %+v", report)
	}

	n, err := g.NodeByID("A:1:_:MET")
	if err != nil {
		t.Fatalf("NodeByID failed: %v", err)
	}
	if n.OneLetter != "M" {
		t.Errorf("expected one-letter M, got %q", n.OneLetter)
	}
	if n.Position != 1 || n.Chain != "A" || n.Dssp != "H" {
		t.Errorf("node fields not parsed: %+v", n)
	}
}

func TestBackboneOnlyConsecutivePositions(t *testing.T) {
	g, report := importStrings(t,
		[]string{
			nodeHeader,
			nodeRow("A:1:_:MET", "A", "1", "H"),
			nodeRow("A:2:_:ALA", "A", "2", "H"),
			nodeRow("A:4:_:SER", "A", "4", "H"), // gap: no backbone edge to ALA
			nodeRow("B:2:_:GLY", "B", "2", "E"), // other chain: never bonded to A
			nodeRow("B:3:_:LEU", "B", "3", "E"),
		},
		[]string{edgeHeader})

	if report.BackboneEdges != 2 {
		t.Fatalf("expected 2 backbone edges (A1-A2, B2-B3), got %d", report.BackboneEdges)
	}
	for _, e := range g.Edges() {
		if e.Interaction != "COV:PEP" || e.Category != graph.CategoryCovalent {
			t.Errorf("backbone edge not covalent: %+v", e)
		}
		src, _ := g.NodeByID(e.Source)
		dst, _ := g.NodeByID(e.Target)
		if src.Chain != dst.Chain {
			t.Errorf("backbone edge crosses chains: %s - %s", e.Source, e.Target)
		}
		if dst.Position-src.Position != 1 {
			t.Errorf("backbone edge spans non-consecutive positions: %d - %d", src.Position, dst.Position)
		}
	}
}

func TestMissingColumnAborts(t *testing.T) {
	imp := NewImporter(logging.NewNopLogger(), nil)
	badHeader := "NodeId\tChain\tResidue" // no Position and friends
	_, _, err := imp.Import("RING_test",
		strings.NewReader(badHeader+"\n"),
		strings.NewReader(edgeHeader+"\n"))
	if err == nil {
		t.Fatal("expected schema error")
	}
	if !IsSchemaError(err) {
		t.Errorf("expected SchemaError, got %T: %v", err, err)
	}
	var se *SchemaError
	if errors.As(err, &se) && se.Column != "Position" {
		t.Errorf("expected first missing column Position, got %q", se.Column)
	}
}

func TestShortRowsSkipped(t *testing.T) {
	g, report := importStrings(t,
		[]string{
			nodeHeader,
			nodeRow("A:1:_:MET", "A", "1", "H"),
			"A:2:_:ALA\tA\t2", // truncated row
			nodeRow("A:3:_:GLY", "A", "3", "H"),
		},
		[]string{edgeHeader})

	if g.Stats().NodeCount != 2 {
		t.Errorf("expected truncated row skipped, got %d nodes", g.Stats().NodeCount)
	}
	if report.ShortRows != 1 {
		t.Errorf("expected 1 short row in report, got %d", report.ShortRows)
	}
	if len(report.Warnings) != 1 || report.Warnings[0].Kind != WarnShortRow {
		t.Errorf("expected a WarnShortRow warning, got %v", report.Warnings)
	}
}

func TestUnknownEndpointSkipped(t *testing.T) {
	g, report := importStrings(t,
		[]string{
			nodeHeader,
			nodeRow("A:1:_:MET", "A", "1", "H"),
			nodeRow("B:1:_:GLY", "B", "1", "E"),
		},
		[]string{
			edgeHeader,
			edgeRow("A:1:_:MET", "HBOND:MC_MC", "B:1:_:GLY"),
			edgeRow("A:1:_:MET", "VDW:SC_SC", "Z:9:_:TRP"), // unknown target
		})

	if report.UnknownRefs != 1 {
		t.Errorf("expected 1 unknown reference, got %d", report.UnknownRefs)
	}
	if report.EdgeRows != 1 {
		t.Errorf("expected 1 consumed edge row, got %d", report.EdgeRows)
	}
	if g.Stats().EdgeCount != 1 {
		t.Errorf("expected only the valid edge stored, got %d", g.Stats().EdgeCount)
	}
}

func TestNumericFieldDefaulting(t *testing.T) {
	row := strings.Join([]string{"A:1:_:MET", "A", "1", "MET", "RES", "H", "3", "garbage", "1.0", "2.0", "3.0", "test.pdb", "1"}, "\t")
	g, report := importStrings(t,
		[]string{nodeHeader, row},
		[]string{edgeHeader})

	n, err := g.NodeByID("A:1:_:MET")
	if err != nil {
		t.Fatalf("node not imported: %v", err)
	}
	if n.BfactorCA != 0 {
		t.Errorf("unparsable field must default to zero, got %v", n.BfactorCA)
	}
	if report.FieldDefaults != 1 {
		t.Errorf("expected 1 field default in report, got %d", report.FieldDefaults)
	}
	if len(report.Warnings) != 1 || report.Warnings[0].Kind != WarnFieldDefault {
		t.Fatalf("expected a WarnFieldDefault warning, got %v", report.Warnings)
	}
	if report.Warnings[0].Column != "Bfactor_CA" {
		t.Errorf("expected warning for Bfactor_CA, got %q", report.Warnings[0].Column)
	}
}

func TestEmptyNumericFieldSilent(t *testing.T) {
	row := strings.Join([]string{"A:1:_:MET", "A", "1", "MET", "RES", "H", "3", "", "1.0", "2.0", "3.0", "test.pdb", "1"}, "\t")
	_, report := importStrings(t,
		[]string{nodeHeader, row},
		[]string{edgeHeader})

	if report.FieldDefaults != 0 {
		t.Errorf("empty field must default silently, got %d warnings", report.FieldDefaults)
	}
}

func TestUnknownResidueOneLetterFallback(t *testing.T) {
	g, _ := importStrings(t,
		[]string{nodeHeader, nodeRow("A:1:_:XYZ", "A", "1", "H")},
		[]string{edgeHeader})

	n, err := g.NodeByID("A:1:_:XYZ")
	if err != nil {
		t.Fatalf("node not imported: %v", err)
	}
	if n.OneLetter != "X" {
		t.Errorf("unknown residue must map to X, got %q", n.OneLetter)
	}
}

func TestGraphName(t *testing.T) {
	tests := []struct {
		path string
		want string
	}{
		{"/data/run1/design_0001.pdb_ringNodes", "RING_design_0001"},
		{"design_0001.pdb_ringNodes", "RING_design_0001"},
		{"odd_name.tsv", "RING_odd_name.tsv"},
	}
	for _, tt := range tests {
		if got := GraphName(tt.path); got != tt.want {
			t.Errorf("GraphName(%q) = %q, want %q", tt.path, got, tt.want)
		}
	}
}

func TestFileReadError(t *testing.T) {
	imp := NewImporter(logging.NewNopLogger(), nil)
	_, _, err := imp.ImportFiles("/does/not/exist.pdb_ringNodes", "/does/not/exist.pdb_ringEdges")
	if err == nil {
		t.Fatal("expected error for missing files")
	}
	var fre *FileReadError
	if !errors.As(err, &fre) {
		t.Errorf("expected FileReadError, got %T: %v", err, err)
	}
}

func TestOneLetterMapping(t *testing.T) {
	tests := []struct {
		residue string
		want    string
	}{
		{"ALA", "A"}, {"ARG", "R"}, {"TRP", "W"}, {"GLY", "G"},
		{"HIS", "H"}, {"UNK", "X"}, {"", "X"},
	}
	for _, tt := range tests {
		if got := OneLetter(tt.residue); got != tt.want {
			t.Errorf("OneLetter(%q) = %q, want %q", tt.residue, got, tt.want)
		}
	}
}

func TestDuplicateNodeRowSkipped(t *testing.T) {
	g, report := importStrings(t,
		[]string{
			nodeHeader,
			nodeRow("A:1:_:MET", "A", "1", "H"),
			nodeRow("A:1:_:MET", "A", "1", "H"),
		},
		[]string{edgeHeader})

	if got := g.Stats().NodeCount; got != 1 {
		t.Errorf("expected 1 node, got %d", got)
	}
	if report.DuplicateNodes != 1 {
		t.Errorf("expected 1 duplicate tallied, got %d", report.DuplicateNodes)
	}
	if report.UnknownRefs != 0 {
		t.Errorf("duplicates must not count as unknown references, got %d", report.UnknownRefs)
	}
	if report.NodeRows != 1 {
		t.Errorf("expected 1 consumed node row, got %d", report.NodeRows)
	}

	if len(report.Warnings) != 1 {
		t.Fatalf("expected 1 warning, got %+v", report.Warnings)
	}
	w := report.Warnings[0]
	if w.Kind != WarnDuplicateNode {
		t.Errorf("warning kind = %q, want %q", w.Kind, WarnDuplicateNode)
	}
	if w.Line != 3 || w.Value != "A:1:_:MET" {
		t.Errorf("unexpected warning detail: %+v", w)
	}
}
