package rin

import (
	"encoding/csv"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/proteincraft/rincraft/pkg/graph"
	"github.com/proteincraft/rincraft/pkg/logging"
	"github.com/proteincraft/rincraft/pkg/metrics"
)

// Importer builds a structural graph from a RING node/edge file pair.
type Importer struct {
	logger  logging.Logger
	metrics *metrics.Registry
}

// NewImporter creates an importer. Both arguments may be nil, in which
// case the default logger and registry are used.
func NewImporter(logger logging.Logger, reg *metrics.Registry) *Importer {
	if logger == nil {
		logger = logging.DefaultLogger()
	}
	if reg == nil {
		reg = metrics.DefaultRegistry()
	}
	return &Importer{logger: logger, metrics: reg}
}

// GraphName derives the display name of the imported graph from the
// node file name, e.g. "xxx.pdb_ringNodes" -> "RING_xxx".
func GraphName(nodePath string) string {
	base := filepath.Base(nodePath)
	return "RING_" + strings.TrimSuffix(base, ".pdb_ringNodes")
}

// ImportFiles reads the two RIN tables from disk and builds the graph.
// A missing or unreadable file surfaces as a FileReadError; a missing
// required column as a SchemaError. Both abort before graph mutation.
func (imp *Importer) ImportFiles(nodePath, edgePath string) (*graph.Graph, *Report, error) {
	nodeFile, err := os.Open(nodePath)
	if err != nil {
		return nil, nil, &FileReadError{Path: nodePath, Err: err}
	}
	defer nodeFile.Close()

	edgeFile, err := os.Open(edgePath)
	if err != nil {
		return nil, nil, &FileReadError{Path: edgePath, Err: err}
	}
	defer edgeFile.Close()

	return imp.Import(GraphName(nodePath), nodeFile, edgeFile)
}

// Import builds a graph from the two table sources. The node table is
// consumed first; synthetic covalent backbone edges are inserted before
// the edge table is read, independent of its contents.
func (imp *Importer) Import(name string, nodeSrc, edgeSrc io.Reader) (*graph.Graph, *Report, error) {
	start := time.Now()
	g := graph.New(name)
	report := &Report{}

	if err := imp.importNodes(g, report, nodeSrc); err != nil {
		imp.metrics.RecordImport("error", time.Since(start))
		return nil, nil, err
	}

	report.BackboneEdges = addBackboneEdges(g)

	if err := imp.importEdges(g, report, edgeSrc); err != nil {
		imp.metrics.RecordImport("error", time.Since(start))
		return nil, nil, err
	}

	stats := g.Stats()
	imp.metrics.RecordImport("ok", time.Since(start))
	imp.metrics.SetGraphSize(stats.NodeCount, stats.EdgeCount)
	imp.metrics.RecordImportRows("nodes", report.NodeRows, report.ShortRows, 0, report.FieldDefaults)
	imp.metrics.RecordImportRows("edges", report.EdgeRows, 0, report.UnknownRefs, 0)

	imp.logger.Info("import complete",
		logging.Structure(name),
		logging.Int("nodes", stats.NodeCount),
		logging.Int("edges", stats.EdgeCount),
		logging.Int("backbone_edges", report.BackboneEdges),
		logging.Int("warnings", len(report.Warnings)),
	)

	return g, report, nil
}

func newTableReader(src io.Reader) *csv.Reader {
	r := csv.NewReader(src)
	r.Comma = '\t'
	r.FieldsPerRecord = -1 // rows are validated against the header below
	r.LazyQuotes = true
	return r
}

func (imp *Importer) importNodes(g *graph.Graph, report *Report, src io.Reader) error {
	reader := newTableReader(src)

	header, err := reader.Read()
	if err != nil {
		return &FileReadError{Path: "node table", Err: err}
	}
	idx, err := columnIndex("node table", header, nodeColumns)
	if err != nil {
		return err
	}
	maxIdx := maxIndex(idx, nodeColumns)

	line := 1
	for {
		tokens, err := reader.Read()
		if err != nil {
			break // EOF; malformed trailing data is a row-level concern
		}
		line++

		if len(tokens) <= maxIdx {
			report.addShortRow("node table", line)
			continue
		}

		p := fieldParser{file: "node table", line: line, idx: idx, tokens: tokens, report: report}

		residue := p.str(colResidue)
		n := &graph.Node{
			ID:        p.str(colNodeID),
			Chain:     p.str(colChain),
			Position:  p.intv(colPosition),
			Residue:   residue,
			OneLetter: OneLetter(residue),
			ResType:   p.str(colType),
			Dssp:      p.str(colDssp),
			Degree:    p.intv(colDegree),
			BfactorCA: p.float(colBfactorCA),
			X:         p.float(colX),
			Y:         p.float(colY),
			Z:         p.float(colZ),
			PDBFile:   p.str(colPDBFile),
			Model:     p.intv(colModel),
		}

		if err := g.AddNode(n); err != nil {
			// Duplicate IDs should not happen in a well-formed export;
			// skip the row rather than aborting.
			imp.logger.Warn("duplicate node id, row skipped",
				logging.NodeID(n.ID), logging.Int("line", line))
			report.addDuplicateNode("node table", line, n.ID)
			continue
		}
		report.NodeRows++
	}

	return nil
}

func (imp *Importer) importEdges(g *graph.Graph, report *Report, src io.Reader) error {
	reader := newTableReader(src)

	header, err := reader.Read()
	if err != nil {
		return &FileReadError{Path: "edge table", Err: err}
	}
	idx, err := columnIndex("edge table", header, edgeColumns)
	if err != nil {
		return err
	}
	maxIdx := maxIndex(idx, edgeColumns)

	line := 1
	for {
		tokens, err := reader.Read()
		if err != nil {
			break
		}
		line++

		if len(tokens) <= maxIdx {
			report.addShortRow("edge table", line)
			continue
		}

		p := fieldParser{file: "edge table", line: line, idx: idx, tokens: tokens, report: report}

		source := p.str(colNodeID1)
		target := p.str(colNodeID2)
		if !g.HasNode(source) {
			report.addUnknownNode("edge table", line, source)
			continue
		}
		if !g.HasNode(target) {
			report.addUnknownNode("edge table", line, target)
			continue
		}

		interaction := p.str(colInteraction)
		e := &graph.Edge{
			Source:      source,
			Target:      target,
			Interaction: interaction,
			Category:    graph.Classify(interaction),
			Distance:    p.float(colDistance),
			Angle:       p.float(colAngle),
			Atom1:       p.str(colAtom1),
			Atom2:       p.str(colAtom2),
			Donor:       p.str(colDonor),
			Positive:    p.str(colPositive),
			Cation:      p.str(colCation),
			Orientation: p.str(colOrientation),
			Model:       p.intv(colModel),
		}

		if err := g.AddEdge(e); err != nil {
			report.addUnknownNode("edge table", line, source)
			continue
		}
		report.EdgeRows++
	}

	return nil
}

// addBackboneEdges inserts a covalent peptide edge between every pair of
// same-chain nodes at consecutive sequence positions. Returns the number
// of edges inserted.
func addBackboneEdges(g *graph.Graph) int {
	inserted := 0
	for _, chain := range g.Chains() {
		nodes := g.NodesByChain(chain)
		byPos := make(map[int]string, len(nodes))
		positions := make([]int, 0, len(nodes))
		for _, n := range nodes {
			if _, seen := byPos[n.Position]; !seen {
				positions = append(positions, n.Position)
			}
			byPos[n.Position] = n.ID
		}
		sort.Ints(positions)

		for i := 0; i+1 < len(positions); i++ {
			if positions[i+1] != positions[i]+1 {
				continue
			}
			e := &graph.Edge{
				Source:      byPos[positions[i]],
				Target:      byPos[positions[i+1]],
				Interaction: "COV:PEP",
				Category:    graph.CategoryCovalent,
			}
			if g.AddEdge(e) == nil {
				inserted++
			}
		}
	}
	return inserted
}

// fieldParser extracts typed fields from one data row with the tolerant
// defaulting policy: empty numeric fields are zero, unparsable ones are
// zero plus a report warning.
type fieldParser struct {
	file   string
	line   int
	idx    map[string]int
	tokens []string
	report *Report
}

func (p *fieldParser) str(col string) string {
	return p.tokens[p.idx[col]]
}

func (p *fieldParser) intv(col string) int {
	raw := p.tokens[p.idx[col]]
	if raw == "" {
		return 0
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		p.report.addFieldDefault(p.file, p.line, col, raw)
		return 0
	}
	return v
}

func (p *fieldParser) float(col string) float64 {
	raw := p.tokens[p.idx[col]]
	if raw == "" {
		return 0
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		p.report.addFieldDefault(p.file, p.line, col, raw)
		return 0
	}
	return v
}
