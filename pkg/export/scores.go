// Package export turns analysis results into tables and sinks: score
// file merging, CSV output, Neo4j graph loading, PostgreSQL metric
// rows and S3 uploads.
package export

import (
	"bufio"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/proteincraft/rincraft/pkg/topology"
)

// MetricColumns lists the analysis columns appended to the score table,
// in output order.
var MetricColumns = []string{
	"inter_chain_total",
	"inter_chain_without_vdw",
	"inter_chain_hbond",
	"inter_chain_vdw",
	"inter_chain_other",
	"binder_components_bonds",
	"binder_components_bonds_without_vdw",
	"binder_target_bonds",
	"binder_target_bonds_largest_component",
	"binder_target_bonds_no_vdw",
	"binder_target_bonds_no_vdw_largest_component",
}

// defaultScoreHeader covers score files that carry rows but no header
// line, as some AF2 initial-guess runs emit.
var defaultScoreHeader = []string{
	"binder_aligned_rmsd",
	"pae_binder",
	"pae_interaction",
	"pae_target",
	"plddt_binder",
	"plddt_target",
	"plddt_total",
	"target_aligned_rmsd",
	"time",
	"description",
}

// ScoreTable is a parsed prediction score file.
type ScoreTable struct {
	Header []string
	Rows   [][]string
}

// ParseScoreFile reads a score file from disk.
func ParseScoreFile(path string) (*ScoreTable, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening score file %s: %w", path, err)
	}
	defer f.Close()
	return ParseScores(f)
}

// ParseScores reads lines prefixed with "SCORE:". A line whose tokens
// are all non-numeric is taken as the header; every other SCORE line is
// a data row. When no header line appears the default AF2 header is
// assumed.
func ParseScores(r io.Reader) (*ScoreTable, error) {
	t := &ScoreTable{}
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if !strings.HasPrefix(line, "SCORE:") {
			continue
		}
		parts := strings.Fields(strings.TrimPrefix(line, "SCORE:"))
		if len(parts) == 0 {
			continue
		}
		if allNonNumeric(parts) {
			t.Header = parts
		} else {
			t.Rows = append(t.Rows, parts)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading score file: %w", err)
	}
	if len(t.Header) == 0 {
		t.Header = append([]string(nil), defaultScoreHeader...)
	}
	return t, nil
}

func allNonNumeric(tokens []string) bool {
	for _, tok := range tokens {
		if _, err := strconv.ParseFloat(tok, 64); err == nil {
			return false
		}
	}
	return true
}

// DescriptionIndex returns the index of the description column, or -1.
func (t *ScoreTable) DescriptionIndex() int {
	for i, col := range t.Header {
		if col == "description" {
			return i
		}
	}
	return -1
}

// Description returns the structure name of a row, with any trailing
// ".pdb" stripped. Empty when the row has no description cell.
func (t *ScoreTable) Description(row []string) string {
	idx := t.DescriptionIndex()
	if idx < 0 || idx >= len(row) {
		return ""
	}
	return strings.TrimSuffix(row[idx], ".pdb")
}

// MetricValues flattens the analysis summary into MetricColumns order.
func MetricValues(m topology.StructureMetrics) []int {
	return []int{
		m.InterChainTotal,
		m.InterChainWithoutVDW,
		m.InterChainHBond,
		m.InterChainVDW,
		m.InterChainOther,
		m.BinderComponentsBonds,
		m.BinderComponentsBondsWithoutVDW,
		m.BinderTargetBonds,
		m.BinderTargetBondsLargestComponent,
		m.BinderTargetBondsNoVDW,
		m.BinderTargetBondsNoVDWLargestComponent,
	}
}

// WriteCombinedCSV writes the score table with the analysis columns
// appended. Structures absent from metrics get zeroed columns; rows
// shorter than the header are padded with empty cells.
func WriteCombinedCSV(w io.Writer, t *ScoreTable, metrics map[string]topology.StructureMetrics) error {
	cw := csv.NewWriter(w)

	header := make([]string, 0, len(t.Header)+len(MetricColumns))
	header = append(header, t.Header...)
	header = append(header, MetricColumns...)
	if err := cw.Write(header); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}

	for _, row := range t.Rows {
		record := make([]string, len(t.Header), len(header))
		for i := range t.Header {
			if i < len(row) {
				record[i] = row[i]
			}
		}
		values := MetricValues(metrics[t.Description(row)])
		for _, v := range values {
			record = append(record, strconv.Itoa(v))
		}
		if err := cw.Write(record); err != nil {
			return fmt.Errorf("writing row: %w", err)
		}
	}

	cw.Flush()
	return cw.Error()
}
