package rin

import "fmt"

// WarningKind tags one tolerated anomaly in a data row.
type WarningKind string

const (
	// WarnShortRow: a data row had fewer fields than the highest
	// required column index and was skipped whole.
	WarnShortRow WarningKind = "short_row"
	// WarnUnknownNode: an edge row referenced a node ID absent from the
	// node table and was skipped whole.
	WarnUnknownNode WarningKind = "unknown_node"
	// WarnDuplicateNode: a node row repeated an already imported node ID
	// and was skipped whole.
	WarnDuplicateNode WarningKind = "duplicate_node"
	// WarnFieldDefault: a non-empty numeric field failed to parse and
	// was defaulted to zero. Empty fields default silently.
	WarnFieldDefault WarningKind = "field_default"
)

// Warning records one tolerated anomaly: which file, which line, and
// what was wrong. The graph still imports; callers that care about data
// quality inspect the report instead of counting rows themselves.
type Warning struct {
	Kind   WarningKind
	File   string
	Line   int    // 1-based, header is line 1
	Column string // set for field defaults
	Value  string // the offending raw value, if any
}

func (w Warning) String() string {
	if w.Column != "" {
		return fmt.Sprintf("%s:%d: %s %s=%q", w.File, w.Line, w.Kind, w.Column, w.Value)
	}
	return fmt.Sprintf("%s:%d: %s", w.File, w.Line, w.Kind)
}

// Report aggregates the outcome of one file-pair import. Row and field
// tolerance never aborts an import; the report makes the tolerated
// anomalies countable.
type Report struct {
	NodeRows       int // data rows consumed from the node file
	EdgeRows       int // data rows consumed from the edge file
	BackboneEdges  int // synthetic covalent edges inserted
	ShortRows      int
	UnknownRefs    int
	DuplicateNodes int
	FieldDefaults  int
	Warnings       []Warning
}

func (r *Report) addShortRow(file string, line int) {
	r.ShortRows++
	r.Warnings = append(r.Warnings, Warning{Kind: WarnShortRow, File: file, Line: line})
}

func (r *Report) addUnknownNode(file string, line int, nodeID string) {
	r.UnknownRefs++
	r.Warnings = append(r.Warnings, Warning{Kind: WarnUnknownNode, File: file, Line: line, Value: nodeID})
}

func (r *Report) addDuplicateNode(file string, line int, nodeID string) {
	r.DuplicateNodes++
	r.Warnings = append(r.Warnings, Warning{Kind: WarnDuplicateNode, File: file, Line: line, Value: nodeID})
}

func (r *Report) addFieldDefault(file string, line int, column, value string) {
	r.FieldDefaults++
	r.Warnings = append(r.Warnings, Warning{Kind: WarnFieldDefault, File: file, Line: line, Column: column, Value: value})
}

// Clean reports whether every row and field parsed without tolerance.
func (r *Report) Clean() bool {
	return len(r.Warnings) == 0
}
