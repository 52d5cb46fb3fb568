package graph

import "strings"

// Category classifies an interaction by the prefix of its RIN label.
type Category uint8

const (
	CategoryCovalent Category = iota
	CategoryVDW
	CategoryHBond
	CategoryOther
)

// String returns the bucket name used in logs and exports.
func (c Category) String() string {
	switch c {
	case CategoryCovalent:
		return "COV"
	case CategoryVDW:
		return "VDW"
	case CategoryHBond:
		return "HBOND"
	default:
		return "OTHER"
	}
}

// Classify maps a free-form interaction label to its category bucket.
// Anything that is not covalent, van der Waals or hydrogen bond is
// accepted unconditionally as OTHER.
func Classify(interaction string) Category {
	switch {
	case strings.HasPrefix(interaction, "COV"):
		return CategoryCovalent
	case strings.HasPrefix(interaction, "VDW"):
		return CategoryVDW
	case strings.HasPrefix(interaction, "HBOND"):
		return CategoryHBond
	default:
		return CategoryOther
	}
}

// IsCovalent reports whether an interaction label denotes a covalent bond.
// RING emits "COV:PEP" for peptide bonds but older exports spell out
// "PEPTIDE BOND".
func IsCovalent(interaction string) bool {
	if interaction == "" {
		return false
	}
	return strings.HasPrefix(interaction, "COV") ||
		strings.Contains(strings.ToUpper(interaction), "PEPTIDE")
}

// Node is one residue from a RIN node table. The column set of the export
// is fixed, so every field is typed up front rather than stored in a
// property bag.
type Node struct {
	ID        string // Chain:Position:InsertionCode:ResidueName, opaque unique key
	Chain     string
	Position  int
	Residue   string // three-letter code as exported
	OneLetter string // one-letter code, "X" when the residue is unknown
	ResType   string
	Dssp      string // "H", "E", everything else is loop/unassigned
	Degree    int
	BfactorCA float64
	X, Y, Z   float64
	PDBFile   string // provenance: originating structure file
	Model     int
}

// Helical and strand are the only DSSP codes that form secondary-structure
// segments; all other codes break runs.
func (n *Node) IsStructured() bool {
	return n.Dssp == "H" || n.Dssp == "E"
}

// Edge is one interaction from a RIN edge table, or a synthetic backbone
// bond inserted by the importer.
type Edge struct {
	Source      string // node ID
	Target      string // node ID
	Interaction string // raw label, e.g. "HBOND:MC_SC"
	Category    Category
	Distance    float64
	Angle       float64
	Atom1       string
	Atom2       string
	Donor       string
	Positive    string
	Cation      string
	Orientation string
	Model       int
}

// Other returns the endpoint opposite to the given node ID.
func (e *Edge) Other(nodeID string) string {
	if e.Source == nodeID {
		return e.Target
	}
	return e.Source
}

// Touches reports whether the edge is incident to the given node.
func (e *Edge) Touches(nodeID string) bool {
	return e.Source == nodeID || e.Target == nodeID
}
