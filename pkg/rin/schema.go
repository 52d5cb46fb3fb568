package rin

import (
	"errors"
	"fmt"
)

// Node-table column names, as emitted by RING.
const (
	colNodeID    = "NodeId"
	colChain     = "Chain"
	colPosition  = "Position"
	colResidue   = "Residue"
	colType      = "Type"
	colDssp      = "Dssp"
	colDegree    = "Degree"
	colBfactorCA = "Bfactor_CA"
	colX         = "x"
	colY         = "y"
	colZ         = "z"
	colPDBFile   = "pdbFileName"
	colModel     = "Model"
)

// Edge-table column names.
const (
	colNodeID1     = "NodeId1"
	colInteraction = "Interaction"
	colNodeID2     = "NodeId2"
	colDistance    = "Distance"
	colAngle       = "Angle"
	colAtom1       = "Atom1"
	colAtom2       = "Atom2"
	colDonor       = "Donor"
	colPositive    = "Positive"
	colCation      = "Cation"
	colOrientation = "Orientation"
)

var nodeColumns = []string{
	colNodeID, colChain, colPosition, colResidue, colType, colDssp,
	colDegree, colBfactorCA, colX, colY, colZ, colPDBFile, colModel,
}

var edgeColumns = []string{
	colNodeID1, colInteraction, colNodeID2, colDistance, colAngle,
	colAtom1, colAtom2, colDonor, colPositive, colCation,
	colOrientation, colModel,
}

// SchemaError reports a required column missing from a file's header.
// It is fatal: import aborts before any node or edge is created.
type SchemaError struct {
	File   string
	Column string
}

func (e *SchemaError) Error() string {
	return fmt.Sprintf("missing required column %q in %s", e.Column, e.File)
}

// FileReadError reports a file that is missing or unreadable.
type FileReadError struct {
	Path string
	Err  error
}

func (e *FileReadError) Error() string {
	return fmt.Sprintf("read %s: %v", e.Path, e.Err)
}

func (e *FileReadError) Unwrap() error {
	return e.Err
}

// IsSchemaError reports whether err is (or wraps) a SchemaError.
func IsSchemaError(err error) bool {
	var se *SchemaError
	return errors.As(err, &se)
}

// columnIndex resolves the required columns against a header row. The
// returned map is complete or the error is a SchemaError for the first
// missing column.
func columnIndex(file string, header, required []string) (map[string]int, error) {
	idx := make(map[string]int, len(header))
	for i, name := range header {
		idx[name] = i
	}
	for _, name := range required {
		if _, ok := idx[name]; !ok {
			return nil, &SchemaError{File: file, Column: name}
		}
	}
	return idx, nil
}

// maxIndex returns the highest column index among the required names.
// Rows shorter than this cannot hold all required fields.
func maxIndex(idx map[string]int, required []string) int {
	max := 0
	for _, name := range required {
		if idx[name] > max {
			max = idx[name]
		}
	}
	return max
}
