package rin

// aa3to1 maps three-letter residue codes to one-letter codes.
var aa3to1 = map[string]string{
	"ALA": "A", "ARG": "R", "ASN": "N", "ASP": "D",
	"CYS": "C", "GLN": "Q", "GLU": "E", "GLY": "G",
	"HIS": "H", "ILE": "I", "LEU": "L", "LYS": "K",
	"MET": "M", "PHE": "F", "PRO": "P", "SER": "S",
	"THR": "T", "TRP": "W", "TYR": "Y", "VAL": "V",
}

// OneLetter converts a three-letter residue code to its one-letter code.
// Unknown codes degrade to "X" rather than failing the row.
func OneLetter(residue string) string {
	if one, ok := aa3to1[residue]; ok {
		return one
	}
	return "X"
}
