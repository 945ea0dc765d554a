package enumerate

import (
	"github.com/overlaplab/rotunfold/polyhedron"
	"github.com/overlaplab/rotunfold/record"
)

// WithSymmetryMode returns a copy of roots with EnableSymmetry set from the
// single resolved SymmetryMode in force for the run: the mode is resolved
// once, against the polyhedron's declared name, not per root pair.
func WithSymmetryMode(roots []polyhedron.RootPair, mode polyhedron.SymmetryMode) []polyhedron.RootPair {
	out := make([]polyhedron.RootPair, len(roots))
	for i, rp := range roots {
		rp.EnableSymmetry = mode.Enabled
		out[i] = rp
	}
	return out
}

// Run is the library entry point E1 driver programs call: it resolves
// symmetry mode against the polyhedron's declared name, then runs Search
// over every root pair, returning the number of records written.
func Run(poly *polyhedron.Polyhedron, name string, symmetryModeOption string, roots []polyhedron.RootPair, w *record.Writer) (int, polyhedron.SymmetryMode, error) {
	mode := polyhedron.ResolveSymmetryMode(symmetryModeOption, name)
	resolved := WithSymmetryMode(roots, mode)
	n, err := Search(poly, resolved, w)
	return n, mode, err
}
