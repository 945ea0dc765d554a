package polyhedron

import "fmt"

// StructuralError reports a malformed or internally inconsistent polyhedron
// description, fatal at load time before any record is emitted.
type StructuralError struct {
	Face    int
	Edge    int
	Kind    string
	Message string
}

func (e *StructuralError) Error() string {
	return fmt.Sprintf("polyhedron structural error [%s] face=%d edge=%d: %s", e.Kind, e.Face, e.Edge, e.Message)
}

// Validate checks the reciprocity invariant: for every face f and
// position k, letting g = NeighborOf[f][k] and e = EdgesOf[f][k], e must
// appear in EdgesOf[g] and the corresponding back-entry must be f. It also
// checks that every edge identifier appears in exactly two EdgesOf lists.
//
// Validate is a read-only pass; it does not mutate p. Call it once after
// New, before any search runs — matching conway's ValidateManifold idiom of
// validating on demand rather than inside the constructor.
func (p *Polyhedron) Validate() error {
	edgeOccurrences := make(map[int][]int) // edge id -> faces that list it

	for f := 0; f < p.NumFaces; f++ {
		n := p.Gon[f]
		for k := 0; k < n; k++ {
			e := p.EdgesOf[f][k]
			g := p.NeighborOf[f][k]

			edgeOccurrences[e] = append(edgeOccurrences[e], f)

			if g < 0 || g >= p.NumFaces {
				return &StructuralError{Face: f, Edge: e, Kind: "reciprocity", Message: "neighbor face id out of range"}
			}

			backIdx := p.EdgeIndex(g, e)
			if backIdx < 0 {
				return &StructuralError{Face: f, Edge: e, Kind: "reciprocity", Message: "edge missing from neighbor face"}
			}
			if p.NeighborOf[g][backIdx] != f {
				return &StructuralError{Face: f, Edge: e, Kind: "reciprocity", Message: "neighbor's back-reference does not point to this face"}
			}
		}
	}

	for e, faces := range edgeOccurrences {
		if len(faces) != 2 {
			return &StructuralError{Edge: e, Kind: "reciprocity", Message: fmt.Sprintf("edge appears in %d faces, expected 2", len(faces))}
		}
	}

	return p.Incidence().validateDegree()
}
