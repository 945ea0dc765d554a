package verify

import "github.com/overlaplab/rotunfold/polyhedron"

// Skip reports whether the base/last face pair must be excluded from
// intersection testing undercontainment argument: faces
// that are polyhedron-neighbours, or that share a polyhedron vertex, can
// only legitimately touch there in any unfolding and are never a true
// overlap.
func Skip(poly *polyhedron.Polyhedron, baseFace, lastFace int) bool {
	if poly.SharesEdge(baseFace, lastFace) {
		return true
	}
	if poly.Incidence().SharesVertex(baseFace, lastFace) {
		return true
	}
	return false
}
