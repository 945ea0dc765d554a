package verify

import (
	"testing"

	"github.com/overlaplab/rotunfold/polyhedron"
)

func TestSkipTrueForPolyhedronNeighbors(t *testing.T) {
	tetra := polyhedron.Tetrahedron()
	// Every pair of faces in a tetrahedron is adjacent.
	if !Skip(tetra, 0, 1) {
		t.Error("adjacent faces should be skipped")
	}
}

func TestSkipFalseForOppositeCubeFaces(t *testing.T) {
	cube := polyhedron.Cube()
	// Faces 0 (top) and 1 (bottom) share neither an edge nor a vertex.
	if Skip(cube, 0, 1) {
		t.Error("opposite cube faces should not be skipped")
	}
}

func TestSkipTrueForAdjacentCubeBeltFaces(t *testing.T) {
	cube := polyhedron.Cube()
	// Side faces are 2..5; consecutive side faces around the 4-belt share
	// an edge, so they are skipped by the shared-edge rule. A cube has no
	// pair of faces that shares a vertex without sharing an edge, so this
	// test does not exercise the vertex-only case.
	if !Skip(cube, 2, 3) {
		t.Error("adjacent belt faces of a cube should be skipped (they share an edge)")
	}
}

func TestSkipFalseForAntiprismCaps(t *testing.T) {
	ap := polyhedron.Antiprism(6)
	// The top and bottom caps of an antiprism never touch at all (shared
	// with polyhedron/unionfind_test.go's equivalent fact).
	if Skip(ap, 0, 1) {
		t.Error("antiprism caps share neither an edge nor a vertex; should not be skipped")
	}
}
