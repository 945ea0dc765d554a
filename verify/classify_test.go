package verify

import (
	"testing"

	"github.com/overlaplab/rotunfold/polyhedron"
	"github.com/overlaplab/rotunfold/record"
	"github.com/overlaplab/rotunfold/verify/cyclo"
)

func square(cx, cy int64, size int64) []cyclo.Elem {
	return []cyclo.Elem{
		pt(cx, cy),
		pt(cx+size, cy),
		pt(cx+size, cy+size),
		pt(cx, cy+size),
	}
}

func TestClassifySkippedPairIsRejected(t *testing.T) {
	tetra := polyhedron.Tetrahedron()
	rec := record.New(record.BasePair{BaseFace: 0, BaseEdge: tetra.EdgesOf[0][0]}, false, []record.UnfoldedFace{
		{FaceID: 0, Gon: 3},
		{FaceID: tetra.NeighborOf[0][0], Gon: 3, EdgeID: tetra.EdgesOf[0][0]},
	})
	recon := &Reconstruction{N: 4, Faces: []FaceGeometry{
		{FaceID: 0, Gon: 3, Vertices: square(0, 0, 1)[:3]},
		{FaceID: tetra.NeighborOf[0][0], Gon: 3, Vertices: square(0, 0, 1)[:3]},
	}}

	got, err := Classify(tetra, rec, recon)
	if err != nil {
		t.Fatalf("Classify: %v", err)
	}
	if got != nil {
		t.Errorf("adjacent tetrahedron faces should be skipped, got %+v", got)
	}
}

func TestClassifyOverlappingSquaresIsFaceFace(t *testing.T) {
	cube := polyhedron.Cube()
	rec := record.New(record.BasePair{BaseFace: 0, BaseEdge: cube.EdgesOf[0][0]}, false, []record.UnfoldedFace{
		{FaceID: 0, Gon: 4},
		{FaceID: 1, Gon: 4},
	})
	recon := &Reconstruction{N: 4, Faces: []FaceGeometry{
		{FaceID: 0, Gon: 4, Vertices: square(0, 0, 4)},
		{FaceID: 1, Gon: 4, Vertices: square(2, 2, 4)}, // overlapping, not identical
	}}

	got, err := Classify(cube, rec, recon)
	if err != nil {
		t.Fatalf("Classify: %v", err)
	}
	if got == nil || got.Kind != record.KindFaceFace {
		t.Errorf("got %+v, want face-face", got)
	}
}

func TestClassifyDisjointSquaresIsRejected(t *testing.T) {
	cube := polyhedron.Cube()
	rec := record.New(record.BasePair{BaseFace: 0, BaseEdge: cube.EdgesOf[0][0]}, false, []record.UnfoldedFace{
		{FaceID: 0, Gon: 4},
		{FaceID: 1, Gon: 4},
	})
	recon := &Reconstruction{N: 4, Faces: []FaceGeometry{
		{FaceID: 0, Gon: 4, Vertices: square(0, 0, 1)},
		{FaceID: 1, Gon: 4, Vertices: square(100, 100, 1)}, // far away
	}}

	got, err := Classify(cube, rec, recon)
	if err != nil {
		t.Fatalf("Classify: %v", err)
	}
	if got != nil {
		t.Errorf("disjoint squares should not overlap, got %+v", got)
	}
}
