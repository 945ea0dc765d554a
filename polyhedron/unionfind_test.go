package polyhedron

import "testing"

func TestVertexIncidenceCube(t *testing.T) {
	p := Cube()
	vi := p.Incidence()

	if got := vi.NumVertices(); got != 8 {
		t.Fatalf("NumVertices() = %d, want 8", got)
	}
	for v := 0; v < vi.NumVertices(); v++ {
		if d := vi.Degree(v); d != 3 {
			t.Errorf("vertex %d degree = %d, want 3", v, d)
		}
	}
}

func TestSharesVertexAdjacentFaces(t *testing.T) {
	p := Cube()
	vi := p.Incidence()

	if !vi.SharesVertex(0, 2) {
		t.Error("adjacent faces of a cube must share a vertex")
	}
}

func TestSharesVertexOppositeFacesOfAntiprism(t *testing.T) {
	p := Antiprism(6)
	vi := p.Incidence()

	// The top and bottom caps of an antiprism never touch at all, sharing
	// neither an edge nor a vertex.
	if vi.SharesVertex(0, 1) {
		t.Error("top and bottom caps of an antiprism should not share a vertex")
	}
}
