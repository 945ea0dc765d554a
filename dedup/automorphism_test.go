package dedup

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/overlaplab/rotunfold/polyhedron"
)

func TestAutomorphismGroupOrderForRegularSolids(t *testing.T) {
	cases := []struct {
		name      string
		poly      *polyhedron.Polyhedron
		wantOrder int
	}{
		// Tetrahedron and cube are flag-transitive: the orientation-
		// preserving automorphism group acts simply transitively on
		// darts, so its order equals the dart count exactly.
		{"Tetrahedron", polyhedron.Tetrahedron(), 4 * 3},
		{"Cube", polyhedron.Cube(), 6 * 4},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			g := buildAutomorphismGroup(tc.poly)
			assert.Len(t, g.members, tc.wantOrder)
		})
	}
}

func TestAutomorphismGroupContainsIdentity(t *testing.T) {
	poly := polyhedron.Cube()
	g := buildAutomorphismGroup(poly)
	found := false
	for _, perm := range g.members {
		isIdentity := true
		for i, v := range perm {
			if v != i {
				isIdentity = false
				break
			}
		}
		if isIdentity {
			found = true
			break
		}
	}
	assert.True(t, found, "expected the identity automorphism among the group members")
}

func TestAutomorphismsPreserveGon(t *testing.T) {
	poly := polyhedron.Antiprism(5)
	offset, _ := buildDartOffsets(poly)
	darts := allDarts(poly)
	g := buildAutomorphismGroup(poly)

	for _, perm := range g.members {
		for _, d := range darts {
			src := linearIndex(offset, d)
			dstIdx := perm[src]
			// Find the dart at dstIdx to recover its face.
			var dstFace int
			for f := 0; f < poly.NumFaces; f++ {
				if dstIdx >= offset[f] && dstIdx < offset[f]+poly.Gon[f] {
					dstFace = f
					break
				}
			}
			assert.Equal(t, poly.Gon[d.face], poly.Gon[dstFace], "automorphism must preserve gon")
		}
	}
}
