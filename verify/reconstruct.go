package verify

import (
	"fmt"
	"math/big"

	"github.com/overlaplab/rotunfold/polyhedron"
	"github.com/overlaplab/rotunfold/record"
	"github.com/overlaplab/rotunfold/verify/cyclo"
)

// FaceGeometry is one face's exact placement along a reconstructed path.
// Vertices[k] is the point between EdgesOf[f][k-1] and EdgesOf[f][k]
// (indices mod Gon), so edge k of the face spans Vertices[k] and
// Vertices[k+1]; this is the corner polyhedron.VertexIncidence addresses
// as (f, k-1).
type FaceGeometry struct {
	FaceID   int
	Gon      int
	Centre   cyclo.Elem
	Vertices []cyclo.Elem
}

// Reconstruction is the exact placement of every face along one path,
// all coordinates living in the single cyclotomic field Q(ζ_N) chosen to
// fit every face gon on the path.
type Reconstruction struct {
	N     int
	Faces []FaceGeometry
}

func gcd(a, b int) int {
	for b != 0 {
		a, b = b, a%b
	}
	return a
}

func lcm(a, b int) int {
	return a / gcd(a, b) * b
}

// FieldIndex returns the smallest N such that every face gon n_f appearing
// in rec satisfies 2*n_f | N and 4 | N, large enough to embed every n-gon's
// circumradius/inradius and the imaginary unit exactly.
func FieldIndex(rec record.PartialUnfolding) int {
	n := 4
	for _, f := range rec.Faces {
		n = lcm(n, 2*f.Gon)
	}
	return n
}

// circumradiusElem returns the exact circumradius of a unit-side regular
// n-gon in Q(ζ_N): 1/(2*sin(pi/n)), with sin(pi/n) = Im(ζ_(2n)) read off
// the shared field via ζ_(2n) = ζ_N^(N/2n).
func circumradiusElem(N, n int) (cyclo.Elem, error) {
	w := cyclo.Root(N, N/(2*n))
	sinE := cyclo.Im(w)
	denom := sinE.Scale(big.NewRat(2, 1))
	one := cyclo.One(N)
	out, err := one.Div(denom)
	if err != nil {
		return cyclo.Elem{}, fmt.Errorf("verify: degenerate circumradius for a %d-gon: %w", n, err)
	}
	return out, nil
}

// inradiusElem returns the exact inradius of a unit-side regular n-gon:
// cos(pi/n)/(2*sin(pi/n)).
func inradiusElem(N, n int) (cyclo.Elem, error) {
	w := cyclo.Root(N, N/(2*n))
	cosE := cyclo.Re(w)
	sinE := cyclo.Im(w)
	denom := sinE.Scale(big.NewRat(2, 1))
	out, err := cosE.Div(denom)
	if err != nil {
		return cyclo.Elem{}, fmt.Errorf("verify: degenerate inradius for a %d-gon: %w", n, err)
	}
	return out, nil
}

// vertexRing fills in every vertex of an n-gon face given its centre, one
// known vertex value at array position "known", and N. Vertices advance
// clockwise by exactly one n-th of a full turn per step, the same
// convention enumerate/geometry.go's placement uses (edge p+k lies at
// theta - k*(360/n), clockwise from edge p).
func vertexRing(N, n int, centre, knownVertex cyclo.Elem, known int) []cyclo.Elem {
	spoke := knownVertex.Sub(centre)
	step := N / n
	out := make([]cyclo.Elem, n)
	for j := 0; j < n; j++ {
		exp := (known - j) * step
		out[j] = centre.Add(spoke.Mul(cyclo.Root(N, exp)))
	}
	return out
}

// Reconstruct computes the exact placement (centre and full vertex ring)
// of every face along rec's path, in the shared cyclotomic field returned
// by FieldIndex. It mirrors enumerate/geometry.go's placement recursion
// exactly, but in Q(ζ_N) instead of float64, so that the intersection
// tests built on top of it can decide exact degenerate contacts with zero
// floating-point risk.
func Reconstruct(poly *polyhedron.Polyhedron, rec record.PartialUnfolding) (*Reconstruction, error) {
	if len(rec.Faces) == 0 {
		return nil, fmt.Errorf("verify: record has no faces")
	}
	N := FieldIndex(rec)

	base := rec.Faces[0]
	n0 := poly.Gon[base.FaceID]
	p0 := poly.EdgeIndex(base.FaceID, rec.BasePair.BaseEdge)
	if p0 < 0 {
		return nil, fmt.Errorf("verify: base_edge %d does not border base_face %d", rec.BasePair.BaseEdge, base.FaceID)
	}

	circ0, err := circumradiusElem(N, n0)
	if err != nil {
		return nil, err
	}
	centre0 := cyclo.Zero(N)
	step0 := N / n0
	half0 := N / (2 * n0)
	v0 := make([]cyclo.Elem, n0)
	for j := 0; j < n0; j++ {
		exp := (p0-j)*step0 + half0
		v0[j] = circ0.Mul(cyclo.Root(N, exp))
	}

	out := &Reconstruction{N: N}
	out.Faces = append(out.Faces, FaceGeometry{FaceID: base.FaceID, Gon: n0, Centre: centre0, Vertices: v0})

	if len(rec.Faces) == 1 {
		return out, nil
	}

	// Second face: placed via the closed-form base case (mirrors
	// enumerate/geometry.go's placeSecondFace, here in exact arithmetic).
	second := rec.Faces[1]
	n1 := poly.Gon[second.FaceID]
	inPos1 := poly.EdgeIndex(second.FaceID, rec.BasePair.BaseEdge)
	if inPos1 < 0 {
		return nil, fmt.Errorf("verify: base_edge %d does not border face %d", rec.BasePair.BaseEdge, second.FaceID)
	}

	r0, err := inradiusElem(N, n0)
	if err != nil {
		return nil, err
	}
	r1, err := inradiusElem(N, n1)
	if err != nil {
		return nil, err
	}
	centre1 := r0.Add(r1)
	thetaExp := N / 2 // 180 degrees, matching placeSecondFace's angleDeg.

	known1 := v0[(p0+1)%n0]
	v1 := vertexRing(N, n1, centre1, known1, inPos1)
	out.Faces = append(out.Faces, FaceGeometry{FaceID: second.FaceID, Gon: n1, Centre: centre1, Vertices: v1})

	prevCentre := centre1
	prevGon := n1
	prevIncoming := inPos1 // position, within the previous face's own table, of the edge it was entered by.

	for i := 2; i < len(rec.Faces); i++ {
		cur := rec.Faces[i]
		prevFace := rec.Faces[i-1]
		nCur := poly.Gon[cur.FaceID]

		outPos := poly.EdgeIndex(prevFace.FaceID, cur.EdgeID)
		if outPos < 0 {
			return nil, fmt.Errorf("verify: edge_id %d does not border face %d", cur.EdgeID, prevFace.FaceID)
		}
		inPos := poly.EdgeIndex(cur.FaceID, cur.EdgeID)
		if inPos < 0 {
			return nil, fmt.Errorf("verify: edge_id %d does not border face %d", cur.EdgeID, cur.FaceID)
		}

		k := ((outPos-prevIncoming)%prevGon + prevGon) % prevGon
		phiExp := thetaExp - k*(N/prevGon)

		rPrev, err := inradiusElem(N, prevGon)
		if err != nil {
			return nil, err
		}
		rCur, err := inradiusElem(N, nCur)
		if err != nil {
			return nil, err
		}
		r := rPrev.Add(rCur)
		centreCur := prevCentre.Add(r.Mul(cyclo.Root(N, phiExp)))
		thetaExp = phiExp - N/2

		prevVertices := out.Faces[len(out.Faces)-1].Vertices
		knownCur := prevVertices[(outPos+1)%prevGon]
		vCur := vertexRing(N, nCur, centreCur, knownCur, inPos)

		out.Faces = append(out.Faces, FaceGeometry{FaceID: cur.FaceID, Gon: nCur, Centre: centreCur, Vertices: vCur})

		prevCentre = centreCur
		prevGon = nCur
		prevIncoming = inPos
	}

	return out, nil
}
