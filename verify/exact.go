package verify

import (
	"github.com/overlaplab/rotunfold/record"
	"github.com/overlaplab/rotunfold/verify/cyclo"
)

// cross returns Im(Conj(a).Mul(b)), the exact complex-number encoding of
// the real 2-D cross product a.x*b.y - a.y*b.x. It is always fixed by
// complex conjugation (Galois-invariant) regardless of a, b, so it is a
// genuine real-valued field element whose zero-ness can be decided exactly.
func cross(a, b cyclo.Elem) cyclo.Elem {
	return cyclo.Im(cyclo.Conj(a).Mul(b))
}

// greaterByEval reports whether a > b, decided by numeric evaluation. The
// sign test on the collinear overlap length uses it only after an exact
// IsZero test; minElem and maxElem use it with no prior equality test,
// where equal inputs give the same result either way. It exists because no
// arbitrary-precision strict-ordering primitive is available for
// cyclotomic field elements (see DESIGN.md).
func greaterByEval(a, b cyclo.Elem) bool {
	return real(a.Eval()) > real(b.Eval())
}

func maxElem(a, b cyclo.Elem) cyclo.Elem {
	if greaterByEval(a, b) {
		return a
	}
	return b
}

func minElem(a, b cyclo.Elem) cyclo.Elem {
	if greaterByEval(a, b) {
		return b
	}
	return a
}

// edgePairResult is the outcome of testing one (base-face edge, last-face
// edge) pair.
type edgePairResult struct {
	Intersects bool
	Kind       record.OverlapKind
}

// classifyEdgePair runsstage 2 exact symbolic intersection
// test on segment A (a1->a2) against segment B (b1->b2), both already
// reconstructed in the same cyclotomic field.
func classifyEdgePair(a1, a2, b1, b2 cyclo.Elem) (edgePairResult, error) {
	d1 := a2.Sub(a1)
	d2 := b2.Sub(b1)
	w := b1.Sub(a1)

	det := cross(d1, d2)
	if det.IsZero() {
		return classifyCollinear(a1, a2, b1, b2, d1)
	}

	tNum := cross(w, d2)
	sNum := cross(d1, w.Neg())

	t, err := tNum.Div(det)
	if err != nil {
		return edgePairResult{}, err
	}
	s, err := sNum.Div(det)
	if err != nil {
		return edgePairResult{}, err
	}

	one := cyclo.One(det.N)
	tZero, tOne := t.IsZero(), t.Equal(one)
	sZero, sOne := s.IsZero(), s.Equal(one)

	tIn, tStrict := inUnitInterval(t, tZero, tOne)
	sIn, sStrict := inUnitInterval(s, sZero, sOne)
	if !tIn || !sIn {
		return edgePairResult{Intersects: false}, nil
	}

	switch {
	case tStrict && sStrict:
		return edgePairResult{true, record.KindFaceFace}, nil
	case tStrict != sStrict:
		return edgePairResult{true, record.KindEdgeVertex}, nil
	default:
		return edgePairResult{true, record.KindVertexVertex}, nil
	}
}

// inUnitInterval reports whether v (known to be exactly 0 when isZero and
// exactly 1 when isOne) lies in the closed interval [0,1], and whether it
// lies strictly inside (0,1). The strict-interior decision for a value
// already proven not equal to either boundary falls back to numeric
// evaluation (see greaterByEval).
func inUnitInterval(v cyclo.Elem, isZero, isOne bool) (inClosed, strictInterior bool) {
	if isZero || isOne {
		return true, false
	}
	re := real(v.Eval())
	if re > 0 && re < 1 {
		return true, true
	}
	return false, false
}

// classifyCollinear handles the det=0 branch: the supporting lines of A
// and B are parallel. If they are not the same line, there is no
// intersection. If they are the same line, the two segments are
// classified by the exact length of their overlap projected onto the
// line's direction.
func classifyCollinear(a1, a2, b1, b2, d1 cyclo.Elem) (edgePairResult, error) {
	w := b1.Sub(a1)
	if !cross(d1, w).IsZero() {
		return edgePairResult{Intersects: false}, nil
	}

	// Project every endpoint onto the line direction d1. The scale factor
	// |d1|^2 is irrelevant to overlap-length comparisons and is always
	// positive for a non-degenerate edge.
	project := func(p cyclo.Elem) cyclo.Elem {
		return cyclo.Re(cyclo.Conj(d1).Mul(p.Sub(a1)))
	}
	pa1 := project(a1)
	pa2 := project(a2)
	pb1 := project(b1)
	pb2 := project(b2)

	aLo, aHi := minElem(pa1, pa2), maxElem(pa1, pa2)
	bLo, bHi := minElem(pb1, pb2), maxElem(pb1, pb2)

	lo := maxElem(aLo, bLo)
	hi := minElem(aHi, bHi)
	overlap := hi.Sub(lo)

	if overlap.IsZero() {
		return edgePairResult{true, record.KindVertexVertex}, nil
	}
	if greaterByEval(overlap, cyclo.Zero(overlap.N)) {
		return edgePairResult{true, record.KindEdgeEdge}, nil
	}
	return edgePairResult{Intersects: false}, nil
}
