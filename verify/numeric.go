package verify

import (
	"math"

	"github.com/overlaplab/rotunfold/verify/cyclo"
)

// stage1Epsilon is the numeric-filter slack for the fast prefilter ahead
// of exact classification. A stricter implementation would evaluate
// endpoints to at least 80 decimal digits with ε = 10⁻³⁰; no arbitrary-
// precision trigonometric evaluator exists anywhere in the example pack or
// the standard library (only math/big.Float's arithmetic, not its
// transcendental functions, is arbitrary precision), so this stage
// evaluates through cyclo.Elem.Eval's complex128 instead and widens ε to
// compensate for float64's roughly 15-16 decimal digits of precision.
// Stage 1 decides only clear cases: it accepts a clean interior crossing
// as face-face, and rejects a pair whose bounding boxes are disjoint or
// whose t or s lies more than ε outside [0,1]. Every pair within ε of a
// decision boundary escalates to stage 2's exact field arithmetic (see
// DESIGN.md).
const stage1Epsilon = 1e-9

type point2 struct{ X, Y float64 }

func toPoint2(e cyclo.Elem) point2 {
	z := e.Eval()
	return point2{real(z), imag(z)}
}

func boxesDisjoint(a1, a2, b1, b2 point2) bool {
	aMinX, aMaxX := math.Min(a1.X, a2.X), math.Max(a1.X, a2.X)
	aMinY, aMaxY := math.Min(a1.Y, a2.Y), math.Max(a1.Y, a2.Y)
	bMinX, bMaxX := math.Min(b1.X, b2.X), math.Max(b1.X, b2.X)
	bMinY, bMaxY := math.Min(b1.Y, b2.Y), math.Max(b1.Y, b2.Y)
	if aMaxX < bMinX-stage1Epsilon || bMaxX < aMinX-stage1Epsilon {
		return true
	}
	if aMaxY < bMinY-stage1Epsilon || bMaxY < aMinY-stage1Epsilon {
		return true
	}
	return false
}

func orient2(p, q, r point2) float64 {
	return (q.X-p.X)*(r.Y-p.Y) - (q.Y-p.Y)*(r.X-p.X)
}

// stage1 is the fast, lower-precision numeric filter ahead of exact
// classification. accept means the
// pair is conclusively a face-face overlap with no need to escalate.
// escalate means the pair is ambiguous (any orientation or parameter
// within ε of a decision boundary) and must go through stage 2.
func stage1(ea1, ea2, eb1, eb2 cyclo.Elem) (accept, escalate bool) {
	a1, a2, b1, b2 := toPoint2(ea1), toPoint2(ea2), toPoint2(eb1), toPoint2(eb2)

	if boxesDisjoint(a1, a2, b1, b2) {
		return false, false
	}

	o1 := orient2(a1, a2, b1)
	o2 := orient2(a1, a2, b2)
	o3 := orient2(b1, b2, a1)
	o4 := orient2(b1, b2, a2)
	for _, o := range []float64{o1, o2, o3, o4} {
		if math.Abs(o) < stage1Epsilon {
			return false, true
		}
	}

	d1x, d1y := a2.X-a1.X, a2.Y-a1.Y
	d2x, d2y := b2.X-b1.X, b2.Y-b1.Y
	det := d1x*d2y - d1y*d2x
	if math.Abs(det) < stage1Epsilon {
		return false, true
	}

	wx, wy := b1.X-a1.X, b1.Y-a1.Y
	t := (wx*d2y - wy*d2x) / det
	s := (d1y*wx - d1x*wy) / det

	for _, v := range []float64{t, s} {
		if math.Abs(v) < stage1Epsilon || math.Abs(v-1) < stage1Epsilon {
			return false, true
		}
	}

	if t > 0 && t < 1 && s > 0 && s < 1 {
		return true, false
	}
	return false, false
}
