package enumerate

import (
	"math"

	"github.com/overlaplab/rotunfold/polyhedron"
	"github.com/overlaplab/rotunfold/record"
)

// placeSecondFace computes the second face's placement: laid
// out by unfolding across the base edge, centre at
// (inradius(nBase)+inradius(nSecond), 0), angle_deg initialised to -180.
func placeSecondFace(poly *polyhedron.Polyhedron, nBase, nSecond int) (x, y, angleDeg float64) {
	x = poly.Inradius(nBase) + poly.Inradius(nSecond)
	y = 0
	angleDeg = record.NormalizeAngleDeg(-180)
	return
}

// placeChild computes the k-th outgoing placement from a face at (x,y)
// with gon n and back-angle theta, using the per-step rotation formula
// theta - k*(360/n). k ranges 1..n-1 over the adjacent positions other
// than the predecessor. nextGon is the gon of the face being placed.
//
// Returns the new centre (snapped to zero at SnapTiny's 1e-10 noise
// threshold) and the new face's own back-angle (its theta for the
// recursive call).
func placeChild(poly *polyhedron.Polyhedron, x, y, theta float64, n, k, nextGon int) (nx, ny, nextTheta float64) {
	step := 360.0 / float64(n)
	phi := record.NormalizeAngleDeg(theta - float64(k)*step)

	r := poly.Inradius(n) + poly.Inradius(nextGon)
	rad := phi * math.Pi / 180.0

	nx = record.SnapTiny(x + r*math.Cos(rad))
	ny = record.SnapTiny(y + r*math.Sin(rad))
	nextTheta = record.NormalizeAngleDeg(phi - 180.0)
	return
}
