// Package enumerate implements E1, the unfolding enumerator: a
// per-root-pair depth-first search over a polyhedron's face-adjacency graph
// that lays out each path on the plane and emits a record for every prefix
// whose last face might overlap the base face.
package enumerate

import (
	"fmt"
	"math"

	"github.com/overlaplab/rotunfold/polyhedron"
	"github.com/overlaplab/rotunfold/record"
)

// searchContext holds the mutable per-root-pair scratch state: private to
// one root-pair invocation, restored on every backtrack.
type searchContext struct {
	poly *polyhedron.Polyhedron
	w    *record.Writer

	base          record.BasePair
	symmetryUsed  bool
	r0            float64
	usage         []bool
	path          []record.UnfoldedFace
	yMovedOffAxis bool

	written int
	err     error
}

// Search runs E1 over every root pair in order, writing emitted records to
// w. Root pairs are processed in input order and, within each, children are
// visited in the deterministic counter-clockwise order.
func Search(poly *polyhedron.Polyhedron, roots []polyhedron.RootPair, w *record.Writer) (int, error) {
	total := 0
	for _, rp := range roots {
		n, err := searchRoot(poly, rp, w)
		total += n
		if err != nil {
			return total, err
		}
	}
	return total, nil
}

// searchRoot runs the search for a single root pair: base face statically
// at the origin, second face placed by the closed-form unfolding formula,
// then a general recursive expansion from there.
func searchRoot(poly *polyhedron.Polyhedron, rp polyhedron.RootPair, w *record.Writer) (int, error) {
	k := poly.EdgeIndex(rp.BaseFace, rp.BaseEdge)
	if k < 0 {
		return 0, fmt.Errorf("enumerate: base_edge %d is not an edge of base_face %d", rp.BaseEdge, rp.BaseFace)
	}
	secondFace := poly.NeighborOf[rp.BaseFace][k]

	nBase := poly.Gon[rp.BaseFace]
	nSecond := poly.Gon[secondFace]

	ctx := &searchContext{
		poly:          poly,
		w:             w,
		base:          record.BasePair{BaseFace: rp.BaseFace, BaseEdge: rp.BaseEdge},
		symmetryUsed:  rp.EnableSymmetry,
		r0:            poly.Circumradius(nBase),
		usage:         make([]bool, poly.NumFaces),
		yMovedOffAxis: true,
	}
	ctx.usage[rp.BaseFace] = true
	ctx.path = append(ctx.path, record.UnfoldedFace{
		FaceID:   rp.BaseFace,
		Gon:      nBase,
		EdgeID:   0,
		X:        0,
		Y:        0,
		AngleDeg: 0,
	})

	remaining := 0.0
	for f := 0; f < poly.NumFaces; f++ {
		if f != rp.BaseFace {
			remaining += 2 * poly.Circumradius(poly.Gon[f])
		}
	}

	x, y, theta := placeSecondFace(poly, nBase, nSecond)
	remaining -= 2 * poly.Circumradius(nSecond)

	ctx.visit(secondFace, rp.BaseEdge, x, y, theta, remaining)
	return ctx.written, ctx.err
}

// visit is the recursive DFS step (state machine: arrive,
// place+normalise, distance-prune?, symmetry-prune?, emit?, expand
// children, depart). It assumes the caller has already computed (x,y,theta)
// for face and that face is not yet marked used or pushed onto the path.
func (ctx *searchContext) visit(face, incomingEdge int, x, y, theta, remaining float64) {
	if ctx.err != nil {
		return
	}

	ctx.usage[face] = true
	ctx.path = append(ctx.path, record.UnfoldedFace{
		FaceID:   face,
		Gon:      ctx.poly.Gon[face],
		EdgeID:   incomingEdge,
		X:        x,
		Y:        y,
		AngleDeg: theta,
	})
	savedYFlag := ctx.yMovedOffAxis

	defer func() {
		ctx.path = ctx.path[:len(ctx.path)-1]
		ctx.usage[face] = false
		ctx.yMovedOffAxis = savedYFlag
	}()

	rho := math.Hypot(x, y)
	rc := ctx.poly.Circumradius(ctx.poly.Gon[face])

	// 1. Distance pruning.
	if rho > remaining+ctx.r0+rc+polyhedron.Buffer {
		return
	}

	// 2. Symmetry pruning.
	if ctx.symmetryUsed {
		if y > 0 {
			ctx.yMovedOffAxis = false
		} else if ctx.yMovedOffAxis && y < 0 {
			return
		}
	}

	// Output gate.
	if rho < ctx.r0+rc+polyhedron.Buffer {
		faces := make([]record.UnfoldedFace, len(ctx.path))
		copy(faces, ctx.path)
		rec := record.New(ctx.base, ctx.symmetryUsed, faces)
		if err := ctx.w.Write(rec); err != nil {
			ctx.err = err
			return
		}
		ctx.written++
	}

	n := ctx.poly.Gon[face]
	p := ctx.poly.EdgeIndex(face, incomingEdge)
	if p < 0 {
		ctx.err = fmt.Errorf("enumerate: face %d does not border incoming edge %d", face, incomingEdge)
		return
	}

	for step := 1; step < n; step++ {
		pos := (p + step) % n
		nextFace := ctx.poly.NeighborOf[face][pos]
		if ctx.usage[nextFace] {
			continue
		}
		edge := ctx.poly.EdgesOf[face][pos]
		nextGon := ctx.poly.Gon[nextFace]

		nx, ny, nextTheta := placeChild(ctx.poly, x, y, theta, n, step, nextGon)
		nextRemaining := remaining - 2*ctx.poly.Circumradius(nextGon)

		ctx.visit(nextFace, edge, nx, ny, nextTheta, nextRemaining)
		if ctx.err != nil {
			return
		}
	}
}
