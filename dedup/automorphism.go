// Package dedup implements E2, the deduplicator: a pure,
// order-preserving filter that drops records isomorphic to an earlier kept
// one, where isomorphism is induced by path-direction reversal and the
// polyhedron's own combinatorial symmetries.
package dedup

import "github.com/overlaplab/rotunfold/polyhedron"

// A dart is one (face, position) pair — the combinatorial-map primitive
// this package's automorphism search runs over, in the spirit of a
// half-edge mesh's directed half-edges but carrying no embedding.
type dart struct {
	face int
	k    int
}

// automorphismGroup is the set of orientation-preserving combinatorial
// automorphisms of a Polyhedron's dart structure, represented as
// permutations of linear dart indices. Two darts are related by an
// automorphism iff some rigid relabelling of faces preserves gon, edge
// adjacency, and the counter-clockwise cyclic order of edges around every
// face.
//
// A map automorphism (orientation-preserving) is uniquely determined by
// the image of any single dart: propagating that choice through the
// "next dart in face" and "twin dart across the shared edge" relations
// forces every other dart's image, or reveals a conflict. Finding the full
// group is therefore a bounded search: for a fixed source dart, try every
// candidate target dart with a matching gon and propagate.
type automorphismGroup struct {
	numDarts   int
	dartOffset []int // dartOffset[f] is the linear index of dart (f, 0)
	members    [][]int
}

func buildDartOffsets(poly *polyhedron.Polyhedron) ([]int, int) {
	offset := make([]int, poly.NumFaces)
	total := 0
	for f := 0; f < poly.NumFaces; f++ {
		offset[f] = total
		total += poly.Gon[f]
	}
	return offset, total
}

func linearIndex(offset []int, d dart) int {
	return offset[d.face] + d.k
}

// next returns the dart obtained by advancing one position counter-
// clockwise around the same face (the map's "next" relation).
func next(poly *polyhedron.Polyhedron, d dart) dart {
	n := poly.Gon[d.face]
	return dart{face: d.face, k: (d.k + 1) % n}
}

// twin returns the dart on the other side of the edge d borders (the
// map's involutive "twin" relation).
func twin(poly *polyhedron.Polyhedron, d dart) dart {
	g := poly.NeighborOf[d.face][d.k]
	edge := poly.EdgesOf[d.face][d.k]
	k2 := poly.EdgeIndex(g, edge)
	return dart{face: g, k: k2}
}

func allDarts(poly *polyhedron.Polyhedron) []dart {
	darts := make([]dart, 0, len(poly.EdgesOf))
	for f := 0; f < poly.NumFaces; f++ {
		for k := 0; k < poly.Gon[f]; k++ {
			darts = append(darts, dart{face: f, k: k})
		}
	}
	return darts
}

// tryExtend attempts to build the unique automorphism (if any) sending d0
// to d1, by breadth-first propagation through next/twin. It returns the
// full dart-index permutation on success.
func tryExtend(poly *polyhedron.Polyhedron, offset []int, numDarts int, d0, d1 dart) ([]int, bool) {
	if poly.Gon[d0.face] != poly.Gon[d1.face] {
		return nil, false
	}

	image := make([]int, numDarts)
	assigned := make([]bool, numDarts)
	inverseAssigned := make([]bool, numDarts)
	for i := range image {
		image[i] = -1
	}

	queue := []dart{d0}
	targets := []dart{d1}
	assign := func(src, dst dart) bool {
		si, di := linearIndex(offset, src), linearIndex(offset, dst)
		if assigned[si] {
			return image[si] == di
		}
		if inverseAssigned[di] {
			return false
		}
		image[si] = di
		assigned[si] = true
		inverseAssigned[di] = true
		return true
	}

	if !assign(d0, d1) {
		return nil, false
	}

	for len(queue) > 0 {
		s := queue[0]
		t := targets[0]
		queue = queue[1:]
		targets = targets[1:]

		sNext, tNext := next(poly, s), next(poly, t)
		if poly.Gon[sNext.face] != poly.Gon[tNext.face] {
			return nil, false
		}
		if !assigned[linearIndex(offset, sNext)] {
			if !assign(sNext, tNext) {
				return nil, false
			}
			queue = append(queue, sNext)
			targets = append(targets, tNext)
		} else if image[linearIndex(offset, sNext)] != linearIndex(offset, tNext) {
			return nil, false
		}

		sTwin, tTwin := twin(poly, s), twin(poly, t)
		if poly.Gon[sTwin.face] != poly.Gon[tTwin.face] {
			return nil, false
		}
		if !assigned[linearIndex(offset, sTwin)] {
			if !assign(sTwin, tTwin) {
				return nil, false
			}
			queue = append(queue, sTwin)
			targets = append(targets, tTwin)
		} else if image[linearIndex(offset, sTwin)] != linearIndex(offset, tTwin) {
			return nil, false
		}
	}

	for _, v := range image {
		if v < 0 {
			return nil, false
		}
	}
	return image, true
}

// buildAutomorphismGroup enumerates every orientation-preserving
// combinatorial automorphism of poly.
func buildAutomorphismGroup(poly *polyhedron.Polyhedron) *automorphismGroup {
	offset, numDarts := buildDartOffsets(poly)
	darts := allDarts(poly)

	g := &automorphismGroup{numDarts: numDarts, dartOffset: offset}
	if len(darts) == 0 {
		return g
	}

	d0 := darts[0]
	seen := make(map[string]bool)
	for _, d1 := range darts {
		perm, ok := tryExtend(poly, offset, numDarts, d0, d1)
		if !ok {
			continue
		}
		key := permKey(perm)
		if seen[key] {
			continue
		}
		seen[key] = true
		g.members = append(g.members, perm)
	}
	return g
}

func permKey(perm []int) string {
	b := make([]byte, 0, len(perm)*7)
	for _, v := range perm {
		b = appendInt(b, v)
		b = append(b, ',')
	}
	return string(b)
}

func appendInt(b []byte, v int) []byte {
	if v == 0 {
		return append(b, '0')
	}
	start := len(b)
	for v > 0 {
		b = append(b, byte('0'+v%10))
		v /= 10
	}
	for i, j := start, len(b)-1; i < j; i, j = i+1, j-1 {
		b[i], b[j] = b[j], b[i]
	}
	return b
}

// orbitRepresentative returns the smallest linear dart index reachable
// from d under any automorphism in the group.
func (g *automorphismGroup) orbitRepresentative(d int) int {
	best := d
	for _, perm := range g.members {
		if perm[d] < best {
			best = perm[d]
		}
	}
	return best
}
