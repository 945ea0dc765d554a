// Package polyhedron describes the combinatorial structure the rest of the
// pipeline operates on: a convex regular-faced polyhedron represented as a
// flat face-adjacency table, plus the regular-polygon geometry primitives
// (inradius, circumradius) the unfolding search and verifier both need.
//
// A Polyhedron is built once and never mutated afterward; every other stage
// treats it as read-only shared state.
package polyhedron

import (
	"math"
	"sync"
)

// Buffer is the positive numeric slack used only by the enumerator's
// approximate emission gate. It never affects the verifier's exact answer:
// it is a performance/completeness dial, not a tunable correctness
// parameter — exported as a constant, not a configurable field.
const Buffer = 1e-2

// Polyhedron is an immutable description of a convex regular-faced solid.
//
// Faces are identified by their index into Gon/EdgesOf/NeighborOf (0..NumFaces-1).
// Edge identifiers are opaque integers used only for equality and
// traceability; they need not be consecutive or start at zero.
type Polyhedron struct {
	// NumFaces is the number of faces, F.
	NumFaces int

	// Gon[f] is the number of edges of face f (n_f >= 3); f is a regular
	// n_f-gon of unit side length.
	Gon []int

	// EdgesOf[f] lists the n_f edge identifiers around face f, counter-
	// clockwise as seen from outside the polyhedron.
	EdgesOf [][]int

	// NeighborOf[f] is aligned one-to-one with EdgesOf[f]: NeighborOf[f][k]
	// is the face sharing EdgesOf[f][k] with f.
	NeighborOf [][]int

	mu                sync.RWMutex
	inradiusCache     map[int]float64
	circumradiusCache map[int]float64
	incidence         *VertexIncidence
}

// New builds a Polyhedron from its face tables. It performs only shape
// checks (consistent lengths); combinatorial consistency (reciprocity) is
// checked separately by Validate, a "build, then validate on demand" idiom
// rather than validating inside the constructor.
func New(numFaces int, gon []int, edgesOf, neighborOf [][]int) (*Polyhedron, error) {
	if numFaces != len(gon) || numFaces != len(edgesOf) || numFaces != len(neighborOf) {
		return nil, &StructuralError{
			Kind:    "shape",
			Message: "num_faces does not match the length of gon/edges_of/neighbor_of",
		}
	}
	for f := 0; f < numFaces; f++ {
		n := gon[f]
		if n < 3 {
			return nil, &StructuralError{Face: f, Kind: "gon", Message: "face has fewer than 3 edges"}
		}
		if len(edgesOf[f]) != n || len(neighborOf[f]) != n {
			return nil, &StructuralError{Face: f, Kind: "shape", Message: "edges_of/neighbor_of length does not match gon"}
		}
	}

	return &Polyhedron{
		NumFaces:          numFaces,
		Gon:               gon,
		EdgesOf:           edgesOf,
		NeighborOf:        neighborOf,
		inradiusCache:     make(map[int]float64),
		circumradiusCache: make(map[int]float64),
	}, nil
}

// EdgeIndex returns the position k such that EdgesOf[f][k] == edge, or -1 if
// face f does not border edge.
func (p *Polyhedron) EdgeIndex(f, edge int) int {
	for k, e := range p.EdgesOf[f] {
		if e == edge {
			return k
		}
	}
	return -1
}

// NeighborAcross returns the face across edge from f, and whether edge
// actually borders f.
func (p *Polyhedron) NeighborAcross(f, edge int) (int, bool) {
	k := p.EdgeIndex(f, edge)
	if k < 0 {
		return 0, false
	}
	return p.NeighborOf[f][k], true
}

// SharesEdge reports whether faces a and b are adjacent on the polyhedron.
func (p *Polyhedron) SharesEdge(a, b int) bool {
	for _, n := range p.NeighborOf[a] {
		if n == b {
			return true
		}
	}
	return false
}

// Inradius returns 1/(2*tan(pi/n)), the apothem of a unit-side regular
// n-gon. Results are cached per n-gon size (n-gons repeat heavily across a
// polyhedron's faces), the same per-process constant caching the verifier
// uses for its own symbolic constants, applied here at the geometry-
// primitive layer too.
func (p *Polyhedron) Inradius(n int) float64 {
	p.mu.RLock()
	if v, ok := p.inradiusCache[n]; ok {
		p.mu.RUnlock()
		return v
	}
	p.mu.RUnlock()

	v := Inradius(n)

	p.mu.Lock()
	defer p.mu.Unlock()
	p.inradiusCache[n] = v
	return v
}

// Circumradius returns 1/(2*sin(pi/n)), cached per n-gon size like Inradius.
func (p *Polyhedron) Circumradius(n int) float64 {
	p.mu.RLock()
	if v, ok := p.circumradiusCache[n]; ok {
		p.mu.RUnlock()
		return v
	}
	p.mu.RUnlock()

	v := Circumradius(n)

	p.mu.Lock()
	defer p.mu.Unlock()
	p.circumradiusCache[n] = v
	return v
}

// Incidence returns the vertex incidence derived from the face-corner
// union-find, computing it lazily on first use and caching it for
// the lifetime of the Polyhedron.
func (p *Polyhedron) Incidence() *VertexIncidence {
	p.mu.RLock()
	if p.incidence != nil {
		defer p.mu.RUnlock()
		return p.incidence
	}
	p.mu.RUnlock()

	p.mu.Lock()
	defer p.mu.Unlock()
	if p.incidence == nil {
		p.incidence = BuildVertexIncidence(p)
	}
	return p.incidence
}

// Inradius returns 1/(2*tan(pi/n)) for a unit-side regular n-gon.
func Inradius(n int) float64 {
	return 1.0 / (2.0 * math.Tan(math.Pi/float64(n)))
}

// Circumradius returns 1/(2*sin(pi/n)) for a unit-side regular n-gon.
func Circumradius(n int) float64 {
	return 1.0 / (2.0 * math.Sin(math.Pi/float64(n)))
}

// RootPair seeds one enumerator search: the first face of the path and the
// edge across which the second face is unfolded.
type RootPair struct {
	BaseFace int
	BaseEdge int

	// EnableSymmetry is the resolved symmetry-pruning flag in force for
	// this root.
	EnableSymmetry bool
}
