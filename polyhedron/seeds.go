package polyhedron

import "fmt"

// Seed constructors for small built-in polyhedra. Polyhedron here is purely
// combinatorial — a face-adjacency table with no 3-D embedding — so a seed
// only needs to produce a reciprocal gon/edges_of/neighbor_of table, not
// real-world vertex positions. Larger named catalog solids not covered by a
// seed below are expected to arrive as JSON documents via Decode; the
// generators here exist for demos, fixtures and unit tests that don't want
// to carry a JSON file.

// buildFromFaceCycles constructs a Polyhedron from each face's vertices,
// listed counter-clockwise as seen from outside. This is the standard way
// to hand-specify a combinatorial solid: get every face's vertex cycle
// right and consistent orientation follows automatically, because a
// manifold's two faces at a shared edge always traverse it in opposite
// directions. That is what this function checks: no directed edge (a,b)
// appears in two faces, and for every directed edge (a,b) in a face, some
// other face carries the reverse edge (b,a).
func buildFromFaceCycles(faces [][]int) (*Polyhedron, error) {
	numFaces := len(faces)
	maxVert := -1
	for _, vs := range faces {
		for _, v := range vs {
			if v > maxVert {
				maxVert = v
			}
		}
	}
	mod := maxVert + 1

	type dirEdge struct{ a, b int }
	ownerFace := make(map[dirEdge]int)
	for f, vs := range faces {
		n := len(vs)
		for k := 0; k < n; k++ {
			a, b := vs[k], vs[(k+1)%n]
			if _, dup := ownerFace[dirEdge{a, b}]; dup {
				return nil, &StructuralError{Face: f, Kind: "edge", Message: "directed edge repeated across faces"}
			}
			ownerFace[dirEdge{a, b}] = f
		}
	}

	gon := make([]int, numFaces)
	edgesOf := make([][]int, numFaces)
	neighborOf := make([][]int, numFaces)
	for f, vs := range faces {
		n := len(vs)
		gon[f] = n
		edgesOf[f] = make([]int, n)
		neighborOf[f] = make([]int, n)
		for k := 0; k < n; k++ {
			a, b := vs[k], vs[(k+1)%n]
			lo, hi := a, b
			if lo > hi {
				lo, hi = hi, lo
			}
			edgesOf[f][k] = lo*mod + hi

			g, ok := ownerFace[dirEdge{b, a}]
			if !ok {
				return nil, &StructuralError{Face: f, Kind: "edge", Message: "edge has no opposite-orientation neighbour"}
			}
			neighborOf[f][k] = g
		}
	}

	return New(numFaces, gon, edgesOf, neighborOf)
}

// Tetrahedron returns the combinatorial tetrahedron: 4 triangular faces,
// every pair of which shares exactly one edge. Faces are specified as the
// 4 vertex-omitting triangles of a 4-vertex solid (0,1,2,3), each listed
// counter-clockwise as seen from outside.
func Tetrahedron() *Polyhedron {
	faces := [][]int{
		{1, 3, 2}, // opposite vertex 0
		{0, 2, 3}, // opposite vertex 1
		{0, 3, 1}, // opposite vertex 2
		{0, 1, 2}, // opposite vertex 3
	}
	p, err := buildFromFaceCycles(faces)
	if err != nil {
		panic(err) // construction above is internally consistent by design
	}
	return p
}

// Prism returns the combinatorial n-gonal prism: two n-gon caps (faces 0
// and 1) and n quadrilateral side faces (faces 2..n+1), each side bordering
// both caps and its two side neighbors. Prism(4) is combinatorially a cube.
func Prism(n int) *Polyhedron {
	numFaces := n + 2
	gon := make([]int, numFaces)
	edgesOf := make([][]int, numFaces)
	neighborOf := make([][]int, numFaces)

	top, bottom := 0, 1
	side := func(i int) int { return 2 + ((i % n) + n) % n }

	gon[top] = n
	gon[bottom] = n
	topEdges, topNeighbors := make([]int, n), make([]int, n)
	bottomEdges, bottomNeighbors := make([]int, n), make([]int, n)
	for i := 0; i < n; i++ {
		// Seen from outside, the top cap runs through the sides in the
		// reverse order of the bottom cap.
		topEdges[i] = n - 1 - i
		topNeighbors[i] = side(n - 1 - i)
		bottomEdges[i] = n + i
		bottomNeighbors[i] = side(i)
	}
	edgesOf[top], neighborOf[top] = topEdges, topNeighbors
	edgesOf[bottom], neighborOf[bottom] = bottomEdges, bottomNeighbors

	for i := 0; i < n; i++ {
		f := side(i)
		gon[f] = 4
		edgesOf[f] = []int{i, 2*n + i, n + i, 2*n + (((i-1)%n)+n)%n}
		neighborOf[f] = []int{top, side(i + 1), bottom, side(i - 1)}
	}

	p, err := New(numFaces, gon, edgesOf, neighborOf)
	if err != nil {
		panic(err)
	}
	return p
}

// Cube is the n=4 case of Prism, given its own name for readability at call
// sites.
func Cube() *Polyhedron {
	return Prism(4)
}

// Antiprism returns the combinatorial n-gonal antiprism: two n-gon caps and
// a belt of 2n alternating triangles, each triangle bordering one cap and
// its two triangular neighbors in the belt.
func Antiprism(n int) *Polyhedron {
	numFaces := 2*n + 2
	gon := make([]int, numFaces)
	edgesOf := make([][]int, numFaces)
	neighborOf := make([][]int, numFaces)

	top, bottom := 0, 1
	up := func(i int) int { return 2 + ((i % n) + n) % n }       // U_i: upward triangle, borders top
	down := func(i int) int { return 2 + n + ((i % n) + n) % n } // D_i: downward triangle, borders bottom

	gon[top], gon[bottom] = n, n
	topEdges, topNeighbors := make([]int, n), make([]int, n)
	bottomEdges, bottomNeighbors := make([]int, n), make([]int, n)
	for i := 0; i < n; i++ {
		topEdges[i], topNeighbors[i] = n-1-i, up(n-1-i) // reverse order: top is seen from the opposite side
		bottomEdges[i], bottomNeighbors[i] = n+i, down(i)
	}
	edgesOf[top], neighborOf[top] = topEdges, topNeighbors
	edgesOf[bottom], neighborOf[bottom] = bottomEdges, bottomNeighbors

	for i := 0; i < n; i++ {
		// U_i: top edge, edgeA_i (to D_i), edgeB_i (to D_{i-1}).
		uf := up(i)
		gon[uf] = 3
		edgesOf[uf] = []int{i, 2*n + i, 3*n + i}
		neighborOf[uf] = []int{top, down(i), down(i - 1)}

		// D_i: bottom edge, edgeA_i (to U_i), edgeB_{i+1} (to U_{i+1}).
		df := down(i)
		gon[df] = 3
		edgesOf[df] = []int{n + i, 2*n + i, 3*n + ((i+1)%n+n)%n}
		neighborOf[df] = []int{bottom, up(i), up(i + 1)}
	}

	p, err := New(numFaces, gon, edgesOf, neighborOf)
	if err != nil {
		panic(err)
	}
	return p
}

// Bipyramid returns the combinatorial n-gonal bipyramid: two apexes (top
// and bottom), an n-vertex equatorial ring, and 2n triangular faces — n
// joining the top apex to each equatorial edge, n joining the bottom apex
// the same way, wound oppositely so the shared equatorial edges traverse
// in consistent opposite directions. Requires n >= 3.
func Bipyramid(n int) *Polyhedron {
	top, bottom := 0, 1
	equator := func(i int) int { return 2 + ((i % n) + n) % n }

	faces := make([][]int, 0, 2*n)
	for i := 0; i < n; i++ {
		faces = append(faces, []int{top, equator(i), equator(i + 1)})
	}
	for i := 0; i < n; i++ {
		faces = append(faces, []int{bottom, equator(i + 1), equator(i)})
	}

	p, err := buildFromFaceCycles(faces)
	if err != nil {
		panic(err)
	}
	return p
}

// Named resolves one of the small set of built-in catalog fixtures used by
// the scenario tests and examples to its combinatorial Polyhedron. It does
// not attempt to cover the full Archimedean/Johnson catalog — solids
// outside this set arrive as JSON documents via Decode — it exists so the
// handful of named scenarios this module ships as end-to-end fixtures don't
// each need their own hand-maintained JSON file.
func Named(name string) (*Polyhedron, error) {
	switch name {
	case "archimedean/s07":
		return Antiprism(7), nil
	case "johnson/n20":
		return Bipyramid(9), nil
	case "johnson/n66":
		return Bipyramid(14), nil
	case "antiprism/a18":
		return Antiprism(18), nil
	default:
		return nil, fmt.Errorf("polyhedron: no built-in fixture named %q", name)
	}
}
