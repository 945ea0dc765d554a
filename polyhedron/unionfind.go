package polyhedron

// VertexIncidence is the derived global-vertex structure of a polyhedron,
// computed once via a union-find over face-corners: two corners are
// unioned whenever the two faces they join share the edge between them.
// Equivalence classes are the vertices.
//
// Corners are addressed as (face, k) meaning the junction between
// EdgesOf[face][k] and EdgesOf[face][(k+1)%gon[face]].
type VertexIncidence struct {
	offset       []int   // offset[f] is the flat corner-id of corner (f,0)
	parent       []int   // union-find parent, indexed by flat corner id
	rank         []int   // union-find rank
	vertexOf     []int   // compacted vertex id, indexed by flat corner id, valid after compact()
	facesOfVertx [][]int // facesOfVertx[v] = distinct faces incident to vertex v
}

// BuildVertexIncidence runs the corner union-find over p's face corners
// and returns the resulting vertex incidence. p is read-only throughout.
func BuildVertexIncidence(p *Polyhedron) *VertexIncidence {
	offset := make([]int, p.NumFaces)
	total := 0
	for f := 0; f < p.NumFaces; f++ {
		offset[f] = total
		total += p.Gon[f]
	}

	vi := &VertexIncidence{
		offset: offset,
		parent: make([]int, total),
		rank:   make([]int, total),
	}
	for i := range vi.parent {
		vi.parent[i] = i
	}

	corner := func(f, k int) int {
		n := p.Gon[f]
		return offset[f] + ((k % n) + n) % n
	}

	for f := 0; f < p.NumFaces; f++ {
		n := p.Gon[f]
		for k := 0; k < n; k++ {
			e := p.EdgesOf[f][k]
			g := p.NeighborOf[f][k]
			bk := p.EdgeIndex(g, e)
			// Opposite orientation across a shared edge: the corner after
			// edge k in f (between edges k and k+1) is the same physical
			// vertex as the corner before edge bk in g (between edges
			// bk-1 and bk).
			vi.union(corner(f, k), corner(g, bk-1))
		}
	}

	vi.compact(total)
	return vi
}

func (vi *VertexIncidence) find(x int) int {
	for vi.parent[x] != x {
		vi.parent[x] = vi.parent[vi.parent[x]]
		x = vi.parent[x]
	}
	return x
}

func (vi *VertexIncidence) union(a, b int) {
	ra, rb := vi.find(a), vi.find(b)
	if ra == rb {
		return
	}
	if vi.rank[ra] < vi.rank[rb] {
		ra, rb = rb, ra
	}
	vi.parent[rb] = ra
	if vi.rank[ra] == vi.rank[rb] {
		vi.rank[ra]++
	}
}

func (vi *VertexIncidence) compact(total int) {
	vi.vertexOf = make([]int, total)
	rootToVertex := make(map[int]int)
	for i := 0; i < total; i++ {
		root := vi.find(i)
		id, ok := rootToVertex[root]
		if !ok {
			id = len(rootToVertex)
			rootToVertex[root] = id
		}
		vi.vertexOf[i] = id
	}

	vi.facesOfVertx = make([][]int, len(rootToVertex))
	faceSeen := make([]map[int]bool, len(rootToVertex))
	for i := range faceSeen {
		faceSeen[i] = make(map[int]bool)
	}
	for f := 0; f < len(vi.offset); f++ {
		n := vi.cornersIn(f, total)
		for k := 0; k < n; k++ {
			v := vi.vertexOf[vi.offset[f]+k]
			if !faceSeen[v][f] {
				faceSeen[v][f] = true
				vi.facesOfVertx[v] = append(vi.facesOfVertx[v], f)
			}
		}
	}
}

// cornersIn returns the number of corners belonging to face f, derived from
// the offset table (offset[f+1]-offset[f], or total-offset[f] for the last
// face).
func (vi *VertexIncidence) cornersIn(f, total int) int {
	if f+1 < len(vi.offset) {
		return vi.offset[f+1] - vi.offset[f]
	}
	return total - vi.offset[f]
}

// NumVertices returns the number of distinct global vertices.
func (vi *VertexIncidence) NumVertices() int {
	return len(vi.facesOfVertx)
}

// VertexAt returns the global vertex id of the corner between
// EdgesOf[face][k] and EdgesOf[face][(k+1)%gon[face]].
func (vi *VertexIncidence) VertexAt(face, k int) int {
	n := vi.cornersIn(face, len(vi.vertexOf))
	k = ((k % n) + n) % n
	return vi.vertexOf[vi.offset[face]+k]
}

// FacesOfVertex returns the faces incident to vertex v, in no particular
// order.
func (vi *VertexIncidence) FacesOfVertex(v int) []int {
	return vi.facesOfVertx[v]
}

// Degree returns the number of faces incident to vertex v (its degree in
// the face-adjacency sense; every global vertex of a valid polyhedron has
// degree >= 3).
func (vi *VertexIncidence) Degree(v int) int {
	return len(vi.facesOfVertx[v])
}

// SharesVertex reports whether faces a and b have any global vertex in
// common.
func (vi *VertexIncidence) SharesVertex(a, b int) bool {
	for _, v := range vi.vertexOfFace(a) {
		for _, w := range vi.vertexOfFace(b) {
			if v == w {
				return true
			}
		}
	}
	return false
}

func (vi *VertexIncidence) vertexOfFace(f int) []int {
	n := vi.cornersIn(f, len(vi.vertexOf))
	out := make([]int, n)
	for k := 0; k < n; k++ {
		out[k] = vi.vertexOf[vi.offset[f]+k]
	}
	return out
}

func (vi *VertexIncidence) validateDegree() error {
	for v := 0; v < len(vi.facesOfVertx); v++ {
		if len(vi.facesOfVertx[v]) < 3 {
			return &StructuralError{Kind: "vertex-degree", Message: "global vertex has fewer than 3 incident faces"}
		}
	}
	return nil
}
