package dedup

import (
	"fmt"
	"strings"

	"github.com/overlaplab/rotunfold/polyhedron"
	"github.com/overlaplab/rotunfold/record"
)

// Canonicalizer computes E2's canonical signatures against one
// polyhedron's automorphism group, built once and reused across every
// record the filter sees (mirroring the verifier's per-process symbolic-
// constant cache).
type Canonicalizer struct {
	poly   *polyhedron.Polyhedron
	offset []int
	group  *automorphismGroup
}

// NewCanonicalizer builds the automorphism group of poly and returns a
// Canonicalizer ready to reduce records to canonical signatures.
func NewCanonicalizer(poly *polyhedron.Polyhedron) *Canonicalizer {
	offset, _ := buildDartOffsets(poly)
	return &Canonicalizer{
		poly:   poly,
		offset: offset,
		group:  buildAutomorphismGroup(poly),
	}
}

// orbitLabel returns the orbit-representative dart index for the directed
// edge crossing edge on face, i.e. the integer label that is identical for
// every (face, edge) pair related by a polyhedron automorphism.
func (c *Canonicalizer) orbitLabel(face, edge int) (int, error) {
	k := c.poly.EdgeIndex(face, edge)
	if k < 0 {
		return 0, fmt.Errorf("dedup: face %d does not border edge %d", face, edge)
	}
	d := linearIndex(c.offset, dart{face: face, k: k})
	return c.group.orbitRepresentative(d), nil
}

// reversed returns the path obtained by reversing direction: first and
// last swap, the interior reverses, and crossing-edge ids shift by one
// position).
func reversed(base record.BasePair, faces []record.UnfoldedFace) (record.BasePair, []record.UnfoldedFace) {
	m := len(faces)
	out := make([]record.UnfoldedFace, m)
	for j := 0; j < m; j++ {
		out[j] = faces[m-1-j]
	}
	for j := 1; j < m; j++ {
		out[j].EdgeID = faces[m-j].EdgeID
	}
	out[0].EdgeID = 0

	newBase := base
	if m >= 2 {
		newBase = record.BasePair{BaseFace: faces[m-1].FaceID, BaseEdge: faces[m-1].EdgeID}
	}
	return newBase, out
}

// signature renders one direction's canonical string: a base-pair orbit
// label followed by the (gon, crossing-edge-orbit-label) pairs along the
// path in order.
func (c *Canonicalizer) signature(base record.BasePair, faces []record.UnfoldedFace) (string, error) {
	var b strings.Builder

	baseLabel, err := c.orbitLabel(base.BaseFace, base.BaseEdge)
	if err != nil {
		return "", err
	}
	fmt.Fprintf(&b, "b%d|", baseLabel)

	for i, f := range faces {
		if i == 0 {
			fmt.Fprintf(&b, "%d:-|", f.Gon)
			continue
		}
		label, err := c.orbitLabel(faces[i-1].FaceID, f.EdgeID)
		if err != nil {
			return "", err
		}
		fmt.Fprintf(&b, "%d:%d|", f.Gon, label)
	}
	return b.String(), nil
}

// CanonicalForm computes rec's canonical signature: the lexicographically
// smaller of the forward and reversed-direction signatures.
// Automorphism-orbit labels already quotient out symmetry (b); only
// direction reversal (a) needs an explicit second candidate.
func CanonicalForm(c *Canonicalizer, rec record.PartialUnfolding) (string, error) {
	fwd, err := c.signature(rec.BasePair, rec.Faces)
	if err != nil {
		return "", err
	}
	revBase, revFaces := reversed(rec.BasePair, rec.Faces)
	rev, err := c.signature(revBase, revFaces)
	if err != nil {
		return "", err
	}
	if rev < fwd {
		return rev, nil
	}
	return fwd, nil
}
