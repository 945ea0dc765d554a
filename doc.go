// Package rotunfold finds self-overlapping unfoldings of convex regular
// polyhedra: paths of faces that, when unfolded flat into the plane one
// hinge at a time, fold back over a face or edge they have already laid
// down.
//
// The pipeline runs in three stages, each its own package:
//
//   - enumerate (E1): depth-first search over face-unfolding paths rooted
//     at every (face, edge) pair, pruned by a coarse circumradius/inradius
//     distance gate, emitting one JSON-line record per surviving path.
//   - dedup (E2): quotients the E1 output by the polyhedron's own
//     orientation-preserving symmetry group and by path reversal, keeping
//     one representative per isomorphism class.
//   - verify (E3): reconstructs every surviving path's face coordinates
//     exactly in a cyclotomic number field and classifies the base/last
//     face pair's true intersection kind, discarding the records that only
//     looked like overlaps under E1's floating-point distance gate.
//
// The record package defines the JSON-line wire format the three stages
// read and write between each other, and the polyhedron package defines
// the combinatorial (gon/edges_of/neighbor_of) model all three operate on.
//
// # Basic usage
//
//	poly := polyhedron.Antiprism(6)
//	var raw, deduped, verified bytes.Buffer
//	enumerate.Run(poly, "a06", "auto", roots, record.NewWriter(&raw))
//	dedup.Run(poly, &raw, &deduped)
//	verify.Run(poly, &deduped, &verified)
//
// scenario_test.go runs the enumerate and verify stages end to end on the
// antiprism/a18 fixture.
package rotunfold
