package rotunfold

import (
	"bytes"
	"testing"

	"github.com/overlaplab/rotunfold/enumerate"
	"github.com/overlaplab/rotunfold/polyhedron"
	"github.com/overlaplab/rotunfold/record"
	"github.com/overlaplab/rotunfold/verify"
)

// allRootPairs seeds one root per (face, edge) of poly, full coverage of
// every starting point, so this test's chances of actually hitting
// one of a18's real overlaps match a production run rather than a
// hand-picked subset of starting points.
func allRootPairs(poly *polyhedron.Polyhedron) []polyhedron.RootPair {
	var roots []polyhedron.RootPair
	for f := 0; f < poly.NumFaces; f++ {
		for _, e := range poly.EdgesOf[f] {
			roots = append(roots, polyhedron.RootPair{BaseFace: f, BaseEdge: e})
		}
	}
	return roots
}

// TestScenarioAntiprismA18FindsRealOverlap runs the real E1->E3 pipeline
// (not a hand-built fixture) on the antiprism/a18 named solid and checks
// that verify.Run's exact classifier actually reports a real overlap kind
// on genuine geometry, not just on the synthetic records exercised by the
// classify/reconstruct unit tests.
func TestScenarioAntiprismA18FindsRealOverlap(t *testing.T) {
	poly, err := polyhedron.Named("antiprism/a18")
	if err != nil {
		t.Fatalf("Named: %v", err)
	}
	if err := poly.Validate(); err != nil {
		t.Fatalf("a18 fixture is structurally invalid: %v", err)
	}

	roots := allRootPairs(poly)

	var raw bytes.Buffer
	if _, _, err := enumerate.Run(poly, "a18", "auto", roots, record.NewWriter(&raw)); err != nil {
		t.Fatalf("enumerate.Run: %v", err)
	}

	var verified bytes.Buffer
	read, kept, err := verify.Run(poly, &raw, &verified)
	if err != nil {
		t.Fatalf("verify.Run: %v", err)
	}
	if read == 0 {
		t.Fatal("enumerate produced no candidate records to verify")
	}

	results, err := record.NewReader(&verified).All()
	if err != nil {
		t.Fatalf("re-reading verified output: %v", err)
	}
	if len(results) != kept {
		t.Fatalf("verify.Run reported kept=%d but stream has %d records", kept, len(results))
	}

	found := false
	for _, rec := range results {
		overlap := rec.ExactOverlap
		if overlap == nil {
			t.Fatalf("record %+v survived verify.Run without exact_overlap set", rec)
		}
		switch overlap.Kind {
		case record.KindFaceFace, record.KindEdgeEdge, record.KindEdgeVertex, record.KindVertexVertex:
			found = true
		default:
			t.Fatalf("record %+v has unrecognised exact_overlap.kind %q", rec, overlap.Kind)
		}
	}
	if !found {
		t.Fatalf("expected at least one real overlap among %d candidate records from antiprism/a18, kept none", read)
	}
}
