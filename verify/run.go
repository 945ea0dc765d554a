package verify

import (
	"fmt"
	"io"

	"github.com/overlaplab/rotunfold/polyhedron"
	"github.com/overlaplab/rotunfold/record"
)

// Run drives E3 end to end: for every record read from r, it
// reconstructs the path exactly, classifies the base-face/last-face
// overlap, and writes only the records that genuinely overlap, each
// augmented with exact_overlap.kind. It returns the number of records read
// and the number kept.
//
// Reconstruct and Classify assume poly describes a convex regular-faced
// polyhedron, per the angle-defect argument Skip and Classify both rely
// on; the combinatorial Polyhedron model carries no embedding and so
// cannot check convexity itself — callers are responsible for supplying a
// convex input.
func Run(poly *polyhedron.Polyhedron, r io.Reader, w io.Writer) (read, kept int, err error) {
	reader := record.NewReader(r)
	writer := record.NewWriter(w)

	for {
		rec, err := reader.Next()
		if err == io.EOF {
			return read, kept, nil
		}
		if err != nil {
			return read, kept, err
		}
		read++

		overlap, err := classifyRecord(poly, rec)
		if err != nil {
			return read, kept, fmt.Errorf("verify: record %d: %w", read, err)
		}
		if overlap == nil {
			continue
		}

		rec.ExactOverlap = overlap
		if err := writer.Write(rec); err != nil {
			return read, kept, err
		}
		kept++
	}
}

func classifyRecord(poly *polyhedron.Polyhedron, rec record.PartialUnfolding) (*record.ExactOverlap, error) {
	for _, f := range rec.Faces {
		if f.FaceID < 0 || f.FaceID >= poly.NumFaces {
			return nil, fmt.Errorf("face_id %d out of range", f.FaceID)
		}
	}

	recon, err := Reconstruct(poly, rec)
	if err != nil {
		return nil, err
	}
	return Classify(poly, rec, recon)
}
