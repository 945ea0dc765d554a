package verify

import (
	"github.com/overlaplab/rotunfold/polyhedron"
	"github.com/overlaplab/rotunfold/record"
)

// Classify decides whether the base face and the last face of rec's path
// genuinely overlap: skipped pairs (polyhedron
// neighbours, or faces sharing a polyhedron vertex) never overlap; every
// other pair is tested edge-by-edge and classified by the strongest kind
// of contact found across the full cross-product of edges. Returns nil,
// nil when the pair should be rejected (skipped, or no intersecting edge
// pair found).
func Classify(poly *polyhedron.Polyhedron, rec record.PartialUnfolding, recon *Reconstruction) (*record.ExactOverlap, error) {
	baseFace := rec.Faces[0].FaceID
	lastFace := rec.Faces[len(rec.Faces)-1].FaceID
	if Skip(poly, baseFace, lastFace) {
		return nil, nil
	}

	baseGeo := recon.Faces[0]
	lastGeo := recon.Faces[len(recon.Faces)-1]

	var strongest *record.OverlapKind
	for i := 0; i < baseGeo.Gon; i++ {
		a1 := baseGeo.Vertices[i]
		a2 := baseGeo.Vertices[(i+1)%baseGeo.Gon]
		for j := 0; j < lastGeo.Gon; j++ {
			b1 := lastGeo.Vertices[j]
			b2 := lastGeo.Vertices[(j+1)%lastGeo.Gon]

			var result edgePairResult
			if accept, escalate := stage1(a1, a2, b1, b2); accept {
				result = edgePairResult{Intersects: true, Kind: record.KindFaceFace}
			} else if escalate {
				r, err := classifyEdgePair(a1, a2, b1, b2)
				if err != nil {
					return nil, err
				}
				result = r
			} else {
				continue
			}

			if !result.Intersects {
				continue
			}
			if strongest == nil || result.Kind.Stronger(*strongest) {
				k := result.Kind
				strongest = &k
			}
			if *strongest == record.KindFaceFace {
				return &record.ExactOverlap{Kind: record.KindFaceFace}, nil
			}
		}
	}

	if strongest == nil {
		return nil, nil
	}
	return &record.ExactOverlap{Kind: *strongest}, nil
}
