// Package record defines the stable JSON-line record format the three
// pipeline stages (enumerate, dedup, verify) communicate through, plus the
// line-oriented stream codec and provenance file shape.
package record

// SchemaVersion is the fixed schema version tag carried by every record.
const SchemaVersion = 1

// RecordType is the fixed record-type tag.
const RecordType = "partial_unfolding"

// BasePair identifies the root (face, edge) a record's path was seeded
// from.
type BasePair struct {
	BaseFace int `json:"base_face"`
	BaseEdge int `json:"base_edge"`
}

// UnfoldedFace is the laid-out image of one face of a path on the plane.
type UnfoldedFace struct {
	FaceID int `json:"face_id"`
	Gon    int `json:"gon"`

	// EdgeID is the edge along which this face was unfolded from the
	// previous face; ignored for the first face of the path.
	EdgeID int `json:"edge_id"`

	// X, Y are six-decimal, half-away-from-zero rounded centre
	// coordinates.
	X float64 `json:"x"`
	Y float64 `json:"y"`

	// AngleDeg is normalised to [-180, 180].
	AngleDeg float64 `json:"angle_deg"`
}

// OverlapKind is one of the four contact classifications the exact
// classifier can produce.
type OverlapKind string

const (
	KindFaceFace     OverlapKind = "face-face"
	KindEdgeEdge     OverlapKind = "edge-edge"
	KindEdgeVertex   OverlapKind = "edge-vertex"
	KindVertexVertex OverlapKind = "vertex-vertex"
)

// strength orders the four kinds for priority classification:
// face-face > edge-edge > edge-vertex = vertex-vertex.
func (k OverlapKind) strength() int {
	switch k {
	case KindFaceFace:
		return 3
	case KindEdgeEdge:
		return 2
	case KindEdgeVertex, KindVertexVertex:
		return 1
	default:
		return 0
	}
}

// Stronger reports whether k is strictly stronger than other under the
// priority order above.
func (k OverlapKind) Stronger(other OverlapKind) bool {
	return k.strength() > other.strength()
}

// ExactOverlap is the classification field E3 adds to a retained record.
type ExactOverlap struct {
	Kind OverlapKind `json:"kind"`
}

// PartialUnfolding is the stream record, one per line of output.
// ExactOverlap is present only in E3's output stream.
type PartialUnfolding struct {
	SchemaVersion int            `json:"schema_version"`
	RecordType    string         `json:"record_type"`
	BasePair      BasePair       `json:"base_pair"`
	SymmetricUsed bool           `json:"symmetric_used"`
	Faces         []UnfoldedFace `json:"faces"`
	ExactOverlap  *ExactOverlap  `json:"exact_overlap,omitempty"`
}

// LastFace returns the last face of the path. Faces is always an ordered,
// non-empty sequence.
func (r *PartialUnfolding) LastFace() UnfoldedFace {
	return r.Faces[len(r.Faces)-1]
}

// New builds a bare record with the fixed schema/type tags set.
func New(base BasePair, symmetricUsed bool, faces []UnfoldedFace) PartialUnfolding {
	return PartialUnfolding{
		SchemaVersion: SchemaVersion,
		RecordType:    RecordType,
		BasePair:      base,
		SymmetricUsed: symmetricUsed,
		Faces:         faces,
	}
}
