package polyhedron

import (
	"encoding/json"
	"fmt"
	"io"
)

// Document is the polyhedron input document.
type Document struct {
	SchemaVersion int        `json:"schema_version"`
	Polyhedron    DocumentID `json:"polyhedron"`
	Faces         []FaceDoc  `json:"faces"`
}

// DocumentID identifies the polyhedron described by a Document.
type DocumentID struct {
	Class string `json:"class"`
	Name  string `json:"name"`
}

// FaceDoc is one face entry of a Document.
type FaceDoc struct {
	FaceID    int             `json:"face_id"`
	Gon       int             `json:"gon"`
	Neighbors []NeighborEntry `json:"neighbors"`
}

// NeighborEntry is one {edge_id, face_id} pair, counter-clockwise as seen
// from outside the polyhedron.
type NeighborEntry struct {
	EdgeID int `json:"edge_id"`
	FaceID int `json:"face_id"`
}

// SupportedSchemaVersion is the only polyhedron/root-pair document schema
// version this module understands.
const SupportedSchemaVersion = 1

// Decode parses and validates a polyhedron Document into a Polyhedron,
// running Validate before returning it. Any malformed document or
// structural inconsistency is a fatal, reported error.
func Decode(r io.Reader) (*Polyhedron, DocumentID, map[int]int, error) {
	var doc Document
	if err := json.NewDecoder(r).Decode(&doc); err != nil {
		return nil, DocumentID{}, nil, fmt.Errorf("decode polyhedron document: %w", err)
	}
	if doc.SchemaVersion != SupportedSchemaVersion {
		return nil, DocumentID{}, nil, fmt.Errorf("polyhedron document: unsupported schema_version %d", doc.SchemaVersion)
	}

	numFaces := len(doc.Faces)
	gon := make([]int, numFaces)
	edgesOf := make([][]int, numFaces)
	neighborOf := make([][]int, numFaces)

	// face_id values need not be 0..F-1 already sorted by array position;
	// index by declared face_id to build the flat tables New() expects.
	byID := make(map[int]int, numFaces)
	for i, f := range doc.Faces {
		byID[f.FaceID] = i
	}

	for i, f := range doc.Faces {
		gon[i] = f.Gon
		edges := make([]int, len(f.Neighbors))
		neighbors := make([]int, len(f.Neighbors))
		for k, n := range f.Neighbors {
			edges[k] = n.EdgeID
			idx, ok := byID[n.FaceID]
			if !ok {
				return nil, DocumentID{}, nil, fmt.Errorf("polyhedron document: face %d references unknown neighbor face %d", f.FaceID, n.FaceID)
			}
			neighbors[k] = idx
		}
		edgesOf[i] = edges
		neighborOf[i] = neighbors
	}

	p, err := New(numFaces, gon, edgesOf, neighborOf)
	if err != nil {
		return nil, DocumentID{}, nil, err
	}
	if err := p.Validate(); err != nil {
		return nil, DocumentID{}, nil, err
	}

	return p, doc.Polyhedron, byID, nil
}

// RootPairDocument is the root-pair input document.
type RootPairDocument struct {
	SchemaVersion int             `json:"schema_version"`
	RootPairs     []RootPairEntry `json:"root_pairs"`
}

// RootPairEntry is one {base_face, base_edge} pair, keyed by the polyhedron
// document's declared face_id / edge_id (translated to internal face
// indices by DecodeRootPairs).
type RootPairEntry struct {
	BaseFace int `json:"base_face"`
	BaseEdge int `json:"base_edge"`
}

// DecodeRootPairs parses a root-pair document against p, translating
// declared face_id values into p's internal 0..F-1 face indices via
// faceIDIndex (as produced alongside Decode).
func DecodeRootPairs(r io.Reader, p *Polyhedron, faceIDIndex map[int]int) ([]RootPair, error) {
	var doc RootPairDocument
	if err := json.NewDecoder(r).Decode(&doc); err != nil {
		return nil, fmt.Errorf("decode root-pair document: %w", err)
	}
	if doc.SchemaVersion != SupportedSchemaVersion {
		return nil, fmt.Errorf("root-pair document: unsupported schema_version %d", doc.SchemaVersion)
	}

	out := make([]RootPair, 0, len(doc.RootPairs))
	for _, rp := range doc.RootPairs {
		f, ok := faceIDIndex[rp.BaseFace]
		if !ok {
			return nil, fmt.Errorf("root-pair document: unknown base_face %d", rp.BaseFace)
		}
		if p.EdgeIndex(f, rp.BaseEdge) < 0 {
			return nil, fmt.Errorf("root-pair document: base_edge %d not incident to base_face %d", rp.BaseEdge, rp.BaseFace)
		}
		out = append(out, RootPair{BaseFace: f, BaseEdge: rp.BaseEdge})
	}
	return out, nil
}
