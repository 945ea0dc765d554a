package polyhedron

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const cubeDocument = `{
  "schema_version": 1,
  "polyhedron": {"class": "prism", "name": "Cube"},
  "faces": [
    {"face_id": 0, "gon": 4, "neighbors": [{"edge_id": 0, "face_id": 2}, {"edge_id": 1, "face_id": 3}, {"edge_id": 2, "face_id": 4}, {"edge_id": 3, "face_id": 5}]},
    {"face_id": 1, "gon": 4, "neighbors": [{"edge_id": 4, "face_id": 2}, {"edge_id": 5, "face_id": 3}, {"edge_id": 6, "face_id": 4}, {"edge_id": 7, "face_id": 5}]},
    {"face_id": 2, "gon": 4, "neighbors": [{"edge_id": 0, "face_id": 0}, {"edge_id": 8, "face_id": 3}, {"edge_id": 4, "face_id": 1}, {"edge_id": 11, "face_id": 5}]},
    {"face_id": 3, "gon": 4, "neighbors": [{"edge_id": 1, "face_id": 0}, {"edge_id": 9, "face_id": 4}, {"edge_id": 5, "face_id": 1}, {"edge_id": 8, "face_id": 2}]},
    {"face_id": 4, "gon": 4, "neighbors": [{"edge_id": 2, "face_id": 0}, {"edge_id": 10, "face_id": 5}, {"edge_id": 6, "face_id": 1}, {"edge_id": 9, "face_id": 3}]},
    {"face_id": 5, "gon": 4, "neighbors": [{"edge_id": 3, "face_id": 0}, {"edge_id": 11, "face_id": 2}, {"edge_id": 7, "face_id": 1}, {"edge_id": 10, "face_id": 4}]}
  ]
}`

func TestDecodeCubeDocument(t *testing.T) {
	p, id, faceIDIndex, err := Decode(strings.NewReader(cubeDocument))
	require.NoError(t, err)
	assert.Equal(t, "Cube", id.Name)
	assert.Equal(t, 6, p.NumFaces)
	require.NoError(t, p.Validate())
	assert.Len(t, faceIDIndex, 6)
}

func TestDecodeRejectsWrongSchemaVersion(t *testing.T) {
	_, _, _, err := Decode(strings.NewReader(`{"schema_version": 2, "polyhedron": {}, "faces": []}`))
	require.Error(t, err)
}

func TestDecodeRootPairs(t *testing.T) {
	p, _, faceIDIndex, err := Decode(strings.NewReader(cubeDocument))
	require.NoError(t, err)

	rootDoc := `{"schema_version": 1, "root_pairs": [{"base_face": 0, "base_edge": 0}]}`
	pairs, err := DecodeRootPairs(strings.NewReader(rootDoc), p, faceIDIndex)
	require.NoError(t, err)
	require.Len(t, pairs, 1)
	assert.Equal(t, faceIDIndex[0], pairs[0].BaseFace)
	assert.Equal(t, 0, pairs[0].BaseEdge)
}

func TestDecodeRootPairsRejectsUnknownEdge(t *testing.T) {
	p, _, faceIDIndex, err := Decode(strings.NewReader(cubeDocument))
	require.NoError(t, err)

	rootDoc := `{"schema_version": 1, "root_pairs": [{"base_face": 0, "base_edge": 9999}]}`
	_, err = DecodeRootPairs(strings.NewReader(rootDoc), p, faceIDIndex)
	require.Error(t, err)
}
