package dedup

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/overlaplab/rotunfold/polyhedron"
	"github.com/overlaplab/rotunfold/record"
)

func TestFilterDropsReversedDuplicate(t *testing.T) {
	tetra := polyhedron.Tetrahedron()
	f := NewFilter(tetra)

	rec := tetraPath(t, tetra)
	revBase, revFaces := reversed(rec.BasePair, rec.Faces)
	revRec := record.New(revBase, false, revFaces)

	keep1, err := f.Keep(rec)
	require.NoError(t, err)
	require.True(t, keep1)

	keep2, err := f.Keep(revRec)
	require.NoError(t, err)
	require.False(t, keep2, "a reversed duplicate must be dropped")
}

func TestFilterKeepsGenuinelyDistinctRecords(t *testing.T) {
	tetra := polyhedron.Tetrahedron()
	f := NewFilter(tetra)

	full := tetraPath(t, tetra)
	prefix := record.New(full.BasePair, false, full.Faces[:2])

	keep1, err := f.Keep(full)
	require.NoError(t, err)
	require.True(t, keep1)

	keep2, err := f.Keep(prefix)
	require.NoError(t, err)
	require.True(t, keep2)
}

func TestFilterRejectsEmptyFaces(t *testing.T) {
	tetra := polyhedron.Tetrahedron()
	f := NewFilter(tetra)
	_, err := f.Keep(record.PartialUnfolding{SchemaVersion: record.SchemaVersion, RecordType: record.RecordType})
	require.Error(t, err)
}
