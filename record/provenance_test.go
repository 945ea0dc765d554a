package record

import (
	"bytes"
	"encoding/json"
	"reflect"
	"testing"
)

func TestWriteProvenanceRoundTrips(t *testing.T) {
	p := Provenance{
		RunID:      "run-1",
		StartedAt:  "2026-07-30T00:00:00Z",
		EndedAt:    "2026-07-30T00:00:01Z",
		ExitStatus: 0,
		Invocation: Invocation{
			Executable: "/usr/bin/enumerate",
			Args:       []string{"enumerate", "--polyhedron", "cube.json"},
			WorkingDir: "/tmp",
		},
		InputPaths:     []string{"cube.json", "roots.json"},
		SymmetryMode:   "auto",
		SymmetryBasis:  "auto:name-prefix",
		RecordsWritten: 42,
	}

	var buf bytes.Buffer
	if err := WriteProvenance(&buf, p); err != nil {
		t.Fatalf("WriteProvenance: %v", err)
	}

	var got Provenance
	if err := json.Unmarshal(buf.Bytes(), &got); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if !reflect.DeepEqual(got, p) {
		t.Errorf("provenance round trip mismatch: got %+v, want %+v", got, p)
	}
}
