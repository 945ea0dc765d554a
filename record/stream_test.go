package record

import (
	"bytes"
	"io"
	"strings"
	"testing"
)

func sampleRecord() PartialUnfolding {
	return New(BasePair{BaseFace: 0, BaseEdge: 1}, true, []UnfoldedFace{
		{FaceID: 0, Gon: 6, EdgeID: 0, X: 0, Y: 0, AngleDeg: 0},
		{FaceID: 1, Gon: 6, EdgeID: 1, X: 1.5, Y: -2.25, AngleDeg: -180},
	})
}

func TestWriteThenReadRoundTrips(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(&buf)
	rec := sampleRecord()
	if err := w.Write(rec); err != nil {
		t.Fatalf("Write: %v", err)
	}
	if w.Written() != 1 {
		t.Fatalf("Written() = %d, want 1", w.Written())
	}

	r := NewReader(&buf)
	got, err := r.Next()
	if err != nil {
		t.Fatalf("Next: %v", err)
	}
	if got.BasePair != rec.BasePair || got.SymmetricUsed != rec.SymmetricUsed {
		t.Errorf("round trip mismatch: got %+v, want %+v", got, rec)
	}
	if len(got.Faces) != 2 || got.Faces[1].X != 1.5 || got.Faces[1].Y != -2.25 {
		t.Errorf("face round trip mismatch: %+v", got.Faces)
	}

	if _, err := r.Next(); err != io.EOF {
		t.Errorf("expected io.EOF after the single record, got %v", err)
	}
}

func TestWireFormatHasSixFractionalDigits(t *testing.T) {
	var buf bytes.Buffer
	if err := NewWriter(&buf).Write(sampleRecord()); err != nil {
		t.Fatalf("Write: %v", err)
	}
	line := buf.String()
	if !strings.Contains(line, `"x":0.000000`) {
		t.Errorf("expected fixed six-decimal x in output, got: %s", line)
	}
	if !strings.Contains(line, `"y":-2.250000`) {
		t.Errorf("expected fixed six-decimal y in output, got: %s", line)
	}
}

func TestReaderRejectsWrongSchemaVersion(t *testing.T) {
	r := NewReader(strings.NewReader(`{"schema_version":2,"record_type":"partial_unfolding","faces":[{"face_id":0,"gon":3,"edge_id":0,"x":"0.000000","y":"0.000000","angle_deg":"0.000000"}]}` + "\n"))
	if _, err := r.Next(); err == nil {
		t.Fatal("expected a schema version error")
	}
}

func TestReaderRejectsEmptyFaces(t *testing.T) {
	r := NewReader(strings.NewReader(`{"schema_version":1,"record_type":"partial_unfolding","faces":[]}` + "\n"))
	if _, err := r.Next(); err == nil {
		t.Fatal("expected an empty-faces error")
	}
}

func TestAllPreservesOrder(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(&buf)
	for i := 0; i < 3; i++ {
		rec := sampleRecord()
		rec.BasePair.BaseFace = i
		if err := w.Write(rec); err != nil {
			t.Fatalf("Write: %v", err)
		}
	}
	recs, err := NewReader(&buf).All()
	if err != nil {
		t.Fatalf("All: %v", err)
	}
	if len(recs) != 3 {
		t.Fatalf("len(recs) = %d, want 3", len(recs))
	}
	for i, r := range recs {
		if r.BasePair.BaseFace != i {
			t.Errorf("record %d: BaseFace = %d, want %d", i, r.BasePair.BaseFace, i)
		}
	}
}
