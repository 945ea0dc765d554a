package record

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
)

// FormatError reports a record that fails to parse or violates the stream
// schema. Fatal at the point of read.
type FormatError struct {
	LineNumber int
	Message    string
	Err        error
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("record stream: line %d: %s: %v", e.LineNumber, e.Message, e.Err)
}

func (e *FormatError) Unwrap() error { return e.Err }

// Reader reads a line-oriented JSON record stream: one record per line,
// UTF-8, no embedded newlines.
type Reader struct {
	scanner *bufio.Scanner
	line    int
}

// NewReader wraps r as a record stream reader.
func NewReader(r io.Reader) *Reader {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)
	return &Reader{scanner: sc}
}

// Next reads and decodes the next record. It returns io.EOF (unwrapped)
// when the stream is exhausted.
func (r *Reader) Next() (PartialUnfolding, error) {
	for r.scanner.Scan() {
		r.line++
		line := r.scanner.Bytes()
		if len(line) == 0 {
			continue
		}

		var rec PartialUnfolding
		if err := json.Unmarshal(line, &rec); err != nil {
			return PartialUnfolding{}, &FormatError{LineNumber: r.line, Message: "invalid JSON", Err: err}
		}
		if rec.SchemaVersion != SchemaVersion {
			return PartialUnfolding{}, &FormatError{LineNumber: r.line, Message: fmt.Sprintf("unsupported schema_version %d", rec.SchemaVersion), Err: nil}
		}
		if rec.RecordType != RecordType {
			return PartialUnfolding{}, &FormatError{LineNumber: r.line, Message: fmt.Sprintf("unexpected record_type %q", rec.RecordType), Err: nil}
		}
		if len(rec.Faces) == 0 {
			return PartialUnfolding{}, &FormatError{LineNumber: r.line, Message: "faces must be non-empty", Err: nil}
		}
		return rec, nil
	}
	if err := r.scanner.Err(); err != nil {
		return PartialUnfolding{}, fmt.Errorf("record stream: read: %w", err)
	}
	return PartialUnfolding{}, io.EOF
}

// All drains the reader, returning every record in stream order.
func (r *Reader) All() ([]PartialUnfolding, error) {
	var out []PartialUnfolding
	for {
		rec, err := r.Next()
		if err == io.EOF {
			return out, nil
		}
		if err != nil {
			return nil, err
		}
		out = append(out, rec)
	}
}

// Writer appends records to a line-oriented JSON record stream.
type Writer struct {
	w       io.Writer
	written int
}

// NewWriter wraps w as a record stream writer.
func NewWriter(w io.Writer) *Writer {
	return &Writer{w: w}
}

// Write appends one record as a single line.
func (w *Writer) Write(rec PartialUnfolding) error {
	buf, err := json.Marshal(rec)
	if err != nil {
		return fmt.Errorf("record stream: encode: %w", err)
	}
	buf = append(buf, '\n')
	if _, err := w.w.Write(buf); err != nil {
		return fmt.Errorf("record stream: write: %w", err)
	}
	w.written++
	return nil
}

// Written returns the number of records written so far, for the
// provenance file's record count.
func (w *Writer) Written() int {
	return w.written
}
