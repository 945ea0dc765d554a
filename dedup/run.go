package dedup

import (
	"io"

	"github.com/overlaplab/rotunfold/polyhedron"
	"github.com/overlaplab/rotunfold/record"
)

// Run streams records from r through a Filter and writes the kept ones to
// w, in order, stopping at the first malformed record or I/O error:
// malformed input is always fatal, never skipped. It returns the number of
// records read and the number kept.
func Run(poly *polyhedron.Polyhedron, r io.Reader, w io.Writer) (read, kept int, err error) {
	reader := record.NewReader(r)
	writer := record.NewWriter(w)
	filter := NewFilter(poly)

	for {
		rec, rerr := reader.Next()
		if rerr == io.EOF {
			return read, kept, nil
		}
		if rerr != nil {
			return read, kept, rerr
		}
		read++

		ok, kerr := filter.Keep(rec)
		if kerr != nil {
			return read, kept, kerr
		}
		if !ok {
			continue
		}
		if werr := writer.Write(rec); werr != nil {
			return read, kept, werr
		}
		kept++
	}
}
