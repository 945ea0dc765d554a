package dedup

import (
	"fmt"

	"github.com/overlaplab/rotunfold/polyhedron"
	"github.com/overlaplab/rotunfold/record"
)

// Filter is E2's pure, order-preserving isomorphism filter: it
// stores the canonical signatures of every record kept so far and drops
// any later record whose signature repeats.
type Filter struct {
	c    *Canonicalizer
	seen map[string]struct{}
}

// NewFilter builds a Filter against poly's automorphism group.
func NewFilter(poly *polyhedron.Polyhedron) *Filter {
	return &Filter{
		c:    NewCanonicalizer(poly),
		seen: make(map[string]struct{}),
	}
}

// Keep reports whether rec's canonical signature is new, and if so records
// it as seen. The first occurrence of a group of isomorphic records is
// kept; later ones return false.
func (f *Filter) Keep(rec record.PartialUnfolding) (bool, error) {
	if rec.SchemaVersion != record.SchemaVersion {
		return false, fmt.Errorf("dedup: unsupported schema_version %d", rec.SchemaVersion)
	}
	if len(rec.Faces) == 0 {
		return false, fmt.Errorf("dedup: record has no faces")
	}

	sig, err := CanonicalForm(f.c, rec)
	if err != nil {
		return false, err
	}
	if _, ok := f.seen[sig]; ok {
		return false, nil
	}
	f.seen[sig] = struct{}{}
	return true, nil
}
