package polyhedron

import (
	"regexp"
)

// SymmetryMode is the resolved form of the symmetry-mode option.
type SymmetryMode struct {
	// Enabled is the resolved boolean symmetry-pruning flag.
	Enabled bool
	// Basis records how Enabled was determined, for the provenance file.
	Basis string
}

var autoSymmetricName = regexp.MustCompile(`^(a|p|r)|^s(0[1-9]|1[01])`)

// ResolveSymmetryMode resolves the symmetry-mode option. mode is one of
// "on", "off", or "auto"; name is the polyhedron's name, consulted only
// when mode is "auto".
//
// The auto convention: a name prefixed with "a", "p", or "r", or prefixed
// with "s" followed by two digits between 01 and 11 inclusive, resolves to
// symmetric; anything else resolves to not-symmetric.
func ResolveSymmetryMode(mode, name string) SymmetryMode {
	switch mode {
	case "on":
		return SymmetryMode{Enabled: true, Basis: "forced-on"}
	case "off":
		return SymmetryMode{Enabled: false, Basis: "forced-off"}
	default:
		enabled := autoSymmetricName.MatchString(name)
		return SymmetryMode{Enabled: enabled, Basis: "auto:name-prefix"}
	}
}
