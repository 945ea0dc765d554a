package record

import (
	"encoding/json"
	"io"
)

// Invocation captures how the producing process was run, for the
// provenance file.
type Invocation struct {
	Executable string   `json:"executable"`
	Args       []string `json:"args"`
	WorkingDir string   `json:"working_dir"`
}

// Provenance is the single-document provenance file E1 emits alongside its
// raw stream. It is informational for downstream tooling only —
// not required for correctness.
type Provenance struct {
	RunID          string     `json:"run_id"`
	StartedAt      string     `json:"started_at"`
	EndedAt        string     `json:"ended_at"`
	ExitStatus     int        `json:"exit_status"`
	Invocation     Invocation `json:"invocation"`
	InputPaths     []string   `json:"input_paths"`
	SymmetryMode   string     `json:"symmetry_mode"`
	SymmetryBasis  string     `json:"symmetry_basis"`
	RecordsWritten int        `json:"records_written"`
}

// WriteProvenance writes p as the single-document provenance file.
func WriteProvenance(w io.Writer, p Provenance) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(p)
}
