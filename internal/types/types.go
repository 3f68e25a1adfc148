package types

// Severity is a coarse-grained risk level for a finding.
type Severity string

const (
	SevLow  Severity = "low"
	SevMed  Severity = "medium"
	SevHigh Severity = "high"
)

// Finding describes a credential-like line detected at a path and 1-based
// line number, including the matching rule ID and a bounded excerpt of the
// offending line (never the raw secret on its own, so diagnostics stay safe
// to paste into tickets).
type Finding struct {
	Path     string   `json:"path"`
	Line     int      `json:"line"`
	Rule     string   `json:"rule"`
	Severity Severity `json:"severity"`
	Excerpt  string   `json:"excerpt"`
}
