package report

import (
	"encoding/json"
	"os"

	xxhash "github.com/cespare/xxhash/v2"
	"github.com/leakgate/leakgate/internal/types"
)

// BaselineFileName is where accepted findings live, relative to the scan root.
const BaselineFileName = "leakgate.baseline.json"

// Baseline is a set of accepted finding fingerprints. Fingerprints hash the
// path, rule, and excerpt, so a baselined finding survives unrelated edits
// that shift its line number.
type Baseline struct {
	Items map[string]bool `json:"items"`
}

// LoadBaseline reads a baseline file. A missing or malformed file yields an
// empty baseline.
func LoadBaseline(path string) (Baseline, error) {
	b := Baseline{Items: map[string]bool{}}
	raw, err := os.ReadFile(path)
	if err != nil {
		return b, err
	}
	_ = json.Unmarshal(raw, &b)
	if b.Items == nil {
		b.Items = map[string]bool{}
	}
	return b, nil
}

// SaveBaseline writes the fingerprints of findings to path.
func SaveBaseline(path string, findings []types.Finding) error {
	b := Baseline{Items: map[string]bool{}}
	for _, f := range findings {
		b.Items[Fingerprint(f)] = true
	}
	buf, err := json.MarshalIndent(b, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, buf, 0644)
}

// FilterNew returns the findings not present in the baseline, preserving
// emit order.
func FilterNew(findings []types.Finding, base Baseline) []types.Finding {
	var out []types.Finding
	for _, f := range findings {
		if !base.Items[Fingerprint(f)] {
			out = append(out, f)
		}
	}
	return out
}

// Fingerprint returns a short stable key for a finding.
func Fingerprint(f types.Finding) string {
	sum := xxhash.Sum64String(f.Path + "|" + f.Rule + "|" + f.Excerpt)
	var buf [16]byte
	const hex = "0123456789abcdef"
	for i := 15; i >= 0; i-- {
		buf[i] = hex[sum&0xF]
		sum >>= 4
	}
	return string(buf[:])
}
