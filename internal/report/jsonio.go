package report

import (
	"encoding/json"
	"io"

	"github.com/leakgate/leakgate/internal/types"
)

// WriteJSON emits findings as an indented JSON array, the optional
// machine-readable mode. A run with no findings writes [] rather than null.
func WriteJSON(w io.Writer, findings []types.Finding) error {
	if findings == nil {
		findings = []types.Finding{}
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(findings)
}
