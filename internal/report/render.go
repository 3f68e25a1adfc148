package report

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/leakgate/leakgate/internal/types"
)

var (
	styleLow  = lipgloss.NewStyle().Foreground(lipgloss.Color("6"))
	styleMed  = lipgloss.NewStyle().Foreground(lipgloss.Color("3"))
	styleHigh = lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
	stylePass = lipgloss.NewStyle().Foreground(lipgloss.Color("2")).Bold(true)
	styleFail = lipgloss.NewStyle().Foreground(lipgloss.Color("1")).Bold(true)
)

// Printer writes human-readable diagnostics to a single stream, one line per
// finding, in the order findings are emitted. It never reorders or buffers.
type Printer struct {
	w     io.Writer
	color bool
}

// NewPrinter returns a printer for w. Color is the caller's decision so the
// same printer works for terminals, pipes, and test buffers.
func NewPrinter(w io.Writer, color bool) *Printer {
	return &Printer{w: w, color: color}
}

// Finding prints one finding diagnostic.
func (p *Printer) Finding(f types.Finding) {
	sev := string(f.Severity)
	if p.color {
		sev = p.severityStyle(f.Severity).Render(sev)
	}
	fmt.Fprintf(p.w, "%-6s %-20s %s:%d  %s\n", sev, f.Rule, f.Path, f.Line, f.Excerpt)
}

// ReadError prints a non-fatal per-entry diagnostic. The entry counts as
// zero findings.
func (p *Printer) ReadError(path string, err error) {
	fmt.Fprintf(p.w, "warn: skipping %s: %v\n", path, err)
}

// SummaryStats carries the run totals shown under the banner.
type SummaryStats struct {
	FilesScanned int
	FilesSkipped int
	Suppressed   int // findings hidden by the baseline
}

// Summary prints the final pass/fail banner and run totals. failed must be
// true iff at least one finding survived filtering.
func (p *Printer) Summary(failed bool, n int, stats SummaryStats) {
	var banner string
	if failed {
		banner = fmt.Sprintf("✖ %d potential secret(s) found", n)
		if p.color {
			banner = styleFail.Render(banner)
		}
	} else {
		banner = "✔ no secrets found"
		if p.color {
			banner = stylePass.Render(banner)
		}
	}
	fmt.Fprintln(p.w, banner)
	fmt.Fprintf(p.w, "files scanned: %d, skipped: %d", stats.FilesScanned, stats.FilesSkipped)
	if stats.Suppressed > 0 {
		fmt.Fprintf(p.w, ", baselined: %d", stats.Suppressed)
	}
	fmt.Fprintln(p.w)
}

func (p *Printer) severityStyle(s types.Severity) lipgloss.Style {
	switch s {
	case types.SevHigh:
		return styleHigh
	case types.SevMed:
		return styleMed
	default:
		return styleLow
	}
}
