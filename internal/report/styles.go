package report

import (
	"io"

	"github.com/charmbracelet/lipgloss"

	"github.com/omatheusmesmo/checksignals/pkg/checksignals"
)

// Color palette - keeping it minimal and accessible.
var (
	ColorWarning = lipgloss.Color("214") // Orange
	ColorInfo    = lipgloss.Color("39")  // Blue
)

// tagStyle returns the style used for a severity tag written to w.
// Each stream gets its own renderer so color support is detected per stream.
func tagStyle(w io.Writer, severity checksignals.Severity) lipgloss.Style {
	style := lipgloss.NewRenderer(w).NewStyle().Bold(true)
	switch severity {
	case checksignals.SeverityWarning:
		return style.Foreground(ColorWarning)
	default:
		return style.Foreground(ColorInfo)
	}
}
