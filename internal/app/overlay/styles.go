package overlay

import (
	"github.com/charmbracelet/lipgloss"

	"runlog/internal/app/severity"
)

// Color palette
const (
	FgInfo    = lipgloss.Color("0")   // Black - info text on the translucent box
	FgWarning = lipgloss.Color("11")  // Yellow - warning text
	FgError   = lipgloss.Color("9")   // Red - error, assert and exception text
	FgMuted   = lipgloss.Color("8")   // Gray - help and counters
	BgBox     = lipgloss.Color("252") // Light gray - banner and detail background
)

// Styles resolves severity style tags into lipgloss styles
type Styles struct {
	banner map[severity.Style]lipgloss.Style
	detail map[severity.Style]lipgloss.Style

	Header lipgloss.Style
	Help   lipgloss.Style
	Marker lipgloss.Style
}

// NewStyles builds the style registry
func NewStyles() Styles {
	base := lipgloss.NewStyle().
		Bold(true).
		Background(BgBox).
		PaddingLeft(2)

	colors := map[severity.Style]lipgloss.Color{
		severity.StyleInfo:    FgInfo,
		severity.StyleWarning: FgWarning,
		severity.StyleError:   FgError,
	}

	s := Styles{
		banner: make(map[severity.Style]lipgloss.Style, len(colors)),
		detail: make(map[severity.Style]lipgloss.Style, len(colors)),
		Header: lipgloss.NewStyle().Bold(true).Background(BgBox).Foreground(FgMuted).PaddingLeft(2),
		Help:   lipgloss.NewStyle().Foreground(FgMuted).PaddingLeft(2),
		Marker: lipgloss.NewStyle().Foreground(FgError).Background(BgBox),
	}

	for tag, color := range colors {
		s.banner[tag] = base.Foreground(color).AlignVertical(lipgloss.Center)
		s.detail[tag] = base.Foreground(color).AlignVertical(lipgloss.Top)
	}

	return s
}

// Banner returns the compact banner style for a severity
func (s Styles) Banner(sev severity.Severity) lipgloss.Style {
	return s.banner[severity.StyleOf(sev)]
}

// Detail returns the detail view style for a severity
func (s Styles) Detail(sev severity.Severity) lipgloss.Style {
	return s.detail[severity.StyleOf(sev)]
}
