package cli

import (
	"io"

	"github.com/charmbracelet/lipgloss"
)

// =============================================================================
// Color Palette
// =============================================================================

var (
	colorCyan   = lipgloss.Color("36")  // Teal - headings
	colorGreen  = lipgloss.Color("35")  // Green - found
	colorYellow = lipgloss.Color("220") // Amber - unreachable
	colorWhite  = lipgloss.Color("255") // Bright white - values
	colorDim    = lipgloss.Color("240") // Dim gray - muted text
)

// theme holds the styles bound to one output writer, so colors are dropped
// automatically when the writer is not a terminal.
type theme struct {
	title   lipgloss.Style
	number  lipgloss.Style
	value   lipgloss.Style
	success lipgloss.Style
	warning lipgloss.Style
	dim     lipgloss.Style
	header  lipgloss.Style
	border  lipgloss.Style
}

func newTheme(w io.Writer) theme {
	r := lipgloss.NewRenderer(w)
	return theme{
		title:   r.NewStyle().Bold(true).Foreground(colorCyan),
		number:  r.NewStyle().Foreground(colorCyan),
		value:   r.NewStyle().Foreground(colorWhite),
		success: r.NewStyle().Foreground(colorGreen),
		warning: r.NewStyle().Foreground(colorYellow),
		dim:     r.NewStyle().Foreground(colorDim),
		header:  r.NewStyle().Bold(true),
		border:  r.NewStyle().Foreground(colorDim),
	}
}
