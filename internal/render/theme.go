// Package render draws an exercise session as a text layout for a terminal.
package render

import (
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// Theme holds the styles of every kind of cell.
type Theme struct {
	Frame   lipgloss.Style
	Title   lipgloss.Style
	Operand lipgloss.Style
	Digit   lipgloss.Style
	Carry   lipgloss.Style
	Faded   lipgloss.Style
	Active  lipgloss.Style
	Error   lipgloss.Style
	Pending lipgloss.Style
	Given   lipgloss.Style
	Rule    lipgloss.Style
	Hint    lipgloss.Style
}

// NewTheme creates a theme writing to w. With color disabled every style
// renders plain text.
func NewTheme(w io.Writer, color bool) *Theme {
	r := lipgloss.NewRenderer(w)
	if !color {
		r.SetColorProfile(termenv.Ascii)
	}

	t := &Theme{}
	t.Frame = r.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("63")).
		Padding(0, 1)
	t.Title = r.NewStyle().Bold(true).Foreground(lipgloss.Color("87"))
	t.Operand = r.NewStyle().Bold(true)
	t.Digit = r.NewStyle().Foreground(lipgloss.Color("42"))
	t.Carry = r.NewStyle().Foreground(lipgloss.Color("214"))
	t.Faded = r.NewStyle().Faint(true)
	t.Active = r.NewStyle().Reverse(true).Bold(true)
	t.Error = r.NewStyle().Bold(true).Foreground(lipgloss.Color("196"))
	t.Pending = r.NewStyle().Foreground(lipgloss.Color("240"))
	t.Given = r.NewStyle().Foreground(lipgloss.Color("245"))
	t.Rule = r.NewStyle().Foreground(lipgloss.Color("240"))
	t.Hint = r.NewStyle().Italic(true).Foreground(lipgloss.Color("117"))
	return t
}
