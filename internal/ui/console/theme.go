package console

import "github.com/charmbracelet/lipgloss"

type Theme struct {
	Info    lipgloss.Style
	Warn    lipgloss.Style
	Success lipgloss.Style
	Error   lipgloss.Style
}

// DefaultTheme builds styles bound to r, so color support follows the
// writer the renderer was created for.
func DefaultTheme(r *lipgloss.Renderer) Theme {
	return Theme{
		Info:    r.NewStyle(),
		Warn:    r.NewStyle().Foreground(lipgloss.Color("214")),
		Success: r.NewStyle().Bold(true).Foreground(lipgloss.Color("42")),
		Error:   r.NewStyle().Bold(true).Foreground(lipgloss.Color("196")),
	}
}
