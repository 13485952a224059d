package console

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"

	"github.com/clay-k0/QR/internal/ports"
)

// Reporter prints status lines, each preceded by a blank line.
type Reporter struct {
	w     io.Writer
	theme Theme
}

func NewReporter(w io.Writer) *Reporter {
	return &Reporter{w: w, theme: DefaultTheme(lipgloss.NewRenderer(w))}
}

var _ ports.Notifier = (*Reporter)(nil)

func (r *Reporter) Info(msg string)    { r.print(r.theme.Info, msg) }
func (r *Reporter) Warn(msg string)    { r.print(r.theme.Warn, msg) }
func (r *Reporter) Success(msg string) { r.print(r.theme.Success, msg) }

// Error is used by the top-level handler, not by the workflow itself.
func (r *Reporter) Error(msg string) { r.print(r.theme.Error, msg) }

func (r *Reporter) print(s lipgloss.Style, msg string) {
	fmt.Fprintf(r.w, "\n%s\n", s.Render(msg))
}
