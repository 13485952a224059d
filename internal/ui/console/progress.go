package console

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/term"

	"github.com/clay-k0/QR/internal/domain"
	"github.com/clay-k0/QR/internal/ports"
)

const (
	barWidth     = 40
	tickInterval = 10 * time.Millisecond
)

// NewIndicator picks the progress display for w: nothing when disabled,
// an animated bar on a terminal, and a single static line otherwise.
func NewIndicator(w io.Writer, cfg domain.ProgressConfig, log *slog.Logger) ports.ProgressIndicator {
	if !cfg.Enabled {
		return Nop{}
	}
	if IsTerminal(w) {
		return NewAnimated(w, cfg.Steps, log)
	}
	return NewStatic(w, cfg.Steps)
}

// IsTerminal reports whether w is a file attached to a terminal.
func IsTerminal(w io.Writer) bool {
	f, ok := w.(interface{ Fd() uintptr })
	return ok && term.IsTerminal(int(f.Fd()))
}

type Nop struct{}

func (Nop) Run(context.Context) error { return nil }

// Static prints the completed bar once.
type Static struct {
	w     io.Writer
	steps int
}

func NewStatic(w io.Writer, steps int) *Static {
	return &Static{w: w, steps: steps}
}

func (s *Static) Run(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	bar := newBar()
	_, err := fmt.Fprintf(s.w, "%s %d/%d\n", bar.ViewAs(1), s.steps, s.steps)
	return err
}

// Animated runs a small bubbletea program that advances the bar one step
// per tick until all steps are shown.
type Animated struct {
	w     io.Writer
	steps int
	log   *slog.Logger
}

func NewAnimated(w io.Writer, steps int, log *slog.Logger) *Animated {
	return &Animated{w: w, steps: steps, log: log}
}

func (a *Animated) Run(ctx context.Context) error {
	p := tea.NewProgram(
		wrapSafe(newBarModel(a.steps, tickInterval), a.log),
		tea.WithContext(ctx),
		tea.WithOutput(a.w),
		tea.WithInput(nil),
	)
	_, err := p.Run()
	return err
}

func newBar() progress.Model {
	return progress.New(progress.WithDefaultGradient(), progress.WithWidth(barWidth))
}
