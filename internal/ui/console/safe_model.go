package console

import (
	"fmt"
	"io"
	"log/slog"
	"runtime/debug"

	tea "github.com/charmbracelet/bubbletea"
)

// safeModel turns a panic inside the wrapped model into a logged quit so a
// cosmetic display can never take the process down.
type safeModel struct {
	m   tea.Model
	log *slog.Logger
}

func wrapSafe(m tea.Model, log *slog.Logger) safeModel {
	if log == nil {
		log = slog.New(slog.NewJSONHandler(io.Discard, nil))
	}
	return safeModel{m: m, log: log}
}

func (s safeModel) Init() tea.Cmd {
	return s.m.Init()
}

func (s safeModel) Update(msg tea.Msg) (tm tea.Model, cmd tea.Cmd) {
	defer func() {
		if r := recover(); r != nil {
			s.log.Error("panic.recovered",
				"where", "progress.update",
				"panic", fmt.Sprint(r),
				"stack", string(debug.Stack()),
			)
			tm = s
			cmd = tea.Quit
		}
	}()

	inner, c := s.m.Update(msg)
	s.m = inner
	return s, c
}

func (s safeModel) View() (out string) {
	defer func() {
		if r := recover(); r != nil {
			s.log.Error("panic.recovered",
				"where", "progress.view",
				"panic", fmt.Sprint(r),
				"stack", string(debug.Stack()),
			)
			out = ""
		}
	}()
	return s.m.View()
}

var _ tea.Model = (*safeModel)(nil)
