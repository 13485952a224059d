package console

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
)

type stepMsg struct{}

type barModel struct {
	bar      progress.Model
	step     int
	total    int
	interval time.Duration
}

func newBarModel(total int, interval time.Duration) barModel {
	if total < 1 {
		total = 1
	}
	return barModel{bar: newBar(), total: total, interval: interval}
}

func (m barModel) Init() tea.Cmd { return m.tick() }

func (m barModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		w := msg.Width - 16
		if w > barWidth {
			w = barWidth
		}
		if w > 0 {
			m.bar.Width = w
		}
		return m, nil

	case stepMsg:
		m.step++
		if m.step >= m.total {
			m.step = m.total
			return m, tea.Quit
		}
		return m, m.tick()
	}
	return m, nil
}

func (m barModel) View() string {
	return fmt.Sprintf("%s %d/%d\n", m.bar.ViewAs(m.percent()), m.step, m.total)
}

func (m barModel) percent() float64 {
	return float64(m.step) / float64(m.total)
}

func (m barModel) tick() tea.Cmd {
	return tea.Tick(m.interval, func(time.Time) tea.Msg { return stepMsg{} })
}

var _ tea.Model = barModel{}
