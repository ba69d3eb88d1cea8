package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg is delivered once per scheduled tick. ID is the generation the tick
// was armed with; ticks from an older generation are dropped.
type TickMsg struct {
	ID int
	At time.Time
}

// tickCmd arms a single-shot tick. A new tick is only armed after the
// previous one has been applied, so at most one is ever pending.
func tickCmd(id int, interval time.Duration) tea.Cmd {
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg{ID: id, At: t}
	})
}

// rearm invalidates any pending tick and, when the clock is running, arms a
// fresh one.
func (m Model) rearm() (Model, tea.Cmd) {
	m.tickID++
	if !m.machine.Running() {
		return m, nil
	}
	return m, tickCmd(m.tickID, m.interval)
}
