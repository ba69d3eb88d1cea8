package tui

import (
	"github.com/akyairhashvil/pomodoro/internal/config"
	tea "github.com/charmbracelet/bubbletea"
)

func (m Model) handleWindowSize(msg tea.WindowSizeMsg) (Model, tea.Cmd) {
	m.width, m.height = msg.Width, msg.Height
	if m.width > 0 {
		target := config.ProgressWidth
		if m.width < config.CompactModeThreshold {
			target = m.width - 4
		}
		if target < config.MinProgressWidth {
			target = config.MinProgressWidth
		}
		m.sessionBar.Width = target
		m.breakBar.Width = target
	}
	return m, nil
}

// handleTick applies a tick of the current generation and arms the next one.
func (m Model) handleTick(msg TickMsg) (Model, tea.Cmd) {
	if msg.ID != m.tickID || !m.machine.Running() {
		return m, nil
	}
	m.machine.Tick()
	if !m.machine.Running() {
		return m, nil
	}
	return m, tickCmd(m.tickID, m.interval)
}

func (m Model) handleKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	next, cmd, _ := m.keys.Handle(m, msg.String())
	return next, cmd
}

func handleQuit(m Model, _ string) (Model, tea.Cmd, bool) {
	// Bumping the generation drops any tick still in flight.
	m.tickID++
	return m, tea.Quit, true
}

func handleToggle(m Model, _ string) (Model, tea.Cmd, bool) {
	m.machine.ToggleRunning()
	next, cmd := m.rearm()
	return next, cmd, true
}

func handleReset(m Model, _ string) (Model, tea.Cmd, bool) {
	m.machine.Reset()
	next, cmd := m.rearm()
	return next, cmd, true
}

func handleBreakDown(m Model, _ string) (Model, tea.Cmd, bool) {
	m.machine.DecrementBreak()
	return m, nil, true
}

func handleBreakUp(m Model, _ string) (Model, tea.Cmd, bool) {
	m.machine.IncrementBreak()
	return m, nil, true
}

func handleSessionDown(m Model, _ string) (Model, tea.Cmd, bool) {
	m.machine.DecrementSession()
	return m, nil, true
}

func handleSessionUp(m Model, _ string) (Model, tea.Cmd, bool) {
	m.machine.IncrementSession()
	return m, nil, true
}
