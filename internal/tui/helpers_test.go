package tui

import (
	"testing"

	"github.com/akyairhashvil/pomodoro/internal/testutil"
	"github.com/akyairhashvil/pomodoro/internal/timer"
	tea "github.com/charmbracelet/bubbletea"
)

func setupTestModel(t *testing.T) (Model, *timer.Machine, *testutil.RecordingCue) {
	t.Helper()
	cue := &testutil.RecordingCue{}
	machine := timer.New(cue, timer.Options{})
	m := NewModel(machine, Options{Theme: "default"})
	t.Cleanup(m.Close)
	return m, machine, cue
}

func runeKey(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func press(t *testing.T, m Model, msg tea.KeyMsg) (Model, tea.Cmd) {
	t.Helper()
	model, cmd := m.Update(msg)
	next, ok := model.(Model)
	if !ok {
		t.Fatalf("Update returned %T", model)
	}
	return next, cmd
}
