package tui

import (
	"strings"
	"testing"
	"time"

	"github.com/akyairhashvil/pomodoro/internal/models"
	tea "github.com/charmbracelet/bubbletea"
)

func startedModel(t *testing.T) Model {
	t.Helper()
	m, _, _ := setupTestModel(t)
	next, _ := press(t, m, tea.KeyMsg{Type: tea.KeySpace})
	return next
}

func TestHandleTickCurrentGeneration(t *testing.T) {
	m := startedModel(t)
	next, cmd := m.handleTick(TickMsg{ID: m.tickID, At: time.Now()})
	if got := next.machine.Snapshot().TimeLeftSeconds; got != 1499 {
		t.Fatalf("expected 1499s left, got %d", got)
	}
	if cmd == nil {
		t.Fatalf("expected next tick to be armed")
	}
}

func TestHandleTickStaleGeneration(t *testing.T) {
	m := startedModel(t)
	_, cmd := m.handleTick(TickMsg{ID: m.tickID - 1})
	if got := m.machine.Snapshot().TimeLeftSeconds; got != 1500 {
		t.Fatalf("stale tick changed time left to %d", got)
	}
	if cmd != nil {
		t.Fatalf("stale tick must not re-arm")
	}
}

func TestHandleTickWhilePaused(t *testing.T) {
	m, machine, _ := setupTestModel(t)
	_, cmd := m.handleTick(TickMsg{ID: m.tickID})
	if machine.Snapshot().TimeLeftSeconds != 1500 || cmd != nil {
		t.Fatalf("expected paused clock to ignore ticks")
	}
}

func TestHandleTickPauseThenResumeDropsOldTick(t *testing.T) {
	m := startedModel(t)
	armed := m.tickID
	m, _ = press(t, m, runeKey("p"))
	m, _ = press(t, m, runeKey("p"))
	m.handleTick(TickMsg{ID: armed})
	if got := m.machine.Snapshot().TimeLeftSeconds; got != 1500 {
		t.Fatalf("tick from before the pause was applied: %d", got)
	}
	m.handleTick(TickMsg{ID: m.tickID})
	if got := m.machine.Snapshot().TimeLeftSeconds; got != 1499 {
		t.Fatalf("expected resumed tick applied, got %d", got)
	}
}

func TestHandleTickFullSession(t *testing.T) {
	m, machine, cue := setupTestModel(t)
	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeySpace})
	for i := 0; i < 1500; i++ {
		var cmd tea.Cmd
		m, cmd = m.handleTick(TickMsg{ID: m.tickID})
		if cmd == nil {
			t.Fatalf("tick %d: expected re-arm while running", i)
		}
	}
	state := machine.Snapshot()
	if state.Phase != models.PhaseBreak || state.TimeLeftSeconds != 300 {
		t.Fatalf("expected break with 300s, got %s %d", state.Phase, state.TimeLeftSeconds)
	}
	if cue.Count("play") != 1 {
		t.Fatalf("expected one cue, got %d", cue.Count("play"))
	}
	if !strings.Contains(m.renderFooter(), "Break started") {
		t.Fatalf("expected transition notice in footer")
	}
}
