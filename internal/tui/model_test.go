package tui

import (
	"testing"
	"time"

	"github.com/akyairhashvil/pomodoro/internal/config"
	"github.com/akyairhashvil/pomodoro/internal/timer"
	tea "github.com/charmbracelet/bubbletea"
)

func TestNewModelDefaults(t *testing.T) {
	m, _, _ := setupTestModel(t)
	if m.interval != config.TickInterval {
		t.Fatalf("expected default interval, got %v", m.interval)
	}
	if m.theme.Name != "Default" {
		t.Fatalf("expected default theme, got %q", m.theme.Name)
	}
	if m.tickID != 0 {
		t.Fatalf("expected generation 0, got %d", m.tickID)
	}
	if m.View() == "" {
		t.Fatalf("expected non-empty view")
	}
}

func TestNewModelUnknownThemeFallsBack(t *testing.T) {
	machine := timer.New(nil, timer.Options{})
	m := NewModel(machine, Options{Theme: "neon", Interval: 10 * time.Millisecond})
	defer m.Close()
	if m.theme.Name != CurrentTheme.Name {
		t.Fatalf("expected fallback to current theme, got %q", m.theme.Name)
	}
	if m.interval != 10*time.Millisecond {
		t.Fatalf("expected custom interval, got %v", m.interval)
	}
}

func TestModelInit(t *testing.T) {
	m, machine, _ := setupTestModel(t)
	if cmd := m.Init(); cmd == nil {
		t.Fatalf("expected init cmd")
	}
	machine.ToggleRunning()
	if cmd := m.Init(); cmd == nil {
		t.Fatalf("expected init cmd for running machine")
	}
}

func TestModelResize(t *testing.T) {
	m, _, _ := setupTestModel(t)
	model, _ := m.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	updated := model.(Model)
	if updated.width != 120 || updated.height != 40 {
		t.Fatalf("expected size updated")
	}
	if updated.layout() != layoutFull {
		t.Fatalf("expected full layout")
	}
	if updated.sessionBar.Width != config.ProgressWidth {
		t.Fatalf("expected progress width %d, got %d", config.ProgressWidth, updated.sessionBar.Width)
	}

	model, _ = updated.Update(tea.WindowSizeMsg{Width: 30, Height: 20})
	compact := model.(Model)
	if compact.layout() != layoutCompact {
		t.Fatalf("expected compact layout")
	}
	if compact.breakBar.Width != 26 {
		t.Fatalf("expected narrowed progress bar, got %d", compact.breakBar.Width)
	}

	model, _ = compact.Update(tea.WindowSizeMsg{Width: 8, Height: 20})
	if model.(Model).sessionBar.Width != config.MinProgressWidth {
		t.Fatalf("expected minimum progress width")
	}
}

func TestModelCloseDetachesListener(t *testing.T) {
	m, machine, _ := setupTestModel(t)
	m.Close()
	machine.TransitionPhase()
	if m.notices.message != "" {
		t.Fatalf("expected no notice after Close, got %q", m.notices.message)
	}
}

func TestModelIgnoresUnknownMessages(t *testing.T) {
	m, machine, _ := setupTestModel(t)
	before := machine.Snapshot()
	model, cmd := m.Update(struct{}{})
	if cmd != nil {
		t.Fatalf("expected no cmd")
	}
	if model.(Model).machine.Snapshot() != before {
		t.Fatalf("expected state unchanged")
	}
}
