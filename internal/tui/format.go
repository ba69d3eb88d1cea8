package tui

import (
	"fmt"

	"github.com/akyairhashvil/pomodoro/internal/config"
	"github.com/akyairhashvil/pomodoro/internal/models"
)

// FormatMinutes formats a phase length for the panels (e.g. "25 min").
func FormatMinutes(minutes int) string {
	return fmt.Sprintf("%d min", minutes)
}

// FormatStatus returns a one-line description of the clock, e.g.
// "Session 24:59 running".
func FormatStatus(d models.Display) string {
	state := "paused"
	if d.Running {
		state = "running"
	}
	return fmt.Sprintf("%s %s %s", d.PhaseLabel, d.TimeLeft, state)
}

// FormatTransitions formats the transition counter.
func FormatTransitions(n int) string {
	switch n {
	case 0:
		return "No phases completed"
	case 1:
		return "1 phase completed"
	default:
		return fmt.Sprintf("%d phases completed", n)
	}
}

func runGlyph(running bool) string {
	if running {
		return config.GlyphPlay
	}
	return config.GlyphPause
}
