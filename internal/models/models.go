package models

import (
	"fmt"

	"github.com/akyairhashvil/pomodoro/internal/config"
)

// Phase is the current countdown mode.
type Phase string

const (
	PhaseSession Phase = "SESSION"
	PhaseBreak   Phase = "BREAK"
)

// Label returns the human readable title of the phase.
func (p Phase) Label() string {
	if p == PhaseBreak {
		return "Break"
	}
	return "Session"
}

// Next returns the phase that follows p.
func (p Phase) Next() Phase {
	if p == PhaseSession {
		return PhaseBreak
	}
	return PhaseSession
}

// TimerState holds every mutable value of the clock.
type TimerState struct {
	BreakLength     int // minutes
	SessionLength   int // minutes
	TimeLeftSeconds int
	Phase           Phase
	Running         bool
	Transitions     int // phase changes since the last reset
}

// PhaseLengthSeconds returns the configured length of the active phase in seconds.
func (s TimerState) PhaseLengthSeconds() int {
	if s.Phase == PhaseBreak {
		return s.BreakLength * config.SecondsPerMinute
	}
	return s.SessionLength * config.SecondsPerMinute
}

// Progress reports how much of the active phase has elapsed, in [0, 1].
func (s TimerState) Progress() float64 {
	total := s.PhaseLengthSeconds()
	if total <= 0 {
		return 1
	}
	progress := float64(total-s.TimeLeftSeconds) / float64(total)
	if progress < 0 {
		return 0
	}
	if progress > 1 {
		return 1
	}
	return progress
}

// Display converts the state into the read-only snapshot handed to presenters.
func (s TimerState) Display() Display {
	return Display{
		BreakLength:   s.BreakLength,
		SessionLength: s.SessionLength,
		TimeLeft:      FormatClock(s.TimeLeftSeconds),
		PhaseLabel:    s.Phase.Label(),
		Running:       s.Running,
		Transitions:   s.Transitions,
		Progress:      s.Progress(),
	}
}

// Display is the presentation snapshot of the clock.
type Display struct {
	BreakLength   int
	SessionLength int
	TimeLeft      string // MM:SS
	PhaseLabel    string
	Running       bool
	Transitions   int
	Progress      float64
}

// FormatClock renders seconds as MM:SS, each part zero-padded to two digits.
// Negative values render as 00:00.
func FormatClock(seconds int) string {
	if seconds < 0 {
		seconds = 0
	}
	return fmt.Sprintf("%02d:%02d", seconds/config.SecondsPerMinute, seconds%config.SecondsPerMinute)
}
