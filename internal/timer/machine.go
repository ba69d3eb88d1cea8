// Package timer implements the Pomodoro state machine: configurable session
// and break lengths, a tick-driven countdown and the audio cue fired when
// the countdown swaps phase.
package timer

import (
	"fmt"
	"time"

	"github.com/akyairhashvil/pomodoro/internal/config"
	"github.com/akyairhashvil/pomodoro/internal/models"
	"github.com/akyairhashvil/pomodoro/internal/util"
)

// Options contains optional collaborators for a Machine.
type Options struct {
	// Now stamps events. Defaults to time.Now.
	Now func() time.Time
}

type subscription struct {
	id       int
	listener Listener
}

// Machine owns the clock state and its transition rules.
// It is not safe for concurrent use; drive it from a single goroutine.
type Machine struct {
	state     models.TimerState
	cue       Cue
	now       func() time.Time
	listeners []subscription
	nextID    int
}

// DefaultState returns the state the clock starts in and returns to on Reset.
func DefaultState() models.TimerState {
	return models.TimerState{
		BreakLength:     config.DefaultBreakMinutes,
		SessionLength:   config.DefaultSessionMinutes,
		TimeLeftSeconds: config.DefaultTimeLeft,
		Phase:           models.PhaseSession,
	}
}

// New creates a Machine at the default state. A nil cue plays nothing.
func New(cue Cue, options Options) *Machine {
	if cue == nil {
		cue = nopCue{}
	}
	if options.Now == nil {
		options.Now = time.Now
	}
	return &Machine{
		state: DefaultState(),
		cue:   cue,
		now:   options.Now,
	}
}

// Subscribe registers an observer and returns a function that removes it.
func (m *Machine) Subscribe(listener Listener) func() {
	if listener == nil {
		return func() {}
	}
	m.nextID++
	id := m.nextID
	m.listeners = append(m.listeners, subscription{id: id, listener: listener})
	return func() {
		for i, sub := range m.listeners {
			if sub.id == id {
				m.listeners = append(m.listeners[:i:i], m.listeners[i+1:]...)
				return
			}
		}
	}
}

// Snapshot returns a copy of the current state.
func (m *Machine) Snapshot() models.TimerState {
	return m.state
}

// Display returns the presentation snapshot of the current state.
func (m *Machine) Display() models.Display {
	return m.state.Display()
}

// Running reports whether the countdown is active.
func (m *Machine) Running() bool {
	return m.state.Running
}

// IncrementBreak lengthens the break by one minute, up to the maximum.
func (m *Machine) IncrementBreak() {
	if m.state.BreakLength >= config.MaxLengthMinutes {
		return
	}
	m.state.BreakLength++
	m.emit(EventChange, "")
}

// DecrementBreak shortens the break by one minute, down to the minimum.
func (m *Machine) DecrementBreak() {
	if m.state.BreakLength <= config.MinLengthMinutes {
		return
	}
	m.state.BreakLength--
	m.emit(EventChange, "")
}

// IncrementSession lengthens the session by one minute, up to the maximum.
// While a session is not counting down the remaining time follows the length.
func (m *Machine) IncrementSession() {
	if m.state.SessionLength >= config.MaxLengthMinutes {
		return
	}
	m.state.SessionLength++
	m.shiftIdleSession(config.SecondsPerMinute)
	m.emit(EventChange, "")
}

// DecrementSession shortens the session by one minute, down to the minimum.
// While a session is not counting down the remaining time follows the length.
func (m *Machine) DecrementSession() {
	if m.state.SessionLength <= config.MinLengthMinutes {
		return
	}
	m.state.SessionLength--
	m.shiftIdleSession(-config.SecondsPerMinute)
	m.emit(EventChange, "")
}

// ToggleRunning starts or pauses the countdown.
func (m *Machine) ToggleRunning() {
	m.state.Running = !m.state.Running
	m.emit(EventChange, "")
}

// Tick advances the countdown by one second. The tick that reaches zero, or any
// tick applied at zero, swaps the phase. Ticks while paused are ignored.
func (m *Machine) Tick() {
	if !m.state.Running {
		return
	}
	if m.state.TimeLeftSeconds > 0 {
		m.state.TimeLeftSeconds--
		m.emit(EventTick, "")
		if m.state.TimeLeftSeconds > 0 {
			return
		}
	}
	m.TransitionPhase()
}

// TransitionPhase swaps SESSION and BREAK, reloads the remaining time from the
// new phase length and restarts the cue from the beginning.
func (m *Machine) TransitionPhase() {
	m.state.Phase = m.state.Phase.Next()
	m.state.TimeLeftSeconds = m.state.PhaseLengthSeconds()
	m.state.Transitions++

	m.stopCue()
	if err := m.cue.Play(); err != nil {
		util.LogError("play cue", err)
		m.emit(EventWarning, fmt.Sprintf("audio cue failed: %v", err))
	}
	m.emit(EventTransition, fmt.Sprintf("%s started", m.state.Phase.Label()))
}

// Reset stops the countdown, restores the defaults and silences the cue.
func (m *Machine) Reset() {
	m.state = DefaultState()
	m.stopCue()
	m.emit(EventReset, "")
}

func (m *Machine) stopCue() {
	if m.cue.Playing() {
		m.cue.Pause()
	}
	m.cue.Rewind()
}

// shiftIdleSession couples the remaining time to the session length while a
// session is not counting down. The result is kept inside [0, length].
func (m *Machine) shiftIdleSession(delta int) {
	if m.state.Phase != models.PhaseSession || m.state.Running {
		return
	}
	shifted := m.state.TimeLeftSeconds + delta
	limit := m.state.SessionLength * config.SecondsPerMinute
	clamped := util.Clamp(shifted, 0, limit)
	m.state.TimeLeftSeconds = clamped
	if clamped != shifted {
		msg := fmt.Sprintf("remaining time %ds clamped to %ds", shifted, clamped)
		util.LogWarn("session length", "%s", msg)
		m.emit(EventWarning, msg)
	}
}

func (m *Machine) emit(eventType EventType, message string) {
	if len(m.listeners) == 0 {
		return
	}
	event := Event{
		Type:    eventType,
		State:   m.state,
		Message: message,
		At:      m.now(),
	}
	listeners := append([]subscription(nil), m.listeners...)
	for _, sub := range listeners {
		sub.listener(event)
	}
}
