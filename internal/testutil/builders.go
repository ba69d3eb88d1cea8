package testutil

import (
	"github.com/akyairhashvil/pomodoro/internal/config"
	"github.com/akyairhashvil/pomodoro/internal/models"
)

// StateBuilder provides fluent API for creating test timer states.
type StateBuilder struct {
	state models.TimerState
}

// NewState starts from the default clock state.
func NewState() *StateBuilder {
	return &StateBuilder{
		state: models.TimerState{
			BreakLength:     config.DefaultBreakMinutes,
			SessionLength:   config.DefaultSessionMinutes,
			TimeLeftSeconds: config.DefaultTimeLeft,
			Phase:           models.PhaseSession,
		},
	}
}

func (b *StateBuilder) WithBreak(minutes int) *StateBuilder {
	b.state.BreakLength = minutes
	return b
}

func (b *StateBuilder) WithSession(minutes int) *StateBuilder {
	b.state.SessionLength = minutes
	return b
}

func (b *StateBuilder) WithTimeLeft(seconds int) *StateBuilder {
	b.state.TimeLeftSeconds = seconds
	return b
}

func (b *StateBuilder) InBreak() *StateBuilder {
	b.state.Phase = models.PhaseBreak
	return b
}

func (b *StateBuilder) Running() *StateBuilder {
	b.state.Running = true
	return b
}

func (b *StateBuilder) Build() models.TimerState {
	return b.state
}
