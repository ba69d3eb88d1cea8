package timer

import (
	"context"
	"errors"
	"time"

	"github.com/akyairhashvil/pomodoro/internal/config"
)

// ErrPaused is returned by Runner.Run when the machine is not running.
var ErrPaused = errors.New("timer is paused")

// RunnerConfig contains runtime options for a Runner.
type RunnerConfig struct {
	// Interval between ticks. Defaults to config.TickInterval.
	Interval time.Duration
	// MaxTransitions stops the runner after that many phase changes. Zero runs
	// until the context is cancelled.
	MaxTransitions int
}

// Runner drives a Machine without a UI. Each tick is scheduled with a
// single-shot timer armed only after the previous tick has been applied,
// so ticks never overlap.
type Runner struct {
	machine *Machine
	options RunnerConfig
}

// NewRunner creates a Runner for machine.
func NewRunner(machine *Machine, options RunnerConfig) *Runner {
	if options.Interval <= 0 {
		options.Interval = config.TickInterval
	}
	return &Runner{machine: machine, options: options}
}

// Run ticks the machine until ctx is done, the transition limit is reached or
// the machine is paused. Reaching the limit returns nil.
func (r *Runner) Run(ctx context.Context) error {
	if !r.machine.Running() {
		return ErrPaused
	}

	transitions := 0
	unsubscribe := r.machine.Subscribe(func(event Event) {
		if event.Type == EventTransition {
			transitions++
		}
	})
	defer unsubscribe()

	timer := time.NewTimer(r.options.Interval)
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-timer.C:
			r.machine.Tick()
			if r.options.MaxTransitions > 0 && transitions >= r.options.MaxTransitions {
				return nil
			}
			if err := ctx.Err(); err != nil {
				return err
			}
			if !r.machine.Running() {
				return ErrPaused
			}
			timer.Reset(r.options.Interval)
		}
	}
}
