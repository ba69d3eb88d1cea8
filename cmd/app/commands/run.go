package commands

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/akyairhashvil/pomodoro/internal/audio"
	"github.com/akyairhashvil/pomodoro/internal/config"
	"github.com/akyairhashvil/pomodoro/internal/timer"
	"github.com/akyairhashvil/pomodoro/internal/tui"
	"github.com/akyairhashvil/pomodoro/internal/util"
	"github.com/spf13/cobra"
)

const clockFormat = "15:04:05"

type runOptions struct {
	cycles   int
	interval time.Duration
	session  int
	breakLen int
	verbose  bool
}

// NewRunCommand creates the run command
func NewRunCommand(root *rootOptions) *cobra.Command {
	opts := runOptions{}
	runCmd := &cobra.Command{
		Use:   "run",
		Short: "Run the clock without the interactive screen",
		Long: `Run starts the clock immediately and prints a line whenever a session or
break begins. It stops after --cycles phase changes, or on Ctrl+C.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			settings, err := resolveSettings(cmd, root)
			if err != nil {
				return err
			}
			return runHeadless(cmd, settings, root, opts)
		},
	}

	flags := runCmd.Flags()
	flags.IntVar(&opts.cycles, "cycles", 0, "stop after this many phase changes (0 runs until interrupted)")
	flags.DurationVar(&opts.interval, "interval", config.TickInterval, "time between ticks")
	flags.IntVar(&opts.session, "session", 0, "session length in minutes (1-60)")
	flags.IntVar(&opts.breakLen, "break", 0, "break length in minutes (1-60)")
	flags.BoolVarP(&opts.verbose, "verbose", "v", false, "print every tick")
	return runCmd
}

func runHeadless(cmd *cobra.Command, settings config.Settings, root *rootOptions, opts runOptions) error {
	closeLog, err := setupLogging(settings, root.debug, cmd.ErrOrStderr())
	if err != nil {
		return err
	}
	defer closeLog()

	cue, err := audio.Open(settings.Sound, cmd.ErrOrStderr())
	util.LogError("open audio", err)

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return countdown(ctx, cmd.OutOrStdout(), timer.New(cue, timer.Options{}), opts)
}

// countdown applies the requested lengths, starts machine and prints phase
// changes to out until the runner stops.
func countdown(ctx context.Context, out io.Writer, machine *timer.Machine, opts runOptions) error {
	if err := applyLengths(machine, opts); err != nil {
		return err
	}

	unsubscribe := machine.Subscribe(func(event timer.Event) {
		switch event.Type {
		case timer.EventTransition:
			fmt.Fprintf(out, "%s %s (%s)\n", event.At.Format(clockFormat), event.Message, event.State.Display().TimeLeft)
		case timer.EventWarning:
			fmt.Fprintf(out, "%s warning: %s\n", event.At.Format(clockFormat), event.Message)
		case timer.EventTick:
			if opts.verbose {
				fmt.Fprintf(out, "%s %s\n", event.At.Format(clockFormat), tui.FormatStatus(event.State.Display()))
			}
		}
	})
	defer unsubscribe()

	machine.ToggleRunning()
	start := machine.Display()
	fmt.Fprintf(out, "%s %s started (%s)\n", time.Now().Format(clockFormat), start.PhaseLabel, start.TimeLeft)

	runner := timer.NewRunner(machine, timer.RunnerConfig{
		Interval:       opts.interval,
		MaxTransitions: opts.cycles,
	})
	err := runner.Run(ctx)
	fmt.Fprintln(out, tui.FormatTransitions(machine.Snapshot().Transitions))
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}

// applyLengths steps the lengths one minute at a time through the machine so
// the usual bounds and idle-session coupling apply.
func applyLengths(machine *timer.Machine, opts runOptions) error {
	if err := checkLength("session", opts.session); err != nil {
		return err
	}
	if err := checkLength("break", opts.breakLen); err != nil {
		return err
	}
	if opts.session != 0 {
		for machine.Snapshot().SessionLength < opts.session {
			machine.IncrementSession()
		}
		for machine.Snapshot().SessionLength > opts.session {
			machine.DecrementSession()
		}
	}
	if opts.breakLen != 0 {
		for machine.Snapshot().BreakLength < opts.breakLen {
			machine.IncrementBreak()
		}
		for machine.Snapshot().BreakLength > opts.breakLen {
			machine.DecrementBreak()
		}
	}
	return nil
}

func checkLength(name string, minutes int) error {
	if minutes == 0 || util.InRange(minutes, config.MinLengthMinutes, config.MaxLengthMinutes) {
		return nil
	}
	return fmt.Errorf("--%s must be between %d and %d minutes, got %d", name, config.MinLengthMinutes, config.MaxLengthMinutes, minutes)
}
