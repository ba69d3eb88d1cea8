// Package commands wires the pomodoro command line: the interactive clock,
// the headless run sub-command and version reporting.
package commands

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"

	"github.com/akyairhashvil/pomodoro/internal/audio"
	"github.com/akyairhashvil/pomodoro/internal/config"
	"github.com/akyairhashvil/pomodoro/internal/timer"
	"github.com/akyairhashvil/pomodoro/internal/tui"
	"github.com/akyairhashvil/pomodoro/internal/util"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

type rootOptions struct {
	configPath string
	theme      string
	sound      string
	soundFile  string
	volume     float64
	logFile    string
	debug      bool
}

// NewRootCommand creates the root command
func NewRootCommand() *cobra.Command {
	return newRootCommand(&rootOptions{})
}

func newRootCommand(opts *rootOptions) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   config.AppName,
		Short: "A terminal Pomodoro clock",
		Long: `pomodoro counts down alternating work sessions and breaks and plays a cue
whenever one phase hands over to the other.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTUI(cmd, opts)
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&opts.configPath, "config", "", "settings file (default $XDG_CONFIG_HOME/pomodoro/settings.yaml)")
	flags.StringVar(&opts.theme, "theme", config.DefaultTheme, "colour theme (default, dracula, mono)")
	flags.StringVar(&opts.sound, "sound", config.SoundBeep, "audio cue: beep, bell or off")
	flags.StringVar(&opts.soundFile, "sound-file", "", "WAV file played instead of the built-in beep")
	flags.Float64Var(&opts.volume, "volume", 0, "cue volume, from -6 (quiet) to 2 (loud)")
	flags.StringVar(&opts.logFile, "log-file", "", "write logs to this file")
	flags.BoolVar(&opts.debug, "debug", false, "write logs to the default log file")

	rootCmd.AddCommand(NewRunCommand(opts))
	rootCmd.AddCommand(NewVersionCommand())
	return rootCmd
}

// Execute runs the root command
func Execute() {
	rootCmd := NewRootCommand()
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func runTUI(cmd *cobra.Command, opts *rootOptions) error {
	settings, err := resolveSettings(cmd, opts)
	if err != nil {
		return err
	}

	// Without a terminal there is nothing to draw on; count down headless.
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		return runHeadless(cmd, settings, opts, runOptions{})
	}

	closeLog, err := setupLogging(settings, opts.debug, io.Discard)
	if err != nil {
		return err
	}
	defer closeLog()

	cue, err := audio.Open(settings.Sound, os.Stderr)
	util.LogError("open audio", err)

	if !tui.SetTheme(settings.Theme) {
		util.LogWarn("theme", "unknown theme %q, using %s", settings.Theme, tui.CurrentTheme.Name)
	}
	machine := timer.New(cue, timer.Options{})
	model := tui.NewModel(machine, tui.Options{Theme: settings.Theme})
	defer model.Close()

	p := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("TUI error: %w", err)
	}
	return nil
}

// resolveSettings loads the settings file and applies the flags the user set
// explicitly on top of it.
func resolveSettings(cmd *cobra.Command, opts *rootOptions) (config.Settings, error) {
	settings, err := config.LoadSettings(opts.configPath)
	if err != nil {
		return settings, fmt.Errorf("load settings: %w", err)
	}

	flags := cmd.Flags()
	if flags.Changed("theme") {
		settings.Theme = opts.theme
	}
	if flags.Changed("sound") {
		settings.Sound.Mode = opts.sound
	}
	if flags.Changed("sound-file") {
		settings.Sound.File = opts.soundFile
	}
	if flags.Changed("volume") {
		settings.Sound.Volume = opts.volume
	}
	if flags.Changed("log-file") {
		settings.LogFile = opts.logFile
	}
	if err := settings.Validate(); err != nil {
		return settings, err
	}
	return settings, nil
}

// setupLogging routes the standard logger. A configured log file wins, --debug
// falls back to the default log path, otherwise logs go to fallback.
func setupLogging(settings config.Settings, debug bool, fallback io.Writer) (func(), error) {
	path := settings.LogFile
	if path == "" && debug {
		path = util.DefaultLogPath(config.AppName)
	}
	if path == "" {
		log.SetOutput(fallback)
		return func() {}, nil
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("create log dir: %w", err)
	}
	f, err := tea.LogToFile(path, config.AppName)
	if err != nil {
		return nil, fmt.Errorf("open log file: %w", err)
	}
	return func() {
		log.SetOutput(os.Stderr)
		util.LogError("close log file", f.Close())
	}, nil
}
