// Package tui renders the clock in the terminal with bubbletea and turns key
// presses into state machine operations.
package tui

import (
	"time"

	"github.com/akyairhashvil/pomodoro/internal/config"
	"github.com/akyairhashvil/pomodoro/internal/timer"
	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
)

type layoutMode int

const (
	layoutFull layoutMode = iota
	layoutCompact
)

// Options configures a Model.
type Options struct {
	// Theme name; unknown names fall back to CurrentTheme.
	Theme string
	// Interval between ticks. Defaults to config.TickInterval.
	Interval time.Duration
}

// notices collects machine events between updates. It is shared by pointer so
// every copy of the Model sees what the listener recorded.
type notices struct {
	message string
	isError bool
}

func (n *notices) listen(event timer.Event) {
	switch event.Type {
	case timer.EventTransition:
		n.message, n.isError = event.Message, false
	case timer.EventWarning:
		n.message, n.isError = event.Message, true
	case timer.EventReset:
		n.message, n.isError = "", false
	}
}

// Model is the root bubbletea model. It owns no clock state of its own; every
// frame is rendered from the machine's Display snapshot.
type Model struct {
	machine  *timer.Machine
	keys     *HandlerRegistry
	theme    Theme
	interval time.Duration

	sessionBar progress.Model
	breakBar   progress.Model

	notices     *notices
	unsubscribe func()
	// tickID is the generation of the pending tick.
	tickID int

	width  int
	height int
}

// NewModel creates a Model driving machine. The returned Model subscribes to
// machine for status messages; call Close to detach it.
func NewModel(machine *timer.Machine, options Options) Model {
	theme := CurrentTheme
	if t, ok := Themes[options.Theme]; ok {
		theme = t
	}
	if options.Interval <= 0 {
		options.Interval = config.TickInterval
	}
	n := &notices{}
	unsubscribe := machine.Subscribe(n.listen)

	return Model{
		machine:    machine,
		keys:       defaultBindings(),
		theme:      theme,
		interval:   options.Interval,
		sessionBar: newBar(theme.SessionGradient),
		breakBar:   newBar(theme.BreakGradient),
		notices:     n,
		unsubscribe: unsubscribe,
	}
}

// Close detaches the Model from its machine.
func (m Model) Close() {
	if m.unsubscribe != nil {
		m.unsubscribe()
	}
}

func newBar(gradient [2]string) progress.Model {
	bar := progress.New(progress.WithGradient(gradient[0], gradient[1]), progress.WithoutPercentage())
	bar.Width = config.ProgressWidth
	return bar
}

func (m Model) Init() tea.Cmd {
	cmds := []tea.Cmd{tea.SetWindowTitle(config.AppTitle)}
	// A machine handed over already running needs its first tick.
	if m.machine.Running() {
		cmds = append(cmds, tickCmd(m.tickID, m.interval))
	}
	return tea.Batch(cmds...)
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		return m.handleWindowSize(msg)
	case TickMsg:
		return m.handleTick(msg)
	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m Model) View() string {
	return m.render()
}

func (m Model) layout() layoutMode {
	if m.width > 0 && m.width < config.CompactModeThreshold {
		return layoutCompact
	}
	return layoutFull
}
