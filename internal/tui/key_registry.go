package tui

import (
	"sort"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

// KeyHandler applies an intent. handled=false lets lower priority bindings run.
type KeyHandler func(m Model, key string) (next Model, cmd tea.Cmd, handled bool)

type KeyBinding struct {
	Keys        []string
	Handler     KeyHandler
	Description string
	ViewModes   []layoutMode
	Priority    int
}

func (b KeyBinding) AppliesToView(mode layoutMode) bool {
	if len(b.ViewModes) == 0 {
		return true
	}
	for _, v := range b.ViewModes {
		if v == mode {
			return true
		}
	}
	return false
}

func (b KeyBinding) matches(key string) bool {
	for _, k := range b.Keys {
		if k == key {
			return true
		}
	}
	return false
}

type HandlerRegistry struct {
	bindings []KeyBinding
}

func NewHandlerRegistry() *HandlerRegistry {
	return &HandlerRegistry{}
}

func (r *HandlerRegistry) Register(b KeyBinding) {
	r.bindings = append(r.bindings, b)
	sort.SliceStable(r.bindings, func(i, j int) bool {
		return r.bindings[i].Priority > r.bindings[j].Priority
	})
}

// Handle dispatches key to the first matching binding. Bindings are matched in
// every layout; ViewModes only controls what the help line shows.
func (r *HandlerRegistry) Handle(m Model, key string) (Model, tea.Cmd, bool) {
	for _, b := range r.bindings {
		if b.matches(key) {
			next, cmd, handled := b.Handler(m, key)
			if handled {
				return next, cmd, true
			}
		}
	}
	return m, nil, false
}

func (r *HandlerRegistry) GetBindingsForView(mode layoutMode) []KeyBinding {
	var out []KeyBinding
	for _, b := range r.bindings {
		if b.AppliesToView(mode) {
			out = append(out, b)
		}
	}
	return out
}

// HelpForView renders "[b/[]Break-" style hints for the bindings shown in mode.
func (r *HandlerRegistry) HelpForView(mode layoutMode) string {
	bindings := r.GetBindingsForView(mode)
	seen := make(map[string]bool)
	var parts []string
	for _, b := range bindings {
		if b.Description == "" || len(b.Keys) == 0 {
			continue
		}
		label := strings.Join(keyLabels(b.Keys), "/")
		if seen[label] {
			continue
		}
		seen[label] = true
		parts = append(parts, "["+label+"]"+b.Description)
	}
	return strings.Join(parts, " ")
}

func keyLabels(keys []string) []string {
	labels := make([]string, len(keys))
	for i, k := range keys {
		if k == " " {
			k = "space"
		}
		labels[i] = k
	}
	return labels
}

// defaultBindings maps keys to clock intents. Descriptions are kept short so
// the help line fits the compact layout.
func defaultBindings() *HandlerRegistry {
	r := NewHandlerRegistry()
	full := []layoutMode{layoutFull}
	r.Register(KeyBinding{Keys: []string{"q", "ctrl+c"}, Handler: handleQuit, Description: "Quit", Priority: 100})
	r.Register(KeyBinding{Keys: []string{" ", "p", "enter"}, Handler: handleToggle, Description: "Start/Pause", Priority: 50})
	r.Register(KeyBinding{Keys: []string{"r"}, Handler: handleReset, Description: "Reset", Priority: 50})
	r.Register(KeyBinding{Keys: []string{"b", "["}, Handler: handleBreakDown, Description: "Break-", ViewModes: full})
	r.Register(KeyBinding{Keys: []string{"B", "]"}, Handler: handleBreakUp, Description: "Break+", ViewModes: full})
	r.Register(KeyBinding{Keys: []string{"s", "-"}, Handler: handleSessionDown, Description: "Session-", ViewModes: full})
	r.Register(KeyBinding{Keys: []string{"S", "+", "="}, Handler: handleSessionUp, Description: "Session+", ViewModes: full})
	return r
}
