package tui

import "github.com/charmbracelet/lipgloss"

type Theme struct {
	Name      string
	Base      lipgloss.Style
	Border    lipgloss.Color
	Header    lipgloss.Style
	Panel     lipgloss.Style
	Clock     lipgloss.Style
	Session   lipgloss.Style
	Break     lipgloss.Style
	Paused    lipgloss.Style
	Focused   lipgloss.Style
	Dim       lipgloss.Style
	Highlight lipgloss.Style
	Warning   lipgloss.Style

	// Progress bar gradients, start and end colour.
	SessionGradient [2]string
	BreakGradient   [2]string
}

var Themes = map[string]Theme{
	"default": {
		Name:            "Default",
		Base:            lipgloss.NewStyle().Margin(1, 2),
		Border:          lipgloss.Color("63"),
		Header:          lipgloss.NewStyle().Foreground(lipgloss.Color("205")).Bold(true).Align(lipgloss.Center),
		Panel:           lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("63")).Padding(0, 1).Align(lipgloss.Center),
		Clock:           lipgloss.NewStyle().Border(lipgloss.DoubleBorder()).BorderForeground(lipgloss.Color("63")).Padding(0, 2).Align(lipgloss.Center),
		Session:         lipgloss.NewStyle().Foreground(lipgloss.Color("81")).Bold(true),
		Break:           lipgloss.NewStyle().Foreground(lipgloss.Color("208")).Bold(true),
		Paused:          lipgloss.NewStyle().Foreground(lipgloss.Color("244")),
		Focused:         lipgloss.NewStyle().Foreground(lipgloss.Color("205")).Bold(true),
		Dim:             lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
		Highlight:       lipgloss.NewStyle().Foreground(lipgloss.Color("63")),
		Warning:         lipgloss.NewStyle().Foreground(lipgloss.Color("196")),
		SessionGradient: [2]string{"#5A56E0", "#EE6FF8"},
		BreakGradient:   [2]string{"#FF7F11", "#FFD166"},
	},
	"dracula": {
		Name:            "Dracula",
		Base:            lipgloss.NewStyle().Margin(1, 2),
		Border:          lipgloss.Color("62"),                                                                   // Purple
		Header:          lipgloss.NewStyle().Foreground(lipgloss.Color("50")).Bold(true).Align(lipgloss.Center), // Cyan
		Panel:           lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("62")).Padding(0, 1).Align(lipgloss.Center),
		Clock:           lipgloss.NewStyle().Border(lipgloss.DoubleBorder()).BorderForeground(lipgloss.Color("141")).Padding(0, 2).Align(lipgloss.Center),
		Session:         lipgloss.NewStyle().Foreground(lipgloss.Color("117")).Bold(true), // Cyan
		Break:           lipgloss.NewStyle().Foreground(lipgloss.Color("215")).Bold(true), // Orange
		Paused:          lipgloss.NewStyle().Foreground(lipgloss.Color("60")),             // Comment
		Focused:         lipgloss.NewStyle().Foreground(lipgloss.Color("212")).Bold(true), // Pink
		Dim:             lipgloss.NewStyle().Foreground(lipgloss.Color("60")),
		Highlight:       lipgloss.NewStyle().Foreground(lipgloss.Color("62")),
		Warning:         lipgloss.NewStyle().Foreground(lipgloss.Color("203")), // Red
		SessionGradient: [2]string{"#8BE9FD", "#BD93F9"},
		BreakGradient:   [2]string{"#FFB86C", "#FF79C6"},
	},
	"mono": {
		Name:            "Mono",
		Base:            lipgloss.NewStyle().Margin(1, 2),
		Border:          lipgloss.Color("250"),
		Header:          lipgloss.NewStyle().Bold(true).Align(lipgloss.Center),
		Panel:           lipgloss.NewStyle().Border(lipgloss.NormalBorder()).Padding(0, 1).Align(lipgloss.Center),
		Clock:           lipgloss.NewStyle().Border(lipgloss.NormalBorder()).Padding(0, 2).Align(lipgloss.Center),
		Session:         lipgloss.NewStyle().Bold(true),
		Break:           lipgloss.NewStyle().Bold(true).Underline(true),
		Paused:          lipgloss.NewStyle().Faint(true),
		Focused:         lipgloss.NewStyle().Bold(true),
		Dim:             lipgloss.NewStyle().Faint(true),
		Highlight:       lipgloss.NewStyle(),
		Warning:         lipgloss.NewStyle().Reverse(true),
		SessionGradient: [2]string{"#FFFFFF", "#888888"},
		BreakGradient:   [2]string{"#888888", "#FFFFFF"},
	},
}

// CurrentTheme holds the theme new models start with.
var CurrentTheme = Themes["default"]

// SetTheme switches CurrentTheme. It reports false for unknown names and
// leaves the current theme in place.
func SetTheme(name string) bool {
	if t, ok := Themes[name]; ok {
		CurrentTheme = t
		return true
	}
	return false
}

// ThemeNames lists the registered themes in a stable order.
func ThemeNames() []string {
	return []string{"default", "dracula", "mono"}
}

func (t Theme) phaseStyle(phaseLabel string, running bool) lipgloss.Style {
	if !running {
		return t.Paused
	}
	if phaseLabel == "Break" {
		return t.Break
	}
	return t.Session
}
