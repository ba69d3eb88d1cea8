package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/akyairhashvil/pomodoro/internal/config"
	"github.com/akyairhashvil/pomodoro/internal/models"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

func (m Model) render() string {
	d := m.machine.Display()
	view := lipgloss.JoinVertical(lipgloss.Center,
		m.renderHeader(),
		"",
		m.renderPanels(d),
		"",
		m.renderClock(d),
		"",
		m.renderFooter(),
	)
	return truncateLines(m.theme.Base.Render(view), m.width)
}

func (m Model) renderHeader() string {
	if m.layout() == layoutCompact {
		return m.theme.Header.Render(config.AppTitle)
	}
	return m.theme.Header.Render(fmt.Sprintf("%s  %s", config.AppTitle, m.theme.Dim.Render("v"+versionLabel())))
}

func (m Model) renderPanels(d models.Display) string {
	if m.layout() == layoutCompact {
		return fmt.Sprintf("Break %d  Session %d", d.BreakLength, d.SessionLength)
	}
	breakPanel := m.lengthPanel("Break Length", d.BreakLength)
	sessionPanel := m.lengthPanel("Session Length", d.SessionLength)
	return lipgloss.JoinHorizontal(lipgloss.Top, breakPanel, "  ", sessionPanel)
}

func (m Model) lengthPanel(title string, minutes int) string {
	value := fmt.Sprintf("%s %s %s",
		m.theme.Dim.Render(config.GlyphDecrement),
		m.theme.Focused.Render(strconv.Itoa(minutes)),
		m.theme.Dim.Render(config.GlyphIncrement),
	)
	content := lipgloss.JoinVertical(lipgloss.Center, m.theme.Highlight.Render(title), value)
	return m.theme.Panel.BorderForeground(m.theme.Border).Width(config.PanelWidth).Render(content)
}

func (m Model) renderClock(d models.Display) string {
	style := m.theme.phaseStyle(d.PhaseLabel, d.Running)
	bar := m.sessionBar
	if d.PhaseLabel == models.PhaseBreak.Label() {
		bar = m.breakBar
	}
	body := lipgloss.JoinVertical(lipgloss.Center,
		style.Render(d.PhaseLabel),
		style.Render(fmt.Sprintf("%s %s", runGlyph(d.Running), d.TimeLeft)),
		bar.ViewAs(d.Progress),
		m.theme.Dim.Render(FormatTransitions(d.Transitions)),
	)
	if m.layout() == layoutCompact {
		return body
	}
	return m.theme.Clock.BorderForeground(m.theme.Border).Width(config.FrameWidth).Render(body)
}

func (m Model) renderFooter() string {
	help := m.theme.Dim.Render(m.keys.HelpForView(m.layout()))
	if m.notices.message == "" {
		return help
	}
	style := m.theme.Focused
	if m.notices.isError {
		style = m.theme.Warning
	}
	return lipgloss.JoinVertical(lipgloss.Center, style.Render(m.notices.message), help)
}

// truncateLines cuts every line of s to width cells. A zero width leaves s
// untouched, which is the case before the first WindowSizeMsg.
func truncateLines(s string, width int) string {
	if width <= 0 {
		return s
	}
	lines := strings.Split(s, "\n")
	for i, line := range lines {
		if ansi.StringWidth(line) > width {
			lines[i] = ansi.Truncate(line, width, config.TruncationSuffix)
		}
	}
	return strings.Join(lines, "\n")
}
