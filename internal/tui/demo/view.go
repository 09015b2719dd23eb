package demo

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/actionsheet/pkg/actionsheet"
)

const headerRows = 2

// View renders the host screen with the sheet, if any, drawn over it.
func (m Model) View() string {
	screen := m.renderScreen()
	if m.sheet == nil {
		return screen
	}
	return m.sheet.Overlay(screen)
}

func (m Model) renderScreen() string {
	if m.width == 0 || m.height == 0 {
		return "Initializing..."
	}

	sections := []string{
		m.renderHeader(),
		eventsStyle.Width(max(m.width-2, 0)).Render(m.events.View()),
		m.renderFooter(),
	}
	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (m Model) renderHeader() string {
	title := titleStyle.Render("Action Sheet Demo")

	status := fmt.Sprintf("style: %s", m.style)
	if m.sheet != nil {
		status += "  sheet: " + m.sheet.State().String()
		if m.transitioning() {
			status += " " + m.spinner.View()
		}
	}

	second := subtitleStyle.Render(status)
	if m.showError {
		second = errorBannerStyle.Render("✖ " + m.errorMsg)
	}
	return lipgloss.JoinVertical(lipgloss.Left, title, second)
}

func (m Model) renderFooter() string {
	return footerStyle.Render(m.help.View(m.keys))
}

// renderEntries formats the event log, one dismissal per line.
func renderEntries(entries []Entry) string {
	if len(entries) == 0 {
		return emptyStyle.Render("No dismissals yet. Press enter to open the sheet.")
	}

	lines := make([]string, 0, len(entries))
	for _, e := range entries {
		line := fmt.Sprintf("%s  %s  %s",
			timeStyle.Render(e.At.Format("15:04:05")),
			actionStyle.Render(entryLabel(e)),
			causeStyle.Render(fmt.Sprintf("%s, %s", e.Cause, e.Style)),
		)
		if len(e.Handled) > 0 {
			line += "  " + handledStyle.Render("✓ ran "+strings.Join(e.Handled, ", "))
		}
		lines = append(lines, line)
	}
	return strings.Join(lines, "\n")
}

func entryLabel(e Entry) string {
	if e.Action != "" {
		return e.Action
	}
	if e.Cause == actionsheet.CauseSelection {
		return "?"
	}
	return "(no handler)"
}
