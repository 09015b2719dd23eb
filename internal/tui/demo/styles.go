package demo

import (
	"github.com/charmbracelet/lipgloss"
)

var (
	// Colors
	primaryColor = lipgloss.Color("99")  // Purple
	errorColor   = lipgloss.Color("196") // Red
	mutedColor   = lipgloss.Color("245") // Gray
	accentColor  = lipgloss.Color("212") // Pink

	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(primaryColor).
			PaddingLeft(2).
			PaddingRight(2)

	subtitleStyle = lipgloss.NewStyle().
			Foreground(mutedColor).
			PaddingLeft(2)

	eventsStyle = lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(mutedColor).
			PaddingLeft(1)

	timeStyle   = lipgloss.NewStyle().Foreground(mutedColor)
	actionStyle = lipgloss.NewStyle().Foreground(accentColor).Bold(true)
	causeStyle  = lipgloss.NewStyle().Foreground(mutedColor).Italic(true)
	emptyStyle  = lipgloss.NewStyle().Foreground(mutedColor).Italic(true)

	handledStyle = lipgloss.NewStyle().Foreground(primaryColor)

	spinnerStyle = lipgloss.NewStyle().Foreground(accentColor)

	footerStyle = lipgloss.NewStyle().
			PaddingLeft(2)

	// Error banner style
	errorBannerStyle = lipgloss.NewStyle().
				Foreground(errorColor).
				Bold(true).
				PaddingLeft(2)
)
