package demo

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexisbeaulieu97/actionsheet/pkg/actionsheet"
)

// Update handles incoming messages and updates the model
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.resize()
		if m.sheet != nil {
			m.sheet.SetSize(m.width, m.height)
		}
		return m, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case actionsheet.DismissedMsg:
		if msg.Sheet != m.sheet {
			return m, nil
		}
		m.record(msg)
		m.sheet = nil
		return m, nil

	case OpenSheetMsg:
		cmd := m.open()
		return m, cmd

	case ErrorMsg:
		m.showError = true
		m.errorMsg = msg.Err.Error()
		return m, nil

	case ClearErrorMsg:
		m.showError = false
		m.errorMsg = ""
		return m, nil

	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			return m, tea.Quit
		}
		if m.sheet != nil {
			return m, m.sheet.Update(msg)
		}
		return m.handleKeyPress(msg)

	case tea.MouseMsg:
		if m.sheet != nil {
			return m, m.sheet.Update(msg)
		}
		var cmd tea.Cmd
		m.events, cmd = m.events.Update(msg)
		return m, cmd
	}

	// Frame ticks and anything else the sheet schedules for itself.
	if m.sheet != nil {
		return m, m.sheet.Update(msg)
	}
	return m, nil
}

func (m Model) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Open):
		cmd := m.open()
		return m, cmd

	case key.Matches(msg, m.keys.Style):
		m.toggleStyle()
		m.showError = false
		m.errorMsg = ""
		return m, nil

	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		m.resize()
		return m, nil

	case key.Matches(msg, m.keys.Scroll):
		var cmd tea.Cmd
		m.events, cmd = m.events.Update(msg)
		return m, cmd
	}

	return m, nil
}
