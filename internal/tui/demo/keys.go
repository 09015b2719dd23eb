package demo

import "github.com/charmbracelet/bubbles/key"

// keyMap holds the bindings of the host screen. Keys pressed while a sheet
// is on screen go to the sheet instead, except Quit's ctrl+c.
type keyMap struct {
	Open   key.Binding
	Style  key.Binding
	Help   key.Binding
	Quit   key.Binding
	Scroll key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Open: key.NewBinding(
			key.WithKeys("enter", " ", "o"),
			key.WithHelp("↵/o", "open sheet"),
		),
		Style: key.NewBinding(
			key.WithKeys("s", "tab"),
			key.WithHelp("s", "list/grid"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "more"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
		Scroll: key.NewBinding(
			key.WithKeys("up", "down", "pgup", "pgdown", "k", "j"),
			key.WithHelp("↑/↓", "scroll events"),
		),
	}
}

// ShortHelp implements help.KeyMap.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Open, k.Style, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Open, k.Style},
		{k.Scroll},
		{k.Help, k.Quit},
	}
}
