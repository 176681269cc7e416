package ui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Pause key.Binding
	Skip  key.Binding
	Reset key.Binding
	Help  key.Binding
	Quit  key.Binding
}

// ShortHelp returns bindings for the single line footer.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Pause, k.Skip, k.Reset, k.Quit, k.Help}
}

// FullHelp returns bindings for the expanded footer.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Pause, k.Skip, k.Reset},
		{k.Help, k.Quit},
	}
}

var defaultKeyMap = keyMap{
	Pause: key.NewBinding(
		key.WithKeys(" "),
		key.WithHelp("␣", "pause/resume"),
	),
	Skip: key.NewBinding(
		key.WithKeys("n"),
		key.WithHelp("n", "next"),
	),
	Reset: key.NewBinding(
		key.WithKeys("r"),
		key.WithHelp("r", "reset"),
	),
	Help: key.NewBinding(
		key.WithKeys("?"),
		key.WithHelp("?", "more"),
	),
	Quit: key.NewBinding(
		key.WithKeys("q", "esc", "ctrl+c"),
		key.WithHelp("q", "quit"),
	),
}
