package tui

import "github.com/charmbracelet/bubbles/key"

// KeyMap holds the TUI key bindings.
type KeyMap struct {
	Submit    key.Binding
	NextField key.Binding
	PrevField key.Binding
	SizeLeft  key.Binding
	SizeRight key.Binding
	Reset     key.Binding
	Quit      key.Binding
}

// DefaultKeyMap returns the default bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Submit: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "calculate"),
		),
		NextField: key.NewBinding(
			key.WithKeys("tab", "down"),
			key.WithHelp("tab", "next field"),
		),
		PrevField: key.NewBinding(
			key.WithKeys("shift+tab", "up"),
			key.WithHelp("shift+tab", "previous field"),
		),
		SizeLeft: key.NewBinding(
			key.WithKeys("left"),
			key.WithHelp("←", "smaller"),
		),
		SizeRight: key.NewBinding(
			key.WithKeys("right"),
			key.WithHelp("→", "larger"),
		),
		Reset: key.NewBinding(
			key.WithKeys("ctrl+r", "r"),
			key.WithHelp("r", "calculate again"),
		),
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c", "esc", "q"),
			key.WithHelp("esc", "quit"),
		),
	}
}
