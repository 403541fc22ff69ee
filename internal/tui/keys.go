package tui

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines the key bindings the application dispatches on. The grid
// component owns plain cursor movement and handles those keys itself.
type KeyMap struct {
	// Navigation (move mode reuses these to relocate the grabbed photo)
	Up   key.Binding
	Down key.Binding

	// Actions
	Quit      key.Binding
	Help      key.Binding
	Escape    key.Binding
	Search    key.Binding
	Filter    key.Binding
	Expand    key.Binding
	ShareMode key.Binding
	Share     key.Binding
	Move      key.Binding
}

// DefaultKeyMap returns the default key bindings
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up: key.NewBinding(
			key.WithKeys("k", "up"),
			key.WithHelp("k/↑", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("j", "down"),
			key.WithHelp("j/↓", "down"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Escape: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "back"),
		),
		Search: key.NewBinding(
			key.WithKeys("s"),
			key.WithHelp("s", "search"),
		),
		Filter: key.NewBinding(
			key.WithKeys("/"),
			key.WithHelp("/", "filter"),
		),
		Expand: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "expand photo"),
		),
		ShareMode: key.NewBinding(
			key.WithKeys("v"),
			key.WithHelp("v", "share mode"),
		),
		Share: key.NewBinding(
			key.WithKeys("y"),
			key.WithHelp("y", "share selected"),
		),
		Move: key.NewBinding(
			key.WithKeys("m"),
			key.WithHelp("m", "grab/drop photo"),
		),
	}
}
