package keys

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines the global keybindings for the application.
type KeyMap struct {
	// Navigation
	Down key.Binding
	Up   key.Binding

	// Selection / editing
	Select key.Binding
	New    key.Binding
	Edit   key.Binding
	Toggle key.Binding
	Delete key.Binding

	// Structure
	Indent   key.Binding
	Outdent  key.Binding
	MoveUp   key.Binding
	MoveDown key.Binding

	// Timers
	TimerToggle key.Binding
	TimerStart  key.Binding
	TimerStop   key.Binding
	Duration    key.Binding

	// Attachments
	Attach key.Binding

	// View
	ShowCompleted key.Binding

	// Back / Quit
	Back key.Binding
	Quit key.Binding
}

// DefaultKeyMap returns the default set of keybindings.
func DefaultKeyMap() *KeyMap {
	return &KeyMap{
		Down: key.NewBinding(
			key.WithKeys("j", "down"),
			key.WithHelp("j/↓", "down"),
		),
		Up: key.NewBinding(
			key.WithKeys("k", "up"),
			key.WithHelp("k/↑", "up"),
		),
		Select: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "open"),
		),
		New: key.NewBinding(
			key.WithKeys("n"),
			key.WithHelp("n", "new"),
		),
		Edit: key.NewBinding(
			key.WithKeys("e"),
			key.WithHelp("e", "edit"),
		),
		Toggle: key.NewBinding(
			key.WithKeys("x"),
			key.WithHelp("x", "toggle done"),
		),
		Delete: key.NewBinding(
			key.WithKeys("d"),
			key.WithHelp("d", "delete"),
		),
		Indent: key.NewBinding(
			key.WithKeys("tab", ">"),
			key.WithHelp("tab", "indent"),
		),
		Outdent: key.NewBinding(
			key.WithKeys("shift+tab", "<"),
			key.WithHelp("shift+tab", "outdent"),
		),
		MoveUp: key.NewBinding(
			key.WithKeys("K", "ctrl+up"),
			key.WithHelp("K", "move up"),
		),
		MoveDown: key.NewBinding(
			key.WithKeys("J", "ctrl+down"),
			key.WithHelp("J", "move down"),
		),
		TimerToggle: key.NewBinding(
			key.WithKeys("t"),
			key.WithHelp("t", "timer on/off"),
		),
		TimerStart: key.NewBinding(
			key.WithKeys("s"),
			key.WithHelp("s", "start timer"),
		),
		TimerStop: key.NewBinding(
			key.WithKeys("S"),
			key.WithHelp("S", "stop timer"),
		),
		Duration: key.NewBinding(
			key.WithKeys("m"),
			key.WithHelp("m", "set duration"),
		),
		Attach: key.NewBinding(
			key.WithKeys("a"),
			key.WithHelp("a", "attach"),
		),
		ShowCompleted: key.NewBinding(
			key.WithKeys("H"),
			key.WithHelp("H", "show/hide done"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "back"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}
