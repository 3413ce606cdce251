package tui

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines all key bindings for the TUI.
type KeyMap struct {
	// Navigation
	Up     key.Binding
	Down   key.Binding
	Enter  key.Binding
	Escape key.Binding
	Tab    key.Binding

	// Session
	Toggle  key.Binding
	Reset   key.Binding
	Shorter key.Binding
	Longer  key.Binding

	// Panels
	Settings key.Binding
	Mantras  key.Binding

	// Mantras
	Favorite key.Binding
	Lock     key.Binding
	Random   key.Binding
	Display  key.Binding

	// Control
	Help  key.Binding
	Quit  key.Binding
	CtrlC key.Binding
}

// DefaultKeyMap provides the default key bindings for the TUI.
var DefaultKeyMap = KeyMap{
	Up: key.NewBinding(
		key.WithKeys("up", "k"),
		key.WithHelp("↑/k", "up"),
	),
	Down: key.NewBinding(
		key.WithKeys("down", "j"),
		key.WithHelp("↓/j", "down"),
	),
	Enter: key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("enter", "select"),
	),
	Escape: key.NewBinding(
		key.WithKeys("esc"),
		key.WithHelp("esc", "close panel"),
	),
	Tab: key.NewBinding(
		key.WithKeys("tab"),
		key.WithHelp("tab", "breathe/ground"),
	),
	Toggle: key.NewBinding(
		key.WithKeys(" ", "space"),
		key.WithHelp("space", "start/pause"),
	),
	Reset: key.NewBinding(
		key.WithKeys("r"),
		key.WithHelp("r", "reset"),
	),
	Shorter: key.NewBinding(
		key.WithKeys("left", "h", "-"),
		key.WithHelp("←/h", "shorter"),
	),
	Longer: key.NewBinding(
		key.WithKeys("right", "l", "+"),
		key.WithHelp("→/l", "longer"),
	),
	Settings: key.NewBinding(
		key.WithKeys("s"),
		key.WithHelp("s", "patterns"),
	),
	Mantras: key.NewBinding(
		key.WithKeys("m"),
		key.WithHelp("m", "mantras"),
	),
	Favorite: key.NewBinding(
		key.WithKeys("f"),
		key.WithHelp("f", "favorite"),
	),
	Lock: key.NewBinding(
		key.WithKeys("p"),
		key.WithHelp("p", "pin"),
	),
	Random: key.NewBinding(
		key.WithKeys("n"),
		key.WithHelp("n", "new mantra"),
	),
	Display: key.NewBinding(
		key.WithKeys("v"),
		key.WithHelp("v", "show/hide mantra"),
	),
	Help: key.NewBinding(
		key.WithKeys("?"),
		key.WithHelp("?", "help"),
	),
	Quit: key.NewBinding(
		key.WithKeys("q"),
		key.WithHelp("q", "quit"),
	),
	CtrlC: key.NewBinding(
		key.WithKeys("ctrl+c"),
		key.WithHelp("ctrl+c ×2", "exit"),
	),
}

// ShortHelp implements help.KeyMap.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Toggle, k.Reset, k.Tab, k.Settings, k.Mantras, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Toggle, k.Reset, k.Shorter, k.Longer},
		{k.Tab, k.Settings, k.Mantras, k.Escape},
		{k.Up, k.Down, k.Enter},
		{k.Favorite, k.Lock, k.Random, k.Display},
		{k.Help, k.Quit, k.CtrlC},
	}
}
