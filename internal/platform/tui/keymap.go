package tui

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines the key bindings for the city view.
type KeyMap struct {
	Up       key.Binding
	Down     key.Binding
	Left     key.Binding
	Right    key.Binding
	NextTool key.Binding
	PrevTool key.Binding
	Build    key.Binding
	Upgrade  key.Binding
	Bulldoze key.Binding
	Pause    key.Binding
	Weather  key.Binding
	TaxUp    key.Binding
	TaxDown  key.Binding
	Save     key.Binding
	Quit     key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Build, k.Upgrade, k.Bulldoze, k.NextTool, k.Pause, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Left, k.Right},
		{k.Build, k.Upgrade, k.Bulldoze, k.NextTool, k.PrevTool},
		{k.Pause, k.Weather, k.TaxUp, k.TaxDown},
		{k.Save, k.Quit},
	}
}

// DefaultKeyMap returns the default key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("up/k", "move up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("down/j", "move down"),
		),
		Left: key.NewBinding(
			key.WithKeys("left", "h"),
			key.WithHelp("left/h", "move left"),
		),
		Right: key.NewBinding(
			key.WithKeys("right", "l"),
			key.WithHelp("right/l", "move right"),
		),
		NextTool: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "next structure"),
		),
		PrevTool: key.NewBinding(
			key.WithKeys("shift+tab"),
			key.WithHelp("S-tab", "prev structure"),
		),
		Build: key.NewBinding(
			key.WithKeys("enter", "b"),
			key.WithHelp("enter", "build"),
		),
		Upgrade: key.NewBinding(
			key.WithKeys("u"),
			key.WithHelp("u", "enhance"),
		),
		Bulldoze: key.NewBinding(
			key.WithKeys("x"),
			key.WithHelp("x", "clear"),
		),
		Pause: key.NewBinding(
			key.WithKeys(" ", "p"),
			key.WithHelp("space", "pause"),
		),
		Weather: key.NewBinding(
			key.WithKeys("e"),
			key.WithHelp("e", "weather"),
		),
		TaxUp: key.NewBinding(
			key.WithKeys("+", "="),
			key.WithHelp("+", "raise tax"),
		),
		TaxDown: key.NewBinding(
			key.WithKeys("-"),
			key.WithHelp("-", "lower tax"),
		),
		Save: key.NewBinding(
			key.WithKeys("ctrl+s"),
			key.WithHelp("C-s", "save"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}
