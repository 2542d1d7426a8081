package tui

import "github.com/charmbracelet/bubbles/key"

type KeyMap struct {
	Up       key.Binding
	Down     key.Binding
	Water    key.Binding
	Revive   key.Binding
	Restart  key.Binding
	Add      key.Binding
	Archived key.Binding
	Help     key.Binding
	Quit     key.Binding
}

func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "down"),
		),
		Water: key.NewBinding(
			key.WithKeys("w", "enter"),
			key.WithHelp("w", "water"),
		),
		Revive: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "revive"),
		),
		Restart: key.NewBinding(
			key.WithKeys("R"),
			key.WithHelp("R", "restart from seed"),
		),
		Add: key.NewBinding(
			key.WithKeys("a"),
			key.WithHelp("a", "add plant"),
		),
		Archived: key.NewBinding(
			key.WithKeys("A"),
			key.WithHelp("A", "toggle archived"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Water, k.Add, k.Help, k.Quit}
}

func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Water, k.Revive},
		{k.Restart, k.Add, k.Archived, k.Quit},
	}
}
