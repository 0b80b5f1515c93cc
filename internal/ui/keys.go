package ui

import (
	"github.com/charmbracelet/bubbles/key"
)

// KeyMap holds the key bindings for the picker. Every binding maps to
// exactly one intent (or UI-local action), so the reducer's transition
// table is the whole behavior surface.
type KeyMap struct {
	Up              key.Binding
	Down            key.Binding
	Toggle          key.Binding
	FocusNextTarget key.Binding
	MoveLeft        key.Binding
	MoveRight       key.Binding
	ClearAll        key.Binding
	Copy            key.Binding
	Filter          key.Binding
	Help            key.Binding
	Quit            key.Binding
}

// DefaultKeyMap returns the default key bindings
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
		Toggle: key.NewBinding(
			key.WithKeys(" ", "enter"),
			key.WithHelp("space", "toggle"),
		),
		FocusNextTarget: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "focus next pick"),
		),
		MoveLeft: key.NewBinding(
			key.WithKeys("[", "shift+left"),
			key.WithHelp("[", "move pick left"),
		),
		MoveRight: key.NewBinding(
			key.WithKeys("]", "shift+right"),
			key.WithHelp("]", "move pick right"),
		),
		ClearAll: key.NewBinding(
			key.WithKeys("x"),
			key.WithHelp("x", "clear picks"),
		),
		Copy: key.NewBinding(
			key.WithKeys("y"),
			key.WithHelp("y", "copy picks"),
		),
		Filter: key.NewBinding(
			key.WithKeys("/"),
			key.WithHelp("/", "filter"),
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

// ShortHelp returns the bindings for the mini help view
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Toggle, k.MoveLeft, k.MoveRight, k.Copy, k.Help, k.Quit}
}

// FullHelp returns the bindings for the expanded help view
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Toggle, k.Filter},
		{k.FocusNextTarget, k.MoveLeft, k.MoveRight, k.ClearAll},
		{k.Copy, k.Help, k.Quit},
	}
}
