package tui

import (
	"github.com/charmbracelet/bubbles/key"
)

// KeyMap defines the keybindings for the TUI.
type KeyMap struct {
	Copy          key.Binding
	Delete        key.Binding
	Pin           key.Binding
	ClearUnpinned key.Binding
	Search        key.Binding
	Settings      key.Binding
	OpenDir       key.Binding
	Quit          key.Binding
}

// DefaultKeyMap returns the default keybindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Copy: key.NewBinding(
			key.WithKeys("enter", "c"),
			key.WithHelp("enter", "copy"),
		),
		Delete: key.NewBinding(
			key.WithKeys("d"),
			key.WithHelp("d", "delete"),
		),
		Pin: key.NewBinding(
			key.WithKeys("p"),
			key.WithHelp("p", "pin/unpin"),
		),
		ClearUnpinned: key.NewBinding(
			key.WithKeys("x"),
			key.WithHelp("x", "clear unpinned"),
		),
		Search: key.NewBinding(
			key.WithKeys("/"),
			key.WithHelp("/", "search"),
		),
		Settings: key.NewBinding(
			key.WithKeys("s"),
			key.WithHelp("s", "settings"),
		),
		OpenDir: key.NewBinding(
			key.WithKeys("o"),
			key.WithHelp("o", "open data dir"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ShortHelp returns the keybindings shown in the mini help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Copy, k.Pin, k.Delete, k.Search, k.Settings, k.Quit}
}

// FullHelp returns all keybindings, grouped into columns.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Copy, k.Pin, k.Delete},
		{k.ClearUnpinned, k.Search, k.Settings},
		{k.OpenDir, k.Quit},
	}
}
