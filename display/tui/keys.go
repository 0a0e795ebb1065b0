package tui

import "github.com/charmbracelet/bubbles/key"

// keyMap defines all key bindings for the dashboard.
// It implements the help.KeyMap interface for bubbles/help integration.
type keyMap struct {
	Prev       key.Binding
	Next       key.Binding
	Generate   key.Binding
	Clear      key.Binding
	ScrollUp   key.Binding
	ScrollDown key.Binding
	Help       key.Binding
	Quit       key.Binding
}

// ShortHelp returns the compact set of keybindings shown by default in the footer.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Prev, k.Next, k.Generate, k.Help, k.Quit}
}

// FullHelp returns the expanded keybinding groups shown when help is toggled.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Prev, k.Next, k.Generate, k.Clear},
		{k.ScrollUp, k.ScrollDown},
		{k.Help, k.Quit},
	}
}

// keys holds the default key bindings used by the dashboard.
var keys = keyMap{
	Prev:       key.NewBinding(key.WithKeys("left", "a"), key.WithHelp("←/a", "shorter window")),
	Next:       key.NewBinding(key.WithKeys("right", "d"), key.WithHelp("→/d", "longer window")),
	Generate:   key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "generate report")),
	Clear:      key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "clear selection")),
	ScrollUp:   key.NewBinding(key.WithKeys("up", "w"), key.WithHelp("↑/w", "scroll processes")),
	ScrollDown: key.NewBinding(key.WithKeys("down", "s"), key.WithHelp("↓/s", "scroll processes")),
	Help:       key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
	Quit:       key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
}
