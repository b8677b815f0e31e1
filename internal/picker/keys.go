package picker

import "github.com/charmbracelet/bubbles/key"

// keyMap defines the [key.Binding] mapping for an open picker.
type keyMap struct {
	up       key.Binding
	down     key.Binding
	pageUp   key.Binding
	pageDown key.Binding
	first    key.Binding
	last     key.Binding
	confirm  key.Binding
	cancel   key.Binding
}

func newKeyMap() keyMap {
	return keyMap{
		up:       key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		down:     key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		pageUp:   key.NewBinding(key.WithKeys("pgup"), key.WithHelp("pgup", "page up")),
		pageDown: key.NewBinding(key.WithKeys("pgdown"), key.WithHelp("pgdn", "page down")),
		first:    key.NewBinding(key.WithKeys("home", "g"), key.WithHelp("g", "first")),
		last:     key.NewBinding(key.WithKeys("end", "G"), key.WithHelp("G", "last")),
		confirm:  key.NewBinding(key.WithKeys("enter", "y"), key.WithHelp("enter", "confirm")),
		cancel:   key.NewBinding(key.WithKeys("esc", "q", "n"), key.WithHelp("esc", "cancel")),
	}
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.up, k.down, k.confirm, k.cancel}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.up, k.down, k.pageUp, k.pageDown},
		{k.first, k.last},
		{k.confirm, k.cancel},
	}
}
