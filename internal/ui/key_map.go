package ui

import "github.com/charmbracelet/bubbles/key"

// keyMap defines the [key.Binding] mapping for the form.
type keyMap struct {
	up     key.Binding
	down   key.Binding
	open   key.Binding
	submit key.Binding
	quit   key.Binding
	help   key.Binding
}

func newKeyMap() keyMap {
	return keyMap{
		up:     key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		down:   key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		open:   key.NewBinding(key.WithKeys("enter", " "), key.WithHelp("enter", "choose")),
		submit: key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "submit")),
		quit:   key.NewBinding(key.WithKeys("q", "esc", "ctrl+c"), key.WithHelp("q", "quit")),
		help:   key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "more")),
	}
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.open, k.submit, k.quit, k.help}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.up, k.down, k.open},
		{k.submit, k.quit, k.help},
	}
}
