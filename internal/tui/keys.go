package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	up         key.Binding
	down       key.Binding
	tab        key.Binding
	connect    key.Binding
	refresh    key.Binding
	disconnect key.Binding
	copy       key.Binding
	about      key.Binding
	esc        key.Binding
	quit       key.Binding
}

var keys = keyMap{
	up:         key.NewBinding(key.WithKeys("up", "k")),
	down:       key.NewBinding(key.WithKeys("down", "j")),
	tab:        key.NewBinding(key.WithKeys("tab", "shift+tab")),
	connect:    key.NewBinding(key.WithKeys("enter")),
	refresh:    key.NewBinding(key.WithKeys("r")),
	disconnect: key.NewBinding(key.WithKeys("d")),
	copy:       key.NewBinding(key.WithKeys("c")),
	about:      key.NewBinding(key.WithKeys("v")),
	esc:        key.NewBinding(key.WithKeys("esc")),
	quit:       key.NewBinding(key.WithKeys("q", "ctrl+c")),
}
