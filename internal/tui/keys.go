package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	up         key.Binding
	down       key.Binding
	enter      key.Binding
	esc        key.Binding
	tab        key.Binding
	backtab    key.Binding
	switchMode key.Binding
	projects   key.Binding
	settings   key.Binding
	copy       key.Binding
	logout     key.Binding
	reload     key.Binding
	version    key.Binding
	quit       key.Binding
}

var keys = keyMap{
	up:         key.NewBinding(key.WithKeys("up", "k")),
	down:       key.NewBinding(key.WithKeys("down", "j")),
	enter:      key.NewBinding(key.WithKeys("enter")),
	esc:        key.NewBinding(key.WithKeys("esc")),
	tab:        key.NewBinding(key.WithKeys("tab", "down")),
	backtab:    key.NewBinding(key.WithKeys("shift+tab", "up")),
	switchMode: key.NewBinding(key.WithKeys("ctrl+t")),
	projects:   key.NewBinding(key.WithKeys("p")),
	settings:   key.NewBinding(key.WithKeys("s")),
	copy:       key.NewBinding(key.WithKeys("c")),
	logout:     key.NewBinding(key.WithKeys("L")),
	reload:     key.NewBinding(key.WithKeys("r")),
	version:    key.NewBinding(key.WithKeys("v")),
	quit:       key.NewBinding(key.WithKeys("ctrl+c")),
}
