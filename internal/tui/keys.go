package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	up        key.Binding
	down      key.Binding
	enter     key.Binding
	esc       key.Binding
	tab       key.Binding
	backtab   key.Binding
	quit      key.Binding
	add       key.Binding
	verify    key.Binding
	decrypt   key.Binding
	copy      key.Binding
	reload    key.Binding
	available key.Binding
	filter    key.Binding
	category  key.Binding
	info      key.Binding
	yes       key.Binding
	no        key.Binding
}

var keys = keyMap{
	up:        key.NewBinding(key.WithKeys("up", "k")),
	down:      key.NewBinding(key.WithKeys("down", "j")),
	enter:     key.NewBinding(key.WithKeys("enter")),
	esc:       key.NewBinding(key.WithKeys("esc")),
	tab:       key.NewBinding(key.WithKeys("tab")),
	backtab:   key.NewBinding(key.WithKeys("shift+tab")),
	quit:      key.NewBinding(key.WithKeys("q", "ctrl+c")),
	add:       key.NewBinding(key.WithKeys("a")),
	verify:    key.NewBinding(key.WithKeys("v")),
	decrypt:   key.NewBinding(key.WithKeys("d")),
	copy:      key.NewBinding(key.WithKeys("c")),
	reload:    key.NewBinding(key.WithKeys("r")),
	available: key.NewBinding(key.WithKeys("t")),
	filter:    key.NewBinding(key.WithKeys("/")),
	category:  key.NewBinding(key.WithKeys("s")),
	info:      key.NewBinding(key.WithKeys("i")),
	yes:       key.NewBinding(key.WithKeys("y", "enter")),
	no:        key.NewBinding(key.WithKeys("n", "esc")),
}
