package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	up       key.Binding
	down     key.Binding
	left     key.Binding
	right    key.Binding
	enter    key.Binding
	esc      key.Binding
	tab      key.Binding
	backtab  key.Binding
	quit     key.Binding
	history  key.Binding
	version  key.Binding
	delete   key.Binding
	clear    key.Binding
	copy     key.Binding
	buy      key.Binding
	save     key.Binding
	toggle   key.Binding
	formCopy key.Binding
	formBuy  key.Binding
	yes      key.Binding
	no       key.Binding
}

// Form screens take free text, so their actions live on ctrl chords.
var keys = keyMap{
	up:       key.NewBinding(key.WithKeys("up", "k")),
	down:     key.NewBinding(key.WithKeys("down", "j")),
	left:     key.NewBinding(key.WithKeys("left")),
	right:    key.NewBinding(key.WithKeys("right")),
	enter:    key.NewBinding(key.WithKeys("enter")),
	esc:      key.NewBinding(key.WithKeys("esc")),
	tab:      key.NewBinding(key.WithKeys("tab", "down")),
	backtab:  key.NewBinding(key.WithKeys("shift+tab", "up")),
	quit:     key.NewBinding(key.WithKeys("q", "ctrl+c")),
	history:  key.NewBinding(key.WithKeys("h")),
	version:  key.NewBinding(key.WithKeys("v")),
	delete:   key.NewBinding(key.WithKeys("d")),
	clear:    key.NewBinding(key.WithKeys("x")),
	copy:     key.NewBinding(key.WithKeys("c")),
	buy:      key.NewBinding(key.WithKeys("b")),
	save:     key.NewBinding(key.WithKeys("ctrl+s")),
	toggle:   key.NewBinding(key.WithKeys(" ")),
	formCopy: key.NewBinding(key.WithKeys("ctrl+y")),
	formBuy:  key.NewBinding(key.WithKeys("ctrl+b")),
	yes:      key.NewBinding(key.WithKeys("y")),
	no:       key.NewBinding(key.WithKeys("n")),
}
