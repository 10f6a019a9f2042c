package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	quit         key.Binding
	nextProblem  key.Binding
	prevProblem  key.Binding
	nextLanguage key.Binding
	switchPane   key.Binding
	push         key.Binding
	copy         key.Binding
	info         key.Binding
	close        key.Binding
}

// Plain letters belong to the editor, so every binding uses a modifier or a
// function key.
var keys = keyMap{
	quit:         key.NewBinding(key.WithKeys("ctrl+c", "ctrl+q")),
	nextProblem:  key.NewBinding(key.WithKeys("ctrl+n", "pgdown")),
	prevProblem:  key.NewBinding(key.WithKeys("ctrl+p", "pgup")),
	nextLanguage: key.NewBinding(key.WithKeys("ctrl+l")),
	switchPane:   key.NewBinding(key.WithKeys("ctrl+t")),
	push:         key.NewBinding(key.WithKeys("ctrl+s")),
	copy:         key.NewBinding(key.WithKeys("ctrl+y")),
	info:         key.NewBinding(key.WithKeys("f1")),
	close:        key.NewBinding(key.WithKeys("esc", "enter")),
}
