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
	logout    key.Binding
	reload    key.Binding
	search    key.Binding
	exclude   key.Binding
	clearKey  key.Binding
	clearAll  key.Binding
	sortRec   key.Binding
	sortName  key.Binding
	sortNew   key.Binding
	code      key.Binding
	copy      key.Binding
	copyUser  key.Binding
	login     key.Binding
	favorite  key.Binding
	delete    key.Binding
	batch     key.Binding
	toggle    key.Binding
	mode      key.Binding
	add       key.Binding
	remove    key.Binding
	cleanup   key.Binding
	totpEdit  key.Binding
	totpURI   key.Binding
	totpQR    key.Binding
	totpDrop  key.Binding
	buildInfo key.Binding
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
	logout:    key.NewBinding(key.WithKeys("ctrl+l")),
	reload:    key.NewBinding(key.WithKeys("R")),
	search:    key.NewBinding(key.WithKeys("/")),
	exclude:   key.NewBinding(key.WithKeys("-")),
	clearKey:  key.NewBinding(key.WithKeys("backspace")),
	clearAll:  key.NewBinding(key.WithKeys("x")),
	sortRec:   key.NewBinding(key.WithKeys("1")),
	sortName:  key.NewBinding(key.WithKeys("2")),
	sortNew:   key.NewBinding(key.WithKeys("3")),
	code:      key.NewBinding(key.WithKeys("o", "enter")),
	copy:      key.NewBinding(key.WithKeys("c")),
	copyUser:  key.NewBinding(key.WithKeys("u")),
	login:     key.NewBinding(key.WithKeys("l")),
	favorite:  key.NewBinding(key.WithKeys("f")),
	delete:    key.NewBinding(key.WithKeys("d")),
	batch:     key.NewBinding(key.WithKeys("b")),
	toggle:    key.NewBinding(key.WithKeys(" ")),
	mode:      key.NewBinding(key.WithKeys("m")),
	add:       key.NewBinding(key.WithKeys("a")),
	remove:    key.NewBinding(key.WithKeys("r")),
	cleanup:   key.NewBinding(key.WithKeys("C")),
	totpEdit:  key.NewBinding(key.WithKeys("t")),
	totpURI:   key.NewBinding(key.WithKeys("i")),
	totpQR:    key.NewBinding(key.WithKeys("g")),
	totpDrop:  key.NewBinding(key.WithKeys("T")),
	buildInfo: key.NewBinding(key.WithKeys("f1")),
	yes:       key.NewBinding(key.WithKeys("y")),
	no:        key.NewBinding(key.WithKeys("n", "esc")),
}
