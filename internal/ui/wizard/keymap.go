package wizard

import "github.com/charmbracelet/bubbles/key"

// KeyMap declares the wizard key bindings. QuitRune is the letter binding
// from the classic installer; it stays live on choice questions but types
// normally into free text.
type KeyMap struct {
	Confirm   key.Binding
	Quit      key.Binding
	ForceQuit key.Binding
	QuitRune  key.Binding
	Up        key.Binding
	Down      key.Binding
	Theme     key.Binding
	Backspace key.Binding
}

// DefaultKeyMap returns the standard wizard bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Confirm:   key.NewBinding(key.WithKeys("enter")),
		Quit:      key.NewBinding(key.WithKeys("esc")),
		ForceQuit: key.NewBinding(key.WithKeys("ctrl+c")),
		QuitRune:  key.NewBinding(key.WithKeys("q")),
		Up:        key.NewBinding(key.WithKeys("up")),
		Down:      key.NewBinding(key.WithKeys("down")),
		Theme:     key.NewBinding(key.WithKeys("ctrl+t")),
		Backspace: key.NewBinding(key.WithKeys("backspace")),
	}
}
