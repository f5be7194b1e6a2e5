package ui

import "github.com/charmbracelet/bubbles/key"

// KeyMap is the page-level key binding set. Overlays and the contact form
// handle their own keys before these are consulted.
type KeyMap struct {
	Quit     key.Binding
	Menu     key.Binding
	NavItem  key.Binding
	Up       key.Binding
	Down     key.Binding
	PageUp   key.Binding
	PageDown key.Binding
	Top      key.Binding
	Bottom   key.Binding
	PrevCard key.Binding
	NextCard key.Binding
	Open     key.Binding
	Follow   key.Binding
	Contact  key.Binding
	Close    key.Binding
	Help     key.Binding
}

// DefaultKeyMap returns the standard bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Quit:     key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
		Menu:     key.NewBinding(key.WithKeys("m"), key.WithHelp("m", "menu")),
		NavItem:  key.NewBinding(key.WithKeys("1", "2", "3", "4", "5", "6", "7", "8", "9"), key.WithHelp("1-9", "go to section")),
		Up:       key.NewBinding(key.WithKeys("k", "up"), key.WithHelp("k/↑", "up")),
		Down:     key.NewBinding(key.WithKeys("j", "down"), key.WithHelp("j/↓", "down")),
		PageUp:   key.NewBinding(key.WithKeys("pgup", "ctrl+u"), key.WithHelp("pgup", "page up")),
		PageDown: key.NewBinding(key.WithKeys("pgdown", "ctrl+d", " "), key.WithHelp("pgdn", "page down")),
		Top:      key.NewBinding(key.WithKeys("g", "home"), key.WithHelp("g", "top")),
		Bottom:   key.NewBinding(key.WithKeys("G", "end"), key.WithHelp("G", "bottom")),
		PrevCard: key.NewBinding(key.WithKeys("h", "left", "shift+tab"), key.WithHelp("h/←", "prev project")),
		NextCard: key.NewBinding(key.WithKeys("l", "right", "tab"), key.WithHelp("l/→", "next project")),
		Open:     key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "details")),
		Follow:   key.NewBinding(key.WithKeys("o"), key.WithHelp("o", "open link")),
		Contact:  key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "write message")),
		Close:    key.NewBinding(key.WithKeys("esc", "x"), key.WithHelp("esc", "close")),
		Help:     key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
	}
}

// ShortHelp implements help.KeyMap.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Menu, k.NavItem, k.NextCard, k.Open, k.Follow, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Menu, k.NavItem, k.Top, k.Bottom},
		{k.Up, k.Down, k.PageUp, k.PageDown},
		{k.PrevCard, k.NextCard, k.Open, k.Follow, k.Close},
		{k.Contact, k.Help, k.Quit},
	}
}
