package tui

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines all keybindings for the view.
type KeyMap struct {
	Next     key.Binding
	Prev     key.Binding
	Jump     key.Binding
	Menu     key.Binding
	Up       key.Binding
	Down     key.Binding
	PageUp   key.Binding
	PageDown key.Binding
	Top      key.Binding
	Bottom   key.Binding
	Enter    key.Binding
	Close    key.Binding
	Quit     key.Binding
}

// DefaultKeyMap returns the default keybinding configuration.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Next: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "next"),
		),
		Prev: key.NewBinding(
			key.WithKeys("shift+tab"),
			key.WithHelp("⇧tab", "prev"),
		),
		Jump: key.NewBinding(
			key.WithKeys("1", "2", "3", "4", "5", "6", "7", "8", "9"),
			key.WithHelp("1-6", "jump"),
		),
		Menu: key.NewBinding(
			key.WithKeys("m"),
			key.WithHelp("m", "menu"),
		),
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "down"),
		),
		PageUp: key.NewBinding(
			key.WithKeys("pgup", "b"),
			key.WithHelp("pgup", "page up"),
		),
		PageDown: key.NewBinding(
			key.WithKeys("pgdown", " ", "f"),
			key.WithHelp("pgdn", "page down"),
		),
		Top: key.NewBinding(
			key.WithKeys("home", "g"),
			key.WithHelp("home", "top"),
		),
		Bottom: key.NewBinding(
			key.WithKeys("end", "G"),
			key.WithHelp("end", "bottom"),
		),
		Enter: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "go"),
		),
		Close: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "close"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// MenuKeyMap returns keybindings active while the compact menu is open. Page
// scrolling is disabled so the arrows move the menu cursor.
func MenuKeyMap() KeyMap {
	km := DefaultKeyMap()
	km.PageUp.SetEnabled(false)
	km.PageDown.SetEnabled(false)
	km.Top.SetEnabled(false)
	km.Bottom.SetEnabled(false)
	km.Next.SetEnabled(false)
	km.Prev.SetEnabled(false)
	km.Up.SetHelp("↑", "prev item")
	km.Down.SetHelp("↓", "next item")
	return km
}

// PageFooterBindings returns footer bindings while reading the page. The menu
// hint only appears when the navigation bar is collapsed.
func PageFooterBindings(km KeyMap, compact bool) []key.Binding {
	menu := km.Menu
	menu.SetEnabled(compact)
	return []key.Binding{km.Next, km.Prev, km.Jump, menu, km.Down, km.PageDown, km.Quit}
}

// MenuFooterBindings returns footer bindings while the compact menu is open.
func MenuFooterBindings(km KeyMap) []key.Binding {
	return []key.Binding{km.Up, km.Down, km.Enter, km.Close, km.Quit}
}
