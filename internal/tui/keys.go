package tui

import "github.com/charmbracelet/bubbles/key"

// keyMap lists the configurator key bindings.
type keyMap struct {
	PrevTab key.Binding
	NextTab key.Binding
	Up      key.Binding
	Down    key.Binding
	Select  key.Binding
	Save    key.Binding
	Load    key.Binding
	Share   key.Binding
	Back    key.Binding
	Quit    key.Binding
	Tabs    []key.Binding
}

func newKeyMap() keyMap {
	km := keyMap{
		PrevTab: key.NewBinding(
			key.WithKeys("left", "h", "shift+tab"),
			key.WithHelp("←/h", "pestaña anterior"),
		),
		NextTab: key.NewBinding(
			key.WithKeys("right", "l", "tab"),
			key.WithHelp("→/l", "pestaña siguiente"),
		),
		Up: key.NewBinding(
			key.WithKeys("k", "up"),
			key.WithHelp("↑/k", "arriba"),
		),
		Down: key.NewBinding(
			key.WithKeys("j", "down"),
			key.WithHelp("↓/j", "abajo"),
		),
		Select: key.NewBinding(
			key.WithKeys("enter", " "),
			key.WithHelp("enter", "seleccionar"),
		),
		Save: key.NewBinding(
			key.WithKeys("s"),
			key.WithHelp("s", "guardar"),
		),
		Load: key.NewBinding(
			key.WithKeys("o"),
			key.WithHelp("o", "cargar"),
		),
		Share: key.NewBinding(
			key.WithKeys("c"),
			key.WithHelp("c", "compartir"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "cerrar"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "salir"),
		),
	}
	for _, k := range []string{"1", "2", "3", "4", "5", "6", "7", "8", "9"} {
		km.Tabs = append(km.Tabs, key.NewBinding(key.WithKeys(k), key.WithHelp(k, "pestaña "+k)))
	}
	return km
}

// help returns the footer bindings in display order.
func (k keyMap) help() []key.Binding {
	return []key.Binding{k.PrevTab, k.NextTab, k.Select, k.Save, k.Load, k.Share, k.Quit}
}
