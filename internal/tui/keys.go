package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Spin    key.Binding
	Remove  key.Binding
	Up      key.Binding
	Down    key.Binding
	Input   key.Binding
	Submit  key.Binding
	Leave   key.Binding
	Confirm key.Binding
	Cancel  key.Binding
	Help    key.Binding
	Quit    key.Binding
	ForceQ  key.Binding
}

func newKeyMap() keyMap {
	return keyMap{
		Spin:    key.NewBinding(key.WithKeys("s", " "), key.WithHelp("s/space", "spin")),
		Remove:  key.NewBinding(key.WithKeys("d", "x", "delete", "backspace"), key.WithHelp("d", "remove")),
		Up:      key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down:    key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		Input:   key.NewBinding(key.WithKeys("a", "i", "tab"), key.WithHelp("a", "add reward")),
		Submit:  key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "add")),
		Leave:   key.NewBinding(key.WithKeys("esc", "tab"), key.WithHelp("esc", "back to list")),
		Confirm: key.NewBinding(key.WithKeys("y", "Y", "enter"), key.WithHelp("y", "ok")),
		Cancel:  key.NewBinding(key.WithKeys("n", "N", "esc"), key.WithHelp("n", "cancel")),
		Help:    key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "more keys")),
		Quit:    key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
		ForceQ:  key.NewBinding(key.WithKeys("ctrl+c")),
	}
}

// listKeys is the help for the reward list.
type listKeys struct{ keyMap }

func (k listKeys) ShortHelp() []key.Binding {
	return []key.Binding{k.Spin, k.Input, k.Remove, k.Help, k.Quit}
}

func (k listKeys) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Spin, k.Input, k.Remove}, {k.Up, k.Down, k.Help, k.Quit}}
}

type inputKeys struct{ keyMap }

func (k inputKeys) ShortHelp() []key.Binding {
	return []key.Binding{k.Submit, k.Leave}
}

func (k inputKeys) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}

type modalKeys struct{ keyMap }

func (k modalKeys) ShortHelp() []key.Binding {
	return []key.Binding{k.Confirm, k.Cancel}
}

func (k modalKeys) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}
