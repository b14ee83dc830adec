package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Quit key.Binding
	// ForceQuit works while the command prompt has focus
	ForceQuit key.Binding
	Command   key.Binding
	Next      key.Binding
	Prev      key.Binding
	Down      key.Binding
	Up        key.Binding
	Clear     key.Binding
	Help      key.Binding
	Run       key.Binding
	Cancel    key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Quit:      key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
		ForceQuit: key.NewBinding(key.WithKeys("ctrl+c"), key.WithHelp("ctrl+c", "quit")),
		Command:   key.NewBinding(key.WithKeys(":"), key.WithHelp(":", "command")),
		Next:      key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "next list")),
		Prev:      key.NewBinding(key.WithKeys("shift+tab"), key.WithHelp("shift+tab", "prev list")),
		Down:      key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("j/↓", "select next")),
		Up:        key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("k/↑", "select prev")),
		Clear:     key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "clear")),
		Help:      key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		Run:       key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "run")),
		Cancel:    key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "cancel")),
	}
}

func (k keyMap) browse() []key.Binding {
	return []key.Binding{k.Down, k.Up, k.Next, k.Clear, k.Command, k.Help, k.Quit}
}

func (k keyMap) prompt() []key.Binding {
	return []key.Binding{k.Run, k.Cancel, k.ForceQuit}
}
