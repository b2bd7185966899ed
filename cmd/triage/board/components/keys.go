package components

import "github.com/charmbracelet/bubbles/key"

// KeyMap holds the board actions available from the waiting list
type KeyMap struct {
	Admit  key.Binding
	Next   key.Binding
	Peek   key.Binding
	Change key.Binding
	Load   key.Binding
	Save   key.Binding
	Up     key.Binding
	Down   key.Binding
	Help   key.Binding
	Quit   key.Binding
}

// DefaultKeyMap returns the board bindings
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Admit:  key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "admit")),
		Next:   key.NewBinding(key.WithKeys("n"), key.WithHelp("n", "call next")),
		Peek:   key.NewBinding(key.WithKeys("p"), key.WithHelp("p", "peek")),
		Change: key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "change priority")),
		Load:   key.NewBinding(key.WithKeys("l"), key.WithHelp("l", "load file")),
		Save:   key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "save list")),
		Up:     key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down:   key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		Help:   key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "more keys")),
		Quit:   key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// ShortHelp implements help.KeyMap
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Admit, k.Next, k.Peek, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Admit, k.Next, k.Peek},
		{k.Change, k.Load, k.Save},
		{k.Up, k.Down},
		{k.Help, k.Quit},
	}
}
