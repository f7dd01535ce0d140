package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
)

type keyMap struct {
	Up     key.Binding
	Down   key.Binding
	Left   key.Binding
	Right  key.Binding
	Sort   key.Binding
	Select key.Binding
	Edit   key.Binding
	Blur   key.Binding
	New    key.Binding
	Menu   key.Binding
	Quit   key.Binding

	// Form and menu navigation.
	Next   key.Binding
	Prev   key.Binding
	Submit key.Binding
	Cancel key.Binding
}

var keys = keyMap{
	Up:     key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
	Down:   key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
	Left:   key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←/h", "prev column")),
	Right:  key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("→/l", "next column")),
	Sort:   key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "sort column")),
	Select: key.NewBinding(key.WithKeys(" "), key.WithHelp("space", "select row")),
	Edit:   key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "edit cell")),
	Blur:   key.NewBinding(key.WithKeys("enter", "tab", "esc"), key.WithHelp("enter/tab/esc", "done")),
	New:    key.NewBinding(key.WithKeys("n"), key.WithHelp("n", "new employee")),
	Menu:   key.NewBinding(key.WithKeys("m"), key.WithHelp("m", "menu")),
	Quit:   key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),

	Next:   key.NewBinding(key.WithKeys("tab", "down"), key.WithHelp("tab", "next field")),
	Prev:   key.NewBinding(key.WithKeys("shift+tab", "up"), key.WithHelp("shift+tab", "prev field")),
	Submit: key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "add")),
	Cancel: key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "cancel")),
}

// helpLine renders the bindings as "key desc" pairs.
func helpLine(bindings ...key.Binding) string {
	parts := make([]string, 0, len(bindings))
	for _, b := range bindings {
		h := b.Help()
		parts = append(parts, h.Key+" "+h.Desc)
	}
	return helpStyle.Render(strings.Join(parts, " • "))
}
