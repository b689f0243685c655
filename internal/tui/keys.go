package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
)

type keyMap struct {
	Up        key.Binding
	Down      key.Binding
	Left      key.Binding
	Right     key.Binding
	Select    key.Binding
	Save      key.Binding
	Revert    key.Binding
	PrevMonth key.Binding
	NextMonth key.Binding
	Today     key.Binding
	Quit      key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Up:        key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "week back")),
		Down:      key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "week fwd")),
		Left:      key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←/h", "day back")),
		Right:     key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("→/l", "day fwd")),
		Select:    key.NewBinding(key.WithKeys("enter", " "), key.WithHelp("enter", "select")),
		Save:      key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "save")),
		Revert:    key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "revert")),
		PrevMonth: key.NewBinding(key.WithKeys("[", "pgup"), key.WithHelp("[", "prev month")),
		NextMonth: key.NewBinding(key.WithKeys("]", "pgdown"), key.WithHelp("]", "next month")),
		Today:     key.NewBinding(key.WithKeys("t"), key.WithHelp("t", "today")),
		Quit:      key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// helpLine renders the one-row key hint shown under the grid.
func (k keyMap) helpLine() string {
	entries := []key.Binding{k.Select, k.Save, k.Revert, k.PrevMonth, k.NextMonth, k.Today, k.Quit}
	parts := make([]string, 0, len(entries))
	for _, b := range entries {
		h := b.Help()
		parts = append(parts, h.Key+" "+h.Desc)
	}
	return helpStyle.Render(strings.Join(parts, "  ·  "))
}
