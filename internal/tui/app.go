// Package tui renders the interactive day-grid picker on top of the
// daypick engine.
package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/jask/daypick"
)

// closeSignal is shared between the provider's close collaborator and the
// model so auto-commits can end the program from inside Update.
type closeSignal struct {
	fired bool
}

// Model drives the picker. It owns a cursor over calendar days and
// forwards every interaction to the engine, which holds all selection
// state.
type Model struct {
	picker   *daypick.Provider
	close    *closeSignal
	keys     keyMap
	cursor   time.Time
	warnings []string
	status   string
	width    int
	height   int
	done     bool
}

// NewModel builds a picker over opts with value as the initial selection.
func NewModel(opts daypick.Options, value any) Model {
	cs := &closeSignal{}
	p := daypick.New(opts, value, func() { cs.fired = true })
	return Model{
		picker: p,
		close:  cs,
		keys:   defaultKeyMap(),
		cursor: daypick.Day(p.ViewingDate()),
	}
}

func (m Model) Init() tea.Cmd { return nil }

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		return m, nil
	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.done = true
		return m, tea.Quit

	case key.Matches(msg, m.keys.Up):
		m = m.moveCursor(-7)
	case key.Matches(msg, m.keys.Down):
		m = m.moveCursor(7)
	case key.Matches(msg, m.keys.Left):
		m = m.moveCursor(-1)
	case key.Matches(msg, m.keys.Right):
		m = m.moveCursor(1)

	case key.Matches(msg, m.keys.Select):
		info := m.picker.Query(m.cursor)
		switch {
		case info.Blocked:
			m.status = "that day is blocked"
		case info.Disabled:
			m.status = "that day is out of bounds"
		default:
			m.picker.OnSelection(m.cursor)
			m.status = ""
		}

	case key.Matches(msg, m.keys.Save):
		m.picker.SaveValue()
	case key.Matches(msg, m.keys.Revert):
		m.picker.RevertValue()
		m.status = "reverted"

	case key.Matches(msg, m.keys.PrevMonth):
		m.picker.PreviousMonth()
		m = m.clampCursorToView()
	case key.Matches(msg, m.keys.NextMonth):
		m.picker.NextMonth()
		m = m.clampCursorToView()
	case key.Matches(msg, m.keys.Today):
		today := daypick.Day(time.Now())
		m.picker.GoToMonth(today)
		m.cursor = today
	}

	if m.close.fired {
		m.done = true
		return m, tea.Quit
	}
	return m, nil
}

// moveCursor shifts focus by days, emitting blur for the old day and
// focus for the new one so an open range can track its hover preview.
func (m Model) moveCursor(days int) Model {
	next := m.cursor.AddDate(0, 0, days)
	m.picker.OnDayBlur(m.cursor)
	m.picker.OnDayFocus(next)
	if !m.monthVisible(next) {
		m.picker.GoToMonth(next)
	}
	m.cursor = next
	return m
}

// clampCursorToView pulls the cursor back into the visible months after
// explicit month navigation.
func (m Model) clampCursorToView() Model {
	if m.monthVisible(m.cursor) {
		return m
	}
	first := daypick.MonthStart(m.picker.ViewingDate())
	dayNum := m.cursor.Day()
	if max := daypick.DaysInMonth(first); dayNum > max {
		dayNum = max
	}
	m.picker.OnDayBlur(m.cursor)
	m.cursor = first.AddDate(0, 0, dayNum-1)
	m.picker.OnDayFocus(m.cursor)
	return m
}

func (m Model) monthVisible(d time.Time) bool {
	for _, month := range visibleMonths(m.picker) {
		if sameMonth(d, month) {
			return true
		}
	}
	return false
}

func (m Model) View() string {
	if m.done {
		return ""
	}
	cfg := m.picker.Config()

	var b strings.Builder
	anchor := m.picker.FormattedDate()
	if anchor == cfg.Placeholder {
		anchor = placeholderStyle.Render(anchor)
	} else {
		anchor = anchorStyle.Render(anchor)
	}
	b.WriteString(fmt.Sprintf("%s  %s\n\n", titleStyle.Render("daypick"), anchor))

	cal := renderCalendar(m.picker, m.cursor)
	if cfg.Confirmation && !m.picker.Selection().Equal(m.picker.Committed()) {
		bar := confirmBarStyle.Render("s save · esc revert")
		cal = overlayCentered(cal, bar, lipgloss.Width(cal))
	}
	b.WriteString(cal)
	b.WriteString("\n\n")

	for _, w := range m.warnings {
		b.WriteString(warningStyle.Render("warning: " + w))
		b.WriteString("\n")
	}
	if m.status != "" {
		b.WriteString(statusStyle.Render(m.status))
		b.WriteString("\n")
	}
	b.WriteString(m.keys.helpLine())
	b.WriteString("\n")
	return b.String()
}

// Run starts the picker and blocks until it closes, returning the
// committed selection.
func Run(opts daypick.Options, value any, warnings []string) (daypick.Selection, error) {
	m := NewModel(opts, value)
	m.warnings = warnings
	prog := tea.NewProgram(m, tea.WithAltScreen())
	out, err := prog.Run()
	if err != nil {
		return daypick.Selection{}, err
	}
	if final, ok := out.(Model); ok {
		return final.picker.Committed(), nil
	}
	return m.picker.Committed(), nil
}
