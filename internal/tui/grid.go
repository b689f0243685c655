package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/jask/daypick"
)

// gridWidth is the visual width of one month: seven 2-char cells with
// single-space gutters.
const gridWidth = 7*2 + 6

// renderMonth draws one month of the picker. cursor is the focused day,
// zero when the cursor sits in a different month.
func renderMonth(p *daypick.Provider, month, cursor time.Time) string {
	cfg := p.Config()
	first := daypick.MonthStart(month)
	today := daypick.Day(time.Now())

	var b strings.Builder
	heading := first.Format("January 2006")
	b.WriteString(monthHeadingStyle.Render(centerText(heading, gridWidth)))
	b.WriteString("\n")
	b.WriteString(weekdayHeaderStyle.Render(weekdayHeader(cfg.WeekStartsOn)))
	b.WriteString("\n")

	// Offset of day 1 within the first displayed week.
	gap := (int(first.Weekday()) - int(cfg.WeekStartsOn) + 7) % 7
	total := daypick.DaysInMonth(first)

	cells := make([]string, 0, 7)
	for i := 0; i < gap; i++ {
		cells = append(cells, "  ")
	}
	for dayNum := 1; dayNum <= total; dayNum++ {
		d := first.AddDate(0, 0, dayNum-1)
		isCursor := !cursor.IsZero() && daypick.SameDay(d, cursor)
		isToday := daypick.SameDay(d, today)
		cells = append(cells, renderDay(p, d, dayNum, isCursor, isToday))
		if len(cells) == 7 {
			b.WriteString(strings.Join(cells, " "))
			b.WriteString("\n")
			cells = cells[:0]
		}
	}
	if len(cells) > 0 {
		for len(cells) < 7 {
			cells = append(cells, "  ")
		}
		b.WriteString(strings.Join(cells, " "))
		b.WriteString("\n")
	}
	return strings.TrimRight(b.String(), "\n")
}

// renderDay styles one cell. Cursor focus wins over everything else, then
// selection status, then blocked and disabled markers, then today and
// weekend dimming.
func renderDay(p *daypick.Provider, d time.Time, dayNum int, isCursor, isToday bool) string {
	text := fmt.Sprintf("%2d", dayNum)
	if isCursor {
		return cursorStyle.Render(text)
	}

	info := p.Query(d)
	switch info.Status {
	case daypick.StatusSelected:
		return selectedStyle.Render(text)
	case daypick.StatusRangeStart, daypick.StatusRangeEnd:
		return rangeEndStyle.Render(text)
	case daypick.StatusRangeMiddle:
		return rangeMiddleStyle.Render(text)
	}

	switch {
	case info.Blocked:
		return blockedStyle.Render(text)
	case info.Disabled:
		return disabledStyle.Render(text)
	case isToday:
		return todayStyle.Render(text)
	case p.Config().DimWeekends && daypick.Weekend(d):
		return weekendStyle.Render(text)
	default:
		return dayStyle.Render(text)
	}
}

// renderCalendar draws the visible month or months side by side.
func renderCalendar(p *daypick.Provider, cursor time.Time) string {
	months := visibleMonths(p)
	panes := make([]string, 0, len(months))
	for _, m := range months {
		c := time.Time{}
		if sameMonth(cursor, m) {
			c = cursor
		}
		panes = append(panes, renderMonth(p, m, c))
	}
	if len(panes) == 1 {
		return panes[0]
	}
	gutter := lipgloss.NewStyle().Width(4).Render("")
	return lipgloss.JoinHorizontal(lipgloss.Top, panes[0], gutter, panes[1])
}

func visibleMonths(p *daypick.Provider) []time.Time {
	first := daypick.MonthStart(p.ViewingDate())
	if p.Config().View == daypick.View2Month {
		return []time.Time{first, daypick.AddMonths(first, 1)}
	}
	return []time.Time{first}
}

func sameMonth(a, b time.Time) bool {
	return a.Year() == b.Year() && a.Month() == b.Month()
}

func weekdayHeader(start time.Weekday) string {
	names := []string{"Su", "Mo", "Tu", "We", "Th", "Fr", "Sa"}
	parts := make([]string, 7)
	for i := 0; i < 7; i++ {
		parts[i] = names[(int(start)+i)%7]
	}
	return strings.Join(parts, " ")
}

func centerText(s string, width int) string {
	if len(s) >= width {
		return s
	}
	left := (width - len(s)) / 2
	return strings.Repeat(" ", left) + s + strings.Repeat(" ", width-left-len(s))
}
