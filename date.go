package daypick

import (
	"sort"
	"time"
)

// ---------------------------------------------------------------------------
// Calendar-day primitives
// ---------------------------------------------------------------------------

// Day truncates t to calendar-day resolution, discarding time-of-day.
// Every comparison in this package operates on Day-normalized values.
func Day(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// SameDay reports whether a and b fall on the same calendar day.
// The comparison is by date components, so two values in different
// locations still compare equal when their y/m/d match.
func SameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}

// compareDay orders a and b by calendar day: -1 when a is earlier,
// 0 when they share a day, 1 when a is later.
func compareDay(a, b time.Time) int {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	switch {
	case ay != by:
		if ay < by {
			return -1
		}
		return 1
	case am != bm:
		if am < bm {
			return -1
		}
		return 1
	case ad != bd:
		if ad < bd {
			return -1
		}
		return 1
	}
	return 0
}

// beforeDay reports whether a falls on an earlier calendar day than b.
func beforeDay(a, b time.Time) bool { return compareDay(a, b) < 0 }

// afterDay reports whether a falls on a later calendar day than b.
func afterDay(a, b time.Time) bool { return compareDay(a, b) > 0 }

// orderDays returns the two dates in chronological order.
func orderDays(a, b time.Time) (time.Time, time.Time) {
	if afterDay(a, b) {
		return b, a
	}
	return a, b
}

// Weekend reports whether t falls on a Saturday or Sunday.
func Weekend(t time.Time) bool {
	wd := t.Weekday()
	return wd == time.Saturday || wd == time.Sunday
}

// MonthStart returns the first day of t's month.
func MonthStart(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location())
}

// AddMonths shifts t by n calendar months, anchored at the first of the
// month so variable month lengths and year rollover cannot skip a month
// (Jan 31 + 1 month lands in February, not March).
func AddMonths(t time.Time, n int) time.Time {
	return MonthStart(t).AddDate(0, n, 0)
}

// DaysInMonth returns the number of days in t's month.
func DaysInMonth(t time.Time) int {
	return time.Date(t.Year(), t.Month()+1, 0, 0, 0, 0, 0, t.Location()).Day()
}

// sortedUniqueDays normalizes, deduplicates, and ascending-sorts dates.
// The result is a fresh slice; the input is never mutated.
func sortedUniqueDays(dates []time.Time) []time.Time {
	if len(dates) == 0 {
		return nil
	}
	out := make([]time.Time, 0, len(dates))
	for _, d := range dates {
		out = append(out, Day(d))
	}
	sortDays(out)
	dedup := out[:1]
	for _, d := range out[1:] {
		if !SameDay(d, dedup[len(dedup)-1]) {
			dedup = append(dedup, d)
		}
	}
	return dedup
}

// sortDays sorts in place, ascending by calendar day.
func sortDays(days []time.Time) {
	sort.Slice(days, func(i, j int) bool { return beforeDay(days[i], days[j]) })
}
