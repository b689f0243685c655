package daypick

import (
	"strings"
	"time"
)

// DateRange is the external {from, to} input shape accepted by ParseValue.
// A zero To denotes an open range.
type DateRange struct {
	From time.Time
	To   time.Time
}

// Layouts accepted for externally supplied date strings.
var parseLayouts = []string{
	"2006-01-02",
	time.RFC3339,
	"2006-01-02T15:04:05",
}

// ParseValue converts an externally supplied value into the canonical
// Selection variant for the given mode. Accepted shapes:
//
//	nil                    -> None
//	time.Time, *time.Time  -> a single date
//	string                 -> a single date (ISO or RFC 3339)
//	[]time.Time, []string  -> a list of dates
//	[]any                  -> a list mixing dates and strings
//	DateRange, *DateRange  -> a {from, to} pair
//	Selection              -> re-normalized against mode
//
// Parsing is pure: the input is never mutated and no shape panics. Any
// other shape, and any single date that fails to parse, yields None.
func ParseValue(value any, mode Mode) Selection {
	dates, pair, shape := coerceValue(value)
	switch shape {
	case shapeNone:
		return None()
	case shapePair:
		switch mode {
		case ModeSingle:
			return Single(pair.From)
		case ModeMulti:
			if pair.To.IsZero() {
				return Multi(pair.From)
			}
			return Multi(pair.From, pair.To)
		case ModeRange:
			return Range(pair.From, pair.To)
		}
	case shapeList:
		if len(dates) == 0 {
			return None()
		}
		switch mode {
		case ModeSingle:
			return Single(dates[0])
		case ModeMulti:
			return Multi(dates...)
		case ModeRange:
			if len(dates) == 1 {
				return OpenRange(dates[0])
			}
			return Range(dates[0], dates[1])
		}
	}
	return None()
}

type valueShape int

const (
	shapeNone valueShape = iota
	shapeList
	shapePair
)

// coerceValue flattens any accepted input shape into either a date list or
// a from/to pair. Unparseable strings are dropped from lists; a list left
// empty collapses to the none shape.
func coerceValue(value any) ([]time.Time, DateRange, valueShape) {
	switch v := value.(type) {
	case nil:
		return nil, DateRange{}, shapeNone
	case time.Time:
		if v.IsZero() {
			return nil, DateRange{}, shapeNone
		}
		return []time.Time{Day(v)}, DateRange{}, shapeList
	case *time.Time:
		if v == nil {
			return nil, DateRange{}, shapeNone
		}
		return coerceValue(*v)
	case string:
		if d, ok := parseDayString(v); ok {
			return []time.Time{d}, DateRange{}, shapeList
		}
		return nil, DateRange{}, shapeNone
	case []time.Time:
		days := make([]time.Time, 0, len(v))
		for _, t := range v {
			if !t.IsZero() {
				days = append(days, Day(t))
			}
		}
		return listOrNone(days)
	case []string:
		days := make([]time.Time, 0, len(v))
		for _, s := range v {
			if d, ok := parseDayString(s); ok {
				days = append(days, d)
			}
		}
		return listOrNone(days)
	case []any:
		days := make([]time.Time, 0, len(v))
		for _, e := range v {
			elem, _, shape := coerceValue(e)
			if shape == shapeList && len(elem) > 0 {
				days = append(days, elem[0])
			}
		}
		return listOrNone(days)
	case DateRange:
		if v.From.IsZero() {
			return nil, DateRange{}, shapeNone
		}
		pair := DateRange{From: Day(v.From)}
		if !v.To.IsZero() {
			pair.From, pair.To = orderDays(Day(v.From), Day(v.To))
		}
		return nil, pair, shapePair
	case *DateRange:
		if v == nil {
			return nil, DateRange{}, shapeNone
		}
		return coerceValue(*v)
	case Selection:
		return coerceSelection(v)
	case *Selection:
		if v == nil {
			return nil, DateRange{}, shapeNone
		}
		return coerceSelection(*v)
	}
	return nil, DateRange{}, shapeNone
}

// coerceSelection turns an already-canonical selection back into parser
// input, so reconfiguration can re-normalize against a new mode.
func coerceSelection(s Selection) ([]time.Time, DateRange, valueShape) {
	switch s.Kind {
	case KindSingle:
		return []time.Time{Day(s.Date)}, DateRange{}, shapeList
	case KindMulti:
		return listOrNone(sortedUniqueDays(s.Dates))
	case KindRange:
		return nil, DateRange{From: Day(s.From), To: s.To}, shapePair
	}
	return nil, DateRange{}, shapeNone
}

func listOrNone(days []time.Time) ([]time.Time, DateRange, valueShape) {
	if len(days) == 0 {
		return nil, DateRange{}, shapeNone
	}
	return days, DateRange{}, shapeList
}

// parseDayString parses a date string against the accepted layouts,
// returning the Day-normalized result.
func parseDayString(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false
	}
	for _, layout := range parseLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return Day(t), true
		}
	}
	return time.Time{}, false
}
