package daypick

import "time"

// ---------------------------------------------------------------------------
// Canonical selection
// ---------------------------------------------------------------------------

// Kind discriminates the Selection variants. Carrying the kind explicitly
// (instead of sniffing which fields are populated) keeps membership checks
// and format dispatch free of structural guessing.
type Kind int

const (
	KindNone Kind = iota
	KindSingle
	KindMulti
	KindRange
)

func (k Kind) String() string {
	switch k {
	case KindNone:
		return "none"
	case KindSingle:
		return "single"
	case KindMulti:
		return "multi"
	case KindRange:
		return "range"
	}
	return "unknown"
}

// Selection is the canonical internal model of a date selection. The active
// variant is fixed by the provider's selection mode; only the fields of the
// tagged variant are meaningful.
//
// Invariants, maintained by the constructors below:
//   - Multi dates are strictly ascending with no duplicate calendar days.
//   - Range endpoints satisfy From <= To whenever To is set; a zero To
//     denotes an open range awaiting its second endpoint.
//   - Every stored date is Day-normalized.
type Selection struct {
	Kind  Kind
	Date  time.Time   // KindSingle
	Dates []time.Time // KindMulti
	From  time.Time   // KindRange
	To    time.Time   // KindRange; zero while the range is open
}

// None is the empty selection.
func None() Selection { return Selection{} }

// Single selects exactly one day.
func Single(d time.Time) Selection {
	return Selection{Kind: KindSingle, Date: Day(d)}
}

// Multi selects a set of days, deduplicated and sorted ascending.
// An empty set canonicalizes to None.
func Multi(dates ...time.Time) Selection {
	days := sortedUniqueDays(dates)
	if len(days) == 0 {
		return None()
	}
	return Selection{Kind: KindMulti, Dates: days}
}

// Range selects the inclusive span between two days, reordering the
// endpoints chronologically. A zero to produces an open range.
func Range(from, to time.Time) Selection {
	if to.IsZero() {
		return OpenRange(from)
	}
	lo, hi := orderDays(Day(from), Day(to))
	return Selection{Kind: KindRange, From: lo, To: hi}
}

// OpenRange starts a range selection awaiting its second endpoint.
func OpenRange(from time.Time) Selection {
	return Selection{Kind: KindRange, From: Day(from)}
}

// Open reports whether s is a range still missing its second endpoint.
func (s Selection) Open() bool {
	return s.Kind == KindRange && s.To.IsZero()
}

// Contains reports whether day d is a member of the selection: equality
// for single, set membership for multi, inclusive span for closed ranges
// and endpoint equality for open ones.
func (s Selection) Contains(d time.Time) bool {
	day := Day(d)
	switch s.Kind {
	case KindSingle:
		return SameDay(day, s.Date)
	case KindMulti:
		for _, m := range s.Dates {
			if SameDay(day, m) {
				return true
			}
		}
	case KindRange:
		if SameDay(day, s.From) {
			return true
		}
		if s.To.IsZero() {
			return false
		}
		return !beforeDay(day, s.From) && !afterDay(day, s.To)
	}
	return false
}

// Equal reports whether two selections describe the same value, comparing
// dates at calendar-day resolution.
func (s Selection) Equal(o Selection) bool {
	if s.Kind != o.Kind {
		return false
	}
	switch s.Kind {
	case KindNone:
		return true
	case KindSingle:
		return SameDay(s.Date, o.Date)
	case KindMulti:
		if len(s.Dates) != len(o.Dates) {
			return false
		}
		for i := range s.Dates {
			if !SameDay(s.Dates[i], o.Dates[i]) {
				return false
			}
		}
		return true
	case KindRange:
		if s.To.IsZero() != o.To.IsZero() {
			return false
		}
		if !SameDay(s.From, o.From) {
			return false
		}
		return s.To.IsZero() || SameDay(s.To, o.To)
	}
	return false
}
