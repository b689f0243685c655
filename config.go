package daypick

import (
	"strings"
	"time"
)

// ---------------------------------------------------------------------------
// Selection modes and presentation enums
// ---------------------------------------------------------------------------

// Mode selects which Selection variant a provider holds for its lifetime.
type Mode string

const (
	ModeSingle Mode = "single"
	ModeMulti  Mode = "multi"
	ModeRange  Mode = "range"
)

// View selects how many months the day grid renders side by side.
type View string

const (
	View1Month View = "1-month"
	View2Month View = "2-month"
)

// Display-format selectors understood by the Formatter. Any other
// non-empty string is used verbatim as a time layout.
const (
	FormatShort = "short"
	FormatLong  = "long"
)

// ---------------------------------------------------------------------------
// Resolved configuration
// ---------------------------------------------------------------------------

// dayKey identifies a calendar day independent of location.
type dayKey struct {
	y int
	m time.Month
	d int
}

func keyOf(t time.Time) dayKey {
	y, m, d := t.Date()
	return dayKey{y, m, d}
}

// Config is the complete, resolved configuration consumed by the engine
// and its collaborators. It is immutable once resolved; reconfiguration
// replaces it wholesale.
type Config struct {
	AnchorVariant       string
	BlockedDates        []time.Time
	Confirmation        bool
	ContiguousSelection bool
	DateFormat          string
	DimWeekends         bool
	MinDate             time.Time // zero means unbounded
	MaxDate             time.Time // zero means unbounded
	Placeholder         string
	RangeIncrement      int
	SelectionMode       Mode
	View                View
	WeekStartsOn        time.Weekday

	blocked map[dayKey]struct{}
}

// Blocked reports whether d is one of the configured blocked dates.
func (c Config) Blocked(d time.Time) bool {
	_, ok := c.blocked[keyOf(d)]
	return ok
}

// Options is the partial form of Config supplied by callers. Zero-valued
// fields inherit the corresponding default. All boolean options default
// to false, so a zero field and an explicit false merge identically.
type Options struct {
	AnchorVariant       string
	BlockedDates        []time.Time
	Confirmation        bool
	ContiguousSelection bool
	DateFormat          string
	DimWeekends         bool
	MinDate             time.Time
	MaxDate             time.Time
	Placeholder         string
	RangeIncrement      int
	SelectionMode       Mode
	View                View
	WeekStartsOn        string // "Sunday" or "Monday"
}

// DefaultConfig returns the fixed defaults every option set merges over.
func DefaultConfig() Config {
	return Config{
		AnchorVariant:  "button",
		DateFormat:     FormatShort,
		Placeholder:    "Select a Date...",
		RangeIncrement: 1,
		SelectionMode:  ModeSingle,
		View:           View2Month,
		WeekStartsOn:   time.Sunday,
	}
}

// Resolve merges opts over DefaultConfig one recognized field at a time,
// normalizing enumerated values as it goes. Unrecognized enum values fall
// back to the default rather than erroring; the picker must always start
// with a complete configuration.
func Resolve(opts Options) Config {
	cfg := DefaultConfig()

	if strings.TrimSpace(opts.AnchorVariant) != "" {
		cfg.AnchorVariant = strings.TrimSpace(opts.AnchorVariant)
	}
	if len(opts.BlockedDates) > 0 {
		cfg.BlockedDates = sortedUniqueDays(opts.BlockedDates)
	}
	cfg.Confirmation = opts.Confirmation
	cfg.ContiguousSelection = opts.ContiguousSelection
	if strings.TrimSpace(opts.DateFormat) != "" {
		cfg.DateFormat = strings.TrimSpace(opts.DateFormat)
	}
	cfg.DimWeekends = opts.DimWeekends
	if !opts.MinDate.IsZero() {
		cfg.MinDate = Day(opts.MinDate)
	}
	if !opts.MaxDate.IsZero() {
		cfg.MaxDate = Day(opts.MaxDate)
	}
	if opts.Placeholder != "" {
		cfg.Placeholder = opts.Placeholder
	}
	if opts.RangeIncrement > 0 {
		cfg.RangeIncrement = opts.RangeIncrement
	}
	switch Mode(strings.ToLower(string(opts.SelectionMode))) {
	case ModeSingle, ModeMulti, ModeRange:
		cfg.SelectionMode = Mode(strings.ToLower(string(opts.SelectionMode)))
	}
	switch View(strings.ToLower(string(opts.View))) {
	case View1Month, View2Month:
		cfg.View = View(strings.ToLower(string(opts.View)))
	}
	switch strings.ToLower(strings.TrimSpace(opts.WeekStartsOn)) {
	case "monday":
		cfg.WeekStartsOn = time.Monday
	default:
		cfg.WeekStartsOn = time.Sunday
	}

	cfg.blocked = make(map[dayKey]struct{}, len(cfg.BlockedDates))
	for _, d := range cfg.BlockedDates {
		cfg.blocked[keyOf(d)] = struct{}{}
	}
	return cfg
}
