package daypick

import (
	"testing"
	"time"
)

func TestFormatPlaceholderForNone(t *testing.T) {
	cfg := Resolve(Options{Placeholder: "Pick a day"})
	if got := Format(None(), cfg); got != "Pick a day" {
		t.Fatalf("Format(None) = %q", got)
	}
}

func TestFormatSingle(t *testing.T) {
	tests := []struct {
		name   string
		format string
		want   string
	}{
		{"short", FormatShort, "Mar 5"},
		{"long", FormatLong, "Mar 5, 2024"},
		{"custom layout verbatim", "2006-01-02", "2024-03-05"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Resolve(Options{DateFormat: tt.format})
			if got := Format(Single(d(2024, time.March, 5)), cfg); got != tt.want {
				t.Fatalf("Format = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestFormatMulti(t *testing.T) {
	cfg := Resolve(Options{SelectionMode: ModeMulti})

	few := Multi(d(2024, time.January, 3), d(2024, time.January, 1))
	if got := Format(few, cfg); got != "Jan 1, Jan 3" {
		t.Fatalf("Format = %q, want %q", got, "Jan 1, Jan 3")
	}

	many := Multi(
		d(2024, time.January, 1),
		d(2024, time.January, 2),
		d(2024, time.January, 3),
		d(2024, time.January, 4),
	)
	if got := Format(many, cfg); got != "4 Selected" {
		t.Fatalf("Format = %q, want %q", got, "4 Selected")
	}
}

func TestFormatRange(t *testing.T) {
	cfg := Resolve(Options{SelectionMode: ModeRange, DateFormat: FormatLong})

	closed := Range(d(2024, time.March, 5), d(2024, time.March, 10))
	if got := Format(closed, cfg); got != "Mar 5, 2024 - Mar 10, 2024" {
		t.Fatalf("Format = %q", got)
	}

	open := OpenRange(d(2024, time.March, 5))
	if got := Format(open, cfg); got != "Mar 5, 2024 - " {
		t.Fatalf("open range = %q", got)
	}
}

func TestFormatShapeMismatch(t *testing.T) {
	singleCfg := Resolve(Options{SelectionMode: ModeSingle})
	if got := Format(Range(d(2024, time.March, 5), d(2024, time.March, 10)), singleCfg); got != InvalidSelection {
		t.Fatalf("range under single mode = %q, want %q", got, InvalidSelection)
	}

	rangeCfg := Resolve(Options{SelectionMode: ModeRange})
	if got := Format(Multi(d(2024, time.March, 5)), rangeCfg); got != InvalidSelection {
		t.Fatalf("multi under range mode = %q, want %q", got, InvalidSelection)
	}

	// A lone date under multi mode coerces rather than degrading.
	multiCfg := Resolve(Options{SelectionMode: ModeMulti})
	if got := Format(Single(d(2024, time.March, 5)), multiCfg); got != "Mar 5" {
		t.Fatalf("single under multi mode = %q", got)
	}
}

func TestFormatUnrecognizedMode(t *testing.T) {
	cfg := Resolve(Options{})
	cfg.SelectionMode = "triple"
	if got := Format(Single(d(2024, time.March, 5)), cfg); got != InvalidConfiguration {
		t.Fatalf("Format = %q, want %q", got, InvalidConfiguration)
	}
}
