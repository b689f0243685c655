package daypick

import (
	"testing"
	"time"
)

func TestParseValueCoercionTable(t *testing.T) {
	mar5 := d(2024, time.March, 5)
	mar10 := d(2024, time.March, 10)

	tests := []struct {
		name  string
		value any
		mode  Mode
		want  Selection
	}{
		// single date
		{"date/single", mar10, ModeSingle, Single(mar10)},
		{"date/multi", mar10, ModeMulti, Multi(mar10)},
		{"date/range", mar10, ModeRange, OpenRange(mar10)},

		// array of dates
		{"array/single takes first", []time.Time{mar10, mar5}, ModeSingle, Single(mar10)},
		{"array/multi sorts and dedupes", []time.Time{mar10, mar5, mar5}, ModeMulti, Multi(mar5, mar10)},
		{"array/range pairs first two", []time.Time{mar10, mar5}, ModeRange, Range(mar5, mar10)},
		{"array/range single element opens", []time.Time{mar10}, ModeRange, OpenRange(mar10)},

		// from/to pair
		{"pair/single takes from", DateRange{From: mar5, To: mar10}, ModeSingle, Single(mar5)},
		{"pair/multi sorts", DateRange{From: mar10, To: mar5}, ModeMulti, Multi(mar5, mar10)},
		{"pair/range normalizes", DateRange{From: mar10, To: mar5}, ModeRange, Range(mar5, mar10)},
		{"pair/open range", DateRange{From: mar10}, ModeRange, OpenRange(mar10)},

		// absent
		{"nil/single", nil, ModeSingle, None()},
		{"nil/multi", nil, ModeMulti, None()},
		{"nil/range", nil, ModeRange, None()},
		{"zero pair", DateRange{}, ModeRange, None()},
		{"empty array", []time.Time{}, ModeMulti, None()},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ParseValue(tt.value, tt.mode)
			if !got.Equal(tt.want) {
				t.Fatalf("ParseValue = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestParseValueStrings(t *testing.T) {
	tests := []struct {
		name  string
		value any
		mode  Mode
		want  Selection
	}{
		{"iso string", "2024-03-10", ModeSingle, Single(d(2024, time.March, 10))},
		{"rfc3339 string", "2024-03-10T08:00:00Z", ModeSingle, Single(d(2024, time.March, 10))},
		{"string list", []string{"2024-01-03", "2024-01-01", "2024-01-01"}, ModeMulti, Multi(d(2024, time.January, 1), d(2024, time.January, 3))},
		{"mixed list", []any{"2024-01-03", d(2024, time.January, 1)}, ModeMulti, Multi(d(2024, time.January, 1), d(2024, time.January, 3))},
		{"garbage string", "next tuesday", ModeSingle, None()},
		{"garbage entries dropped", []string{"nope", "2024-01-03"}, ModeMulti, Multi(d(2024, time.January, 3))},
		{"all garbage", []string{"nope", "also nope"}, ModeMulti, None()},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ParseValue(tt.value, tt.mode)
			if !got.Equal(tt.want) {
				t.Fatalf("ParseValue = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestParseValueUnrecognizedShapes(t *testing.T) {
	for _, v := range []any{42, 3.14, true, map[string]string{"from": "2024-01-01"}, struct{}{}} {
		if got := ParseValue(v, ModeSingle); got.Kind != KindNone {
			t.Fatalf("ParseValue(%T) = %+v, want none", v, got)
		}
	}
}

func TestParseValueIsIdempotent(t *testing.T) {
	mar5 := d(2024, time.March, 5)
	mar10 := d(2024, time.March, 10)
	values := []any{
		mar10,
		"2024-03-10",
		[]time.Time{mar10, mar5},
		[]string{"2024-03-05", "2024-03-10"},
		DateRange{From: mar10, To: mar5},
		DateRange{From: mar10},
		nil,
	}
	modes := []Mode{ModeSingle, ModeMulti, ModeRange}
	for _, mode := range modes {
		for _, v := range values {
			once := ParseValue(v, mode)
			twice := ParseValue(once, mode)
			if !twice.Equal(once) {
				t.Fatalf("mode %s value %v: parse(parse(v)) = %+v, want %+v", mode, v, twice, once)
			}
		}
	}
}

func TestParseValueDoesNotMutateInput(t *testing.T) {
	in := []time.Time{d(2024, time.March, 10), d(2024, time.March, 5)}
	ParseValue(in, ModeMulti)
	if !SameDay(in[0], d(2024, time.March, 10)) || !SameDay(in[1], d(2024, time.March, 5)) {
		t.Fatalf("input reordered: %v", in)
	}
}
