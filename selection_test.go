package daypick

import (
	"testing"
	"time"
)

func TestMultiKeepsAscendingUniqueInvariant(t *testing.T) {
	s := Multi(d(2024, time.January, 3), d(2024, time.January, 1), d(2024, time.January, 1))
	if s.Kind != KindMulti {
		t.Fatalf("kind = %v", s.Kind)
	}
	if len(s.Dates) != 2 {
		t.Fatalf("dates = %v, want deduplicated pair", s.Dates)
	}
	for i := 1; i < len(s.Dates); i++ {
		if !beforeDay(s.Dates[i-1], s.Dates[i]) {
			t.Fatalf("dates not strictly ascending: %v", s.Dates)
		}
	}
}

func TestMultiEmptyCanonicalizesToNone(t *testing.T) {
	if s := Multi(); s.Kind != KindNone {
		t.Fatalf("empty multi = %v, want none", s.Kind)
	}
}

func TestRangeOrdersEndpoints(t *testing.T) {
	s := Range(d(2024, time.March, 10), d(2024, time.March, 5))
	if !SameDay(s.From, d(2024, time.March, 5)) || !SameDay(s.To, d(2024, time.March, 10)) {
		t.Fatalf("range = %v..%v, want reordered", s.From, s.To)
	}
}

func TestRangeZeroToIsOpen(t *testing.T) {
	s := Range(d(2024, time.March, 10), time.Time{})
	if !s.Open() {
		t.Fatal("zero to should produce an open range")
	}
	if !SameDay(s.From, d(2024, time.March, 10)) {
		t.Fatalf("from = %v", s.From)
	}
}

func TestSelectionContains(t *testing.T) {
	tests := []struct {
		name string
		sel  Selection
		day  time.Time
		want bool
	}{
		{"single match", Single(d(2024, time.May, 1)), time.Date(2024, time.May, 1, 9, 0, 0, 0, time.UTC), true},
		{"single miss", Single(d(2024, time.May, 1)), d(2024, time.May, 2), false},
		{"multi member", Multi(d(2024, time.May, 1), d(2024, time.May, 3)), d(2024, time.May, 3), true},
		{"multi non-member", Multi(d(2024, time.May, 1), d(2024, time.May, 3)), d(2024, time.May, 2), false},
		{"range interior", Range(d(2024, time.May, 1), d(2024, time.May, 5)), d(2024, time.May, 3), true},
		{"range endpoint", Range(d(2024, time.May, 1), d(2024, time.May, 5)), d(2024, time.May, 5), true},
		{"range outside", Range(d(2024, time.May, 1), d(2024, time.May, 5)), d(2024, time.May, 6), false},
		{"open range anchor only", OpenRange(d(2024, time.May, 1)), d(2024, time.May, 2), false},
		{"none", None(), d(2024, time.May, 1), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.sel.Contains(tt.day); got != tt.want {
				t.Fatalf("Contains = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestSelectionEqual(t *testing.T) {
	loc := time.FixedZone("plus10", 10*60*60)
	tests := []struct {
		name string
		a, b Selection
		want bool
	}{
		{"none equal", None(), None(), true},
		{"kind mismatch", Single(d(2024, time.May, 1)), Multi(d(2024, time.May, 1)), false},
		{"single same day different zone", Single(d(2024, time.May, 1)), Single(time.Date(2024, time.May, 1, 0, 0, 0, 0, loc)), true},
		{"multi equal", Multi(d(2024, time.May, 2), d(2024, time.May, 1)), Multi(d(2024, time.May, 1), d(2024, time.May, 2)), true},
		{"multi length mismatch", Multi(d(2024, time.May, 1)), Multi(d(2024, time.May, 1), d(2024, time.May, 2)), false},
		{"range equal after reorder", Range(d(2024, time.May, 5), d(2024, time.May, 1)), Range(d(2024, time.May, 1), d(2024, time.May, 5)), true},
		{"open vs closed", OpenRange(d(2024, time.May, 1)), Range(d(2024, time.May, 1), d(2024, time.May, 1)), false},
		{"open equal", OpenRange(d(2024, time.May, 1)), OpenRange(d(2024, time.May, 1)), true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.a.Equal(tt.b); got != tt.want {
				t.Fatalf("Equal = %v, want %v", got, tt.want)
			}
		})
	}
}
