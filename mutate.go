package daypick

import "time"

// ---------------------------------------------------------------------------
// Per-mode transition rules
// ---------------------------------------------------------------------------

// OnSelection applies the day-chosen transition for the configured mode.
//
//	single: replace the selection; auto-commit unless confirmation is on.
//	multi:  toggle membership; commits are always driven externally.
//	range:  first choice opens a range (with a collapsed hover preview),
//	        second choice closes it with endpoints ordered chronologically
//	        regardless of click order, then auto-commits unless
//	        confirmation is on.
func (p *Provider) OnSelection(d time.Time) {
	day := Day(d)
	switch p.cfg.SelectionMode {
	case ModeSingle:
		p.selection = Single(day)
		if !p.cfg.Confirmation {
			p.SaveValue()
		}
	case ModeMulti:
		p.selection = toggleDay(p.selection, day)
	case ModeRange:
		if p.selection.Open() {
			p.selection = Range(p.selection.From, day)
			p.hover = nil
			if !p.cfg.Confirmation {
				p.SaveValue()
			}
			return
		}
		// Idle or already closed: start over with an open range.
		p.selection = OpenRange(day)
		p.hover = &HoverRange{From: day, To: day}
	}
}

// OnDayFocus recomputes the hover preview while a range is awaiting its
// second endpoint, ordering the candidate the same way closing would.
// Outside an open range, focus is meaningless to the engine.
func (p *Provider) OnDayFocus(d time.Time) {
	if p.cfg.SelectionMode != ModeRange || !p.selection.Open() {
		return
	}
	from, to := orderDays(p.selection.From, Day(d))
	p.hover = &HoverRange{From: from, To: to}
}

// OnDayBlur collapses the hover preview back to the open anchor, so a
// stale candidate endpoint never outlives focus. Without an open range
// there is nothing to collapse.
func (p *Provider) OnDayBlur(d time.Time) {
	if p.cfg.SelectionMode != ModeRange || !p.selection.Open() || p.hover == nil {
		return
	}
	p.hover = &HoverRange{From: p.selection.From, To: p.selection.From}
}

// toggleDay removes day from a multi selection if present, inserts it
// otherwise. The result keeps the strictly-ascending no-duplicates
// invariant; an emptied set canonicalizes to None.
func toggleDay(s Selection, day time.Time) Selection {
	if s.Kind != KindMulti {
		// None (or a foreign shape left by reconfiguration) starts a
		// fresh single-member set.
		return Multi(day)
	}
	if s.Contains(day) {
		kept := make([]time.Time, 0, len(s.Dates)-1)
		for _, m := range s.Dates {
			if !SameDay(m, day) {
				kept = append(kept, m)
			}
		}
		return Multi(kept...)
	}
	return Multi(append(append([]time.Time(nil), s.Dates...), day)...)
}
