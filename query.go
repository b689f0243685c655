package daypick

import "time"

// DayStatus describes a day's membership in the displayed selection.
type DayStatus int

const (
	StatusNone DayStatus = iota
	StatusSelected
	StatusRangeStart
	StatusRangeMiddle
	StatusRangeEnd
)

func (s DayStatus) String() string {
	switch s {
	case StatusNone:
		return "none"
	case StatusSelected:
		return "selected"
	case StatusRangeStart:
		return "start"
	case StatusRangeMiddle:
		return "middle"
	case StatusRangeEnd:
		return "end"
	}
	return "unknown"
}

// DayInfo is the per-day derivation read by the day-grid renderer.
type DayInfo struct {
	Blocked  bool
	Disabled bool
	Status   DayStatus
}

// Query derives a day's blocked/disabled flags and its membership status.
// While a hover preview is active it takes display precedence over the
// selection, so the grid shows the candidate range under the cursor.
func (p *Provider) Query(d time.Time) DayInfo {
	day := Day(d)
	info := DayInfo{
		Blocked:  p.cfg.Blocked(day),
		Disabled: p.disabled(day),
	}

	if p.hover != nil {
		info.Status = rangeStatus(day, p.hover.From, p.hover.To)
		return info
	}

	switch p.selection.Kind {
	case KindSingle, KindMulti:
		if p.selection.Contains(day) {
			info.Status = StatusSelected
		}
	case KindRange:
		info.Status = rangeStatus(day, p.selection.From, p.selection.To)
	}
	return info
}

// disabled reports whether day falls outside the configured min/max bounds.
func (p *Provider) disabled(day time.Time) bool {
	if !p.cfg.MinDate.IsZero() && beforeDay(day, p.cfg.MinDate) {
		return true
	}
	if !p.cfg.MaxDate.IsZero() && afterDay(day, p.cfg.MaxDate) {
		return true
	}
	return false
}

// rangeStatus classifies day against a from/to span: the endpoints win
// over middle, and middle requires strict betweenness. A zero to leaves
// only the start endpoint matchable.
func rangeStatus(day, from, to time.Time) DayStatus {
	if SameDay(day, from) {
		return StatusRangeStart
	}
	if to.IsZero() {
		return StatusNone
	}
	if SameDay(day, to) {
		return StatusRangeEnd
	}
	if afterDay(day, from) && beforeDay(day, to) {
		return StatusRangeMiddle
	}
	return StatusNone
}
