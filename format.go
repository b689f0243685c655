package daypick

import (
	"fmt"
	"strings"
)

// Literal degraded outputs for display-layer mismatches. Formatting never
// fails hard; a wrong shape or mode renders as one of these strings.
const (
	InvalidSelection     = "Invalid Selection"
	InvalidConfiguration = "Invalid Configuration"
)

// multiSummaryThreshold is the largest multi selection rendered date by
// date; anything longer collapses to a "<n> Selected" summary.
const multiSummaryThreshold = 3

// Format renders a selection to its display string per the configured
// date format and selection mode.
func Format(sel Selection, cfg Config) string {
	if sel.Kind == KindNone {
		return cfg.Placeholder
	}
	layout := resolveLayout(cfg.DateFormat)

	switch cfg.SelectionMode {
	case ModeSingle:
		if sel.Kind != KindSingle {
			return InvalidSelection
		}
		return sel.Date.Format(layout)

	case ModeMulti:
		// A lone date coerces; anything else is a shape mismatch.
		if sel.Kind == KindSingle {
			return sel.Date.Format(layout)
		}
		if sel.Kind != KindMulti {
			return InvalidSelection
		}
		if len(sel.Dates) > multiSummaryThreshold {
			return fmt.Sprintf("%d Selected", len(sel.Dates))
		}
		parts := make([]string, len(sel.Dates))
		for i, d := range sel.Dates {
			parts[i] = d.Format(layout)
		}
		return strings.Join(parts, ", ")

	case ModeRange:
		if sel.Kind != KindRange {
			return InvalidSelection
		}
		from := sel.From.Format(layout)
		to := ""
		if !sel.To.IsZero() {
			to = sel.To.Format(layout)
		}
		return from + " - " + to
	}
	return InvalidConfiguration
}

// resolveLayout maps the configured dateFormat to a time layout: the two
// named selectors, or any other non-empty string verbatim.
func resolveLayout(format string) string {
	switch format {
	case FormatShort, "":
		return "Jan 2"
	case FormatLong:
		return "Jan 2, 2006"
	}
	return format
}
