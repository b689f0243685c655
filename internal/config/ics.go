package config

import (
	"bytes"
	"fmt"
	"os"
	"strings"
	"time"

	ical "github.com/arran4/golang-ical"
	"github.com/teambition/rrule-go"

	"github.com/jask/daypick"
)

// icsTimeLayouts covers the DTSTART/DTEND/EXDATE value shapes found in
// holiday feeds: UTC instants, floating local times, and all-day dates.
var icsTimeLayouts = []string{
	"20060102T150405Z",
	"20060102T150405",
	"20060102",
}

// BlockedDaysFromICS reads the ICS file at path and returns one entry per
// calendar day covered by an event occurrence inside [start, end].
// Recurring events are expanded through their RRULE with EXDATE honored;
// multi-day events contribute every day they span, with an exclusive
// DTEND as RFC 5545 prescribes for all-day events. Duplicate days are
// fine, the option resolver dedupes.
func BlockedDaysFromICS(path string, start, end time.Time) ([]time.Time, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cal, err := ical.ParseCalendar(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("parse calendar: %w", err)
	}

	start, end = daypick.Day(start), daypick.Day(end)
	var days []time.Time
	for _, ve := range cal.Events() {
		occ, err := eventDays(ve, start, end)
		if err != nil {
			return nil, fmt.Errorf("event %s: %w", eventUID(ve), err)
		}
		days = append(days, occ...)
	}
	return days, nil
}

func eventDays(ve *ical.VEvent, start, end time.Time) ([]time.Time, error) {
	dtstart := ve.GetProperty(ical.ComponentPropertyDtStart)
	if dtstart == nil {
		return nil, nil
	}
	eventStart, err := parseICSTime(dtstart.Value)
	if err != nil {
		return nil, fmt.Errorf("dtstart: %w", err)
	}

	// Duration in whole days, from an exclusive DTEND when present.
	span := 1
	if dtend := ve.GetProperty(ical.ComponentPropertyDtEnd); dtend != nil {
		if eventEnd, err := parseICSTime(dtend.Value); err == nil {
			if n := daysBetween(eventStart, eventEnd); n > span {
				span = n
			}
		}
	}

	if prop := ve.GetProperty(ical.ComponentPropertyRrule); prop != nil {
		occurrences, err := expandRecurrence(ve, prop.Value, eventStart, start, end)
		if err != nil {
			return nil, err
		}
		var days []time.Time
		for _, occ := range occurrences {
			days = append(days, spanDays(occ, span)...)
		}
		return days, nil
	}

	first := daypick.Day(eventStart)
	if first.After(end) || first.AddDate(0, 0, span-1).Before(start) {
		return nil, nil
	}
	return spanDays(first, span), nil
}

// expandRecurrence evaluates the event's RRULE inside [start, end],
// removing any EXDATE occurrences.
func expandRecurrence(ve *ical.VEvent, raw string, eventStart, start, end time.Time) ([]time.Time, error) {
	r, err := rrule.StrToRRule(raw)
	if err != nil {
		return nil, fmt.Errorf("rrule %q: %w", raw, err)
	}
	r.DTStart(eventStart)

	set := rrule.Set{}
	set.RRule(r)
	for _, prop := range ve.GetProperties(ical.ComponentPropertyExdate) {
		for _, v := range strings.Split(prop.Value, ",") {
			ex, err := parseICSTime(strings.TrimSpace(v))
			if err != nil {
				continue
			}
			set.ExDate(ex)
		}
	}

	occurrences := set.Between(start, end.AddDate(0, 0, 1), true)
	days := make([]time.Time, 0, len(occurrences))
	for _, t := range occurrences {
		days = append(days, daypick.Day(t))
	}
	return days, nil
}

func eventUID(ve *ical.VEvent) string {
	if p := ve.GetProperty(ical.ComponentPropertyUniqueId); p != nil {
		return p.Value
	}
	return "(no uid)"
}

func parseICSTime(value string) (time.Time, error) {
	for _, layout := range icsTimeLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized time %q", value)
}

func daysBetween(from, to time.Time) int {
	return int(daypick.Day(to).Sub(daypick.Day(from)) / (24 * time.Hour))
}

func spanDays(first time.Time, span int) []time.Time {
	days := make([]time.Time, 0, span)
	for i := 0; i < span; i++ {
		days = append(days, first.AddDate(0, 0, i))
	}
	return days
}
