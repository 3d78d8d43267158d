// Package schedule implements the forgetting-curve reminder timeline and the
// night-window conflict resolution that keeps reminders out of sleeping hours.
package schedule

import (
	"strings"
	"time"
)

// Default night window bounds in local wall-clock hours.
const (
	// DefaultNightStartHour is when the night window opens (22:00 / 10 PM).
	DefaultNightStartHour = 22
	// DefaultMorningWakeHour is when the night window closes (07:00 / 7 AM).
	DefaultMorningWakeHour = 7
)

// NightWindow is the fixed nightly interval [NightStartHour, MorningWakeHour)
// during which reminders are considered disruptive. All checks use the
// wall-clock hour of the window's location.
type NightWindow struct {
	Location        *time.Location
	NightStartHour  int
	MorningWakeHour int
}

// NewNightWindow creates a night window with the given bounds. A nil location
// defaults to the process-local timezone.
func NewNightWindow(nightStart, morningWake int, loc *time.Location) NightWindow {
	if loc == nil {
		loc = time.Local
	}
	return NightWindow{
		Location:        loc,
		NightStartHour:  nightStart,
		MorningWakeHour: morningWake,
	}
}

// DefaultNightWindow returns the standard 22:00-07:00 window in the local timezone.
func DefaultNightWindow() NightWindow {
	return NewNightWindow(DefaultNightStartHour, DefaultMorningWakeHour, time.Local)
}

// IsNight reports whether t falls within the night window. The window wraps
// midnight: hour >= NightStartHour OR hour < MorningWakeHour.
func (w NightWindow) IsNight(t time.Time) bool {
	hour := t.In(w.Location).Hour()
	return hour >= w.NightStartHour || hour < w.MorningWakeHour
}

// NextMorningAfter returns the earliest wake time strictly after t. If t's
// hour is before the wake hour, that is the same calendar day; otherwise the
// following day. A t exactly at the wake time rolls to the next day.
func (w NightWindow) NextMorningAfter(t time.Time) time.Time {
	local := t.In(w.Location)
	morning := w.SameDayMorning(local)
	if local.Hour() < w.MorningWakeHour {
		return morning
	}
	return morning.AddDate(0, 0, 1)
}

// SameDayMorning returns the wake time on t's own calendar day, regardless of
// t's hour. Used by postponement policies that do not need strict-after
// semantics.
func (w NightWindow) SameDayMorning(t time.Time) time.Time {
	local := t.In(w.Location)
	return time.Date(local.Year(), local.Month(), local.Day(), w.MorningWakeHour, 0, 0, 0, w.Location)
}

// Region maps the window's timezone to a coarse continent-level label for
// user-facing messaging. It never fails: unmapped zones fall back to a generic
// label. The label has no effect on scheduling decisions.
func (w NightWindow) Region() string {
	name := w.Location.String()

	switch {
	case strings.HasPrefix(name, "Europe/"):
		return "Europe"
	case strings.HasPrefix(name, "America/"):
		if isNorthAmericanZone(name) {
			return "North America"
		}
		return "South America"
	case strings.HasPrefix(name, "Asia/"):
		return "Asia"
	case strings.HasPrefix(name, "Africa/"):
		return "Africa"
	case strings.HasPrefix(name, "Australia/"), strings.HasPrefix(name, "Pacific/"):
		return "Oceania"
	default:
		return "your region"
	}
}

var northAmericanZones = []string{
	"New_York", "Chicago", "Denver", "Los_Angeles", "Toronto", "Vancouver",
	"Mexico_City", "Phoenix", "Anchorage", "Halifax", "Winnipeg",
}

func isNorthAmericanZone(name string) bool {
	for _, city := range northAmericanZones {
		if strings.HasSuffix(name, "/"+city) {
			return true
		}
	}
	return false
}
