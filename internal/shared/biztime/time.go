// Package biztime provides utilities for firm timezone calculations.
// All storage and transport use UTC. The firm timezone is only used for
// calculating local calendar-date boundaries.
//
// Design principles:
// - All time storage is in UTC
// - Day boundaries are computed in the firm timezone first, then converted to UTC for queries
// - Implicit Local timezone is prohibited
package biztime

import (
	"fmt"
	"sync"
	"time"
)

const (
	// DefaultTimezone is the default firm timezone.
	DefaultTimezone = "Africa/Johannesburg"
)

var (
	firmLocation     *time.Location
	firmLocationOnce sync.Once
	initErr          error
)

// Init initializes the firm timezone. Should be called once at startup.
// If tz is empty, DefaultTimezone is used.
func Init(tz string) error {
	firmLocationOnce.Do(func() {
		if tz == "" {
			tz = DefaultTimezone
		}
		firmLocation, initErr = time.LoadLocation(tz)
	})
	return initErr
}

// MustInit initializes the firm timezone and panics on error.
func MustInit(tz string) {
	if err := Init(tz); err != nil {
		panic(fmt.Sprintf("failed to initialize firm timezone %q: %v", tz, err))
	}
}

// Location returns the firm timezone location, auto-initializing with the
// default timezone if Init was never called.
func Location() *time.Location {
	if firmLocation == nil {
		if err := Init(""); err != nil {
			panic(fmt.Sprintf("biztime: failed to auto-initialize with default timezone: %v", err))
		}
	}
	return firmLocation
}

// NowUTC returns current time in UTC.
func NowUTC() time.Time {
	return time.Now().UTC()
}

// Window is an inclusive [Start, End] timestamp range in UTC.
type Window struct {
	Start time.Time
	End   time.Time
}

// Contains reports whether t falls inside the window, boundaries included.
func (w Window) Contains(t time.Time) bool {
	return !t.Before(w.Start) && !t.After(w.End)
}

// DayWindow returns the inclusive day window for t's local calendar date in
// the firm timezone: [00:00:00, 23:59:59.999999999] local, expressed in UTC.
func DayWindow(t time.Time) Window {
	return DayWindowIn(t, Location())
}

// DayWindowIn is DayWindow for an explicit location. The scheduler trigger and
// the window must use the same location to avoid boundary skew.
func DayWindowIn(t time.Time, loc *time.Location) Window {
	local := t.In(loc)
	start := time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, loc)
	end := time.Date(local.Year(), local.Month(), local.Day(), 23, 59, 59, 999999999, loc)
	return Window{Start: start.UTC(), End: end.UTC()}
}

// StartOfDayUTC returns the start of day (00:00:00) in the firm timezone, converted to UTC.
func StartOfDayUTC(t time.Time) time.Time {
	return DayWindow(t).Start
}

// EndOfDayUTC returns the end of day (23:59:59.999999999) in the firm timezone, converted to UTC.
func EndOfDayUTC(t time.Time) time.Time {
	return DayWindow(t).End
}

// ToFirmTimezone converts a UTC time to the firm timezone for display.
func ToFirmTimezone(t time.Time) time.Time {
	return t.In(Location())
}

// ParseDateInFirmTimezone parses a date string (YYYY-MM-DD) as firm timezone
// midnight, then returns the UTC equivalent.
func ParseDateInFirmTimezone(dateStr string) (time.Time, error) {
	t, err := time.ParseInLocation("2006-01-02", dateStr, Location())
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date format %q: %w", dateStr, err)
	}
	return t.UTC(), nil
}

// FormatInFirmTimezone formats a UTC time as a string in the firm timezone.
func FormatInFirmTimezone(t time.Time, layout string) string {
	return t.In(Location()).Format(layout)
}
