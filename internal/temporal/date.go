// Package temporal implements the date/duration arithmetic the unroller uses
// to enumerate cycle points and to evaluate when-guards (spec §4.1). It has
// no dependency on the rest of the graph model.
package temporal

import (
	"fmt"
	"time"
)

// dateLayout is the ISO 8601 profile this package accepts: no timezone, no
// sub-minute resolution (spec §3: "absolute instant at minute resolution").
const dateLayout = "2006-01-02T15:04"

// Date is an absolute instant at minute resolution, with no timezone.
type Date struct {
	t time.Time
}

// ParseDate parses an ISO 8601 date-time string (YYYY-MM-DDTHH:MM), or the
// shorter YYYY-MM-DD date-only form, truncating to minute resolution.
func ParseDate(s string) (Date, error) {
	if t, err := time.Parse(dateLayout, s); err == nil {
		return Date{t: t}, nil
	}
	if t, err := time.Parse("2006-01-02", s); err == nil {
		return Date{t: t}, nil
	}
	return Date{}, fmt.Errorf("temporal: invalid date %q, want ISO 8601 at minute resolution", s)
}

// NewDate constructs a Date directly from calendar fields, truncated to
// minute resolution.
func NewDate(year int, month time.Month, day, hour, minute int) Date {
	return Date{t: time.Date(year, month, day, hour, minute, 0, 0, time.UTC)}
}

// String renders the date in the canonical layout this package parses.
func (d Date) String() string {
	return d.t.Format(dateLayout)
}

// Equal reports whether two dates denote the same instant.
func (d Date) Equal(other Date) bool {
	return d.t.Equal(other.t)
}

// Before reports whether d occurs strictly before other.
func (d Date) Before(other Date) bool {
	return d.t.Before(other.t)
}

// After reports whether d occurs strictly after other.
func (d Date) After(other Date) bool {
	return d.t.After(other.t)
}

// InHalfOpenRange reports whether d lies in [start, stop), per spec §4.1.
func (d Date) InHalfOpenRange(start, stop Date) bool {
	return !d.Before(start) && d.Before(stop)
}

// Add advances the date by dur using calendar arithmetic (spec §4.1): year
// and month fields advance first and clamp to the target month's last day if
// the original day doesn't exist there; hours and minutes then apply as a
// plain time offset.
func (d Date) Add(dur Duration) Date {
	base := d.t.AddDate(0, 0, 0) // copy
	if dur.Years != 0 || dur.Months != 0 {
		base = addCalendarMonths(base, dur.Years*12+dur.Months)
	}
	base = base.Add(time.Duration(dur.Hours)*time.Hour + time.Duration(dur.Minutes)*time.Minute)
	return Date{t: base}
}

// Sub returns the signed duration equivalent needed to walk from other to d,
// expressed purely in hours+minutes (used only for diagnostics; month-level
// lags are always applied via Add with a negative Duration, never inferred
// from two dates, since month length is ambiguous in general).
func (d Date) Sub(other Date) time.Duration {
	return d.t.Sub(other.t)
}

// addCalendarMonths advances t by n months, clamping the day-of-month to the
// last valid day of the resulting month when the original day overflows it
// (e.g. Jan 31 + 1 month -> Feb 28/29, never Mar 3).
func addCalendarMonths(t time.Time, n int) time.Time {
	year, month, day := t.Date()
	hour, minute, sec := t.Clock()

	totalMonths := int(month) - 1 + n
	targetYear := year + totalMonths/12
	targetMonth := totalMonths % 12
	if targetMonth < 0 {
		targetMonth += 12
		targetYear--
	}
	targetMonth++ // back to 1-indexed time.Month

	lastDay := daysInMonth(targetYear, time.Month(targetMonth))
	if day > lastDay {
		day = lastDay
	}
	return time.Date(targetYear, time.Month(targetMonth), day, hour, minute, sec, 0, t.Location())
}

func daysInMonth(year int, month time.Month) int {
	// Day 0 of the following month is the last day of this one.
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}
