package temporal

import (
	"fmt"
	"regexp"
	"strconv"
)

// Duration is an ISO 8601 duration restricted to whole months and years
// (spec §3), e.g. "P2M", "P1Y", "-P6M". Hours/minutes are carried too so the
// zero-length ("PT0M") and sub-day lags used in tests compose cleanly, but
// the front end is expected to supply only month/year granularity per the
// spec's stated restriction.
type Duration struct {
	Years, Months, Hours, Minutes int
}

// durationPattern matches a signed ISO 8601 duration with a date part
// (years/months/days) and an optional time part (hours/minutes/seconds).
// Days and seconds are accepted but must be zero: this package only
// implements the month/year-granularity subset the spec requires.
var durationPattern = regexp.MustCompile(
	`^(-)?P(?:(\d+)Y)?(?:(\d+)M)?(?:(\d+)D)?(?:T(?:(\d+)H)?(?:(\d+)M)?(?:(\d+)S)?)?$`,
)

// ParseDuration parses a restricted ISO 8601 duration string. A leading "-"
// negates every field, matching the source format's convention for lags
// into the past (e.g. "-P2M").
func ParseDuration(s string) (Duration, error) {
	m := durationPattern.FindStringSubmatch(s)
	if m == nil || s == "P" || s == "-P" {
		return Duration{}, fmt.Errorf("temporal: invalid duration %q", s)
	}

	negative := m[1] == "-"
	years := atoiOr0(m[2])
	months := atoiOr0(m[3])
	days := atoiOr0(m[4])
	hours := atoiOr0(m[5])
	minutes := atoiOr0(m[6])
	seconds := atoiOr0(m[7])

	if days != 0 || seconds != 0 {
		return Duration{}, fmt.Errorf("temporal: duration %q uses day/second granularity, only years/months/hours/minutes are supported", s)
	}

	d := Duration{Years: years, Months: months, Hours: hours, Minutes: minutes}
	if negative {
		d = d.Negate()
	}
	return d, nil
}

func atoiOr0(s string) int {
	if s == "" {
		return 0
	}
	n, _ := strconv.Atoi(s)
	return n
}

// Negate returns the duration with every field sign-flipped.
func (d Duration) Negate() Duration {
	return Duration{Years: -d.Years, Months: -d.Months, Hours: -d.Hours, Minutes: -d.Minutes}
}

// IsZero reports whether the duration carries no offset at all — the
// "empty period (no cycling block)" case of spec §4.1.
func (d Duration) IsZero() bool {
	return d == Duration{}
}

// IsNegative reports whether the duration points into the past: at least one
// field is negative and no field is positive. Mixed signs are not produced by
// ParseDuration (a leading "-" negates the whole literal) but hand
// construction could create one; a mixed-sign duration is not negative.
func (d Duration) IsNegative() bool {
	return (d.Years < 0 || d.Months < 0 || d.Hours < 0 || d.Minutes < 0) &&
		d.Years <= 0 && d.Months <= 0 && d.Hours <= 0 && d.Minutes <= 0
}

// String renders the duration back to its ISO 8601 form.
func (d Duration) String() string {
	if d.IsZero() {
		return "PT0M"
	}
	sign := ""
	y, mo, h, mi := d.Years, d.Months, d.Hours, d.Minutes
	if y <= 0 && mo <= 0 && h <= 0 && mi <= 0 && (y != 0 || mo != 0 || h != 0 || mi != 0) {
		sign = "-"
		y, mo, h, mi = -y, -mo, -h, -mi
	}
	out := sign + "P"
	if y != 0 {
		out += fmt.Sprintf("%dY", y)
	}
	if mo != 0 {
		out += fmt.Sprintf("%dM", mo)
	}
	if h != 0 || mi != 0 {
		out += "T"
		if h != 0 {
			out += fmt.Sprintf("%dH", h)
		}
		if mi != 0 {
			out += fmt.Sprintf("%dM", mi)
		}
	}
	return out
}
