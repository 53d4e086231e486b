package temporal

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDate(t *testing.T) {
	t.Run("full ISO 8601", func(t *testing.T) {
		d, err := ParseDate("2026-01-31T12:30")
		require.NoError(t, err)
		assert.Equal(t, "2026-01-31T12:30", d.String())
	})

	t.Run("date only", func(t *testing.T) {
		d, err := ParseDate("2026-01-31")
		require.NoError(t, err)
		assert.Equal(t, "2026-01-31T00:00", d.String())
	})

	t.Run("invalid", func(t *testing.T) {
		_, err := ParseDate("not-a-date")
		require.Error(t, err)
	})
}

func TestDate_AddCalendarMonths(t *testing.T) {
	testCases := []struct {
		name     string
		date     string
		duration Duration
		want     string
	}{
		{"simple add", "2026-01-01T00:00", Duration{Months: 2}, "2026-03-01T00:00"},
		{"clamp jan31 to feb28", "2026-01-31T00:00", Duration{Months: 1}, "2026-02-28T00:00"},
		{"leap year clamp to feb29", "2024-01-31T00:00", Duration{Months: 1}, "2024-02-29T00:00"},
		{"year rollover", "2026-11-01T00:00", Duration{Months: 2}, "2027-01-01T00:00"},
		{"negative lag", "2026-05-01T00:00", Duration{Months: -2}, "2026-03-01T00:00"},
		{"negative rollover", "2026-01-01T00:00", Duration{Months: -2}, "2025-11-01T00:00"},
		{"years and months combine", "2026-01-01T00:00", Duration{Years: 1, Months: 1}, "2027-02-01T00:00"},
		{"hours and minutes propagate unchanged", "2026-01-01T10:15", Duration{Months: 1, Hours: 1, Minutes: 5}, "2026-02-01T11:20"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			d, err := ParseDate(tc.date)
			require.NoError(t, err)
			got := d.Add(tc.duration)
			assert.Equal(t, tc.want, got.String())
		})
	}
}

func TestDate_InHalfOpenRange(t *testing.T) {
	start, _ := ParseDate("2026-01-01")
	stop, _ := ParseDate("2026-06-01")

	atStart, _ := ParseDate("2026-01-01")
	assert.True(t, atStart.InHalfOpenRange(start, stop), "start is inclusive")

	atStop, _ := ParseDate("2026-06-01")
	assert.False(t, atStop.InHalfOpenRange(start, stop), "stop is exclusive")

	inside, _ := ParseDate("2026-03-15")
	assert.True(t, inside.InHalfOpenRange(start, stop))

	before, _ := ParseDate("2025-12-31")
	assert.False(t, before.InHalfOpenRange(start, stop))
}
