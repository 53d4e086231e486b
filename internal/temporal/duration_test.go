package temporal

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDuration(t *testing.T) {
	testCases := []struct {
		name    string
		in      string
		want    Duration
		wantErr bool
	}{
		{"two months", "P2M", Duration{Months: 2}, false},
		{"one year", "P1Y", Duration{Years: 1}, false},
		{"negative months", "-P6M", Duration{Months: -6}, false},
		{"year and month", "P1Y2M", Duration{Years: 1, Months: 2}, false},
		{"zero", "PT0M", Duration{}, false},
		{"hours and minutes", "PT1H30M", Duration{Hours: 1, Minutes: 30}, false},
		{"day granularity rejected", "P3D", Duration{}, true},
		{"malformed", "P", Duration{}, true},
		{"garbage", "not-a-duration", Duration{}, true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := ParseDuration(tc.in)
			if tc.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestDuration_RoundTrip(t *testing.T) {
	for _, s := range []string{"P2M", "P1Y", "-P6M", "P1Y2M"} {
		d, err := ParseDuration(s)
		require.NoError(t, err)
		assert.Equal(t, s, d.String())
	}
}

func TestDuration_IsZero(t *testing.T) {
	assert.True(t, Duration{}.IsZero())
	assert.False(t, Duration{Months: 1}.IsZero())
}
