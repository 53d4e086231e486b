package temporal

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSchedule_Dates(t *testing.T) {
	t.Run("bimonthly S1 scenario", func(t *testing.T) {
		start, _ := ParseDate("2026-01-01")
		stop, _ := ParseDate("2026-06-01")
		period, _ := ParseDuration("P2M")

		dates := Schedule{Start: start, Stop: stop, Period: period}.Dates()
		require.Len(t, dates, 3)
		assert.Equal(t, "2026-01-01T00:00", dates[0].String())
		assert.Equal(t, "2026-03-01T00:00", dates[1].String())
		assert.Equal(t, "2026-05-01T00:00", dates[2].String())
	})

	t.Run("undated yields single nil date", func(t *testing.T) {
		dates := Schedule{}.Dates()
		require.Len(t, dates, 1)
		assert.Nil(t, dates[0])
	})
}

func TestGuard_IsActive(t *testing.T) {
	start, _ := ParseDate("2026-01-01")
	mid, _ := ParseDate("2026-03-01")
	late, _ := ParseDate("2026-05-01")

	t.Run("empty guard always passes", func(t *testing.T) {
		assert.True(t, Guard{}.IsActive(&start))
		assert.True(t, Guard{}.IsActive(nil))
	})

	t.Run("at clause", func(t *testing.T) {
		g := Guard{At: &start}
		assert.True(t, g.IsActive(&start))
		assert.False(t, g.IsActive(&mid))
	})

	t.Run("after clause, guard monotonicity", func(t *testing.T) {
		g := Guard{After: &start}
		assert.False(t, g.IsActive(&start))
		assert.True(t, g.IsActive(&mid))
		assert.True(t, g.IsActive(&late), "a date further past an already-satisfied after-guard stays satisfied")
	})

	t.Run("before clause", func(t *testing.T) {
		g := Guard{Before: &late}
		assert.True(t, g.IsActive(&mid))
		assert.False(t, g.IsActive(&late))
	})

	t.Run("undated cycle fails any dated clause", func(t *testing.T) {
		assert.False(t, Guard{At: &start}.IsActive(nil))
		assert.False(t, Guard{After: &start}.IsActive(nil))
		assert.False(t, Guard{Before: &start}.IsActive(nil))
	})
}
