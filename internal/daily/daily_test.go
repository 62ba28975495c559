package daily

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestSeed(t *testing.T) {
	assert.Equal(t, int64(20261014), Seed(day(2026, time.October, 14)))
	assert.Equal(t, int64(10101), Seed(day(1, time.January, 1)))
}

func TestDateKeyRoundTrip(t *testing.T) {
	d := time.Date(2025, time.March, 4, 17, 30, 0, 0, time.UTC)
	assert.Equal(t, "20250304", DateKey(d))

	parsed, err := ParseDateKey("20250304", time.UTC)
	require.NoError(t, err)
	assert.Equal(t, day(2025, time.March, 4), parsed)
}

func TestParseDateKeyRejectsMalformed(t *testing.T) {
	for _, key := range []string{"", "2025034", "2025-03-04", "20251304", "abcdefgh"} {
		_, err := ParseDateKey(key, time.UTC)
		assert.ErrorIs(t, err, ErrBadKey, "key %q", key)
	}
}

func TestSelectIndexIsDeterministic(t *testing.T) {
	d := day(2026, time.October, 14)
	first := SelectIndex(d, 538)
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, SelectIndex(d, 538))
	}
	// Time of day and location do not matter, only the calendar date.
	late := time.Date(2026, time.October, 14, 23, 59, 59, 0, time.FixedZone("x", 3600))
	assert.Equal(t, first, SelectIndex(late, 538))
}

func TestSelectIndexInRange(t *testing.T) {
	start := day(2024, time.January, 1)
	for i := 0; i < 400; i++ {
		idx := SelectIndex(start.AddDate(0, 0, i), 7)
		assert.GreaterOrEqual(t, idx, 0)
		assert.Less(t, idx, 7)
	}
}

func TestSelectIndexNoConsecutiveRepeats(t *testing.T) {
	start := day(2023, time.January, 1)
	for _, n := range []int{2, 3, 4, 5, 10, 538} {
		prev := SelectIndex(start, n)
		for i := 1; i < 1500; i++ {
			cur := SelectIndex(start.AddDate(0, 0, i), n)
			require.NotEqual(t, prev, cur, "n=%d day=%s", n, DateKey(start.AddDate(0, 0, i)))
			prev = cur
		}
	}
}

func TestSelectIndexBumpsRawCollision(t *testing.T) {
	const n = 10
	start := day(2020, time.January, 1)
	found := false
	for i := 1; i < 2000 && !found; i++ {
		d := start.AddDate(0, 0, i)
		if draw(d, n) != draw(d.AddDate(0, 0, -1), n) {
			continue
		}
		yesterday := SelectIndex(d.AddDate(0, 0, -1), n)
		if yesterday != draw(d, n) {
			continue
		}
		found = true
		assert.Equal(t, (draw(d, n)+1)%n, SelectIndex(d, n))
	}
	require.True(t, found, "expected at least one raw collision in range")
}

func TestSelectIndexUsesRawDrawWhenNoCollisionPossible(t *testing.T) {
	const n = 538
	start := day(2025, time.June, 1)
	for i := 0; i < 200; i++ {
		d := start.AddDate(0, 0, i)
		y := draw(d.AddDate(0, 0, -1), n)
		r := draw(d, n)
		if r != y && r != (y+1)%n {
			assert.Equal(t, r, SelectIndex(d, n))
		}
	}
}

func TestSelectIndexFirstDay(t *testing.T) {
	d := day(1, time.January, 1)
	assert.Equal(t, draw(d, 10), SelectIndex(d, 10))
	assert.NotEqual(t, SelectIndex(d, 10), SelectIndex(d.AddDate(0, 0, 1), 10))
}

func TestSelectIndexSingleWord(t *testing.T) {
	assert.Equal(t, 0, SelectIndex(day(2026, time.October, 14), 1))
}
