package daterange

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func day(s string) time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return t
}

func TestToUTCDay(t *testing.T) {
	loc := time.FixedZone("UTC+7", 7*3600)
	in := time.Date(2024, 5, 10, 23, 45, 1, 0, loc) // 16:45 UTC
	got := ToUTCDay(in)

	assert.Equal(t, day("2024-05-10"), got)
	assert.Equal(t, time.UTC, got.Location())
}

func TestEnumerateDays(t *testing.T) {
	days := EnumerateDays(day("2024-03-01"), day("2024-03-05"))
	require.Len(t, days, 5)
	assert.Equal(t, day("2024-03-01"), days[0])
	assert.Equal(t, day("2024-03-05"), days[4])
}

func TestEnumerateDaysSingle(t *testing.T) {
	days := EnumerateDays(day("2024-03-01"), day("2024-03-01"))
	require.Len(t, days, 1)
}

func TestEnumerateDaysInverted(t *testing.T) {
	assert.Empty(t, EnumerateDays(day("2024-03-05"), day("2024-03-01")))
}

func TestEnumerateDaysIgnoresTimeOfDay(t *testing.T) {
	from := time.Date(2024, 3, 1, 22, 0, 0, 0, time.UTC)
	to := time.Date(2024, 3, 2, 1, 0, 0, 0, time.UTC)
	days := EnumerateDays(from, to)
	require.Len(t, days, 2)
}

func TestMissingRangesNothingCached(t *testing.T) {
	got := MissingRanges(day("2024-03-01"), day("2024-03-05"), nil)
	require.Len(t, got, 1)
	assert.Equal(t, Range{From: day("2024-03-01"), To: day("2024-03-05")}, got[0])
}

func TestMissingRangesFullyCached(t *testing.T) {
	cached := DaySet(EnumerateDays(day("2024-03-01"), day("2024-03-05")))
	assert.Empty(t, MissingRanges(day("2024-03-01"), day("2024-03-05"), cached))
}

func TestMissingRangesSplitsAroundCachedDay(t *testing.T) {
	// Day 3 cached: expect [1,2] and [4,5].
	cached := DaySet([]time.Time{day("2024-03-03")})
	got := MissingRanges(day("2024-03-01"), day("2024-03-05"), cached)

	require.Len(t, got, 2)
	assert.Equal(t, Range{From: day("2024-03-01"), To: day("2024-03-02")}, got[0])
	assert.Equal(t, Range{From: day("2024-03-04"), To: day("2024-03-05")}, got[1])
}

func TestMissingRangesIsolatedDay(t *testing.T) {
	cached := DaySet([]time.Time{
		day("2024-03-01"), day("2024-03-02"),
		day("2024-03-04"), day("2024-03-05"),
	})
	got := MissingRanges(day("2024-03-01"), day("2024-03-05"), cached)

	require.Len(t, got, 1)
	assert.Equal(t, Range{From: day("2024-03-03"), To: day("2024-03-03")}, got[0])
}

func TestMissingRangesCoversExactlyMissingDays(t *testing.T) {
	from, to := day("2024-03-01"), day("2024-03-10")
	cached := DaySet([]time.Time{
		day("2024-03-02"), day("2024-03-05"), day("2024-03-06"), day("2024-03-10"),
	})

	got := MissingRanges(from, to, cached)

	covered := map[time.Time]bool{}
	for _, r := range got {
		assert.False(t, r.From.Before(from))
		assert.False(t, r.To.After(to))
		for _, d := range EnumerateDays(r.From, r.To) {
			assert.False(t, covered[d], "ranges overlap on %v", d)
			covered[d] = true
		}
	}
	for _, d := range EnumerateDays(from, to) {
		assert.Equal(t, !cached[d], covered[d], "day %v", d)
	}

	// Maximal: no two returned ranges are adjacent.
	for i := 1; i < len(got); i++ {
		gap := got[i].From.Sub(got[i-1].To)
		assert.Greater(t, gap, 24*time.Hour)
	}
}

func TestMissingRangesCachedOutsideRequestIgnored(t *testing.T) {
	cached := DaySet([]time.Time{day("2024-02-28"), day("2024-03-07")})
	got := MissingRanges(day("2024-03-01"), day("2024-03-05"), cached)
	require.Len(t, got, 1)
	assert.Equal(t, Range{From: day("2024-03-01"), To: day("2024-03-05")}, got[0])
}
