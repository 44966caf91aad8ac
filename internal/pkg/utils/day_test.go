package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func karachi(t *testing.T) *time.Location {
	loc, err := time.LoadLocation("Asia/Karachi")
	require.NoError(t, err)
	return loc
}

func TestStartOfDay(t *testing.T) {
	loc := karachi(t)

	cases := []struct {
		name string
		in   time.Time
		want time.Time
	}{
		{
			name: "midmorning local",
			in:   time.Date(2025, 9, 6, 10, 30, 45, 123, loc),
			want: time.Date(2025, 9, 6, 0, 0, 0, 0, loc),
		},
		{
			name: "already midnight",
			in:   time.Date(2025, 9, 6, 0, 0, 0, 0, loc),
			want: time.Date(2025, 9, 6, 0, 0, 0, 0, loc),
		},
		{
			// 20:30 UTC is 01:30 next day in Karachi (+05:00); the local
			// calendar day wins, not the UTC one.
			name: "utc instant crossing local midnight",
			in:   time.Date(2025, 9, 5, 20, 30, 0, 0, time.UTC),
			want: time.Date(2025, 9, 6, 0, 0, 0, 0, loc),
		},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got := StartOfDay(c.in, loc)
			assert.True(t, got.Equal(c.want), "got %v, want %v", got, c.want)
		})
	}
}

func TestStartOfDay_SameRuleForCheckInAndCheckOut(t *testing.T) {
	loc := karachi(t)

	checkIn := time.Date(2025, 9, 6, 9, 0, 0, 0, loc)
	checkOut := time.Date(2025, 9, 6, 17, 0, 0, 0, loc)

	assert.True(t, StartOfDay(checkIn, loc).Equal(StartOfDay(checkOut, loc)),
		"check-in and check-out on the same day must resolve to the same date key")
}

func TestDayWindow(t *testing.T) {
	loc := karachi(t)

	start, end := DayWindow(time.Date(2025, 9, 6, 14, 22, 0, 0, loc), loc)

	assert.True(t, start.Equal(time.Date(2025, 9, 6, 0, 0, 0, 0, loc)))
	// End is the last representable instant of the day.
	lastMoment := time.Date(2025, 9, 6, 23, 59, 59, 999999999, loc)
	assert.True(t, end.Equal(lastMoment), "got %v, want %v", end, lastMoment)
	// Next midnight is outside the window.
	assert.True(t, end.Before(time.Date(2025, 9, 7, 0, 0, 0, 0, loc)))
}

func TestMonthWindow_FebruaryNonLeap(t *testing.T) {
	loc := karachi(t)

	start, end := MonthWindow(2025, time.February, loc)

	assert.True(t, start.Equal(time.Date(2025, 2, 1, 0, 0, 0, 0, loc)))
	assert.True(t, end.Equal(time.Date(2025, 2, 28, 23, 59, 59, 999999999, loc)))

	// March 1 records must fall outside the window.
	mar1 := time.Date(2025, 3, 1, 0, 0, 0, 0, loc)
	assert.True(t, end.Before(mar1))
}

func TestMonthWindow_FebruaryLeap(t *testing.T) {
	loc := karachi(t)

	_, end := MonthWindow(2024, time.February, loc)
	assert.Equal(t, 29, end.Day())
}

func TestMonthWindow_DecemberRollsYear(t *testing.T) {
	loc := karachi(t)

	start, end := MonthWindow(2025, time.December, loc)

	assert.True(t, start.Equal(time.Date(2025, 12, 1, 0, 0, 0, 0, loc)))
	assert.True(t, end.Equal(time.Date(2025, 12, 31, 23, 59, 59, 999999999, loc)))
	assert.True(t, end.Before(time.Date(2026, 1, 1, 0, 0, 0, 0, loc)))
}
