package utils

import "time"

// StartOfDay truncates t to midnight of its calendar day in loc.
//
// Every caller that needs "today's record" — check-in, check-out and the
// absence reconciliation job — must go through this function. Using two
// different truncation expressions for the same logical day is exactly the
// kind of drift that splits one working day across two records.
func StartOfDay(t time.Time, loc *time.Location) time.Time {
	lt := t.In(loc)
	return time.Date(lt.Year(), lt.Month(), lt.Day(), 0, 0, 0, 0, loc)
}

// DayWindow returns the inclusive [start, end] range covering the whole
// calendar day of t in loc.
func DayWindow(t time.Time, loc *time.Location) (start, end time.Time) {
	start = StartOfDay(t, loc)
	end = start.AddDate(0, 0, 1).Add(-time.Nanosecond)
	return start, end
}

// MonthWindow returns the inclusive [start, end] range covering the whole
// calendar month, from day 1 00:00:00 to the last day 23:59:59.999999999.
// month is 1-indexed; December rolls the end into the next year.
func MonthWindow(year int, month time.Month, loc *time.Location) (start, end time.Time) {
	start = time.Date(year, month, 1, 0, 0, 0, 0, loc)
	end = start.AddDate(0, 1, 0).Add(-time.Nanosecond)
	return start, end
}
