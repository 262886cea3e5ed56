package calendar

import (
	"time"

	"cloudeng.io/datetime"
)

// StartOfDay returns midnight of t's day in t's location.
func StartOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// StartOfMonth returns midnight of the first day of t's month.
func StartOfMonth(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location())
}

// SameDay reports whether a and b fall on the same calendar day, using a's
// location for both.
func SameDay(a, b time.Time) bool {
	b = b.In(a.Location())
	return a.Year() == b.Year() && a.Month() == b.Month() && a.Day() == b.Day()
}

// SameMonth reports whether a and b fall in the same month, using a's
// location for both.
func SameMonth(a, b time.Time) bool {
	b = b.In(a.Location())
	return a.Year() == b.Year() && a.Month() == b.Month()
}

// DaysIn returns the number of days in t's month.
func DaysIn(t time.Time) int {
	return StartOfMonth(t).AddDate(0, 1, -1).Day()
}

// AddMonths moves by n months and returns the first of the resulting month,
// avoiding the day overflow of time.AddDate (Jan 31 + 1 month).
func AddMonths(t time.Time, n int) time.Time {
	return time.Date(t.Year(), t.Month()+time.Month(n), 1, 0, 0, 0, 0, t.Location())
}

// Combine keeps the year, month and day of date and takes the hour, minute
// and second from tod.
func Combine(date time.Time, tod datetime.TimeOfDay) time.Time {
	return time.Date(date.Year(), date.Month(), date.Day(), tod.Hour(), tod.Minute(), tod.Second(), 0, date.Location())
}

// TimeOf returns the time of day of t.
func TimeOf(t time.Time) datetime.TimeOfDay {
	return datetime.TimeOfDayFromTime(t)
}
