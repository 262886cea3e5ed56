// Package calendar computes the month grid shown by the date picker and the
// day level arithmetic around it.
package calendar

import "time"

const (
	// DaysInWeek is the number of grid columns.
	DaysInWeek = 7
	// WeeksInMonth is the number of grid rows.
	WeeksInMonth = 5
	// GridSize is the number of cells in a month grid.
	GridSize = DaysInWeek * WeeksInMonth
)

// Days returns the GridSize consecutive days, at midnight in month's
// location, displayed for the month containing month. The first cell falls on
// first, so it may belong to the previous month and the last cell may belong
// to the next one.
//
// A nil result means no grid can be produced for the inputs.
func Days(month time.Time, first time.Weekday) []time.Time {
	if first < time.Sunday || first > time.Saturday {
		return nil
	}
	start := StartOfMonth(month)
	offset := Offset(start.Weekday(), first)

	loc := month.Location()
	days := make([]time.Time, 0, GridSize)
	for i := 0; i < GridSize; i++ {
		// time.Date normalises day overflow, so this is safe across month,
		// year and DST boundaries.
		days = append(days, time.Date(start.Year(), start.Month(), start.Day()-offset+i, 0, 0, 0, 0, loc))
	}
	return days
}

// Offset is the column of weekday w in a week starting on first.
func Offset(w, first time.Weekday) int {
	return (int(w) - int(first) + DaysInWeek) % DaysInWeek
}

// Weeks splits a grid into rows of DaysInWeek days.
func Weeks(days []time.Time) [][]time.Time {
	rows := make([][]time.Time, 0, len(days)/DaysInWeek)
	for i := 0; i+DaysInWeek <= len(days); i += DaysInWeek {
		rows = append(rows, days[i:i+DaysInWeek])
	}
	return rows
}
