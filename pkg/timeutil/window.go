// Package timeutil parses the compact span notation ("1w", "3d", "1mo2w")
// accepted on the command line to build date ranges.
package timeutil

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"tableflip.dev/datepick/pkg/calendar"
)

// DefaultWindow is used when no span is given.
const DefaultWindow = "1d"

// Window is a span of calendar time. Months and days are kept apart because
// a month has no fixed length in days.
type Window struct {
	Months int
	Days   int
}

type unit struct {
	months, days int
}

var (
	windowPattern = regexp.MustCompile(`^\s*(\d+)\s*([a-z]+)`)
	unitMap       = map[string]unit{
		"d":      {days: 1},
		"day":    {days: 1},
		"days":   {days: 1},
		"w":      {days: 7},
		"wk":     {days: 7},
		"wks":    {days: 7},
		"week":   {days: 7},
		"weeks":  {days: 7},
		"mo":     {months: 1},
		"mon":    {months: 1},
		"month":  {months: 1},
		"months": {months: 1},
		"y":      {months: 12},
		"yr":     {months: 12},
		"year":   {months: 12},
		"years":  {months: 12},
	}
	subDayUnits = map[string]bool{
		"s": true, "sec": true, "secs": true, "second": true, "seconds": true,
		"m": true, "min": true, "mins": true, "minute": true, "minutes": true,
		"h": true, "hr": true, "hrs": true, "hour": true, "hours": true,
	}
)

// ParseWindow parses a span such as "1w", "3d" or "1mo2w". An empty input
// means DefaultWindow. Ranges are built from whole days, so hours and
// minutes are rejected.
func ParseWindow(input string) (Window, error) {
	trimmed := strings.TrimSpace(input)
	if trimmed == "" {
		trimmed = DefaultWindow
	}

	remaining := strings.ToLower(trimmed)
	var w Window
	for len(remaining) > 0 {
		matches := windowPattern.FindStringSubmatch(remaining)
		if len(matches) != 3 {
			return Window{}, fmt.Errorf("invalid span segment %q", strings.TrimSpace(remaining))
		}
		value, err := strconv.Atoi(matches[1])
		if err != nil {
			return Window{}, fmt.Errorf("invalid span value %q: %w", matches[1], err)
		}
		u, ok := unitMap[matches[2]]
		if !ok {
			if subDayUnits[matches[2]] {
				return Window{}, fmt.Errorf("span %q is shorter than a day, use d, w, mo or y", matches[0])
			}
			return Window{}, fmt.Errorf("unsupported span unit %q", matches[2])
		}
		w.Months += value * u.months
		w.Days += value * u.days
		remaining = remaining[len(matches[0]):]
	}

	if w.IsZero() {
		return Window{}, fmt.Errorf("span must cover at least one day")
	}
	return w, nil
}

// IsZero reports whether w spans nothing.
func (w Window) IsZero() bool { return w.Months == 0 && w.Days == 0 }

// String renders w with year/month/week/day tokens, "0d" when empty.
func (w Window) String() string {
	var b strings.Builder
	if y := w.Months / 12; y > 0 {
		fmt.Fprintf(&b, "%dy", y)
	}
	if mo := w.Months % 12; mo > 0 {
		fmt.Fprintf(&b, "%dmo", mo)
	}
	if wk := w.Days / 7; wk > 0 {
		fmt.Fprintf(&b, "%dw", wk)
	}
	if d := w.Days % 7; d > 0 {
		fmt.Fprintf(&b, "%dd", d)
	}
	if b.Len() == 0 {
		return "0d"
	}
	return b.String()
}

// From moves t forward by w on the calendar, keeping the wall clock time
// across DST changes. Months are added first and land on the last day of a
// shorter month rather than overflowing into the next one.
func (w Window) From(t time.Time) time.Time {
	if w.Months != 0 {
		first := calendar.AddMonths(t, w.Months)
		d := min(t.Day(), calendar.DaysIn(first))
		t = time.Date(first.Year(), first.Month(), d, t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), t.Location())
	}
	return t.AddDate(0, 0, w.Days)
}
