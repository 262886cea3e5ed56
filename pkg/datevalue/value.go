// Package datevalue defines the value selected in a date picker: either a
// single date or a closed range of dates.
package datevalue

import (
	"time"

	"cloudeng.io/datetime"

	"tableflip.dev/datepick/pkg/calendar"
	"tableflip.dev/datepick/pkg/locale"
)

// Kind discriminates the variants of a Value.
type Kind int

const (
	// KindSingle is a single selected date.
	KindSingle Kind = iota + 1
	// KindRange is a start/end pair.
	KindRange
)

func (k Kind) String() string {
	switch k {
	case KindSingle:
		return "single"
	case KindRange:
		return "range"
	default:
		return "none"
	}
}

// Value is an immutable selection. Construct it with Single or Range; the
// zero Value is not a selection.
type Value struct {
	kind  Kind
	start time.Time
	end   time.Time
}

// Single returns a single date selection.
func Single(date time.Time) Value {
	return Value{kind: KindSingle, start: date, end: date}
}

// Range returns a range selection with the earlier timestamp first,
// whichever order a and b are given in.
func Range(a, b time.Time) Value {
	if b.Before(a) {
		a, b = b, a
	}
	return Value{kind: KindRange, start: a, end: b}
}

// Kind reports the variant of v.
func (v Value) Kind() Kind { return v.kind }

// IsZero reports whether v holds no selection.
func (v Value) IsZero() bool { return v.kind == 0 }

// Date returns the selected date of a Single or the start of a Range.
func (v Value) Date() time.Time { return v.start }

// Start returns the first timestamp of v.
func (v Value) Start() time.Time { return v.start }

// End returns the last timestamp of v. For a Single it equals Start.
func (v Value) End() time.Time { return v.end }

// Equal reports whether v and o are the same variant with equal instants.
func (v Value) Equal(o Value) bool {
	if v.kind != o.kind {
		return false
	}
	switch v.kind {
	case KindSingle:
		return v.start.Equal(o.start)
	case KindRange:
		return v.start.Equal(o.start) && v.end.Equal(o.end)
	default:
		return true
	}
}

// Equal compares optional values: two nils are equal, nil never equals a
// value.
func Equal(a, b *Value) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return a.Equal(*b)
}

// Contains reports whether t lies within [Start, End].
func (v Value) Contains(t time.Time) bool {
	if v.IsZero() {
		return false
	}
	return !t.Before(v.start) && !t.After(v.end)
}

// Describe renders "Month Day" for a single date and
// "Month Day - Month Day" for a range.
func (v Value) Describe(l locale.Locale) string {
	switch v.kind {
	case KindSingle:
		return l.MonthDay(v.start)
	case KindRange:
		return l.MonthDay(v.start) + " - " + l.MonthDay(v.end)
	default:
		return ""
	}
}

func (v Value) String() string {
	return v.Describe(locale.Default)
}

// WithStartTime replaces the time of day of the single date or the range
// start, keeping the calendar date as seen in loc. A nil loc uses the zone
// of the value. On a range the start never moves past the end: a later time
// is clamped to the end instead of swapping the endpoints.
func (v Value) WithStartTime(tod datetime.TimeOfDay, loc *time.Location) Value {
	switch v.kind {
	case KindSingle:
		return Single(calendar.Combine(inZone(v.start, loc), tod))
	case KindRange:
		start := calendar.Combine(inZone(v.start, loc), tod)
		if start.After(v.end) {
			start = v.end
		}
		return Value{kind: KindRange, start: start, end: v.end}
	default:
		return v
	}
}

// WithEndTime replaces the time of day of a range end, keeping the calendar
// date as seen in loc. The end is clamped so it never precedes the start.
// Other values are returned unchanged.
func (v Value) WithEndTime(tod datetime.TimeOfDay, loc *time.Location) Value {
	if v.kind != KindRange {
		return v
	}
	end := calendar.Combine(inZone(v.end, loc), tod)
	if end.Before(v.start) {
		end = v.start
	}
	return Value{kind: KindRange, start: v.start, end: end}
}

func inZone(t time.Time, loc *time.Location) time.Time {
	if loc == nil {
		return t
	}
	return t.In(loc)
}

// Ptr returns a pointer to a copy of v, convenient for optional bindings.
func (v Value) Ptr() *Value {
	return &v
}
