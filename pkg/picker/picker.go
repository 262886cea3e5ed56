// Package picker implements the selection logic of the date picker: the
// displayed month, single and range selection, the range mode toggle and the
// optional time of day, all driven by a value owned by the host.
//
// A Picker is not safe for concurrent use; it is meant to be driven by a
// single UI event loop.
package picker

import (
	"context"
	"log/slog"
	"time"

	"cloudeng.io/datetime"
	"cloudeng.io/logging/ctxlog"

	"tableflip.dev/datepick/pkg/calendar"
	"tableflip.dev/datepick/pkg/datevalue"
	"tableflip.dev/datepick/pkg/locale"
)

const (
	// DefaultRangeModeLabel labels the range mode toggle.
	DefaultRangeModeLabel = "Range Mode"
	// DefaultIncludesTimeLabel labels the include time toggle.
	DefaultIncludesTimeLabel = "Include Time"
	// EmptyDateLabel is shown next to the time inputs when nothing is selected.
	EmptyDateLabel = "Choose date"
)

// State summarises the selection.
type State int

const (
	NoSelection State = iota
	SingleSelected
	RangeFirstPicked
	RangeSelected
)

func (s State) String() string {
	switch s {
	case SingleSelected:
		return "SingleSelected"
	case RangeFirstPicked:
		return "RangeFirstPicked"
	case RangeSelected:
		return "RangeSelected"
	default:
		return "NoSelection"
	}
}

// Options configures a Picker. The zero value is usable.
type Options struct {
	// Locale drives formatting and the first column of the grid.
	Locale locale.Locale
	// Location is the zone days are computed in. Defaults to time.Local.
	Location *time.Location
	// Now returns the current time. Defaults to time.Now.
	Now func() time.Time

	RangeModeLabel    string
	IncludesTimeLabel string

	Logger *slog.Logger
}

// Labels holds the display text of the toggles.
type Labels struct {
	RangeMode    string
	IncludesTime string
}

// Picker holds the transient state of one date picker.
type Picker struct {
	value        Binding[*datevalue.Value]
	includesTime Binding[bool]

	locale locale.Locale
	loc    *time.Location
	now    func() time.Time
	labels Labels
	log    *slog.Logger

	month     time.Time
	days      []time.Time
	rangeMode bool
	pending   *time.Time
	startTime datetime.TimeOfDay
	endTime   datetime.TimeOfDay

	// last value observed through the binding.
	seen *datevalue.Value
}

// New creates a Picker bound to value and includesTime. includesTime may be
// nil, in which case the picker keeps the flag itself.
func New(value Binding[*datevalue.Value], includesTime Binding[bool], opts Options) *Picker {
	if includesTime == nil {
		includesTime = NewVar(false)
	}
	p := &Picker{
		value:        value,
		includesTime: includesTime,
		locale:       opts.Locale,
		loc:          opts.Location,
		now:          opts.Now,
		labels: Labels{
			RangeMode:    opts.RangeModeLabel,
			IncludesTime: opts.IncludesTimeLabel,
		},
		log: opts.Logger,
	}
	if p.loc == nil {
		p.loc = time.Local
	}
	if p.now == nil {
		p.now = time.Now
	}
	if p.labels.RangeMode == "" {
		p.labels.RangeMode = DefaultRangeModeLabel
	}
	if p.labels.IncludesTime == "" {
		p.labels.IncludesTime = DefaultIncludesTimeLabel
	}
	if p.log == nil {
		p.log = ctxlog.Logger(context.Background())
	}

	p.setMonth(p.today())
	p.seen = copyValue(value.Get())
	p.updateStates(p.seen)
	return p
}

func copyValue(v *datevalue.Value) *datevalue.Value {
	if v == nil {
		return nil
	}
	return v.Ptr()
}

func (p *Picker) today() time.Time {
	return p.now().In(p.loc)
}

// Sync resynchronises the month, range mode and pending state with the bound
// value if it changed since the picker last looked. It reports whether a
// change was observed. All other methods call it first.
func (p *Picker) Sync() bool {
	current := p.value.Get()
	if datevalue.Equal(current, p.seen) {
		return false
	}
	p.seen = copyValue(current)
	p.log.Debug("date value changed", "value", describe(current))
	p.updateStates(p.seen)
	return true
}

func describe(v *datevalue.Value) string {
	if v == nil {
		return "<nil>"
	}
	return v.Kind().String() + " " + v.String()
}

func (p *Picker) updateStates(v *datevalue.Value) {
	p.pending = nil
	if v == nil {
		p.setMonth(p.today())
		return
	}
	switch v.Kind() {
	case datevalue.KindSingle:
		if !calendar.SameMonth(v.Date().In(p.loc), p.month) {
			p.setMonth(v.Date().In(p.loc))
		}
		p.rangeMode = false
		p.startTime = calendar.TimeOf(v.Date().In(p.loc))
	case datevalue.KindRange:
		if !calendar.SameMonth(v.End().In(p.loc), p.month) {
			p.setMonth(v.End().In(p.loc))
		}
		p.rangeMode = true
		p.startTime = calendar.TimeOf(v.Start().In(p.loc))
		p.endTime = calendar.TimeOf(v.End().In(p.loc))
	}
}

// write requests v through the binding unless it equals the current value,
// then resynchronises. It reports whether anything was written.
func (p *Picker) write(v *datevalue.Value) bool {
	if datevalue.Equal(p.value.Get(), v) {
		return false
	}
	p.value.Set(v)
	p.Sync()
	return true
}

func (p *Picker) setMonth(t time.Time) {
	p.month = calendar.StartOfMonth(t.In(p.loc))
	p.days = calendar.Days(p.month, p.locale.FirstWeekday())
}

// Value returns the bound value.
func (p *Picker) Value() *datevalue.Value {
	p.Sync()
	return p.value.Get()
}

// State summarises the current selection.
func (p *Picker) State() State {
	p.Sync()
	if p.rangeMode && p.pending != nil {
		return RangeFirstPicked
	}
	v := p.value.Get()
	if v == nil {
		return NoSelection
	}
	if v.Kind() == datevalue.KindRange {
		return RangeSelected
	}
	return SingleSelected
}

// Select handles a tap on day.
func (p *Picker) Select(day time.Time) {
	p.Sync()
	day = calendar.StartOfDay(day.In(p.loc))

	if !p.rangeMode {
		p.log.Debug("select single", "day", day)
		p.write(datevalue.Single(day).Ptr())
		return
	}
	if p.pending == nil {
		p.log.Debug("select range start", "day", day)
		p.pending = &day
		return
	}
	next := datevalue.Range(*p.pending, day)
	p.log.Debug("select range end", "start", next.Start(), "end", next.End())
	if !p.write(next.Ptr()) {
		p.updateStates(p.value.Get())
	}
}

// RangeMode reports whether taps build ranges.
func (p *Picker) RangeMode() bool {
	p.Sync()
	return p.rangeMode
}

// SetRangeMode switches between single and range selection. Changing the
// mode drops the pending start and clears the bound value.
func (p *Picker) SetRangeMode(on bool) {
	p.Sync()
	if p.rangeMode == on {
		return
	}
	p.log.Debug("range mode", "on", on)
	p.rangeMode = on
	p.pending = nil
	p.write(nil)
}

// ToggleRangeMode flips the range mode.
func (p *Picker) ToggleRangeMode() {
	p.SetRangeMode(!p.RangeMode())
}

// Clear removes the selection.
func (p *Picker) Clear() {
	p.Sync()
	p.log.Debug("clear")
	p.write(nil)
}

// Pending returns the range start awaiting its end, if any.
func (p *Picker) Pending() (time.Time, bool) {
	p.Sync()
	if p.pending == nil {
		return time.Time{}, false
	}
	return *p.pending, true
}

// Month returns the first day of the displayed month.
func (p *Picker) Month() time.Time {
	p.Sync()
	return p.month
}

// Days returns the grid of the displayed month. It is nil when no grid can
// be computed and must then not be drawn.
func (p *Picker) Days() []time.Time {
	p.Sync()
	return p.days
}

// ShowMonth displays the month containing t.
func (p *Picker) ShowMonth(t time.Time) {
	p.Sync()
	p.setMonth(t)
}

// PrevMonth displays the previous month.
func (p *Picker) PrevMonth() {
	p.ShowMonth(calendar.AddMonths(p.Month(), -1))
}

// NextMonth displays the next month.
func (p *Picker) NextMonth() {
	p.ShowMonth(calendar.AddMonths(p.Month(), 1))
}

// ShowToday displays the current month.
func (p *Picker) ShowToday() {
	p.ShowMonth(p.today())
}

// IsCurrentMonth reports whether the displayed month contains today.
func (p *Picker) IsCurrentMonth() bool {
	return calendar.SameMonth(p.Month(), p.today())
}

// IncludesTime reports whether time of day is edited alongside the date.
func (p *Picker) IncludesTime() bool {
	return p.includesTime.Get()
}

// SetIncludesTime toggles time of day editing.
func (p *Picker) SetIncludesTime(on bool) {
	if p.includesTime.Get() == on {
		return
	}
	p.log.Debug("include time", "on", on)
	p.includesTime.Set(on)
}

// StartTime returns the time of day applied to the date or range start.
func (p *Picker) StartTime() datetime.TimeOfDay {
	p.Sync()
	return p.startTime
}

// EndTime returns the time of day applied to the range end.
func (p *Picker) EndTime() datetime.TimeOfDay {
	p.Sync()
	return p.endTime
}

// SetStartTime applies tod, read in the picker's location, to the selected
// date or to the range start. A range start later than the end is clamped
// to the end. It does nothing while nothing is selected.
func (p *Picker) SetStartTime(tod datetime.TimeOfDay) {
	p.Sync()
	p.startTime = tod
	v := p.value.Get()
	if v == nil {
		return
	}
	p.log.Debug("start time", "time", tod.String())
	p.write(v.WithStartTime(tod, p.loc).Ptr())
}

// SetEndTime applies tod, read in the picker's location, to the range end,
// clamped so it never precedes the start. It only acts in range mode with a
// range selected.
func (p *Picker) SetEndTime(tod datetime.TimeOfDay) {
	p.Sync()
	p.endTime = tod
	v := p.value.Get()
	if !p.rangeMode || v == nil || v.Kind() != datevalue.KindRange {
		return
	}
	p.log.Debug("end time", "time", tod.String())
	p.write(v.WithEndTime(tod, p.loc).Ptr())
}

// Highlighted reports whether day is drawn as selected: only the pending
// start while a range is being picked, every day of a committed range whose
// midnight lies within it, or the selected single day.
func (p *Picker) Highlighted(day time.Time) bool {
	p.Sync()
	if p.pending != nil {
		return calendar.SameDay(*p.pending, day)
	}
	v := p.value.Get()
	if v == nil {
		return false
	}
	switch v.Kind() {
	case datevalue.KindSingle:
		return calendar.SameDay(v.Date().In(p.loc), day)
	case datevalue.KindRange:
		return v.Contains(calendar.StartOfDay(day.In(p.loc)))
	default:
		return false
	}
}

// Today returns midnight of the current day in the picker's location.
func (p *Picker) Today() time.Time {
	return calendar.StartOfDay(p.today())
}

// IsToday reports whether day is today.
func (p *Picker) IsToday(day time.Time) bool {
	return calendar.SameDay(p.today(), day)
}

// InMonth reports whether day belongs to the displayed month.
func (p *Picker) InMonth(day time.Time) bool {
	return calendar.SameMonth(p.Month(), day)
}

// Locale returns the formatting locale.
func (p *Picker) Locale() locale.Locale { return p.locale }

// Location returns the zone days are computed in.
func (p *Picker) Location() *time.Location { return p.loc }

// Labels returns the toggle labels.
func (p *Picker) Labels() Labels { return p.labels }

// MonthTitle returns the localized "Month Year" of the displayed month.
func (p *Picker) MonthTitle() string {
	return p.locale.MonthYear(p.Month())
}

// WeekdaySymbols returns the grid column headers.
func (p *Picker) WeekdaySymbols() []string {
	return p.locale.ShortWeekdays()
}

// StartLabel names the date the start time applies to.
func (p *Picker) StartLabel() string {
	v := p.Value()
	if v == nil {
		return EmptyDateLabel
	}
	return p.locale.LongDate(v.Start().In(p.loc))
}

// EndLabel names the date the end time applies to.
func (p *Picker) EndLabel() string {
	v := p.Value()
	if v == nil {
		return EmptyDateLabel
	}
	return p.locale.LongDate(v.End().In(p.loc))
}
