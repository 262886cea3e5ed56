// Package datepicker is a Bubble Tea component that renders a picker.Picker
// as a month grid with range and time controls.
package datepicker

import (
	"fmt"
	"time"

	"cloudeng.io/datetime"
	"github.com/charmbracelet/bubbles/v2/help"
	"github.com/charmbracelet/bubbles/v2/key"
	"github.com/charmbracelet/bubbles/v2/textinput"
	tea "github.com/charmbracelet/bubbletea/v2"

	"tableflip.dev/datepick/pkg/calendar"
	"tableflip.dev/datepick/pkg/datevalue"
	"tableflip.dev/datepick/pkg/picker"
	"tableflip.dev/datepick/pkg/tui/theme"
)

// ChangedMsg is emitted after the bound value changed through the component.
type ChangedMsg struct {
	Value *datevalue.Value
}

// SyncMsg asks the component to pick up a value changed by the host.
type SyncMsg struct{}

// SyncCmd returns a command delivering SyncMsg.
func SyncCmd() tea.Cmd {
	return func() tea.Msg { return SyncMsg{} }
}

type field int

const (
	fieldGrid field = iota
	fieldStartTime
	fieldEndTime
)

// Model renders and drives a picker.
type Model struct {
	picker *picker.Picker
	theme  theme.Theme
	keys   KeyMap
	help   help.Model

	cursor time.Time
	focus  field

	startInput textinput.Model
	endInput   textinput.Model

	status    string
	statusErr bool

	last *datevalue.Value

	width  int
	height int
}

// New wraps p. The cursor starts on the selected date or today.
func New(p *picker.Picker) *Model {
	m := &Model{
		picker:     p,
		theme:      theme.Default(),
		keys:       DefaultKeyMap(),
		help:       help.New(),
		startInput: newTimeInput(),
		endInput:   newTimeInput(),
	}
	m.last = copyValue(p.Value())
	m.cursor = m.preferredCursor()
	m.syncInputs()
	return m
}

func newTimeInput() textinput.Model {
	ti := textinput.New()
	ti.Prompt = ""
	ti.Placeholder = "hh:mm"
	ti.CharLimit = 11
	return ti
}

func copyValue(v *datevalue.Value) *datevalue.Value {
	if v == nil {
		return nil
	}
	return v.Ptr()
}

// Picker exposes the wrapped picker.
func (m *Model) Picker() *picker.Picker { return m.picker }

// Keys returns the active key bindings.
func (m *Model) Keys() KeyMap { return m.keys }

// Cursor returns the day under the keyboard cursor.
func (m *Model) Cursor() time.Time { return m.cursor }

// SetCursor moves the keyboard cursor, changing month when day is not on
// the displayed grid. The last days of a month that needs a sixth week are
// only on the following month's grid.
func (m *Model) SetCursor(day time.Time) {
	m.cursor = calendar.StartOfDay(day.In(m.picker.Location()))
	if m.onGrid(m.cursor) {
		return
	}
	m.picker.ShowMonth(m.cursor)
	if !m.onGrid(m.cursor) {
		m.picker.ShowMonth(calendar.AddMonths(m.cursor, 1))
	}
}

// Editing reports whether a time input has focus and consumes text keys.
func (m *Model) Editing() bool { return m.focus != fieldGrid }

// Status returns the last status line, and whether it reports an error.
func (m *Model) Status() (string, bool) { return m.status, m.statusErr }

// SetSize records the available space.
func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd { return nil }

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	m.picker.Sync()
	// Anything that differs from the last value seen here was written by the
	// host, possibly already picked up by View; it is not echoed as ChangedMsg.
	if current := m.picker.Value(); !datevalue.Equal(current, m.last) {
		m.last = copyValue(current)
		m.afterExternalChange()
	}

	var cmds []tea.Cmd
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.SetSize(msg.Width, msg.Height)
	case SyncMsg:
		// host changes are picked up above
	case tea.KeyPressMsg:
		if m.focus == fieldGrid {
			cmds = append(cmds, m.handleGridKey(msg))
		} else {
			cmds = append(cmds, m.handleInputKey(msg))
		}
	}

	if cmd := m.checkChanged(); cmd != nil {
		cmds = append(cmds, cmd)
	}
	return m, tea.Batch(cmds...)
}

func (m *Model) handleGridKey(msg tea.KeyPressMsg) tea.Cmd {
	switch {
	case key.Matches(msg, m.keys.Left):
		m.moveCursor(-1)
	case key.Matches(msg, m.keys.Right):
		m.moveCursor(1)
	case key.Matches(msg, m.keys.Up):
		m.moveCursor(-calendar.DaysInWeek)
	case key.Matches(msg, m.keys.Down):
		m.moveCursor(calendar.DaysInWeek)
	case key.Matches(msg, m.keys.PrevMonth):
		m.shiftMonth(-1)
	case key.Matches(msg, m.keys.NextMonth):
		m.shiftMonth(1)
	case key.Matches(msg, m.keys.Today):
		m.picker.ShowToday()
		m.cursor = m.clampToGrid(m.picker.Today())
	case key.Matches(msg, m.keys.Select):
		m.picker.Select(m.cursor)
		m.setStatus("", false)
	case key.Matches(msg, m.keys.RangeMode):
		m.picker.ToggleRangeMode()
		m.setStatus("", false)
	case key.Matches(msg, m.keys.Time):
		m.picker.SetIncludesTime(!m.picker.IncludesTime())
	case key.Matches(msg, m.keys.Clear):
		m.picker.Clear()
	case key.Matches(msg, m.keys.NextField):
		return m.cycleFocus(1)
	case key.Matches(msg, m.keys.PrevField):
		return m.cycleFocus(-1)
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
	}
	return nil
}

func (m *Model) handleInputKey(msg tea.KeyPressMsg) tea.Cmd {
	switch {
	case key.Matches(msg, m.keys.NextField):
		return m.cycleFocus(1)
	case key.Matches(msg, m.keys.PrevField):
		return m.cycleFocus(-1)
	case key.Matches(msg, m.keys.Back):
		return m.setFocus(fieldGrid)
	case key.Matches(msg, m.keys.Apply):
		m.applyTime()
		return nil
	}

	var cmd tea.Cmd
	if m.focus == fieldStartTime {
		m.startInput, cmd = m.startInput.Update(msg)
	} else {
		m.endInput, cmd = m.endInput.Update(msg)
	}
	return cmd
}

func (m *Model) applyTime() {
	input := m.startInput
	if m.focus == fieldEndTime {
		input = m.endInput
	}
	var tod datetime.TimeOfDay
	if err := tod.Parse(input.Value()); err != nil {
		m.setStatus(err.Error(), true)
		return
	}
	if m.picker.Value() == nil {
		m.setStatus("choose a date first", true)
		return
	}
	if m.focus == fieldEndTime {
		m.picker.SetEndTime(tod)
	} else {
		m.picker.SetStartTime(tod)
	}
	m.setStatus("time set to "+formatTime(tod), false)
	m.syncInputs()
}

func (m *Model) setStatus(s string, isErr bool) {
	m.status = s
	m.statusErr = isErr
}

// fields returns the focusable areas in tab order.
func (m *Model) fields() []field {
	out := []field{fieldGrid}
	if m.picker.IncludesTime() {
		out = append(out, fieldStartTime)
		if m.picker.RangeMode() {
			out = append(out, fieldEndTime)
		}
	}
	return out
}

func (m *Model) cycleFocus(delta int) tea.Cmd {
	fields := m.fields()
	idx := 0
	for i, f := range fields {
		if f == m.focus {
			idx = i
		}
	}
	idx = (idx + delta + len(fields)) % len(fields)
	return m.setFocus(fields[idx])
}

func (m *Model) setFocus(f field) tea.Cmd {
	m.focus = f
	m.startInput.Blur()
	m.endInput.Blur()
	m.syncInputs()
	switch f {
	case fieldStartTime:
		return tea.Batch(m.startInput.Focus(), textinput.Blink)
	case fieldEndTime:
		return tea.Batch(m.endInput.Focus(), textinput.Blink)
	}
	return nil
}

// syncInputs copies the picker times into the inputs that are not being
// edited.
func (m *Model) syncInputs() {
	if !m.startInput.Focused() {
		m.startInput.SetValue(formatTime(m.picker.StartTime()))
	}
	if !m.endInput.Focused() {
		m.endInput.SetValue(formatTime(m.picker.EndTime()))
	}
}

func formatTime(tod datetime.TimeOfDay) string {
	if tod.Second() != 0 {
		return tod.String()
	}
	return fmt.Sprintf("%02d:%02d", tod.Hour(), tod.Minute())
}

func (m *Model) checkChanged() tea.Cmd {
	current := m.picker.Value()
	if datevalue.Equal(current, m.last) {
		return nil
	}
	m.last = copyValue(current)
	m.afterExternalChange()
	value := copyValue(current)
	return func() tea.Msg { return ChangedMsg{Value: value} }
}

// afterExternalChange keeps the cursor and inputs consistent with a value
// that may have moved the displayed month.
func (m *Model) afterExternalChange() {
	if !m.onGrid(m.cursor) {
		m.cursor = m.preferredCursor()
	}
	if m.focus != fieldGrid {
		valid := false
		for _, f := range m.fields() {
			valid = valid || f == m.focus
		}
		if !valid {
			_ = m.setFocus(fieldGrid)
		}
	}
	m.syncInputs()
}

func (m *Model) preferredCursor() time.Time {
	loc := m.picker.Location()
	if v := m.picker.Value(); v != nil {
		end := calendar.StartOfDay(v.End().In(loc))
		if m.onGrid(end) {
			return end
		}
	}
	return m.clampToGrid(m.picker.Today())
}

func (m *Model) clampToGrid(day time.Time) time.Time {
	if m.onGrid(day) {
		return day
	}
	return m.picker.Month()
}

func (m *Model) onGrid(day time.Time) bool {
	days := m.picker.Days()
	if len(days) == 0 {
		return false
	}
	return !day.Before(days[0]) && !day.After(days[len(days)-1])
}

func (m *Model) moveCursor(delta int) {
	c := m.cursor
	m.SetCursor(time.Date(c.Year(), c.Month(), c.Day()+delta, 0, 0, 0, 0, c.Location()))
}

func (m *Model) shiftMonth(delta int) {
	if delta < 0 {
		m.picker.PrevMonth()
	} else {
		m.picker.NextMonth()
	}
	month := m.picker.Month()
	d := min(m.cursor.Day(), calendar.DaysIn(month))
	m.cursor = m.clampToGrid(time.Date(month.Year(), month.Month(), d, 0, 0, 0, 0, month.Location()))
}
