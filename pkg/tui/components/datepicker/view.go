package datepicker

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss/v2"
	"github.com/muesli/reflow/ansi"

	"tableflip.dev/datepick/pkg/calendar"
)

// gridWidth is the printable width of one week: seven two column cells and
// six separators.
const gridWidth = calendar.DaysInWeek*3 - 1

// View implements tea.Model.
func (m *Model) View() string {
	m.picker.Sync()
	t := m.theme.Picker

	var b strings.Builder
	b.WriteString(m.headerView())
	b.WriteString("\n")
	b.WriteString(t.Divider.Render(strings.Repeat("─", gridWidth)))
	b.WriteString("\n")
	b.WriteString(m.titleView())
	b.WriteString("\n")
	b.WriteString(m.gridView())
	b.WriteString(t.Divider.Render(strings.Repeat("─", gridWidth)))
	b.WriteString("\n")
	b.WriteString(m.timeView())

	body := t.Frame.Render(strings.TrimRight(b.String(), "\n"))

	footer := []string{body}
	if m.status != "" {
		style := m.theme.Footer.Status
		if m.statusErr {
			style = m.theme.Footer.Error
		}
		footer = append(footer, style.Render(m.status))
	}
	footer = append(footer, m.theme.Footer.Help.Render(m.help.View(m.keys)))
	return lipgloss.JoinVertical(lipgloss.Left, footer...)
}

func (m *Model) headerView() string {
	t := m.theme.Picker
	clr := t.Clear.Render("Clear")
	toggle := m.toggleView(m.picker.Labels().RangeMode, m.picker.RangeMode())
	return spread(clr, toggle, gridWidth)
}

func (m *Model) toggleView(label string, on bool) string {
	t := m.theme.Picker
	if on {
		return t.Label.Render(label) + " " + t.ToggleOn.Render("[on]")
	}
	return t.Label.Render(label) + " " + t.Toggle.Render("[off]")
}

func (m *Model) titleView() string {
	t := m.theme.Picker
	title := m.picker.MonthTitle()
	if !m.picker.IsCurrentMonth() {
		title += " •"
	}
	left := t.Nav.Render("‹")
	right := t.Nav.Render("›")
	return left + center(t.Title.Render(title), gridWidth-2) + right
}

func (m *Model) gridView() string {
	t := m.theme.Picker
	days := m.picker.Days()
	if len(days) == 0 {
		return t.Outside.Render("calendar unavailable") + "\n"
	}

	var b strings.Builder
	headers := make([]string, 0, calendar.DaysInWeek)
	for _, sym := range m.picker.WeekdaySymbols() {
		headers = append(headers, t.Weekday.Render(fit(sym, 2)))
	}
	b.WriteString(strings.Join(headers, " "))
	b.WriteString("\n")

	for _, week := range calendar.Weeks(days) {
		cells := make([]string, 0, len(week))
		for _, day := range week {
			cells = append(cells, m.dayView(day))
		}
		b.WriteString(strings.Join(cells, " "))
		b.WriteString("\n")
	}
	return b.String()
}

func (m *Model) dayView(day time.Time) string {
	t := m.theme.Picker
	style := t.Day
	switch {
	case !m.picker.InMonth(day):
		style = t.Outside
	case m.picker.IsToday(day):
		style = t.Today
	}

	if m.picker.Highlighted(day) {
		v := m.picker.Value()
		pending, ok := m.picker.Pending()
		switch {
		case ok && calendar.SameDay(pending, day):
			style = t.Pending
		case v != nil && (calendar.SameDay(v.Start().In(day.Location()), day) || calendar.SameDay(v.End().In(day.Location()), day)):
			style = t.Selected
		default:
			style = t.InRange.Inherit(style)
		}
	}
	if m.focus == fieldGrid && calendar.SameDay(m.cursor, day) {
		style = t.Cursor.Inherit(style)
	}
	return style.Render(fmt.Sprintf("%2d", day.Day()))
}

func (m *Model) timeView() string {
	lines := []string{m.toggleView(m.picker.Labels().IncludesTime, m.picker.IncludesTime())}
	if !m.picker.IncludesTime() {
		return strings.Join(lines, "\n")
	}
	lines = append(lines, m.inputRow(m.picker.StartLabel(), m.startInput.View(), m.focus == fieldStartTime))
	if m.picker.RangeMode() {
		lines = append(lines, m.inputRow(m.picker.EndLabel(), m.endInput.View(), m.focus == fieldEndTime))
	}
	return strings.Join(lines, "\n")
}

func (m *Model) inputRow(label, input string, focused bool) string {
	t := m.theme.Picker
	style := t.Input
	if focused {
		style = t.Focused
	}
	return t.Label.Render(label) + "  " + style.Render(input)
}

// spread places left and right at the edges of width columns.
func spread(left, right string, width int) string {
	gap := width - ansi.PrintableRuneWidth(left) - ansi.PrintableRuneWidth(right)
	if gap < 1 {
		gap = 1
	}
	return left + strings.Repeat(" ", gap) + right
}

// center pads s on both sides to width columns.
func center(s string, width int) string {
	w := ansi.PrintableRuneWidth(s)
	if w >= width {
		return s
	}
	left := (width - w) / 2
	return strings.Repeat(" ", left) + s + strings.Repeat(" ", width-w-left)
}

// fit trims or pads s to exactly n runes.
func fit(s string, n int) string {
	r := []rune(s)
	if len(r) >= n {
		return string(r[:n])
	}
	return s + strings.Repeat(" ", n-len(r))
}
