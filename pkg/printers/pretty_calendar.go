package printers

import (
	"fmt"
	"strings"
	"time"

	"github.com/fatih/color"

	"tableflip.dev/datepick/pkg/calendar"
	"tableflip.dev/datepick/pkg/locale"
)

const width = len("11 12 13 14 15 16 17") // an example week

// Month describes one rendered grid.
type Month struct {
	Month time.Time
	Days  []time.Time
	Today time.Time
	// Selected reports the days to emphasise. May be nil.
	Selected func(day time.Time) bool
}

// MonthJSON is the machine readable form of a grid.
type MonthJSON struct {
	Month        string   `json:"month" yaml:"month"`
	FirstWeekday string   `json:"first_weekday" yaml:"first_weekday"`
	Weekdays     []string `json:"weekdays" yaml:"weekdays"`
	Days         []string `json:"days" yaml:"days"`
}

// NewMonthJSON converts a grid for JSON or YAML output.
func NewMonthJSON(l locale.Locale, m Month) MonthJSON {
	out := MonthJSON{
		Month:        m.Month.Format("2006-01"),
		FirstWeekday: l.FirstWeekday().String(),
		Weekdays:     l.ShortWeekdays(),
		Days:         make([]string, 0, len(m.Days)),
	}
	for _, d := range m.Days {
		out.Days = append(out.Days, d.Format("2006-01-02"))
	}
	return out
}

// PrintMonth prints the grid of m, one week per line.
func (pp *PrettyPrint) PrintMonth(m Month) {
	w := pp.out()

	tf := color.New(color.FgWhite, color.Italic)
	title := pp.Locale.MonthYear(m.Month)
	tw := len([]rune(title))
	mid := (width - tw) / 2
	if mid < 0 {
		mid = 0
	}
	_, _ = tf.Fprintf(w, "%s%s\n", strings.Repeat(" ", mid), title)

	if len(m.Days) == 0 {
		_, _ = color.New(color.Faint, color.Italic).Fprint(w, " no grid\n\n")
		return
	}

	head := color.New(color.Faint, color.Bold)
	syms := pp.Locale.ShortWeekdays()
	for i, s := range syms {
		r := []rune(s)
		if len(r) > 2 {
			r = r[:2]
		}
		_, _ = head.Fprintf(w, "%-2s", string(r))
		if i < len(syms)-1 {
			_, _ = fmt.Fprint(w, " ")
		}
	}
	_, _ = fmt.Fprint(w, "\n")

	outside := color.New(color.Faint, color.FgWhite)
	inside := color.New(color.FgWhite)
	today := color.New(color.Bold, color.FgHiWhite)
	selected := color.New(color.Bold, color.FgHiYellow, color.Underline)

	for _, week := range calendar.Weeks(m.Days) {
		for i, d := range week {
			printer := inside
			switch {
			case m.Selected != nil && m.Selected(d):
				printer = selected
			case !calendar.SameMonth(d, m.Month):
				printer = outside
			case !m.Today.IsZero() && calendar.SameDay(m.Today, d):
				printer = today
			}
			_, _ = printer.Fprintf(w, "%2d", d.Day())
			if i < len(week)-1 {
				_, _ = fmt.Fprint(w, " ")
			}
		}
		_, _ = fmt.Fprint(w, "\n")
	}
	_, _ = fmt.Fprint(w, "\n")
}
