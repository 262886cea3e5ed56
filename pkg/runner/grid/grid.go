// Package grid prints the month grid of the picker without a terminal UI.
package grid

import (
	"context"
	"io"
	"time"

	"cloudeng.io/logging/ctxlog"
	"github.com/fatih/color"

	"tableflip.dev/datepick/pkg/calendar"
	"tableflip.dev/datepick/pkg/datevalue"
	"tableflip.dev/datepick/pkg/locale"
	"tableflip.dev/datepick/pkg/printers"
)

// Grid prints the 35 day grid of one month.
type Grid struct {
	// Month is any instant in the month to print. Defaults to now.
	Month     time.Time
	Locale    locale.Locale
	Highlight *datevalue.Value
	Format    printers.Format

	Out io.Writer
	Now func() time.Time
}

// Do renders the grid.
func (g *Grid) Do(ctx context.Context) error {
	now := time.Now
	if g.Now != nil {
		now = g.Now
	}
	month := g.Month
	if month.IsZero() {
		month = now()
	}
	month = calendar.StartOfMonth(month)

	m := printers.Month{
		Month: month,
		Days:  calendar.Days(month, g.Locale.FirstWeekday()),
		Today: now().In(month.Location()),
	}
	if g.Highlight != nil {
		v := *g.Highlight
		m.Selected = func(day time.Time) bool {
			if v.Kind() == datevalue.KindSingle {
				return calendar.SameDay(v.Date().In(day.Location()), day)
			}
			return v.Contains(day)
		}
	}
	ctxlog.Logger(ctx).Debug("grid", "month", month, "first_weekday", g.Locale.FirstWeekday())

	out := g.Out
	if out == nil {
		out = color.Output
	}
	if g.Format != printers.FormatPretty {
		return printers.Encode(out, g.Format, printers.NewMonthJSON(g.Locale, m))
	}
	printers.SyncColorProfile()
	pp := &printers.PrettyPrint{Out: out, Locale: g.Locale}
	pp.PrintMonth(m)
	return nil
}
