package options

import (
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"tableflip.dev/datepick/pkg/calendar"
	"tableflip.dev/datepick/pkg/datevalue"
	"tableflip.dev/datepick/pkg/timeutil"
)

var dateLayouts = []string{
	time.RFC3339,
	"2006-1-2 15:04",
	"2006-1-2",
}

const layoutShort = "1/2"

// DateOptions
type DateOptions struct {
	On  string
	To  string
	For string
}

func AddOnArgs(cmd *cobra.Command, o *DateOptions) {
	cmd.Flags().StringVar(&o.On, "on", "",
		`Specify a date, example: --on="2024-5-10", --on="2024-5-10 14:30" or --on="5/10".`)
}

func AddRangeArgs(cmd *cobra.Command, o *DateOptions) {
	cmd.Flags().StringVar(&o.To, "to", "",
		`End of a range starting at --on, same formats as --on.`)
	cmd.Flags().StringVar(&o.For, "for", "",
		`Length of a range starting at --on, example: --for=1w, --for=3d or --for=1mo.`)
}

// ParseDate accepts the --on formats. A month/day date takes the year of now.
func ParseDate(s string, now time.Time) (time.Time, error) {
	loc := now.Location()
	for _, layout := range dateLayouts {
		if t, err := time.ParseInLocation(layout, s, loc); err == nil {
			return t, nil
		}
	}
	t, err := time.ParseInLocation(layoutShort, s, loc)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q, expected YYYY-M-D or M/D", s)
	}
	return time.Date(now.Year(), t.Month(), t.Day(), 0, 0, 0, 0, loc), nil
}

// Value builds the value described by the flags, nil when --on is unset.
func (o *DateOptions) Value(now time.Time) (*datevalue.Value, error) {
	if o.On == "" {
		if o.To != "" || o.For != "" {
			return nil, errors.New("--to and --for need --on")
		}
		return nil, nil
	}
	if o.To != "" && o.For != "" {
		return nil, errors.New("--to and --for are mutually exclusive")
	}
	on, err := ParseDate(o.On, now)
	if err != nil {
		return nil, err
	}
	switch {
	case o.To != "":
		to, err := ParseDate(o.To, now)
		if err != nil {
			return nil, err
		}
		return datevalue.Range(on, to).Ptr(), nil
	case o.For != "":
		w, err := timeutil.ParseWindow(o.For)
		if err != nil {
			return nil, err
		}
		return datevalue.Range(on, w.From(on)).Ptr(), nil
	}
	return datevalue.Single(on).Ptr(), nil
}

var monthLayouts = []string{"January 2006", "Jan 2006", "2006-01", "2006-1"}

// MonthOptions
type MonthOptions struct {
	Month string
}

func AddMonthArgs(cmd *cobra.Command, o *MonthOptions) {
	cmd.Flags().StringVar(&o.Month, "month", "",
		`Month to show, example: --month="March 2024" or --month=2024-03. Defaults to the current month.`)
}

// Get returns the first of the month, or the zero time when unset.
func (o *MonthOptions) Get(loc *time.Location) (time.Time, error) {
	if o.Month == "" {
		return time.Time{}, nil
	}
	for _, layout := range monthLayouts {
		if t, err := time.ParseInLocation(layout, o.Month, loc); err == nil {
			return calendar.StartOfMonth(t), nil
		}
	}
	return time.Time{}, fmt.Errorf("invalid month %q, expected \"March 2024\" or 2024-03", o.Month)
}
