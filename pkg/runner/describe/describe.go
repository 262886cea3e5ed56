// Package describe prints the human description of a date value.
package describe

import (
	"context"
	"io"

	"cloudeng.io/logging/ctxlog"
	"github.com/fatih/color"

	"tableflip.dev/datepick/pkg/datevalue"
	"tableflip.dev/datepick/pkg/locale"
	"tableflip.dev/datepick/pkg/printers"
)

// Result is the machine readable output of Describe.
type Result struct {
	Description string          `json:"description" yaml:"description"`
	Value       datevalue.Value `json:"value" yaml:"value"`
}

type Describe struct {
	Value  datevalue.Value
	Locale locale.Locale
	Format printers.Format
	Out    io.Writer
}

func (d *Describe) Do(ctx context.Context) error {
	desc := d.Value.Describe(d.Locale)
	ctxlog.Logger(ctx).Debug("describe", "value", d.Value.String(), "description", desc)

	out := d.Out
	if out == nil {
		out = color.Output
	}
	if d.Format != printers.FormatPretty {
		return printers.Encode(out, d.Format, Result{Description: desc, Value: d.Value})
	}
	pp := &printers.PrettyPrint{Out: out, Locale: d.Locale}
	pp.Value(&d.Value)
	return nil
}
