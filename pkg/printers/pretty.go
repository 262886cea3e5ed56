package printers

import (
	"fmt"
	"io"
	"time"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"
	"github.com/muesli/termenv"

	"tableflip.dev/datepick/pkg/datevalue"
	"tableflip.dev/datepick/pkg/locale"
)

type PrettyPrint struct {
	Out    io.Writer
	Locale locale.Locale
}

// SyncColorProfile turns fatih/color off when the terminal cannot show
// colour at all.
func SyncColorProfile() {
	if termenv.EnvColorProfile() == termenv.Ascii {
		color.NoColor = true
	}
}

func (pp *PrettyPrint) out() io.Writer {
	if pp.Out == nil {
		return color.Output
	}
	return pp.Out
}

func (pp *PrettyPrint) NewLine() {
	_, _ = fmt.Fprintln(pp.out(), "")
}

func (pp *PrettyPrint) Title(title string) {
	t := color.New(color.Bold, color.Underline)
	_, _ = t.Fprintln(pp.out(), title)
}

// Value prints a human description of v followed by its exact instants.
func (pp *PrettyPrint) Value(v *datevalue.Value) {
	if v == nil || v.IsZero() {
		f := color.New(color.Faint, color.Italic)
		_, _ = f.Fprint(pp.out(), " none\n")
		return
	}

	pp.Title(v.Describe(pp.Locale))

	faint := color.New(color.Faint)
	tbl := uitable.New()
	tbl.Separator = "  "
	tbl.AddRow(faint.Sprint("kind"), v.Kind().String())
	switch v.Kind() {
	case datevalue.KindSingle:
		tbl.AddRow(faint.Sprint("date"), v.Date().Format(time.RFC3339))
	case datevalue.KindRange:
		tbl.AddRow(faint.Sprint("start"), v.Start().Format(time.RFC3339))
		tbl.AddRow(faint.Sprint("end"), v.End().Format(time.RFC3339))
	}
	tbl.RightAlign(0)
	_, _ = fmt.Fprintln(pp.out(), tbl)
}
