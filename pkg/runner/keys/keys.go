// Package keys prints the key bindings of the interactive picker.
package keys

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/bubbles/v2/key"
	"github.com/fatih/color"
	"github.com/gosuri/uitable"

	"tableflip.dev/datepick/pkg/runner/pick"
	"tableflip.dev/datepick/pkg/tui/components/datepicker"
)

// Keys prints a binding legend.
type Keys struct {
	Out io.Writer
}

// Do renders the picker and program bindings to Out.
func (k *Keys) Do(ctx context.Context) error {
	out := k.Out
	if out == nil {
		out = color.Output
	}
	_, _ = fmt.Fprintln(out, "")
	k.Table(ctx, out, "Picker", datepicker.DefaultKeyMap().Bindings())
	_, _ = fmt.Fprintln(out, "")
	k.Table(ctx, out, "Program", pick.HostBindings())
	_, _ = fmt.Fprintln(out, "")
	return nil
}

// Table renders one titled binding table.
func (k *Keys) Table(_ context.Context, out io.Writer, title string, bindings []key.Binding) {
	bold := color.New(color.Bold)

	tbl := uitable.New()
	tbl.Separator = "  "
	tbl.AddRow(bold.Sprint(title), bold.Sprint("Action"))
	for _, b := range bindings {
		tbl.AddRow(strings.Join(b.Keys(), " "), b.Help().Desc)
	}
	tbl.RightAlign(0)

	_, _ = fmt.Fprintln(out, tbl)
}
