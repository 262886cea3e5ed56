// Package pick runs the interactive date picker.
package pick

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"cloudeng.io/logging/ctxlog"
	tea "github.com/charmbracelet/bubbletea/v2"
	"github.com/fatih/color"
	"github.com/mattn/go-isatty"

	"tableflip.dev/datepick/pkg/datevalue"
	"tableflip.dev/datepick/pkg/locale"
	"tableflip.dev/datepick/pkg/picker"
	"tableflip.dev/datepick/pkg/printers"
	"tableflip.dev/datepick/pkg/tui/components/datepicker"
)

// ErrNoTerminal is returned when stdin is not an interactive terminal.
var ErrNoTerminal = errors.New("pick needs an interactive terminal")

// Pick runs the picker and prints the chosen value.
type Pick struct {
	Initial     *datevalue.Value
	RangeMode   bool
	IncludeTime bool
	Locale      locale.Locale
	Labels      picker.Labels
	Format      printers.Format

	// Out receives the result. Defaults to color.Output.
	Out io.Writer
}

func isTerminal(f *os.File) bool {
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// Do runs the program. A cancelled picker prints nothing.
func (p *Pick) Do(ctx context.Context) error {
	if !isTerminal(os.Stdin) {
		return ErrNoTerminal
	}
	log := ctxlog.Logger(ctx)

	value := picker.NewVar(p.Initial)
	pk := picker.New(value, picker.NewVar(p.IncludeTime), picker.Options{
		Locale:            p.Locale,
		RangeModeLabel:    p.Labels.RangeMode,
		IncludesTimeLabel: p.Labels.IncludesTime,
		Logger:            log,
	})
	if p.RangeMode && p.Initial == nil {
		pk.SetRangeMode(true)
	}

	m := newModel(datepicker.New(pk))
	opts := []tea.ProgramOption{tea.WithAltScreen(), tea.WithContext(ctx)}
	if !isTerminal(os.Stdout) {
		// keep stdout clean for the result
		opts = append(opts, tea.WithOutput(os.Stderr))
	}
	log.Info("starting picker", "locale", p.Locale.String(), "range", pk.RangeMode())
	if _, err := tea.NewProgram(m, opts...).Run(); err != nil {
		return fmt.Errorf("running picker: %w", err)
	}
	if m.cancelled {
		log.Info("picker cancelled")
		return nil
	}
	log.Info("picker accepted", "changes", m.changes)
	return p.print(value.Get())
}

func (p *Pick) print(v *datevalue.Value) error {
	out := p.Out
	if out == nil {
		out = color.Output
	}
	if p.Format != printers.FormatPretty {
		return printers.Encode(out, p.Format, v)
	}
	pp := &printers.PrettyPrint{Out: out, Locale: p.Locale}
	pp.Value(v)
	return nil
}
