package commands

import (
	"time"

	"github.com/spf13/cobra"

	"tableflip.dev/datepick/pkg/commands/options"
	"tableflip.dev/datepick/pkg/runner/grid"
)

func addGrid(topLevel *cobra.Command) {
	mo := &options.MonthOptions{}
	do := &options.DateOptions{}
	lo := &options.LocaleOptions{}
	output := &options.OutputOptions{}

	cmd := &cobra.Command{
		Use:   "grid",
		Short: "Print the five week grid of a month.",
		Example: `
datepick grid
datepick grid --month="March 2024" --week-start=sunday
datepick grid --on=2024-5-5 --to=2024-5-10
datepick grid --month=2024-09 --locale=fr-FR --json
`,
		ValidArgs: []string{},
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := newSession(cmd.Context())
			if err != nil {
				return output.HandleError(err)
			}
			defer s.Close()

			format, err := output.Format()
			if err != nil {
				return output.HandleError(err)
			}
			l, err := lo.Resolve(s.cfg)
			if err != nil {
				return output.HandleError(err)
			}
			month, err := mo.Get(time.Local)
			if err != nil {
				return output.HandleError(err)
			}
			highlight, err := do.Value(time.Now())
			if err != nil {
				return output.HandleError(err)
			}
			if month.IsZero() && highlight != nil {
				month = highlight.End()
			}

			g := grid.Grid{
				Month:     month,
				Locale:    l,
				Highlight: highlight,
				Format:    format,
			}
			return output.HandleError(g.Do(s.ctx))
		},
	}

	options.AddMonthArgs(cmd, mo)
	options.AddOnArgs(cmd, do)
	options.AddRangeArgs(cmd, do)
	options.AddLocaleArgs(cmd, lo)
	options.AddOutputArg(cmd, output)

	topLevel.AddCommand(cmd)
}
