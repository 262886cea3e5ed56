package commands

import (
	"time"

	"github.com/spf13/cobra"

	"tableflip.dev/datepick/pkg/commands/options"
	"tableflip.dev/datepick/pkg/picker"
	"tableflip.dev/datepick/pkg/runner/pick"
)

func addPick(topLevel *cobra.Command) {
	do := &options.DateOptions{}
	lo := &options.LocaleOptions{}
	output := &options.OutputOptions{}
	rangeMode := false
	withTime := false

	cmd := &cobra.Command{
		Use:   "pick",
		Short: "Pick a date or a range interactively and print it.",
		Example: `
datepick pick
datepick pick --range --json
datepick pick --on=2024-5-10 --time
datepick pick --on=2024-5-5 --to=2024-6-2 -o yaml
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
			initial, err := do.Value(time.Now())
			if err != nil {
				return output.HandleError(err)
			}

			p := pick.Pick{
				Initial:     initial,
				RangeMode:   rangeMode,
				IncludeTime: withTime || s.cfg.IncludeTime,
				Locale:      l,
				Labels: picker.Labels{
					RangeMode:    s.cfg.RangeModeLabel,
					IncludesTime: s.cfg.IncludeTimeLabel,
				},
				Format: format,
			}
			return output.HandleError(p.Do(s.ctx))
		},
	}

	options.AddOnArgs(cmd, do)
	options.AddRangeArgs(cmd, do)
	options.AddLocaleArgs(cmd, lo)
	options.AddOutputArg(cmd, output)
	cmd.Flags().BoolVar(&rangeMode, "range", false, "Start in range mode.")
	cmd.Flags().BoolVar(&withTime, "time", false, "Include the time of day.")

	topLevel.AddCommand(cmd)
}
