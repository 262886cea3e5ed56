package commands

import (
	"errors"
	"time"

	"github.com/spf13/cobra"

	"tableflip.dev/datepick/pkg/commands/options"
	"tableflip.dev/datepick/pkg/runner/describe"
)

func addDescribe(topLevel *cobra.Command) {
	do := &options.DateOptions{}
	lo := &options.LocaleOptions{}
	output := &options.OutputOptions{}

	cmd := &cobra.Command{
		Use:   "describe",
		Short: "Describe a date or a range the way the picker labels it.",
		Example: `
datepick describe --on=2024-5-10
datepick describe --on=2024-5-5 --to=2024-6-2 --locale=en-GB
datepick describe --on=5/1 --for=2w --json
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
			v, err := do.Value(time.Now())
			if err != nil {
				return output.HandleError(err)
			}
			if v == nil {
				return output.HandleError(errors.New("--on is required"))
			}

			d := describe.Describe{
				Value:  *v,
				Locale: l,
				Format: format,
			}
			return output.HandleError(d.Do(s.ctx))
		},
	}

	options.AddOnArgs(cmd, do)
	options.AddRangeArgs(cmd, do)
	options.AddLocaleArgs(cmd, lo)
	options.AddOutputArg(cmd, output)

	topLevel.AddCommand(cmd)
}
