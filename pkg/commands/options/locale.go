package options

import (
	"github.com/goodsign/monday"
	"github.com/spf13/cobra"

	"tableflip.dev/datepick/pkg/config"
	"tableflip.dev/datepick/pkg/locale"
)

// LocaleOptions
type LocaleOptions struct {
	Locale    string
	WeekStart string
}

func AddLocaleArgs(cmd *cobra.Command, o *LocaleOptions) {
	cmd.Flags().StringVar(&o.Locale, "locale", "",
		`Locale for names and the first weekday, example: --locale=de-DE. Defaults to the config or $LANG.`)
	cmd.Flags().StringVar(&o.WeekStart, "week-start", "",
		`Override the first weekday, example: --week-start=monday.`)

	_ = cmd.RegisterFlagCompletionFunc("locale", func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
		var out []string
		for _, l := range monday.ListLocales() {
			out = append(out, string(l))
		}
		return out, cobra.ShellCompDirectiveNoFileComp
	})
	_ = cmd.RegisterFlagCompletionFunc("week-start", func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
		return []string{"sunday", "monday", "tuesday", "wednesday", "thursday", "friday", "saturday"}, cobra.ShellCompDirectiveNoFileComp
	})
}

// Resolve applies the flags on top of cfg.
func (o *LocaleOptions) Resolve(cfg *config.Config) (locale.Locale, error) {
	c := *cfg
	if o.Locale != "" {
		c.Locale = o.Locale
	}
	if o.WeekStart != "" {
		if _, err := locale.ParseWeekday(o.WeekStart); err != nil {
			return locale.Locale{}, err
		}
		c.WeekStart = o.WeekStart
	}
	return c.ResolveLocale(), nil
}
