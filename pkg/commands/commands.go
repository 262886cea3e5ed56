package commands

import (
	"github.com/spf13/cobra"

	base "github.com/n3wscott/cli-base/pkg/commands/options"
)

func New() *cobra.Command {

	cmd := &cobra.Command{
		Use:   "datepick",
		Short: base.Wrap80("Pick a date, or a range of dates, from a month grid in the terminal."),
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	AddCommands(cmd)
	return cmd
}

func AddCommands(topLevel *cobra.Command) {
	addPick(topLevel)
	addGrid(topLevel)
	addDescribe(topLevel)
	addKeys(topLevel)
	addVersion(topLevel)
	addCompletions(topLevel)
}
