package commands

import (
	"context"

	"github.com/spf13/cobra"

	"tableflip.dev/datepick/pkg/runner/keys"
)

func addKeys(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "keys",
		Short: "Print the key bindings of the picker",
		Example: `
datepick keys
`,
		ValidArgs: []string{},
		RunE: func(cmd *cobra.Command, args []string) error {
			k := keys.Keys{}
			return k.Do(context.Background())
		},
	}

	topLevel.AddCommand(cmd)
}
