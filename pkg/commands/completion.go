package commands

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
)

var completionShells = []string{"bash", "zsh", "fish", "powershell"}

func writeCompletion(topLevel *cobra.Command, shell string, out io.Writer) error {
	switch shell {
	case "", "bash":
		return topLevel.GenBashCompletionV2(out, true)
	case "zsh":
		return topLevel.GenZshCompletion(out)
	case "fish":
		return topLevel.GenFishCompletion(out, true)
	case "powershell":
		return topLevel.GenPowerShellCompletionWithDesc(out)
	}
	return fmt.Errorf("unsupported shell %q, expected one of %v", shell, completionShells)
}

func addCompletions(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:       "completion [bash|zsh|fish|powershell]",
		Short:     "Generates shell completion scripts",
		ValidArgs: completionShells,
		Args: func(cmd *cobra.Command, args []string) error {
			if err := cobra.MaximumNArgs(1)(cmd, args); err != nil {
				return err
			}
			return cobra.OnlyValidArgs(cmd, args)
		},
		Long: `To load completion in bash run

. <(datepick completion)

To configure your bash shell to load completions for each session add to your bashrc

# ~/.bashrc or ~/.profile
. <(datepick completion)

Other shells take the shell name, for example:

datepick completion zsh > "${fpath[1]}/_datepick"
datepick completion fish > ~/.config/fish/completions/datepick.fish
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			shell := ""
			if len(args) == 1 {
				shell = args[0]
			}
			return writeCompletion(topLevel, shell, cmd.OutOrStdout())
		},
	}

	topLevel.AddCommand(cmd)
}
