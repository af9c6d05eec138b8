package cli

import (
	"github.com/spf13/cobra"
)

// completionCommand creates the completion command.
func (c *CLI) completionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "completion [bash|zsh|fish|powershell]",
		Short: "Generate shell completion scripts",
		Long: `Generate a shell completion script for tooltipkit.

  $ source <(tooltipkit completion bash)
  $ tooltipkit completion zsh > "${fpath[1]}/_tooltipkit"
  $ tooltipkit completion fish | source
  PS> tooltipkit completion powershell | Out-String | Invoke-Expression`,
		DisableFlagsInUseLine: true,
		ValidArgs:             []string{"bash", "zsh", "fish", "powershell"},
		Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		// Completion must work without a readable config file.
		PersistentPreRunE: func(*cobra.Command, []string) error { return nil },
		RunE: func(cmd *cobra.Command, args []string) error {
			w := cmd.OutOrStdout()
			switch args[0] {
			case "bash":
				return cmd.Root().GenBashCompletion(w)
			case "zsh":
				return cmd.Root().GenZshCompletion(w)
			case "fish":
				return cmd.Root().GenFishCompletion(w, true)
			default:
				return cmd.Root().GenPowerShellCompletionWithDesc(w)
			}
		},
	}
}
