package cli

import "github.com/spf13/cobra"

// completionCommand creates the completion command for generating shell completions.
func (c *CLI) completionCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "completion [bash|zsh|fish|powershell]",
		Short: "Generate shell completion scripts",
		Long: `Generate shell completion scripts for tianzige.

The scripts complete the generate, templates and serve commands with
their flags, including the names accepted by --page-size.

Bash:
  $ source <(tianzige completion bash)
  $ tianzige completion bash > /etc/bash_completion.d/tianzige

Zsh:
  $ tianzige completion zsh > "${fpath[1]}/_tianzige"
  (needs "autoload -U compinit; compinit" in ~/.zshrc)

Fish:
  $ tianzige completion fish > ~/.config/fish/completions/tianzige.fish

PowerShell:
  PS> tianzige completion powershell | Out-String | Invoke-Expression`,
		DisableFlagsInUseLine: true,
		ValidArgs:             []string{"bash", "zsh", "fish", "powershell"},
		Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			switch args[0] {
			case "bash":
				return cmd.Root().GenBashCompletion(cmd.OutOrStdout())
			case "zsh":
				return cmd.Root().GenZshCompletion(cmd.OutOrStdout())
			case "fish":
				return cmd.Root().GenFishCompletion(cmd.OutOrStdout(), true)
			case "powershell":
				return cmd.Root().GenPowerShellCompletionWithDesc(cmd.OutOrStdout())
			}
			return nil
		},
	}

	return cmd
}
