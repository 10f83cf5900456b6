package cli

import (
	"os"

	"github.com/spf13/cobra"
)

// completionCommand creates the completion command for generating shell completions.
func (c *CLI) completionCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "completion [bash|zsh|fish|powershell]",
		Short: "Generate shell completion scripts",
		Long: `Generate shell completion scripts for tgraph.

To load completions:

Bash:
  $ source <(tgraph completion bash)

  # To load completions for each session, execute once:
  # Linux:
  $ tgraph completion bash > /etc/bash_completion.d/tgraph
  # macOS:
  $ tgraph completion bash > $(brew --prefix)/etc/bash_completion.d/tgraph

Zsh:
  $ tgraph completion zsh > "${fpath[1]}/_tgraph"

  # You will need to start a new shell for this setup to take effect.

Fish:
  $ tgraph completion fish | source

  # To load completions for each session, execute once:
  $ tgraph completion fish > ~/.config/fish/completions/tgraph.fish

PowerShell:
  PS> tgraph completion powershell | Out-String | Invoke-Expression
`,
		DisableFlagsInUseLine: true,
		ValidArgs:             []string{"bash", "zsh", "fish", "powershell"},
		Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			switch args[0] {
			case "bash":
				return cmd.Root().GenBashCompletion(os.Stdout)
			case "zsh":
				return cmd.Root().GenZshCompletion(os.Stdout)
			case "fish":
				return cmd.Root().GenFishCompletion(os.Stdout, true)
			case "powershell":
				return cmd.Root().GenPowerShellCompletionWithDesc(os.Stdout)
			}
			return nil
		},
	}

	return cmd
}
