package cmd

import (
	"os"

	"github.com/spf13/cobra"
)

var completionCmd = &cobra.Command{
	Use:   "completion [bash|zsh|fish|powershell]",
	Short: "Generate shell completion scripts",
	Long: `Generate shell completion scripts for regressci.

To load completions:

Bash:
  $ source <(regressci completion bash)

  # To load completions for each session, execute once:
  # Linux:
  $ regressci completion bash > /etc/bash_completion.d/regressci
  # macOS:
  $ regressci completion bash > $(brew --prefix)/etc/bash_completion.d/regressci

Zsh:
  # If shell completion is not already enabled in your environment,
  # you will need to enable it. You can execute the following once:
  $ echo "autoload -U compinit; compinit" >> ~/.zshrc

  # To load completions for each session, execute once:
  $ regressci completion zsh > "${fpath[1]}/_regressci"

  # You will need to start a new shell for this setup to take effect.

Fish:
  $ regressci completion fish | source

  # To load completions for each session, execute once:
  $ regressci completion fish > ~/.config/fish/completions/regressci.fish

PowerShell:
  PS> regressci completion powershell | Out-String | Invoke-Expression

  # To load completions for every new session, run:
  PS> regressci completion powershell > regressci.ps1
  # and source this file from your PowerShell profile.
`,
	DisableFlagsInUseLine: true,
	ValidArgs:             []string{"bash", "zsh", "fish", "powershell"},
	Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
	RunE: func(_ *cobra.Command, args []string) error {
		switch args[0] {
		case "bash":
			return rootCmd.GenBashCompletion(os.Stdout)
		case "zsh":
			return rootCmd.GenZshCompletion(os.Stdout)
		case "fish":
			return rootCmd.GenFishCompletion(os.Stdout, true)
		case "powershell":
			return rootCmd.GenPowerShellCompletionWithDesc(os.Stdout)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(completionCmd)
}
