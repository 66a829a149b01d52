package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var (
	autocompleteOut   string
	autocompleteShell string
)

func init() {
	rootCmd.AddCommand(autocompleteCmd)

	autocompleteCmd.Flags().StringVarP(&autocompleteOut, "out", "o", "", "output file")
	autocompleteCmd.Flags().StringVarP(&autocompleteShell, "shell", "s", "", "shell flavor (bash|zsh|fish|powershell)")
	_ = autocompleteCmd.MarkFlagRequired("out")
	_ = autocompleteCmd.MarkFlagRequired("shell")
}

var autocompleteCmd = &cobra.Command{
	Use:   "autocomplete",
	Short: "Render shell completion scripts",
	RunE: func(cmd *cobra.Command, args []string) error {
		switch autocompleteShell {
		case "bash":
			return rootCmd.GenBashCompletionFile(autocompleteOut)
		case "zsh":
			return rootCmd.GenZshCompletionFile(autocompleteOut)
		case "fish":
			return rootCmd.GenFishCompletionFile(autocompleteOut, true)
		case "powershell":
			return rootCmd.GenPowerShellCompletionFile(autocompleteOut)
		default:
			return &PreflightError{
				Message: fmt.Sprintf("unknown shell %q", autocompleteShell),
				Hint:    "use bash, zsh, fish, or powershell",
			}
		}
	},
}
