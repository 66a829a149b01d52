package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/cobra/doc"
)

var (
	manOut    string
	manFormat string
)

func init() {
	rootCmd.AddCommand(manCmd)

	manCmd.Flags().StringVarP(&manOut, "out", "o", "", "output directory")
	manCmd.Flags().StringVarP(&manFormat, "format", "f", "manpages", "output format (manpages|markdown)")
	_ = manCmd.MarkFlagRequired("out")
}

var manCmd = &cobra.Command{
	Use:   "man",
	Short: "Render the manual",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := os.MkdirAll(manOut, 0o755); err != nil {
			return fmt.Errorf("create output directory: %w", err)
		}

		switch manFormat {
		case "manpages":
			header := &doc.GenManHeader{Title: "COMPLATE", Section: "1"}
			if err := doc.GenManTree(rootCmd, header, manOut); err != nil {
				return fmt.Errorf("generate manpages: %w", err)
			}
		case "markdown":
			if err := doc.GenMarkdownTree(rootCmd, manOut); err != nil {
				return fmt.Errorf("generate markdown manual: %w", err)
			}
		default:
			return &PreflightError{
				Message: fmt.Sprintf("unknown manual format %q", manFormat),
				Hint:    "use manpages or markdown",
			}
		}
		return nil
	},
}
