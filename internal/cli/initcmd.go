package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
)

const defaultConfigPath = "./.complate/config.yaml"

const starterConfig = `version: 1
templates:
  greet:
    content:
      inline: |
        Hello, {{ name }}!
        Today is {{ date }}.
    values:
      - name: name
        prompt: "Who should be greeted?"
        required: true
        default:
          static: World
      - name: date
        default:
          shell: date +%Y-%m-%d
`

func init() {
	rootCmd.AddCommand(initCmd)
}

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize a starter configuration",
	Long:  fmt.Sprintf("Write a starter configuration to %q.", defaultConfigPath),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := filepath.Clean(defaultConfigPath)

		if _, err := os.Stat(path); err == nil {
			return &PreflightError{
				Message:  fmt.Sprintf("%s already exists", path),
				Hint:     "remove it first if you want a fresh start",
				NextStep: "complate render",
			}
		}

		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return fmt.Errorf("create config directory: %w", err)
		}
		if err := os.WriteFile(path, []byte(starterConfig), 0o644); err != nil {
			return fmt.Errorf("write starter config: %w", err)
		}

		fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", path)
		return nil
	},
}
