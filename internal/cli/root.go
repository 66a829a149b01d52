// Package cli implements the complate command-line interface.
package cli

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var experimental bool

var rootCmd = &cobra.Command{
	Use:           "complate",
	Short:         "A text templating tool for CLI workflows",
	Long:          "Complate renders text templates by resolving their variables from overrides, prompts, shell commands, and static defaults.",
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	cobra.OnInitialize(initSettings)
	rootCmd.PersistentFlags().BoolVarP(&experimental, "experimental", "e", false, "enable experimental features")
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

// initSettings wires the optional settings file and COMPLATE_* environment
// variables into flag defaults (see settingOrFlag).
func initSettings() {
	viper.SetEnvPrefix("complate")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()

	if home, err := os.UserHomeDir(); err == nil && home != "" {
		viper.AddConfigPath(filepath.Join(home, ".config", "complate"))
	}
	viper.SetConfigName("settings")
	viper.SetConfigType("yaml")

	// The settings file is optional; only real parse failures matter.
	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			fmt.Fprintf(os.Stderr, "warning: settings file ignored: %v\n", err)
		}
	}
}

// settingOrFlag prefers an explicitly set flag, then a settings/env value,
// then the flag's default.
func settingOrFlag(cmd *cobra.Command, flag string, current string) string {
	if cmd.Flags().Changed(flag) {
		return current
	}
	if viper.IsSet(flag) {
		return viper.GetString(flag)
	}
	return current
}

// PreflightError reports CLI-level misuse before the pipeline runs.
type PreflightError struct {
	Message  string
	Hint     string
	NextStep string
}

func (e *PreflightError) Error() string {
	parts := []string{e.Message}
	if e.Hint != "" {
		parts = append(parts, "hint: "+e.Hint)
	}
	if e.NextStep != "" {
		parts = append(parts, "next: "+e.NextStep)
	}
	return strings.Join(parts, "\n")
}
