package cli

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/voidpointergroup/complate/internal/backend"
	"github.com/voidpointergroup/complate/internal/config"
	"github.com/voidpointergroup/complate/internal/logging"
	"github.com/voidpointergroup/complate/internal/render"
	"github.com/voidpointergroup/complate/internal/shell"
)

var (
	renderConfigPath string
	renderTemplate   string
	renderTrust      string
	renderBackend    string
	renderLoose      bool
	renderValues     []string
)

func init() {
	rootCmd.AddCommand(renderCmd)

	renderCmd.Flags().StringVarP(&renderConfigPath, "config", "c", defaultConfigPath, "configuration file to use")
	renderCmd.Flags().StringVarP(&renderTemplate, "template", "t", "", "template to render, skipping selection")
	renderCmd.Flags().StringVar(&renderTrust, "trust", "none", "shell command trust mode (none|prompt|ultimate)")
	renderCmd.Flags().BoolVarP(&renderLoose, "loose", "l", false, "tolerate missing variable values")
	renderCmd.Flags().StringVarP(&renderBackend, "backend", "b", "headless", "execution backend (headless|cli|ui)")
	renderCmd.Flags().StringArrayVarP(&renderValues, "value", "v", nil, "override a value definition (key=value, repeatable)")
}

var renderCmd = &cobra.Command{
	Use:   "render",
	Short: "Render a template",
	Long:  "Render a template by resolving its variables as specified by the configuration.",
	Example: `  # Render the only template in the default config
  complate render

  # Pick a template interactively on the terminal
  complate render --backend cli

  # Allow shell-computed defaults and override one value
  complate -e render -t commit --trust ultimate -v summary="initial import"`,
	RunE: func(cmd *cobra.Command, args []string) error {
		renderTrust = settingOrFlag(cmd, "trust", renderTrust)
		renderBackend = settingOrFlag(cmd, "backend", renderBackend)
		renderConfigPath = settingOrFlag(cmd, "config", renderConfigPath)

		overrides, err := parseOverrides(renderValues)
		if err != nil {
			return err
		}

		trust, err := render.ParseTrustMode(renderTrust)
		if err != nil {
			return err
		}

		kind, err := backend.ParseKind(renderBackend)
		if err != nil {
			return err
		}
		if kind.Interactive() && IsNonInteractive() {
			return &PreflightError{
				Message:  fmt.Sprintf("backend %q requires an interactive terminal", kind),
				Hint:     "run with a TTY and without COMPLATE_NON_INTERACTIVE",
				NextStep: "complate render --backend headless",
			}
		}

		adapter, err := backend.New(kind)
		if err != nil {
			return err
		}

		cfg, err := config.Load(renderConfigPath)
		if err != nil {
			return err
		}

		privilege := render.PrivilegeNormal
		if experimental {
			privilege = render.PrivilegeExperimental
		}

		pipeline := render.NewPipeline(adapter, kind, shell.NewExecutor(), logging.Component("render"))
		output, err := pipeline.Render(context.Background(), render.Request{
			Config:    cfg,
			Template:  renderTemplate,
			Overrides: overrides,
			Trust:     trust,
			Privilege: privilege,
			Loose:     renderLoose,
		})
		if err != nil {
			return err
		}

		fmt.Fprint(os.Stdout, output)
		return nil
	},
}

// parseOverrides splits each key=value pair on the first "=". A pair
// without "=" is a caller mistake surfaced before the pipeline runs.
func parseOverrides(pairs []string) (map[string]string, error) {
	if len(pairs) == 0 {
		return nil, nil
	}
	overrides := make(map[string]string, len(pairs))
	for _, pair := range pairs {
		key, value, ok := strings.Cut(pair, "=")
		if !ok || key == "" {
			return nil, &PreflightError{
				Message: fmt.Sprintf("invalid value override %q", pair),
				Hint:    "overrides take the form key=value",
			}
		}
		overrides[key] = value
	}
	return overrides, nil
}
