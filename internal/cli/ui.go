// Package cli provides TUI launch commands.
package cli

import (
	"github.com/spf13/cobra"

	"github.com/opencode-ai/tinct/internal/scheme"
	"github.com/opencode-ai/tinct/internal/tui"
)

func init() {
	rootCmd.AddCommand(uiCmd)
}

var uiCmd = &cobra.Command{
	Use:   "ui",
	Short: "Browse schemes and widget styles interactively",
	Long:  "Launch a terminal gallery that previews every widget style for each built-in scheme.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runTUI()
	},
}

func runTUI() error {
	if IsNonInteractive() {
		return &PreflightError{
			Message:  "the style gallery requires an interactive terminal",
			Hint:     "Run without --non-interactive and with a TTY, or print styles instead",
			NextStep: "tinct show",
		}
	}

	tuiConfig := tui.Config{
		Schemes: scheme.Names(),
	}
	if cfg := GetConfig(); cfg != nil {
		tuiConfig.Scheme = cfg.Theme.Scheme
		tuiConfig.Name = cfg.Theme.Name
	}

	return tui.RunWithConfig(tuiConfig)
}
