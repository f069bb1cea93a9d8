// Package cli implements the tinct command tree.
package cli

import (
	"fmt"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/opencode-ai/tinct/internal/config"
	"github.com/opencode-ai/tinct/internal/logging"
	"github.com/opencode-ai/tinct/internal/scheme"
	"github.com/opencode-ai/tinct/internal/theme"
)

var (
	cfgFile        string
	noColor        bool
	nonInteractive bool

	v      *viper.Viper
	appCfg *config.Config
)

var rootCmd = &cobra.Command{
	Use:           "tinct",
	Short:         "Derive terminal widget styles from a color scheme",
	Long:          "tinct turns one color scheme into a complete, consistent set of widget styles.",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return initConfig()
	},
}

func init() {
	v = config.NewViper()

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&cfgFile, "config", "", "config file (default $XDG_CONFIG_HOME/tinct/config.yaml)")
	flags.String("scheme", "", "color scheme name")
	flags.String("name", "", "theme display name")
	flags.String("log-level", "", "log level (trace, debug, info, warn, error)")
	flags.String("log-format", "", "log format (console, json)")
	flags.BoolVar(&noColor, "no-color", false, "disable colored output")
	flags.BoolVar(&nonInteractive, "non-interactive", false, "never start interactive views")

	mustBind("theme.scheme", "scheme")
	mustBind("theme.name", "name")
	mustBind("logging.level", "log-level")
	mustBind("logging.format", "log-format")
}

func mustBind(key, flag string) {
	if err := v.BindPFlag(key, rootCmd.PersistentFlags().Lookup(flag)); err != nil {
		panic(err)
	}
}

func initConfig() error {
	cfg, err := config.Load(v, cfgFile)
	if err != nil {
		return err
	}
	if err := logging.Init(logging.Config{Level: cfg.Logging.Level, Format: cfg.Logging.Format}); err != nil {
		return err
	}
	if noColor || os.Getenv("NO_COLOR") != "" {
		lipgloss.SetColorProfile(termenv.Ascii)
	}
	appCfg = cfg
	logger := logging.Component("cli")
	logger.Debug().
		Str("scheme", cfg.Theme.Scheme).
		Str("name", cfg.Theme.Name).
		Msg("configuration loaded")
	return nil
}

// GetConfig returns the loaded configuration, or nil before a command ran.
func GetConfig() *config.Config {
	return appCfg
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

// currentTheme builds the theme selected by the configuration.
func currentTheme() (*theme.Theme, error) {
	cfg := GetConfig()
	if cfg == nil {
		def := config.DefaultConfig()
		cfg = &def
	}
	s, err := scheme.Lookup(cfg.Theme.Scheme)
	if err != nil {
		return nil, fmt.Errorf("failed to select scheme: %w", err)
	}
	return theme.New(cfg.Theme.Name, s), nil
}
