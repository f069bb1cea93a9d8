// Package config loads tinct settings from defaults, an optional config file,
// TINCT_* environment variables and bound command-line flags.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"

	"github.com/opencode-ai/tinct/internal/logging"
	"github.com/opencode-ai/tinct/internal/scheme"
)

// ErrInvalidConfig is returned when a loaded setting fails validation.
var ErrInvalidConfig = errors.New("invalid config")

// EnvPrefix is the prefix for environment overrides, e.g. TINCT_THEME_SCHEME.
const EnvPrefix = "TINCT"

// Config is the full application configuration.
type Config struct {
	Theme   ThemeConfig   `mapstructure:"theme"`
	Logging LoggingConfig `mapstructure:"logging"`
}

// ThemeConfig selects the palette and the theme's display name.
type ThemeConfig struct {
	Scheme string `mapstructure:"scheme"`
	Name   string `mapstructure:"name"`
}

// LoggingConfig controls log output.
type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// DefaultConfig returns the built-in defaults.
func DefaultConfig() Config {
	return Config{
		Theme: ThemeConfig{
			Scheme: "imperial",
			Name:   "dark",
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "console",
		},
	}
}

// NewViper returns a viper instance with defaults and env bindings applied.
func NewViper() *viper.Viper {
	v := viper.New()
	def := DefaultConfig()
	v.SetDefault("theme.scheme", def.Theme.Scheme)
	v.SetDefault("theme.name", def.Theme.Name)
	v.SetDefault("logging.level", def.Logging.Level)
	v.SetDefault("logging.format", def.Logging.Format)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	return v
}

// DefaultPath returns $XDG_CONFIG_HOME/tinct/config.yaml, falling back to
// ~/.config when XDG_CONFIG_HOME is unset.
func DefaultPath() string {
	base := os.Getenv("XDG_CONFIG_HOME")
	if base == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return ""
		}
		base = filepath.Join(home, ".config")
	}
	return filepath.Join(base, "tinct", "config.yaml")
}

// Load reads configuration into v and returns the validated result. An
// explicit path must exist; the default path is optional.
func Load(v *viper.Viper, path string) (*Config, error) {
	logger := logging.Component("config")

	explicit := path != ""
	if !explicit {
		path = DefaultPath()
	}

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			if explicit || !isNotExist(err) {
				return nil, fmt.Errorf("failed to read config %s: %w", path, err)
			}
			logger.Debug().Str("path", path).Msg("no config file, using defaults")
		} else {
			logger.Debug().Str("path", v.ConfigFileUsed()).Msg("loaded config file")
		}
	}

	cfg := DefaultConfig()
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks that every setting names something that exists.
func (c *Config) Validate() error {
	if _, err := scheme.Lookup(c.Theme.Scheme); err != nil {
		return fmt.Errorf("%w: theme.scheme: %v", ErrInvalidConfig, err)
	}
	if strings.TrimSpace(c.Theme.Name) == "" {
		return fmt.Errorf("%w: theme.name must not be empty", ErrInvalidConfig)
	}
	if _, err := logging.ParseLevel(c.Logging.Level); err != nil {
		return fmt.Errorf("%w: logging.level: %v", ErrInvalidConfig, err)
	}
	switch strings.ToLower(c.Logging.Format) {
	case "console", "json":
	default:
		return fmt.Errorf("%w: logging.format %q (want console or json)", ErrInvalidConfig, c.Logging.Format)
	}
	return nil
}

func isNotExist(err error) bool {
	var notFound viper.ConfigFileNotFoundError
	return errors.Is(err, os.ErrNotExist) || errors.As(err, &notFound)
}
