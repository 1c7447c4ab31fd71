// Package config loads the tool configuration from a file, environment
// variables, and defaults.
package config

import (
	"runtime"
	"strings"

	"github.com/spf13/viper"

	"github.com/lgbarn/pgn-tree-go/internal/errors"
)

// Config holds the settings shared by the pgntree commands.
type Config struct {
	// LineWidth is the soft wrap column for rendered movetext.
	LineWidth int `mapstructure:"line_width"`

	// Workers is the number of goroutines used when parsing whole
	// databases.
	Workers int `mapstructure:"workers"`

	// LogLevel is a zap level name: debug, info, warn, or error.
	LogLevel string `mapstructure:"log_level"`
}

// New returns the default configuration.
func New() *Config {
	return &Config{
		LineWidth: 80,
		Workers:   runtime.NumCPU(),
		LogLevel:  "warn",
	}
}

// Load reads the configuration. A non-empty path names an explicit config
// file; otherwise .pgntree.yaml in the working directory is used when
// present. Environment variables with the PGNTREE_ prefix override file
// values.
func Load(path string) (*Config, error) {
	v := viper.New()
	defaults := New()
	v.SetDefault("line_width", defaults.LineWidth)
	v.SetDefault("workers", defaults.Workers)
	v.SetDefault("log_level", defaults.LogLevel)

	v.SetEnvPrefix("PGNTREE")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, errors.Wrapf(err, "reading config %s", path)
		}
	} else {
		v.SetConfigName(".pgntree")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return nil, errors.Wrap(err, "reading config")
			}
		}
	}

	cfg := New()
	if err := v.Unmarshal(cfg); err != nil {
		return nil, errors.Wrap(err, "parsing config")
	}
	if cfg.LineWidth < 20 {
		cfg.LineWidth = 20
	}
	if cfg.Workers < 1 {
		cfg.Workers = 1
	}
	return cfg, nil
}
