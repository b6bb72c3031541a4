// Package config loads application configuration from a YAML file with
// environment-variable overrides.
package config

import (
	"fmt"

	"github.com/spf13/viper"
)

// Config represents the complete application configuration.
type Config struct {
	Analysis AnalysisConfig `mapstructure:"analysis"`
	Storage  StorageConfig  `mapstructure:"storage"`
	Logging  LoggingConfig  `mapstructure:"logging"`
}

// AnalysisConfig holds defaults for building the observation series.
type AnalysisConfig struct {
	// AnchorYear is the calendar year of the newest observation. 0 means
	// "use the current year".
	AnchorYear int `mapstructure:"anchor_year"`
}

// StorageConfig holds analysis-run persistence configuration.
type StorageConfig struct {
	Enabled bool   `mapstructure:"enabled"`
	Path    string `mapstructure:"path"`
}

// LoggingConfig holds logging configuration.
type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// Load reads configuration from the given file plus TASA_-prefixed
// environment variables. An empty path loads defaults only.
func Load(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix("TASA")
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("analysis.anchor_year", 0)

	v.SetDefault("storage.enabled", false)
	v.SetDefault("storage.path", "./data/tasacrecimiento.db")

	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "text")
}

// Validate checks that all configuration values are usable.
func (c *Config) Validate() error {
	if c.Analysis.AnchorYear < 0 {
		return fmt.Errorf("analysis.anchor_year must not be negative")
	}

	if c.Storage.Enabled && c.Storage.Path == "" {
		return fmt.Errorf("storage.path is required when storage is enabled")
	}

	validLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	if !validLevels[c.Logging.Level] {
		return fmt.Errorf("logging.level must be one of: debug, info, warn, error")
	}
	validFormats := map[string]bool{"text": true, "plain": true}
	if !validFormats[c.Logging.Format] {
		return fmt.Errorf("logging.format must be one of: text, plain")
	}

	return nil
}
