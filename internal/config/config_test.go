package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)
	require.NoError(t, cfg.Validate())

	require.Equal(t, 0, cfg.Analysis.AnchorYear)
	require.False(t, cfg.Storage.Enabled)
	require.Equal(t, "info", cfg.Logging.Level)
}

func TestLoadFromFile(t *testing.T) {
	path := writeConfig(t, `
analysis:
  anchor_year: 2024

storage:
  enabled: true
  path: "./data/test.db"

logging:
  level: "debug"
  format: "text"
`)

	cfg, err := Load(path)
	require.NoError(t, err)
	require.NoError(t, cfg.Validate())

	require.Equal(t, 2024, cfg.Analysis.AnchorYear)
	require.True(t, cfg.Storage.Enabled)
	require.Equal(t, "./data/test.db", cfg.Storage.Path)
	require.Equal(t, "debug", cfg.Logging.Level)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		ok     bool
	}{
		{"defaults are valid", func(c *Config) {}, true},
		{"negative anchor year", func(c *Config) { c.Analysis.AnchorYear = -1 }, false},
		{"storage enabled without path", func(c *Config) {
			c.Storage.Enabled = true
			c.Storage.Path = ""
		}, false},
		{"unknown log level", func(c *Config) { c.Logging.Level = "verbose" }, false},
		{"unknown log format", func(c *Config) { c.Logging.Format = "json" }, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := Load("")
			require.NoError(t, err)
			tt.mutate(cfg)

			err = cfg.Validate()
			if tt.ok {
				require.NoError(t, err)
			} else {
				require.Error(t, err)
			}
		})
	}
}
