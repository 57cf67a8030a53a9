// Package daemon holds process configuration: TOML file with environment
// overrides on top of defaults.
package daemon

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/caarlos0/env/v11"

	"github.com/turismocol/turismocol/internal/domain"
)

// Config is the full process configuration.
type Config struct {
	API     APIConfig          `toml:"api"`
	Storage StorageConfig      `toml:"storage"`
	Points  domain.PointValues `toml:"points"`
	Limits  LimitsConfig       `toml:"limits"`
}

// APIConfig configures the HTTP server.
type APIConfig struct {
	Host          string `toml:"host" env:"TURISMOCOL_HOST"`
	Port          int    `toml:"port" env:"TURISMOCOL_PORT"`
	EnableMetrics bool   `toml:"enable_metrics" env:"TURISMOCOL_METRICS"`
}

// StorageConfig configures persistence.
type StorageConfig struct {
	Dir string `toml:"dir" env:"TURISMOCOL_DATA_DIR"`
}

// LimitsConfig bounds list endpoints.
type LimitsConfig struct {
	DefaultPageSize int `toml:"default_page_size"`
	MaxPageSize     int `toml:"max_page_size"`
	HistoryLimit    int `toml:"history_limit"`
}

// DefaultConfig returns production defaults. Port 8001 matches the original
// deployment the web client expects.
func DefaultConfig() Config {
	home, _ := os.UserHomeDir()
	return Config{
		API: APIConfig{
			Host:          "127.0.0.1",
			Port:          8001,
			EnableMetrics: true,
		},
		Storage: StorageConfig{
			Dir: filepath.Join(home, ".turismocol"),
		},
		Points: domain.DefaultPointValues(),
		Limits: LimitsConfig{
			DefaultPageSize: 50,
			MaxPageSize:     200,
			HistoryLimit:    50,
		},
	}
}

// Load builds the effective configuration: defaults, then the TOML file at
// path (missing file is fine), then environment overrides.
func Load(path string) (Config, error) {
	cfg := DefaultConfig()

	if path != "" {
		if _, err := os.Stat(path); err == nil {
			if _, err := toml.DecodeFile(path, &cfg); err != nil {
				return cfg, fmt.Errorf("parse config %s: %w", path, err)
			}
		}
	}

	if err := env.Parse(&cfg); err != nil {
		return cfg, fmt.Errorf("parse environment: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// Validate rejects configurations the server cannot run with.
func (c *Config) Validate() error {
	if c.API.Port < 1 || c.API.Port > 65535 {
		return fmt.Errorf("api.port %d out of range", c.API.Port)
	}
	if c.Storage.Dir == "" {
		return fmt.Errorf("storage.dir must be set")
	}
	if c.Limits.DefaultPageSize < 1 || c.Limits.MaxPageSize < c.Limits.DefaultPageSize {
		return fmt.Errorf("invalid page size limits: default %d, max %d",
			c.Limits.DefaultPageSize, c.Limits.MaxPageSize)
	}
	if c.Limits.HistoryLimit < 1 {
		return fmt.Errorf("limits.history_limit must be positive")
	}
	if c.Points.View < 0 || c.Points.Save < 0 || c.Points.Like < 0 ||
		c.Points.SubmissionBonus < 0 || c.Points.ApprovalBonus < 0 {
		return fmt.Errorf("point values must not be negative")
	}
	return nil
}

// DefaultConfigPath returns the conventional config file location.
func DefaultConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".turismocol", "config.toml")
}
