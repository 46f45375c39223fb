// Package common provides shared utilities for tradekit
package common

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	toml "github.com/pelletier/go-toml/v2"
)

// Config holds all configuration for tradekit
type Config struct {
	Environment string          `toml:"environment"`
	Backend     BackendConfig   `toml:"backend"`
	Session     SessionConfig   `toml:"session"`
	PriceFeed   PriceFeedConfig `toml:"pricefeed"`
	Logging     LoggingConfig   `toml:"logging"`
}

// BackendConfig holds the trading backend API configuration
type BackendConfig struct {
	BaseURL   string `toml:"base_url"`
	RateLimit int    `toml:"rate_limit"`
	Timeout   string `toml:"timeout"`
}

// GetTimeout parses and returns the timeout duration
func (c *BackendConfig) GetTimeout() time.Duration {
	d, err := time.ParseDuration(c.Timeout)
	if err != nil {
		return 30 * time.Second
	}
	return d
}

// SessionConfig holds session persistence configuration.
// TokenPath is the directory holding the persisted bearer token.
type SessionConfig struct {
	TokenPath string `toml:"token_path"`
}

// PriceFeedConfig holds price polling configuration
type PriceFeedConfig struct {
	Interval string `toml:"interval"`
}

// GetInterval parses and returns the polling cadence
func (c *PriceFeedConfig) GetInterval() time.Duration {
	d, err := time.ParseDuration(c.Interval)
	if err != nil {
		return 5 * time.Second
	}
	return d
}

// LoggingConfig holds logging configuration
type LoggingConfig struct {
	Level string `toml:"level"`
}

// NewDefaultConfig returns a Config with sensible defaults
func NewDefaultConfig() *Config {
	home, err := os.UserHomeDir()
	if err != nil {
		home = "."
	}

	return &Config{
		Environment: "development",
		Backend: BackendConfig{
			BaseURL:   "https://api.tradebazaar.app/api",
			RateLimit: 10,
			Timeout:   "30s",
		},
		Session: SessionConfig{
			TokenPath: filepath.Join(home, ".tradekit"),
		},
		PriceFeed: PriceFeedConfig{
			Interval: "5s",
		},
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}

// LoadConfig loads configuration from files with environment overrides
func LoadConfig(paths ...string) (*Config, error) {
	config := NewDefaultConfig()

	// Load and merge each config file in order (later files override earlier)
	for _, path := range paths {
		if path == "" {
			continue
		}

		if _, err := os.Stat(path); os.IsNotExist(err) {
			continue // Skip missing files
		}

		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
		}

		if err := toml.Unmarshal(data, config); err != nil {
			return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
		}
	}

	applyEnvOverrides(config)

	return config, nil
}

// applyEnvOverrides applies environment variable overrides to config
func applyEnvOverrides(config *Config) {
	if env := os.Getenv("TRADEKIT_ENV"); env != "" {
		config.Environment = env
	}

	if url := os.Getenv("TRADEKIT_BACKEND_URL"); url != "" {
		config.Backend.BaseURL = url
	}

	if rl := os.Getenv("TRADEKIT_BACKEND_RATE_LIMIT"); rl != "" {
		if n, err := strconv.Atoi(rl); err == nil {
			config.Backend.RateLimit = n
		}
	}

	if timeout := os.Getenv("TRADEKIT_BACKEND_TIMEOUT"); timeout != "" {
		config.Backend.Timeout = timeout
	}

	if path := os.Getenv("TRADEKIT_TOKEN_PATH"); path != "" {
		config.Session.TokenPath = path
	}

	if interval := os.Getenv("TRADEKIT_PRICEFEED_INTERVAL"); interval != "" {
		config.PriceFeed.Interval = interval
	}

	if level := os.Getenv("TRADEKIT_LOG_LEVEL"); level != "" {
		config.Logging.Level = level
	}
}
