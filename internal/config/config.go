// Package config loads engine configuration from a TOML file with
// environment-variable overrides, and can watch the file for changes.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/pelletier/go-toml/v2"
)

// Config represents the application configuration.
type Config struct {
	// Backend API configuration
	API APIConfig `toml:"api"`

	// Catalog view configuration
	Catalog CatalogConfig `toml:"catalog"`

	// Saved-deck list configuration
	Decks DecksConfig `toml:"decks"`

	// Application configuration
	App AppConfig `toml:"app"`
}

// APIConfig contains backend connection settings.
type APIConfig struct {
	BaseURL        string `toml:"base_url" env:"DECKFORGE_API_URL"`        // Backend base URL
	Token          string `toml:"token" env:"DECKFORGE_API_TOKEN"`         // Bearer token
	RequestTimeout string `toml:"request_timeout" env:"DECKFORGE_TIMEOUT"` // Per-request timeout (e.g., "30s")
	RateDelay      string `toml:"rate_delay"`                              // Minimum delay between requests (e.g., "100ms")
}

// CatalogConfig contains catalog sync settings.
type CatalogConfig struct {
	DebounceWindow string `toml:"debounce_window" env:"DECKFORGE_DEBOUNCE"` // Fetch debounce window (e.g., "300ms")
	PageSize       int    `toml:"page_size" env:"DECKFORGE_PAGE_SIZE"`      // Catalog page size
}

// DecksConfig contains saved-deck list settings.
type DecksConfig struct {
	ImageConcurrency int `toml:"image_concurrency"` // Max concurrent image fetches
}

// AppConfig contains general application settings.
type AppConfig struct {
	DebugMode bool `toml:"debug_mode" env:"DECKFORGE_DEBUG"` // Enable debug logging
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		API: APIConfig{
			BaseURL:        "http://localhost:8080/api",
			RequestTimeout: "30s",
			RateDelay:      "100ms",
		},
		Catalog: CatalogConfig{
			DebounceWindow: "300ms",
			PageSize:       10,
		},
		Decks: DecksConfig{
			ImageConcurrency: 4,
		},
		App: AppConfig{
			DebugMode: false,
		},
	}
}

func configPath() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("get home directory: %w", err)
	}

	configDir := filepath.Join(homeDir, ".deckforge")
	if err := os.MkdirAll(configDir, 0o755); err != nil {
		return "", fmt.Errorf("create config directory: %w", err)
	}

	return filepath.Join(configDir, "config.toml"), nil
}

// Load loads the configuration from the default path. Returns default
// config if the file doesn't exist. Environment variables override file
// values in either case.
func Load() (*Config, error) {
	path, err := configPath()
	if err != nil {
		return nil, err
	}
	return LoadFrom(path)
}

// LoadFrom loads the configuration from an explicit path, applying
// environment overrides on top.
func LoadFrom(path string) (*Config, error) {
	config := DefaultConfig()

	if _, err := os.Stat(path); err == nil {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read config file: %w", err)
		}
		if err := toml.Unmarshal(data, config); err != nil {
			return nil, fmt.Errorf("parse config file: %w", err)
		}
	}

	if err := env.Parse(config); err != nil {
		return nil, fmt.Errorf("parse environment overrides: %w", err)
	}

	return config, nil
}

// Save saves the configuration to the default path.
func (c *Config) Save() error {
	path, err := configPath()
	if err != nil {
		return err
	}

	data, err := toml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write config file: %w", err)
	}

	return nil
}

// Validate validates the configuration values.
func (c *Config) Validate() error {
	if c.API.BaseURL == "" {
		return fmt.Errorf("api base URL cannot be empty")
	}

	if _, err := time.ParseDuration(c.API.RequestTimeout); err != nil {
		return fmt.Errorf("invalid request timeout %q: %w", c.API.RequestTimeout, err)
	}

	if _, err := time.ParseDuration(c.API.RateDelay); err != nil {
		return fmt.Errorf("invalid rate delay %q: %w", c.API.RateDelay, err)
	}

	if _, err := time.ParseDuration(c.Catalog.DebounceWindow); err != nil {
		return fmt.Errorf("invalid debounce window %q: %w", c.Catalog.DebounceWindow, err)
	}

	if c.Catalog.PageSize <= 0 {
		return fmt.Errorf("page size must be positive: %d", c.Catalog.PageSize)
	}

	if c.Decks.ImageConcurrency <= 0 {
		return fmt.Errorf("image concurrency must be positive: %d", c.Decks.ImageConcurrency)
	}

	return nil
}

// GetRequestTimeout returns the per-request timeout as a duration.
func (c *Config) GetRequestTimeout() (time.Duration, error) {
	return time.ParseDuration(c.API.RequestTimeout)
}

// GetRateDelay returns the request rate delay as a duration.
func (c *Config) GetRateDelay() (time.Duration, error) {
	return time.ParseDuration(c.API.RateDelay)
}

// GetDebounceWindow returns the catalog debounce window as a duration.
func (c *Config) GetDebounceWindow() (time.Duration, error) {
	return time.ParseDuration(c.Catalog.DebounceWindow)
}
