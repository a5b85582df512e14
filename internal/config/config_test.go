package config

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	require.NoError(t, cfg.Validate())

	window, err := cfg.GetDebounceWindow()
	require.NoError(t, err)
	assert.Equal(t, 300*time.Millisecond, window)

	timeout, err := cfg.GetRequestTimeout()
	require.NoError(t, err)
	assert.Equal(t, 30*time.Second, timeout)

	delay, err := cfg.GetRateDelay()
	require.NoError(t, err)
	assert.Equal(t, 100*time.Millisecond, delay)

	assert.Equal(t, 10, cfg.Catalog.PageSize)
	assert.Equal(t, 4, cfg.Decks.ImageConcurrency)
}

func TestLoadFrom_MissingFileUsesDefaults(t *testing.T) {
	cfg, err := LoadFrom(filepath.Join(t.TempDir(), "missing.toml"))

	require.NoError(t, err)
	assert.Equal(t, DefaultConfig().API.BaseURL, cfg.API.BaseURL)
}

func TestLoadFrom_FileOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	content := `
[api]
base_url = "https://decks.example/api"
token = "abc123"

[catalog]
debounce_window = "150ms"
page_size = 25
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cfg, err := LoadFrom(path)
	require.NoError(t, err)

	assert.Equal(t, "https://decks.example/api", cfg.API.BaseURL)
	assert.Equal(t, "abc123", cfg.API.Token)
	assert.Equal(t, "150ms", cfg.Catalog.DebounceWindow)
	assert.Equal(t, 25, cfg.Catalog.PageSize)
	// Untouched sections keep their defaults
	assert.Equal(t, "30s", cfg.API.RequestTimeout)
}

func TestLoadFrom_EnvOverridesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("[api]\nbase_url = \"https://file.example\"\n"), 0o644))

	t.Setenv("DECKFORGE_API_URL", "https://env.example")
	t.Setenv("DECKFORGE_PAGE_SIZE", "50")

	cfg, err := LoadFrom(path)
	require.NoError(t, err)

	assert.Equal(t, "https://env.example", cfg.API.BaseURL)
	assert.Equal(t, 50, cfg.Catalog.PageSize)
}

func TestValidate_RejectsBadValues(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"empty base URL", func(c *Config) { c.API.BaseURL = "" }},
		{"bad timeout", func(c *Config) { c.API.RequestTimeout = "soon" }},
		{"bad rate delay", func(c *Config) { c.API.RateDelay = "fast" }},
		{"bad debounce", func(c *Config) { c.Catalog.DebounceWindow = "later" }},
		{"zero page size", func(c *Config) { c.Catalog.PageSize = 0 }},
		{"zero image concurrency", func(c *Config) { c.Decks.ImageConcurrency = 0 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)
			assert.Error(t, cfg.Validate())
		})
	}
}

func TestWatch_ReloadsOnWrite(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("[catalog]\npage_size = 10\n"), 0o644))

	reloaded := make(chan *Config, 1)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go func() {
		_ = Watch(ctx, path, func(cfg *Config) {
			select {
			case reloaded <- cfg:
			default:
			}
		})
	}()

	// Give the watcher time to attach before writing
	time.Sleep(50 * time.Millisecond)
	require.NoError(t, os.WriteFile(path, []byte("[catalog]\npage_size = 99\n"), 0o644))

	select {
	case cfg := <-reloaded:
		assert.Equal(t, 99, cfg.Catalog.PageSize)
	case <-time.After(3 * time.Second):
		t.Fatal("Timed out waiting for config reload")
	}
}
