package common

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	config := NewDefaultConfig()

	assert.Equal(t, "https://api.tradebazaar.app/api", config.Backend.BaseURL)
	assert.Equal(t, 10, config.Backend.RateLimit)
	assert.Equal(t, 30*time.Second, config.Backend.GetTimeout())
	assert.Equal(t, 5*time.Second, config.PriceFeed.GetInterval())
	assert.Equal(t, "info", config.Logging.Level)
	assert.NotEmpty(t, config.Session.TokenPath)
}

func TestLoadConfigFromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "tradekit.toml")
	content := `
environment = "production"

[backend]
base_url = "http://localhost:4000/api"
rate_limit = 3
timeout = "10s"

[pricefeed]
interval = "2s"

[logging]
level = "debug"
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	config, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "production", config.Environment)
	assert.Equal(t, "http://localhost:4000/api", config.Backend.BaseURL)
	assert.Equal(t, 3, config.Backend.RateLimit)
	assert.Equal(t, 10*time.Second, config.Backend.GetTimeout())
	assert.Equal(t, 2*time.Second, config.PriceFeed.GetInterval())
	assert.Equal(t, "debug", config.Logging.Level)
}

func TestLoadConfigSkipsMissingFiles(t *testing.T) {
	config, err := LoadConfig(filepath.Join(t.TempDir(), "nope.toml"), "")
	require.NoError(t, err)
	assert.Equal(t, "development", config.Environment)
}

func TestLoadConfigLaterFileWins(t *testing.T) {
	dir := t.TempDir()
	first := filepath.Join(dir, "first.toml")
	second := filepath.Join(dir, "second.toml")
	require.NoError(t, os.WriteFile(first, []byte("[logging]\nlevel = \"warn\"\n"), 0644))
	require.NoError(t, os.WriteFile(second, []byte("[logging]\nlevel = \"debug\"\n"), 0644))

	config, err := LoadConfig(first, second)
	require.NoError(t, err)
	assert.Equal(t, "debug", config.Logging.Level)
}

func TestEnvOverrides(t *testing.T) {
	t.Setenv("TRADEKIT_BACKEND_URL", "http://127.0.0.1:9999/api")
	t.Setenv("TRADEKIT_BACKEND_RATE_LIMIT", "25")
	t.Setenv("TRADEKIT_PRICEFEED_INTERVAL", "1s")
	t.Setenv("TRADEKIT_TOKEN_PATH", "/tmp/tk-test")
	t.Setenv("TRADEKIT_LOG_LEVEL", "trace")

	config, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "http://127.0.0.1:9999/api", config.Backend.BaseURL)
	assert.Equal(t, 25, config.Backend.RateLimit)
	assert.Equal(t, time.Second, config.PriceFeed.GetInterval())
	assert.Equal(t, "/tmp/tk-test", config.Session.TokenPath)
	assert.Equal(t, "trace", config.Logging.Level)
}

func TestBadDurationFallsBack(t *testing.T) {
	backend := BackendConfig{Timeout: "not-a-duration"}
	assert.Equal(t, 30*time.Second, backend.GetTimeout())

	feed := PriceFeedConfig{Interval: ""}
	assert.Equal(t, 5*time.Second, feed.GetInterval())
}
