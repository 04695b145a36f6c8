package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoad_Valid(t *testing.T) {
	path := writeConfig(t, `
[database]
path = "/var/lib/ondemand/catalog.db"

[http]
max_retries = 5
retry_delay = "250ms"

[download]
threads = 8
`)

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "/var/lib/ondemand/catalog.db", cfg.Database.Path)
	assert.Equal(t, 5, cfg.HTTP.MaxRetries)
	assert.Equal(t, 250*time.Millisecond, cfg.HTTP.RetryDelay.Duration)
	assert.Equal(t, 8, cfg.Download.Threads)
}

func TestLoad_AppliesDefaults(t *testing.T) {
	cfg, err := Load(writeConfig(t, ""))
	require.NoError(t, err)

	assert.Equal(t, DefaultDatabasePath, cfg.Database.Path)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, 3, cfg.HTTP.MaxRetries)
	assert.Equal(t, time.Second, cfg.HTTP.RetryDelay.Duration)
	assert.Equal(t, 60*time.Second, cfg.HTTP.Timeout.Duration)
	assert.Equal(t, DefaultAPIRoot, cfg.Upstream.APIRoot)
	assert.Equal(t, DefaultPlayerURL, cfg.Upstream.PlayerURL)
	assert.Equal(t, 5, cfg.Download.Threads)
	assert.Equal(t, 10, cfg.Download.MaxResults)
	assert.Equal(t, "ffmpeg", cfg.Download.FFmpeg)
}

func TestLoad_MissingEnvVar(t *testing.T) {
	path := writeConfig(t, `
[database]
path = "${ONDEMAND_TEST_NONEXISTENT_DB}"
`)

	_, err := Load(path)
	require.Error(t, err)

	var cfgErr *ConfigError
	require.True(t, errors.As(err, &cfgErr))
	assert.Equal(t, []string{"ONDEMAND_TEST_NONEXISTENT_DB"}, cfgErr.Missing)
	assert.Equal(t, path, cfgErr.Path)
}

func TestLoad_ValidationError(t *testing.T) {
	path := writeConfig(t, `
[download]
threads = -2
`)

	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "download.threads")
}

func TestLoad_BadDuration(t *testing.T) {
	path := writeConfig(t, `
[http]
retry_delay = "soon"
`)

	_, err := Load(path)
	require.Error(t, err)
	assert.True(t, strings.HasPrefix(err.Error(), "parsing config"))
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.toml"))
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestLoadWithoutValidation(t *testing.T) {
	path := writeConfig(t, `
[download]
threads = -2
`)

	cfg, err := LoadWithoutValidation(path)
	require.NoError(t, err)
	assert.Equal(t, -2, cfg.Download.Threads)
}

func TestLoad_EnvVarDefault(t *testing.T) {
	t.Setenv("ONDEMAND_TEST_OPTIONAL", "")
	path := writeConfig(t, `
[database]
path = "${ONDEMAND_TEST_OPTIONAL:-/tmp/fallback.db}"
`)

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "/tmp/fallback.db", cfg.Database.Path)
}

func TestDefault(t *testing.T) {
	cfg := Default()
	assert.Empty(t, cfg.Validate())
	assert.Equal(t, DefaultFeedPath, cfg.Upstream.FeedPath)
}
