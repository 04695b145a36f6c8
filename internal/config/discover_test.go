package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultPath(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "")

	path := DefaultPath()
	assert.Contains(t, path, filepath.Join(".config", "ondemand", "config.toml"))
}

func TestDefaultPath_XDG(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "/custom/config")

	assert.Equal(t, "/custom/config/ondemand/config.toml", DefaultPath())
}

func TestDiscover_EnvVar(t *testing.T) {
	cfgPath := filepath.Join(t.TempDir(), "custom.toml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("[log]"), 0644))
	t.Setenv(EnvVar, cfgPath)

	path, err := Discover()
	require.NoError(t, err)
	assert.Equal(t, cfgPath, path)
}

func TestDiscover_EnvVarMissingFile(t *testing.T) {
	t.Setenv(EnvVar, filepath.Join(t.TempDir(), "missing.toml"))

	_, err := Discover()
	require.Error(t, err)
	assert.Contains(t, err.Error(), EnvVar)
}

func TestDiscover_CurrentDir(t *testing.T) {
	t.Setenv(EnvVar, "")
	tmp := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(tmp, "config.toml"), []byte("[log]"), 0644))
	chdir(t, tmp)

	path, err := Discover()
	require.NoError(t, err)
	assert.Equal(t, "./config.toml", path)
}

func TestResolve_FallsBackToDefaults(t *testing.T) {
	t.Setenv(EnvVar, "")
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	chdir(t, t.TempDir())
	if _, err := os.Stat("/etc/ondemand/config.toml"); err == nil {
		t.Skip("system config present")
	}

	cfg, path, err := Resolve("")
	require.NoError(t, err)
	assert.Empty(t, path)
	assert.Equal(t, Default(), cfg)
}

func TestResolve_Explicit(t *testing.T) {
	cfgPath := filepath.Join(t.TempDir(), "explicit.toml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("[download]\nthreads = 2\n"), 0644))

	cfg, path, err := Resolve(cfgPath)
	require.NoError(t, err)
	assert.Equal(t, cfgPath, path)
	assert.Equal(t, 2, cfg.Download.Threads)
}

// chdir changes the working directory for the duration of the test.
func chdir(t *testing.T, dir string) {
	t.Helper()
	prev, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(prev) })
}
