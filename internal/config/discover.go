package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// ErrNotFound is returned by Discover when no config file exists on the search path.
var ErrNotFound = errors.New("config not found")

// EnvVar overrides the config file search.
const EnvVar = "ONDEMAND_CONFIG"

// DefaultPath returns the XDG-compliant default config path.
func DefaultPath() string {
	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "./config.toml"
		}
		configHome = filepath.Join(home, ".config")
	}
	return filepath.Join(configHome, "ondemand", "config.toml")
}

// Discover finds the config file using the standard search order.
// Search order:
//  1. ONDEMAND_CONFIG environment variable
//  2. ./config.toml (current directory)
//  3. $XDG_CONFIG_HOME/ondemand/config.toml
//  4. /etc/ondemand/config.toml
func Discover() (string, error) {
	if envPath := os.Getenv(EnvVar); envPath != "" {
		if _, err := os.Stat(envPath); err != nil {
			return "", fmt.Errorf("%s=%s: %w", EnvVar, envPath, err)
		}
		return envPath, nil
	}

	paths := []string{
		"./config.toml",
		DefaultPath(),
		"/etc/ondemand/config.toml",
	}
	for _, p := range paths {
		if _, err := os.Stat(p); err == nil {
			return p, nil
		}
	}

	return "", fmt.Errorf("%w, checked: %s", ErrNotFound, strings.Join(paths, ", "))
}

// Resolve loads the config at explicit, or the discovered one. When nothing
// is found on the search path the defaults are returned with an empty path.
func Resolve(explicit string) (*Config, string, error) {
	path := explicit
	if path == "" {
		found, err := Discover()
		if errors.Is(err, ErrNotFound) {
			return Default(), "", nil
		}
		if err != nil {
			return nil, "", err
		}
		path = found
	}

	cfg, err := Load(path)
	if err != nil {
		return nil, path, err
	}
	return cfg, path, nil
}
