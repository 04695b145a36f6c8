package config

import (
	"fmt"
	"net/url"
	"strings"
)

var validLogLevels = map[string]bool{
	"debug": true, "info": true, "warn": true, "error": true, "": true,
}

// Validate checks the configuration for errors.
// Returns a slice of error messages (empty if valid).
func (c *Config) Validate() []string {
	var errs []string

	if c.Database.Path == "" {
		errs = append(errs, "database.path: required")
	}
	if !validLogLevels[c.Log.Level] {
		errs = append(errs, fmt.Sprintf("log.level: must be one of debug, info, warn, error; got %q", c.Log.Level))
	}

	if c.HTTP.MaxRetries < 1 {
		errs = append(errs, fmt.Sprintf("http.max_retries: must be at least 1, got %d", c.HTTP.MaxRetries))
	}
	if c.HTTP.RetryDelay.Duration < 0 {
		errs = append(errs, fmt.Sprintf("http.retry_delay: must not be negative, got %s", c.HTTP.RetryDelay))
	}
	if c.HTTP.Timeout.Duration < 0 {
		errs = append(errs, fmt.Sprintf("http.timeout: must not be negative, got %s", c.HTTP.Timeout))
	}

	if u, err := url.Parse(c.Upstream.APIRoot); err != nil || u.Scheme == "" || u.Host == "" {
		errs = append(errs, fmt.Sprintf("upstream.api_root: must be an absolute URL, got %q", c.Upstream.APIRoot))
	}
	if strings.Count(c.Upstream.PlayerURL, "%d") != 1 {
		errs = append(errs, fmt.Sprintf("upstream.player_url: must contain exactly one %%d, got %q", c.Upstream.PlayerURL))
	}

	if c.Download.Threads < 1 {
		errs = append(errs, fmt.Sprintf("download.threads: must be at least 1, got %d", c.Download.Threads))
	}
	if c.Download.MaxResults < 1 {
		errs = append(errs, fmt.Sprintf("download.max_results: must be at least 1, got %d", c.Download.MaxResults))
	}
	if c.Download.FFmpeg == "" {
		errs = append(errs, "download.ffmpeg: required")
	}

	return errs
}
