// Package config handles TOML configuration loading with environment variable substitution.
package config

import (
	"fmt"
	"os"
	"regexp"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
)

// Config is the root configuration structure.
type Config struct {
	Database DatabaseConfig `toml:"database"`
	Log      LogConfig      `toml:"log"`
	HTTP     HTTPConfig     `toml:"http"`
	Upstream UpstreamConfig `toml:"upstream"`
	Download DownloadConfig `toml:"download"`
}

type DatabaseConfig struct {
	Path string `toml:"path"`
}

type LogConfig struct {
	Level string `toml:"level"`
}

// HTTPConfig is the retry policy shared by every upstream fetch.
type HTTPConfig struct {
	MaxRetries int      `toml:"max_retries"`
	RetryDelay Duration `toml:"retry_delay"`
	Timeout    Duration `toml:"timeout"`
	UserAgent  string   `toml:"user_agent"`
}

type UpstreamConfig struct {
	APIRoot   string `toml:"api_root"`
	PlayerURL string `toml:"player_url"` // %d is the video id
	FeedPath  string `toml:"feed_path"`
}

type DownloadConfig struct {
	Threads    int    `toml:"threads"`
	FFmpeg     string `toml:"ffmpeg"`
	MaxResults int    `toml:"max_results"`
}

// Duration is a time.Duration written as a Go duration string ("1s", "500ms").
type Duration struct {
	time.Duration
}

func (d *Duration) UnmarshalText(text []byte) error {
	v, err := time.ParseDuration(string(text))
	if err != nil {
		return err
	}
	d.Duration = v
	return nil
}

func (d Duration) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

// Defaults.
const (
	DefaultDatabasePath = "./ondemand.db"
	DefaultAPIRoot      = "http://www.sbs.com.au/api/"
	DefaultPlayerURL    = "https://www.sbs.com.au/ondemand/video/single/%d?context=web"
	DefaultFeedPath     = "video_feed/f/Bgtm9B/sbs-section-programs/"
	DefaultUserAgent    = "ondemand/1.0"
)

// Default returns the configuration used when no file is found.
func Default() *Config {
	cfg := &Config{}
	cfg.applyDefaults()
	return cfg
}

func (c *Config) applyDefaults() {
	if c.Database.Path == "" {
		c.Database.Path = DefaultDatabasePath
	}
	if c.Log.Level == "" {
		c.Log.Level = "info"
	}
	if c.HTTP.MaxRetries == 0 {
		c.HTTP.MaxRetries = 3
	}
	if c.HTTP.RetryDelay.Duration == 0 {
		c.HTTP.RetryDelay.Duration = time.Second
	}
	if c.HTTP.Timeout.Duration == 0 {
		c.HTTP.Timeout.Duration = 60 * time.Second
	}
	if c.HTTP.UserAgent == "" {
		c.HTTP.UserAgent = DefaultUserAgent
	}
	if c.Upstream.APIRoot == "" {
		c.Upstream.APIRoot = DefaultAPIRoot
	}
	if c.Upstream.PlayerURL == "" {
		c.Upstream.PlayerURL = DefaultPlayerURL
	}
	if c.Upstream.FeedPath == "" {
		c.Upstream.FeedPath = DefaultFeedPath
	}
	if c.Download.Threads == 0 {
		c.Download.Threads = 5
	}
	if c.Download.FFmpeg == "" {
		c.Download.FFmpeg = "ffmpeg"
	}
	if c.Download.MaxResults == 0 {
		c.Download.MaxResults = 10
	}
}

// Load reads, parses and validates the configuration file.
// Returns a *ConfigError if variables are unresolved or validation fails.
func Load(path string) (*Config, error) {
	cfg, missing, err := load(path)
	if err != nil {
		return nil, err
	}

	cfgErr := &ConfigError{Path: path, Missing: missing, Errors: cfg.Validate()}
	if cfgErr.HasErrors() {
		return nil, cfgErr
	}
	return cfg, nil
}

// LoadWithoutValidation parses the file and applies defaults but skips validation.
func LoadWithoutValidation(path string) (*Config, error) {
	cfg, _, err := load(path)
	return cfg, err
}

func load(path string) (*Config, []string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, fmt.Errorf("reading config: %w", err)
	}

	content, missing := substituteEnvVars(string(data))

	var cfg Config
	if _, err := toml.Decode(content, &cfg); err != nil {
		return nil, nil, fmt.Errorf("parsing config: %w", err)
	}
	cfg.applyDefaults()

	return &cfg, missing, nil
}

// envVarPattern matches ${VAR}, ${VAR:-default} and ${VAR:?message}.
var envVarPattern = regexp.MustCompile(`\$\{([A-Za-z_][A-Za-z0-9_]*)(?:(:-|:\?)([^}]*))?\}`)

// substituteEnvVars expands environment references outside comment lines.
// Unresolved references are left in place and reported in missing.
func substituteEnvVars(content string) (string, []string) {
	var missing []string
	lines := strings.SplitAfter(content, "\n")
	for i, line := range lines {
		if strings.HasPrefix(strings.TrimSpace(line), "#") {
			continue
		}
		var m []string
		lines[i], m = substituteLine(line)
		missing = append(missing, m...)
	}
	return strings.Join(lines, ""), missing
}

func substituteLine(line string) (string, []string) {
	var missing []string
	result := envVarPattern.ReplaceAllStringFunc(line, func(match string) string {
		groups := envVarPattern.FindStringSubmatch(match)
		name, op, arg := groups[1], groups[2], groups[3]
		value := os.Getenv(name)

		switch op {
		case ":-":
			if value == "" {
				return arg
			}
			return value
		case ":?":
			if value == "" {
				missing = append(missing, fmt.Sprintf("%s: %s", name, strings.TrimSpace(arg)))
				return match
			}
			return value
		}

		if v, ok := os.LookupEnv(name); ok {
			return v
		}
		missing = append(missing, name)
		return match
	})
	return result, missing
}
