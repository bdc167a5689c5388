// Package config loads runtime settings from an optional YAML file,
// a .env file and the process environment, in that order of precedence
// (environment wins).
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Config holds every tunable of the CLI and the web server.
type Config struct {
	APIBaseURL     string
	UserAgent      string
	RequestTimeout time.Duration
	MaxConcurrent  int

	Port       string
	RateLimit  int
	RateWindow time.Duration
	CacheTTL   time.Duration

	LogLevel  string
	LogFormat string

	OutputDir string
}

// rawConfig represents the YAML structure. Durations are strings such as
// "30s" or "5m".
type rawConfig struct {
	API struct {
		BaseURL       string `yaml:"base_url"`
		UserAgent     string `yaml:"user_agent"`
		Timeout       string `yaml:"timeout"`
		MaxConcurrent int    `yaml:"max_concurrent"`
	} `yaml:"api"`
	Server struct {
		Port       string `yaml:"port"`
		RateLimit  int    `yaml:"rate_limit"`
		RateWindow string `yaml:"rate_window"`
	} `yaml:"server"`
	Cache struct {
		TTL string `yaml:"ttl"`
	} `yaml:"cache"`
	Log struct {
		Level  string `yaml:"level"`
		Format string `yaml:"format"`
	} `yaml:"log"`
	Output struct {
		Dir string `yaml:"dir"`
	} `yaml:"output"`
}

// PathEnv names the environment variable holding the config file path.
const PathEnv = "X2MD_CONFIG"

// ResolvePath returns explicit when set, otherwise the path from PathEnv.
// An empty result means no config file.
func ResolvePath(explicit string) string {
	if explicit != "" {
		return explicit
	}
	return os.Getenv(PathEnv)
}

// Default returns the built-in settings.
func Default() *Config {
	return &Config{
		APIBaseURL:     "https://api.fxtwitter.com",
		UserAgent:      "x-to-markdown/1.0",
		RequestTimeout: 30 * time.Second,
		MaxConcurrent:  4,
		Port:           "3000",
		RateLimit:      10,
		RateWindow:     time.Minute,
		CacheTTL:       5 * time.Minute,
		LogLevel:       "info",
		LogFormat:      "json",
	}
}

// Load builds the configuration. An empty path skips the YAML file;
// a missing .env file is not an error.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		if err := cfg.loadFile(path); err != nil {
			return nil, err
		}
	}

	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("load .env: %w", err)
	}

	if err := cfg.applyEnv(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// loadFile overlays non-empty YAML values onto c.
func (c *Config) loadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config %s: %w", path, err)
	}

	var raw rawConfig
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("parse config %s: %w", path, err)
	}

	setString(&c.APIBaseURL, raw.API.BaseURL)
	setString(&c.UserAgent, raw.API.UserAgent)
	setString(&c.Port, raw.Server.Port)
	setString(&c.LogLevel, raw.Log.Level)
	setString(&c.LogFormat, raw.Log.Format)
	setString(&c.OutputDir, raw.Output.Dir)
	if raw.API.MaxConcurrent > 0 {
		c.MaxConcurrent = raw.API.MaxConcurrent
	}
	if raw.Server.RateLimit > 0 {
		c.RateLimit = raw.Server.RateLimit
	}

	for _, d := range []struct {
		name  string
		value string
		dst   *time.Duration
	}{
		{"api.timeout", raw.API.Timeout, &c.RequestTimeout},
		{"server.rate_window", raw.Server.RateWindow, &c.RateWindow},
		{"cache.ttl", raw.Cache.TTL, &c.CacheTTL},
	} {
		if d.value == "" {
			continue
		}
		parsed, err := time.ParseDuration(d.value)
		if err != nil {
			return fmt.Errorf("config %s: %w", d.name, err)
		}
		*d.dst = parsed
	}

	return nil
}

// applyEnv overlays environment variables onto c.
func (c *Config) applyEnv() error {
	setString(&c.APIBaseURL, os.Getenv("X2MD_API_BASE_URL"))
	setString(&c.UserAgent, os.Getenv("X2MD_USER_AGENT"))
	setString(&c.Port, os.Getenv("PORT"))
	setString(&c.LogLevel, os.Getenv("LOG_LEVEL"))
	setString(&c.LogFormat, os.Getenv("LOG_FORMAT"))
	setString(&c.OutputDir, os.Getenv("X2MD_OUTPUT_DIR"))

	if v := os.Getenv("CACHE_TTL_MINUTES"); v != "" {
		minutes, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("invalid CACHE_TTL_MINUTES %q: %w", v, err)
		}
		c.CacheTTL = time.Duration(minutes) * time.Minute
	}
	if v := os.Getenv("RATE_LIMIT"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("invalid RATE_LIMIT %q: %w", v, err)
		}
		c.RateLimit = n
	}
	return nil
}

func setString(dst *string, v string) {
	if v != "" {
		*dst = v
	}
}
