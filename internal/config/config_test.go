package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"x-to-markdown/internal/config"
)

func writeFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "x2md.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestLoad_NoFile_ReturnsDefaults(t *testing.T) {
	// Act
	cfg, err := config.Load("")

	// Assert
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := config.Default()
	if cfg.APIBaseURL != want.APIBaseURL {
		t.Errorf("APIBaseURL: got %v, want %v", cfg.APIBaseURL, want.APIBaseURL)
	}
	if cfg.CacheTTL != 5*time.Minute {
		t.Errorf("CacheTTL: got %v, want 5m", cfg.CacheTTL)
	}
	if cfg.RateLimit != 10 {
		t.Errorf("RateLimit: got %v, want 10", cfg.RateLimit)
	}
}

func TestLoad_YAMLFile_OverridesDefaults(t *testing.T) {
	// Arrange
	path := writeFile(t, `
api:
  base_url: http://localhost:9999
  timeout: 5s
  max_concurrent: 2
server:
  port: "8080"
  rate_limit: 3
  rate_window: 30s
cache:
  ttl: 1h
log:
  level: debug
  format: text
output:
  dir: ./notes
`)

	// Act
	cfg, err := config.Load(path)

	// Assert
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.APIBaseURL != "http://localhost:9999" {
		t.Errorf("APIBaseURL: got %v", cfg.APIBaseURL)
	}
	if cfg.RequestTimeout != 5*time.Second {
		t.Errorf("RequestTimeout: got %v", cfg.RequestTimeout)
	}
	if cfg.MaxConcurrent != 2 {
		t.Errorf("MaxConcurrent: got %v, want 2", cfg.MaxConcurrent)
	}
	if cfg.Port != "8080" || cfg.RateLimit != 3 || cfg.RateWindow != 30*time.Second {
		t.Errorf("server: got port=%v limit=%v window=%v", cfg.Port, cfg.RateLimit, cfg.RateWindow)
	}
	if cfg.CacheTTL != time.Hour {
		t.Errorf("CacheTTL: got %v", cfg.CacheTTL)
	}
	if cfg.LogLevel != "debug" || cfg.LogFormat != "text" {
		t.Errorf("log: got level=%v format=%v", cfg.LogLevel, cfg.LogFormat)
	}
	if cfg.OutputDir != "./notes" {
		t.Errorf("OutputDir: got %v", cfg.OutputDir)
	}
	if cfg.UserAgent != config.Default().UserAgent {
		t.Errorf("UserAgent should keep default, got %v", cfg.UserAgent)
	}
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	// Arrange
	path := writeFile(t, "server:\n  port: \"8080\"\n")
	t.Setenv("PORT", "9090")
	t.Setenv("CACHE_TTL_MINUTES", "2")
	t.Setenv("X2MD_API_BASE_URL", "http://env")

	// Act
	cfg, err := config.Load(path)

	// Assert
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Port != "9090" {
		t.Errorf("Port: got %v, want 9090", cfg.Port)
	}
	if cfg.CacheTTL != 2*time.Minute {
		t.Errorf("CacheTTL: got %v, want 2m", cfg.CacheTTL)
	}
	if cfg.APIBaseURL != "http://env" {
		t.Errorf("APIBaseURL: got %v", cfg.APIBaseURL)
	}
}

func TestLoad_InvalidValues_ReturnsError(t *testing.T) {
	testCases := []struct {
		name string
		yaml string
		env  map[string]string
	}{
		{name: "bad duration", yaml: "cache:\n  ttl: soon\n"},
		{name: "bad yaml", yaml: "api: [unclosed\n"},
		{name: "bad cache env", yaml: "", env: map[string]string{"CACHE_TTL_MINUTES": "five"}},
		{name: "bad rate env", yaml: "", env: map[string]string{"RATE_LIMIT": "many"}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			path := writeFile(t, tc.yaml)
			for k, v := range tc.env {
				t.Setenv(k, v)
			}

			if _, err := config.Load(path); err == nil {
				t.Error("expected error")
			}
		})
	}
}

func TestLoad_MissingFile_ReturnsError(t *testing.T) {
	if _, err := config.Load(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Error("expected error for missing config file")
	}
}

func TestResolvePath(t *testing.T) {
	testCases := []struct {
		name     string
		explicit string
		env      string
		expected string
	}{
		{name: "explicit wins", explicit: "a.yaml", env: "b.yaml", expected: "a.yaml"},
		{name: "env fallback", explicit: "", env: "b.yaml", expected: "b.yaml"},
		{name: "neither", explicit: "", env: "", expected: ""},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Setenv(config.PathEnv, tc.env)

			if got := config.ResolvePath(tc.explicit); got != tc.expected {
				t.Errorf("ResolvePath(%q) = %q, want %q", tc.explicit, got, tc.expected)
			}
		})
	}
}

func TestLoad_PathFromEnv_ReadsFile(t *testing.T) {
	// Arrange
	path := writeFile(t, "server:\n  port: \"7070\"\n")
	t.Setenv(config.PathEnv, path)
	t.Setenv("PORT", "")

	// Act
	cfg, err := config.Load(config.ResolvePath(""))

	// Assert
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Port != "7070" {
		t.Errorf("Port: got %v, want 7070", cfg.Port)
	}
}
