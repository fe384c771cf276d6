// Package daemon holds process configuration: TOML file, environment
// overrides, and safe defaults for every field.
package daemon

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/BurntSushi/toml"
)

// Config is the full daemon configuration, loaded from
// ~/.agencyflow/config.toml. A missing file means defaults.
type Config struct {
	API     APIConfig     `toml:"api"`
	Storage StorageConfig `toml:"storage"`
	Caption CaptionConfig `toml:"caption"`
	Metrics MetricsConfig `toml:"metrics"`
}

// APIConfig controls the HTTP server.
type APIConfig struct {
	Host string `toml:"host"`
	Port int    `toml:"port"`
}

// StorageConfig controls where the state database lives.
type StorageConfig struct {
	DataDir string `toml:"data_dir"`
}

// CaptionConfig controls the caption-generation service client.
// The API key is never stored in the file; it comes from GEMINI_API_KEY.
type CaptionConfig struct {
	Model   string `toml:"model"`
	Timeout string `toml:"timeout"` // duration string, e.g. "30s"
}

// MetricsConfig controls the Prometheus /metrics endpoint.
type MetricsConfig struct {
	Enabled bool `toml:"enabled"`
}

// DefaultConfig returns safe defaults for a fresh install.
func DefaultConfig() Config {
	return Config{
		API: APIConfig{
			Host: "127.0.0.1",
			Port: 8823,
		},
		Storage: StorageConfig{
			DataDir: defaultDataDir(),
		},
		Caption: CaptionConfig{
			Model:   "gemini-3-flash-preview",
			Timeout: "30s",
		},
		Metrics: MetricsConfig{
			Enabled: false,
		},
	}
}

// Load reads the config file at path, layered over DefaultConfig.
// A missing file is not an error.
func Load(path string) (Config, error) {
	cfg := DefaultConfig()
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return cfg, nil
	}
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg, nil
}

// DefaultPath returns the canonical config file location.
func DefaultPath() string {
	return filepath.Join(homeDir(), ".agencyflow", "config.toml")
}

// Addr returns the host:port the API server binds to.
func (c Config) Addr() string {
	return fmt.Sprintf("%s:%d", c.API.Host, c.API.Port)
}

// CaptionAPIKey returns the generation-service credential from the
// environment. Empty means caption generation will fall back on every call.
func (c Config) CaptionAPIKey() string {
	return os.Getenv("GEMINI_API_KEY")
}

// CaptionTimeout parses the configured timeout, defaulting to 30s on a bad
// or empty value.
func (c Config) CaptionTimeout() time.Duration {
	return parseDuration(c.Caption.Timeout, 30*time.Second)
}

func parseDuration(s string, fallback time.Duration) time.Duration {
	if s == "" {
		return fallback
	}
	d, err := time.ParseDuration(s)
	if err != nil || d <= 0 {
		return fallback
	}
	return d
}

func defaultDataDir() string {
	return filepath.Join(homeDir(), ".agencyflow")
}

func homeDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "."
	}
	return home
}
