package daemon

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.API.Host != "127.0.0.1" {
		t.Errorf("API.Host = %q, want %q", cfg.API.Host, "127.0.0.1")
	}
	if cfg.API.Port != 8823 {
		t.Errorf("API.Port = %d, want %d", cfg.API.Port, 8823)
	}
	if cfg.Caption.Model != "gemini-3-flash-preview" {
		t.Errorf("Caption.Model = %q, want %q", cfg.Caption.Model, "gemini-3-flash-preview")
	}
	if cfg.Caption.Timeout != "30s" {
		t.Errorf("Caption.Timeout = %q, want %q", cfg.Caption.Timeout, "30s")
	}
	if cfg.Metrics.Enabled {
		t.Error("Metrics.Enabled should be false by default (opt-in)")
	}
	if cfg.Storage.DataDir == "" {
		t.Error("Storage.DataDir must have a default")
	}
}

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
	if err != nil {
		t.Fatalf("Load missing file: %v", err)
	}
	if cfg.API.Port != 8823 {
		t.Errorf("API.Port = %d, want default 8823", cfg.API.Port)
	}
}

func TestLoad_FileOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	data := `
[api]
port = 9000

[metrics]
enabled = true

[caption]
timeout = "5s"
`
	if err := os.WriteFile(path, []byte(data), 0600); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.API.Port != 9000 {
		t.Errorf("API.Port = %d, want 9000", cfg.API.Port)
	}
	// Untouched sections keep their defaults.
	if cfg.API.Host != "127.0.0.1" {
		t.Errorf("API.Host = %q, want default", cfg.API.Host)
	}
	if !cfg.Metrics.Enabled {
		t.Error("Metrics.Enabled should be true")
	}
	if cfg.CaptionTimeout() != 5*time.Second {
		t.Errorf("CaptionTimeout = %v, want 5s", cfg.CaptionTimeout())
	}
}

func TestLoad_BadTOML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte("[api\nport="), 0600); err != nil {
		t.Fatalf("write config: %v", err)
	}
	if _, err := Load(path); err == nil {
		t.Error("Load of malformed TOML should fail")
	}
}

func TestCaptionTimeout(t *testing.T) {
	tests := []struct {
		input string
		want  time.Duration
	}{
		{"45s", 45 * time.Second},
		{"2m", 2 * time.Minute},
		{"", 30 * time.Second},        // default
		{"garbage", 30 * time.Second}, // unparseable falls back
		{"-1s", 30 * time.Second},     // non-positive falls back
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			cfg := DefaultConfig()
			cfg.Caption.Timeout = tt.input
			if got := cfg.CaptionTimeout(); got != tt.want {
				t.Errorf("CaptionTimeout(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestAddr(t *testing.T) {
	cfg := DefaultConfig()
	if got := cfg.Addr(); got != "127.0.0.1:8823" {
		t.Errorf("Addr() = %q", got)
	}
}
