package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "missing.yml"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Port != 8080 {
		t.Errorf("default port = %d", cfg.Port)
	}
	if cfg.UpstreamURL != DefaultUpstreamURL {
		t.Errorf("default upstream = %q", cfg.UpstreamURL)
	}
	if cfg.InitialSelection != 1 {
		t.Errorf("default initial selection = %d", cfg.InitialSelection)
	}
	if cfg.CacheTTL() != time.Hour {
		t.Errorf("default cache ttl = %v", cfg.CacheTTL())
	}
}

func TestLoadFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "elemex.yml")
	content := "port: 9090\nupstream_url: https://example.com/elements.json\ninitial_selection: 0\n"
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Port != 9090 {
		t.Errorf("port = %d", cfg.Port)
	}
	if cfg.UpstreamURL != "https://example.com/elements.json" {
		t.Errorf("upstream = %q", cfg.UpstreamURL)
	}
	if cfg.InitialSelection != 0 {
		t.Errorf("initial selection = %d", cfg.InitialSelection)
	}
	// Unset keys keep their defaults.
	if cfg.ImageHost != DefaultImageHost {
		t.Errorf("image host = %q", cfg.ImageHost)
	}
}

func TestLoadEnvOverride(t *testing.T) {
	t.Setenv("ELEMEX_PORT", "7070")
	t.Setenv("ELEMEX_IMAGE_HOST", "https://photos.example.com")

	cfg, err := Load(filepath.Join(t.TempDir(), "missing.yml"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Port != 7070 {
		t.Errorf("env port override = %d", cfg.Port)
	}
	if cfg.ImageHost != "https://photos.example.com" {
		t.Errorf("env image host override = %q", cfg.ImageHost)
	}
}

func TestSaveRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "elemex.yml")

	cfg := DefaultConfig()
	cfg.Port = 9999
	cfg.DataDir = "/tmp/elemex-test"
	if err := cfg.Save(path); err != nil {
		t.Fatalf("Save: %v", err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if loaded.Port != 9999 || loaded.DataDir != "/tmp/elemex-test" {
		t.Errorf("round trip = port %d data_dir %q", loaded.Port, loaded.DataDir)
	}
}

func TestValidate(t *testing.T) {
	if err := DefaultConfig().Validate(); err != nil {
		t.Errorf("default config invalid: %v", err)
	}

	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"empty upstream", func(c *Config) { c.UpstreamURL = "" }},
		{"relative upstream", func(c *Config) { c.UpstreamURL = "elements.json" }},
		{"port zero", func(c *Config) { c.Port = 0 }},
		{"port too large", func(c *Config) { c.Port = 70000 }},
		{"empty data dir", func(c *Config) { c.DataDir = "" }},
		{"zero ttl", func(c *Config) { c.CacheTTLSeconds = 0 }},
		{"zero timeout", func(c *Config) { c.FetchTimeoutSeconds = 0 }},
		{"negative initial selection", func(c *Config) { c.InitialSelection = -1 }},
	}
	for _, tt := range tests {
		cfg := DefaultConfig()
		tt.mutate(cfg)
		if err := cfg.Validate(); err == nil {
			t.Errorf("%s: expected validation error", tt.name)
		}
	}
}
