package main

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoadConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := "current: 1.2.3\ntimeout: 10s\ncache_ttl: 1h\nregistry: https://registry.example.com\npre: true\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := loadConfigFile(path)
	if err != nil {
		t.Fatalf("loadConfigFile failed: %v", err)
	}

	if cfg.Current != "1.2.3" {
		t.Errorf("Current = %q, want 1.2.3", cfg.Current)
	}
	if time.Duration(cfg.Timeout) != 10*time.Second {
		t.Errorf("Timeout = %v, want 10s", time.Duration(cfg.Timeout))
	}
	if time.Duration(cfg.CacheTTL) != time.Hour {
		t.Errorf("CacheTTL = %v, want 1h", time.Duration(cfg.CacheTTL))
	}
	if cfg.Registry != "https://registry.example.com" {
		t.Errorf("Registry = %q", cfg.Registry)
	}
	if !cfg.Pre {
		t.Error("Pre not parsed")
	}
}

func TestLoadConfigFileMissing(t *testing.T) {
	_, err := loadConfigFile(filepath.Join(t.TempDir(), "nope.yaml"))
	if err == nil {
		t.Fatal("expected error for missing config file")
	}
}

func TestLoadConfigFileInvalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(":\n\t- not yaml"), 0o644); err != nil {
		t.Fatal(err)
	}

	if _, err := loadConfigFile(path); err == nil {
		t.Fatal("expected error for invalid yaml")
	}
}

func TestPurlParts(t *testing.T) {
	tests := []struct {
		purl    string
		name    string
		version string
	}{
		{"pkg:cargo/serde@1.0.0", "serde", "1.0.0"},
		{"pkg:cargo/my-crate@2.0.0-beta", "my-crate", "2.0.0-beta"},
		{"pkg:cargo/serde", "serde", ""},
	}

	for _, tt := range tests {
		name, version := purlParts(tt.purl)
		if name != tt.name || version != tt.version {
			t.Errorf("purlParts(%q) = %q, %q; want %q, %q",
				tt.purl, name, version, tt.name, tt.version)
		}
	}
}
