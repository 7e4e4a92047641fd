package main

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadConfig(t *testing.T) {
	t.Run("missing default file is empty config", func(t *testing.T) {
		t.Setenv("XDG_CONFIG_HOME", t.TempDir())
		cfg, err := loadConfig("")
		if err != nil {
			t.Fatalf("loadConfig returned error: %v", err)
		}
		if cfg != (Config{}) {
			t.Fatalf("expected zero config, got %+v", cfg)
		}
	})

	t.Run("default location is read", func(t *testing.T) {
		home := t.TempDir()
		t.Setenv("XDG_CONFIG_HOME", home)
		dir := filepath.Join(home, "qoiinfo")
		if err := os.MkdirAll(dir, 0o755); err != nil {
			t.Fatalf("mkdir: %v", err)
		}
		body := "format: pretty\nserver_address: 0.0.0.0:9000\nmax_body_bytes: 4096\nstore_size: 8\n"
		if err := os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(body), 0o644); err != nil {
			t.Fatalf("write config: %v", err)
		}

		cfg, err := loadConfig("")
		if err != nil {
			t.Fatalf("loadConfig returned error: %v", err)
		}
		if cfg.Format != "pretty" || cfg.ServerAddress != "0.0.0.0:9000" {
			t.Fatalf("unexpected config: %+v", cfg)
		}
		if cfg.MaxBodyBytes == nil || *cfg.MaxBodyBytes != 4096 {
			t.Fatalf("unexpected max_body_bytes: %v", cfg.MaxBodyBytes)
		}
		if cfg.StoreSize == nil || *cfg.StoreSize != 8 {
			t.Fatalf("unexpected store_size: %v", cfg.StoreSize)
		}
	})

	t.Run("malformed yaml", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "bad.yaml")
		if err := os.WriteFile(path, []byte("format: [json\n"), 0o644); err != nil {
			t.Fatalf("write config: %v", err)
		}
		if _, err := loadConfig(path); err == nil {
			t.Fatalf("expected parse error")
		}
	})

	t.Run("explicit missing file", func(t *testing.T) {
		if _, err := loadConfig(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
			t.Fatalf("expected error for explicit missing config")
		}
	})
}
