package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Theme != "mocha" {
		t.Errorf("Theme = %q, want %q", cfg.Theme, "mocha")
	}
	if cfg.DataDir == "" {
		t.Error("DefaultConfig should pick a data directory")
	}
	if cfg.Recent != 10 {
		t.Errorf("Recent = %d, want 10", cfg.Recent)
	}
	if cfg.TargetMinutes != 0 {
		t.Errorf("TargetMinutes = %v, want 0 (disabled)", cfg.TargetMinutes)
	}
}

func TestLoadFromFile(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")

	content := `theme: latte
data_dir: /tmp/steeper-test
target_minutes: 3.5
recent: 5
`
	if err := os.WriteFile(configPath, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to write test config: %v", err)
	}

	cfg, err := Load(configPath)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Theme != "latte" {
		t.Errorf("Theme = %q, want %q", cfg.Theme, "latte")
	}
	if cfg.DataDir != "/tmp/steeper-test" {
		t.Errorf("DataDir = %q, want %q", cfg.DataDir, "/tmp/steeper-test")
	}
	if cfg.TargetMinutes != 3.5 {
		t.Errorf("TargetMinutes = %v, want 3.5", cfg.TargetMinutes)
	}
	if cfg.Recent != 5 {
		t.Errorf("Recent = %d, want 5", cfg.Recent)
	}
}

func TestLoadPartialFileKeepsDefaults(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")

	if err := os.WriteFile(configPath, []byte("theme: frappe\n"), 0644); err != nil {
		t.Fatalf("Failed to write test config: %v", err)
	}

	cfg, err := Load(configPath)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Theme != "frappe" {
		t.Errorf("Theme = %q, want %q", cfg.Theme, "frappe")
	}
	// Fields absent from the file stay at their defaults.
	if cfg.Recent != 10 {
		t.Errorf("Recent = %d, want default 10", cfg.Recent)
	}
	if cfg.DataDir == "" {
		t.Error("DataDir should fall back to the default location")
	}
}

func TestLoadClampsNegatives(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")

	content := `target_minutes: -2
recent: -1
`
	if err := os.WriteFile(configPath, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to write test config: %v", err)
	}

	cfg, err := Load(configPath)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.TargetMinutes != 0 {
		t.Errorf("TargetMinutes = %v, want 0", cfg.TargetMinutes)
	}
	if cfg.Recent != 0 {
		t.Errorf("Recent = %d, want 0", cfg.Recent)
	}
}

func TestLoadMissingFile(t *testing.T) {
	cfg, err := Load("/nonexistent/path/config.yaml")
	if err != nil {
		t.Fatalf("Load() should not error for missing file, got: %v", err)
	}

	if cfg.Theme != "mocha" {
		t.Error("Should return default config for missing file")
	}
}

func TestLoadInvalidYAML(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")

	if err := os.WriteFile(configPath, []byte("theme: [unclosed"), 0644); err != nil {
		t.Fatalf("Failed to write test config: %v", err)
	}

	if _, err := Load(configPath); err == nil {
		t.Error("Load() should error on invalid YAML")
	}
}
