package cli

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadConfigMissingFileUsesDefaults(t *testing.T) {
	cfg, err := loadConfig(filepath.Join(t.TempDir(), "fpview.toml"))
	if err != nil {
		t.Fatalf("loadConfig: %v", err)
	}
	if cfg.Output != "." || len(cfg.Formats) != 1 || cfg.Formats[0] != "svg" || cfg.Scale != 2.0 {
		t.Errorf("defaults = %+v", cfg)
	}
}

func TestLoadConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "fpview.toml")
	content := `
output = "renders"
formats = ["svg", "png"]
scale = 3.0
keys = ["blocks", "contrast"]
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := loadConfig(path)
	if err != nil {
		t.Fatalf("loadConfig: %v", err)
	}
	if cfg.Output != "renders" {
		t.Errorf("output = %q", cfg.Output)
	}
	if len(cfg.Formats) != 2 || cfg.Formats[1] != "png" {
		t.Errorf("formats = %v", cfg.Formats)
	}
	if cfg.Scale != 3.0 {
		t.Errorf("scale = %v", cfg.Scale)
	}
	if len(cfg.Keys) != 2 || cfg.Keys[0] != "blocks" {
		t.Errorf("keys = %v", cfg.Keys)
	}
}

func TestLoadConfigPartialKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "fpview.toml")
	if err := os.WriteFile(path, []byte(`output = "out"`), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := loadConfig(path)
	if err != nil {
		t.Fatalf("loadConfig: %v", err)
	}
	if cfg.Output != "out" {
		t.Errorf("output = %q", cfg.Output)
	}
	if len(cfg.Formats) != 1 || cfg.Formats[0] != "svg" {
		t.Errorf("formats should keep default, got %v", cfg.Formats)
	}
}

func TestLoadConfigRejectsUnknownKeys(t *testing.T) {
	path := filepath.Join(t.TempDir(), "fpview.toml")
	if err := os.WriteFile(path, []byte(`colour = "red"`), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := loadConfig(path); err == nil {
		t.Error("loadConfig accepted an unknown key")
	}
}
