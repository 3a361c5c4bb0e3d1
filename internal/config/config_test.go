package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadFromRootMissingUsesDefaults(t *testing.T) {
	cfg, err := LoadFromRoot(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	if cfg.LogLevel != "info" || cfg.Pacing != 1.0 {
		t.Fatalf("unexpected defaults: %+v", cfg)
	}
}

func TestEnsureInitializedThenLoad(t *testing.T) {
	root := t.TempDir()
	if err := EnsureInitialized(root); err != nil {
		t.Fatal(err)
	}
	if _, err := os.Stat(filepath.Join(root, AiviaDir, "config.toml")); err != nil {
		t.Fatal(err)
	}
	cfg, err := LoadFromRoot(root)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.LogFile != ".aivia/aivia.log" {
		t.Fatalf("unexpected log file: %q", cfg.LogFile)
	}
}

func TestEnsureInitializedDoesNotOverwrite(t *testing.T) {
	root := t.TempDir()
	path := filepath.Join(root, AiviaDir, "config.toml")
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte("pacing = 0.25\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := EnsureInitialized(root); err != nil {
		t.Fatal(err)
	}
	cfg, err := LoadFromRoot(root)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Pacing != 0.25 {
		t.Fatalf("expected existing config preserved, got pacing %v", cfg.Pacing)
	}
}

func TestLoadFromRootClampsPacing(t *testing.T) {
	root := t.TempDir()
	path := filepath.Join(root, AiviaDir, "config.toml")
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte("pacing = -2.0\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	cfg, err := LoadFromRoot(root)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Pacing != 1.0 {
		t.Fatalf("expected pacing clamped to 1.0, got %v", cfg.Pacing)
	}
}

func TestLoadFromRootBadToml(t *testing.T) {
	root := t.TempDir()
	path := filepath.Join(root, AiviaDir, "config.toml")
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte("pacing = ["), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadFromRoot(root); err == nil {
		t.Fatal("expected parse error")
	}
}
