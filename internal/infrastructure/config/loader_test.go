package config

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/hwittich/rvx/internal/domain"
)

func TestLoadWritesDefaultsOnFirstRun(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	loader := NewFileLoader(path)

	cfg, err := loader.Load(context.Background())
	if err != nil {
		t.Fatalf("Load err: %v", err)
	}

	if cfg.Backend.Command != domain.DefaultBackendCommand {
		t.Fatalf("unexpected backend command: %q", cfg.Backend.Command)
	}
	if !cfg.Status.Visible || !cfg.Console.AutoLaunch || !cfg.Manifest.AutoCheck {
		t.Fatalf("default toggles should be on: %+v", cfg)
	}
	if _, err := os.Stat(path); err != nil {
		t.Fatalf("default config not written: %v", err)
	}
}

func TestLoadHydratesPartialConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	raw := []byte("status:\n  visible: false\n")
	if err := os.WriteFile(path, raw, 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}

	loader := NewFileLoader(path)
	cfg, err := loader.Load(context.Background())
	if err != nil {
		t.Fatalf("Load err: %v", err)
	}

	if cfg.Status.Visible {
		t.Fatal("explicit visible=false must survive hydration")
	}
	if cfg.Backend.Command != domain.DefaultBackendCommand {
		t.Fatalf("backend command not hydrated: %q", cfg.Backend.Command)
	}
	if cfg.Manifest.Path != domain.DefaultManifestPath {
		t.Fatalf("manifest path not hydrated: %q", cfg.Manifest.Path)
	}
	if cfg.Operations.TimeoutSeconds == 0 {
		t.Fatal("operation timeout not hydrated")
	}
}

func TestLoadRejectsInvalidYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("backend: [unclosed"), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}

	loader := NewFileLoader(path)
	if _, err := loader.Load(context.Background()); err == nil {
		t.Fatal("expected error for invalid yaml")
	}
}
