package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadMissingFile(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	if err != nil {
		t.Fatalf("missing config file must not be an error: %v", err)
	}
	if cfg != Default() {
		t.Errorf("expected defaults, got %+v", cfg)
	}
}

func TestLoadOverrides(t *testing.T) {
	path := filepath.Join(t.TempDir(), "minibasic.yaml")
	data := "verbose: true\nmax_steps: 500\n"
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !cfg.Verbose {
		t.Error("verbose should be overridden to true")
	}
	if cfg.MaxSteps != 500 {
		t.Errorf("expected max_steps 500, got %d", cfg.MaxSteps)
	}
	if cfg.NoColor {
		t.Error("no_color should keep its default")
	}
}

func TestLoadMalformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "minibasic.yaml")
	if err := os.WriteFile(path, []byte(":\t not yaml ["), 0o644); err != nil {
		t.Fatal(err)
	}

	if _, err := Load(path); err == nil {
		t.Error("malformed config should fail")
	}
}
