package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/suryansh-23/piiscan/internal/types"
)

func TestWriteConfigRoundTrip(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Categories = []types.Category{types.CategoryEmail, types.CategorySSN}
	cfg.Scan.Workers = 2
	path := filepath.Join(t.TempDir(), "nested", "config.yaml")
	if err := Write(path, cfg); err != nil {
		t.Fatalf("write config: %v", err)
	}
	loaded, found, err := Load(path)
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if !found {
		t.Fatalf("expected config to be found")
	}
	if len(loaded.Categories) != 2 || loaded.Scan.Workers != 2 {
		t.Fatalf("loaded = %+v", loaded)
	}
}

func TestWriteRejectsInvalidConfig(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Version = 99
	if err := Write(filepath.Join(t.TempDir(), "config.yaml"), cfg); err == nil {
		t.Fatalf("expected validation error")
	}
}

func TestWriteLeavesNoTempFiles(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	if err := Write(path, DefaultConfig()); err != nil {
		t.Fatalf("write config: %v", err)
	}
	if err := Write(path, DefaultConfig()); err != nil {
		t.Fatalf("overwrite config: %v", err)
	}
	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("read dir: %v", err)
	}
	if len(entries) != 1 {
		t.Fatalf("entries = %d", len(entries))
	}
}
