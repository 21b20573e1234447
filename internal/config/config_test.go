package config

import (
	"os"
	"testing"
)

func TestGetDefaults(t *testing.T) {
	cfg := GetDefaults()

	if len(cfg.Library.Paths) == 0 {
		t.Error("defaults should include at least one library path")
	}
	if len(cfg.Library.Extensions) == 0 {
		t.Error("defaults should include audio extensions")
	}
	if cfg.Database.Port != 5432 {
		t.Errorf("expected default port 5432, got %d", cfg.Database.Port)
	}
	if cfg.Database.Enabled {
		t.Error("tag database should be disabled by default")
	}
	if cfg.UI.Theme != "default" {
		t.Errorf("expected default theme, got %q", cfg.UI.Theme)
	}
	if cfg.History.MaxEntries != 1000 {
		t.Errorf("expected 1000 history entries, got %d", cfg.History.MaxEntries)
	}
}

func TestLoad_NoConfigFileUsesDefaults(t *testing.T) {
	// Load from a directory with no config file present
	oldWD, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(t.TempDir()); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { os.Chdir(oldWD) })

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load without config file should succeed: %v", err)
	}

	defaults := GetDefaults()
	if cfg.Database.Port != defaults.Database.Port {
		t.Errorf("expected default port %d, got %d", defaults.Database.Port, cfg.Database.Port)
	}
	if cfg.UI.PanelWidthRatio != defaults.UI.PanelWidthRatio {
		t.Errorf("expected default panel ratio %d, got %d", defaults.UI.PanelWidthRatio, cfg.UI.PanelWidthRatio)
	}
}
