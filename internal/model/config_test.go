package model

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadConfigMissingFileReturnsDefaults(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "config.yaml"))
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}

	if cfg.Timer.TickIntervalMs != 250 {
		t.Errorf("tick interval = %d, want 250", cfg.Timer.TickIntervalMs)
	}
	if cfg.Display.ShowCompleted {
		t.Error("show_completed defaults to true, want false")
	}
	if cfg.Storage.Path == "" {
		t.Error("storage path default is empty")
	}
}

func TestLoadConfigReadsFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := []byte(
		"storage:\n  path: /tmp/alt.db\ndisplay:\n  show_completed: true\ntimer:\n  tick_interval_ms: 100\n",
	)
	if err := os.WriteFile(path, content, 0o644); err != nil {
		t.Fatalf("writing config: %v", err)
	}

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}

	if cfg.Storage.Path != "/tmp/alt.db" {
		t.Errorf("storage path = %q, want /tmp/alt.db", cfg.Storage.Path)
	}
	if !cfg.Display.ShowCompleted {
		t.Error("show_completed not read from file")
	}
	if cfg.Timer.TickIntervalMs != 100 {
		t.Errorf("tick interval = %d, want 100", cfg.Timer.TickIntervalMs)
	}
}

func TestLoadConfigRejectsNonPositiveTick(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("timer:\n  tick_interval_ms: 0\n"), 0o644); err != nil {
		t.Fatalf("writing config: %v", err)
	}

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if cfg.Timer.TickIntervalMs != 250 {
		t.Errorf("tick interval = %d, want fallback 250", cfg.Timer.TickIntervalMs)
	}
}

func TestSaveConfigRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.yaml")

	in := &AppConfig{
		Storage: StorageConfig{Path: "/tmp/rt.db"},
		Display: DisplayConfig{Theme: "default", ShowCompleted: true},
		Timer:   TimerConfig{TickIntervalMs: 500},
	}
	if err := SaveConfig(path, in); err != nil {
		t.Fatalf("SaveConfig: %v", err)
	}

	out, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if out.Storage.Path != in.Storage.Path {
		t.Errorf("storage path = %q, want %q", out.Storage.Path, in.Storage.Path)
	}
	if out.Timer.TickIntervalMs != in.Timer.TickIntervalMs {
		t.Errorf("tick interval = %d, want %d", out.Timer.TickIntervalMs, in.Timer.TickIntervalMs)
	}
	if !out.Display.ShowCompleted {
		t.Error("show_completed lost in round trip")
	}
}
