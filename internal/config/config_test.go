package config

import (
	"path/filepath"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Scenario != "proton-proton" {
		t.Errorf("expected scenario proton-proton, got %s", cfg.Scenario)
	}
	if cfg.View.Zoom <= 0 {
		t.Error("zoom should be positive")
	}
	if cfg.View.HoverThrottleMs <= 0 {
		t.Error("hover throttle should be positive")
	}
}

func TestGetPreset(t *testing.T) {
	cfg := GetPreset("proton-proton", "close-up")
	if cfg == nil {
		t.Fatal("expected preset, got nil")
	}
	if cfg.View.Zoom != 2.5 {
		t.Errorf("expected zoom 2.5, got %f", cfg.View.Zoom)
	}
}

func TestGetPreset_NotFound(t *testing.T) {
	if cfg := GetPreset("proton-proton", "nonexistent"); cfg != nil {
		t.Error("expected nil for nonexistent preset")
	}
	if cfg := GetPreset("nonexistent", "wide"); cfg != nil {
		t.Error("expected nil for nonexistent scenario")
	}
}

func TestListPresets(t *testing.T) {
	if presets := ListPresets("pion"); len(presets) != 2 {
		t.Errorf("expected 2 presets for pion, got %d", len(presets))
	}
	if presets := ListPresets("nonexistent"); presets != nil {
		t.Error("expected nil for nonexistent scenario")
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "chamber.yaml")

	cfg := DefaultConfig()
	cfg.Scenario = "muon"
	cfg.Seed = 12345
	cfg.View.Zoom = 2.0

	if err := Save(path, cfg); err != nil {
		t.Fatal(err)
	}
	loaded, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}

	if loaded.Scenario != "muon" || loaded.Seed != 12345 || loaded.View.Zoom != 2.0 {
		t.Errorf("round trip lost values: %+v", loaded)
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load("/nonexistent/chamber.yaml"); err == nil {
		t.Error("expected error for missing file")
	}
}
