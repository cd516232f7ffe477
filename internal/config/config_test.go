package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadEmbeddedDefaults(t *testing.T) {
	region, err := LoadRegion("")
	if err != nil {
		t.Fatalf("LoadRegion() failed: %v", err)
	}
	if region.MoveStep != 0.5 {
		t.Errorf("MoveStep = %v, expected 0.5", region.MoveStep)
	}
	if !region.Assist.ShadeFeasible {
		t.Error("default region assist should shade the feasible region")
	}

	boundary, err := LoadBoundary("")
	if err != nil {
		t.Fatalf("LoadBoundary() failed: %v", err)
	}
	if boundary.MinSeparation <= 0 {
		t.Error("default boundary config must enforce a handle separation")
	}

	systems, err := LoadSystems("")
	if err != nil {
		t.Fatalf("LoadSystems() failed: %v", err)
	}
	if systems.ConstStep != 0.5 {
		t.Errorf("ConstStep = %v, expected 0.5", systems.ConstStep)
	}

	corridor, err := LoadCorridor("")
	if err != nil {
		t.Fatalf("LoadCorridor() failed: %v", err)
	}
	if corridor.CenterStep != 0.5 || corridor.RadiusStep != 0.5 {
		t.Errorf("unexpected corridor steps: %+v", corridor)
	}
}

func TestLoadCustomPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "region.yaml")
	content := []byte("move_step: 1.0\nassist:\n  show_area: true\n")
	if err := os.WriteFile(path, content, 0o600); err != nil {
		t.Fatalf("writing temp config: %v", err)
	}

	cfg, err := LoadRegion(path)
	if err != nil {
		t.Fatalf("LoadRegion(custom) failed: %v", err)
	}
	if cfg.MoveStep != 1.0 {
		t.Errorf("MoveStep = %v, expected 1.0", cfg.MoveStep)
	}
	if !cfg.Assist.ShowArea {
		t.Error("custom config should enable ShowArea")
	}
}

func TestLoadCustomPathMissing(t *testing.T) {
	_, err := LoadRegion(filepath.Join(t.TempDir(), "nope.yaml"))
	if err == nil {
		t.Error("expected error for missing custom config path")
	}
}

func TestPresets(t *testing.T) {
	easy := AssistForPreset(PresetEasy)
	if !easy.ShadeFeasible || !easy.ShowStatus || !easy.ShowArea {
		t.Errorf("easy preset should enable all assists: %+v", easy)
	}

	hard := AssistForPreset(PresetHard)
	if hard.ShadeFeasible || hard.ShowStatus || hard.ShowArea {
		t.Errorf("hard preset should disable all assists: %+v", hard)
	}

	cfg := DefaultRegionConfig()
	ApplyRegionPreset(&cfg, PresetHard)
	if cfg.Assist.ShadeFeasible {
		t.Error("preset application should override assist settings")
	}

	// Empty preset leaves the config untouched.
	cfg = DefaultRegionConfig()
	before := cfg.Assist
	ApplyRegionPreset(&cfg, "")
	if cfg.Assist != before {
		t.Error("empty preset should not modify the config")
	}
}
