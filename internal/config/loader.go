package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// LoadRegion loads the Feasible Zone configuration.
// Search order: customPath -> ~/.ineq-arcade/configs/region.yaml ->
// ./configs/region.yaml -> embedded default.
func LoadRegion(customPath string) (RegionConfig, error) {
	var cfg RegionConfig
	if err := load(customPath, "region.yaml", defaultRegionYAML, &cfg); err != nil {
		return DefaultRegionConfig(), err
	}
	return cfg, nil
}

// LoadBoundary loads the Line Lab configuration.
func LoadBoundary(customPath string) (BoundaryConfig, error) {
	var cfg BoundaryConfig
	if err := load(customPath, "boundary.yaml", defaultBoundaryYAML, &cfg); err != nil {
		return DefaultBoundaryConfig(), err
	}
	return cfg, nil
}

// LoadSystems loads the System Forge configuration.
func LoadSystems(customPath string) (SystemsConfig, error) {
	var cfg SystemsConfig
	if err := load(customPath, "systems.yaml", defaultSystemsYAML, &cfg); err != nil {
		return DefaultSystemsConfig(), err
	}
	return cfg, nil
}

// LoadCorridor loads the Corridor configuration.
func LoadCorridor(customPath string) (CorridorConfig, error) {
	var cfg CorridorConfig
	if err := load(customPath, "corridor.yaml", defaultCorridorYAML, &cfg); err != nil {
		return DefaultCorridorConfig(), err
	}
	return cfg, nil
}

// load implements the shared search order. A missing or broken custom
// path is an error; failures further down the chain fall through to the
// embedded default.
func load(customPath, filename string, embedded []byte, out any) error {
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return fmt.Errorf("config: failed to read %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, out); err != nil {
			return fmt.Errorf("config: failed to parse %s: %w", customPath, err)
		}
		return nil
	}

	if userPath := userConfigPath(filename); userPath != "" {
		if data, err := os.ReadFile(userPath); err == nil {
			if err := yaml.Unmarshal(data, out); err == nil {
				return nil
			}
		}
	}

	if data, err := os.ReadFile(filepath.Join("configs", filename)); err == nil {
		if err := yaml.Unmarshal(data, out); err == nil {
			return nil
		}
	}

	return yaml.Unmarshal(embedded, out)
}

// userConfigPath returns the path to a user config file, or empty if
// the home directory is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".ineq-arcade", "configs", filename)
}

// ApplyRegionPreset overrides the assist settings from a preset name.
func ApplyRegionPreset(cfg *RegionConfig, preset Preset) {
	if preset != "" {
		cfg.Assist = AssistForPreset(preset)
	}
}

// ApplyBoundaryPreset overrides the assist settings from a preset name.
func ApplyBoundaryPreset(cfg *BoundaryConfig, preset Preset) {
	if preset != "" {
		cfg.Assist = AssistForPreset(preset)
	}
}

// ApplySystemsPreset overrides the assist settings from a preset name.
func ApplySystemsPreset(cfg *SystemsConfig, preset Preset) {
	if preset != "" {
		cfg.Assist = AssistForPreset(preset)
	}
}

// ApplyCorridorPreset overrides the assist settings from a preset name.
func ApplyCorridorPreset(cfg *CorridorConfig, preset Preset) {
	if preset != "" {
		cfg.Assist = AssistForPreset(preset)
	}
}
