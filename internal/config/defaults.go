package config

import (
	_ "embed"
)

//go:embed defaults/region.yaml
var defaultRegionYAML []byte

//go:embed defaults/boundary.yaml
var defaultBoundaryYAML []byte

//go:embed defaults/systems.yaml
var defaultSystemsYAML []byte

//go:embed defaults/corridor.yaml
var defaultCorridorYAML []byte

// DefaultRegionConfig returns the hardcoded Feasible Zone configuration,
// used if the embedded yaml somehow fails to parse.
func DefaultRegionConfig() RegionConfig {
	return RegionConfig{
		MoveStep: 0.5,
		Assist:   AssistForPreset(PresetNormal),
	}
}

// DefaultBoundaryConfig returns the hardcoded Line Lab configuration.
func DefaultBoundaryConfig() BoundaryConfig {
	return BoundaryConfig{
		HandleStep:    0.5,
		MinSeparation: 1.0,
		Assist:        AssistForPreset(PresetNormal),
	}
}

// DefaultSystemsConfig returns the hardcoded System Forge configuration.
func DefaultSystemsConfig() SystemsConfig {
	return SystemsConfig{
		ConstStep: 0.5,
		Assist:    AssistForPreset(PresetNormal),
	}
}

// DefaultCorridorConfig returns the hardcoded Corridor configuration.
func DefaultCorridorConfig() CorridorConfig {
	return CorridorConfig{
		CenterStep: 0.5,
		RadiusStep: 0.5,
		Assist:     AssistForPreset(PresetNormal),
	}
}
