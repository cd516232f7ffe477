// Package config provides YAML-based gameplay configuration and assist
// presets for the arcade.
package config

// RegionConfig contains all configuration for the Feasible Zone game.
type RegionConfig struct {
	// MoveStep is how far the plan point moves per key press, in world
	// units. Half-unit steps let boundary lines through integer points
	// be reached exactly.
	MoveStep float64 `yaml:"move_step"`
	Assist   Assist  `yaml:"assist"`
}

// BoundaryConfig contains all configuration for the Line Lab game.
type BoundaryConfig struct {
	// HandleStep is how far a handle moves per key press.
	HandleStep float64 `yaml:"handle_step"`
	// MinSeparation is the smallest allowed distance between the two
	// handles. Coincident handles would give the line constructor a
	// zero-length direction vector, so moves that would come closer
	// than this are rejected.
	MinSeparation float64 `yaml:"min_separation"`
	Assist        Assist  `yaml:"assist"`
}

// SystemsConfig contains all configuration for the System Forge game.
type SystemsConfig struct {
	// ConstStep is the increment applied to a constraint's constant.
	ConstStep float64 `yaml:"const_step"`
	Assist    Assist  `yaml:"assist"`
}

// CorridorConfig contains all configuration for the Corridor game.
type CorridorConfig struct {
	// CenterStep and RadiusStep are the increments for band tuning.
	CenterStep float64 `yaml:"center_step"`
	RadiusStep float64 `yaml:"radius_step"`
	Assist     Assist  `yaml:"assist"`
}

// Assist controls how much the display helps the player.
type Assist struct {
	// ShadeFeasible shades the current feasible region.
	ShadeFeasible bool `yaml:"shade_feasible"`
	// ShowStatus lists the binding/slack/violated status per constraint.
	ShowStatus bool `yaml:"show_status"`
	// ShowArea displays the feasible region's area.
	ShowArea bool `yaml:"show_area"`
}

// Preset represents a named assist level.
type Preset string

const (
	PresetEasy   Preset = "easy"
	PresetNormal Preset = "normal"
	PresetHard   Preset = "hard"
)

// AssistForPreset returns the assist settings for a preset. Easy shows
// everything; hard leaves only the raw inequalities.
func AssistForPreset(p Preset) Assist {
	switch p {
	case PresetEasy:
		return Assist{ShadeFeasible: true, ShowStatus: true, ShowArea: true}
	case PresetHard:
		return Assist{}
	default:
		return Assist{ShadeFeasible: true, ShowStatus: true}
	}
}
