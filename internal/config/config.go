// Package config provides YAML-based game configuration loading and
// difficulty management.
package config

// RoadRushConfig contains all configuration for the Road Rush game.
type RoadRushConfig struct {
	Speeds     Speeds           `yaml:"speeds"`
	Bounds     Bounds           `yaml:"bounds"`
	Road       Road             `yaml:"road"`
	Obstacles  Obstacles        `yaml:"obstacles"`
	Player     Player           `yaml:"player"`
	Health     Health           `yaml:"health"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// Speeds defines the fixed movement speeds in world units per second.
type Speeds struct {
	Player float64 `yaml:"player"` // vertical steering speed
	Road   float64 `yaml:"road"`   // leftward scroll speed of lines and obstacles
}

// Bounds defines the vertical play area. Leaving it is an instant loss.
type Bounds struct {
	Top    float64 `yaml:"top"`
	Bottom float64 `yaml:"bottom"`
}

// Road defines the scrolling road-line layout.
type Road struct {
	Lines    int     `yaml:"lines"`     // number of lane marker sprites
	Spacing  float64 `yaml:"spacing"`   // horizontal distance between markers
	StartX   float64 `yaml:"start_x"`   // x of the first marker at reset
	WrapAt   float64 `yaml:"wrap_at"`   // markers past this x wrap to the right
	WrapSpan float64 `yaml:"wrap_span"` // distance added when wrapping
	Scale    float64 `yaml:"scale"`     // marker sprite scale
}

// Obstacles defines obstacle recycling behavior.
type Obstacles struct {
	Count       int     `yaml:"count"`         // obstacles on the road at once
	DespawnAt   float64 `yaml:"despawn_at"`    // past this x an obstacle is recycled
	RespawnMinX float64 `yaml:"respawn_min_x"` // respawn x range [min, max)
	RespawnMaxX float64 `yaml:"respawn_max_x"`
	MinY        float64 `yaml:"min_y"` // respawn y range [min, max)
	MaxY        float64 `yaml:"max_y"`
}

// Player defines the player car parameters.
type Player struct {
	Name   string  `yaml:"name"`    // sprite registry key
	StartX float64 `yaml:"start_x"` // fixed horizontal position
	Tilt   float64 `yaml:"tilt"`    // rotation per unit of steering direction
}

// Health defines the health counter parameters.
type Health struct {
	Initial int `yaml:"initial"`
}

// DifficultyConfig defines the optional difficulty progression system.
// Disabled by default: the canonical game runs at constant speed.
type DifficultyConfig struct {
	Enabled      bool              `yaml:"enabled"`
	InitialLevel float64           `yaml:"initial_level"` // 0.0 = easy, 1.0 = hard
	Progression  ProgressionConfig `yaml:"progression"`
	Scaling      ScalingConfig     `yaml:"scaling"`
}

// ProgressionConfig defines how difficulty increases over time.
type ProgressionConfig struct {
	Type  string `yaml:"type"`   // "score", "time", or "none"
	MaxAt int    `yaml:"max_at"` // Score/ticks at which max difficulty is reached
}

// ScalingConfig defines the magnitude of difficulty changes.
type ScalingConfig struct {
	SpeedMultiplier float64 `yaml:"speed_multiplier"` // added road-speed factor at max difficulty
	ExtraObstacles  int     `yaml:"extra_obstacles"`  // additional obstacles at max initial level
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// InitialLevelForPreset returns the initial_level for a difficulty preset.
func InitialLevelForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyEasy:
		return 0.0
	case DifficultyNormal:
		return 0.3
	case DifficultyHard:
		return 0.7
	default:
		return 0.0
	}
}

// ApplyRoadRushPreset modifies the config based on a difficulty preset.
func ApplyRoadRushPreset(cfg *RoadRushConfig, preset DifficultyPreset) {
	if preset == DifficultyFixed {
		cfg.Difficulty.Enabled = false
		return
	}
	cfg.Difficulty.Enabled = true
	cfg.Difficulty.InitialLevel = InitialLevelForPreset(preset)

	// Hard runs start with a fuller road.
	if preset == DifficultyHard && cfg.Difficulty.Scaling.ExtraObstacles > 0 {
		cfg.Obstacles.Count += cfg.Difficulty.Scaling.ExtraObstacles
	}
}
