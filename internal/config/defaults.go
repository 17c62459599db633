package config

import (
	_ "embed"
)

//go:embed defaults/roadrush.yaml
var defaultRoadRushYAML []byte

// DefaultRoadRushConfig returns the default Road Rush configuration.
// These values mirror defaults/roadrush.yaml.
func DefaultRoadRushConfig() RoadRushConfig {
	return RoadRushConfig{
		Speeds: Speeds{
			Player: 250.0,
			Road:   400.0,
		},
		Bounds: Bounds{
			Top:    360.0,
			Bottom: -360.0,
		},
		Road: Road{
			Lines:    10,
			Spacing:  150.0,
			StartX:   -600.0,
			WrapAt:   -675.0,
			WrapSpan: 1500.0,
			Scale:    0.1,
		},
		Obstacles: Obstacles{
			Count:       3,
			DespawnAt:   -800.0,
			RespawnMinX: 800.0,
			RespawnMaxX: 1600.0,
			MinY:        -300.0,
			MaxY:        300.0,
		},
		Player: Player{
			Name:   "player1",
			StartX: -500.0,
			Tilt:   0.15,
		},
		Health: Health{
			Initial: 5,
		},
		Difficulty: DifficultyConfig{
			Enabled:      false,
			InitialLevel: 0.0,
			Progression: ProgressionConfig{
				Type:  "time",
				MaxAt: 7200,
			},
			Scaling: ScalingConfig{
				SpeedMultiplier: 0.5,
				ExtraObstacles:  2,
			},
		},
	}
}

// GetDefaultYAML returns the embedded default YAML.
func GetDefaultYAML() []byte {
	return defaultRoadRushYAML
}
