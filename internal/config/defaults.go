package config

import (
	_ "embed"
)

//go:embed defaults/flappy.yaml
var defaultFlappyYAML []byte

// DefaultFlappyConfig returns the default Flappy Bird configuration.
func DefaultFlappyConfig() FlappyConfig {
	return FlappyConfig{
		Screen: FlappyScreen{
			Width:  400,
			Height: 600,
		},
		Physics: FlappyPhysics{
			Gravity:     0.25,
			FlapImpulse: -7,
			PipeSpeed:   3,
		},
		Avatar: FlappyAvatar{
			X:      100,
			Radius: 15,
		},
		Obstacles: FlappyObstacles{
			Width:           50,
			GapHeight:       150,
			Margin:          100,
			SpawnIntervalMS: 1500,
		},
	}
}

// GetDefaultYAML returns the embedded default YAML for a game.
func GetDefaultYAML(gameID string) []byte {
	switch gameID {
	case "flappy":
		return defaultFlappyYAML
	default:
		return nil
	}
}
