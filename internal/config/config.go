// Package config provides YAML-based game configuration loading and
// validation for the arcade platform.
package config

// FlappyConfig contains all configuration for the Flappy Bird game.
// Values are in world units (pixels of the classic 400x600 playfield) and
// per-tick quantities assume a fixed 60 Hz simulation.
type FlappyConfig struct {
	Screen    FlappyScreen    `yaml:"screen"`
	Physics   FlappyPhysics   `yaml:"physics"`
	Avatar    FlappyAvatar    `yaml:"avatar"`
	Obstacles FlappyObstacles `yaml:"obstacles"`
}

// FlappyScreen defines the size of the simulated playfield.
type FlappyScreen struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// FlappyPhysics defines physics parameters for Flappy Bird.
type FlappyPhysics struct {
	Gravity     float64 `yaml:"gravity"`      // Added to velocity every tick
	FlapImpulse float64 `yaml:"flap_impulse"` // Velocity set by a flap (negative = up)
	PipeSpeed   float64 `yaml:"pipe_speed"`   // Leftward obstacle movement per tick
}

// FlappyAvatar defines the player avatar.
type FlappyAvatar struct {
	X      float64 `yaml:"x"`
	Radius float64 `yaml:"radius"`
}

// FlappyObstacles defines obstacle parameters for Flappy Bird.
type FlappyObstacles struct {
	Width           float64 `yaml:"width"`
	GapHeight       float64 `yaml:"gap_height"`
	Margin          float64 `yaml:"margin"` // Minimum solid height above and below the gap
	SpawnIntervalMS int64   `yaml:"spawn_interval_ms"`
}
