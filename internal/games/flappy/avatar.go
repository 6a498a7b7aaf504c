package flappy

import (
	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/core"
)

// Avatar is the player-controlled bird. Its horizontal position is fixed;
// only Y and Velocity change during a round.
type Avatar struct {
	X        float64 // Fixed horizontal position (center)
	Y        float64 // Vertical position of the center, 0 is the top edge
	Velocity float64 // Vertical velocity per tick (negative = up)
	Radius   float64

	gravity float64
	impulse float64
	floor   float64 // Playfield height; Y never exceeds it
}

// NewAvatar places a resting avatar halfway down the playfield.
func NewAvatar(cfg config.FlappyConfig) *Avatar {
	return &Avatar{
		X:       cfg.Avatar.X,
		Y:       cfg.Screen.Height / 2,
		Radius:  cfg.Avatar.Radius,
		gravity: cfg.Physics.Gravity,
		impulse: cfg.Physics.FlapImpulse,
		floor:   cfg.Screen.Height,
	}
}

// Flap replaces the current velocity with the flap impulse.
func (a *Avatar) Flap() {
	a.Velocity = a.impulse
}

// Update integrates one tick of gravity and clamps the avatar to the
// playfield, zeroing velocity when it touches either edge.
func (a *Avatar) Update() {
	a.Velocity += a.gravity
	a.Y += a.Velocity

	if a.Y < 0 {
		a.Y = 0
		a.Velocity = 0
	}
	if a.Y > a.floor {
		a.Y = a.floor
		a.Velocity = 0
	}
}

// Bounds returns the square hitbox centered on the avatar.
func (a *Avatar) Bounds() core.Rect {
	return core.SquareAt(a.X, a.Y, a.Radius)
}

// AtBound reports whether the avatar rests on the top or bottom edge.
func (a *Avatar) AtBound() bool {
	return a.Y <= 0 || a.Y >= a.floor
}
