package config

import (
	"errors"
	"fmt"
)

// ErrInvalidConfig is wrapped by every validation failure.
var ErrInvalidConfig = errors.New("config: invalid")

// Validate checks that the configuration describes a playable field.
// All violations are reported together.
func (c FlappyConfig) Validate() error {
	var errs []error
	check := func(ok bool, format string, args ...any) {
		if !ok {
			errs = append(errs, fmt.Errorf(format, args...))
		}
	}

	check(c.Screen.Width > 0, "screen.width must be positive, got %v", c.Screen.Width)
	check(c.Screen.Height > 0, "screen.height must be positive, got %v", c.Screen.Height)

	check(c.Physics.Gravity > 0, "physics.gravity must be positive, got %v", c.Physics.Gravity)
	check(c.Physics.FlapImpulse < 0, "physics.flap_impulse must be negative (upward), got %v", c.Physics.FlapImpulse)
	check(c.Physics.PipeSpeed > 0, "physics.pipe_speed must be positive, got %v", c.Physics.PipeSpeed)

	check(c.Avatar.Radius > 0, "avatar.radius must be positive, got %v", c.Avatar.Radius)
	check(c.Avatar.X >= 0 && c.Avatar.X <= c.Screen.Width,
		"avatar.x must lie within [0, %v], got %v", c.Screen.Width, c.Avatar.X)

	o := c.Obstacles
	check(o.Width > 0, "obstacles.width must be positive, got %v", o.Width)
	check(o.GapHeight > 0, "obstacles.gap_height must be positive, got %v", o.GapHeight)
	check(o.GapHeight < c.Screen.Height,
		"obstacles.gap_height (%v) must be smaller than screen.height (%v)", o.GapHeight, c.Screen.Height)
	check(o.Margin > 0, "obstacles.margin must be positive, got %v", o.Margin)
	check(2*o.Margin+o.GapHeight <= c.Screen.Height,
		"obstacles: 2*margin + gap_height (%v) exceeds screen.height (%v)", 2*o.Margin+o.GapHeight, c.Screen.Height)
	check(o.SpawnIntervalMS > 0, "obstacles.spawn_interval_ms must be positive, got %d", o.SpawnIntervalMS)

	if len(errs) == 0 {
		return nil
	}
	return fmt.Errorf("%w: %w", ErrInvalidConfig, errors.Join(errs...))
}
