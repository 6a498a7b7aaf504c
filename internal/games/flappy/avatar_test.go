package flappy

import (
	"math/rand"
	"testing"

	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/core"
)

func TestAvatarStartsCentered(t *testing.T) {
	a := NewAvatar(config.DefaultFlappyConfig())

	if a.X != 100 || a.Y != 300 {
		t.Errorf("Avatar should start at (100, 300), got (%v, %v)", a.X, a.Y)
	}
	if a.Velocity != 0 {
		t.Errorf("Avatar should start at rest, got velocity %v", a.Velocity)
	}
}

func TestAvatarGravity(t *testing.T) {
	a := NewAvatar(config.DefaultFlappyConfig())

	a.Update()
	if a.Velocity != 0.25 {
		t.Errorf("Velocity after one tick = %v, expected 0.25", a.Velocity)
	}
	if a.Y != 300.25 {
		t.Errorf("Y after one tick = %v, expected 300.25", a.Y)
	}

	a.Update()
	if a.Velocity != 0.5 || a.Y != 300.75 {
		t.Errorf("After two ticks got Y=%v V=%v, expected Y=300.75 V=0.5", a.Y, a.Velocity)
	}
}

func TestAvatarFlapOverridesVelocity(t *testing.T) {
	for _, prior := range []float64{0, 5, -3, -7, 100, -100} {
		a := NewAvatar(config.DefaultFlappyConfig())
		a.Velocity = prior
		a.Flap()
		if a.Velocity != -7 {
			t.Errorf("Flap with prior velocity %v gave %v, expected -7", prior, a.Velocity)
		}
	}
}

func TestAvatarClampBottom(t *testing.T) {
	a := NewAvatar(config.DefaultFlappyConfig())
	a.Y = 599
	a.Velocity = 10

	a.Update()

	if a.Y != 600 {
		t.Errorf("Y should clamp to 600, got %v", a.Y)
	}
	if a.Velocity != 0 {
		t.Errorf("Velocity should be zeroed on clamp, got %v", a.Velocity)
	}
	if !a.AtBound() {
		t.Error("Avatar on the floor should be at a bound")
	}
}

func TestAvatarClampTop(t *testing.T) {
	a := NewAvatar(config.DefaultFlappyConfig())
	a.Y = 1
	a.Flap()

	a.Update()

	if a.Y != 0 {
		t.Errorf("Y should clamp to 0, got %v", a.Y)
	}
	if a.Velocity != 0 {
		t.Errorf("Velocity should be zeroed on clamp, got %v", a.Velocity)
	}
	if !a.AtBound() {
		t.Error("Avatar on the ceiling should be at a bound")
	}
}

func TestAvatarStaysInBounds(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	a := NewAvatar(config.DefaultFlappyConfig())

	for i := 0; i < 5000; i++ {
		if rng.Intn(6) == 0 {
			a.Flap()
		}
		a.Update()
		if a.Y < 0 || a.Y > 600 {
			t.Fatalf("tick %d: Y=%v outside [0, 600]", i, a.Y)
		}
	}
}

func TestAvatarBounds(t *testing.T) {
	a := NewAvatar(config.DefaultFlappyConfig())

	if got := a.Bounds(); got != core.NewRect(85, 285, 30, 30) {
		t.Errorf("Bounds() = %+v, expected 30x30 square at (85, 285)", got)
	}
	if a.AtBound() {
		t.Error("Centered avatar should not be at a bound")
	}
}
