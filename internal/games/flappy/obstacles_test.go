package flappy

import (
	"math/rand"
	"testing"

	"github.com/vovakirdan/tui-flappy/internal/config"
)

// fixedRand always returns v, capped to the valid range.
type fixedRand struct{ v int }

func (r fixedRand) Intn(n int) int {
	if r.v >= n {
		return n - 1
	}
	return r.v
}

// pipeAt builds a pipe at a known position for collision and scoring tests.
func pipeAt(x, gapTop float64) Pipe {
	return Pipe{X: x, GapTop: gapTop, geom: geometryOf(config.DefaultFlappyConfig())}
}

func TestNewPipeGapRange(t *testing.T) {
	tests := []struct {
		name   string
		margin float64
		gap    float64
	}{
		{"defaults", 100, 150},
		{"fractional margin", 100.5, 150},
		{"fractional gap", 100, 150.25},
		{"no whole number in range", 100.5, 398.6},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := config.DefaultFlappyConfig()
			cfg.Obstacles.Margin = tc.margin
			cfg.Obstacles.GapHeight = tc.gap
			if err := cfg.Validate(); err != nil {
				t.Fatalf("config should validate: %v", err)
			}
			lo, hi := tc.margin, cfg.Screen.Height-tc.margin-tc.gap

			rng := rand.New(rand.NewSource(42))
			draws := []Rand{fixedRand{v: 0}, fixedRand{v: 1 << 30}}
			for i := 0; i < 1000; i++ {
				draws = append(draws, rng)
			}

			for _, r := range draws {
				p := newPipe(cfg, r)
				if p.X != 400 {
					t.Fatalf("Pipe should spawn at the right edge, got X=%v", p.X)
				}
				if p.Passed {
					t.Fatal("New pipe should not be passed")
				}
				if p.GapTop < lo || p.GapTop > hi {
					t.Fatalf("GapTop %v outside [%v, %v]", p.GapTop, lo, hi)
				}
				if p.TopRect().H <= 0 || p.BottomRect().H <= 0 {
					t.Fatalf("Both sections must have positive height, got top=%v bottom=%v",
						p.TopRect().H, p.BottomRect().H)
				}
			}
		})
	}
}

func TestNewPipeFractionalMarginRoundsInward(t *testing.T) {
	cfg := config.DefaultFlappyConfig()
	cfg.Obstacles.Margin = 100.5

	if got := newPipe(cfg, fixedRand{v: 0}).GapTop; got != 101 {
		t.Errorf("Lowest draw with margin 100.5 should give GapTop 101, got %v", got)
	}
	if got := newPipe(cfg, fixedRand{v: 1 << 30}).GapTop; got != 349 {
		t.Errorf("Highest draw with margin 100.5 should give GapTop 349, got %v", got)
	}
}

func TestNewPipeGapExtremes(t *testing.T) {
	cfg := config.DefaultFlappyConfig()

	low := newPipe(cfg, fixedRand{v: 0})
	if low.GapTop != 100 {
		t.Errorf("Lowest draw should give GapTop 100, got %v", low.GapTop)
	}

	high := newPipe(cfg, fixedRand{v: 1 << 30})
	if high.GapTop != 350 {
		t.Errorf("Highest draw should give GapTop 350, got %v", high.GapTop)
	}
	if high.BottomRect().Y != 500 || high.BottomRect().H != 100 {
		t.Errorf("Bottom section = %+v, expected y=500 h=100", high.BottomRect())
	}
}

func TestPipeUpdateAndOffscreen(t *testing.T) {
	p := pipeAt(400, 200)
	p.Update()
	if p.X != 397 {
		t.Errorf("Pipe should move 3 left, X=%v", p.X)
	}

	tests := []struct {
		x        float64
		expected bool
	}{
		{0, false},
		{-50, false},
		{-50.5, true},
		{-200, true},
	}
	for _, tc := range tests {
		if got := pipeAt(tc.x, 200).Offscreen(); got != tc.expected {
			t.Errorf("Offscreen() at X=%v = %v, expected %v", tc.x, got, tc.expected)
		}
	}
}

func TestPipeCollides(t *testing.T) {
	cfg := config.DefaultFlappyConfig()

	tests := []struct {
		name     string
		pipeX    float64
		gapTop   float64
		avatarY  float64
		expected bool
	}{
		{"inside gap", 90, 200, 300, false},
		{"clips top section", 90, 200, 210, true},
		{"clips bottom section", 90, 200, 340, true},
		{"touching gap top edge", 90, 200, 215, false},
		{"touching gap bottom edge", 90, 200, 335, false},
		{"pipe ahead of avatar", 200, 200, 50, false},
		{"pipe right edge at hitbox left", 35, 200, 50, false},
		{"pipe left edge at hitbox right", 115, 200, 50, false},
		{"pipe just overlapping hitbox right", 114.5, 200, 50, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			a := NewAvatar(cfg)
			a.Y = tc.avatarY
			p := pipeAt(tc.pipeX, tc.gapTop)

			got := p.Collides(a)
			if got != tc.expected {
				t.Errorf("Collides() = %v, expected %v", got, tc.expected)
			}

			manual := a.Bounds().Intersects(p.TopRect()) || a.Bounds().Intersects(p.BottomRect())
			if got != manual {
				t.Errorf("Collides() = %v disagrees with rectangle intersection %v", got, manual)
			}
		})
	}
}

func TestStreamSpawnIsTimeGated(t *testing.T) {
	s := NewPipeStream(config.DefaultFlappyConfig(), rand.New(rand.NewSource(1)), 0)

	steps := []struct {
		now      int64
		expected bool
	}{
		{1000, false},
		{1500, false}, // not strictly greater than the interval
		{1501, true},
		{2000, false},
		{3001, false},
		{3002, true},
	}
	for _, st := range steps {
		if got := s.MaybeSpawn(st.now); got != st.expected {
			t.Errorf("MaybeSpawn(%d) = %v, expected %v", st.now, got, st.expected)
		}
	}
	if s.Len() != 2 {
		t.Errorf("Expected 2 pipes, got %d", s.Len())
	}
	if s.LastSpawn() != 3002 {
		t.Errorf("LastSpawn() = %d, expected 3002", s.LastSpawn())
	}
}

func TestStreamAdvanceAll(t *testing.T) {
	s := NewPipeStream(config.DefaultFlappyConfig(), fixedRand{}, 0)
	s.pipes = append(s.pipes, pipeAt(100, 200), pipeAt(300, 200))

	s.AdvanceAll()

	if s.pipes[0].X != 97 || s.pipes[1].X != 297 {
		t.Errorf("AdvanceAll should move every pipe 3 left, got %v and %v", s.pipes[0].X, s.pipes[1].X)
	}
}

func TestStreamCheckAndScore(t *testing.T) {
	cfg := config.DefaultFlappyConfig()
	a := NewAvatar(cfg)
	s := NewPipeStream(cfg, fixedRand{}, 0)
	s.pipes = append(s.pipes,
		pipeAt(49, 200),  // left edge past avatar.X - width
		pipeAt(50, 200),  // exactly at the threshold: not yet
		pipeAt(300, 200), // ahead
	)

	if got := s.CheckAndScore(a); got != 1 {
		t.Errorf("First CheckAndScore() = %d, expected 1", got)
	}
	if got := s.CheckAndScore(a); got != 0 {
		t.Errorf("Repeated CheckAndScore() without advancing = %d, expected 0", got)
	}
	if !s.pipes[0].Passed || s.pipes[1].Passed || s.pipes[2].Passed {
		t.Errorf("Unexpected passed flags: %v %v %v", s.pipes[0].Passed, s.pipes[1].Passed, s.pipes[2].Passed)
	}

	s.AdvanceAll()
	if got := s.CheckAndScore(a); got != 1 {
		t.Errorf("CheckAndScore() after advancing = %d, expected 1", got)
	}
}

func TestStreamPruneOffscreen(t *testing.T) {
	cfg := config.DefaultFlappyConfig()
	a := NewAvatar(cfg)
	s := NewPipeStream(cfg, fixedRand{}, 0)
	s.pipes = append(s.pipes,
		pipeAt(-51, 200),
		pipeAt(-50, 200),
		pipeAt(10, 200),
		pipeAt(90, 400),
	)
	s.CheckAndScore(a)
	collidedBefore := s.DetectCollision(a)

	removed := s.PruneOffscreen()

	if removed != 1 {
		t.Errorf("PruneOffscreen() removed %d, expected 1", removed)
	}
	if s.Len() != 3 {
		t.Fatalf("Expected 3 survivors, got %d", s.Len())
	}
	wantX := []float64{-50, 10, 90}
	for i, p := range s.Pipes() {
		if p.X != wantX[i] {
			t.Errorf("Survivor %d at X=%v, expected %v", i, p.X, wantX[i])
		}
	}
	if !s.pipes[0].Passed || !s.pipes[1].Passed || s.pipes[2].Passed {
		t.Error("Pruning must not change passed flags of survivors")
	}
	if got := s.CheckAndScore(a); got != 0 {
		t.Errorf("Pruning must not make survivors score again, got %d", got)
	}
	if s.DetectCollision(a) != collidedBefore {
		t.Error("Pruning must not change the collision outcome")
	}
}

func TestStreamDetectCollision(t *testing.T) {
	cfg := config.DefaultFlappyConfig()
	a := NewAvatar(cfg)
	s := NewPipeStream(cfg, fixedRand{}, 0)

	if s.DetectCollision(a) {
		t.Error("Empty stream should never collide")
	}

	s.pipes = append(s.pipes, pipeAt(250, 100))
	if s.DetectCollision(a) {
		t.Error("Pipe ahead of the avatar should not collide")
	}

	s.pipes = append(s.pipes, pipeAt(90, 400))
	if !s.DetectCollision(a) {
		t.Error("Avatar inside a top section should collide")
	}
}
