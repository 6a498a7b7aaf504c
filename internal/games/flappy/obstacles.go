package flappy

import (
	"math"

	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/core"
)

// Rand is the random source used to place gaps. *math/rand.Rand satisfies it.
type Rand interface {
	Intn(n int) int
}

// pipeGeometry holds the per-game constants shared by every pipe.
type pipeGeometry struct {
	width     float64
	gapHeight float64
	fieldH    float64
	speed     float64
}

func geometryOf(cfg config.FlappyConfig) pipeGeometry {
	return pipeGeometry{
		width:     cfg.Obstacles.Width,
		gapHeight: cfg.Obstacles.GapHeight,
		fieldH:    cfg.Screen.Height,
		speed:     cfg.Physics.PipeSpeed,
	}
}

// Pipe represents a vertical obstacle with a gap for the player to pass through.
type Pipe struct {
	X      float64 // Horizontal position (left edge)
	GapTop float64 // Y position where the gap starts
	Passed bool    // Whether the player has passed this pipe (for scoring)

	geom pipeGeometry
}

// newPipe creates a pipe at the right edge of the playfield with its gap
// top drawn uniformly from the whole numbers in [margin, height - margin - gap].
// When that range holds no whole number the gap sits right at the margin.
func newPipe(cfg config.FlappyConfig, rng Rand) Pipe {
	margin := cfg.Obstacles.Margin
	lo := int(math.Ceil(margin))
	hi := int(math.Floor(cfg.Screen.Height - margin - cfg.Obstacles.GapHeight))

	gapTop := margin
	if hi >= lo {
		gapTop = float64(lo + rng.Intn(hi-lo+1))
	}

	return Pipe{
		X:      cfg.Screen.Width,
		GapTop: gapTop,
		geom:   geometryOf(cfg),
	}
}

// Width returns the horizontal extent of the pipe.
func (p Pipe) Width() float64 {
	return p.geom.width
}

// GapHeight returns the vertical size of the passable gap.
func (p Pipe) GapHeight() float64 {
	return p.geom.gapHeight
}

// TopRect returns the collision rectangle for the top portion of the pipe.
func (p Pipe) TopRect() core.Rect {
	return core.NewRect(p.X, 0, p.geom.width, p.GapTop)
}

// BottomRect returns the collision rectangle for the bottom portion of the pipe.
func (p Pipe) BottomRect() core.Rect {
	bottomY := p.GapTop + p.geom.gapHeight
	return core.NewRect(p.X, bottomY, p.geom.width, p.geom.fieldH-bottomY)
}

// Update moves the pipe left by the configured speed.
func (p *Pipe) Update() {
	p.X -= p.geom.speed
}

// Collides reports whether the avatar's hitbox touches either solid section.
func (p Pipe) Collides(a *Avatar) bool {
	box := a.Bounds()
	return box.Intersects(p.TopRect()) || box.Intersects(p.BottomRect())
}

// Offscreen reports whether the pipe has fully left the playfield.
func (p Pipe) Offscreen() bool {
	return p.X < -p.geom.width
}

// PipeStream handles spawning, movement, scoring and removal of pipes.
// Pipes are kept in spawn order, which is also their left-to-right order
// because they all move at the same speed.
type PipeStream struct {
	pipes     []Pipe
	lastSpawn int64 // Clock value (ms) of the most recent spawn
	interval  int64
	cfg       config.FlappyConfig
	rng       Rand
}

// NewPipeStream creates an empty stream whose spawn timer starts at now.
func NewPipeStream(cfg config.FlappyConfig, rng Rand, now int64) *PipeStream {
	return &PipeStream{
		pipes:     make([]Pipe, 0, 8),
		lastSpawn: now,
		interval:  cfg.Obstacles.SpawnIntervalMS,
		cfg:       cfg,
		rng:       rng,
	}
}

// MaybeSpawn appends a new pipe once more than the spawn interval has
// elapsed since the previous one. Reports whether a pipe was spawned.
func (s *PipeStream) MaybeSpawn(now int64) bool {
	if now-s.lastSpawn <= s.interval {
		return false
	}
	s.pipes = append(s.pipes, newPipe(s.cfg, s.rng))
	s.lastSpawn = now
	return true
}

// AdvanceAll moves every pipe one tick to the left.
func (s *PipeStream) AdvanceAll() {
	for i := range s.pipes {
		s.pipes[i].Update()
	}
}

// CheckAndScore marks pipes whose left edge is more than one pipe width
// behind the avatar as passed and returns how many flipped this call.
func (s *PipeStream) CheckAndScore(a *Avatar) int {
	passed := 0
	for i := range s.pipes {
		p := &s.pipes[i]
		if !p.Passed && p.X < a.X-p.geom.width {
			p.Passed = true
			passed++
		}
	}
	return passed
}

// PruneOffscreen drops pipes that have left the playfield and returns how
// many were removed. Survivors keep their order and state.
func (s *PipeStream) PruneOffscreen() int {
	kept := make([]Pipe, 0, len(s.pipes))
	for _, p := range s.pipes {
		if !p.Offscreen() {
			kept = append(kept, p)
		}
	}
	removed := len(s.pipes) - len(kept)
	s.pipes = kept
	return removed
}

// DetectCollision tests if the avatar collides with any pipe.
func (s *PipeStream) DetectCollision(a *Avatar) bool {
	for _, p := range s.pipes {
		if p.Collides(a) {
			return true
		}
	}
	return false
}

// Pipes returns the current list of pipes. Callers must not modify it.
func (s *PipeStream) Pipes() []Pipe {
	return s.pipes
}

// Len returns the number of live pipes.
func (s *PipeStream) Len() int {
	return len(s.pipes)
}

// LastSpawn returns the clock value of the most recent spawn.
func (s *PipeStream) LastSpawn() int64 {
	return s.lastSpawn
}
