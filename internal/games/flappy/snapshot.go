package flappy

import "github.com/vovakirdan/tui-flappy/internal/core"

// Snapshot is everything a renderer needs to draw one frame.
type Snapshot struct {
	Phase  Phase
	Score  int
	Tick   int
	Width  float64 // Playfield width in world units
	Height float64 // Playfield height in world units
	Avatar AvatarView
	Pipes  []PipeView
}

// AvatarView is the rendered part of the avatar.
type AvatarView struct {
	X, Y   float64
	Radius float64
}

// PipeView holds the two solid sections of a pipe.
type PipeView struct {
	Top    core.Rect
	Bottom core.Rect
	Passed bool
}

// Snapshot captures the current frame.
func (s *Session) Snapshot() Snapshot {
	r := s.round()
	snap := Snapshot{
		Phase:  s.Phase(),
		Score:  s.Score(),
		Tick:   s.ticks,
		Width:  s.cfg.Screen.Width,
		Height: s.cfg.Screen.Height,
	}
	if r.Avatar != nil {
		snap.Avatar = AvatarView{X: r.Avatar.X, Y: r.Avatar.Y, Radius: r.Avatar.Radius}
	}
	if r.Pipes != nil {
		snap.Pipes = make([]PipeView, 0, r.Pipes.Len())
		for _, p := range r.Pipes.Pipes() {
			snap.Pipes = append(snap.Pipes, PipeView{
				Top:    p.TopRect(),
				Bottom: p.BottomRect(),
				Passed: p.Passed,
			})
		}
	}
	return snap
}
