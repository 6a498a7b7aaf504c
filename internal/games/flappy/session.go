package flappy

import (
	"fmt"

	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/core"
)

// Phase tags which state a session is in.
type Phase int

const (
	PhasePlaying Phase = iota
	PhaseGameOver
)

// String returns a human-readable name for the phase.
func (p Phase) String() string {
	switch p {
	case PhasePlaying:
		return "Playing"
	case PhaseGameOver:
		return "GameOver"
	default:
		return "Unknown"
	}
}

// State is either Playing or GameOver.
type State interface {
	Phase() Phase
}

// Playing is a round in progress.
type Playing struct {
	Avatar *Avatar
	Pipes  *PipeStream
	Score  int
}

// Phase implements State.
func (Playing) Phase() Phase { return PhasePlaying }

// GameOver is a finished round. Last is the round as it was on the tick it
// ended and is kept only for rendering; nothing advances it.
type GameOver struct {
	FinalScore int
	Last       Playing
}

// Phase implements State.
func (GameOver) Phase() Phase { return PhaseGameOver }

// Transition describes what a tick did to the session state.
type Transition int

const (
	TransitionNone Transition = iota
	TransitionEnded
	TransitionRestarted
)

// Session orchestrates rounds of Flappy Bird. It owns the avatar and the
// pipe stream exclusively and is driven by one Tick call per frame.
type Session struct {
	cfg   config.FlappyConfig
	rng   Rand
	state State
	ticks int
}

// NewSession starts a round at clock value now.
// It panics if cfg does not validate; configs are checked when loaded.
func NewSession(cfg config.FlappyConfig, rng Rand, now int64) *Session {
	if err := cfg.Validate(); err != nil {
		panic(fmt.Sprintf("flappy: %v", err))
	}
	s := &Session{cfg: cfg, rng: rng}
	s.state = s.newRound(now)
	return s
}

func (s *Session) newRound(now int64) Playing {
	return Playing{
		Avatar: NewAvatar(s.cfg),
		Pipes:  NewPipeStream(s.cfg, s.rng, now),
	}
}

// Tick advances the session by one frame using the input gathered for it.
func (s *Session) Tick(in core.InputFrame, now int64) Transition {
	if s.state.Phase() == PhasePlaying {
		s.ticks++
	}
	next, tr := s.transition(s.state, in, now)
	s.state = next
	return tr
}

// transition is the single place where session state changes.
func (s *Session) transition(st State, in core.InputFrame, now int64) (State, Transition) {
	switch st := st.(type) {
	case Playing:
		return s.play(st, in, now)
	case GameOver:
		if in.Has(core.ActionRestart) {
			s.ticks = 0
			return s.newRound(now), TransitionRestarted
		}
		return st, TransitionNone
	default:
		panic(fmt.Sprintf("flappy: unknown state %T", st))
	}
}

// play runs one frame of a round in progress.
func (s *Session) play(p Playing, in core.InputFrame, now int64) (State, Transition) {
	if in.Has(core.ActionFlap) {
		p.Avatar.Flap()
	}
	p.Avatar.Update()

	p.Pipes.MaybeSpawn(now)
	p.Pipes.AdvanceAll()

	// A pipe that crosses the scoring line on the collision tick still counts.
	collided := p.Pipes.DetectCollision(p.Avatar)
	p.Score += p.Pipes.CheckAndScore(p.Avatar)
	p.Pipes.PruneOffscreen()

	if collided || p.Avatar.AtBound() {
		return GameOver{FinalScore: p.Score, Last: p}, TransitionEnded
	}
	return p, TransitionNone
}

// State returns the current session state.
func (s *Session) State() State {
	return s.state
}

// Phase returns the tag of the current state.
func (s *Session) Phase() Phase {
	return s.state.Phase()
}

// Score returns the running score, or the final score once the round ended.
func (s *Session) Score() int {
	switch st := s.state.(type) {
	case Playing:
		return st.Score
	case GameOver:
		return st.FinalScore
	}
	return 0
}

// Ticks returns the number of frames simulated in the current round.
func (s *Session) Ticks() int {
	return s.ticks
}

// round returns the playing state to display: the live round, or the
// frozen one after game over.
func (s *Session) round() Playing {
	switch st := s.state.(type) {
	case Playing:
		return st
	case GameOver:
		return st.Last
	}
	return Playing{}
}

// Config returns the configuration the session was built with.
func (s *Session) Config() config.FlappyConfig {
	return s.cfg
}
