package replay

import (
	"fmt"
	"time"

	"github.com/vovakirdan/tui-flappy/internal/core"
	"github.com/vovakirdan/tui-flappy/internal/games/flappy"
)

// Result summarizes a re-simulated recording.
type Result struct {
	Ticks    int
	Duration time.Duration // Clock time covered by the recording
	Rounds   []int         // Final score of every finished round, in order
	Score    int           // Score of the round still running at the end (if any)
	Finished bool          // Whether the last round ended before the recording did
}

// Best returns the highest score reached in any round.
func (r Result) Best() int {
	best := r.Score
	for _, s := range r.Rounds {
		if s > best {
			best = s
		}
	}
	return best
}

// Play re-simulates a recording from its seed and returns what happened.
func Play(rec Recording) (Result, error) {
	if rec.Game != flappy.GameID {
		return Result{}, fmt.Errorf("replay: unsupported game %q", rec.Game)
	}
	if err := rec.Config.Validate(); err != nil {
		return Result{}, fmt.Errorf("replay: recorded config: %w", err)
	}

	rc := core.DefaultConfig()
	rc.Seed = rec.Seed
	if rec.TickRate > 0 {
		rc.TickRate = rec.TickRate
	}

	g := flappy.New(rec.Config)
	g.Reset(rc)

	var res Result
	var now int64
	in := core.NewInputFrame()
	for _, f := range rec.Frames {
		now += f.Dt
		in.Clear()
		if f.Flap {
			in.Set(core.ActionFlap)
		}
		if f.Restart {
			in.Set(core.ActionRestart)
		}

		step := g.Step(in, core.Tick{Now: now, Delta: rc.TickInterval()})
		if step.Ended {
			res.Rounds = append(res.Rounds, step.State.Score)
		}
		res.Ticks++
	}

	state := g.State()
	res.Finished = state.GameOver
	if !state.GameOver {
		res.Score = state.Score
	}
	res.Duration = time.Duration(now) * time.Millisecond
	return res, nil
}
