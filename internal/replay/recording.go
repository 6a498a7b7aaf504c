// Package replay records the inputs of a play session and re-simulates
// them headlessly. A recording is enough to reproduce a session exactly
// because the game is deterministic given its seed, config and clock.
package replay

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/core"
)

// Frame is one recorded tick. Dt is the clock advance since the previous
// frame in milliseconds.
type Frame struct {
	Dt      int64 `yaml:"dt"`
	Flap    bool  `yaml:"f,omitempty"`
	Restart bool  `yaml:"r,omitempty"`
}

// Recording is a complete, replayable session.
type Recording struct {
	Game     string              `yaml:"game"`
	Seed     int64               `yaml:"seed"`
	TickRate int                 `yaml:"tick_rate"`
	Config   config.FlappyConfig `yaml:"config"`
	Frames   []Frame             `yaml:"frames,flow"`
}

// Ticks returns the number of recorded frames.
func (r Recording) Ticks() int {
	return len(r.Frames)
}

// Marshal encodes the recording as YAML.
func (r Recording) Marshal() ([]byte, error) {
	data, err := yaml.Marshal(r)
	if err != nil {
		return nil, fmt.Errorf("replay: encode recording: %w", err)
	}
	return data, nil
}

// Unmarshal decodes a YAML recording and validates its config.
func Unmarshal(data []byte) (Recording, error) {
	var r Recording
	if err := yaml.Unmarshal(data, &r); err != nil {
		return r, fmt.Errorf("replay: decode recording: %w", err)
	}
	if err := r.Config.Validate(); err != nil {
		return r, fmt.Errorf("replay: recorded config: %w", err)
	}
	return r, nil
}

// Recorder accumulates frames while a game runs.
type Recorder struct {
	rec    Recording
	lastMS int64
}

// NewRecorder starts an empty recording for a game session.
func NewRecorder(gameID string, seed int64, tickRate int, cfg config.FlappyConfig) *Recorder {
	return &Recorder{
		rec: Recording{
			Game:     gameID,
			Seed:     seed,
			TickRate: tickRate,
			Config:   cfg,
			Frames:   make([]Frame, 0, 1024),
		},
	}
}

// Record appends the input and clock of one tick.
func (r *Recorder) Record(in core.InputFrame, tick core.Tick) {
	r.rec.Frames = append(r.rec.Frames, Frame{
		Dt:      tick.Now - r.lastMS,
		Flap:    in.Has(core.ActionFlap),
		Restart: in.Has(core.ActionRestart),
	})
	r.lastMS = tick.Now
}

// Len returns the number of frames recorded so far.
func (r *Recorder) Len() int {
	return len(r.rec.Frames)
}

// Recording returns a copy of everything recorded so far.
func (r *Recorder) Recording() Recording {
	out := r.rec
	out.Frames = append([]Frame(nil), r.rec.Frames...)
	return out
}
