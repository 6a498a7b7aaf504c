// Package gui runs a game in a desktop window using ebiten.
package gui

import (
	"errors"
	"fmt"
	"image/color"
	"io"
	"time"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/vovakirdan/tui-flappy/internal/core"
	"github.com/vovakirdan/tui-flappy/internal/games/flappy"
	"github.com/vovakirdan/tui-flappy/internal/replay"
)

var (
	skyColor    = color.RGBA{112, 197, 206, 255}
	pipeColor   = color.RGBA{83, 178, 60, 255}
	capColor    = color.RGBA{60, 140, 40, 255}
	avatarColor = color.RGBA{246, 210, 60, 255}
	shadeColor  = color.RGBA{0, 0, 0, 140}
)

// Options configures optional collaborators of the window shell.
type Options struct {
	Recorder *replay.Recorder
	Logger   *log.Logger
}

// Shell implements ebiten.Game on top of a flappy session.
type Shell struct {
	game  *flappy.Game
	cfg   core.RuntimeConfig
	opts  Options
	start time.Time
	in    core.InputFrame
}

// NewShell resets game and starts its clock.
func NewShell(game *flappy.Game, cfg core.RuntimeConfig, opts Options) *Shell {
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard)
	}
	game.Reset(cfg)
	return &Shell{
		game:  game,
		cfg:   cfg,
		opts:  opts,
		start: time.Now(),
		in:    core.NewInputFrame(),
	}
}

func justPressed(keys ...ebiten.Key) bool {
	for _, k := range keys {
		if inpututil.IsKeyJustPressed(k) {
			return true
		}
	}
	return false
}

// Update polls input and advances the simulation one tick.
func (s *Shell) Update() error {
	if justPressed(ebiten.KeyQ, ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if justPressed(ebiten.KeySpace, ebiten.KeyArrowUp, ebiten.KeyW) ||
		inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		s.in.Set(core.ActionFlap)
	}
	if justPressed(ebiten.KeyR) {
		s.in.Set(core.ActionRestart)
	}

	s.step(time.Since(s.start).Milliseconds())
	return nil
}

func (s *Shell) step(now int64) {
	tick := core.Tick{Now: now, Delta: s.cfg.TickInterval()}
	if s.opts.Recorder != nil {
		s.opts.Recorder.Record(s.in, tick)
	}

	result := s.game.Step(s.in, tick)
	switch {
	case result.Ended:
		s.opts.Logger.Info("round over", "game", s.game.ID(), "score", result.State.Score, "at_ms", now)
	case result.Restarted:
		s.opts.Logger.Info("round restarted", "game", s.game.ID(), "at_ms", now)
	}
	s.in.Clear()
}

// Draw renders the current snapshot in world coordinates.
func (s *Shell) Draw(screen *ebiten.Image) {
	snap := s.game.Snapshot()
	screen.Fill(skyColor)

	for _, p := range snap.Pipes {
		drawPipe(screen, p.Top, true)
		drawPipe(screen, p.Bottom, false)
	}

	a := snap.Avatar
	vector.DrawFilledCircle(screen, float32(a.X), float32(a.Y), float32(a.Radius), avatarColor, true)

	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("Score: %d", snap.Score), 10, 10)

	if snap.Phase == flappy.PhaseGameOver {
		w, h := float32(snap.Width), float32(snap.Height)
		vector.DrawFilledRect(screen, 0, h/2-40, w, 80, shadeColor, false)
		cx, cy := int(w/2), int(h/2)
		ebitenutil.DebugPrintAt(screen, "GAME OVER", cx-27, cy-30)
		ebitenutil.DebugPrintAt(screen, fmt.Sprintf("Final Score: %d", snap.Score), cx-45, cy-8)
		ebitenutil.DebugPrintAt(screen, "R to restart, Q to quit", cx-69, cy+14)
	}
}

// drawPipe fills one pipe segment with a cap on the edge facing the gap.
func drawPipe(dst *ebiten.Image, r core.Rect, top bool) {
	if r.Empty() {
		return
	}
	vector.DrawFilledRect(dst, float32(r.X), float32(r.Y), float32(r.W), float32(r.H), pipeColor, false)

	const capH = 12
	capY := r.Bottom() - capH
	if !top {
		capY = r.Y
	}
	vector.DrawFilledRect(dst, float32(r.X-3), float32(capY), float32(r.W+6), capH, capColor, false)
}

// Layout keeps the logical screen at world size; ebiten scales it to the window.
func (s *Shell) Layout(_, _ int) (int, int) {
	cfg := s.game.Config()
	return int(cfg.Screen.Width), int(cfg.Screen.Height)
}

// Run opens a window and blocks until it is closed or the player quits.
func Run(game *flappy.Game, cfg core.RuntimeConfig, opts Options) error {
	shell := NewShell(game, cfg, opts)
	w, h := shell.Layout(0, 0)

	ebiten.SetWindowSize(w, h)
	ebiten.SetWindowTitle(game.Title())
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(cfg.TickRate)

	if err := ebiten.RunGame(shell); err != nil && !errors.Is(err, ebiten.Termination) {
		return fmt.Errorf("run window shell: %w", err)
	}
	return nil
}
