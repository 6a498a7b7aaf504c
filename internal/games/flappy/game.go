// Package flappy implements a Flappy Bird-style game.
// The player controls a bird that must navigate through gaps in vertical pipes.
package flappy

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/core"
	"github.com/vovakirdan/tui-flappy/internal/registry"
)

// GameID is the registry identifier of this game.
const GameID = "flappy"

// Visual characters for rendering
const (
	PlayerChar    = '●'
	PipeChar      = '█'
	PipeCapTop    = '▄'
	PipeCapBottom = '▀'
	GroundChar    = '═'
)

// Game adapts a Session to the platform's registry.Game contract and draws
// the world onto the terminal cell buffer.
type Game struct {
	cfg     config.FlappyConfig
	session *Session
	seed    int64
}

// New creates a Flappy Bird game with the given configuration.
// Reset must be called before the first Step.
func New(cfg config.FlappyConfig) *Game {
	return &Game{cfg: cfg}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return GameID
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Flappy Bird"
}

// Reset starts a fresh session seeded from cfg.Seed with its clock at zero.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.seed = cfg.Seed
	g.session = NewSession(g.cfg, rand.New(rand.NewSource(cfg.Seed)), 0)
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame, tick core.Tick) core.StepResult {
	tr := g.session.Tick(in, tick.Now)
	return core.StepResult{
		State:     g.State(),
		Ended:     tr == TransitionEnded,
		Restarted: tr == TransitionRestarted,
	}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	if g.session == nil {
		return core.GameState{}
	}
	return core.GameState{
		Score:    g.session.Score(),
		GameOver: g.session.Phase() == PhaseGameOver,
	}
}

// Snapshot returns the current frame in world coordinates.
func (g *Game) Snapshot() Snapshot {
	if g.session == nil {
		return Snapshot{Width: g.cfg.Screen.Width, Height: g.cfg.Screen.Height}
	}
	return g.session.Snapshot()
}

// Config returns the game configuration.
func (g *Game) Config() config.FlappyConfig {
	return g.cfg
}

// Seed returns the seed of the current session.
func (g *Game) Seed() int64 {
	return g.seed
}

// viewport maps world coordinates onto terminal cells. The bottom row is
// reserved for the ground line.
type viewport struct {
	sx, sy float64
	rows   int
}

func newViewport(snap Snapshot, dst *core.Screen) viewport {
	rows := dst.Height() - 1
	return viewport{
		sx:   float64(dst.Width()) / snap.Width,
		sy:   float64(rows) / snap.Height,
		rows: rows,
	}
}

// span converts a half-open world interval into a half-open cell interval.
func span(lo, hi, scale float64) (int, int) {
	return int(math.Floor(lo * scale)), int(math.Ceil(hi * scale))
}

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	if g.session == nil {
		return
	}

	snap := g.session.Snapshot()
	vp := newViewport(snap, dst)

	// Draw ground
	dst.DrawHLine(0, dst.Height()-1, dst.Width(), GroundChar, core.ColorGray)

	// Draw pipes
	for _, p := range snap.Pipes {
		g.drawPipe(dst, vp, p)
	}

	// Draw player
	px := int(snap.Avatar.X * vp.sx)
	py := core.Clamp(int(snap.Avatar.Y*vp.sy), 0, vp.rows-1)
	dst.SetColored(px, py, PlayerChar, core.ColorBrightYellow)

	// Draw HUD
	dst.DrawTextColored(2, 0, fmt.Sprintf(" Score: %d ", snap.Score), core.ColorWhite)

	if snap.Phase == PhaseGameOver {
		g.drawCenteredMessage(dst, "GAME OVER",
			fmt.Sprintf("Final Score: %d", snap.Score),
			"Press R to restart, Q to quit")
	}
}

// drawPipe renders a single pipe to the screen.
func (g *Game) drawPipe(dst *core.Screen, vp viewport, p PipeView) {
	x0, x1 := span(p.Top.X, p.Top.Right(), vp.sx)
	w := x1 - x0

	// Top section, capped at its lower end
	_, topEnd := span(p.Top.Y, p.Top.Bottom(), vp.sy)
	dst.FillRect(x0, 0, w, topEnd, PipeChar, core.ColorGreen)
	if topEnd > 0 {
		dst.FillRect(x0, topEnd-1, w, 1, PipeCapTop, core.ColorBrightGreen)
	}

	// Bottom section, capped at its upper end
	bottomStart, _ := span(p.Bottom.Y, p.Bottom.Bottom(), vp.sy)
	if bottomStart < vp.rows {
		dst.FillRect(x0, bottomStart, w, vp.rows-bottomStart, PipeChar, core.ColorGreen)
		dst.FillRect(x0, bottomStart, w, 1, PipeCapBottom, core.ColorBrightGreen)
	}
}

// drawCenteredMessage draws a message box in the center of the screen.
func (g *Game) drawCenteredMessage(dst *core.Screen, title string, lines ...string) {
	w := dst.Width()
	h := dst.Height()

	// Calculate box dimensions
	boxW := len(title)
	for _, l := range lines {
		boxW = core.Max(boxW, len(l))
	}
	boxW += 4
	boxH := len(lines) + 4
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2

	// Draw box
	dst.FillRect(boxX, boxY, boxW, boxH, ' ', core.ColorDefault)
	dst.DrawBox(boxX, boxY, boxW, boxH)

	// Draw text
	dst.DrawTextColored(boxX+(boxW-len(title))/2, boxY+1, title, core.ColorOrange)
	for i, l := range lines {
		dst.DrawText(boxX+(boxW-len(l))/2, boxY+3+i, l)
	}
}

// Register the game with the registry
func init() {
	registry.Register(GameID, "Flappy Bird", func(rc core.RuntimeConfig) (registry.Game, error) {
		cfg, err := config.LoadFlappy(rc.ConfigPath)
		if err != nil {
			return nil, err
		}
		return New(cfg), nil
	})
}
