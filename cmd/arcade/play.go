package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-flappy/internal/core"
	"github.com/vovakirdan/tui-flappy/internal/games/flappy"
	"github.com/vovakirdan/tui-flappy/internal/platform/gui"
	"github.com/vovakirdan/tui-flappy/internal/platform/tui"
	"github.com/vovakirdan/tui-flappy/internal/registry"
	"github.com/vovakirdan/tui-flappy/internal/replay"
	"github.com/vovakirdan/tui-flappy/internal/storage"
)

var (
	flagConfig string
	flagGUI    bool
	flagRecord bool
)

var playCmd = &cobra.Command{
	Use:   "play <game>",
	Short: "Play a game",
	Long: `Start playing the specified game.

Controls:
  Space/Up/W - Flap
  R          - Restart (after game over)
  Ctrl+S     - Save a text screenshot (terminal only)
  Q/Ctrl+C   - Quit

Examples:
  arcade play flappy
  arcade play flappy --gui
  arcade play flappy --seed 42 --record
  arcade play flappy --config ./my-flappy.yaml`,
	Args: cobra.ExactArgs(1),
	RunE: runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	playCmd.Flags().BoolVar(&flagGUI, "gui", false, "Play in a desktop window")
	playCmd.Flags().BoolVar(&flagRecord, "record", false, "Store the run so it can be replayed")
}

func runPlay(cmd *cobra.Command, args []string) error {
	gameID := args[0]

	// Check if game exists
	if !registry.Exists(gameID) {
		return fmt.Errorf("unknown game %q, run 'arcade list' to see available games", gameID)
	}

	// The terminal shell owns stdout, so logs only go to --log-file there.
	var fallback io.Writer = io.Discard
	if flagGUI {
		fallback = os.Stderr
	}
	logger, closeLog, err := newLogger(fallback)
	if err != nil {
		return err
	}
	defer closeLog()

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	cfg := core.RuntimeConfig{
		ScreenW:    width,
		ScreenH:    height,
		TickRate:   flagFPS,
		Seed:       seed,
		ConfigPath: flagConfig,
	}

	game, err := registry.Create(gameID, cfg)
	if err != nil {
		return fmt.Errorf("create game: %w", err)
	}
	logger.Info("starting", "game", gameID, "seed", seed, "fps", flagFPS, "gui", flagGUI)

	var rec *replay.Recorder
	if flagRecord {
		fg, ok := game.(*flappy.Game)
		if !ok {
			return fmt.Errorf("game %q does not support recording", gameID)
		}
		rec = replay.NewRecorder(gameID, seed, flagFPS, fg.Config())
	}

	if flagGUI {
		fg, ok := game.(*flappy.Game)
		if !ok {
			return fmt.Errorf("game %q has no window shell", gameID)
		}
		err = gui.Run(fg, cfg, gui.Options{Recorder: rec, Logger: logger})
	} else {
		err = tui.Run(game, cfg, tui.Options{Recorder: rec, Logger: logger})
	}
	if err != nil {
		return err
	}

	logger.Info("finished", "game", gameID, "score", game.State().Score)
	if rec != nil {
		saveRun(rec.Recording(), logger)
	}
	return nil
}

// saveRun stores a recording. Failures are logged, never fatal.
func saveRun(r replay.Recording, logger *log.Logger) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open runs database", "error", err)
		return
	}
	defer store.Close()

	id, err := store.SaveRun(r)
	if err != nil {
		logger.Warn("could not save run", "error", err)
		return
	}
	fmt.Printf("Saved run #%d (%d ticks). Replay with 'arcade replay %d'.\n", id, r.Ticks(), id)
}
