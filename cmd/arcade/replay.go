package main

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-flappy/internal/replay"
	"github.com/vovakirdan/tui-flappy/internal/storage"
)

var replayCmd = &cobra.Command{
	Use:   "replay <id>",
	Short: "Re-simulate a recorded run",
	Long: `Replay a stored run headlessly from its seed and input log, and
print the score of every round.

Examples:
  arcade replay 3`,
	Args: cobra.ExactArgs(1),
	RunE: runReplay,
}

func runReplay(cmd *cobra.Command, args []string) error {
	id, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		return fmt.Errorf("invalid run id %q", args[0])
	}

	logger, closeLog, err := newLogger(os.Stderr)
	if err != nil {
		return err
	}
	defer closeLog()

	store, err := storage.Open(flagDBPath)
	if err != nil {
		return fmt.Errorf("open runs database: %w", err)
	}
	defer store.Close()

	run, err := store.LoadRun(id)
	if errors.Is(err, storage.ErrRunNotFound) {
		return fmt.Errorf("no run with id %d, see 'arcade runs'", id)
	}
	if err != nil {
		return fmt.Errorf("load run: %w", err)
	}

	logger.Debug("replaying", "id", id, "game", run.GameID, "seed", run.Seed, "frames", run.Recording.Ticks())
	res, err := replay.Play(run.Recording)
	if err != nil {
		return err
	}

	fmt.Printf("Run #%d - %s (seed %d)\n", run.ID, run.GameID, run.Seed)
	fmt.Println()
	fmt.Printf("  Ticks:     %d\n", res.Ticks)
	fmt.Printf("  Duration:  %s\n", res.Duration)
	fmt.Println()

	for i, score := range res.Rounds {
		fmt.Printf("  Round %-3d  %d\n", i+1, score)
	}
	if !res.Finished {
		fmt.Printf("  Round %-3d  %d (quit while playing)\n", len(res.Rounds)+1, res.Score)
	}

	fmt.Println()
	fmt.Printf("Best: %d\n", res.Best())
	return nil
}
