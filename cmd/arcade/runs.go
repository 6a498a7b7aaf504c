package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-flappy/internal/storage"
)

var flagLimit int

var runsCmd = &cobra.Command{
	Use:   "runs [game]",
	Short: "List recorded runs",
	Long: `Display the most recent runs stored with 'arcade play --record'.

Examples:
  arcade runs
  arcade runs flappy --limit 5`,
	Args: cobra.MaximumNArgs(1),
	RunE: runRuns,
}

func init() {
	runsCmd.Flags().IntVar(&flagLimit, "limit", 10, "Maximum number of runs to show")
}

func runRuns(cmd *cobra.Command, args []string) error {
	gameID := ""
	if len(args) == 1 {
		gameID = args[0]
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		return fmt.Errorf("open runs database: %w", err)
	}
	defer store.Close()

	runs, err := store.RecentRuns(gameID, flagLimit)
	if err != nil {
		return fmt.Errorf("list runs: %w", err)
	}

	if len(runs) == 0 {
		fmt.Println("No runs recorded yet.")
		fmt.Println()
		fmt.Println("Play with 'arcade play flappy --record' to record one.")
		return nil
	}

	// Print header
	fmt.Printf("  %-5s  %-8s  %-20s  %-8s  %s\n", "ID", "Game", "Seed", "Ticks", "Date")
	fmt.Printf("  %-5s  %-8s  %-20s  %-8s  %s\n", "--", "----", "----", "-----", "----")

	for _, r := range runs {
		dateStr := r.CreatedAt.Format("2006-01-02 15:04")
		fmt.Printf("  %-5d  %-8s  %-20d  %-8d  %s\n", r.ID, r.GameID, r.Seed, r.Ticks, dateStr)
	}

	fmt.Println()
	fmt.Println("Run 'arcade replay <id>' to re-simulate a run.")
	return nil
}
