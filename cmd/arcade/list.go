package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-flappy/internal/registry"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all available games",
	Long:  `Shows every registered game with its controls.`,
	Run:   runList,
}

func runList(cmd *cobra.Command, args []string) {
	games := registry.List()
	if len(games) == 0 {
		fmt.Println("No games registered.")
		return
	}

	width := len("ID")
	for _, g := range games {
		width = max(width, len(g.ID))
	}

	fmt.Printf("  %-*s  %s\n", width, "ID", "Title")
	for _, g := range games {
		fmt.Printf("  %-*s  %s\n", width, g.ID, g.Title)
	}

	fmt.Println()
	fmt.Println("Controls: Space/Up/W flap, R restart after a crash, Q quit.")
	fmt.Println()
	fmt.Println("  arcade play <id>           play in the terminal")
	fmt.Println("  arcade play <id> --gui     play in a window")
	fmt.Println("  arcade play <id> --record  keep the run for 'arcade replay'")
}
