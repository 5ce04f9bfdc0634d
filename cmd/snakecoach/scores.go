package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"snakecoach/internal/platform/tui"
	"snakecoach/internal/storage"
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Browse past session records",
	Long: `Show finished sessions: score, survival time, longest body and how
the session ended. Tab toggles between best and most recent.

Examples:
  snakecoach scores
  snakecoach scores --db ./sessions.db`,
	Args: cobra.NoArgs,
	Run:  runScores,
}

func runScores(cmd *cobra.Command, args []string) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening sessions database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	width, height := 80, 24
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	if err := tui.RunScoreboard(store, width, height); err != nil {
		fmt.Fprintf(os.Stderr, "Error showing scores: %v\n", err)
		os.Exit(1)
	}
}
