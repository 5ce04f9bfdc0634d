// snakecoach is a terminal snake game with an AI coach: short Chinese
// flavor text at session start, after each meal and at game over, plus
// AI-suggested food placement in AI mode.
//
// Usage:
//
//	snakecoach play             - Play in the local terminal
//	snakecoach scores           - Browse past session records
//	snakecoach serve            - Start SSH server for remote play
//
// Global flags:
//
//	--tick-ms <ms>   - Override the tick period
//	--seed <value>   - Set RNG seed for reproducible gameplay
//	--db <path>      - Set database path (default: ~/.snakecoach/sessions.db)
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagTickMS int
	flagSeed   int64
	flagDBPath string
)

func main() {
	// A .env file is a convenient place for the coach API key.
	//nolint:errcheck // Missing .env is the normal case
	godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "snakecoach",
	Short: "Terminal snake with an AI coach",
	Long: `snakecoach is a terminal snake game with an AI coach.

The coach greets you at the start of a session, cheers after every meal
and writes a short recap with improvement tips at game over. In AI mode
it also decides where the next food appears (with a local random
fallback whenever its suggestion is unusable).

Examples:
  snakecoach play
  snakecoach play --mode local
  snakecoach play --mode ai --config ./my-config.yaml
  snakecoach scores
  snakecoach serve --ssh :23235`,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagTickMS, "tick-ms", 0, "Tick period in milliseconds (0 = from config)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.snakecoach/sessions.db", "Path to sessions database")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(serveCmd)
}
