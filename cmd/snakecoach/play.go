package main

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"snakecoach/internal/ai"
	"snakecoach/internal/config"
	"snakecoach/internal/core"
	"snakecoach/internal/platform/tui"
	"snakecoach/internal/storage"
)

var (
	flagMode   string
	flagConfig string
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play a session",
	Long: `Start a game session in the local terminal.

Controls:
  W/A/S/D, arrows  - Steer
  P/Esc            - Pause
  Q                - Quit the session
  Enter            - Acknowledge the final summary

Modes:
  local - food appears at random empty cells
  ai    - the coach picks food positions, random fallback

When --mode is omitted an interactive selector is shown.

Examples:
  snakecoach play
  snakecoach play --mode ai
  snakecoach play --mode local --tick-ms 100`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagMode, "mode", "", "Placement mode: local or ai")
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
}

func runPlay(cmd *cobra.Command, args []string) {
	appCfg, err := config.Load(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	// Terminal size for the selector and the game screen
	width, height := 80, 24
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	cfg := core.RuntimeConfig{
		BoardW:  appCfg.Board.Width,
		BoardH:  appCfg.Board.Height,
		TickMS:  appCfg.Game.TickMS,
		Seed:    flagSeed,
		ScreenW: width,
		ScreenH: height,
	}
	if flagTickMS > 0 {
		cfg.TickMS = flagTickMS
	}

	switch flagMode {
	case string(core.ModeLocal):
		cfg.Mode = core.ModeLocal
	case string(core.ModeAI):
		cfg.Mode = core.ModeAI
	case "":
		mode, ok, selErr := tui.RunModeSelector(cfg)
		if selErr != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", selErr)
			os.Exit(1)
		}
		if !ok {
			return
		}
		cfg.Mode = mode
	default:
		fmt.Fprintf(os.Stderr, "Error: unknown mode %q (want local or ai)\n", flagMode)
		os.Exit(1)
	}

	advisor := newAdvisor(appCfg, playLogger())

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open sessions database: %v\n", err)
		// Continue without storage - game still works
		store = nil
	}

	runErr := tui.Run(cfg, advisor, store)

	if store != nil {
		store.Close()
	}
	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}

// newAdvisor builds the AI gateway from config. The coach speaks at the
// three trigger points in both modes; only placement depends on the mode.
func newAdvisor(appCfg config.Config, logger *log.Logger) *ai.Client {
	transport := ai.NewHTTPTransport(
		appCfg.AI.Endpoint,
		appCfg.AI.APIKey(),
		time.Duration(appCfg.AI.TimeoutMS)*time.Millisecond,
	)
	return ai.NewClient(transport, appCfg.AI.Model, logger)
}

// playLogger writes to a log file so warnings cannot corrupt the
// alternate screen. Falls back to a silent logger.
func playLogger() *log.Logger {
	home, err := os.UserHomeDir()
	if err != nil {
		return nil
	}
	dir := filepath.Join(home, ".snakecoach")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil
	}
	f, err := os.OpenFile(filepath.Join(dir, "snakecoach.log"), os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o600)
	if err != nil {
		return nil
	}
	return log.NewWithOptions(f, log.Options{
		ReportTimestamp: true,
		Prefix:          "snakecoach",
	})
}
