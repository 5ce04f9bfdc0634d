package main

import (
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"snakecoach/internal/config"
	"snakecoach/internal/platform/tui"
)

var (
	flagSSHAddr     string
	flagHostKey     string
	flagIdleMinutes int
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start SSH server for remote play",
	Long: `Serve the game over SSH so players can connect with any terminal:

  ssh -p 23235 yourserver

Each connection gets the mode menu and then a fresh session. Session
records land in the shared database.

Examples:
  snakecoach serve
  snakecoach serve --ssh :2222 --host-key ./host_key`,
	Args: cobra.NoArgs,
	Run:  runServe,
}

func init() {
	serveCmd.Flags().StringVar(&flagSSHAddr, "ssh", ":23235", "SSH listen address")
	serveCmd.Flags().StringVar(&flagHostKey, "host-key", "", "Path to host key (auto-generated if empty)")
	serveCmd.Flags().IntVar(&flagIdleMinutes, "idle-timeout", 30, "Idle timeout in minutes")
	serveCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
}

func runServe(cmd *cobra.Command, args []string) {
	appCfg, err := config.Load(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "snakecoach",
	})
	advisor := newAdvisor(appCfg, logger)

	srvCfg := tui.SSHServerConfig{
		Address:     flagSSHAddr,
		HostKeyPath: flagHostKey,
		DBPath:      flagDBPath,
		IdleTimeout: time.Duration(flagIdleMinutes) * time.Minute,
	}

	srv, err := tui.NewSSHServer(srvCfg, appCfg, advisor)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating SSH server: %v\n", err)
		os.Exit(1)
	}

	if err := srv.ListenAndServe(); err != nil {
		fmt.Fprintf(os.Stderr, "Server error: %v\n", err)
		os.Exit(1)
	}
}
