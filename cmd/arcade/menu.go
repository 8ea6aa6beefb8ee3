package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/neon-arcade/internal/config"
	"github.com/vovakirdan/neon-arcade/internal/platform/tui"
	"github.com/vovakirdan/neon-arcade/internal/storage"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Start the arcade with the game hub",
	Long: `Start the arcade in interactive hub mode.

Use arrow keys or j/k to navigate, Enter to select a game.
Leaving a game returns to the hub; best scores are kept until you quit.

Controls:
  Up/Down/j/k  - Navigate hub
  Enter/Space  - Select game
  Tab          - Scoreboard
  Q            - Quit

Examples:
  arcade menu
  arcade menu --fps 30
  arcade menu --difficulty easy --stream :8080`,
	RunE: runMenu,
}

func init() {
	menuCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	menuCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	menuCmd.Flags().StringVar(&flagStream, "stream", "", "Serve msgpack snapshots over WebSocket at this address (e.g. :8080)")
}

func runMenu(_ *cobra.Command, _ []string) error {
	difficulty, err := config.ParsePreset(flagDifficulty)
	if err != nil {
		return err
	}

	logger, closeLog, err := newLogger(true)
	if err != nil {
		return err
	}
	defer closeLog()

	runs, err := storage.Open()
	if err != nil {
		logger.Warn("could not open run log", "error", err)
		runs = nil
	} else {
		defer runs.Close()
	}

	hub, stopStream, err := startStream(flagStream, logger)
	if err != nil {
		return err
	}
	defer stopStream()

	opts := tui.SessionOptions{
		Runtime:    runtimeConfig(),
		Runs:       runs,
		Logger:     logger,
		Player:     os.Getenv("USER"),
		Difficulty: difficulty,
		ConfigPath: flagConfig,
	}
	if hub != nil {
		opts.Publisher = hub
	}

	if err := tui.RunSession(opts); err != nil {
		return fmt.Errorf("running hub: %w", err)
	}

	printSummary(os.Stdout, runs)
	return nil
}
