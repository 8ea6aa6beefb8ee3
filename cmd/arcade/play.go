package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/neon-arcade/internal/config"
	"github.com/vovakirdan/neon-arcade/internal/core"
	"github.com/vovakirdan/neon-arcade/internal/platform/stream"
	"github.com/vovakirdan/neon-arcade/internal/platform/tui"
	"github.com/vovakirdan/neon-arcade/internal/registry"
	"github.com/vovakirdan/neon-arcade/internal/storage"
)

var (
	flagConfig     string
	flagDifficulty string
	flagStream     string
)

var playCmd = &cobra.Command{
	Use:   "play <game>",
	Short: "Play a game",
	Long: `Start playing the specified game.

Controls:
  Enter          - Start
  Left/Right A/D - Change lane / rotate
  Space/Up       - Jump (runner), drop block (stack)
  Up/Down        - Throttle (racer)
  P              - Pause
  R              - Restart (after game over)
  B/Esc          - Leave (when not playing)
  Q/Ctrl+C       - Quit

Difficulty options:
  easy   - Start at lowest difficulty, progresses to max
  normal - Start at 30% difficulty, progresses to max
  hard   - Start at 70% difficulty, progresses to max
  fixed  - No progression, stays at config's initial level

Examples:
  arcade play runner
  arcade play tunnel --difficulty hard
  arcade play racer --config ./my-racer.yaml
  arcade play stack --stream :8080`,
	Args: cobra.ExactArgs(1),
	RunE: runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	playCmd.Flags().StringVar(&flagStream, "stream", "", "Serve msgpack snapshots over WebSocket at this address (e.g. :8080)")
}

func runPlay(_ *cobra.Command, args []string) error {
	gameID := args[0]
	if !registry.Exists(gameID) {
		return fmt.Errorf("unknown game %q (run 'arcade list')", gameID)
	}

	difficulty, err := config.ParsePreset(flagDifficulty)
	if err != nil {
		return err
	}

	logger, closeLog, err := newLogger(true)
	if err != nil {
		return err
	}
	defer closeLog()

	game, err := registry.Create(gameID, registry.Options{
		ConfigPath: flagConfig,
		Difficulty: difficulty,
		Seed:       flagSeed,
	})
	if err != nil {
		return err
	}

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

	opts := tui.GameOptions{
		Runtime: runtimeConfig(),
		Runs:    runs,
		Logger:  logger,
		Player:  os.Getenv("USER"),
	}
	if hub != nil {
		opts.Publisher = hub
	}

	if err := tui.Run(game, opts); err != nil {
		return fmt.Errorf("running game: %w", err)
	}

	printSummary(os.Stdout, runs, game.ID())
	return nil
}

// runtimeConfig sizes the screen to the terminal.
func runtimeConfig() core.RuntimeConfig {
	cfg := core.DefaultConfig()
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		cfg.ScreenW, cfg.ScreenH = w, h
	}
	cfg.TickRate = flagFPS
	cfg.Seed = flagSeed
	return cfg
}

// startStream serves snapshots when addr is set. The returned stop
// function is always safe to call.
func startStream(addr string, logger *log.Logger) (*stream.Hub, func(), error) {
	if addr == "" {
		return nil, func() {}, nil
	}

	hub := stream.NewHub(logger.WithPrefix("stream"))
	srv, err := stream.Listen(addr, hub)
	if err != nil {
		return nil, nil, err
	}
	logger.Info("streaming snapshots", "address", "ws://"+srv.Addr()+"/ws")

	go func() {
		if err := srv.Serve(); err != nil {
			logger.Error("stream server stopped", "error", err)
		}
	}()

	stop := func() {
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		if err := srv.Shutdown(ctx); err != nil {
			logger.Warn("stream shutdown", "error", err)
		}
	}
	return hub, stop, nil
}

// printSummary reports each played game's runs after the alt-screen
// closes, in hub order. Without ids every game is considered.
func printSummary(w io.Writer, runs *storage.Store, ids ...string) {
	if runs == nil {
		return
	}
	all, err := runs.GetAllGamesStats()
	if err != nil {
		return
	}
	if len(ids) == 0 {
		for _, info := range registry.List() {
			ids = append(ids, info.ID)
		}
	}
	for _, id := range ids {
		stats, ok := all[id]
		if !ok || stats.GamesCount == 0 {
			continue
		}
		title := id
		if info, ok := registry.Info(id); ok {
			title = info.Title
		}
		fmt.Fprintf(w, "%s: %d runs, best %d, average %.0f, played %s\n",
			title, stats.GamesCount, stats.HighScore, stats.AvgScore,
			stats.PlayTime.Round(time.Second))
	}
}
