package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/neon-arcade/internal/config"
	"github.com/vovakirdan/neon-arcade/internal/registry"
)

var configCmd = &cobra.Command{
	Use:   "config <game>",
	Short: "Print a game's default configuration",
	Long: `Print the built-in YAML configuration of a game.

Save it to ~/.arcade/configs/<game>.yaml or ./configs/<game>.yaml to
override it, or pass the file to 'arcade play --config'.

Examples:
  arcade config tunnel
  arcade config runner > ~/.arcade/configs/runner.yaml`,
	Args: cobra.ExactArgs(1),
	RunE: runConfig,
}

func runConfig(cmd *cobra.Command, args []string) error {
	gameID := args[0]
	if !registry.Exists(gameID) {
		return fmt.Errorf("unknown game %q (run 'arcade list')", gameID)
	}

	data := config.GetDefaultYAML(gameID)
	if data == nil {
		return fmt.Errorf("game %q has no YAML configuration", gameID)
	}
	_, err := cmd.OutOrStdout().Write(data)
	return err
}
