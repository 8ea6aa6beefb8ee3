// arcade is a terminal arcade hosting four neon minigames.
//
// Usage:
//
//	arcade list              - List available games
//	arcade play <game>       - Play a game
//	arcade menu              - Start the hub to pick games interactively
//	arcade serve             - Start SSH server for remote play
//	arcade config <game>     - Print a game's default configuration
//
// Global flags:
//
//	--fps <rate>          - Set tick rate (default: 60)
//	--seed <value>        - Set RNG seed for reproducible gameplay
//	--log-level <level>   - debug, info, warn or error (default: info)
//	--log-file <path>     - Append logs to a file
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	// Import games to register them
	_ "github.com/vovakirdan/neon-arcade/internal/games/racer"
	_ "github.com/vovakirdan/neon-arcade/internal/games/runner"
	_ "github.com/vovakirdan/neon-arcade/internal/games/stack"
	_ "github.com/vovakirdan/neon-arcade/internal/games/tunnel"
)

var (
	// Global flags
	flagFPS      int
	flagSeed     int64
	flagLogLevel string
	flagLogFile  string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "arcade",
	Short: "Neon Arcade - four minigames in your terminal",
	Long: `Neon Arcade is a terminal arcade with four minigames sharing one
simulation engine: an endless runner, a lane-dodge racer, a rotating
tunnel and a block stacker.

Available commands:
  list     - Show all available games
  play     - Play a specific game directly
  menu     - Interactive game hub
  serve    - Start SSH server for remote play
  config   - Print a game's default YAML configuration

Examples:
  arcade list
  arcade play runner
  arcade play tunnel --difficulty hard --stream :8080
  arcade menu
  arcade serve --ssh :2222`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Append logs to this file (interactive commands log nowhere otherwise)")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(configCmd)
}
