// arcade is a TUI arcade platform for playing retro-style games in the terminal.
//
// Usage:
//
//	arcade list              - List available games
//	arcade play <game>       - Play a game
//	arcade menu              - Start menu to pick games interactively
//	arcade serve             - Start SSH server for remote play
//	arcade scores <game>     - Show high scores for a game
//
// Global flags:
//
//	--fps <rate>    - Set tick rate (default: 60)
//	--seed <value>  - Set RNG seed for reproducible gameplay
//	--db <path>     - Set database path (default: ~/.arcade-hall/scores.db)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/pixeldrift/arcade-hall/internal/games/brawl"
	"github.com/pixeldrift/arcade-hall/internal/games/heist"
	"github.com/pixeldrift/arcade-hall/internal/games/rally"
	"github.com/pixeldrift/arcade-hall/internal/games/rumble"
	"github.com/pixeldrift/arcade-hall/internal/registry"
)

var (
	// Global flags
	flagFPS    int
	flagSeed   int64
	flagDBPath string

	// games is the one registry instance. It is built once at startup
	// from the explicit entry list below and never modified afterwards.
	games *registry.Registry
)

// newRegistry assembles the game table. Adding a game to the arcade
// means adding its entry here.
func newRegistry() (*registry.Registry, error) {
	return registry.New(
		rumble.Entry(),
		heist.Entry(),
		brawl.Entry(),
		rally.Entry(),
	)
}

func main() {
	var err error
	games, err = newRegistry()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error building game registry: %v\n", err)
		os.Exit(1)
	}

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "arcade",
	Short: "Arcade Hall - Play retro games in your terminal",
	Long: `Arcade Hall is a terminal-based gaming platform that lets you play
classic-style games directly in your terminal.

Available commands:
  list     - Show all available games
  play     - Play a specific game directly
  menu     - Interactive game picker menu
  serve    - Start SSH server for remote play
  scores   - View high scores

Examples:
  arcade list
  arcade play rumble
  arcade menu
  arcade serve --ssh :2222
  arcade scores heist`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.arcade-hall/scores.db", "Path to scores database")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
}
