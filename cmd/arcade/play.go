package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/pixeldrift/arcade-hall/internal/config"
	"github.com/pixeldrift/arcade-hall/internal/core"
	"github.com/pixeldrift/arcade-hall/internal/games/brawl"
	"github.com/pixeldrift/arcade-hall/internal/games/heist"
	"github.com/pixeldrift/arcade-hall/internal/games/rally"
	"github.com/pixeldrift/arcade-hall/internal/games/rumble"
	"github.com/pixeldrift/arcade-hall/internal/platform/tui"
	"github.com/pixeldrift/arcade-hall/internal/storage"
)

var (
	flagConfig     string
	flagDifficulty string
)

var playCmd = &cobra.Command{
	Use:   "play <game>",
	Short: "Play a game",
	Long: `Start playing the specified game.

Controls:
  WASD/Arrows - Move / steer
  Space       - Primary action (fire, jab)
  X           - Secondary action (kick, sneak toggle)
  P           - Pause
  R           - Restart (after game over)
  Esc/B       - Back to menu
  Q/Ctrl+C    - Quit

Difficulty options:
  easy   - Start at lowest difficulty, progresses to max
  normal - Start at 30% difficulty, progresses to max
  hard   - Start at 70% difficulty, progresses to max
  fixed  - No progression, stays at config's initial level

Examples:
  arcade play rumble
  arcade play heist --difficulty easy
  arcade play rally --difficulty fixed
  arcade play rumble --config ./my-rumble.yaml`,
	Args: cobra.ExactArgs(1),
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
}

// applyGameFlags routes the --config and --difficulty flags to the
// selected game's package before its factory runs.
func applyGameFlags(gameID string) {
	switch gameID {
	case rumble.GameID:
		rumble.SetConfigPath(flagConfig)
		rumble.SetDifficultyPreset(flagDifficulty)
	case heist.GameID:
		heist.SetConfigPath(flagConfig)
		heist.SetDifficultyPreset(flagDifficulty)
	case brawl.GameID:
		brawl.SetConfigPath(flagConfig)
		brawl.SetDifficultyPreset(flagDifficulty)
	case rally.GameID:
		rally.SetConfigPath(flagConfig)
		rally.SetDifficultyPreset(flagDifficulty)
	}
}

// terminalSize returns the current terminal dimensions, with a sane
// fallback when stdout is not a terminal.
func terminalSize() (width, height int) {
	width, height = 80, 24
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width = w
		height = h
	}
	return width, height
}

func runPlay(cmd *cobra.Command, args []string) {
	gameID := args[0]

	if !games.Exists(gameID) {
		fmt.Fprintf(os.Stderr, "Error: unknown game %q\n", gameID)
		fmt.Fprintln(os.Stderr, "Run 'arcade list' to see available games.")
		os.Exit(1)
	}

	if flagDifficulty != "" && !config.ValidPreset(flagDifficulty) {
		fmt.Fprintf(os.Stderr, "Error: unknown difficulty %q (easy, normal, hard, fixed)\n", flagDifficulty)
		os.Exit(1)
	}

	width, height := terminalSize()
	cfg := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}

	applyGameFlags(gameID)

	game, err := games.Create(gameID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		// Continue without storage - game still works
		store = nil
	}

	_, runErr := tui.Run(game, store, cfg)

	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
