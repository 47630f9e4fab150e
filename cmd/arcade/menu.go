package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/pixeldrift/arcade-hall/internal/core"
	"github.com/pixeldrift/arcade-hall/internal/platform/tui"
	"github.com/pixeldrift/arcade-hall/internal/storage"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Start the arcade with a game picker menu",
	Long: `Start the arcade in interactive menu mode.

Use arrow keys or j/k to navigate, Enter to select a game.
Leaving a game with Esc returns to the menu on the same item.

Controls:
  Up/Down/j/k  - Navigate menu
  Enter/Space  - Select game
  Tab          - Scoreboard
  Q            - Quit

Examples:
  arcade menu
  arcade menu --fps 30
  arcade menu --db ./scores.db`,
	Run: runMenu,
}

func runMenu(_ *cobra.Command, _ []string) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		store = nil
	}

	width, height := terminalSize()
	cfg := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}

	// Menu loop: cursor and status survive each round trip through a
	// game or the scoreboard.
	cursor := 0
	status := ""
	for {
		menuResult, err := tui.RunMenu(games, store, cfg, cursor, status)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			break
		}

		cfg = menuResult.Config
		cursor = menuResult.Cursor
		status = ""

		if menuResult.Quit {
			break
		}

		if menuResult.WantsScoreboard {
			goBack, sbErr := tui.RunScoreboard(games, store, cfg.ScreenW, cfg.ScreenH)
			if sbErr != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", sbErr)
			}
			if goBack {
				continue
			}
			break
		}

		gameID := menuResult.GameID
		if gameID == "" {
			break
		}

		applyGameFlags(gameID)

		game, err := games.Create(gameID)
		if err != nil {
			status = fmt.Sprintf("cannot start %s: %v", gameID, err)
			continue
		}

		// Each launch is an independent session with a fresh seed.
		cfg.Seed = time.Now().UnixNano()

		exit, runErr := tui.Run(game, store, cfg)
		if runErr != nil {
			fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		}
		if exit == core.ExitQuit {
			break
		}
		// ExitToMenu: loop back with the cursor where it was.
	}

	if store != nil {
		store.Close()
	}
}
