package main

import (
	"time"

	"github.com/spf13/cobra"

	_ "github.com/vovakirdan/arkanoid/internal/games/arkanoid" // registers "arkanoid"
	"github.com/vovakirdan/arkanoid/internal/platform/tui"
	"github.com/vovakirdan/arkanoid/internal/registry"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Start with the interactive menu",
	Long: `Start in interactive menu mode.

Pick a difficulty with Left/Right and press Enter on Start.
Esc during a game returns to the menu.

Controls:
  Up/Down/j/k  - Navigate menu
  Left/Right   - Change difficulty
  Enter/Space  - Select
  Q/Esc        - Quit`,
	Args: cobra.NoArgs,
	RunE: runMenu,
}

func runMenu(_ *cobra.Command, _ []string) error {
	logger, closeLog, err := newLogger()
	if err != nil {
		return err
	}
	defer closeLog()

	cfg := runtimeConfig()
	difficulty := flagDifficulty

	for {
		result, err := tui.RunMenu("arkanoid", difficulty, cfg)
		if err != nil {
			return err
		}
		cfg = result.Config
		if result.Quit {
			return nil
		}
		difficulty = result.Difficulty

		configureGame(logger, difficulty)
		game, err := registry.Create(result.GameID)
		if err != nil {
			return err
		}

		// Fresh seed per session unless one was pinned
		cfg.Seed = flagSeed
		if cfg.Seed == 0 {
			cfg.Seed = time.Now().UnixNano()
		}

		back, err := tui.Run(game, cfg, logger)
		if err != nil {
			return err
		}
		if !back {
			return nil
		}
	}
}
