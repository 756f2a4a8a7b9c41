package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/arkanoid/internal/config"
	"github.com/vovakirdan/arkanoid/internal/core"
	"github.com/vovakirdan/arkanoid/internal/platform/tui"
	"github.com/vovakirdan/arkanoid/internal/registry"
)

var playCmd = &cobra.Command{
	Use:   "play [game]",
	Short: "Play a game",
	Long: `Start a session right away, skipping the menu.

Controls:
  Left/Right, A/D  - Steer the paddle
  Space            - Launch the ball
  Up/F             - Fire (needs ammo)
  P                - Pause
  R                - Restart (after game over)
  Esc              - Back
  Q/Ctrl+C         - Quit

Difficulty options:
  easy   - Five lives, wide paddle, slower ball
  normal - Config values as loaded
  hard   - Two lives, narrow paddle, faster ball
  fixed  - Same as normal

Examples:
  arkanoid play
  arkanoid play --difficulty easy
  arkanoid play --config ./my-arkanoid.yaml`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPlay,
}

func runPlay(_ *cobra.Command, args []string) error {
	gameID := "arkanoid"
	if len(args) == 1 {
		gameID = args[0]
	}

	if !registry.Exists(gameID) {
		return fmt.Errorf("unknown game %q, run 'arkanoid list' to see available games", gameID)
	}
	if flagDifficulty != "" && config.ParsePreset(flagDifficulty) == "" {
		return fmt.Errorf("unknown difficulty %q", flagDifficulty)
	}

	logger, closeLog, err := newLogger()
	if err != nil {
		return err
	}
	defer closeLog()

	configureGame(logger, flagDifficulty)

	game, err := registry.Create(gameID)
	if err != nil {
		return err
	}

	_, err = tui.Run(game, runtimeConfig(), logger)
	return err
}

// runtimeConfig builds the runtime config from the flags and the terminal size.
func runtimeConfig() core.RuntimeConfig {
	cfg := core.DefaultConfig()
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		cfg.ScreenW = w
		cfg.ScreenH = h
	}
	cfg.TickRate = flagFPS
	cfg.Seed = flagSeed
	return cfg
}
