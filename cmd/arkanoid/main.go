// arkanoid plays the Arkanoid brick breaker in the terminal.
//
// Usage:
//
//	arkanoid                 - Start the menu
//	arkanoid play            - Play directly, skipping the menu
//	arkanoid list            - List registered games
//	arkanoid config          - Print the default YAML config
//
// Global flags:
//
//	--fps <rate>       - Set tick rate (default: 80)
//	--seed <value>     - Set RNG seed for reproducible gameplay
//	--log-file <path>  - Write a structured log to this file
//	--debug            - Log per-tick events as well
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/arkanoid/internal/core"
	"github.com/vovakirdan/arkanoid/internal/games/arkanoid"
)

var (
	// Global flags
	flagFPS     int
	flagSeed    int64
	flagLogFile string
	flagDebug   bool

	// Game flags shared by play and menu
	flagConfig     string
	flagDifficulty string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "arkanoid",
	Short: "Arkanoid - break bricks in your terminal",
	Long: `Arkanoid is a terminal brick breaker: steer the paddle, keep the ball
in play and clear all three levels.

Available commands:
  menu     - Interactive menu (default)
  play     - Start a session directly
  list     - Show registered games
  config   - Print the default config YAML

Examples:
  arkanoid
  arkanoid play --difficulty hard
  arkanoid play --seed 42 --log-file arkanoid.log --debug
  arkanoid config > ~/.arcade/arkanoid.yaml`,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runMenu,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", core.DefaultConfig().TickRate, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")
	rootCmd.PersistentFlags().BoolVar(&flagDebug, "debug", false, "Enable debug logging")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(configCmd)
}

// newLogger builds the process logger. The TUI owns the terminal, so
// without --log-file everything is discarded.
func newLogger() (*log.Logger, func(), error) {
	if flagLogFile == "" {
		return log.New(io.Discard), func() {}, nil
	}

	f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		return nil, nil, fmt.Errorf("open log file: %w", err)
	}

	logger := log.NewWithOptions(f, log.Options{
		ReportTimestamp: true,
		Prefix:          "arkanoid",
	})
	if flagDebug {
		logger.SetLevel(log.DebugLevel)
	}
	return logger, func() { _ = f.Close() }, nil
}

// configureGame hands the game flags and logger to the arkanoid package
// before the registry creates an instance.
func configureGame(logger *log.Logger, difficulty string) {
	arkanoid.SetConfigPath(flagConfig)
	arkanoid.SetDifficultyPreset(difficulty)
	arkanoid.SetLogger(logger)
}
