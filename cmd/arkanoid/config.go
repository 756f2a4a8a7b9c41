package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/arkanoid/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the default config YAML",
	Long: `Prints the embedded default config. Save it to ~/.arcade/arkanoid.yaml
or pass an edited copy with --config to tune the game.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		data := config.GetDefaultYAML("arkanoid")
		if data == nil {
			return fmt.Errorf("no default config embedded")
		}
		_, err := cmd.OutOrStdout().Write(data)
		return err
	},
}
