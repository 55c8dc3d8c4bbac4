package main

import (
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-snake/internal/config"
	"github.com/vovakirdan/tui-snake/internal/registry"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective configuration",
	Long: `Prints the configuration the selected variant would run with, as YAML.
The output can be saved to ~/.snake/configs/snake.yaml and edited.`,
	Args: cobra.NoArgs,
	RunE: runConfig,
}

func runConfig(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	game, err := registry.Create(flagVariant, cfg)
	if err != nil {
		return err
	}
	if c, ok := game.(configured); ok {
		cfg = c.Config()
	}
	if flagFPS > 0 {
		cfg.Loop.FPS = flagFPS
	}

	data, err := config.MarshalSnake(cfg)
	if err != nil {
		return err
	}
	_, err = cmd.OutOrStdout().Write(data)
	return err
}
