// snake is a grid snake arcade game for the terminal or a desktop window.
//
// Usage:
//
//	snake                    - Play the classic variant
//	snake list               - List available variants
//	snake menu               - Pick variants from an interactive menu
//	snake score              - Show the stored best length
//	snake config             - Print the effective configuration
//
// Global flags:
//
//	--variant <id>          - Variant to play (default: classic)
//	--backend <name>        - tui, tcell or window (default: tui)
//	--fps <rate>            - Override the tick rate
//	--seed <value>          - Set RNG seed for reproducible gameplay
//	--config <path>         - Custom config YAML
//	--difficulty <preset>   - easy, normal, hard or fixed
//	--score-file <path>     - Override the score location
//	--score-backend <name>  - file or sqlite
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-snake/internal/config"
	"github.com/vovakirdan/tui-snake/internal/games/snake"
	"github.com/vovakirdan/tui-snake/internal/storage"
)

var (
	// Global flags
	flagVariant      string
	flagBackend      string
	flagFPS          int
	flagSeed         int64
	flagConfig       string
	flagDifficulty   string
	flagScoreFile    string
	flagScoreBackend string
	flagNoPrompt     bool
	flagLogLevel     string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "snake",
	Short: "Snake - steer, eat, grow, don't bite yourself",
	Long: `Snake is a classic grid arcade game. The snake moves continuously,
wraps around the edges and grows one segment after eating the target.
The game ends when the head runs into the body.

Available commands:
  list     - Show all variants
  menu     - Interactive variant picker
  score    - Show the stored best length
  config   - Print the effective configuration

Examples:
  snake
  snake --variant coarse --backend window
  snake --difficulty hard --score-backend sqlite --score-file ~/.snake/scores.db
  snake config > ~/.snake/configs/snake.yaml`,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runPlay,
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.StringVar(&flagVariant, "variant", snake.DefaultVariant, "Variant to play (see 'snake list')")
	pf.StringVar(&flagBackend, "backend", backendTUI, "Backend: tui, tcell or window")
	pf.IntVar(&flagFPS, "fps", 0, "Tick rate override (0 = from config)")
	pf.Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	pf.StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	pf.StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	pf.StringVar(&flagScoreFile, "score-file", "", "Score location (default from config)")
	pf.StringVar(&flagScoreBackend, "score-backend", "", "Score backend: file or sqlite (default from config)")
	pf.BoolVar(&flagNoPrompt, "no-prompt", false, "Exit without waiting for a key press")
	pf.StringVar(&flagLogLevel, "log-level", "warn", "Log level: debug, info, warn, error")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(scoreCmd)
	rootCmd.AddCommand(configCmd)
}

// newLogger builds the process logger on stderr.
func newLogger() (*log.Logger, error) {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, fmt.Errorf("invalid --log-level: %w", err)
	}
	return log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "snake",
		Level:           level,
	}), nil
}

// loadConfig reads the configuration and applies the global flags.
// Variant overrides are applied later by the variant factory.
func loadConfig() (config.SnakeConfig, error) {
	cfg, err := config.LoadSnake(flagConfig)
	if err != nil {
		return cfg, err
	}

	preset, err := config.ParseDifficulty(flagDifficulty)
	if err != nil {
		return cfg, err
	}
	config.ApplySnakePreset(&cfg, preset)

	if flagScoreBackend != "" {
		cfg.Score.Backend = flagScoreBackend
	}
	if flagScoreFile != "" {
		cfg.Score.Path = flagScoreFile
	}
	if flagFPS < 0 {
		return cfg, fmt.Errorf("%w: --fps must be positive, got %d", config.ErrInvalid, flagFPS)
	}
	return cfg, nil
}

// openStore opens the configured high-score store.
func openStore(cfg config.SnakeConfig) (storage.HighScoreStore, error) {
	return storage.Open(cfg.Score.Backend, cfg.Score.Path)
}
