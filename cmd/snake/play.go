package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"time"

	"github.com/charmbracelet/log"
	"github.com/eiannone/keyboard"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-snake/internal/config"
	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/platform/tcellui"
	"github.com/vovakirdan/tui-snake/internal/platform/tui"
	"github.com/vovakirdan/tui-snake/internal/platform/window"
	"github.com/vovakirdan/tui-snake/internal/registry"
	"github.com/vovakirdan/tui-snake/internal/storage"
)

// Backend names accepted by --backend.
const (
	backendTUI    = "tui"
	backendTCell  = "tcell"
	backendWindow = "window"
)

// configured is implemented by games that expose their effective config.
type configured interface {
	Config() config.SnakeConfig
}

// debugger is implemented by games that can dump their round state.
type debugger interface {
	DebugState() string
}

func runPlay(cmd *cobra.Command, args []string) error {
	logger, err := newLogger()
	if err != nil {
		return err
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	return playVariant(cmd.OutOrStdout(), logger, cfg, flagVariant, !flagNoPrompt)
}

// playVariant runs one session of the named variant on the selected
// backend, then records and reports every finished round.
func playVariant(out io.Writer, logger *log.Logger, cfg config.SnakeConfig, variant string, prompt bool) error {
	if !registry.Exists(variant) {
		return fmt.Errorf("unknown variant %q, run 'snake list' to see available variants", variant)
	}

	// An area too small for the initial length fails here
	game, err := registry.Create(variant, cfg)
	if err != nil {
		return err
	}
	if c, ok := game.(configured); ok {
		cfg = c.Config()
	}

	rt := runtimeConfig(cfg)

	// Open score storage; the game still works without it
	var store storage.HighScoreStore
	best, hasBest := 0, false
	if game.Scored() {
		store, err = openStore(cfg)
		if err != nil {
			logger.Warn("could not open score store", "backend", cfg.Score.Backend, "path", cfg.Score.Path, "error", err)
			store = nil
		} else {
			defer store.Close()
			if best, hasBest, err = store.Best(); err != nil {
				logger.Warn("could not read best score", "error", err)
			}
		}
	}

	fmt.Fprintln(out, "Welcome to the SNAKE game!!")
	fmt.Fprintf(out, "Watch out!! Starting in %s!!\n", cfg.Loop.StartDelay)
	time.Sleep(cfg.Loop.StartDelay)

	var rounds []core.Status
	onGameOver := func(id string, st core.Status) {
		logger.Debug("round finished", "game", id, "length", st.Score)
		if d, ok := game.(debugger); ok && logger.GetLevel() <= log.DebugLevel {
			logger.Debug("final state\n" + d.DebugState())
		}
		rounds = append(rounds, st)
	}

	logger.Info("starting game", "variant", game.ID(), "backend", flagBackend, "fps", rt.TickRate, "seed", rt.Seed)

	var last core.Status
	switch flagBackend {
	case backendTUI:
		last, err = tui.Run(game, rt, tui.Options{
			Logger:     logger,
			OnGameOver: onGameOver,
			Best:       best,
			HasBest:    hasBest,
		})
	case backendTCell:
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
		last, err = tcellui.Run(ctx, game, rt, tcellui.Options{
			Logger:     logger,
			OnGameOver: onGameOver,
			Best:       best,
			HasBest:    hasBest,
			Linger:     tcellui.DefaultLinger,
		})
		stop()
	case backendWindow:
		last, err = window.Run(game, rt, window.Options{
			Logger:     logger,
			OnGameOver: onGameOver,
			PieceSize:  cfg.Area.PieceSize,
			Console:    out,
		})
	default:
		return fmt.Errorf("unknown backend %q (want tui, tcell or window)", flagBackend)
	}
	if err != nil && !errors.Is(err, context.Canceled) {
		return fmt.Errorf("running game: %w", err)
	}

	if len(rounds) == 0 {
		// Quit before the snake bit itself: nothing to record
		fmt.Fprintf(out, "Snake length: %d\n", last.Score)
		return nil
	}

	for _, st := range rounds {
		reportRound(out, store, st.Score, game.Scored(), logger)
	}

	if prompt {
		waitForKey(out, logger)
	}
	return nil
}

// runtimeConfig builds the backend configuration from the effective config
// and the global flags.
func runtimeConfig(cfg config.SnakeConfig) core.RuntimeConfig {
	rt := core.DefaultConfig()
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		rt.ScreenW = w
		rt.ScreenH = h
	}
	rt.TickRate = cfg.Loop.FPS
	if flagFPS > 0 {
		rt.TickRate = flagFPS
	}
	rt.Seed = flagSeed
	return rt
}

// waitForKey blocks until a single key is pressed.
func waitForKey(out io.Writer, logger *log.Logger) {
	fmt.Fprint(out, "Press any key to quit...")
	if _, _, err := keyboard.GetSingleKey(); err != nil {
		logger.Debug("could not read key", "error", err)
	}
	fmt.Fprintln(out)
}
