package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-snake/internal/platform/tui"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Pick a variant from an interactive menu",
	Long: `Start in interactive menu mode.

Use arrow keys or j/k to navigate, Enter to play the highlighted variant.
After a game ends you return to the menu.

Examples:
  snake menu
  snake menu --backend tcell
  snake menu --score-backend sqlite --score-file ./scores.db

The window backend is not available here.`,
	Args: cobra.NoArgs,
	RunE: runMenu,
}

func runMenu(cmd *cobra.Command, _ []string) error {
	// The window backend can host only one game per process
	if flagBackend == backendWindow {
		return fmt.Errorf("the menu cannot run on the %s backend, use --backend %s or %s", backendWindow, backendTUI, backendTCell)
	}

	logger, err := newLogger()
	if err != nil {
		return err
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	width := 80
	if w, _, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width = w
	}

	current := flagVariant
	out := cmd.OutOrStdout()

	// Menu loop
	for {
		best, hasBest := 0, false
		if store, err := openStore(cfg); err == nil {
			if best, hasBest, err = store.Best(); err != nil {
				logger.Warn("could not read best score", "error", err)
			}
			store.Close()
		}

		selected, err := tui.RunMenu(width, best, hasBest, current)
		if err != nil {
			return err
		}
		if selected == "" {
			return nil
		}
		current = selected

		if err := playVariant(out, logger, cfg, selected, false); err != nil {
			return err
		}
	}
}
