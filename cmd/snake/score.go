package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-snake/internal/storage"
)

var scoreCmd = &cobra.Command{
	Use:   "score",
	Short: "Show the stored best length",
	Long: `Display the best length recorded by the configured score backend.

Examples:
  snake score
  snake score --score-backend sqlite --score-file ~/.snake/scores.db`,
	Args: cobra.NoArgs,
	RunE: runScore,
}

func runScore(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	store, err := openStore(cfg)
	if err != nil {
		return fmt.Errorf("opening score store: %w", err)
	}
	defer store.Close()

	out := cmd.OutOrStdout()
	best, ok, err := store.Best()
	if errors.Is(err, storage.ErrCorrupt) {
		fmt.Fprintf(out, "The score at %s is unreadable.\n", cfg.Score.Path)
		return err
	}
	if err != nil {
		return fmt.Errorf("reading score: %w", err)
	}

	if !ok {
		fmt.Fprintln(out, "No score recorded yet.")
		fmt.Fprintln(out)
		fmt.Fprintln(out, "Run 'snake' to set the first record!")
		return nil
	}

	fmt.Fprintf(out, "Best: %d\n", best)
	switch st := store.(type) {
	case *storage.SQLiteStore:
		if at, err := st.UpdatedAt(); err == nil {
			fmt.Fprintf(out, "Set:  %s\n", at.Format("2006-01-02 15:04"))
		}
	case *storage.FileStore:
		fmt.Fprintf(out, "File: %s\n", st.Path())
	}
	return nil
}
