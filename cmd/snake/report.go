package main

import (
	"fmt"
	"io"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-snake/internal/storage"
)

// reportRound prints the end-of-round lines and records the length.
// Storage failures are logged and reported but never fatal.
func reportRound(out io.Writer, store storage.HighScoreStore, length int, scored bool, logger *log.Logger) {
	fmt.Fprintf(out, "HA HA!! You ate yourself!! Length reached: %d!!\n", length)
	if !scored {
		return
	}
	if store == nil {
		fmt.Fprintln(out, "There was a problem saving your score")
		return
	}

	res, err := store.Record(length)
	if err != nil {
		logger.Warn("could not record score", "length", length, "error", err)
		fmt.Fprintln(out, "There was a problem saving your score")
		return
	}
	logger.Debug("score recorded", "outcome", res.Outcome, "previous", res.Previous, "best", res.Best)

	switch res.Outcome {
	case storage.OutcomeFirstRecord:
		fmt.Fprintln(out, "Your first score has been saved!!")
	case storage.OutcomeNewRecord:
		fmt.Fprintf(out, "The recorded score is: %d\n", res.Previous)
		fmt.Fprintln(out, "You smashed your record!! The new record has been saved!!")
	case storage.OutcomeNotBeaten:
		fmt.Fprintf(out, "The recorded score is: %d\n", res.Previous)
		fmt.Fprintln(out, "You did not do better!!")
	}
}
