// Package storage persists the single best score of the snake arcade.
// Two encodings are supported: a plain-text file holding one decimal integer,
// and a one-row SQLite table using the pure-Go modernc.org/sqlite driver.
package storage

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// ErrCorrupt is returned when a stored record cannot be decoded.
var ErrCorrupt = errors.New("storage: corrupt score record")

// Outcome describes what Record did with a score.
type Outcome int

const (
	// OutcomeFirstRecord: nothing was stored before; the score was written.
	OutcomeFirstRecord Outcome = iota
	// OutcomeNewRecord: the score beat the stored best and replaced it.
	OutcomeNewRecord
	// OutcomeNotBeaten: the stored best was kept.
	OutcomeNotBeaten
)

func (o Outcome) String() string {
	switch o {
	case OutcomeFirstRecord:
		return "first_record"
	case OutcomeNewRecord:
		return "new_record"
	case OutcomeNotBeaten:
		return "not_beaten"
	default:
		return "unknown"
	}
}

// Result is returned by Record.
type Result struct {
	Outcome  Outcome
	Previous int // Stored best before the call; 0 for a first record
	Best     int // Stored best after the call
}

// HighScoreStore keeps one non-negative integer: the best score so far.
// Implementations assume a single writer.
type HighScoreStore interface {
	// Best returns the stored score; ok is false when nothing is stored yet.
	Best() (score int, ok bool, err error)

	// Record compares score with the stored best and overwrites it only if
	// score is strictly greater. A missing record is created.
	Record(score int) (Result, error)

	// Close releases underlying resources.
	Close() error
}

// Open returns the store for the named backend ("file" or "sqlite").
func Open(backend, path string) (HighScoreStore, error) {
	var (
		store HighScoreStore
		err   error
	)
	switch backend {
	case "file", "":
		store, err = OpenFile(path)
	case "sqlite":
		store, err = OpenSQLite(path)
	default:
		return nil, fmt.Errorf("storage: unknown backend %q", backend)
	}
	if err != nil {
		return nil, err
	}
	return store, nil
}

// ExpandPath expands a leading ~ to the home directory.
func ExpandPath(path string) (string, error) {
	if path != "" && path[0] == '~' {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("storage: cannot expand home directory: %w", err)
		}
		path = filepath.Join(home, path[1:])
	}
	return path, nil
}

// ensureDir creates the parent directories of path.
func ensureDir(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("storage: cannot create directory %s: %w", dir, err)
	}
	return nil
}

// decide applies the strictly-greater rule shared by every backend.
func decide(score, stored int, exists bool) Result {
	switch {
	case !exists:
		return Result{Outcome: OutcomeFirstRecord, Best: score}
	case score > stored:
		return Result{Outcome: OutcomeNewRecord, Previous: stored, Best: score}
	default:
		return Result{Outcome: OutcomeNotBeaten, Previous: stored, Best: stored}
	}
}
