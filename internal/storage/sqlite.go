package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// SQLiteStore keeps the best score in a single-row table.
type SQLiteStore struct {
	db *sql.DB
}

// OpenSQLite creates or opens a SQLite database at the given path.
// It creates the parent directories if needed and runs migrations.
func OpenSQLite(dbPath string) (*SQLiteStore, error) {
	dbPath, err := ExpandPath(dbPath)
	if err != nil {
		return nil, err
	}
	if err := ensureDir(dbPath); err != nil {
		return nil, err
	}

	// Open database
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}

	// Test connection
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: cannot connect to database: %w", err)
	}

	store := &SQLiteStore{db: db}

	// Run migrations
	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: migration failed: %w", err)
	}

	return store, nil
}

// migrate creates the database schema if it doesn't exist.
// The CHECK on id pins the table to at most one row.
func (s *SQLiteStore) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS high_score (
			id INTEGER PRIMARY KEY CHECK (id = 1),
			score INTEGER NOT NULL CHECK (score >= 0),
			updated_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
	`

	_, err := s.db.Exec(schema)
	return err
}

// Close closes the database connection.
func (s *SQLiteStore) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// Best returns the stored score, if any.
func (s *SQLiteStore) Best() (int, bool, error) {
	var score int
	err := s.db.QueryRow("SELECT score FROM high_score WHERE id = 1").Scan(&score)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, false, nil
	}
	if err != nil {
		return 0, false, fmt.Errorf("storage: cannot query high score: %w", err)
	}
	return score, true, nil
}

// UpdatedAt returns when the stored score was last written.
func (s *SQLiteStore) UpdatedAt() (time.Time, error) {
	var updatedAt any
	err := s.db.QueryRow("SELECT updated_at FROM high_score WHERE id = 1").Scan(&updatedAt)
	if err != nil {
		return time.Time{}, fmt.Errorf("storage: cannot query update time: %w", err)
	}

	// Parse the datetime - handle both time.Time and string
	switch v := updatedAt.(type) {
	case time.Time:
		return v, nil
	case string:
		if parsed, err := time.Parse("2006-01-02 15:04:05", v); err == nil {
			return parsed, nil
		}
	}
	return time.Time{}, fmt.Errorf("%w: unreadable updated_at %v", ErrCorrupt, updatedAt)
}

// Record runs the read-modify-write cycle inside one transaction.
func (s *SQLiteStore) Record(score int) (Result, error) {
	if score < 0 {
		return Result{}, fmt.Errorf("storage: negative score %d", score)
	}

	tx, err := s.db.Begin()
	if err != nil {
		return Result{}, fmt.Errorf("storage: cannot begin transaction: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck // No-op after Commit

	var stored int
	exists := true
	err = tx.QueryRow("SELECT score FROM high_score WHERE id = 1").Scan(&stored)
	if errors.Is(err, sql.ErrNoRows) {
		exists = false
	} else if err != nil {
		return Result{}, fmt.Errorf("storage: cannot query high score: %w", err)
	}

	res := decide(score, stored, exists)
	if res.Outcome == OutcomeNotBeaten {
		return res, nil
	}

	_, err = tx.Exec(
		`INSERT INTO high_score (id, score, updated_at) VALUES (1, ?, CURRENT_TIMESTAMP)
		 ON CONFLICT(id) DO UPDATE SET score = excluded.score, updated_at = excluded.updated_at`,
		score,
	)
	if err != nil {
		return Result{}, fmt.Errorf("storage: cannot save score: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return Result{}, fmt.Errorf("storage: cannot commit score: %w", err)
	}
	return res, nil
}
