package storage

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"
)

// FileStore keeps the best score as decimal text in a single file.
type FileStore struct {
	path string
}

// OpenFile returns a store backed by the file at path. The file itself is
// created on the first Record; only its directory is created here.
func OpenFile(path string) (*FileStore, error) {
	path, err := ExpandPath(path)
	if err != nil {
		return nil, err
	}
	if path == "" {
		return nil, fmt.Errorf("storage: empty score file path")
	}
	if err := ensureDir(path); err != nil {
		return nil, err
	}
	return &FileStore{path: path}, nil
}

// Path returns the resolved file path.
func (s *FileStore) Path() string {
	return s.path
}

// Best reads the stored score. A missing file is not an error.
func (s *FileStore) Best() (int, bool, error) {
	data, err := os.ReadFile(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return 0, false, nil
	}
	if err != nil {
		return 0, false, fmt.Errorf("storage: cannot read %s: %w", s.path, err)
	}

	score, err := strconv.Atoi(strings.TrimSpace(string(data)))
	if err != nil || score < 0 {
		return 0, false, fmt.Errorf("%w: %s holds %q", ErrCorrupt, s.path, strings.TrimSpace(string(data)))
	}
	return score, true, nil
}

// Record runs the read-modify-write cycle for one finished game.
func (s *FileStore) Record(score int) (Result, error) {
	if score < 0 {
		return Result{}, fmt.Errorf("storage: negative score %d", score)
	}

	stored, exists, err := s.Best()
	if err != nil {
		return Result{}, err
	}

	res := decide(score, stored, exists)
	if res.Outcome == OutcomeNotBeaten {
		return res, nil
	}

	if err := os.WriteFile(s.path, []byte(strconv.Itoa(score)), 0o644); err != nil {
		return Result{}, fmt.Errorf("storage: cannot write %s: %w", s.path, err)
	}
	return res, nil
}

// Close is a no-op; the file is opened per call.
func (s *FileStore) Close() error {
	return nil
}
