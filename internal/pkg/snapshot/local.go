package snapshot

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/okandemir/profwhere/internal/pkg/apperrors"
	"github.com/okandemir/profwhere/internal/pkg/logger"
)

// Store persists the normalized timetable snapshot as a JSON file on the
// local filesystem. Writes go through a temporary file followed by a rename,
// so a reader never sees a half-written snapshot and a crashed write leaves
// the previous snapshot intact.
type Store struct {
	path string
}

// NewStore creates a store for the given snapshot path, ensuring the parent
// directory exists.
func NewStore(path string) (*Store, error) {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, os.ModePerm); err != nil {
		logger.Error().Err(err).Str("path", dir).Msg("Failed to create snapshot directory")
		return nil, fmt.Errorf("failed to create snapshot directory %s: %w", dir, err)
	}

	return &Store{path: path}, nil
}

// Path returns the snapshot file location.
func (s *Store) Path() string {
	return s.path
}

// Write replaces the stored snapshot atomically.
func (s *Store) Write(payload []byte) error {
	tmp, err := os.CreateTemp(filepath.Dir(s.path), ".snapshot-*.json")
	if err != nil {
		return fmt.Errorf("failed to create temporary snapshot file: %w", err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(payload); err != nil {
		tmp.Close()
		_ = os.Remove(tmpName)
		return fmt.Errorf("failed to write snapshot content: %w", err)
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmpName)
		return fmt.Errorf("failed to close temporary snapshot file: %w", err)
	}

	if err := os.Rename(tmpName, s.path); err != nil {
		_ = os.Remove(tmpName)
		return fmt.Errorf("failed to replace snapshot file: %w", err)
	}

	logger.Info().Str("path", s.path).Int("bytes", len(payload)).Msg("Snapshot written")
	return nil
}

// Read returns the stored snapshot, or ErrSnapshotNotFound if none has been
// written yet.
func (s *Store) Read() ([]byte, error) {
	payload, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", apperrors.ErrSnapshotNotFound, s.path)
		}
		return nil, fmt.Errorf("failed to read snapshot file: %w", err)
	}
	return payload, nil
}
