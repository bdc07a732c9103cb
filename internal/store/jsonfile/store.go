// Package jsonfile provides a JSON file-based history store.
package jsonfile

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/klippy-app/klippy/internal/core/clip"
)

// CorruptSuffix is appended to an unreadable history file when it is
// moved aside so the original bytes survive for inspection.
const CorruptSuffix = ".corrupt"

// Store implements clip.Store using a JSON file for persistence.
type Store struct {
	path string
	mu   sync.RWMutex
}

// New creates a new JSON file store at the given path.
func New(path string) *Store {
	return &Store{path: path}
}

// Path returns the file path backing the store.
func (s *Store) Path() string {
	return s.path
}

// Load reads the history snapshot from disk. A missing or empty file
// yields a zero snapshot. An unparseable file is renamed aside with
// CorruptSuffix and reported via an error wrapping clip.ErrCorrupt;
// the returned snapshot is still usable (empty).
func (s *Store) Load(ctx context.Context) (clip.Snapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return clip.Snapshot{}, nil
		}
		return clip.Snapshot{}, fmt.Errorf("read history file: %w", err)
	}

	if len(data) == 0 {
		return clip.Snapshot{}, nil
	}

	var snap clip.Snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		// Keep the bad file around rather than overwriting it on the
		// next save.
		if renameErr := os.Rename(s.path, s.path+CorruptSuffix); renameErr != nil {
			return clip.Snapshot{}, fmt.Errorf("%w (could not move aside: %v): %v", clip.ErrCorrupt, renameErr, err)
		}
		return clip.Snapshot{}, fmt.Errorf("%w (moved to %s): %v", clip.ErrCorrupt, s.path+CorruptSuffix, err)
	}

	return snap, nil
}

// Save writes the snapshot to disk atomically using
// write-to-temp-then-rename to prevent corruption from interrupted writes.
func (s *Store) Save(ctx context.Context, snap clip.Snapshot) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return fmt.Errorf("create history directory: %w", err)
	}

	data, err := json.MarshalIndent(snap, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal history: %w", err)
	}

	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("write history temp file: %w", err)
	}

	if err := os.Rename(tmp, s.path); err != nil {
		_ = os.Remove(tmp)
		return fmt.Errorf("rename history file: %w", err)
	}

	return nil
}
