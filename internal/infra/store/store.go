// Package store defines the progress persistence gateway and its JSON
// file implementation. The gateway holds exactly one UserProgress record;
// writes are atomic replaces and a missing or corrupt record is reported
// as "no prior state", never as a fatal error.
package store

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/ritualforge/ritual/internal/domain"
)

// Gateway loads and saves the single persisted UserProgress record.
type Gateway interface {
	// Load returns the stored progress. found is false when no usable
	// prior state exists; the caller proceeds with fresh defaults.
	Load() (progress domain.UserProgress, found bool, err error)

	// Save replaces the stored progress in one atomic operation.
	Save(progress domain.UserProgress) error

	// Reset discards any stored progress.
	Reset() error

	// Close releases underlying resources.
	Close() error
}

const progressFile = "progress.json"

// FileStore persists progress as a single JSON file with RFC 3339 dates,
// replaced atomically via temp-file rename.
type FileStore struct {
	dir string
}

// OpenFile creates the data directory if needed and returns a file store.
func OpenFile(dir string) (*FileStore, error) {
	if err := os.MkdirAll(dir, 0700); err != nil {
		return nil, fmt.Errorf("create data dir: %w", err)
	}
	return &FileStore{dir: dir}, nil
}

func (s *FileStore) path() string {
	return filepath.Join(s.dir, progressFile)
}

// Load reads the progress file. A missing or unparseable file yields
// found=false so the ledger starts from fresh defaults.
func (s *FileStore) Load() (domain.UserProgress, bool, error) {
	data, err := os.ReadFile(s.path())
	if os.IsNotExist(err) {
		return domain.UserProgress{}, false, nil
	}
	if err != nil {
		return domain.UserProgress{}, false, fmt.Errorf("read progress: %w", err)
	}

	var progress domain.UserProgress
	if err := json.Unmarshal(data, &progress); err != nil {
		// Corrupt save — treated as no prior state, never fatal.
		log.Printf("[store] corrupt progress file, starting fresh: %v", err)
		return domain.UserProgress{}, false, nil
	}
	return progress, true, nil
}

// Save writes the progress to a temp file in the same directory and
// renames it over the target, so a crash can never leave a partial file.
func (s *FileStore) Save(progress domain.UserProgress) error {
	data, err := json.MarshalIndent(progress, "", "  ")
	if err != nil {
		return fmt.Errorf("encode progress: %w", err)
	}

	tmp, err := os.CreateTemp(s.dir, progressFile+".tmp-*")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("write progress: %w", err)
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("sync progress: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("close temp file: %w", err)
	}

	if err := os.Rename(tmpName, s.path()); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("replace progress: %w", err)
	}
	return nil
}

// Reset removes the progress file.
func (s *FileStore) Reset() error {
	err := os.Remove(s.path())
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("remove progress: %w", err)
	}
	return nil
}

// Close is a no-op for the file store.
func (s *FileStore) Close() error { return nil }
