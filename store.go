package locale

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
)

// PreferenceStore persists the last selected locale code under a single
// well-known key. Load returns an empty string when no preference has
// been recorded yet.
type PreferenceStore interface {
	Load() (string, error)
	Save(code string) error
}

// MemoryStore is an in-process PreferenceStore for tests and sessions
// that do not outlive the process.
type MemoryStore struct {
	mu    sync.Mutex
	value string
}

var _ PreferenceStore = &MemoryStore{}

// NewMemoryStore returns an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

// Load returns the stored code, empty when nothing was saved.
func (s *MemoryStore) Load() (string, error) {
	if s == nil {
		return "", nil
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.value, nil
}

// Save overwrites the stored code.
func (s *MemoryStore) Save(code string) error {
	if s == nil {
		return nil
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.value = code
	return nil
}

// FileStore persists the code as a plain string in a single file.
// Writes are whole-file overwrites, so concurrent callers degrade to
// last-writer-wins without locking.
type FileStore struct {
	path string
}

var _ PreferenceStore = &FileStore{}

// NewFileStore returns a store backed by the given file path.
func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

// Load reads the stored code. A missing file means no preference and is
// not an error.
func (s *FileStore) Load() (string, error) {
	if s == nil || s.path == "" {
		return "", nil
	}

	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return "", nil
		}
		return "", fmt.Errorf("locale: read preference %s: %w", s.path, err)
	}

	return strings.TrimSpace(string(data)), nil
}

// Save overwrites the stored code.
func (s *FileStore) Save(code string) error {
	if s == nil || s.path == "" {
		return nil
	}

	if dir := filepath.Dir(s.path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("locale: create preference dir %s: %w", dir, err)
		}
	}

	if err := os.WriteFile(s.path, []byte(code+"\n"), 0o644); err != nil {
		return fmt.Errorf("locale: write preference %s: %w", s.path, err)
	}
	return nil
}
