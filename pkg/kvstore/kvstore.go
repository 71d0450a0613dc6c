// Package kvstore provides a key-scoped persistent store used as a best-effort
// mirror of the in-memory domain stores. Each key holds one JSON document.
package kvstore

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/spf13/afero"
)

// ErrKeyNotFound is returned by Get when the key has never been set.
var ErrKeyNotFound = errors.New("key not found")

// Store is the persistence boundary consumed by the domain stores.
// There are no transactional guarantees across keys.
type Store interface {
	Get(key string) ([]byte, error)
	Set(key string, value []byte) error
	Remove(key string) error
}

// FileStore implements Store on top of an afero filesystem, one file per key.
// Pass afero.NewMemMapFs() in tests and afero.NewOsFs() in production.
type FileStore struct {
	mu  sync.Mutex
	fs  afero.Fs
	dir string
}

// NewFileStore creates a FileStore rooted at dir, creating it if needed.
func NewFileStore(fs afero.Fs, dir string) (*FileStore, error) {
	if err := fs.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return &FileStore{fs: fs, dir: dir}, nil
}

// Get returns the value stored under key, or ErrKeyNotFound.
func (s *FileStore) Get(key string) ([]byte, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := afero.ReadFile(s.fs, s.path(key))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrKeyNotFound
		}
		return nil, err
	}
	return data, nil
}

// Set writes value under key, replacing any previous value.
func (s *FileStore) Set(key string, value []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	return afero.WriteFile(s.fs, s.path(key), value, 0o644)
}

// Remove deletes the key. Removing an absent key is not an error.
func (s *FileStore) Remove(key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.fs.Remove(s.path(key)); err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}

// path maps a logical key to a file path. Separator characters in keys are
// flattened so a key can never escape the store directory.
func (s *FileStore) path(key string) string {
	safe := strings.NewReplacer("/", "_", "\\", "_", ":", "_", "..", "_").Replace(key)
	return filepath.Join(s.dir, safe+".json")
}
