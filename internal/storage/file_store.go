package storage

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// FileStore implements Store with one JSON file per key inside a directory.
// It is the default for the CLI, which has no database to hand.
type FileStore struct {
	directory string
}

// NewFileStore creates a FileStore rooted at directory, creating it if
// needed.
func NewFileStore(directory string) (*FileStore, error) {
	if err := os.MkdirAll(directory, 0755); err != nil {
		return nil, fmt.Errorf("os.MkdirAll(%s) > %w", directory, err)
	}
	return &FileStore{directory: directory}, nil
}

func (s *FileStore) path(key string) string {
	// Keys contain colons (e.g. "vocamind:missions"); keep file names plain.
	name := strings.NewReplacer(":", "_", "/", "_").Replace(key)
	return filepath.Join(s.directory, name+".json")
}

// Load returns the stored payload for key, or nil if the file does not exist.
func (s *FileStore) Load(_ context.Context, key string) ([]byte, error) {
	contents, err := os.ReadFile(s.path(key))
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("os.ReadFile(%s) > %w", s.path(key), err)
	}
	return contents, nil
}

// Save writes the payload for key.
func (s *FileStore) Save(_ context.Context, key string, value []byte) error {
	if err := os.WriteFile(s.path(key), value, 0644); err != nil {
		return fmt.Errorf("os.WriteFile(%s) > %w", s.path(key), err)
	}
	return nil
}
