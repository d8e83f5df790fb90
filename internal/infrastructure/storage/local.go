package storage

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
)

// LocalStore keeps minutes artifacts on the local filesystem
type LocalStore struct {
	dir string
}

// NewLocalStore creates the artifact directory if needed
func NewLocalStore(dir string) (*LocalStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create artifact dir: %w", err)
	}
	return &LocalStore{dir: dir}, nil
}

// SaveMinutes writes the rendered minutes under name
func (s *LocalStore) SaveMinutes(_ context.Context, name, content string) error {
	path := filepath.Join(s.dir, filepath.Base(name))
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		return fmt.Errorf("write minutes artifact: %w", err)
	}
	return nil
}

// ReadMinutes reads a previously saved minutes artifact
func (s *LocalStore) ReadMinutes(_ context.Context, name string) (string, error) {
	path := filepath.Join(s.dir, filepath.Base(name))
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("read minutes artifact: %w", err)
	}
	return string(data), nil
}
