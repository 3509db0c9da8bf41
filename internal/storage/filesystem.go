package storage

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/afero"
)

// FilesystemStore keeps blobs as plain files under a base directory.
// Backed by afero so tests can run against an in-memory filesystem.
type FilesystemStore struct {
	fs  afero.Fs
	dir string
}

// NewFilesystemStore creates a store rooted at dir.
func NewFilesystemStore(fs afero.Fs, dir string) *FilesystemStore {
	return &FilesystemStore{fs: fs, dir: dir}
}

func (s *FilesystemStore) path(name string) string {
	return filepath.Join(s.dir, filepath.Clean(name))
}

// Read returns the content of the named file, or ok=false if it does not exist.
func (s *FilesystemStore) Read(_ context.Context, name string) ([]byte, bool, error) {
	data, err := afero.ReadFile(s.fs, s.path(name))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("reading %s: %w", name, err)
	}
	return data, true, nil
}

// Write replaces the named file with data, creating the directory if needed.
func (s *FilesystemStore) Write(_ context.Context, name string, data []byte) error {
	if err := s.fs.MkdirAll(s.dir, 0755); err != nil {
		return fmt.Errorf("creating data directory: %w", err)
	}
	if err := afero.WriteFile(s.fs, s.path(name), data, 0644); err != nil {
		return fmt.Errorf("writing %s: %w", name, err)
	}
	return nil
}

// Remove deletes the named file. Removing a missing file is not an error.
func (s *FilesystemStore) Remove(_ context.Context, name string) error {
	if err := s.fs.Remove(s.path(name)); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("removing %s: %w", name, err)
	}
	return nil
}
