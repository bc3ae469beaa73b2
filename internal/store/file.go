package store

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// FileBackend stores each snapshot as <dir>/<name>.json
type FileBackend struct {
	dir string
}

// NewFileBackend creates the directory if needed and returns a backend rooted at it
func NewFileBackend(dir string) (*FileBackend, error) {
	if err := os.MkdirAll(dir, DirPerm); err != nil {
		return nil, fmt.Errorf("failed to create data directory %s: %w", dir, err)
	}
	return &FileBackend{dir: dir}, nil
}

// Path returns the snapshot file path for name
func (b *FileBackend) Path(name string) string {
	return filepath.Join(b.dir, name+FileExtension)
}

func (b *FileBackend) Load(_ context.Context, name string) ([]byte, bool, error) {
	data, err := os.ReadFile(b.Path(name))
	if errors.Is(err, fs.ErrNotExist) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("failed to read file %s: %w", b.Path(name), err)
	}
	return data, true, nil
}

// Save writes to a temp file in the same directory and renames it over the
// snapshot, so readers see either the old or the new file.
func (b *FileBackend) Save(_ context.Context, name string, data []byte) error {
	tmp, err := os.CreateTemp(b.dir, name+TempFilePattern)
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName) // no-op after a successful rename

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("failed to write file %s: %w", tmpName, err)
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		return fmt.Errorf("failed to sync file %s: %w", tmpName, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("failed to close file %s: %w", tmpName, err)
	}
	if err := os.Chmod(tmpName, FilePerm); err != nil {
		return fmt.Errorf("failed to chmod file %s: %w", tmpName, err)
	}
	if err := os.Rename(tmpName, b.Path(name)); err != nil {
		return fmt.Errorf("failed to replace file %s: %w", b.Path(name), err)
	}
	return nil
}

// Ping checks that the data directory is still present
func (b *FileBackend) Ping(_ context.Context) error {
	info, err := os.Stat(b.dir)
	if err != nil {
		return err
	}
	if !info.IsDir() {
		return fmt.Errorf("%s is not a directory", b.dir)
	}
	return nil
}

func (b *FileBackend) Close() error {
	return nil
}
