// Package osfilesystem provides ports.FileSystem on top of the os package.
package osfilesystem

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/user/videoout/pkg/ports"
)

const (
	dirPerm  = 0o755
	filePerm = 0o644
)

// FileSystem implements ports.FileSystem using the os package.
type FileSystem struct{}

// New creates a new FileSystem.
func New() *FileSystem {
	return &FileSystem{}
}

func (f *FileSystem) ReadFile(path string) ([]byte, error) {
	return os.ReadFile(path)
}

// Open opens path for reading. MP4 probing needs to seek.
func (f *FileSystem) Open(path string) (io.ReadSeekCloser, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	return file, nil
}

// WriteFile writes data to a file, creating parent directories.
func (f *FileSystem) WriteFile(path string, data []byte) error {
	if dir := filepath.Dir(path); dir != "" && dir != "." {
		if err := os.MkdirAll(dir, dirPerm); err != nil {
			return fmt.Errorf("create %s: %w", dir, err)
		}
	}
	return os.WriteFile(path, data, filePerm)
}

func (f *FileSystem) MkdirAll(path string) error {
	return os.MkdirAll(path, dirPerm)
}

// Exists reports whether path exists. Errors other than "not exist" are returned.
func (f *FileSystem) Exists(path string) (bool, error) {
	_, err := os.Stat(path)
	switch {
	case err == nil:
		return true, nil
	case errors.Is(err, fs.ErrNotExist):
		return false, nil
	default:
		return false, err
	}
}

var _ ports.FileSystem = (*FileSystem)(nil)
