package platform

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// File permissions
const (
	DefaultDirPermissions  = 0755
	DefaultFilePermissions = 0644
)

// FileSystem abstracts the file operations the tracker needs. One
// implementation per target runtime, selected at wiring time.
type FileSystem interface {
	// Timestamp returns a monotonically comparable modification marker for
	// the file, or 0 if the file does not exist or is inaccessible. Absence
	// is a normal condition and never an error.
	Timestamp(path string) int64

	// ReadWhole reads up to maxSize-1 bytes of the file. It fails on open
	// error or when the file is empty.
	ReadWhole(path string, maxSize int) ([]byte, error)

	// WriteWhole overwrites the file with content. On failure it creates the
	// containing directory once and retries exactly once before giving up.
	WriteWhole(path string, content []byte) error
}

// OSFileSystem implements FileSystem on the host filesystem.
type OSFileSystem struct{}

// NewOSFileSystem creates the host filesystem implementation.
func NewOSFileSystem() *OSFileSystem {
	return &OSFileSystem{}
}

// Timestamp returns the file's modification time in nanoseconds since the
// Unix epoch, or 0 if the file cannot be stat'ed.
func (fs *OSFileSystem) Timestamp(path string) int64 {
	info, err := os.Stat(path)
	if err != nil {
		return 0
	}
	return info.ModTime().UnixNano()
}

// ReadWhole reads the file content, bounded to maxSize-1 bytes.
func (fs *OSFileSystem) ReadWhole(path string, maxSize int) ([]byte, error) {
	if maxSize <= 1 {
		return nil, fmt.Errorf("read buffer too small: %d", maxSize)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer f.Close()

	data, err := io.ReadAll(io.LimitReader(f, int64(maxSize-1)))
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	if len(data) == 0 {
		return nil, fmt.Errorf("file is empty: %s", path)
	}

	return data, nil
}

// WriteWhole overwrites the file, creating its parent directory and retrying
// once if the first attempt fails. The single retry tolerates a runtime
// directory that has not been provisioned yet on first deployment.
func (fs *OSFileSystem) WriteWhole(path string, content []byte) error {
	err := os.WriteFile(path, content, DefaultFilePermissions)
	if err == nil {
		return nil
	}

	if mkErr := CreateDirectoryIfNotExists(filepath.Dir(path)); mkErr != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}

	if err := os.WriteFile(path, content, DefaultFilePermissions); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}

// CreateDirectoryIfNotExists creates directory if it doesn't exist
func CreateDirectoryIfNotExists(dirPath string) error {
	if _, err := os.Stat(dirPath); os.IsNotExist(err) {
		return os.MkdirAll(dirPath, DefaultDirPermissions)
	}
	return nil
}
