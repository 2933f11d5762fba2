package fsys

import (
	"errors"
	"io/fs"
	"os"
)

// Filesystem is the minimal byte-oriented collaborator the cheat engine
// needs from the local disk. Implementations must treat a missing file as
// (nil, false, nil) on ReadFile so callers can distinguish "absent" from
// a real failure.
type Filesystem interface {
	// ReadFile returns the file content and whether the file exists.
	ReadFile(path string) ([]byte, bool, error)
	// WriteFile writes content, creating or truncating the file.
	WriteFile(path string, content []byte) error
	// Exists reports whether the path exists.
	Exists(path string) (bool, error)
	// MkdirAll creates the directory and any missing parents.
	MkdirAll(path string) error
	// Remove deletes a file. Removing an already-missing file is not an error.
	Remove(path string) error
	// RemoveAll deletes a directory tree.
	RemoveAll(path string) error
}

// Local implements Filesystem on the operating system disk.
type Local struct{}

// NewLocal creates a Filesystem backed by the OS.
func NewLocal() *Local {
	return &Local{}
}

func (l *Local) ReadFile(path string) ([]byte, bool, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, false, nil
		}
		return nil, false, err
	}
	return content, true, nil
}

func (l *Local) WriteFile(path string, content []byte) error {
	return os.WriteFile(path, content, 0o644)
}

func (l *Local) Exists(path string) (bool, error) {
	_, err := os.Stat(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

func (l *Local) MkdirAll(path string) error {
	return os.MkdirAll(path, 0o755)
}

func (l *Local) Remove(path string) error {
	err := os.Remove(path)
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return err
	}
	return nil
}

func (l *Local) RemoveAll(path string) error {
	return os.RemoveAll(path)
}
