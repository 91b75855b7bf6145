// Package filesystem implements the enumeration side of sorting: validating
// the source directory and walking it into a list of [schema.Sortable].
package filesystem

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/sys/unix"
)

type osProvider interface {
	Stat(name string) (os.FileInfo, error)
	ReadDir(name string) ([]os.DirEntry, error)
}

type unixProvider interface {
	Stat(path string, stat *unix.Stat_t) error
}

// Handler is the principal implementation for the filesystem services.
type Handler struct {
	osHandler   osProvider
	unixHandler unixProvider
}

// NewHandler returns a pointer to a new filesystem [Handler].
func NewHandler(osHandler osProvider, unixHandler unixProvider) *Handler {
	return &Handler{
		osHandler:   osHandler,
		unixHandler: unixHandler,
	}
}

// ValidateSource checks that the given path exists and is a directory. It
// returns the absolute (cleaned) form of the path.
func (f *Handler) ValidateSource(path string) (string, error) {
	if strings.TrimSpace(path) == "" {
		return "", fmt.Errorf("(fs) %w", ErrSourceEmpty)
	}

	absPath, err := filepath.Abs(path)
	if err != nil {
		return "", fmt.Errorf("(fs) failed to resolve source: %w", err)
	}

	info, err := f.osHandler.Stat(absPath)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", fmt.Errorf("(fs) %w: %s", ErrSourceNotExist, path)
		}

		return "", fmt.Errorf("(fs) failed to stat source: %w", err)
	}

	if !info.IsDir() {
		return "", fmt.Errorf("(fs) %w: %s", ErrSourceNotDir, path)
	}

	return absPath, nil
}
