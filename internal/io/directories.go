package io

import (
	"errors"
	"fmt"
	"io/fs"
)

// ensureBucket creates the extension bucket at the given path, unless it
// already exists.
func (i *Handler) ensureBucket(path string) error {
	info, err := i.osHandler.Stat(path)
	if err == nil {
		if !info.IsDir() {
			return fmt.Errorf("%w: %s", ErrBucketNotDir, path)
		}

		return nil
	}

	if !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("failed checking bucket existence: %w", err)
	}

	if err := i.unixHandler.Mkdir(path, bucketPerms); err != nil && !errors.Is(err, fs.ErrExist) {
		return fmt.Errorf("failed to create bucket %s: %w", path, err)
	}

	return nil
}

// targetExists returns whether anything (including a dangling symbolic link)
// already occupies the given path.
func (i *Handler) targetExists(path string) (bool, error) {
	if _, err := i.osHandler.Lstat(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return false, nil
		}

		return false, fmt.Errorf("failed to lstat: %w", err)
	}

	return true, nil
}
