package io

import (
	"context"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"

	"github.com/desertwitch/recursion/internal/schema"
	"github.com/zeebo/blake3"
)

//nolint:containedctx
type contextReader struct {
	ctx    context.Context
	reader io.Reader
}

func (cr *contextReader) Read(p []byte) (int, error) {
	select {
	case <-cr.ctx.Done():
		return 0, context.Canceled
	default:
		return cr.reader.Read(p)
	}
}

// removeStaleIntermediate removes a regular file left at the intermediate
// path by an interrupted earlier run. Anything else at that path is left to
// fail the exclusive create.
func (i *Handler) removeStaleIntermediate(tmpPath string) error {
	info, err := i.osHandler.Lstat(tmpPath)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}

		return fmt.Errorf("failed to check intermediate file %s: %w", tmpPath, err)
	}

	if !info.Mode().IsRegular() {
		return nil
	}

	if err := i.osHandler.Remove(tmpPath); err != nil {
		return fmt.Errorf("failed to remove stale intermediate file %s: %w", tmpPath, err)
	}

	slog.Warn("Removed stale intermediate file", "path", tmpPath)

	return nil
}

// copyFile copies the [schema.Sortable] into an intermediate file next to its
// destination, verifies the written data against the source by checksum and
// only then renames the intermediate file to its destination. The
// intermediate file is removed on any failure.
func (i *Handler) copyFile(ctx context.Context, s *schema.Sortable) error {
	var transferComplete bool

	if s.Metadata == nil {
		return ErrNilMetadata
	}

	srcFile, err := i.osHandler.Open(s.SourcePath)
	if err != nil {
		return fmt.Errorf("failed to open source file: %w", err)
	}
	defer srcFile.Close()

	tmpPath := s.DestPath + i.tempSuffix

	if err := i.removeStaleIntermediate(tmpPath); err != nil {
		return err
	}

	dstFile, err := i.osHandler.OpenFile(tmpPath, os.O_CREATE|os.O_WRONLY|os.O_EXCL, os.FileMode(s.Metadata.Perms&0o777))
	if err != nil {
		return fmt.Errorf("failed to open destination file %s: %w", tmpPath, err)
	}
	defer func() {
		dstFile.Close()

		if !transferComplete {
			i.osHandler.Remove(tmpPath) //nolint:errcheck
		}
	}()

	srcHasher := blake3.New()
	dstHasher := blake3.New()

	ctxReader := &contextReader{
		ctx:    ctx,
		reader: io.TeeReader(srcFile, srcHasher),
	}
	multiWriter := io.MultiWriter(dstFile, dstHasher)

	if _, err := io.Copy(multiWriter, ctxReader); err != nil {
		if errors.Is(err, context.Canceled) {
			return fmt.Errorf("transfer canceled: %w", err)
		}

		return fmt.Errorf("failed to copy file: %w", err)
	}

	if err := dstFile.Sync(); err != nil {
		return fmt.Errorf("failed to sync destination fs: %w", err)
	}

	srcChecksum := hex.EncodeToString(srcHasher.Sum(nil))
	dstChecksum := hex.EncodeToString(dstHasher.Sum(nil))

	if srcChecksum != dstChecksum {
		return fmt.Errorf("%w: %s (src) != %s (dst)", ErrHashMismatch, srcChecksum, dstChecksum)
	}

	if _, err := i.osHandler.Lstat(s.DestPath); err == nil {
		return ErrRenameExists
	} else if !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("failed to check rename destination existence: %w", err)
	}

	if err := i.osHandler.Rename(tmpPath, s.DestPath); err != nil {
		return fmt.Errorf("failed to rename temporary file to destination file: %w", err)
	}

	transferComplete = true

	return nil
}
