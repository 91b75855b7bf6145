package filesystem

import (
	"context"
	"fmt"
	"io/fs"
	"log/slog"
	"path/filepath"

	"github.com/desertwitch/recursion/internal/schema"
)

// Enumerate walks the source directory depth-first, visiting the entries of
// every directory in sorted order, and returns a [schema.Sortable] for every
// regular file that has an extension. The bucket and destination paths of
// the returned elements are already resolved against dest.
//
// Files without an extension, symlinked directories and any unreadable
// elements below the source are skipped (and logged). If dest lies within
// source, that subtree is excluded from the walk. Only a failure to read the
// source itself or a context cancellation are returned as an error.
func (f *Handler) Enumerate(ctx context.Context, source string, dest string) ([]*schema.Sortable, error) {
	source = filepath.Clean(source)
	dest = filepath.Clean(dest)

	sortables := []*schema.Sortable{}

	if err := f.walkDir(ctx, source, dest, &sortables); err != nil {
		return nil, fmt.Errorf("(fs) %w", err)
	}

	return sortables, nil
}

func (f *Handler) walkDir(ctx context.Context, dir string, dest string, sortables *[]*schema.Sortable) error {
	if ctx.Err() != nil {
		return fmt.Errorf("(fs-walk) %w", ctx.Err())
	}

	entries, err := f.osHandler.ReadDir(dir)
	if err != nil {
		return fmt.Errorf("(fs-walk) failed to readdir: %w", err)
	}

	for _, entry := range entries {
		path := filepath.Join(dir, entry.Name())

		if path == dest {
			slog.Debug("Skipped: destination is located inside source",
				"path", path,
			)

			continue
		}

		info, err := f.osHandler.Stat(path)
		if err != nil {
			slog.Warn("Skipped: failed to stat element",
				"path", path,
				"err", err,
			)

			continue
		}

		if info.IsDir() {
			if entry.Type()&fs.ModeSymlink != 0 {
				slog.Debug("Skipped: symlinked directory",
					"path", path,
				)

				continue
			}

			if err := f.walkDir(ctx, path, dest, sortables); err != nil {
				if ctx.Err() != nil {
					return err
				}

				slog.Warn("Skipped: failed to walk directory",
					"path", path,
					"err", err,
				)
			}

			continue
		}

		if !info.Mode().IsRegular() {
			slog.Debug("Skipped: not a regular file",
				"path", path,
			)

			continue
		}

		ext := Extension(entry.Name())
		if ext == "" {
			slog.Debug("Skipped: file has no extension",
				"path", path,
			)

			continue
		}

		metadata, err := f.getMetadata(path)
		if err != nil {
			slog.Warn("Skipped: failed to get metadata",
				"path", path,
				"err", err,
			)

			continue
		}

		bucketPath := filepath.Join(dest, ext)

		*sortables = append(*sortables, &schema.Sortable{
			SourcePath: path,
			Name:       entry.Name(),
			Extension:  ext,
			BucketPath: bucketPath,
			DestPath:   filepath.Join(bucketPath, entry.Name()),
			Metadata:   metadata,
		})
	}

	return nil
}
