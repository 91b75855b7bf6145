package filesystem

import (
	"fmt"

	"github.com/desertwitch/recursion/internal/schema"
	"golang.org/x/sys/unix"
)

// getMetadata returns the [schema.Metadata] of the element a path resolves to,
// following any symbolic links on the way.
func (f *Handler) getMetadata(path string) (*schema.Metadata, error) {
	var stat unix.Stat_t

	if err := f.unixHandler.Stat(path, &stat); err != nil {
		return nil, fmt.Errorf("(fs-metadata) failed to stat: %w", err)
	}

	metadata := &schema.Metadata{
		Perms:      (uint32(stat.Mode) & 0o7777), //nolint:unconvert
		AccessedAt: stat.Atim,
		ModifiedAt: stat.Mtim,
		Size:       uint64(stat.Size), //nolint:gosec
	}

	return metadata, nil
}
