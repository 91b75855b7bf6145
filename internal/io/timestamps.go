package io

import (
	"fmt"

	"github.com/desertwitch/recursion/internal/schema"
	"golang.org/x/sys/unix"
)

func (i *Handler) ensureTimestamps(path string, metadata *schema.Metadata) error {
	ts := []unix.Timespec{metadata.AccessedAt, metadata.ModifiedAt}
	if err := i.unixHandler.UtimesNano(path, ts); err != nil {
		return fmt.Errorf("failed to set timestamps on %s: %w", path, err)
	}

	return nil
}
