package io

import (
	"fmt"

	"github.com/desertwitch/recursion/internal/schema"
)

func (i *Handler) ensurePermissions(path string, metadata *schema.Metadata) error {
	if err := i.unixHandler.Chmod(path, metadata.Perms); err != nil {
		return fmt.Errorf("failed to set permissions on %s: %w", path, err)
	}

	return nil
}
