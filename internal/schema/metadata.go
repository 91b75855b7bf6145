package schema

import "golang.org/x/sys/unix"

// Metadata is the filesystem metadata of a [Sortable] that is carried over to
// its copy at the destination.
type Metadata struct {
	Perms      uint32
	AccessedAt unix.Timespec
	ModifiedAt unix.Timespec
	Size       uint64
}
