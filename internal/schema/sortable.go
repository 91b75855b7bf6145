package schema

// Sortable is the principal structure for all candidates to be sorted. It is
// always a regular file (or a symlink resolving to one) that has a non-empty
// extension.
//
// Sortables are meant to be passed by reference (pointer) and are not
// thread-safe.
type Sortable struct {
	// SourcePath is the path the [Sortable] is located at.
	SourcePath string

	// Name is the base name of the [Sortable], kept unchanged at the
	// destination.
	Name string

	// Extension is the lower-cased extension without the leading dot.
	Extension string

	// BucketPath is the extension bucket the [Sortable] is to be copied into.
	BucketPath string

	// DestPath is the path the [Sortable] is to be copied to.
	DestPath string

	// Metadata is the filesystem [Metadata] of the source file.
	Metadata *Metadata
}
