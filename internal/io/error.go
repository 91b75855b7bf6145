package io

import "errors"

var (
	// ErrBucketNotDir is an error that occurs when the path of an extension
	// bucket is already taken by something that is not a directory.
	ErrBucketNotDir = errors.New("bucket path exists but is not a directory")

	// ErrHashMismatch is an error that occurs when there is a source/destination hash
	// mismatch, this usually means that there are underlying transfer/hardware issues.
	ErrHashMismatch = errors.New("hash mismatch")

	// ErrRenameExists is an error that occurs when the intermediate file is to be renamed
	// to its final filename, but that final filename already exists in the bucket.
	ErrRenameExists = errors.New("rename destination already exists")

	// ErrNilMetadata is an error that occurs when a [schema.Sortable] without
	// [schema.Metadata] is attempted to be copied.
	ErrNilMetadata = errors.New("sortable has no metadata")
)
