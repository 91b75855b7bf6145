package filesystem

import "errors"

var (
	// ErrSourceEmpty is an error that occurs when no source path was given at
	// all.
	ErrSourceEmpty = errors.New("source path is empty")

	// ErrSourceNotExist is an error that occurs when the given source path
	// does not exist.
	ErrSourceNotExist = errors.New("source does not exist")

	// ErrSourceNotDir is an error that occurs when the given source path
	// exists, but is not a directory.
	ErrSourceNotDir = errors.New("source is not a directory")
)
