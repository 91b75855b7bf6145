package main

import "errors"

var (
	// ErrNotLaunched occurs when the result of a run is requested before
	// the run has completed.
	ErrNotLaunched = errors.New("run has not completed")

	// ErrDestIsFile occurs when the destination exists but is not a
	// directory.
	ErrDestIsFile = errors.New("destination exists and is not a directory")
)
