// Package report writes the flat log file that records the outcome of a
// sorting run.
package report

import (
	"fmt"
	"io"
	"os"

	"github.com/google/uuid"
)

// DefaultFile is the name of the log file written into the working directory
// if nothing else is configured.
const DefaultFile = "copy_log.txt"

type osProvider interface {
	Create(name string) (*os.File, error)
}

// Record is the information a log file is written from.
type Record struct {
	RunID       string
	Source      string
	Destination string
	Summary     string
	Structure   string
}

// NewRecord returns a pointer to a new [Record] with a newly generated run
// identifier. Source and destination are expected to be absolute paths, the
// structure is the (already framed) tree listing of the destination.
func NewRecord(source string, destination string, summary string, structure string) *Record {
	return &Record{
		RunID:       uuid.NewString(),
		Source:      source,
		Destination: destination,
		Summary:     summary,
		Structure:   structure,
	}
}

// Write writes the [Record] to the given [io.Writer].
func Write(w io.Writer, r *Record) error {
	if _, err := fmt.Fprintf(w,
		"Run: %s\nSource: %s\nDestination: %s\nResult: %s\n\nDirectory structure:\n%s\n",
		r.RunID,
		r.Source,
		r.Destination,
		r.Summary,
		r.Structure,
	); err != nil {
		return fmt.Errorf("(report) failed to write: %w", err)
	}

	return nil
}

// WriteFile (re-)creates the log file at the given path and writes the
// [Record] to it.
func WriteFile(osHandler osProvider, path string, r *Record) error {
	f, err := osHandler.Create(path)
	if err != nil {
		return fmt.Errorf("(report) failed to create log file: %w", err)
	}

	if err := Write(f, r); err != nil {
		f.Close()

		return err
	}

	if err := f.Close(); err != nil {
		return fmt.Errorf("(report) failed to close log file: %w", err)
	}

	return nil
}
