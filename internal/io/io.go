// Package io implements the copying side of sorting: every
// [schema.Sortable] is copied into its extension bucket, unless a file of the
// same name is already there.
package io

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/desertwitch/recursion/internal/queue"
	"github.com/desertwitch/recursion/internal/schema"
	"golang.org/x/sys/unix"
)

const (
	// DefaultTempSuffix is appended to a destination path for the
	// intermediate file a copy is written to.
	DefaultTempSuffix = ".sorter"

	// bucketPerms are the permissions extension buckets are created with
	// (subject to the umask).
	bucketPerms = 0o777
)

type osProvider interface {
	Open(name string) (*os.File, error)
	OpenFile(name string, flag int, perm os.FileMode) (*os.File, error)
	Remove(name string) error
	Rename(oldpath, newpath string) error
	Stat(name string) (os.FileInfo, error)
	Lstat(name string) (os.FileInfo, error)
}

type unixProvider interface {
	Chmod(path string, mode uint32) error
	Mkdir(path string, mode uint32) error
	UtimesNano(path string, times []unix.Timespec) error
}

// Handler is the principal implementation for the IO services.
type Handler struct {
	osHandler   osProvider
	unixHandler unixProvider
	tempSuffix  string
}

// NewHandler returns a pointer to a new IO [Handler]. An empty tempSuffix
// falls back to [DefaultTempSuffix].
func NewHandler(osHandler osProvider, unixHandler unixProvider, tempSuffix string) *Handler {
	if tempSuffix == "" {
		tempSuffix = DefaultTempSuffix
	}

	return &Handler{
		osHandler:   osHandler,
		unixHandler: unixHandler,
		tempSuffix:  tempSuffix,
	}
}

// ProcessQueue copies all items of the given queue, in their enqueued order,
// into their respective extension buckets. Failures of single items are
// logged and do not stop the processing of the remaining items. An error is
// only returned on context cancellation, in which case the [Report] covers
// the items processed until then.
func (i *Handler) ProcessQueue(ctx context.Context, q *queue.GenericQueue[*schema.Sortable]) (*Report, error) {
	err := q.DequeueAndProcess(ctx, func(s *schema.Sortable) int {
		return i.processSortable(ctx, s)
	})

	report := newReport(q)

	if err != nil {
		if q.HasRemainingItems() {
			slog.Warn("Copying interrupted: files were left unprocessed",
				"processed", len(report.Copied)+len(report.Existing)+len(report.Failed),
				"err", err,
			)
		}

		return report, fmt.Errorf("(io) %w", err)
	}

	return report, nil
}

func (i *Handler) processSortable(ctx context.Context, s *schema.Sortable) int {
	if err := i.ensureBucket(s.BucketPath); err != nil {
		slog.Warn("Skipped: failure creating bucket",
			"bucket", s.BucketPath,
			"err", err,
			"job", s.SourcePath,
		)

		return queue.DecisionFailed
	}

	exists, err := i.targetExists(s.DestPath)
	if err != nil {
		slog.Warn("Skipped: failure checking target existence",
			"path", s.DestPath,
			"err", err,
			"job", s.SourcePath,
		)

		return queue.DecisionFailed
	}

	if exists {
		slog.Info("Skipped: target already exists",
			"path", s.DestPath,
			"job", s.SourcePath,
		)

		return queue.DecisionSkipped
	}

	if err := i.copyFile(ctx, s); err != nil {
		slog.Warn("Skipped: failure during copying",
			"path", s.DestPath,
			"err", err,
			"job", s.SourcePath,
		)

		return queue.DecisionFailed
	}

	if err := i.ensurePermissions(s.DestPath, s.Metadata); err != nil {
		slog.Warn("Warning (finalize): failure setting permissions",
			"path", s.DestPath,
			"err", err,
		)
	}

	if err := i.ensureTimestamps(s.DestPath, s.Metadata); err != nil {
		slog.Warn("Warning (finalize): failure setting timestamps",
			"path", s.DestPath,
			"err", err,
		)
	}

	slog.Info("Copied:",
		"path", s.DestPath,
		"job", s.SourcePath,
	)

	return queue.DecisionSuccess
}
