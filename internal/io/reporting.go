package io

import (
	"fmt"

	"github.com/desertwitch/recursion/internal/queue"
	"github.com/desertwitch/recursion/internal/schema"
	"github.com/dustin/go-humanize"
)

// Report is the outcome of processing a queue of [schema.Sortable].
type Report struct {
	// Copied are the elements that were copied into their bucket.
	Copied []*schema.Sortable

	// Existing are the elements that were skipped, because their target
	// already existed.
	Existing []*schema.Sortable

	// Failed are the elements that could not be copied.
	Failed []*schema.Sortable

	// BytesCopied is the total size of all copied elements.
	BytesCopied uint64
}

func newReport(q *queue.GenericQueue[*schema.Sortable]) *Report {
	report := &Report{
		Copied:   q.GetSuccessful(),
		Existing: q.GetSkipped(),
		Failed:   q.GetFailed(),
	}

	for _, s := range report.Copied {
		if s.Metadata != nil {
			report.BytesCopied += s.Metadata.Size
		}
	}

	return report
}

// Summary returns a single line describing the [Report].
func (r *Report) Summary() string {
	return fmt.Sprintf("Copied %d files (%s), skipped %d existing, %d failed",
		len(r.Copied),
		humanize.Bytes(r.BytesCopied),
		len(r.Existing),
		len(r.Failed),
	)
}
