// Package queue implements the sequential work queue the sorting candidates
// flow through between enumeration and copying. It keeps track of every
// item's outcome, so that the progress can be reported while work is done.
package queue

import "time"

const (
	// DecisionSuccess is returned by a processFunc when an item was processed.
	DecisionSuccess = 1

	// DecisionSkipped is returned by a processFunc when an item was
	// deliberately not processed (e.g. its target already exists).
	DecisionSkipped = 0

	// DecisionFailed is returned by a processFunc when processing an item
	// failed.
	DecisionFailed = -1
)

// Progress is a snapshot of the progress of a [GenericQueue].
type Progress struct {
	HasStarted        bool
	HasFinished       bool
	StartTime         time.Time
	FinishTime        time.Time
	ProgressPct       float64
	TotalItems        int
	ProcessedItems    int
	InProgressItems   int
	SuccessItems      int
	SkippedItems      int
	FailedItems       int
	ETA               time.Time
	TimeLeft          time.Duration
	TransferSpeed     float64
	TransferSpeedUnit string
}
