// Package history keeps a local record of finished batch cycles.
package history

import (
	"context"
	"time"
)

// BatchRun is one finished cycle: the aggregate outcome plus the
// per-file results as they stood when the cycle ended.
type BatchRun struct {
	ID         string
	StartedAt  time.Time
	FinishedAt time.Time

	// Mode names the resolved output target: "directory" or "download".
	Mode      string
	OutputDir string

	Total     int
	Completed int
	Failed    int

	Files []FileResult
}

// FileResult is the terminal state of one tracked file.
type FileResult struct {
	FileID   string
	Name     string
	Status   string
	Error    string
	Artifact string
}

type Repository interface {
	// Record stores the run and its file results atomically.
	Record(ctx context.Context, run *BatchRun) error

	// Recent returns up to limit runs, newest first, without per-file
	// results.
	Recent(ctx context.Context, limit int) ([]BatchRun, error)

	// Clear drops all recorded runs.
	Clear(ctx context.Context) error
}
