package models

import "fmt"

// Status is the lifecycle state of a tracked file within one batch cycle.
type Status string

const (
	StatusPending    Status = "pending"
	StatusProcessing Status = "processing"
	StatusCompleted  Status = "completed"
	StatusFailed     Status = "failed"
)

// allowedTransitions encodes the forward-only lifecycle. Terminal states
// have no successors; a new cycle starts from a fresh record, not from a
// backward transition.
var allowedTransitions = map[Status]map[Status]bool{
	"": {
		StatusPending: true,
	},
	StatusPending: {
		StatusProcessing: true,
	},
	StatusProcessing: {
		StatusCompleted: true,
		StatusFailed:    true,
	},
	StatusCompleted: {},
	StatusFailed:    {},
}

func IsKnownStatus(s Status) bool {
	_, ok := allowedTransitions[s]
	return ok
}

func CanTransition(from, to Status) bool {
	next, ok := allowedTransitions[from]
	if !ok {
		return false
	}
	return next[to]
}

// IsTerminal reports whether s admits no further transition within the
// current batch cycle.
func IsTerminal(s Status) bool {
	return s == StatusCompleted || s == StatusFailed
}

// Transition moves r to status, validating the step.
func (r *ProgressRecord) Transition(to Status) error {
	if !CanTransition(r.Status, to) {
		return fmt.Errorf("invalid status transition: %q -> %q (file_id=%s name=%s)", r.Status, to, r.FileID, r.Filename)
	}
	r.Status = to
	return nil
}
