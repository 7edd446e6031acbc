package entities

import (
	"fmt"
	"time"
)

// AllowedTransitions is the top-level job state machine, configured as a
// directed graph. Cancellation is reachable from every non-terminal state.
var AllowedTransitions = map[JobStatus][]JobStatus{
	JobStatusPosted:           {JobStatusBidding, JobStatusCancelled},
	JobStatusBidding:          {JobStatusAccepted, JobStatusCancelled},
	JobStatusAccepted:         {JobStatusScheduled, JobStatusCancelled},
	JobStatusScheduled:        {JobStatusConfirmed, JobStatusScheduleRejected, JobStatusCancelled},
	JobStatusScheduleRejected: {JobStatusScheduled, JobStatusCancelled},
	JobStatusConfirmed:        {JobStatusInProgress, JobStatusCancelled},
	JobStatusInProgress:       {JobStatusCompleted, JobStatusCancelled},
	// terminal states never transition again
	JobStatusCompleted: {},
	JobStatusCancelled: {},
}

// CanTransition reports whether from -> to is a legal status change.
// from == to is always allowed so that retried transitions are idempotent.
func CanTransition(from, to JobStatus) bool {
	if from == to {
		return true
	}
	allowed, ok := AllowedTransitions[from]
	if !ok {
		return false
	}
	for _, s := range allowed {
		if s == to {
			return true
		}
	}
	return false
}

// ApplyTransition mutates the job's status and bookkeeping fields. Callers
// hold the per-job lock and persist the result with a conditional update.
func ApplyTransition(j *Job, to JobStatus, now time.Time) error {
	if j == nil {
		return fmt.Errorf("job is nil")
	}
	from := j.Status
	if !CanTransition(from, to) {
		return fmt.Errorf("invalid job status transition: %s -> %s", from, to)
	}

	j.Status = to
	j.UpdatedAt = now
	return nil
}
