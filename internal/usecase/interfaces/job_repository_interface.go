package interfaces

import (
	"context"
	"errors"

	"wrenchworks/internal/domain/entities"
)

// ErrVersionConflict reports a lost compare-and-swap on the job's version
// counter. Callers re-read and retry or surface a conflict.
var ErrVersionConflict = errors.New("job version conflict")

// IJobRepository abstracts DynamoDB persistence for Job.
//
// The workflow engine must be able to:
//   - create a job when a customer posts it
//   - load a job by id for validation inside the per-job critical section
//   - update a job with a compare-and-swap on its version counter
//   - list jobs by customer, mechanic and status via GSIs (no table scans)
//
// Update must fail with ErrVersionConflict when the stored version differs
// from the version the caller read.

type IJobRepository interface {
	Create(ctx context.Context, j entities.Job) (entities.Job, error)
	GetByID(ctx context.Context, id string) (entities.Job, error)
	Update(ctx context.Context, j entities.Job) (entities.Job, error)
	ListByCustomerID(ctx context.Context, customerID string) ([]entities.Job, error)
	ListByMechanicID(ctx context.Context, mechanicID string) ([]entities.Job, error)
	ListByStatus(ctx context.Context, status entities.JobStatus) ([]entities.Job, error)
}
