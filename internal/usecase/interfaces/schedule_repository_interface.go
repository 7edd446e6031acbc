package interfaces

import (
	"context"
	"wrenchworks/internal/domain/entities"
)

// IScheduleProposalRepository abstracts DynamoDB persistence for the single
// pending ScheduleProposal per job.
//
// The proposal table is keyed by job id, so Put naturally supersedes any
// previous proposal and "one pending proposal per job" holds by construction.

type IScheduleProposalRepository interface {
	Put(ctx context.Context, p entities.ScheduleProposal) (entities.ScheduleProposal, error)
	GetByJobID(ctx context.Context, jobID string) (entities.ScheduleProposal, error)
	DeleteByJobID(ctx context.Context, jobID string) error
}
