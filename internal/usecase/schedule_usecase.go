package usecase

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"

	"wrenchworks/internal/domain/entities"
	"wrenchworks/internal/usecase/interfaces"
)

var (
	ErrNoPendingProposal = errors.New("no pending schedule proposal")
	ErrWrongActor        = errors.New("proposer cannot act on their own proposal")
	ErrJobNotNegotiable  = errors.New("job is not in a negotiable state")
	ErrInvalidActor      = errors.New("invalid actor")
	ErrInvalidSchedule   = errors.New("invalid schedule date/time")
)

// IScheduleUseCase runs the date/time handshake between customer and
// mechanic. A date is never committed without an explicit accept from the
// counterpart, so a stale or logged-out client can never book unilaterally.

type IScheduleUseCase interface {
	Propose(ctx context.Context, jobID string, input ScheduleProposalInput) (entities.Job, error)
	Accept(ctx context.Context, jobID string, actor entities.Actor) (entities.Job, error)
	Reject(ctx context.Context, jobID string, actor entities.Actor, counter *ScheduleProposalInput) (entities.Job, error)
	GetPending(ctx context.Context, jobID string) (entities.ScheduleProposal, error)
}

// ScheduleProposalInput is one side's offered date/time.
type ScheduleProposalInput struct {
	Actor entities.Actor
	Date  string
	Time  string
	Notes string
}

type ScheduleUseCase struct {
	proposals interfaces.IScheduleProposalRepository
	workflow  *WorkflowUseCase
}

var _ IScheduleUseCase = (*ScheduleUseCase)(nil)

func NewScheduleUseCase(proposals interfaces.IScheduleProposalRepository, workflow *WorkflowUseCase) *ScheduleUseCase {
	return &ScheduleUseCase{proposals: proposals, workflow: workflow}
}

// Propose records the single pending proposal for the job, superseding any
// previous one. The first proposal moves the job from accepted to scheduled
// and stamps the proposed date/time onto it.
func (u *ScheduleUseCase) Propose(ctx context.Context, jobID string, input ScheduleProposalInput) (entities.Job, error) {
	if err := validateActor(input.Actor); err != nil {
		return entities.Job{}, err
	}
	if strings.TrimSpace(input.Date) == "" || strings.TrimSpace(input.Time) == "" {
		return entities.Job{}, ErrInvalidSchedule
	}

	release := u.workflow.lockJob(strings.TrimSpace(jobID))
	defer release()

	j, err := u.workflow.loadJob(ctx, jobID)
	if err != nil {
		return entities.Job{}, err
	}

	return u.proposeLocked(ctx, j, input)
}

func (u *ScheduleUseCase) proposeLocked(ctx context.Context, j entities.Job, input ScheduleProposalInput) (entities.Job, error) {
	switch j.Status {
	case entities.JobStatusAccepted, entities.JobStatusScheduled, entities.JobStatusScheduleRejected:
	default:
		return entities.Job{}, ErrJobNotNegotiable
	}

	p := entities.ScheduleProposal{
		JobID:      j.ID,
		ProposedBy: input.Actor,
		Date:       strings.TrimSpace(input.Date),
		Time:       strings.TrimSpace(input.Time),
		Notes:      strings.TrimSpace(input.Notes),
		CreatedAt:  time.Now().UTC(),
	}
	if _, err := u.proposals.Put(ctx, p); err != nil {
		return entities.Job{}, err
	}

	j.Schedule = &entities.JobSchedule{Date: p.Date, Time: p.Time}
	var updated entities.Job
	var err error
	if j.Status == entities.JobStatusScheduled {
		// superseding proposal: status stays, only the date/time moves
		j.UpdatedAt = time.Now().UTC()
		updated, err = u.workflow.jobs.Update(ctx, j)
	} else {
		updated, err = u.workflow.transitionLocked(ctx, j, entities.JobStatusScheduled)
	}
	if err != nil {
		return entities.Job{}, err
	}

	log.Printf("[schedule][usecase] proposal recorded job_id=%s by=%s date=%s time=%s", j.ID, p.ProposedBy, p.Date, p.Time)
	u.workflow.emit(ctx, entities.Event{
		Type:        entities.EventScheduleProposed,
		JobID:       j.ID,
		RecipientID: counterpartID(updated, input.Actor),
		Context:     map[string]any{"date": p.Date, "time": p.Time},
	})
	return updated, nil
}

// Accept confirms the counterpart's pending proposal and moves the job to
// confirmed. The proposer cannot accept their own offer.
func (u *ScheduleUseCase) Accept(ctx context.Context, jobID string, actor entities.Actor) (entities.Job, error) {
	if err := validateActor(actor); err != nil {
		return entities.Job{}, err
	}

	release := u.workflow.lockJob(strings.TrimSpace(jobID))
	defer release()

	j, err := u.workflow.loadJob(ctx, jobID)
	if err != nil {
		return entities.Job{}, err
	}
	if j.Status != entities.JobStatusScheduled {
		return entities.Job{}, ErrJobNotNegotiable
	}

	p, err := u.pendingLocked(ctx, j.ID)
	if err != nil {
		return entities.Job{}, err
	}
	if p.ProposedBy == actor {
		return entities.Job{}, ErrWrongActor
	}

	// clear the proposal before committing so a delete failure leaves the
	// job scheduled with the proposal intact and the call safe to retry
	if err := u.proposals.DeleteByJobID(ctx, j.ID); err != nil {
		return entities.Job{}, err
	}
	updated, err := u.workflow.transitionLocked(ctx, j, entities.JobStatusConfirmed)
	if err != nil {
		return entities.Job{}, err
	}

	log.Printf("[schedule][usecase] schedule confirmed job_id=%s date=%s time=%s", j.ID, p.Date, p.Time)
	u.workflow.emit(ctx, entities.Event{
		Type:        entities.EventScheduleConfirmed,
		JobID:       j.ID,
		RecipientID: counterpartID(updated, actor),
		Context:     map[string]any{"date": p.Date, "time": p.Time},
	})
	return updated, nil
}

// Reject declines the pending proposal. With a bundled counter-proposal the
// job re-enters scheduled in the same call; without one it stays in
// schedule_rejected awaiting a fresh proposal from either side.
func (u *ScheduleUseCase) Reject(ctx context.Context, jobID string, actor entities.Actor, counter *ScheduleProposalInput) (entities.Job, error) {
	if err := validateActor(actor); err != nil {
		return entities.Job{}, err
	}

	release := u.workflow.lockJob(strings.TrimSpace(jobID))
	defer release()

	j, err := u.workflow.loadJob(ctx, jobID)
	if err != nil {
		return entities.Job{}, err
	}
	if j.Status != entities.JobStatusScheduled {
		return entities.Job{}, ErrJobNotNegotiable
	}

	p, err := u.pendingLocked(ctx, j.ID)
	if err != nil {
		return entities.Job{}, err
	}
	if p.ProposedBy == actor {
		return entities.Job{}, ErrWrongActor
	}

	if err := u.proposals.DeleteByJobID(ctx, j.ID); err != nil {
		return entities.Job{}, err
	}
	updated, err := u.workflow.transitionLocked(ctx, j, entities.JobStatusScheduleRejected)
	if err != nil {
		return entities.Job{}, err
	}

	log.Printf("[schedule][usecase] schedule rejected job_id=%s by=%s", j.ID, actor)
	u.workflow.emit(ctx, entities.Event{
		Type:        entities.EventScheduleRejected,
		JobID:       j.ID,
		RecipientID: counterpartID(updated, actor),
	})

	if counter == nil {
		return updated, nil
	}
	// copy so the rejecting actor is stamped without mutating the caller's input
	counterInput := *counter
	counterInput.Actor = actor
	return u.proposeLocked(ctx, updated, counterInput)
}

func (u *ScheduleUseCase) GetPending(ctx context.Context, jobID string) (entities.ScheduleProposal, error) {
	jobID = strings.TrimSpace(jobID)
	if jobID == "" {
		return entities.ScheduleProposal{}, ErrInvalidJobID
	}
	return u.pendingLocked(ctx, jobID)
}

func (u *ScheduleUseCase) pendingLocked(ctx context.Context, jobID string) (entities.ScheduleProposal, error) {
	p, err := u.proposals.GetByJobID(ctx, jobID)
	if err != nil {
		return entities.ScheduleProposal{}, err
	}
	if p.JobID == "" {
		return entities.ScheduleProposal{}, ErrNoPendingProposal
	}
	return p, nil
}

func validateActor(a entities.Actor) error {
	switch a {
	case entities.ActorCustomer, entities.ActorMechanic:
		return nil
	default:
		return ErrInvalidActor
	}
}

func counterpartID(j entities.Job, actor entities.Actor) string {
	if actor == entities.ActorCustomer {
		return j.MechanicID
	}
	return j.CustomerID
}
