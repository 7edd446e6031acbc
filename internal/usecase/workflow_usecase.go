package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"wrenchworks/internal/domain/entities"
	"wrenchworks/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrJobNotFound       = errors.New("job not found")
	ErrInvalidJobID      = errors.New("invalid job id")
	ErrInvalidCustomerID = errors.New("invalid customer id")
	ErrInvalidMechanicID = errors.New("invalid mechanic id")
	ErrInvalidJobInput   = errors.New("invalid job input")
	ErrInvalidTransition = errors.New("invalid job status transition")
	ErrNotOwner          = errors.New("actor has no authority over this entity")
	ErrInvalidAmount     = errors.New("amount must be greater than zero")
)

// IWorkflowUseCase is the orchestrator facade over the job store and the
// top-level state machine. Every status mutation on a job runs through it
// (directly or through the bidding/schedule/change-order use cases sharing
// its per-job locks).

type IWorkflowUseCase interface {
	CreateJob(ctx context.Context, input CreateJobInput) (entities.Job, error)
	GetJob(ctx context.Context, jobID string) (entities.Job, error)
	StartJob(ctx context.Context, jobID, mechanicID string) (entities.Job, error)
	CompleteJob(ctx context.Context, jobID, mechanicID string) (entities.Job, error)
	CancelJob(ctx context.Context, jobID, customerID string) (entities.Job, error)
	ListByCustomer(ctx context.Context, customerID string) ([]entities.Job, error)
	ListByMechanic(ctx context.Context, mechanicID string) ([]entities.Job, error)
	ListAvailable(ctx context.Context) ([]entities.Job, error)
}

// CreateJobInput carries the customer's job posting.
type CreateJobInput struct {
	CustomerID    string
	Category      string
	Subcategory   string
	Description   string
	Urgency       entities.Urgency
	ServiceType   entities.ServiceType
	Location      string
	EstimatedCost float64
}

type WorkflowUseCase struct {
	jobs         interfaces.IJobRepository
	bids         interfaces.IBidRepository
	proposals    interfaces.IScheduleProposalRepository
	changeOrders interfaces.IChangeOrderRepository
	notifier     interfaces.INotifier
	locks        *jobLocks
}

var _ IWorkflowUseCase = (*WorkflowUseCase)(nil)

func NewWorkflowUseCase(
	jobs interfaces.IJobRepository,
	bids interfaces.IBidRepository,
	proposals interfaces.IScheduleProposalRepository,
	changeOrders interfaces.IChangeOrderRepository,
	notifier interfaces.INotifier,
) *WorkflowUseCase {
	return &WorkflowUseCase{
		jobs:         jobs,
		bids:         bids,
		proposals:    proposals,
		changeOrders: changeOrders,
		notifier:     notifier,
		locks:        newJobLocks(),
	}
}

func (u *WorkflowUseCase) CreateJob(ctx context.Context, input CreateJobInput) (entities.Job, error) {
	input.CustomerID = strings.TrimSpace(input.CustomerID)
	if input.CustomerID == "" {
		return entities.Job{}, ErrInvalidCustomerID
	}
	if strings.TrimSpace(input.Category) == "" || strings.TrimSpace(input.Description) == "" {
		return entities.Job{}, ErrInvalidJobInput
	}
	switch input.Urgency {
	case entities.UrgencyLow, entities.UrgencyMedium, entities.UrgencyHigh:
	default:
		return entities.Job{}, ErrInvalidJobInput
	}
	switch input.ServiceType {
	case entities.ServiceTypeMobile, entities.ServiceTypeShop:
	default:
		return entities.Job{}, ErrInvalidJobInput
	}
	if input.EstimatedCost < 0 {
		return entities.Job{}, ErrInvalidAmount
	}

	now := time.Now().UTC()
	j := entities.Job{
		ID:            uuid.NewString(),
		CustomerID:    input.CustomerID,
		Category:      strings.TrimSpace(input.Category),
		Subcategory:   strings.TrimSpace(input.Subcategory),
		Description:   strings.TrimSpace(input.Description),
		Urgency:       input.Urgency,
		ServiceType:   input.ServiceType,
		Location:      strings.TrimSpace(input.Location),
		EstimatedCost: input.EstimatedCost,
		Status:        entities.JobStatusPosted,
		PaymentStatus: entities.JobPaymentStatusUnpaid,
		Version:       1,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	created, err := u.jobs.Create(ctx, j)
	if err != nil {
		return entities.Job{}, err
	}
	log.Printf("[workflow][usecase] job created job_id=%s customer_id=%s status=%s", created.ID, created.CustomerID, created.Status)
	return created, nil
}

func (u *WorkflowUseCase) GetJob(ctx context.Context, jobID string) (entities.Job, error) {
	return u.loadJob(ctx, jobID)
}

func (u *WorkflowUseCase) StartJob(ctx context.Context, jobID, mechanicID string) (entities.Job, error) {
	mechanicID = strings.TrimSpace(mechanicID)
	if mechanicID == "" {
		return entities.Job{}, ErrInvalidMechanicID
	}

	release := u.lockJob(jobID)
	defer release()

	j, err := u.loadJob(ctx, jobID)
	if err != nil {
		return entities.Job{}, err
	}
	if j.MechanicID != mechanicID {
		return entities.Job{}, ErrNotOwner
	}

	updated, err := u.transitionLocked(ctx, j, entities.JobStatusInProgress)
	if err != nil {
		return entities.Job{}, err
	}
	u.emit(ctx, entities.Event{Type: entities.EventJobStarted, JobID: updated.ID, RecipientID: updated.CustomerID})
	return updated, nil
}

func (u *WorkflowUseCase) CompleteJob(ctx context.Context, jobID, mechanicID string) (entities.Job, error) {
	mechanicID = strings.TrimSpace(mechanicID)
	if mechanicID == "" {
		return entities.Job{}, ErrInvalidMechanicID
	}

	release := u.lockJob(jobID)
	defer release()

	j, err := u.loadJob(ctx, jobID)
	if err != nil {
		return entities.Job{}, err
	}
	if j.MechanicID != mechanicID {
		return entities.Job{}, ErrNotOwner
	}

	updated, err := u.transitionLocked(ctx, j, entities.JobStatusCompleted)
	if err != nil {
		return entities.Job{}, err
	}
	u.emit(ctx, entities.Event{Type: entities.EventJobCompleted, JobID: updated.ID, RecipientID: updated.CustomerID})
	return updated, nil
}

// CancelJob moves the job to its cancelled terminal state and cascade-resolves
// every still-pending sub-entity so nothing is left orphaned: active bids are
// rejected, the pending schedule proposal is discarded and pending change
// orders are rejected.
func (u *WorkflowUseCase) CancelJob(ctx context.Context, jobID, customerID string) (entities.Job, error) {
	customerID = strings.TrimSpace(customerID)
	if customerID == "" {
		return entities.Job{}, ErrInvalidCustomerID
	}

	release := u.lockJob(jobID)
	defer release()

	j, err := u.loadJob(ctx, jobID)
	if err != nil {
		return entities.Job{}, err
	}
	if j.CustomerID != customerID {
		return entities.Job{}, ErrNotOwner
	}
	if j.Status == entities.JobStatusCancelled {
		// a retry still re-runs the cascade so cleanup interrupted by an
		// earlier failure resumes; already-resolved entities are skipped
		if err := u.cascadeCancel(ctx, j); err != nil {
			return entities.Job{}, err
		}
		return j, nil
	}

	updated, err := u.transitionLocked(ctx, j, entities.JobStatusCancelled)
	if err != nil {
		return entities.Job{}, err
	}

	if err := u.cascadeCancel(ctx, updated); err != nil {
		return entities.Job{}, err
	}

	if updated.MechanicID != "" {
		u.emit(ctx, entities.Event{Type: entities.EventJobCancelled, JobID: updated.ID, RecipientID: updated.MechanicID})
	}
	log.Printf("[workflow][usecase] job cancelled job_id=%s customer_id=%s", updated.ID, customerID)
	return updated, nil
}

func (u *WorkflowUseCase) cascadeCancel(ctx context.Context, j entities.Job) error {
	bids, err := u.bids.ListByJobID(ctx, j.ID)
	if err != nil {
		return err
	}
	for _, b := range bids {
		if !b.Active() {
			continue
		}
		b.Status = entities.BidStatusRejected
		if _, err := u.bids.Update(ctx, b); err != nil {
			return err
		}
	}

	if err := u.proposals.DeleteByJobID(ctx, j.ID); err != nil {
		return err
	}

	orders, err := u.changeOrders.ListByJobID(ctx, j.ID)
	if err != nil {
		return err
	}
	now := time.Now().UTC()
	for _, co := range orders {
		if co.Resolved() {
			continue
		}
		co.Status = entities.ChangeOrderStatusRejected
		co.ResolvedAt = &now
		if _, err := u.changeOrders.Update(ctx, co); err != nil {
			return err
		}
	}
	return nil
}

func (u *WorkflowUseCase) ListByCustomer(ctx context.Context, customerID string) ([]entities.Job, error) {
	customerID = strings.TrimSpace(customerID)
	if customerID == "" {
		return nil, ErrInvalidCustomerID
	}
	return u.jobs.ListByCustomerID(ctx, customerID)
}

func (u *WorkflowUseCase) ListByMechanic(ctx context.Context, mechanicID string) ([]entities.Job, error) {
	mechanicID = strings.TrimSpace(mechanicID)
	if mechanicID == "" {
		return nil, ErrInvalidMechanicID
	}
	return u.jobs.ListByMechanicID(ctx, mechanicID)
}

// ListAvailable returns jobs mechanics can still bid on. Backed by the status
// GSI, so cost is proportional to the result set.
func (u *WorkflowUseCase) ListAvailable(ctx context.Context) ([]entities.Job, error) {
	available := make([]entities.Job, 0)
	for _, status := range []entities.JobStatus{entities.JobStatusPosted, entities.JobStatusBidding} {
		jobs, err := u.jobs.ListByStatus(ctx, status)
		if err != nil {
			return nil, err
		}
		for _, j := range jobs {
			if j.OpenForBidding() {
				available = append(available, j)
			}
		}
	}
	return available, nil
}

// lockJob acquires the exclusive per-job lock shared by every use case that
// mutates this job. Sibling use cases call it before validating preconditions
// so that read-then-act flows never trust a stale snapshot.
func (u *WorkflowUseCase) lockJob(jobID string) func() {
	return u.locks.acquire(jobID)
}

func (u *WorkflowUseCase) loadJob(ctx context.Context, jobID string) (entities.Job, error) {
	jobID = strings.TrimSpace(jobID)
	if jobID == "" {
		return entities.Job{}, ErrInvalidJobID
	}
	j, err := u.jobs.GetByID(ctx, jobID)
	if err != nil {
		return entities.Job{}, err
	}
	if j.ID == "" {
		return entities.Job{}, ErrJobNotFound
	}
	return j, nil
}

// transitionLocked validates and applies a status change. Callers must hold
// the job lock. A transition to the current status returns the job unchanged
// so that network-level retries are safe.
func (u *WorkflowUseCase) transitionLocked(ctx context.Context, j entities.Job, to entities.JobStatus) (entities.Job, error) {
	if j.Status == to {
		return j, nil
	}
	if !entities.CanTransition(j.Status, to) {
		return entities.Job{}, fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, j.Status, to)
	}
	from := j.Status
	if err := entities.ApplyTransition(&j, to, time.Now().UTC()); err != nil {
		return entities.Job{}, fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, from, to)
	}

	updated, err := u.jobs.Update(ctx, j)
	if err != nil {
		return entities.Job{}, err
	}
	log.Printf("[workflow][usecase] transition job_id=%s %s -> %s", updated.ID, from, to)
	return updated, nil
}

// emit hands an event to the notification collaborator. Failures are logged
// and swallowed; the workflow outcome is already committed at this point.
func (u *WorkflowUseCase) emit(ctx context.Context, event entities.Event) {
	if u.notifier == nil {
		return
	}
	if err := u.notifier.Notify(ctx, event); err != nil {
		log.Printf("[workflow][usecase] notify failed event=%s job_id=%s err=%v", event.Type, event.JobID, err)
	}
}
