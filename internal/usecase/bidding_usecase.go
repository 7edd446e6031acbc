package usecase

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"

	"wrenchworks/internal/domain/entities"
	"wrenchworks/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrBidNotFound    = errors.New("bid not found")
	ErrInvalidBidID   = errors.New("invalid bid id")
	ErrDuplicateBid   = errors.New("mechanic already has an active bid on this job")
	ErrBidNotActive   = errors.New("bid is no longer active")
	ErrJobNotBiddable = errors.New("job is not open for bidding")
)

// IBiddingUseCase manages mechanic offers on a job. There is no automatic
// best-bid selection; the customer always chooses explicitly, and this layer
// only enforces the structural invariants.

type IBiddingUseCase interface {
	PlaceBid(ctx context.Context, jobID, mechanicID string, amount float64, message string) (entities.Bid, error)
	WithdrawBid(ctx context.Context, bidID, mechanicID string) (entities.Bid, error)
	AcceptBid(ctx context.Context, bidID, customerID string) (entities.Bid, error)
	ListForJob(ctx context.Context, jobID string) ([]entities.Bid, error)
}

type BiddingUseCase struct {
	bids     interfaces.IBidRepository
	workflow *WorkflowUseCase
}

var _ IBiddingUseCase = (*BiddingUseCase)(nil)

func NewBiddingUseCase(bids interfaces.IBidRepository, workflow *WorkflowUseCase) *BiddingUseCase {
	return &BiddingUseCase{bids: bids, workflow: workflow}
}

// PlaceBid creates an active bid for the mechanic. The biddable check runs
// inside the job's critical section: a client-side snapshot of the job may be
// stale by the time the request lands, so it is never trusted.
func (u *BiddingUseCase) PlaceBid(ctx context.Context, jobID, mechanicID string, amount float64, message string) (entities.Bid, error) {
	mechanicID = strings.TrimSpace(mechanicID)
	if mechanicID == "" {
		return entities.Bid{}, ErrInvalidMechanicID
	}
	if amount <= 0 {
		return entities.Bid{}, ErrInvalidAmount
	}

	release := u.workflow.lockJob(strings.TrimSpace(jobID))
	defer release()

	j, err := u.workflow.loadJob(ctx, jobID)
	if err != nil {
		return entities.Bid{}, err
	}
	if !j.OpenForBidding() {
		return entities.Bid{}, ErrJobNotBiddable
	}

	existing, err := u.bids.ListByJobID(ctx, j.ID)
	if err != nil {
		return entities.Bid{}, err
	}
	for _, b := range existing {
		if b.MechanicID == mechanicID && b.Active() {
			return entities.Bid{}, ErrDuplicateBid
		}
	}

	b := entities.Bid{
		ID:         uuid.NewString(),
		JobID:      j.ID,
		MechanicID: mechanicID,
		Amount:     amount,
		Message:    strings.TrimSpace(message),
		Status:     entities.BidStatusActive,
		CreatedAt:  time.Now().UTC(),
	}
	created, err := u.bids.Create(ctx, b)
	if err != nil {
		return entities.Bid{}, err
	}

	// first bid flips the job out of posted
	if j.Status == entities.JobStatusPosted {
		if _, err := u.workflow.transitionLocked(ctx, j, entities.JobStatusBidding); err != nil {
			return entities.Bid{}, err
		}
	}

	log.Printf("[bidding][usecase] bid placed job_id=%s bid_id=%s mechanic_id=%s amount=%.2f", j.ID, created.ID, mechanicID, amount)
	u.workflow.emit(ctx, entities.Event{
		Type:        entities.EventBidPlaced,
		JobID:       j.ID,
		RecipientID: j.CustomerID,
		Context:     map[string]any{"bid_id": created.ID, "amount": created.Amount},
	})
	return created, nil
}

func (u *BiddingUseCase) WithdrawBid(ctx context.Context, bidID, mechanicID string) (entities.Bid, error) {
	mechanicID = strings.TrimSpace(mechanicID)
	if mechanicID == "" {
		return entities.Bid{}, ErrInvalidMechanicID
	}

	b, err := u.loadBid(ctx, bidID)
	if err != nil {
		return entities.Bid{}, err
	}

	release := u.workflow.lockJob(b.JobID)
	defer release()

	// re-read inside the critical section; the customer may have just
	// accepted or the job may have been cancelled
	b, err = u.loadBid(ctx, bidID)
	if err != nil {
		return entities.Bid{}, err
	}
	if b.MechanicID != mechanicID {
		return entities.Bid{}, ErrNotOwner
	}
	if !b.Active() {
		return entities.Bid{}, ErrBidNotActive
	}

	b.Status = entities.BidStatusWithdrawn
	updated, err := u.bids.Update(ctx, b)
	if err != nil {
		return entities.Bid{}, err
	}
	log.Printf("[bidding][usecase] bid withdrawn job_id=%s bid_id=%s mechanic_id=%s", b.JobID, b.ID, mechanicID)
	return updated, nil
}

// AcceptBid marks the chosen bid accepted, rejects every sibling active bid
// and moves the job to accepted with the winning mechanic assigned. All of it
// happens under the job lock so two racing accepts cannot both win.
func (u *BiddingUseCase) AcceptBid(ctx context.Context, bidID, customerID string) (entities.Bid, error) {
	customerID = strings.TrimSpace(customerID)
	if customerID == "" {
		return entities.Bid{}, ErrInvalidCustomerID
	}

	b, err := u.loadBid(ctx, bidID)
	if err != nil {
		return entities.Bid{}, err
	}

	release := u.workflow.lockJob(b.JobID)
	defer release()

	b, err = u.loadBid(ctx, bidID)
	if err != nil {
		return entities.Bid{}, err
	}

	j, err := u.workflow.loadJob(ctx, b.JobID)
	if err != nil {
		return entities.Bid{}, err
	}
	if j.CustomerID != customerID {
		return entities.Bid{}, ErrNotOwner
	}
	if !b.Active() {
		return entities.Bid{}, ErrBidNotActive
	}
	if !entities.CanTransition(j.Status, entities.JobStatusAccepted) {
		return entities.Bid{}, ErrJobNotBiddable
	}

	b.Status = entities.BidStatusAccepted
	accepted, err := u.bids.Update(ctx, b)
	if err != nil {
		return entities.Bid{}, err
	}

	siblings, err := u.bids.ListByJobID(ctx, j.ID)
	if err != nil {
		return entities.Bid{}, err
	}
	for _, s := range siblings {
		if s.ID == accepted.ID || !s.Active() {
			continue
		}
		s.Status = entities.BidStatusRejected
		if _, err := u.bids.Update(ctx, s); err != nil {
			return entities.Bid{}, err
		}
	}

	j.MechanicID = accepted.MechanicID
	j.EstimatedCost = accepted.Amount
	if _, err := u.workflow.transitionLocked(ctx, j, entities.JobStatusAccepted); err != nil {
		return entities.Bid{}, err
	}

	log.Printf("[bidding][usecase] bid accepted job_id=%s bid_id=%s mechanic_id=%s amount=%.2f", j.ID, accepted.ID, accepted.MechanicID, accepted.Amount)
	u.workflow.emit(ctx, entities.Event{
		Type:        entities.EventBidAccepted,
		JobID:       j.ID,
		RecipientID: accepted.MechanicID,
		Context:     map[string]any{"bid_id": accepted.ID, "amount": accepted.Amount},
	})
	return accepted, nil
}

func (u *BiddingUseCase) ListForJob(ctx context.Context, jobID string) ([]entities.Bid, error) {
	jobID = strings.TrimSpace(jobID)
	if jobID == "" {
		return nil, ErrInvalidJobID
	}
	return u.bids.ListByJobID(ctx, jobID)
}

func (u *BiddingUseCase) loadBid(ctx context.Context, bidID string) (entities.Bid, error) {
	bidID = strings.TrimSpace(bidID)
	if bidID == "" {
		return entities.Bid{}, ErrInvalidBidID
	}
	b, err := u.bids.GetByID(ctx, bidID)
	if err != nil {
		return entities.Bid{}, err
	}
	if b.ID == "" {
		return entities.Bid{}, ErrBidNotFound
	}
	return b, nil
}
