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
	ErrChangeOrderNotFound  = errors.New("change order not found")
	ErrInvalidChangeOrderID = errors.New("invalid change order id")
	ErrJobNotInProgress     = errors.New("job is not in progress")
	ErrAlreadyResolved      = errors.New("change order already resolved")
	ErrInvalidDecision      = errors.New("decision must be approved or rejected")
)

// IChangeOrderUseCase manages mid-job additional-work requests. A change
// order is raised by the mechanic while the job is in progress, resolved
// exactly once by the customer and immutable afterwards. Approved amounts
// roll into the job's effective total used for final settlement.

type IChangeOrderUseCase interface {
	Request(ctx context.Context, jobID, mechanicID, description string, amount float64) (entities.ChangeOrder, error)
	Resolve(ctx context.Context, changeOrderID, customerID string, decision entities.ChangeOrderStatus) (entities.ChangeOrder, error)
	ListForJob(ctx context.Context, jobID string) ([]entities.ChangeOrder, error)
	EffectiveTotal(ctx context.Context, jobID string) (float64, error)
}

type ChangeOrderUseCase struct {
	changeOrders interfaces.IChangeOrderRepository
	workflow     *WorkflowUseCase
}

var _ IChangeOrderUseCase = (*ChangeOrderUseCase)(nil)

func NewChangeOrderUseCase(changeOrders interfaces.IChangeOrderRepository, workflow *WorkflowUseCase) *ChangeOrderUseCase {
	return &ChangeOrderUseCase{changeOrders: changeOrders, workflow: workflow}
}

func (u *ChangeOrderUseCase) Request(ctx context.Context, jobID, mechanicID, description string, amount float64) (entities.ChangeOrder, error) {
	mechanicID = strings.TrimSpace(mechanicID)
	if mechanicID == "" {
		return entities.ChangeOrder{}, ErrInvalidMechanicID
	}
	if amount <= 0 {
		return entities.ChangeOrder{}, ErrInvalidAmount
	}

	release := u.workflow.lockJob(strings.TrimSpace(jobID))
	defer release()

	j, err := u.workflow.loadJob(ctx, jobID)
	if err != nil {
		return entities.ChangeOrder{}, err
	}
	if j.Status != entities.JobStatusInProgress {
		return entities.ChangeOrder{}, ErrJobNotInProgress
	}
	if j.MechanicID != mechanicID {
		return entities.ChangeOrder{}, ErrNotOwner
	}

	co := entities.ChangeOrder{
		ID:          uuid.NewString(),
		JobID:       j.ID,
		MechanicID:  mechanicID,
		CustomerID:  j.CustomerID,
		Description: strings.TrimSpace(description),
		Amount:      amount,
		Status:      entities.ChangeOrderStatusPending,
		CreatedAt:   time.Now().UTC(),
	}
	created, err := u.changeOrders.Create(ctx, co)
	if err != nil {
		return entities.ChangeOrder{}, err
	}

	log.Printf("[changeorder][usecase] requested job_id=%s change_order_id=%s amount=%.2f", j.ID, created.ID, amount)
	u.workflow.emit(ctx, entities.Event{
		Type:        entities.EventChangeOrderRequested,
		JobID:       j.ID,
		RecipientID: j.CustomerID,
		Context:     map[string]any{"change_order_id": created.ID, "amount": created.Amount},
	})
	return created, nil
}

func (u *ChangeOrderUseCase) Resolve(ctx context.Context, changeOrderID, customerID string, decision entities.ChangeOrderStatus) (entities.ChangeOrder, error) {
	customerID = strings.TrimSpace(customerID)
	if customerID == "" {
		return entities.ChangeOrder{}, ErrInvalidCustomerID
	}
	if decision != entities.ChangeOrderStatusApproved && decision != entities.ChangeOrderStatusRejected {
		return entities.ChangeOrder{}, ErrInvalidDecision
	}

	co, err := u.loadChangeOrder(ctx, changeOrderID)
	if err != nil {
		return entities.ChangeOrder{}, err
	}

	release := u.workflow.lockJob(co.JobID)
	defer release()

	co, err = u.loadChangeOrder(ctx, changeOrderID)
	if err != nil {
		return entities.ChangeOrder{}, err
	}
	if co.CustomerID != customerID {
		return entities.ChangeOrder{}, ErrNotOwner
	}
	if co.Resolved() {
		return entities.ChangeOrder{}, ErrAlreadyResolved
	}

	now := time.Now().UTC()
	co.Status = decision
	co.ResolvedAt = &now
	resolved, err := u.changeOrders.Update(ctx, co)
	if err != nil {
		return entities.ChangeOrder{}, err
	}

	log.Printf("[changeorder][usecase] resolved job_id=%s change_order_id=%s decision=%s", co.JobID, co.ID, decision)
	u.workflow.emit(ctx, entities.Event{
		Type:        entities.EventChangeOrderResolved,
		JobID:       co.JobID,
		RecipientID: co.MechanicID,
		Context:     map[string]any{"change_order_id": co.ID, "decision": string(decision)},
	})
	return resolved, nil
}

func (u *ChangeOrderUseCase) ListForJob(ctx context.Context, jobID string) ([]entities.ChangeOrder, error) {
	jobID = strings.TrimSpace(jobID)
	if jobID == "" {
		return nil, ErrInvalidJobID
	}
	return u.changeOrders.ListByJobID(ctx, jobID)
}

// EffectiveTotal is the amount used for final settlement: the accepted
// estimate plus every approved change order. Rejected and pending change
// orders do not count.
func (u *ChangeOrderUseCase) EffectiveTotal(ctx context.Context, jobID string) (float64, error) {
	j, err := u.workflow.loadJob(ctx, jobID)
	if err != nil {
		return 0, err
	}
	orders, err := u.changeOrders.ListByJobID(ctx, j.ID)
	if err != nil {
		return 0, err
	}

	total := j.EstimatedCost
	for _, co := range orders {
		if co.Status == entities.ChangeOrderStatusApproved {
			total += co.Amount
		}
	}
	return round2(total), nil
}

func (u *ChangeOrderUseCase) loadChangeOrder(ctx context.Context, id string) (entities.ChangeOrder, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.ChangeOrder{}, ErrInvalidChangeOrderID
	}
	co, err := u.changeOrders.GetByID(ctx, id)
	if err != nil {
		return entities.ChangeOrder{}, err
	}
	if co.ID == "" {
		return entities.ChangeOrder{}, ErrChangeOrderNotFound
	}
	return co, nil
}
