package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"wrenchworks/internal/domain/entities"
	"wrenchworks/internal/usecase/interfaces"
)

var (
	ErrPaymentFailed       = errors.New("payment failed")
	ErrInvalidPaymentToken = errors.New("invalid payment token")
	ErrJobNotPayable       = errors.New("job is not ready for deposit payment")
)

// IPaymentUseCase charges the booking deposit through the payment
// collaborator. The gateway is opaque to this layer: only success/failure is
// recorded, on the job's payment status, and a failed charge never advances
// the job's workflow status.

type IPaymentUseCase interface {
	QuoteDeposit(ctx context.Context, jobID string, method entities.PaymentMethod) (entities.PaymentComputation, error)
	ChargeDeposit(ctx context.Context, jobID string, method entities.PaymentMethod, token string) (entities.Job, error)
}

type PaymentUseCase struct {
	gateway  interfaces.IPaymentGateway
	pricing  PricingConfig
	workflow *WorkflowUseCase
}

var _ IPaymentUseCase = (*PaymentUseCase)(nil)

func NewPaymentUseCase(gateway interfaces.IPaymentGateway, pricing PricingConfig, workflow *WorkflowUseCase) *PaymentUseCase {
	return &PaymentUseCase{gateway: gateway, pricing: pricing, workflow: workflow}
}

func (u *PaymentUseCase) QuoteDeposit(ctx context.Context, jobID string, method entities.PaymentMethod) (entities.PaymentComputation, error) {
	j, err := u.workflow.loadJob(ctx, jobID)
	if err != nil {
		return entities.PaymentComputation{}, err
	}
	return u.pricing.Quote(j.ID, method)
}

// ChargeDeposit runs the deposit charge for a scheduled or confirmed job.
// Retrying after a success is a no-op returning the paid job.
func (u *PaymentUseCase) ChargeDeposit(ctx context.Context, jobID string, method entities.PaymentMethod, token string) (entities.Job, error) {
	token = strings.TrimSpace(token)
	if token == "" {
		return entities.Job{}, ErrInvalidPaymentToken
	}
	if u.gateway == nil {
		return entities.Job{}, errors.New("payment gateway not configured")
	}

	release := u.workflow.lockJob(strings.TrimSpace(jobID))
	defer release()

	j, err := u.workflow.loadJob(ctx, jobID)
	if err != nil {
		return entities.Job{}, err
	}
	if j.PaymentStatus == entities.JobPaymentStatusDepositPaid {
		return j, nil
	}
	if j.Status != entities.JobStatusScheduled && j.Status != entities.JobStatusConfirmed {
		return entities.Job{}, ErrJobNotPayable
	}

	comp, err := u.pricing.Quote(j.ID, method)
	if err != nil {
		return entities.Job{}, err
	}

	payload, err := json.Marshal(map[string]any{
		"transaction_amount": comp.TotalDueNow,
		"token":              token,
		"payment_method_id":  string(method),
		"installments":       1,
		"description":        fmt.Sprintf("Booking deposit for job %s", j.ID),
		"external_reference": j.ID,
	})
	if err != nil {
		return entities.Job{}, err
	}

	log.Printf("[payment][usecase] charge start job_id=%s method=%s total=%.2f", j.ID, method, comp.TotalDueNow)
	providerPaymentID, providerStatus, _, gwErr := u.gateway.CreatePayment(ctx, payload)
	if gwErr != nil || providerStatus != "approved" {
		j.PaymentStatus = entities.JobPaymentStatusFailed
		j.UpdatedAt = time.Now().UTC()
		if _, uerr := u.workflow.jobs.Update(ctx, j); uerr != nil {
			log.Printf("[payment][usecase] failed recording payment failure job_id=%s err=%v", j.ID, uerr)
		}
		log.Printf("[payment][usecase] charge failed job_id=%s provider_status=%s err=%v", j.ID, providerStatus, gwErr)
		if gwErr != nil {
			return entities.Job{}, fmt.Errorf("%w: %v", ErrPaymentFailed, gwErr)
		}
		return entities.Job{}, fmt.Errorf("%w: provider status %s", ErrPaymentFailed, providerStatus)
	}

	j.PaymentStatus = entities.JobPaymentStatusDepositPaid
	j.UpdatedAt = time.Now().UTC()
	updated, err := u.workflow.jobs.Update(ctx, j)
	if err != nil {
		return entities.Job{}, err
	}
	log.Printf("[payment][usecase] charge success job_id=%s provider_payment_id=%s", updated.ID, providerPaymentID)
	return updated, nil
}
