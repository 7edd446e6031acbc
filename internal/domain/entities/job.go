package entities

import "time"

// JobStatus represents the lifecycle of a repair job.
//
// Domain notes:
//   - The workflow engine is the source of truth for job state.
//   - Status only moves through AllowedTransitions (see transitions.go);
//     every mutation goes through the workflow use case.

type JobStatus string

const (
	JobStatusPosted           JobStatus = "posted"
	JobStatusBidding          JobStatus = "bidding"
	JobStatusAccepted         JobStatus = "accepted"
	JobStatusScheduled        JobStatus = "scheduled"
	JobStatusScheduleRejected JobStatus = "schedule_rejected"
	JobStatusConfirmed        JobStatus = "confirmed"
	JobStatusInProgress       JobStatus = "in_progress"
	JobStatusCompleted        JobStatus = "completed"
	JobStatusCancelled        JobStatus = "cancelled"
)

type Urgency string

const (
	UrgencyLow    Urgency = "low"
	UrgencyMedium Urgency = "medium"
	UrgencyHigh   Urgency = "high"
)

type ServiceType string

const (
	ServiceTypeMobile ServiceType = "mobile"
	ServiceTypeShop   ServiceType = "shop"
)

// Actor identifies which side of the marketplace performed an action.
type Actor string

const (
	ActorCustomer Actor = "customer"
	ActorMechanic Actor = "mechanic"
)

// JobPaymentStatus tracks the deposit charge outcome. It is orthogonal to the
// workflow status: a failed charge never moves the job backward or forward.
type JobPaymentStatus string

const (
	JobPaymentStatusUnpaid      JobPaymentStatus = "unpaid"
	JobPaymentStatusDepositPaid JobPaymentStatus = "deposit_paid"
	JobPaymentStatusFailed      JobPaymentStatus = "payment_failed"
)

// JobSchedule holds the agreed (or currently proposed) date/time. It is nil
// until the job first reaches scheduled, so unscheduled jobs cannot carry a
// stale date.
type JobSchedule struct {
	Date string `json:"date"`
	Time string `json:"time"`
}

// Job is the central marketplace entity persisted in DynamoDB.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (customer_id-index): customer_id
//   - GSI2 (mechanic_id-index): mechanic_id
//   - GSI3 (status-index): status
//
// Concurrency:
//   - Version is a monotonically increasing counter used as a conditional
//     update guard; it changes on every persisted mutation.
type Job struct {
	ID            string           `json:"id"`
	CustomerID    string           `json:"customer_id"`
	MechanicID    string           `json:"mechanic_id,omitempty"`
	Category      string           `json:"category"`
	Subcategory   string           `json:"subcategory,omitempty"`
	Description   string           `json:"description"`
	Urgency       Urgency          `json:"urgency"`
	ServiceType   ServiceType      `json:"service_type"`
	Location      string           `json:"location"`
	EstimatedCost float64          `json:"estimated_cost"`
	Status        JobStatus        `json:"status"`
	Schedule      *JobSchedule     `json:"schedule,omitempty"`
	PaymentStatus JobPaymentStatus `json:"payment_status"`
	Version       int64            `json:"version"`
	CreatedAt     time.Time        `json:"created_at"`
	UpdatedAt     time.Time        `json:"updated_at"`
}

// Terminal reports whether the job can never transition again.
func (j Job) Terminal() bool {
	return j.Status == JobStatusCompleted || j.Status == JobStatusCancelled
}

// OpenForBidding reports whether mechanics may still place bids. Callers use
// it as a cheap pre-check, but the bidding use case re-validates inside the
// per-job critical section.
func (j Job) OpenForBidding() bool {
	return (j.Status == JobStatusPosted || j.Status == JobStatusBidding) && j.MechanicID == ""
}
