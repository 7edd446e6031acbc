package entities

import "time"

// BidStatus represents the lifecycle of a mechanic's offer on a job.

type BidStatus string

const (
	BidStatusActive    BidStatus = "active"
	BidStatusWithdrawn BidStatus = "withdrawn"
	BidStatusAccepted  BidStatus = "accepted"
	BidStatusRejected  BidStatus = "rejected"
)

// Bid is a mechanic's priced offer on a job.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (job_id-index): job_id
//
// Invariants (enforced by the bidding use case under the job lock):
//   - at most one active bid per (job_id, mechanic_id) pair
//   - at most one accepted bid per job; accepting one rejects the siblings
type Bid struct {
	ID         string    `json:"id"`
	JobID      string    `json:"job_id"`
	MechanicID string    `json:"mechanic_id"`
	Amount     float64   `json:"amount"`
	Message    string    `json:"message,omitempty"`
	Status     BidStatus `json:"status"`
	CreatedAt  time.Time `json:"created_at"`
}

func (b Bid) Active() bool {
	return b.Status == BidStatusActive
}
