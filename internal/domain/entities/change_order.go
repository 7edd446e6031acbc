package entities

import "time"

// ChangeOrderStatus represents the customer's decision on additional work.

type ChangeOrderStatus string

const (
	ChangeOrderStatusPending  ChangeOrderStatus = "pending"
	ChangeOrderStatusApproved ChangeOrderStatus = "approved"
	ChangeOrderStatusRejected ChangeOrderStatus = "rejected"
)

// ChangeOrder is additional work a mechanic requests while a job is in
// progress. Approved amounts feed into the job's effective total; a resolved
// change order is immutable.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (job_id-index): job_id
type ChangeOrder struct {
	ID          string            `json:"id"`
	JobID       string            `json:"job_id"`
	MechanicID  string            `json:"mechanic_id"`
	CustomerID  string            `json:"customer_id"`
	Description string            `json:"description"`
	Amount      float64           `json:"amount"`
	Status      ChangeOrderStatus `json:"status"`
	CreatedAt   time.Time         `json:"created_at"`
	ResolvedAt  *time.Time        `json:"resolved_at,omitempty"`
}

func (c ChangeOrder) Resolved() bool {
	return c.Status != ChangeOrderStatusPending
}
