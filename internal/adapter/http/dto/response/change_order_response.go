package response

import (
	"time"

	"wrenchworks/internal/domain/entities"
)

type ChangeOrderResponse struct {
	ID          string     `json:"id"`
	JobID       string     `json:"job_id"`
	MechanicID  string     `json:"mechanic_id"`
	CustomerID  string     `json:"customer_id"`
	Description string     `json:"description"`
	Amount      float64    `json:"amount"`
	Status      string     `json:"status"`
	CreatedAt   time.Time  `json:"created_at"`
	ResolvedAt  *time.Time `json:"resolved_at,omitempty"`
}

func FromChangeOrder(co entities.ChangeOrder) ChangeOrderResponse {
	return ChangeOrderResponse{
		ID:          co.ID,
		JobID:       co.JobID,
		MechanicID:  co.MechanicID,
		CustomerID:  co.CustomerID,
		Description: co.Description,
		Amount:      co.Amount,
		Status:      string(co.Status),
		CreatedAt:   co.CreatedAt,
		ResolvedAt:  co.ResolvedAt,
	}
}

// ChangeOrderListResponse bundles the job's change orders with the effective
// total so billing clients need a single round trip.
type ChangeOrderListResponse struct {
	JobID          string                `json:"job_id"`
	ChangeOrders   []ChangeOrderResponse `json:"change_orders"`
	EffectiveTotal float64               `json:"effective_total"`
}

func FromChangeOrders(jobID string, orders []entities.ChangeOrder, effectiveTotal float64) ChangeOrderListResponse {
	out := make([]ChangeOrderResponse, 0, len(orders))
	for _, co := range orders {
		out = append(out, FromChangeOrder(co))
	}
	return ChangeOrderListResponse{
		JobID:          jobID,
		ChangeOrders:   out,
		EffectiveTotal: effectiveTotal,
	}
}
