package response

import (
	"time"

	"wrenchworks/internal/domain/entities"
)

type BidResponse struct {
	ID         string    `json:"id"`
	JobID      string    `json:"job_id"`
	MechanicID string    `json:"mechanic_id"`
	Amount     float64   `json:"amount"`
	Message    string    `json:"message,omitempty"`
	Status     string    `json:"status"`
	CreatedAt  time.Time `json:"created_at"`
}

func FromBid(b entities.Bid) BidResponse {
	return BidResponse{
		ID:         b.ID,
		JobID:      b.JobID,
		MechanicID: b.MechanicID,
		Amount:     b.Amount,
		Message:    b.Message,
		Status:     string(b.Status),
		CreatedAt:  b.CreatedAt,
	}
}

func FromBids(bids []entities.Bid) []BidResponse {
	out := make([]BidResponse, 0, len(bids))
	for _, b := range bids {
		out = append(out, FromBid(b))
	}
	return out
}
