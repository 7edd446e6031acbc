package request

import (
	"strings"

	"wrenchworks/internal/domain/entities"
	"wrenchworks/internal/usecase"
)

// CreateJobRequest is the payload a customer posts to open a job for bidding.
type CreateJobRequest struct {
	CustomerID    string  `json:"customer_id" binding:"required"`
	Category      string  `json:"category" binding:"required"`
	Subcategory   string  `json:"subcategory"`
	Description   string  `json:"description"`
	Urgency       string  `json:"urgency" binding:"required"`
	ServiceType   string  `json:"service_type" binding:"required"`
	Location      string  `json:"location"`
	EstimatedCost float64 `json:"estimated_cost"`
}

func (r CreateJobRequest) ToInput() usecase.CreateJobInput {
	return usecase.CreateJobInput{
		CustomerID:    strings.TrimSpace(r.CustomerID),
		Category:      strings.TrimSpace(r.Category),
		Subcategory:   strings.TrimSpace(r.Subcategory),
		Description:   strings.TrimSpace(r.Description),
		Urgency:       entities.Urgency(strings.TrimSpace(r.Urgency)),
		ServiceType:   entities.ServiceType(strings.TrimSpace(r.ServiceType)),
		Location:      strings.TrimSpace(r.Location),
		EstimatedCost: r.EstimatedCost,
	}
}

// JobActionRequest identifies the mechanic driving a start/complete action.
type JobActionRequest struct {
	MechanicID string `json:"mechanic_id" binding:"required"`
}

// CancelJobRequest identifies the customer cancelling their job.
type CancelJobRequest struct {
	CustomerID string `json:"customer_id" binding:"required"`
}
