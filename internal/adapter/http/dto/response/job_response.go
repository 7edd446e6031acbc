package response

import (
	"time"

	"wrenchworks/internal/domain/entities"
)

type JobScheduleResponse struct {
	Date string `json:"date"`
	Time string `json:"time"`
}

type JobResponse struct {
	ID            string               `json:"id"`
	CustomerID    string               `json:"customer_id"`
	MechanicID    string               `json:"mechanic_id,omitempty"`
	Category      string               `json:"category"`
	Subcategory   string               `json:"subcategory,omitempty"`
	Description   string               `json:"description,omitempty"`
	Urgency       string               `json:"urgency"`
	ServiceType   string               `json:"service_type"`
	Location      string               `json:"location,omitempty"`
	EstimatedCost float64              `json:"estimated_cost"`
	Status        string               `json:"status"`
	Schedule      *JobScheduleResponse `json:"schedule,omitempty"`
	PaymentStatus string               `json:"payment_status"`
	CreatedAt     time.Time            `json:"created_at"`
	UpdatedAt     time.Time            `json:"updated_at"`
}

func FromJob(j entities.Job) JobResponse {
	resp := JobResponse{
		ID:            j.ID,
		CustomerID:    j.CustomerID,
		MechanicID:    j.MechanicID,
		Category:      j.Category,
		Subcategory:   j.Subcategory,
		Description:   j.Description,
		Urgency:       string(j.Urgency),
		ServiceType:   string(j.ServiceType),
		Location:      j.Location,
		EstimatedCost: j.EstimatedCost,
		Status:        string(j.Status),
		PaymentStatus: string(j.PaymentStatus),
		CreatedAt:     j.CreatedAt,
		UpdatedAt:     j.UpdatedAt,
	}
	if j.Schedule != nil {
		resp.Schedule = &JobScheduleResponse{Date: j.Schedule.Date, Time: j.Schedule.Time}
	}
	return resp
}

func FromJobs(jobs []entities.Job) []JobResponse {
	out := make([]JobResponse, 0, len(jobs))
	for _, j := range jobs {
		out = append(out, FromJob(j))
	}
	return out
}
