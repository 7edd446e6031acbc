package response

import (
	"time"

	"wrenchworks/internal/domain/entities"
)

type ScheduleProposalResponse struct {
	JobID      string    `json:"job_id"`
	ProposedBy string    `json:"proposed_by"`
	Date       string    `json:"date"`
	Time       string    `json:"time"`
	Notes      string    `json:"notes,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
}

func FromScheduleProposal(p entities.ScheduleProposal) ScheduleProposalResponse {
	return ScheduleProposalResponse{
		JobID:      p.JobID,
		ProposedBy: string(p.ProposedBy),
		Date:       p.Date,
		Time:       p.Time,
		Notes:      p.Notes,
		CreatedAt:  p.CreatedAt,
	}
}
