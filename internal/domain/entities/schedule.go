package entities

import "time"

// ScheduleProposal is the single in-flight date/time offer on a job.
//
// Storage model (DynamoDB):
//   - PK: job_id
//
// Using the job id as primary key is what enforces "one pending proposal per
// job": a new proposal from either side overwrites the previous one.
type ScheduleProposal struct {
	JobID      string    `json:"job_id"`
	ProposedBy Actor     `json:"proposed_by"`
	Date       string    `json:"date"`
	Time       string    `json:"time"`
	Notes      string    `json:"notes,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
}
