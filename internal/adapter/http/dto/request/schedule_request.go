package request

import (
	"strings"

	"wrenchworks/internal/domain/entities"
	"wrenchworks/internal/usecase"
)

// ScheduleProposalRequest is one side's offered date/time for the job.
type ScheduleProposalRequest struct {
	Actor string `json:"actor" binding:"required"`
	Date  string `json:"date" binding:"required"`
	Time  string `json:"time" binding:"required"`
	Notes string `json:"notes"`
}

func (r ScheduleProposalRequest) ToInput() usecase.ScheduleProposalInput {
	return usecase.ScheduleProposalInput{
		Actor: entities.Actor(strings.TrimSpace(r.Actor)),
		Date:  strings.TrimSpace(r.Date),
		Time:  strings.TrimSpace(r.Time),
		Notes: strings.TrimSpace(r.Notes),
	}
}

// AcceptScheduleRequest identifies the counterpart confirming the pending
// proposal.
type AcceptScheduleRequest struct {
	Actor string `json:"actor" binding:"required"`
}

// CounterProposalRequest is the optional counter-offer bundled with a
// rejection. The rejecting actor owns it, so it carries no actor of its own.
type CounterProposalRequest struct {
	Date  string `json:"date" binding:"required"`
	Time  string `json:"time" binding:"required"`
	Notes string `json:"notes"`
}

// RejectScheduleRequest declines the pending proposal, optionally bundling a
// counter-proposal so the negotiation stays in one round trip.
type RejectScheduleRequest struct {
	Actor   string                  `json:"actor" binding:"required"`
	Counter *CounterProposalRequest `json:"counter"`
}

func (r RejectScheduleRequest) CounterInput() *usecase.ScheduleProposalInput {
	if r.Counter == nil {
		return nil
	}
	return &usecase.ScheduleProposalInput{
		Date:  strings.TrimSpace(r.Counter.Date),
		Time:  strings.TrimSpace(r.Counter.Time),
		Notes: strings.TrimSpace(r.Counter.Notes),
	}
}
