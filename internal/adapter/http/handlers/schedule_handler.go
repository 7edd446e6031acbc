package handlers

import (
	"errors"
	"log"
	"net/http"

	request "wrenchworks/internal/adapter/http/dto/request"
	response "wrenchworks/internal/adapter/http/dto/response"
	"wrenchworks/internal/domain/entities"
	"wrenchworks/internal/usecase"
	"wrenchworks/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidSchedulePayload = pkg.NewDomainErrorSimple("INVALID_SCHEDULE_INPUT", "Invalid schedule payload", http.StatusBadRequest)
)

// ScheduleHandler handles HTTP requests for the schedule negotiation
// handshake.

type ScheduleHandler struct {
	usecase usecase.IScheduleUseCase
}

func NewScheduleHandler(uc usecase.IScheduleUseCase) *ScheduleHandler {
	return &ScheduleHandler{usecase: uc}
}

// Propose records a new (or superseding) date/time proposal for the job.
func (h *ScheduleHandler) Propose(c *gin.Context) {
	var payload request.ScheduleProposalRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidSchedulePayload.HTTPStatus, errInvalidSchedulePayload.ToHTTPError())
		return
	}

	job, err := h.usecase.Propose(c.Request.Context(), c.Param("job_id"), payload.ToInput())
	if err != nil {
		appErr := mapScheduleError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[schedule][handler] proposed job_id=%s by=%s", job.ID, payload.Actor)

	c.JSON(http.StatusOK, response.FromJob(job))
}

func (h *ScheduleHandler) Accept(c *gin.Context) {
	var payload request.AcceptScheduleRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidSchedulePayload.HTTPStatus, errInvalidSchedulePayload.ToHTTPError())
		return
	}

	job, err := h.usecase.Accept(c.Request.Context(), c.Param("job_id"), entities.Actor(payload.Actor))
	if err != nil {
		appErr := mapScheduleError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[schedule][handler] confirmed job_id=%s", job.ID)

	c.JSON(http.StatusOK, response.FromJob(job))
}

func (h *ScheduleHandler) Reject(c *gin.Context) {
	var payload request.RejectScheduleRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidSchedulePayload.HTTPStatus, errInvalidSchedulePayload.ToHTTPError())
		return
	}

	job, err := h.usecase.Reject(c.Request.Context(), c.Param("job_id"), entities.Actor(payload.Actor), payload.CounterInput())
	if err != nil {
		appErr := mapScheduleError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[schedule][handler] rejected job_id=%s counter=%t", job.ID, payload.Counter != nil)

	c.JSON(http.StatusOK, response.FromJob(job))
}

// GetPending returns the job's pending proposal, if any.
func (h *ScheduleHandler) GetPending(c *gin.Context) {
	p, err := h.usecase.GetPending(c.Request.Context(), c.Param("job_id"))
	if err != nil {
		appErr := mapScheduleError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromScheduleProposal(p))
}

func mapScheduleError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidJobID),
		errors.Is(err, usecase.ErrInvalidActor),
		errors.Is(err, usecase.ErrInvalidSchedule):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrJobNotFound):
		return pkg.NewDomainErrorSimple("JOB_NOT_FOUND", "Job not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrNoPendingProposal):
		return pkg.NewDomainErrorSimple("NO_PENDING_PROPOSAL", "No pending schedule proposal for this job", http.StatusConflict)
	case errors.Is(err, usecase.ErrWrongActor):
		return pkg.NewDomainErrorSimple("WRONG_ACTOR", "Proposer cannot act on their own proposal", http.StatusForbidden)
	case errors.Is(err, usecase.ErrJobNotNegotiable):
		return pkg.NewDomainErrorSimple("JOB_NOT_NEGOTIABLE", "Job state does not allow schedule negotiation", http.StatusConflict)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
