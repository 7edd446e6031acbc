package handlers

import (
	"context"
	"errors"
	"log"
	"net/http"
	"strings"

	request "wrenchworks/internal/adapter/http/dto/request"
	response "wrenchworks/internal/adapter/http/dto/response"
	"wrenchworks/internal/domain/entities"
	"wrenchworks/internal/usecase"
	"wrenchworks/internal/usecase/interfaces"
	"wrenchworks/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidJobPayload = pkg.NewDomainErrorSimple("INVALID_JOB_INPUT", "Invalid job payload", http.StatusBadRequest)
)

// JobHandler handles HTTP requests for the job lifecycle: posting, the
// mechanic's start/complete actions and the customer's cancel.

type JobHandler struct {
	usecase usecase.IWorkflowUseCase
}

func NewJobHandler(uc usecase.IWorkflowUseCase) *JobHandler {
	return &JobHandler{usecase: uc}
}

// CreateJob posts a new job open for bidding.
func (h *JobHandler) CreateJob(c *gin.Context) {
	var payload request.CreateJobRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidJobPayload.HTTPStatus, errInvalidJobPayload.ToHTTPError())
		return
	}

	job, err := h.usecase.CreateJob(c.Request.Context(), payload.ToInput())
	if err != nil {
		appErr := mapWorkflowError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[job][handler] created job_id=%s customer_id=%s", job.ID, job.CustomerID)

	c.JSON(http.StatusCreated, response.FromJob(job))
}

func (h *JobHandler) GetJob(c *gin.Context) {
	job, err := h.usecase.GetJob(c.Request.Context(), c.Param("job_id"))
	if err != nil {
		appErr := mapWorkflowError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromJob(job))
}

// ListJobs filters by customer_id or mechanic_id query parameter.
func (h *JobHandler) ListJobs(c *gin.Context) {
	customerID := strings.TrimSpace(c.Query("customer_id"))
	mechanicID := strings.TrimSpace(c.Query("mechanic_id"))

	var jobs []entities.Job
	var err error
	switch {
	case customerID != "":
		jobs, err = h.usecase.ListByCustomer(c.Request.Context(), customerID)
	case mechanicID != "":
		jobs, err = h.usecase.ListByMechanic(c.Request.Context(), mechanicID)
	default:
		appErr := pkg.NewDomainErrorSimple("INVALID_REQUEST", "customer_id or mechanic_id query parameter is required", http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	if err != nil {
		appErr := mapWorkflowError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromJobs(jobs))
}

// ListCustomerJobs returns every job posted by the customer.
func (h *JobHandler) ListCustomerJobs(c *gin.Context) {
	jobs, err := h.usecase.ListByCustomer(c.Request.Context(), c.Param("customer_id"))
	if err != nil {
		appErr := mapWorkflowError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromJobs(jobs))
}

// ListMechanicJobs returns every job assigned to the mechanic.
func (h *JobHandler) ListMechanicJobs(c *gin.Context) {
	jobs, err := h.usecase.ListByMechanic(c.Request.Context(), c.Param("mechanic_id"))
	if err != nil {
		appErr := mapWorkflowError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromJobs(jobs))
}

// ListAvailable returns jobs mechanics can still bid on.
func (h *JobHandler) ListAvailable(c *gin.Context) {
	jobs, err := h.usecase.ListAvailable(c.Request.Context())
	if err != nil {
		appErr := mapWorkflowError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromJobs(jobs))
}

func (h *JobHandler) StartJob(c *gin.Context) {
	h.patchJobByMechanic(c, h.usecase.StartJob)
}

func (h *JobHandler) CompleteJob(c *gin.Context) {
	h.patchJobByMechanic(c, h.usecase.CompleteJob)
}

func (h *JobHandler) CancelJob(c *gin.Context) {
	var payload request.CancelJobRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidJobPayload.HTTPStatus, errInvalidJobPayload.ToHTTPError())
		return
	}

	job, err := h.usecase.CancelJob(c.Request.Context(), c.Param("job_id"), payload.CustomerID)
	if err != nil {
		appErr := mapWorkflowError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[job][handler] cancelled job_id=%s", job.ID)

	c.JSON(http.StatusOK, response.FromJob(job))
}

func (h *JobHandler) patchJobByMechanic(
	c *gin.Context,
	action func(ctx context.Context, jobID, mechanicID string) (entities.Job, error),
) {
	var payload request.JobActionRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidJobPayload.HTTPStatus, errInvalidJobPayload.ToHTTPError())
		return
	}

	job, err := action(c.Request.Context(), c.Param("job_id"), payload.MechanicID)
	if err != nil {
		appErr := mapWorkflowError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromJob(job))
}

func mapWorkflowError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidJobID),
		errors.Is(err, usecase.ErrInvalidCustomerID),
		errors.Is(err, usecase.ErrInvalidMechanicID),
		errors.Is(err, usecase.ErrInvalidJobInput),
		errors.Is(err, usecase.ErrInvalidAmount):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrJobNotFound):
		return pkg.NewDomainErrorSimple("JOB_NOT_FOUND", "Job not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrNotOwner):
		return pkg.NewDomainErrorSimple("NOT_OWNER", "Actor does not own this resource", http.StatusForbidden)
	case errors.Is(err, usecase.ErrInvalidTransition):
		return pkg.NewDomainErrorSimple("INVALID_TRANSITION", "Job state does not allow this action", http.StatusConflict)
	case errors.Is(err, interfaces.ErrVersionConflict):
		return pkg.NewDomainErrorSimple("CONFLICT", "Job was modified concurrently, retry", http.StatusConflict)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
