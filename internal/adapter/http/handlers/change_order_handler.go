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
	errInvalidChangeOrderPayload = pkg.NewDomainErrorSimple("INVALID_CHANGE_ORDER_INPUT", "Invalid change order payload", http.StatusBadRequest)
)

// ChangeOrderHandler handles HTTP requests for mid-job additional-work
// approval.

type ChangeOrderHandler struct {
	usecase usecase.IChangeOrderUseCase
}

func NewChangeOrderHandler(uc usecase.IChangeOrderUseCase) *ChangeOrderHandler {
	return &ChangeOrderHandler{usecase: uc}
}

// RequestChangeOrder raises an additional-work request on an in-progress job.
func (h *ChangeOrderHandler) RequestChangeOrder(c *gin.Context) {
	var payload request.ChangeOrderRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidChangeOrderPayload.HTTPStatus, errInvalidChangeOrderPayload.ToHTTPError())
		return
	}

	co, err := h.usecase.Request(c.Request.Context(), c.Param("job_id"), payload.MechanicID, payload.Description, payload.Amount)
	if err != nil {
		appErr := mapChangeOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[changeorder][handler] requested job_id=%s change_order_id=%s", co.JobID, co.ID)

	c.JSON(http.StatusCreated, response.FromChangeOrder(co))
}

// ResolveChangeOrder applies the customer's approve/reject decision.
func (h *ChangeOrderHandler) ResolveChangeOrder(c *gin.Context) {
	var payload request.ResolveChangeOrderRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidChangeOrderPayload.HTTPStatus, errInvalidChangeOrderPayload.ToHTTPError())
		return
	}

	co, err := h.usecase.Resolve(c.Request.Context(), c.Param("change_order_id"), payload.CustomerID, entities.ChangeOrderStatus(payload.Decision))
	if err != nil {
		appErr := mapChangeOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[changeorder][handler] resolved change_order_id=%s decision=%s", co.ID, co.Status)

	c.JSON(http.StatusOK, response.FromChangeOrder(co))
}

// ListChangeOrders returns the job's change orders plus the effective total.
func (h *ChangeOrderHandler) ListChangeOrders(c *gin.Context) {
	jobID := c.Param("job_id")

	orders, err := h.usecase.ListForJob(c.Request.Context(), jobID)
	if err != nil {
		appErr := mapChangeOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	total, err := h.usecase.EffectiveTotal(c.Request.Context(), jobID)
	if err != nil {
		appErr := mapChangeOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromChangeOrders(jobID, orders, total))
}

func mapChangeOrderError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidJobID),
		errors.Is(err, usecase.ErrInvalidChangeOrderID),
		errors.Is(err, usecase.ErrInvalidCustomerID),
		errors.Is(err, usecase.ErrInvalidMechanicID),
		errors.Is(err, usecase.ErrInvalidAmount),
		errors.Is(err, usecase.ErrInvalidDecision):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrJobNotFound):
		return pkg.NewDomainErrorSimple("JOB_NOT_FOUND", "Job not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrChangeOrderNotFound):
		return pkg.NewDomainErrorSimple("CHANGE_ORDER_NOT_FOUND", "Change order not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrNotOwner):
		return pkg.NewDomainErrorSimple("NOT_OWNER", "Actor does not own this resource", http.StatusForbidden)
	case errors.Is(err, usecase.ErrJobNotInProgress):
		return pkg.NewDomainErrorSimple("JOB_NOT_IN_PROGRESS", "Change orders require an in-progress job", http.StatusConflict)
	case errors.Is(err, usecase.ErrAlreadyResolved):
		return pkg.NewDomainErrorSimple("CHANGE_ORDER_ALREADY_RESOLVED", "Change order already resolved", http.StatusConflict)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
