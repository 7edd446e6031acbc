package handlers

import (
	"errors"
	"log"
	"net/http"
	"strings"

	request "wrenchworks/internal/adapter/http/dto/request"
	response "wrenchworks/internal/adapter/http/dto/response"
	"wrenchworks/internal/domain/entities"
	"wrenchworks/internal/usecase"
	"wrenchworks/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidPaymentPayload = pkg.NewDomainErrorSimple("INVALID_PAYMENT_INPUT", "Invalid payment payload", http.StatusBadRequest)
)

// PaymentHandler handles HTTP requests for the booking deposit.

type PaymentHandler struct {
	usecase usecase.IPaymentUseCase
}

func NewPaymentHandler(uc usecase.IPaymentUseCase) *PaymentHandler {
	return &PaymentHandler{usecase: uc}
}

// QuoteDeposit itemizes deposit, processing fee and total for the method
// given in the "method" query parameter.
func (h *PaymentHandler) QuoteDeposit(c *gin.Context) {
	method := strings.TrimSpace(c.Query("method"))
	if method == "" {
		c.JSON(errInvalidPaymentPayload.HTTPStatus, errInvalidPaymentPayload.ToHTTPError())
		return
	}

	comp, err := h.usecase.QuoteDeposit(c.Request.Context(), c.Param("job_id"), entities.PaymentMethod(method))
	if err != nil {
		appErr := mapPaymentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromPaymentComputation(comp))
}

// ChargeDeposit runs the deposit charge and returns the job with its updated
// payment status.
func (h *PaymentHandler) ChargeDeposit(c *gin.Context) {
	jobID := c.Param("job_id")

	var payload request.ChargeDepositRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidPaymentPayload.HTTPStatus, errInvalidPaymentPayload.ToHTTPError())
		return
	}

	log.Printf("[payment][handler] charge start job_id=%s method=%s", jobID, payload.PaymentMethod)
	job, err := h.usecase.ChargeDeposit(c.Request.Context(), jobID, entities.PaymentMethod(payload.PaymentMethod), payload.Token)
	if err != nil {
		log.Printf("[payment][handler] charge failed job_id=%s err=%v", jobID, err)
		appErr := mapPaymentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[payment][handler] charge success job_id=%s payment_status=%s", job.ID, job.PaymentStatus)

	c.JSON(http.StatusOK, response.FromJob(job))
}

func mapPaymentError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidJobID),
		errors.Is(err, usecase.ErrInvalidPaymentMethod),
		errors.Is(err, usecase.ErrInvalidPaymentToken):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrJobNotFound):
		return pkg.NewDomainErrorSimple("JOB_NOT_FOUND", "Job not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrJobNotPayable):
		return pkg.NewDomainErrorSimple("JOB_NOT_PAYABLE", "Job is not ready for deposit payment", http.StatusConflict)
	case errors.Is(err, usecase.ErrPaymentFailed):
		return pkg.NewDomainErrorSimple("PAYMENT_FAILED", "Deposit charge was declined", http.StatusPaymentRequired)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
