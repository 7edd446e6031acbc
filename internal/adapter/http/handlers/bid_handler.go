package handlers

import (
	"errors"
	"log"
	"net/http"

	request "wrenchworks/internal/adapter/http/dto/request"
	response "wrenchworks/internal/adapter/http/dto/response"
	"wrenchworks/internal/usecase"
	"wrenchworks/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidBidPayload = pkg.NewDomainErrorSimple("INVALID_BID_INPUT", "Invalid bid payload", http.StatusBadRequest)
)

// BidHandler handles HTTP requests for the bidding protocol.

type BidHandler struct {
	usecase usecase.IBiddingUseCase
}

func NewBidHandler(uc usecase.IBiddingUseCase) *BidHandler {
	return &BidHandler{usecase: uc}
}

// PlaceBid records a mechanic's offer on a job.
func (h *BidHandler) PlaceBid(c *gin.Context) {
	var payload request.PlaceBidRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidBidPayload.HTTPStatus, errInvalidBidPayload.ToHTTPError())
		return
	}

	bid, err := h.usecase.PlaceBid(c.Request.Context(), c.Param("job_id"), payload.MechanicID, payload.Amount, payload.Message)
	if err != nil {
		appErr := mapBidError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[bid][handler] placed job_id=%s bid_id=%s", bid.JobID, bid.ID)

	c.JSON(http.StatusCreated, response.FromBid(bid))
}

func (h *BidHandler) ListBids(c *gin.Context) {
	bids, err := h.usecase.ListForJob(c.Request.Context(), c.Param("job_id"))
	if err != nil {
		appErr := mapBidError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromBids(bids))
}

func (h *BidHandler) WithdrawBid(c *gin.Context) {
	var payload request.WithdrawBidRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidBidPayload.HTTPStatus, errInvalidBidPayload.ToHTTPError())
		return
	}

	bid, err := h.usecase.WithdrawBid(c.Request.Context(), c.Param("bid_id"), payload.MechanicID)
	if err != nil {
		appErr := mapBidError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromBid(bid))
}

func (h *BidHandler) AcceptBid(c *gin.Context) {
	var payload request.AcceptBidRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidBidPayload.HTTPStatus, errInvalidBidPayload.ToHTTPError())
		return
	}

	bid, err := h.usecase.AcceptBid(c.Request.Context(), c.Param("bid_id"), payload.CustomerID)
	if err != nil {
		appErr := mapBidError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[bid][handler] accepted job_id=%s bid_id=%s", bid.JobID, bid.ID)

	c.JSON(http.StatusOK, response.FromBid(bid))
}

func mapBidError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidJobID),
		errors.Is(err, usecase.ErrInvalidBidID),
		errors.Is(err, usecase.ErrInvalidCustomerID),
		errors.Is(err, usecase.ErrInvalidMechanicID),
		errors.Is(err, usecase.ErrInvalidAmount):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrJobNotFound):
		return pkg.NewDomainErrorSimple("JOB_NOT_FOUND", "Job not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrBidNotFound):
		return pkg.NewDomainErrorSimple("BID_NOT_FOUND", "Bid not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrNotOwner):
		return pkg.NewDomainErrorSimple("NOT_OWNER", "Actor does not own this resource", http.StatusForbidden)
	case errors.Is(err, usecase.ErrDuplicateBid):
		return pkg.NewDomainErrorSimple("DUPLICATE_BID", "Mechanic already has an active bid on this job", http.StatusConflict)
	case errors.Is(err, usecase.ErrBidNotActive):
		return pkg.NewDomainErrorSimple("BID_NOT_ACTIVE", "Bid is no longer active", http.StatusConflict)
	case errors.Is(err, usecase.ErrJobNotBiddable):
		return pkg.NewDomainErrorSimple("JOB_NOT_BIDDABLE", "Job is not open for bidding", http.StatusConflict)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
