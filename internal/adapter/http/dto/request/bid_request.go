package request

// PlaceBidRequest is a mechanic's offer on an open job.
type PlaceBidRequest struct {
	MechanicID string  `json:"mechanic_id" binding:"required"`
	Amount     float64 `json:"amount" binding:"required"`
	Message    string  `json:"message"`
}

// WithdrawBidRequest identifies the mechanic pulling their bid.
type WithdrawBidRequest struct {
	MechanicID string `json:"mechanic_id" binding:"required"`
}

// AcceptBidRequest identifies the customer choosing the winning bid.
type AcceptBidRequest struct {
	CustomerID string `json:"customer_id" binding:"required"`
}
