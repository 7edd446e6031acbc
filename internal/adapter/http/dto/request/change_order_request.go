package request

// ChangeOrderRequest is the mechanic's mid-job additional-work request.
type ChangeOrderRequest struct {
	MechanicID  string  `json:"mechanic_id" binding:"required"`
	Description string  `json:"description" binding:"required"`
	Amount      float64 `json:"amount" binding:"required"`
}

// ResolveChangeOrderRequest carries the customer's single-shot decision.
type ResolveChangeOrderRequest struct {
	CustomerID string `json:"customer_id" binding:"required"`
	Decision   string `json:"decision" binding:"required"`
}
