package request

// ChargeDepositRequest triggers the booking deposit charge. The token is the
// provider-side card/wallet token; it never transits as raw card data.
type ChargeDepositRequest struct {
	PaymentMethod string `json:"payment_method" binding:"required"`
	Token         string `json:"token" binding:"required"`
}
