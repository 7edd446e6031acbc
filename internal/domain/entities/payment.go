package entities

// PaymentMethod identifies how the customer pays the booking deposit.
// Processing-fee rates are configuration, keyed by this value.

type PaymentMethod string

const (
	PaymentMethodCard      PaymentMethod = "card"
	PaymentMethodGooglePay PaymentMethod = "google_pay"
	PaymentMethodApplePay  PaymentMethod = "apple_pay"
	PaymentMethodPayPal    PaymentMethod = "paypal"
)

// PaymentComputation is the derived quote presented at booking time. It is
// computed from config + payment method and never persisted on its own.
type PaymentComputation struct {
	JobID         string        `json:"job_id"`
	PaymentMethod PaymentMethod `json:"payment_method"`
	Deposit       float64       `json:"deposit"`
	ProcessingFee float64       `json:"processing_fee"`
	TotalDueNow   float64       `json:"total_due_now"`
}
