package response

import (
	"wrenchworks/internal/domain/entities"
)

// PaymentQuoteResponse itemizes what the customer pays at booking time.
type PaymentQuoteResponse struct {
	JobID         string  `json:"job_id"`
	PaymentMethod string  `json:"payment_method"`
	Deposit       float64 `json:"deposit"`
	ProcessingFee float64 `json:"processing_fee"`
	TotalDueNow   float64 `json:"total_due_now"`
}

func FromPaymentComputation(c entities.PaymentComputation) PaymentQuoteResponse {
	return PaymentQuoteResponse{
		JobID:         c.JobID,
		PaymentMethod: string(c.PaymentMethod),
		Deposit:       c.Deposit,
		ProcessingFee: c.ProcessingFee,
		TotalDueNow:   c.TotalDueNow,
	}
}
