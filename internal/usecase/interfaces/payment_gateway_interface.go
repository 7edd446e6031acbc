package interfaces

import (
	"context"
	"encoding/json"
)

// IPaymentGateway abstracts external payment providers (e.g. Mercado Pago).
//
// The workflow engine uses it to charge the booking deposit. The provider
// response payload is opaque to this layer; only the provider status decides
// whether the job's payment status becomes deposit_paid or payment_failed.
type IPaymentGateway interface {
	CreatePayment(ctx context.Context, requestPayload json.RawMessage) (providerPaymentID string, providerStatus string, providerResponse json.RawMessage, err error)
}
