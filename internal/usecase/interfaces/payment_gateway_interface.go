package interfaces

import (
	"context"
	"encoding/json"
)

// IPaymentGateway abstracts external payment providers (e.g. Mercado Pago).
//
// The pagos step uses it to create the payment and keeps the provider response payload
// for traceability. Calls that share an idempotencyKey charge at most once on the provider
// side.
type IPaymentGateway interface {
	CreatePayment(ctx context.Context, idempotencyKey string, requestPayload json.RawMessage) (providerPaymentID string, providerStatus string, providerResponse json.RawMessage, err error)
}
