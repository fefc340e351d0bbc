package request

import "encoding/json"

// BillingPaymentCreateRequest is the payload of the pagos step.
//
// `mp_payload` is forwarded to Mercado Pago and stored as-is (raw JSON). A body without the
// envelope is treated as the payload itself.
type BillingPaymentCreateRequest struct {
	MPPayload json.RawMessage `json:"mp_payload"`
}
