package entities

import (
	"encoding/json"
	"time"
)

// PaymentStatus represents the payment processing outcome.
//
// Payments are only created for estimations validated by finanzas; a denied status is kept
// for provider responses that are persisted for audit.

type PaymentStatus string

const (
	PaymentStatusPending  PaymentStatus = "pending"
	PaymentStatusApproved PaymentStatus = "approved"
	PaymentStatusDenied   PaymentStatus = "denied"
)

// BillingPayment is the payment issued at the pagos step of an estimation.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (estimation_id-index): estimation_id
//
// MercadoPago payload:
//   - MPPayloadRaw keeps the original body (JSON) for traceability/audit.
//   - MPPayload is an optional parsed representation, useful for querying/debugging.
//     (We persist both because different MP integrations may vary in schema.)

type BillingPayment struct {
	ID           string        `json:"id"`
	EstimationID string        `json:"estimation_id"`
	Amount       float64       `json:"amount"`
	PaidBy       string        `json:"paid_by"`
	Date         time.Time     `json:"date"`
	Status       PaymentStatus `json:"status"`

	MPPayloadRaw json.RawMessage        `json:"mp_payload_raw,omitempty"`
	MPPayload    map[string]interface{} `json:"mp_payload,omitempty"`
}
