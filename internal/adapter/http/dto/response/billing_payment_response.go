package response

import (
	"time"

	"estimaciones_obra/internal/domain/entities"
	"estimaciones_obra/internal/usecase"
)

type BillingPaymentResponse struct {
	PaymentID    string    `json:"payment_id"`
	EstimationID string    `json:"estimation_id"`
	Amount       float64   `json:"amount"`
	PaidBy       string    `json:"paid_by"`
	PaymentDate  time.Time `json:"payment_date"`
	Status       string    `json:"status"`

	MPPayloadRaw string                 `json:"mp_payload_raw,omitempty"`
	MPPayload    map[string]interface{} `json:"mp_payload,omitempty"`
}

func FromBillingPayment(p entities.BillingPayment) BillingPaymentResponse {
	return BillingPaymentResponse{
		PaymentID:    p.ID,
		EstimationID: p.EstimationID,
		Amount:       p.Amount,
		PaidBy:       p.PaidBy,
		PaymentDate:  p.Date,
		Status:       string(p.Status),
		MPPayloadRaw: string(p.MPPayloadRaw),
		MPPayload:    p.MPPayload,
	}
}

func FromBillingPayments(items []entities.BillingPayment) []BillingPaymentResponse {
	out := make([]BillingPaymentResponse, 0, len(items))
	for _, p := range items {
		out = append(out, FromBillingPayment(p))
	}
	return out
}

// PaymentResultResponse is returned by the pagos step: the payment and the resulting
// estimation state.
type PaymentResultResponse struct {
	Payment    BillingPaymentResponse `json:"payment"`
	Estimation EstimationResponse     `json:"estimation"`
	Warnings   []string               `json:"warnings,omitempty"`
}

func FromPaymentResult(r usecase.PaymentResult) PaymentResultResponse {
	return PaymentResultResponse{
		Payment:    FromBillingPayment(r.Payment),
		Estimation: FromEstimation(r.Outcome.Estimation),
		Warnings:   r.Outcome.Warnings,
	}
}
