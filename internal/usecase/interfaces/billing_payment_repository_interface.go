package interfaces

import (
	"context"
	"estimaciones_obra/internal/domain/entities"
)

// IBillingPaymentRepository abstracts persistence for BillingPayment.

type IBillingPaymentRepository interface {
	Create(ctx context.Context, p entities.BillingPayment) (entities.BillingPayment, error)
	GetByID(ctx context.Context, id string) (entities.BillingPayment, error)
	ListByEstimationID(ctx context.Context, estimationID string) ([]entities.BillingPayment, error)
}
