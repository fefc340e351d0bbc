package interfaces

import (
	"context"
	"estimaciones_obra/internal/domain/entities"
)

// IEstimationRepository abstracts persistence for Estimation and its approval history.
//
// Not-found lookups return a zero Estimation and a nil error, as the use cases check ID == "".
// Writes conditioned on expectedVersion fail with ErrConcurrentModification when the stored
// version differs.

type IEstimationRepository interface {
	Create(ctx context.Context, e entities.Estimation) (entities.Estimation, error)
	GetByID(ctx context.Context, id string) (entities.Estimation, error)
	GetByFolio(ctx context.Context, projectID, folio string) (entities.Estimation, error)
	ListByProjectID(ctx context.Context, projectID string) ([]entities.Estimation, error)
	// Save persists e and appends entry as one atomic unit.
	Save(ctx context.Context, e entities.Estimation, expectedVersion int64, entry entities.ApprovalHistoryEntry) (entities.Estimation, error)
	UpdateActivation(ctx context.Context, id string, activation entities.RoleActivation, expectedVersion int64) (entities.Estimation, error)
}

// IApprovalHistoryRepository reads the append-only approval history.
type IApprovalHistoryRepository interface {
	// ListByEstimationID returns entries ordered by timestamp ascending.
	ListByEstimationID(ctx context.Context, estimationID string) ([]entities.ApprovalHistoryEntry, error)
}
