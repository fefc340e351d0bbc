package postgres

import (
	"context"
	"errors"

	"estimaciones_obra/internal/domain/entities"
	"estimaciones_obra/internal/usecase/interfaces"

	"gorm.io/gorm"
)

// Repositories groups the gorm-backed repositories sharing one connection pool.
type Repositories struct {
	Estimations *EstimationRepository
	History     *ApprovalHistoryRepository
	Projects    *ProjectRepository
	Payments    *BillingPaymentRepository
}

func NewRepositories(db *gorm.DB) Repositories {
	return Repositories{
		Estimations: &EstimationRepository{db: db},
		History:     &ApprovalHistoryRepository{db: db},
		Projects:    &ProjectRepository{db: db},
		Payments:    &BillingPaymentRepository{db: db},
	}
}

// EstimationRepository stores estimations and writes their history rows in the same
// transaction.
type EstimationRepository struct {
	db *gorm.DB
}

var _ interfaces.IEstimationRepository = (*EstimationRepository)(nil)

func (r *EstimationRepository) Create(ctx context.Context, e entities.Estimation) (entities.Estimation, error) {
	m := toEstimationModel(e)
	if err := r.db.WithContext(ctx).Create(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return entities.Estimation{}, interfaces.ErrAlreadyExists
		}
		return entities.Estimation{}, err
	}
	return e, nil
}

func (r *EstimationRepository) GetByID(ctx context.Context, id string) (entities.Estimation, error) {
	return r.take(ctx, "id = ?", id)
}

func (r *EstimationRepository) GetByFolio(ctx context.Context, projectID, folio string) (entities.Estimation, error) {
	return r.take(ctx, "project_id = ? AND folio = ?", projectID, folio)
}

func (r *EstimationRepository) take(ctx context.Context, query string, args ...any) (entities.Estimation, error) {
	var m estimationModel
	if err := r.db.WithContext(ctx).Where(query, args...).Take(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return entities.Estimation{}, nil
		}
		return entities.Estimation{}, err
	}
	return fromEstimationModel(m), nil
}

func (r *EstimationRepository) ListByProjectID(ctx context.Context, projectID string) ([]entities.Estimation, error) {
	var rows []estimationModel
	if err := r.db.WithContext(ctx).
		Where("project_id = ?", projectID).
		Order("created_at ASC").
		Find(&rows).Error; err != nil {
		return nil, err
	}
	out := make([]entities.Estimation, 0, len(rows))
	for _, m := range rows {
		out = append(out, fromEstimationModel(m))
	}
	return out, nil
}

func (r *EstimationRepository) Save(ctx context.Context, e entities.Estimation, expectedVersion int64, entry entities.ApprovalHistoryEntry) (entities.Estimation, error) {
	m := toEstimationModel(e)
	h := toHistoryModel(entry)

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&estimationModel{}).
			Where("id = ? AND version = ?", m.ID, expectedVersion).
			Select("*").
			Omit("id", "created_at").
			Updates(&m)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return interfaces.ErrConcurrentModification
		}
		return tx.Create(&h).Error
	})
	if err != nil {
		return entities.Estimation{}, err
	}
	return e, nil
}

func (r *EstimationRepository) UpdateActivation(ctx context.Context, id string, activation entities.RoleActivation, expectedVersion int64) (entities.Estimation, error) {
	var updated estimationModel
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&estimationModel{}).
			Where("id = ? AND version = ?", id, expectedVersion).
			Updates(map[string]any{
				"is_resident_active":       activation.ResidentActive,
				"is_superintendent_active": activation.SuperintendentActive,
				"is_leader_active":         activation.LeaderActive,
				"version":                  gorm.Expr("version + 1"),
				"updated_at":               gorm.Expr("NOW()"),
			})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return interfaces.ErrConcurrentModification
		}
		return tx.Where("id = ?", id).Take(&updated).Error
	})
	if err != nil {
		return entities.Estimation{}, err
	}
	return fromEstimationModel(updated), nil
}

type ApprovalHistoryRepository struct {
	db *gorm.DB
}

var _ interfaces.IApprovalHistoryRepository = (*ApprovalHistoryRepository)(nil)

func (r *ApprovalHistoryRepository) ListByEstimationID(ctx context.Context, estimationID string) ([]entities.ApprovalHistoryEntry, error) {
	var rows []historyModel
	if err := r.db.WithContext(ctx).
		Where("estimation_id = ?", estimationID).
		Order(`"timestamp" ASC, id ASC`).
		Find(&rows).Error; err != nil {
		return nil, err
	}
	out := make([]entities.ApprovalHistoryEntry, 0, len(rows))
	for _, m := range rows {
		out = append(out, fromHistoryModel(m))
	}
	return out, nil
}

type ProjectRepository struct {
	db *gorm.DB
}

var _ interfaces.IProjectRepository = (*ProjectRepository)(nil)

func (r *ProjectRepository) Create(ctx context.Context, p entities.Project) (entities.Project, error) {
	m := toProjectModel(p)
	if err := r.db.WithContext(ctx).Create(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return entities.Project{}, interfaces.ErrAlreadyExists
		}
		return entities.Project{}, err
	}
	return p, nil
}

func (r *ProjectRepository) GetByID(ctx context.Context, id string) (entities.Project, error) {
	var m projectModel
	if err := r.db.WithContext(ctx).Where("id = ?", id).Take(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return entities.Project{}, nil
		}
		return entities.Project{}, err
	}
	return fromProjectModel(m), nil
}

func (r *ProjectRepository) UpdateDefaults(ctx context.Context, id string, activation entities.RoleActivation) (entities.Project, error) {
	res := r.db.WithContext(ctx).
		Model(&projectModel{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"is_resident_active":       activation.ResidentActive,
			"is_superintendent_active": activation.SuperintendentActive,
			"is_leader_active":         activation.LeaderActive,
			"updated_at":               gorm.Expr("NOW()"),
		})
	if res.Error != nil {
		return entities.Project{}, res.Error
	}
	if res.RowsAffected == 0 {
		return entities.Project{}, nil
	}
	return r.GetByID(ctx, id)
}

type BillingPaymentRepository struct {
	db *gorm.DB
}

var _ interfaces.IBillingPaymentRepository = (*BillingPaymentRepository)(nil)

func (r *BillingPaymentRepository) Create(ctx context.Context, p entities.BillingPayment) (entities.BillingPayment, error) {
	m := toBillingPaymentModel(p)
	if err := r.db.WithContext(ctx).Create(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return entities.BillingPayment{}, interfaces.ErrAlreadyExists
		}
		return entities.BillingPayment{}, err
	}
	return p, nil
}

func (r *BillingPaymentRepository) GetByID(ctx context.Context, id string) (entities.BillingPayment, error) {
	var m billingPaymentModel
	if err := r.db.WithContext(ctx).Where("id = ?", id).Take(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return entities.BillingPayment{}, nil
		}
		return entities.BillingPayment{}, err
	}
	return fromBillingPaymentModel(m), nil
}

func (r *BillingPaymentRepository) ListByEstimationID(ctx context.Context, estimationID string) ([]entities.BillingPayment, error) {
	var rows []billingPaymentModel
	if err := r.db.WithContext(ctx).
		Where("estimation_id = ?", estimationID).
		Order("paid_on ASC").
		Find(&rows).Error; err != nil {
		return nil, err
	}
	out := make([]entities.BillingPayment, 0, len(rows))
	for _, m := range rows {
		out = append(out, fromBillingPaymentModel(m))
	}
	return out, nil
}
