package interfaces

import (
	"context"
	"estimaciones_obra/internal/domain/entities"
)

// IProjectRepository abstracts persistence for Project.

type IProjectRepository interface {
	Create(ctx context.Context, p entities.Project) (entities.Project, error)
	GetByID(ctx context.Context, id string) (entities.Project, error)
	UpdateDefaults(ctx context.Context, id string, activation entities.RoleActivation) (entities.Project, error)
}
