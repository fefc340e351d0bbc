package usecase

import (
	"context"
	"errors"
	"estimaciones_obra/internal/domain/entities"
	"estimaciones_obra/internal/usecase/interfaces"
	"log"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrProjectNotFound    = errors.New("project not found")
	ErrInvalidProjectID   = errors.New("invalid project id")
	ErrInvalidProjectName = errors.New("invalid project name")
)

// IProjectUseCase manages projects and their default role activation.

type IProjectUseCase interface {
	CreateProject(ctx context.Context, name string, defaults *entities.RoleActivation) (entities.Project, error)
	GetByID(ctx context.Context, id string) (entities.Project, error)
	UpdateDefaults(ctx context.Context, id string, actor entities.Actor, defaults entities.RoleActivation) (entities.Project, error)
}

type ProjectUseCase struct {
	repo interfaces.IProjectRepository
}

var _ IProjectUseCase = (*ProjectUseCase)(nil)

func NewProjectUseCase(repo interfaces.IProjectRepository) *ProjectUseCase {
	return &ProjectUseCase{repo: repo}
}

// CreateProject stores a new project. A nil defaults value activates every optional role.
func (u *ProjectUseCase) CreateProject(ctx context.Context, name string, defaults *entities.RoleActivation) (entities.Project, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return entities.Project{}, ErrInvalidProjectName
	}

	activation := entities.AllRolesActive()
	if defaults != nil {
		activation = *defaults
	}

	now := time.Now().UTC()
	p := entities.Project{
		ID:                uuid.NewString(),
		Name:              name,
		DefaultActivation: activation,
		CreatedAt:         now,
		UpdatedAt:         now,
	}
	created, err := u.repo.Create(ctx, p)
	if err != nil {
		return entities.Project{}, err
	}
	log.Printf("[project][usecase] created project_id=%s resident=%t superintendent=%t leader=%t",
		created.ID, activation.ResidentActive, activation.SuperintendentActive, activation.LeaderActive)
	return created, nil
}

func (u *ProjectUseCase) GetByID(ctx context.Context, id string) (entities.Project, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Project{}, ErrInvalidProjectID
	}

	p, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Project{}, err
	}
	if p.ID == "" {
		return entities.Project{}, ErrProjectNotFound
	}
	return p, nil
}

// UpdateDefaults changes the activation copied into estimations created from now on.
// Existing estimations keep their own snapshot.
func (u *ProjectUseCase) UpdateDefaults(ctx context.Context, id string, actor entities.Actor, defaults entities.RoleActivation) (entities.Project, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Project{}, ErrInvalidProjectID
	}
	if actor.Role != entities.RoleAdmin {
		return entities.Project{}, ErrActivationForbidden
	}

	updated, err := u.repo.UpdateDefaults(ctx, id, defaults)
	if err != nil {
		return entities.Project{}, err
	}
	if updated.ID == "" {
		return entities.Project{}, ErrProjectNotFound
	}
	log.Printf("[project][usecase] defaults updated project_id=%s by=%s", id, actor.UserID)
	return updated, nil
}
