package usecase

import (
	"context"
	"errors"
	"estimaciones_obra/internal/domain/entities"
	"estimaciones_obra/internal/domain/workflow"
	"estimaciones_obra/internal/usecase/interfaces"
	"log"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrEstimationNotFound      = errors.New("estimation not found")
	ErrEstimationAlreadyExists = errors.New("estimation folio already exists in project")
	ErrInvalidEstimationID     = errors.New("invalid estimation id")
	ErrInvalidFolio            = errors.New("invalid folio")
	ErrInvalidAmount           = errors.New("invalid estimation amount")
	ErrActivationForbidden     = errors.New("only admin can change role activation")
	ErrCreateForbidden         = errors.New("only contratista or admin can register estimations")
	ErrActivationLocked        = errors.New("role activation cannot change once auth_leader is reached")
)

// CreateEstimationInput is the command for registering a new estimation.
type CreateEstimationInput struct {
	ProjectID      string
	Folio          string
	ContractorName string
	Amount         float64
}

// StepView is one status of the chain as seen from an estimation.
type StepView struct {
	Status    entities.EstimationStatus
	Completed bool
	Approver  *workflow.Approver
}

// EstimationHistory is the audit trail of an estimation plus derived progress data.
type EstimationHistory struct {
	Estimation      entities.Estimation
	Entries         []workflow.TimedEntry
	Steps           []StepView
	ProgressPercent int
	Stalled         bool
}

// StatusSummary aggregates estimations sharing a status.
type StatusSummary struct {
	Count  int
	Amount float64
}

// ProjectSummary is the dashboard view of a project.
type ProjectSummary struct {
	ProjectID   string
	Total       int
	TotalAmount float64
	ByStatus    map[entities.EstimationStatus]StatusSummary
	Stalled     int
}

// IEstimationUseCase exposes estimation registration and read operations. Status changes go
// through IApprovalUseCase.
type IEstimationUseCase interface {
	CreateEstimation(ctx context.Context, actor entities.Actor, in CreateEstimationInput) (entities.Estimation, error)
	GetByID(ctx context.Context, id string, viewer entities.Role) (entities.Estimation, error)
	ListByProject(ctx context.Context, projectID string, viewer entities.Role) ([]entities.Estimation, error)
	UpdateActivation(ctx context.Context, id string, actor entities.Actor, activation entities.RoleActivation) (entities.Estimation, error)
	GetHistory(ctx context.Context, id string, viewer entities.Role) (EstimationHistory, error)
	ProjectSummary(ctx context.Context, projectID string) (ProjectSummary, error)
}

type EstimationUseCase struct {
	repo           interfaces.IEstimationRepository
	history        interfaces.IApprovalHistoryRepository
	projects       interfaces.IProjectRepository
	delayThreshold time.Duration
	now            func() time.Time
}

var _ IEstimationUseCase = (*EstimationUseCase)(nil)

func NewEstimationUseCase(
	repo interfaces.IEstimationRepository,
	history interfaces.IApprovalHistoryRepository,
	projects interfaces.IProjectRepository,
	delayThreshold time.Duration,
) *EstimationUseCase {
	if delayThreshold <= 0 {
		delayThreshold = workflow.DefaultDelayThreshold
	}
	return &EstimationUseCase{
		repo:           repo,
		history:        history,
		projects:       projects,
		delayThreshold: delayThreshold,
		now:            time.Now,
	}
}

// CreateEstimation registers an estimation with the project's default activation. The
// starting status comes from the transition resolver. Only the contratista or an admin may
// register.
func (u *EstimationUseCase) CreateEstimation(ctx context.Context, actor entities.Actor, in CreateEstimationInput) (entities.Estimation, error) {
	if actor.Role != entities.RoleContratista && actor.Role != entities.RoleAdmin {
		return entities.Estimation{}, ErrCreateForbidden
	}
	projectID := strings.TrimSpace(in.ProjectID)
	if projectID == "" {
		return entities.Estimation{}, ErrInvalidProjectID
	}
	folio := strings.TrimSpace(in.Folio)
	if folio == "" {
		return entities.Estimation{}, ErrInvalidFolio
	}
	if in.Amount <= 0 {
		return entities.Estimation{}, ErrInvalidAmount
	}

	project, err := u.projects.GetByID(ctx, projectID)
	if err != nil {
		return entities.Estimation{}, err
	}
	if project.ID == "" {
		return entities.Estimation{}, ErrProjectNotFound
	}

	// Enforce: folio unique per project.
	if existing, err := u.repo.GetByFolio(ctx, projectID, folio); err != nil {
		return entities.Estimation{}, err
	} else if existing.ID != "" {
		return entities.Estimation{}, ErrEstimationAlreadyExists
	}

	now := u.now().UTC()
	e := entities.Estimation{
		ID:             uuid.NewString(),
		Folio:          folio,
		ProjectID:      projectID,
		ContractorName: strings.TrimSpace(in.ContractorName),
		Amount:         in.Amount,
		Status:         workflow.InitialStatus(project.DefaultActivation),
		Activation:     project.DefaultActivation,
		Version:        1,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	created, err := u.repo.Create(ctx, e)
	if err != nil {
		if errors.Is(err, interfaces.ErrAlreadyExists) {
			return entities.Estimation{}, ErrEstimationAlreadyExists
		}
		return entities.Estimation{}, err
	}
	log.Printf("[estimation][usecase] created estimation_id=%s project_id=%s folio=%s status=%s by=%s", created.ID, projectID, folio, created.Status, actor.UserID)
	return created, nil
}

// GetByID returns the estimation when viewer may see it. Estimations hidden from viewer are
// reported as not found.
func (u *EstimationUseCase) GetByID(ctx context.Context, id string, viewer entities.Role) (entities.Estimation, error) {
	if !viewer.Valid() {
		return entities.Estimation{}, ErrInvalidActor
	}
	e, err := u.load(ctx, id)
	if err != nil {
		return entities.Estimation{}, err
	}
	if !workflow.VisibleTo(viewer, e) {
		log.Printf("[estimation][usecase] hidden from viewer estimation_id=%s status=%s viewer=%s", e.ID, e.Status, viewer)
		return entities.Estimation{}, ErrEstimationNotFound
	}
	return e, nil
}

func (u *EstimationUseCase) load(ctx context.Context, id string) (entities.Estimation, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Estimation{}, ErrInvalidEstimationID
	}

	e, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Estimation{}, err
	}
	if e.ID == "" {
		return entities.Estimation{}, ErrEstimationNotFound
	}
	return e, nil
}

// ListByProject returns the project's estimations visible to viewer.
func (u *EstimationUseCase) ListByProject(ctx context.Context, projectID string, viewer entities.Role) ([]entities.Estimation, error) {
	projectID = strings.TrimSpace(projectID)
	if projectID == "" {
		return nil, ErrInvalidProjectID
	}
	if !viewer.Valid() {
		return nil, ErrInvalidActor
	}

	all, err := u.repo.ListByProjectID(ctx, projectID)
	if err != nil {
		return nil, err
	}
	visible := make([]entities.Estimation, 0, len(all))
	for _, e := range all {
		if workflow.VisibleTo(viewer, e) {
			visible = append(visible, e)
		}
	}
	return visible, nil
}

// UpdateActivation replaces the estimation's role switches. Only future transitions see the
// change; signatures and history already recorded stay as they are.
func (u *EstimationUseCase) UpdateActivation(ctx context.Context, id string, actor entities.Actor, activation entities.RoleActivation) (entities.Estimation, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Estimation{}, ErrInvalidEstimationID
	}
	if actor.Role != entities.RoleAdmin {
		return entities.Estimation{}, ErrActivationForbidden
	}

	current, err := u.load(ctx, id)
	if err != nil {
		return entities.Estimation{}, err
	}
	if current.Status.AtOrPast(entities.StatusAuthLeader) {
		return entities.Estimation{}, ErrActivationLocked
	}

	updated, err := u.repo.UpdateActivation(ctx, id, activation, current.Version)
	if err != nil {
		return entities.Estimation{}, err
	}
	log.Printf("[estimation][usecase] activation updated estimation_id=%s by=%s resident=%t superintendent=%t leader=%t",
		id, actor.UserID, activation.ResidentActive, activation.SuperintendentActive, activation.LeaderActive)
	return updated, nil
}

// GetHistory returns the approval trail with delay flags and the approver of every step.
func (u *EstimationUseCase) GetHistory(ctx context.Context, id string, viewer entities.Role) (EstimationHistory, error) {
	e, err := u.GetByID(ctx, id, viewer)
	if err != nil {
		return EstimationHistory{}, err
	}

	entries, err := u.history.ListByEstimationID(ctx, e.ID)
	if err != nil {
		return EstimationHistory{}, err
	}
	workflow.SortHistory(entries)

	steps := make([]StepView, 0, len(entities.Statuses()))
	for _, s := range entities.Statuses() {
		step := StepView{Status: s, Completed: workflow.IsCompleted(e.Status, s)}
		if a, ok := workflow.ApproverOf(e, entries, s); ok {
			step.Approver = &a
		}
		steps = append(steps, step)
	}

	return EstimationHistory{
		Estimation:      e,
		Entries:         workflow.AnnotateDelays(e.CreatedAt, entries, u.delayThreshold),
		Steps:           steps,
		ProgressPercent: workflow.ProgressPercent(e.Status),
		Stalled:         workflow.IsStalled(e, entries, u.now().UTC(), u.delayThreshold),
	}, nil
}

// ProjectSummary aggregates a project's estimations by status. Stalled estimations are
// detected from the approval stamps, so no history is read.
func (u *EstimationUseCase) ProjectSummary(ctx context.Context, projectID string) (ProjectSummary, error) {
	projectID = strings.TrimSpace(projectID)
	if projectID == "" {
		return ProjectSummary{}, ErrInvalidProjectID
	}

	all, err := u.repo.ListByProjectID(ctx, projectID)
	if err != nil {
		return ProjectSummary{}, err
	}

	now := u.now().UTC()
	summary := ProjectSummary{
		ProjectID: projectID,
		ByStatus:  make(map[entities.EstimationStatus]StatusSummary, len(entities.Statuses())),
	}
	for _, e := range all {
		if !e.Status.Valid() {
			log.Printf("[estimation][usecase] corrupted status estimation_id=%s status=%q", e.ID, e.Status)
			return ProjectSummary{}, entities.ErrUnknownStatus
		}
		s := summary.ByStatus[e.Status]
		s.Count++
		s.Amount += e.Amount
		summary.ByStatus[e.Status] = s
		summary.Total++
		summary.TotalAmount += e.Amount

		if workflow.IsStalledByStamps(e, now, u.delayThreshold) {
			summary.Stalled++
		}
	}
	return summary, nil
}
