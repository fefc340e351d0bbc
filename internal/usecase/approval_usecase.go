package usecase

import (
	"context"
	"errors"
	"estimaciones_obra/internal/domain/entities"
	"estimaciones_obra/internal/domain/workflow"
	"estimaciones_obra/internal/usecase/interfaces"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
)

var (
	ErrInvalidActor = errors.New("invalid actor")
)

var tracer = otel.Tracer("estimaciones_obra/usecase")

// ApprovalOutcome is the result of one approval step.
type ApprovalOutcome struct {
	Estimation     entities.Estimation
	PreviousStatus entities.EstimationStatus
	Entry          entities.ApprovalHistoryEntry
	// Inherited lists the skipped optional roles whose signatures the actor took over.
	Inherited []entities.Role
	// Warnings carries non-fatal problems such as a notification that could not be queued.
	Warnings []string
}

// IApprovalUseCase executes transitions on estimations.
type IApprovalUseCase interface {
	Approve(ctx context.Context, estimationID string, actor entities.Actor) (ApprovalOutcome, error)
	UploadInvoice(ctx context.Context, estimationID string, actor entities.Actor, invoice entities.Invoice) (ApprovalOutcome, error)
	SettlePayment(ctx context.Context, estimationID string, actor entities.Actor, pay PayFunc) (ApprovalOutcome, error)
}

// PayFunc settles the payment for e. It runs while the approval lock is held, against the
// state the transition will be applied to.
type PayFunc func(ctx context.Context, e entities.Estimation) error

type ApprovalUseCase struct {
	repo       interfaces.IEstimationRepository
	dispatcher interfaces.INotificationDispatcher
	locker     interfaces.IApprovalLocker
	now        func() time.Time
}

var _ IApprovalUseCase = (*ApprovalUseCase)(nil)

// NewApprovalUseCase wires the executor. locker may be nil, in which case the version check
// in the repository is the only guard against concurrent approvals.
func NewApprovalUseCase(
	repo interfaces.IEstimationRepository,
	dispatcher interfaces.INotificationDispatcher,
	locker interfaces.IApprovalLocker,
) *ApprovalUseCase {
	return &ApprovalUseCase{
		repo:       repo,
		dispatcher: dispatcher,
		locker:     locker,
		now:        time.Now,
	}
}

// Approve advances the estimation one step on behalf of actor. The acting role must be the
// one the current status waits on.
func (u *ApprovalUseCase) Approve(ctx context.Context, estimationID string, actor entities.Actor) (ApprovalOutcome, error) {
	return u.execute(ctx, "approve", estimationID, actor, func(_ context.Context, e entities.Estimation, at time.Time) (workflow.Transition, error) {
		return workflow.Plan(e, actor, at)
	})
}

// UploadInvoice is the contratista step. It attaches both invoice files and advances
// validated_compras to factura_subida.
func (u *ApprovalUseCase) UploadInvoice(ctx context.Context, estimationID string, actor entities.Actor, invoice entities.Invoice) (ApprovalOutcome, error) {
	if actor.Role != entities.RoleContratista {
		return ApprovalOutcome{}, fmt.Errorf("%w: invoice upload is a %s step, got %s", workflow.ErrInvalidTransition, entities.RoleContratista, actor.Role)
	}
	invoice.PDFRef = strings.TrimSpace(invoice.PDFRef)
	invoice.XMLRef = strings.TrimSpace(invoice.XMLRef)

	return u.execute(ctx, "upload_invoice", estimationID, actor, func(_ context.Context, e entities.Estimation, at time.Time) (workflow.Transition, error) {
		return workflow.PlanInvoiceUpload(e, actor, invoice, at)
	})
}

// SettlePayment is the pagos step: validated_finanzas to paid. pay is only called once the
// step is known to be valid, and the estimation is marked as paid only when pay succeeds.
func (u *ApprovalUseCase) SettlePayment(ctx context.Context, estimationID string, actor entities.Actor, pay PayFunc) (ApprovalOutcome, error) {
	if actor.Role != entities.RolePagos {
		return ApprovalOutcome{}, fmt.Errorf("%w: payment is a %s step, got %s", workflow.ErrInvalidTransition, entities.RolePagos, actor.Role)
	}

	return u.execute(ctx, "settle_payment", estimationID, actor, func(ctx context.Context, e entities.Estimation, at time.Time) (workflow.Transition, error) {
		t, err := workflow.PlanPayment(e, actor, at)
		if err != nil {
			return workflow.Transition{}, err
		}
		if err := pay(ctx, e); err != nil {
			return workflow.Transition{}, err
		}
		return t, nil
	})
}

type planFunc func(ctx context.Context, e entities.Estimation, at time.Time) (workflow.Transition, error)

func (u *ApprovalUseCase) execute(ctx context.Context, op, estimationID string, actor entities.Actor, planner planFunc) (ApprovalOutcome, error) {
	ctx, span := tracer.Start(ctx, "approval."+op)
	defer span.End()

	estimationID = strings.TrimSpace(estimationID)
	if estimationID == "" {
		return ApprovalOutcome{}, ErrInvalidEstimationID
	}
	if err := validateActor(actor); err != nil {
		return ApprovalOutcome{}, err
	}
	span.SetAttributes(
		attribute.String("estimation.id", estimationID),
		attribute.String("actor.role", string(actor.Role)),
	)

	if u.locker != nil {
		release, err := u.locker.Acquire(ctx, estimationID)
		if err != nil {
			span.SetStatus(codes.Error, err.Error())
			return ApprovalOutcome{}, err
		}
		defer release()
	}

	e, err := u.repo.GetByID(ctx, estimationID)
	if err != nil {
		span.SetStatus(codes.Error, err.Error())
		return ApprovalOutcome{}, err
	}
	if e.ID == "" {
		return ApprovalOutcome{}, ErrEstimationNotFound
	}

	t, err := planner(ctx, e, u.now().UTC())
	if err != nil {
		if errors.Is(err, entities.ErrUnknownStatus) {
			log.Printf("[approval][usecase] corrupted status estimation_id=%s status=%q", e.ID, e.Status)
		} else {
			log.Printf("[approval][usecase] rejected op=%s estimation_id=%s status=%s role=%s err=%v", op, e.ID, e.Status, actor.Role, err)
		}
		span.SetStatus(codes.Error, err.Error())
		return ApprovalOutcome{}, err
	}

	updated, entry := workflow.Apply(e, t)
	entry.ID = uuid.NewString()

	saved, err := u.repo.Save(ctx, updated, e.Version, entry)
	if err != nil {
		if errors.Is(err, interfaces.ErrConcurrentModification) {
			log.Printf("[approval][usecase] concurrent modification estimation_id=%s version=%d", e.ID, e.Version)
		}
		span.SetStatus(codes.Error, err.Error())
		return ApprovalOutcome{}, err
	}

	outcome := ApprovalOutcome{
		Estimation:     saved,
		PreviousStatus: t.From,
		Entry:          entry,
	}
	for _, in := range t.Inherited {
		outcome.Inherited = append(outcome.Inherited, in.Role)
	}
	log.Printf("[approval][usecase] %s estimation_id=%s from=%s to=%s by=%s role=%s inherited=%d",
		op, saved.ID, t.From, t.To, actor.UserID, actor.Role, len(outcome.Inherited))
	span.SetAttributes(attribute.String("estimation.status", string(t.To)))

	if w := u.notify(ctx, saved); w != "" {
		outcome.Warnings = append(outcome.Warnings, w)
	}
	return outcome, nil
}

// notify queues a notice for the role the estimation now waits on. Delivery problems never
// undo the transition.
func (u *ApprovalUseCase) notify(ctx context.Context, e entities.Estimation) string {
	if u.dispatcher == nil || e.Status.IsTerminal() {
		return ""
	}
	recipient, err := workflow.RequiredRole(e.Status, e.Activation)
	if err != nil {
		return ""
	}
	n := entities.Notification{
		EstimationID:  e.ID,
		Folio:         e.Folio,
		ProjectID:     e.ProjectID,
		Status:        e.Status,
		RecipientRole: recipient,
		OccurredAt:    e.UpdatedAt,
	}
	if err := u.dispatcher.Dispatch(ctx, n); err != nil {
		log.Printf("[approval][usecase] notification not queued estimation_id=%s recipient=%s err=%v", e.ID, recipient, err)
		return "notification to " + string(recipient) + " was not queued"
	}
	return ""
}

func validateActor(a entities.Actor) error {
	if strings.TrimSpace(a.UserID) == "" || strings.TrimSpace(a.UserName) == "" {
		return ErrInvalidActor
	}
	if !a.Role.Valid() {
		return ErrInvalidActor
	}
	return nil
}
