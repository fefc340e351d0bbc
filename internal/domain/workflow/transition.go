package workflow

import (
	"fmt"
	"time"

	"estimaciones_obra/internal/domain/entities"
)

// Transition is one planned approval step.
type Transition struct {
	EstimationID string
	From         entities.EstimationStatus
	To           entities.EstimationStatus
	Actor        entities.Actor
	At           time.Time
	Inherited    []InheritedSignature
	Invoice      *entities.Invoice
}

// Plan checks that actor may act on e and resolves the resulting step.
//
// The contratista step requires invoice files and is only reachable through
// [PlanInvoiceUpload]; Plan reports [ErrMissingInvoiceFile] for it. The pagos step is only
// reachable through [PlanPayment]; Plan reports [ErrPaymentRequired] for it.
func Plan(e entities.Estimation, actor entities.Actor, now time.Time) (Transition, error) {
	if _, err := entities.IndexOf(e.Status); err != nil {
		return Transition{}, err
	}
	if e.Status.IsTerminal() {
		return Transition{}, ErrTerminalState
	}

	required, err := RequiredRole(e.Status, e.Activation)
	if err != nil {
		return Transition{}, err
	}
	if required == entities.RoleContratista && actor.Role == entities.RoleContratista {
		return Transition{}, ErrMissingInvoiceFile
	}
	if required == entities.RolePagos && actor.Role == entities.RolePagos {
		return Transition{}, ErrPaymentRequired
	}
	if actor.Role != required {
		return Transition{}, fmt.Errorf("%w: status %s waits on %s, got %s", ErrInvalidTransition, e.Status, required, actor.Role)
	}
	return plan(e, actor, now)
}

// PlanInvoiceUpload is the contratista step: both invoice files must be present and the
// estimation must be validated by compras. The acting role is always contratista.
func PlanInvoiceUpload(e entities.Estimation, actor entities.Actor, invoice entities.Invoice, now time.Time) (Transition, error) {
	if !invoice.Complete() {
		return Transition{}, ErrMissingInvoiceFile
	}
	if _, err := entities.IndexOf(e.Status); err != nil {
		return Transition{}, err
	}
	if e.Status.IsTerminal() {
		return Transition{}, ErrTerminalState
	}
	if e.Status != entities.StatusValidatedCompras {
		return Transition{}, fmt.Errorf("%w: invoice upload needs %s, estimation is %s", ErrInvalidTransition, entities.StatusValidatedCompras, e.Status)
	}

	actor.Role = entities.RoleContratista
	t, err := plan(e, actor, now)
	if err != nil {
		return Transition{}, err
	}
	t.Invoice = &invoice
	return t, nil
}

// PlanPayment is the pagos step. The caller must have an approved payment for e before the
// transition is applied.
func PlanPayment(e entities.Estimation, actor entities.Actor, now time.Time) (Transition, error) {
	if _, err := entities.IndexOf(e.Status); err != nil {
		return Transition{}, err
	}
	if e.Status.IsTerminal() {
		return Transition{}, ErrTerminalState
	}
	if e.Status != entities.StatusValidatedFinanzas {
		return Transition{}, fmt.Errorf("%w: payment needs %s, estimation is %s", ErrInvalidTransition, entities.StatusValidatedFinanzas, e.Status)
	}

	actor.Role = entities.RolePagos
	return plan(e, actor, now)
}

func plan(e entities.Estimation, actor entities.Actor, now time.Time) (Transition, error) {
	next, err := NextStatus(e.Status, e.Activation)
	if err != nil {
		return Transition{}, err
	}
	inherited, err := InheritedSignatures(e.Status, next, e.Activation, actor.UserName, now)
	if err != nil {
		return Transition{}, err
	}
	return Transition{
		EstimationID: e.ID,
		From:         e.Status,
		To:           next,
		Actor:        actor,
		At:           now,
		Inherited:    inherited,
	}, nil
}

// Apply returns e advanced by t together with the single history entry the step produces.
// Signature and timestamp slots that are already set are left untouched. The entry ID is
// assigned by the caller.
func Apply(e entities.Estimation, t Transition) (entities.Estimation, entities.ApprovalHistoryEntry) {
	at := t.At

	if slot := e.ApprovedAtOf(t.Actor.Role); slot != nil && *slot == nil {
		*slot = timePtr(at)
	}
	if sig := e.SignatureOf(t.Actor.Role); sig != nil && sig.SignedBy == nil {
		sig.SignedBy = stringPtr(t.Actor.UserName)
	}

	for _, in := range t.Inherited {
		sig := e.SignatureOf(in.Role)
		if sig == nil || sig.IsSigned() {
			continue
		}
		sig.ApprovedAt = timePtr(in.ApprovedAt)
		sig.SignedBy = stringPtr(in.SignedBy)
		sig.Inherited = true
	}

	if t.Invoice != nil {
		e.Invoice = *t.Invoice
	}

	e.Status = t.To
	e.UpdatedAt = at
	e.Version++

	entry := entities.ApprovalHistoryEntry{
		EstimationID: e.ID,
		Status:       t.To,
		Role:         t.Actor.Role,
		UserID:       t.Actor.UserID,
		UserName:     t.Actor.UserName,
		Timestamp:    at,
	}
	return e, entry
}

func timePtr(t time.Time) *time.Time {
	return &t
}

func stringPtr(s string) *string {
	return &s
}
