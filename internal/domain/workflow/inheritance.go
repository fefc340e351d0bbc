package workflow

import (
	"time"

	"estimaciones_obra/internal/domain/entities"
)

// InheritedSignature attributes a skipped optional step to the approver who jumped over it.
type InheritedSignature struct {
	Role       entities.Role
	ApprovedAt time.Time
	SignedBy   string
}

// InheritedSignatures lists the optional steps skipped by the jump previous → next: every
// gated status whose ordinal lies strictly between the two and whose role is switched off.
//
// The result is ordered by status and empty when nothing was skipped. Existing signatures on
// the estimation are not consulted; [Apply] keeps a slot from being written twice.
func InheritedSignatures(
	previous, next entities.EstimationStatus,
	activation entities.RoleActivation,
	userName string,
	now time.Time,
) ([]InheritedSignature, error) {
	from, err := entities.IndexOf(previous)
	if err != nil {
		return nil, err
	}
	to, err := entities.IndexOf(next)
	if err != nil {
		return nil, err
	}

	var out []InheritedSignature
	for i := from + 1; i < to; i++ {
		s, _ := entities.StatusAt(i)
		role, gated := gatedBy[s]
		if !gated || activation.IsActive(role) {
			continue
		}
		out = append(out, InheritedSignature{Role: role, ApprovedAt: now, SignedBy: userName})
	}
	return out, nil
}
