package workflow

import (
	"sort"
	"time"

	"estimaciones_obra/internal/domain/entities"
)

// DefaultDelayThreshold is the longest gap between two steps that is not reported as a delay.
const DefaultDelayThreshold = 24 * time.Hour

// TimedEntry is a history entry annotated with how long the step took.
type TimedEntry struct {
	entities.ApprovalHistoryEntry
	Elapsed time.Duration
	Delayed bool
}

// SortHistory orders entries by timestamp ascending, keeping insertion order for ties.
func SortHistory(entries []entities.ApprovalHistoryEntry) {
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Timestamp.Before(entries[j].Timestamp)
	})
}

// AnnotateDelays measures each entry against the previous one (the first against createdAt)
// and flags gaps longer than threshold. entries must be in ascending order.
func AnnotateDelays(createdAt time.Time, entries []entities.ApprovalHistoryEntry, threshold time.Duration) []TimedEntry {
	if threshold <= 0 {
		threshold = DefaultDelayThreshold
	}
	out := make([]TimedEntry, 0, len(entries))
	prev := createdAt
	for _, e := range entries {
		elapsed := e.Timestamp.Sub(prev)
		out = append(out, TimedEntry{ApprovalHistoryEntry: e, Elapsed: elapsed, Delayed: elapsed > threshold})
		prev = e.Timestamp
	}
	return out
}

// IsStalled reports whether a non-terminal estimation has waited longer than threshold since
// its last step (or since creation when it has no history).
func IsStalled(e entities.Estimation, entries []entities.ApprovalHistoryEntry, now time.Time, threshold time.Duration) bool {
	last := e.CreatedAt
	if n := len(entries); n > 0 {
		last = entries[n-1].Timestamp
	}
	return stalled(e, last, now, threshold)
}

// IsStalledByStamps is IsStalled measured from [LastStepAt], for callers that have not loaded
// the history.
func IsStalledByStamps(e entities.Estimation, now time.Time, threshold time.Duration) bool {
	return stalled(e, LastStepAt(e), now, threshold)
}

func stalled(e entities.Estimation, last, now time.Time, threshold time.Duration) bool {
	if e.Status.IsTerminal() {
		return false
	}
	if threshold <= 0 {
		threshold = DefaultDelayThreshold
	}
	return now.Sub(last) > threshold
}

var stampedRoles = []entities.Role{
	entities.RoleResident,
	entities.RoleSuperintendent,
	entities.RoleLeader,
	entities.RoleCompras,
	entities.RoleContratista,
	entities.RoleFinanzas,
	entities.RolePagos,
}

// LastStepAt is the latest approval timestamp stamped on e, inherited signatures included,
// or its creation time when no step has run.
func LastStepAt(e entities.Estimation) time.Time {
	last := e.CreatedAt
	for _, r := range stampedRoles {
		if at := *e.ApprovedAtOf(r); at != nil && at.After(last) {
			last = *at
		}
	}
	return last
}

// Approver is who is credited with reaching a status.
type Approver struct {
	UserName  string
	Role      entities.Role
	At        time.Time
	Inherited bool
}

// ApproverOf finds who brought e to status. The history entry wins; optional steps that were
// skipped fall back to the inherited signature on the estimation.
func ApproverOf(e entities.Estimation, entries []entities.ApprovalHistoryEntry, status entities.EstimationStatus) (Approver, bool) {
	for _, h := range entries {
		if h.Status == status {
			return Approver{UserName: h.UserName, Role: h.Role, At: h.Timestamp}, true
		}
	}

	role, gated := gatedBy[status]
	if !gated {
		return Approver{}, false
	}
	sig := e.SignatureOf(role)
	if sig == nil || sig.SignedBy == nil || sig.ApprovedAt == nil {
		return Approver{}, false
	}
	return Approver{UserName: *sig.SignedBy, Role: role, At: *sig.ApprovedAt, Inherited: sig.Inherited}, true
}

// IsCompleted reports whether step has been reached by an estimation in current.
func IsCompleted(current, step entities.EstimationStatus) bool {
	return current.AtOrPast(step)
}

// ProgressPercent is the share of the seven transitions already done.
func ProgressPercent(current entities.EstimationStatus) int {
	i, err := entities.IndexOf(current)
	if err != nil {
		return 0
	}
	last := len(entities.Statuses()) - 1
	return i * 100 / last
}

// VisibleTo reports whether role may see e in listings. admin and contratista see everything;
// other roles see estimations waiting on them and those at or past their own step.
func VisibleTo(role entities.Role, e entities.Estimation) bool {
	switch role {
	case entities.RoleAdmin, entities.RoleContratista:
		return true
	}
	if !e.Status.IsTerminal() {
		if required, err := RequiredRole(e.Status, e.Activation); err == nil && required == role {
			return true
		}
	}
	step, ok := StepOf(role)
	if !ok {
		return false
	}
	return e.Status.AtOrPast(step)
}
