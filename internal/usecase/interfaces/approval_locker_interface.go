package interfaces

import "context"

// IApprovalLocker serializes approvals on the same estimation across instances.
//
// Acquire returns ErrConcurrentModification when another approval holds the lock. The
// returned release func is safe to call once.
type IApprovalLocker interface {
	Acquire(ctx context.Context, estimationID string) (release func(), err error)
}
