package cache

import (
	"context"
	"log"
	"sync"

	"estimaciones_obra/internal/usecase/interfaces"
)

// LocalApprovalLocker serializes approvals inside a single process. It backs deployments
// without Redis.
type LocalApprovalLocker struct {
	mu   sync.Mutex
	held map[string]struct{}
}

var _ interfaces.IApprovalLocker = (*LocalApprovalLocker)(nil)

func NewLocalApprovalLocker() *LocalApprovalLocker {
	return &LocalApprovalLocker{held: map[string]struct{}{}}
}

func (l *LocalApprovalLocker) Acquire(_ context.Context, estimationID string) (func(), error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if _, busy := l.held[estimationID]; busy {
		log.Printf("[approval][lock] busy estimation_id=%s", estimationID)
		return nil, interfaces.ErrConcurrentModification
	}
	l.held[estimationID] = struct{}{}

	var once sync.Once
	return func() {
		once.Do(func() {
			l.mu.Lock()
			delete(l.held, estimationID)
			l.mu.Unlock()
		})
	}, nil
}
