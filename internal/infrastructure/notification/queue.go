package notification

import (
	"context"
	"errors"
	"log"
	"sync"

	"estimaciones_obra/internal/domain/entities"
	"estimaciones_obra/internal/usecase/interfaces"
)

var (
	ErrQueueFull   = errors.New("notification queue is full")
	ErrQueueClosed = errors.New("notification queue is closed")
)

// Queue is a buffered INotificationDispatcher. Dispatch never blocks; Run drains the buffer
// into the publisher until the context is cancelled.
type Queue struct {
	publisher interfaces.INotificationPublisher
	items     chan entities.Notification

	mu     sync.RWMutex
	closed bool
}

var _ interfaces.INotificationDispatcher = (*Queue)(nil)

func NewQueue(publisher interfaces.INotificationPublisher, size int) *Queue {
	if size <= 0 {
		size = 1
	}
	return &Queue{
		publisher: publisher,
		items:     make(chan entities.Notification, size),
	}
}

func (q *Queue) Dispatch(_ context.Context, n entities.Notification) error {
	q.mu.RLock()
	defer q.mu.RUnlock()
	if q.closed {
		return ErrQueueClosed
	}
	select {
	case q.items <- n:
		return nil
	default:
		log.Printf("[notification][queue] full estimation_id=%s recipient=%s", n.EstimationID, n.RecipientRole)
		return ErrQueueFull
	}
}

// Run publishes queued notifications until ctx is done, then flushes what is left with a
// fresh context.
func (q *Queue) Run(ctx context.Context) {
	log.Printf("[notification][worker] started capacity=%d", cap(q.items))
	for {
		select {
		case <-ctx.Done():
			q.close()
			q.drain()
			log.Printf("[notification][worker] stopped")
			return
		case n := <-q.items:
			q.publish(ctx, n)
		}
	}
}

func (q *Queue) close() {
	q.mu.Lock()
	q.closed = true
	q.mu.Unlock()
}

func (q *Queue) drain() {
	for {
		select {
		case n := <-q.items:
			q.publish(context.Background(), n)
		default:
			return
		}
	}
}

func (q *Queue) publish(ctx context.Context, n entities.Notification) {
	if err := q.publisher.Publish(ctx, n); err != nil {
		log.Printf("[notification][worker] publish failed estimation_id=%s status=%s recipient=%s err=%v",
			n.EstimationID, n.Status, n.RecipientRole, err)
		return
	}
	log.Printf("[notification][worker] published estimation_id=%s status=%s recipient=%s",
		n.EstimationID, n.Status, n.RecipientRole)
}
