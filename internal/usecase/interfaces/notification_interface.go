package interfaces

import (
	"context"
	"estimaciones_obra/internal/domain/entities"
)

// INotificationDispatcher hands a notification to the background worker without waiting
// for delivery. An error means the notification was not queued.
type INotificationDispatcher interface {
	Dispatch(ctx context.Context, n entities.Notification) error
}

// INotificationPublisher delivers one notification to the broker.
type INotificationPublisher interface {
	Publish(ctx context.Context, n entities.Notification) error
}
