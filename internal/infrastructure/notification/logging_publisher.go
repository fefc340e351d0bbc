package notification

import (
	"context"
	"log"

	"estimaciones_obra/internal/domain/entities"
	"estimaciones_obra/internal/usecase/interfaces"
)

// LoggingPublisher is used when no broker is configured.
type LoggingPublisher struct{}

var _ interfaces.INotificationPublisher = LoggingPublisher{}

func (LoggingPublisher) Publish(_ context.Context, n entities.Notification) error {
	log.Printf("[notification][log] estimation_id=%s folio=%s status=%s recipient=%s",
		n.EstimationID, n.Folio, n.Status, n.RecipientRole)
	return nil
}
