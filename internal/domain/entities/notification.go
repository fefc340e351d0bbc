package entities

import "time"

// Notification asks the recipient role to act on an estimation that reached Status.
type Notification struct {
	EstimationID  string           `json:"estimation_id"`
	Folio         string           `json:"folio"`
	ProjectID     string           `json:"project_id"`
	Status        EstimationStatus `json:"status"`
	RecipientRole Role             `json:"recipient_role"`
	OccurredAt    time.Time        `json:"occurred_at"`
}
