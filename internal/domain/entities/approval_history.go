package entities

import "time"

// ApprovalHistoryEntry records one status change. Entries are written once and never
// updated or deleted.
//
// Storage model (DynamoDB):
//   - PK: estimation_id
//   - SK: sort_key (fixed-width UTC timestamp + "#" + entry id)
type ApprovalHistoryEntry struct {
	ID           string           `json:"id"`
	EstimationID string           `json:"estimation_id"`
	Status       EstimationStatus `json:"status"`
	Role         Role             `json:"role"`
	UserID       string           `json:"user_id"`
	UserName     string           `json:"user_name"`
	Timestamp    time.Time        `json:"timestamp"`
}
