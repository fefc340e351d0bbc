package entities

import "time"

// Project groups estimations and carries the default role activation copied into each new
// estimation.
type Project struct {
	ID                string         `json:"id"`
	Name              string         `json:"name"`
	DefaultActivation RoleActivation `json:"default_activation"`
	CreatedAt         time.Time      `json:"created_at"`
	UpdatedAt         time.Time      `json:"updated_at"`
}
