package request

import "estimaciones_obra/internal/domain/entities"

// RoleActivationRequest carries the three optional-approver switches. All fields are required
// so that an omitted field is never read as "off".
type RoleActivationRequest struct {
	ResidentActive       *bool `json:"resident_active" binding:"required"`
	SuperintendentActive *bool `json:"superintendent_active" binding:"required"`
	LeaderActive         *bool `json:"leader_active" binding:"required"`
}

func (r RoleActivationRequest) ToEntity() entities.RoleActivation {
	return entities.RoleActivation{
		ResidentActive:       r.ResidentActive != nil && *r.ResidentActive,
		SuperintendentActive: r.SuperintendentActive != nil && *r.SuperintendentActive,
		LeaderActive:         r.LeaderActive != nil && *r.LeaderActive,
	}
}

type CreateProjectRequest struct {
	Name              string                 `json:"name" binding:"required"`
	DefaultActivation *RoleActivationRequest `json:"default_activation"`
}

// Defaults returns nil when the request leaves the project defaults unset.
func (r CreateProjectRequest) Defaults() *entities.RoleActivation {
	if r.DefaultActivation == nil {
		return nil
	}
	a := r.DefaultActivation.ToEntity()
	return &a
}
