package response

import (
	"time"

	"estimaciones_obra/internal/domain/entities"
	"estimaciones_obra/internal/usecase"
)

type RoleActivationResponse struct {
	ResidentActive       bool `json:"resident_active"`
	SuperintendentActive bool `json:"superintendent_active"`
	LeaderActive         bool `json:"leader_active"`
}

type ProjectResponse struct {
	ID                string                 `json:"id"`
	Name              string                 `json:"name"`
	DefaultActivation RoleActivationResponse `json:"default_activation"`
	CreatedAt         time.Time              `json:"created_at"`
	UpdatedAt         time.Time              `json:"updated_at"`
}

func FromProject(p entities.Project) ProjectResponse {
	return ProjectResponse{
		ID:   p.ID,
		Name: p.Name,
		DefaultActivation: RoleActivationResponse{
			ResidentActive:       p.DefaultActivation.ResidentActive,
			SuperintendentActive: p.DefaultActivation.SuperintendentActive,
			LeaderActive:         p.DefaultActivation.LeaderActive,
		},
		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt,
	}
}

type StatusSummaryResponse struct {
	Status string  `json:"status"`
	Count  int     `json:"count"`
	Amount float64 `json:"amount"`
}

type ProjectSummaryResponse struct {
	ProjectID   string                  `json:"project_id"`
	Total       int                     `json:"total"`
	TotalAmount float64                 `json:"total_amount"`
	Delayed     int                     `json:"delayed"`
	ByStatus    []StatusSummaryResponse `json:"by_status"`
}

// FromProjectSummary lists every status in workflow order, including empty ones.
func FromProjectSummary(s usecase.ProjectSummary) ProjectSummaryResponse {
	res := ProjectSummaryResponse{
		ProjectID:   s.ProjectID,
		Total:       s.Total,
		TotalAmount: s.TotalAmount,
		Delayed:     s.Stalled,
		ByStatus:    make([]StatusSummaryResponse, 0, len(entities.Statuses())),
	}
	for _, st := range entities.Statuses() {
		agg := s.ByStatus[st]
		res.ByStatus = append(res.ByStatus, StatusSummaryResponse{Status: string(st), Count: agg.Count, Amount: agg.Amount})
	}
	return res
}
