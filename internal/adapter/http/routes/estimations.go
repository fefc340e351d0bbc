package routes

import (
	"estimaciones_obra/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathProjects    = "/projects"
	PathEstimations = "/estimations"
)

func addProjectRoutes(rg *gin.RouterGroup, h *handlers.ProjectHandler) {
	projects := rg.Group(PathProjects)
	{
		projects.POST("", h.CreateProject)
		projects.GET("/:id", h.GetProject)
		projects.PATCH("/:id/defaults", h.UpdateDefaults)
		projects.GET("/:id/summary", h.GetSummary)
	}
}

func addEstimationRoutes(rg *gin.RouterGroup, h *handlers.EstimationHandler) {
	estimations := rg.Group(PathEstimations)
	{
		estimations.POST("", h.CreateEstimation)
		estimations.GET("", h.ListEstimations)
		estimations.GET("/:id", h.GetEstimation)
		estimations.GET("/:id/history", h.GetHistory)
		estimations.POST("/:id/approve", h.Approve)
		estimations.POST("/:id/invoice", h.UploadInvoice)
		estimations.PATCH("/:id/activation", h.UpdateActivation)
	}
}
