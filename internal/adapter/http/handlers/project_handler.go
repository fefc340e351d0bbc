package handlers

import (
	"log"
	"net/http"

	request "estimaciones_obra/internal/adapter/http/dto/request"
	response "estimaciones_obra/internal/adapter/http/dto/response"
	"estimaciones_obra/internal/usecase"

	"github.com/gin-gonic/gin"
)

// ProjectHandler serves project administration and the project dashboard.
type ProjectHandler struct {
	projects    usecase.IProjectUseCase
	estimations usecase.IEstimationUseCase
}

func NewProjectHandler(projects usecase.IProjectUseCase, estimations usecase.IEstimationUseCase) *ProjectHandler {
	return &ProjectHandler{projects: projects, estimations: estimations}
}

// CreateProject godoc
// @Summary      Create project
// @Tags         projects
// @Accept       json
// @Produce      json
// @Param        body  body      request.CreateProjectRequest  true  "Project"
// @Success      201   {object}  response.ProjectResponse
// @Failure      400   {object}  pkg.HTTPError
// @Security     Bearer
// @Router       /projects [post]
func (h *ProjectHandler) CreateProject(c *gin.Context) {
	if _, ok := requireActor(c); !ok {
		return
	}
	var payload request.CreateProjectRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, errInvalidRequest)
		return
	}

	p, err := h.projects.CreateProject(c.Request.Context(), payload.Name, payload.Defaults())
	if err != nil {
		log.Printf("[project][handler] create failed err=%v", err)
		writeError(c, mapError(err))
		return
	}
	c.JSON(http.StatusCreated, response.FromProject(p))
}

// GetProject godoc
// @Summary      Get project
// @Tags         projects
// @Produce      json
// @Param        id   path      string  true  "Project ID"
// @Success      200  {object}  response.ProjectResponse
// @Failure      404  {object}  pkg.HTTPError
// @Security     Bearer
// @Router       /projects/{id} [get]
func (h *ProjectHandler) GetProject(c *gin.Context) {
	p, err := h.projects.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, mapError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromProject(p))
}

// UpdateDefaults godoc
// @Summary      Update the default role activation of a project (admin)
// @Tags         projects
// @Accept       json
// @Produce      json
// @Param        id    path      string                         true  "Project ID"
// @Param        body  body      request.RoleActivationRequest  true  "Activation"
// @Success      200   {object}  response.ProjectResponse
// @Failure      403   {object}  pkg.HTTPError
// @Security     Bearer
// @Router       /projects/{id}/defaults [patch]
func (h *ProjectHandler) UpdateDefaults(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	var payload request.RoleActivationRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, errInvalidRequest)
		return
	}

	p, err := h.projects.UpdateDefaults(c.Request.Context(), c.Param("id"), actor, payload.ToEntity())
	if err != nil {
		log.Printf("[project][handler] update defaults failed project_id=%s err=%v", c.Param("id"), err)
		writeError(c, mapError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromProject(p))
}

// GetSummary godoc
// @Summary      Project dashboard: estimations by status and delayed count
// @Tags         projects
// @Produce      json
// @Param        id   path      string  true  "Project ID"
// @Success      200  {object}  response.ProjectSummaryResponse
// @Security     Bearer
// @Router       /projects/{id}/summary [get]
func (h *ProjectHandler) GetSummary(c *gin.Context) {
	s, err := h.estimations.ProjectSummary(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, mapError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromProjectSummary(s))
}
