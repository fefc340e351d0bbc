package handlers

import (
	"log"
	"net/http"

	request "estimaciones_obra/internal/adapter/http/dto/request"
	response "estimaciones_obra/internal/adapter/http/dto/response"
	"estimaciones_obra/internal/usecase"

	"github.com/gin-gonic/gin"
)

// EstimationHandler serves estimation registration, reads and the approval steps.
type EstimationHandler struct {
	estimations usecase.IEstimationUseCase
	approvals   usecase.IApprovalUseCase
}

func NewEstimationHandler(estimations usecase.IEstimationUseCase, approvals usecase.IApprovalUseCase) *EstimationHandler {
	return &EstimationHandler{estimations: estimations, approvals: approvals}
}

// CreateEstimation godoc
// @Summary      Register an estimation
// @Tags         estimations
// @Accept       json
// @Produce      json
// @Param        body  body      request.CreateEstimationRequest  true  "Estimation"
// @Success      201   {object}  response.EstimationResponse
// @Failure      400   {object}  pkg.HTTPError
// @Failure      403   {object}  pkg.HTTPError
// @Failure      409   {object}  pkg.HTTPError
// @Security     Bearer
// @Router       /estimations [post]
func (h *EstimationHandler) CreateEstimation(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	var payload request.CreateEstimationRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, errInvalidRequest)
		return
	}

	e, err := h.estimations.CreateEstimation(c.Request.Context(), actor, payload.ToInput())
	if err != nil {
		log.Printf("[estimation][handler] create failed project_id=%s folio=%s err=%v", payload.ProjectID, payload.Folio, err)
		writeError(c, mapError(err))
		return
	}
	c.JSON(http.StatusCreated, response.FromEstimation(e))
}

// GetEstimation godoc
// @Summary      Get estimation
// @Tags         estimations
// @Produce      json
// @Param        id   path      string  true  "Estimation ID"
// @Success      200  {object}  response.EstimationResponse
// @Failure      404  {object}  pkg.HTTPError
// @Security     Bearer
// @Router       /estimations/{id} [get]
func (h *EstimationHandler) GetEstimation(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	e, err := h.estimations.GetByID(c.Request.Context(), c.Param("id"), actor.Role)
	if err != nil {
		writeError(c, mapError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromEstimation(e))
}

// ListEstimations godoc
// @Summary      List the project's estimations visible to the caller's role
// @Tags         estimations
// @Produce      json
// @Param        project_id  query     string  true  "Project ID"
// @Success      200         {array}   response.EstimationResponse
// @Security     Bearer
// @Router       /estimations [get]
func (h *EstimationHandler) ListEstimations(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	items, err := h.estimations.ListByProject(c.Request.Context(), c.Query("project_id"), actor.Role)
	if err != nil {
		writeError(c, mapError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromEstimations(items))
}

// Approve godoc
// @Summary      Approve the current step of an estimation
// @Tags         estimations
// @Produce      json
// @Param        id   path      string  true  "Estimation ID"
// @Success      200  {object}  response.ApprovalOutcomeResponse
// @Failure      403  {object}  pkg.HTTPError
// @Failure      409  {object}  pkg.HTTPError
// @Security     Bearer
// @Router       /estimations/{id}/approve [post]
func (h *EstimationHandler) Approve(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	id := c.Param("id")
	log.Printf("[approval][handler] approve start estimation_id=%s role=%s", id, actor.Role)

	out, err := h.approvals.Approve(c.Request.Context(), id, actor)
	if err != nil {
		log.Printf("[approval][handler] approve failed estimation_id=%s role=%s err=%v", id, actor.Role, err)
		writeError(c, mapError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromApprovalOutcome(out))
}

// UploadInvoice godoc
// @Summary      Upload the invoice files (contratista)
// @Tags         estimations
// @Accept       json
// @Produce      json
// @Param        id    path      string                        true  "Estimation ID"
// @Param        body  body      request.InvoiceUploadRequest  true  "Invoice files"
// @Success      200   {object}  response.ApprovalOutcomeResponse
// @Failure      400   {object}  pkg.HTTPError
// @Security     Bearer
// @Router       /estimations/{id}/invoice [post]
func (h *EstimationHandler) UploadInvoice(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	var payload request.InvoiceUploadRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, errInvalidRequest)
		return
	}
	id := c.Param("id")

	out, err := h.approvals.UploadInvoice(c.Request.Context(), id, actor, payload.ToEntity())
	if err != nil {
		log.Printf("[approval][handler] invoice upload failed estimation_id=%s role=%s err=%v", id, actor.Role, err)
		writeError(c, mapError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromApprovalOutcome(out))
}

// UpdateActivation godoc
// @Summary      Change role activation of an estimation (admin)
// @Tags         estimations
// @Accept       json
// @Produce      json
// @Param        id    path      string                         true  "Estimation ID"
// @Param        body  body      request.RoleActivationRequest  true  "Activation"
// @Success      200   {object}  response.EstimationResponse
// @Failure      403   {object}  pkg.HTTPError
// @Failure      409   {object}  pkg.HTTPError
// @Security     Bearer
// @Router       /estimations/{id}/activation [patch]
func (h *EstimationHandler) UpdateActivation(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	var payload request.RoleActivationRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, errInvalidRequest)
		return
	}

	e, err := h.estimations.UpdateActivation(c.Request.Context(), c.Param("id"), actor, payload.ToEntity())
	if err != nil {
		writeError(c, mapError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromEstimation(e))
}

// GetHistory godoc
// @Summary      Approval history with delays and step approvers
// @Tags         estimations
// @Produce      json
// @Param        id   path      string  true  "Estimation ID"
// @Success      200  {object}  response.HistoryResponse
// @Failure      404  {object}  pkg.HTTPError
// @Security     Bearer
// @Router       /estimations/{id}/history [get]
func (h *EstimationHandler) GetHistory(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	hist, err := h.estimations.GetHistory(c.Request.Context(), c.Param("id"), actor.Role)
	if err != nil {
		writeError(c, mapError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromHistory(hist))
}
