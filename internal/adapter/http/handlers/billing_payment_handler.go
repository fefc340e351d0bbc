package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strings"

	response "estimaciones_obra/internal/adapter/http/dto/response"
	"estimaciones_obra/internal/usecase"

	"github.com/gin-gonic/gin"
)

// BillingPaymentHandler serves the pagos step and payment reads.
type BillingPaymentHandler struct {
	usecase  usecase.IBillingPaymentUseCase
	mockMode bool
}

// NewBillingPaymentHandler builds the handler. In mock mode an unreadable body falls back to
// an empty payload instead of failing the request.
func NewBillingPaymentHandler(uc usecase.IBillingPaymentUseCase, mockMode bool) *BillingPaymentHandler {
	return &BillingPaymentHandler{usecase: uc, mockMode: mockMode}
}

// PayEstimation godoc
// @Summary      Pay an estimation validated by finanzas (pagos)
// @Tags         payments
// @Accept       json
// @Produce      json
// @Param        estimation_id  path      string                               true   "Estimation ID"
// @Param        body           body      request.BillingPaymentCreateRequest  false  "Mercado Pago payload"
// @Success      200            {object}  response.PaymentResultResponse
// @Failure      400            {object}  pkg.HTTPError
// @Failure      409            {object}  pkg.HTTPError
// @Security     Bearer
// @Router       /payments/estimations/{estimation_id} [post]
func (h *BillingPaymentHandler) PayEstimation(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	estimationID := c.Param("estimation_id")
	log.Printf("[payment][handler] pay start estimation_id=%s", estimationID)

	mpPayload, err := readMPPayload(c)
	if err != nil {
		if h.mockMode {
			log.Printf("[payment][handler] payload invalid in mock mode; fallback to empty payload estimation_id=%s err=%v", estimationID, err)
			mpPayload = json.RawMessage("{}")
		} else {
			log.Printf("[payment][handler] invalid payload estimation_id=%s err=%v", estimationID, err)
			writeError(c, errInvalidRequest)
			return
		}
	}

	result, err := h.usecase.PayEstimation(c.Request.Context(), estimationID, actor, mpPayload)
	if err != nil {
		log.Printf("[payment][handler] pay failed estimation_id=%s err=%v", estimationID, err)
		writeError(c, mapError(err))
		return
	}
	log.Printf("[payment][handler] pay success estimation_id=%s payment_id=%s status=%s", estimationID, result.Payment.ID, result.Payment.Status)

	c.JSON(http.StatusOK, response.FromPaymentResult(result))
}

// GetPayment godoc
// @Summary      Get payment
// @Tags         payments
// @Produce      json
// @Param        id   path      string  true  "Payment ID"
// @Success      200  {object}  response.BillingPaymentResponse
// @Failure      404  {object}  pkg.HTTPError
// @Security     Bearer
// @Router       /payments/{id} [get]
func (h *BillingPaymentHandler) GetPayment(c *gin.Context) {
	p, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, mapError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromBillingPayment(p))
}

// ListPayments godoc
// @Summary      List payments of an estimation
// @Tags         payments
// @Produce      json
// @Param        estimation_id  query     string  true  "Estimation ID"
// @Success      200            {array}   response.BillingPaymentResponse
// @Security     Bearer
// @Router       /payments [get]
func (h *BillingPaymentHandler) ListPayments(c *gin.Context) {
	estimationID := c.Query("estimation_id")
	items, err := h.usecase.ListByEstimationID(c.Request.Context(), estimationID)
	if err != nil {
		log.Printf("[payment][handler] list failed estimation_id=%s err=%v", estimationID, err)
		writeError(c, mapError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromBillingPayments(items))
}

func readMPPayload(c *gin.Context) (json.RawMessage, error) {
	raw, err := c.GetRawData()
	if err != nil {
		return nil, err
	}
	if len(strings.TrimSpace(string(raw))) == 0 {
		return json.RawMessage("{}"), nil
	}
	if !json.Valid(raw) {
		return nil, errors.New("request body is not valid json")
	}

	var envelope map[string]json.RawMessage
	if err := json.Unmarshal(raw, &envelope); err == nil {
		if wrapped, ok := envelope["mp_payload"]; ok {
			if len(strings.TrimSpace(string(wrapped))) == 0 || strings.TrimSpace(string(wrapped)) == "null" {
				return nil, errors.New("mp_payload cannot be empty")
			}
			return wrapped, nil
		}
	}

	return json.RawMessage(raw), nil
}
