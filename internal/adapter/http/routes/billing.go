package routes

import (
	"estimaciones_obra/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const PathPayments = "/payments"

func addBillingRoutes(rg *gin.RouterGroup, h *handlers.BillingPaymentHandler) {
	payments := rg.Group(PathPayments)
	{
		payments.POST("/estimations/:estimation_id", h.PayEstimation)
		payments.GET("", h.ListPayments)
		payments.GET("/:id", h.GetPayment)
	}
}
