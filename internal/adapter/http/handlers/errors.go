package handlers

import (
	"errors"
	"log"
	"net/http"

	"estimaciones_obra/internal/adapter/http/middleware"
	"estimaciones_obra/internal/domain/entities"
	"estimaciones_obra/internal/domain/workflow"
	"estimaciones_obra/internal/usecase"
	"estimaciones_obra/internal/usecase/interfaces"
	"estimaciones_obra/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidRequest  = pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	errUnauthenticated = pkg.NewDomainErrorSimple("UNAUTHENTICATED", "Missing or invalid credentials", http.StatusUnauthorized)
)

// mapError translates use case and workflow errors into the HTTP error contract.
func mapError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, workflow.ErrInvalidTransition):
		return pkg.NewDomainErrorSimple("INVALID_TRANSITION", "You cannot act on this item right now", http.StatusForbidden)
	case errors.Is(err, usecase.ErrActivationForbidden):
		return pkg.NewDomainErrorSimple("FORBIDDEN", "Only admin can change role activation", http.StatusForbidden)
	case errors.Is(err, usecase.ErrCreateForbidden):
		return pkg.NewDomainErrorSimple("FORBIDDEN", "Only contratista or admin can register estimations", http.StatusForbidden)
	case errors.Is(err, workflow.ErrPaymentRequired):
		return pkg.NewDomainErrorSimple("PAYMENT_REQUIRED", "The pagos step is completed by paying the estimation", http.StatusConflict)
	case errors.Is(err, workflow.ErrTerminalState):
		return pkg.NewDomainErrorSimple("TERMINAL_STATE", "Estimation is already paid", http.StatusConflict)
	case errors.Is(err, interfaces.ErrConcurrentModification):
		return pkg.NewDomainErrorSimple("CONCURRENT_MODIFICATION", "Please refresh and retry", http.StatusConflict)
	case errors.Is(err, usecase.ErrEstimationAlreadyExists):
		return pkg.NewDomainErrorSimple("ESTIMATION_ALREADY_EXISTS", "Folio already exists in this project", http.StatusConflict)
	case errors.Is(err, usecase.ErrActivationLocked):
		return pkg.NewDomainErrorSimple("ACTIVATION_LOCKED", "Role activation can no longer change for this estimation", http.StatusConflict)
	case errors.Is(err, usecase.ErrEstimationNotReadyForPayment):
		return pkg.NewDomainErrorSimple("ESTIMATION_NOT_READY_FOR_PAYMENT", "Estimation not validated by finanzas", http.StatusConflict)
	case errors.Is(err, workflow.ErrMissingInvoiceFile):
		return pkg.NewDomainErrorSimple("MISSING_INVOICE_FILE", "Invoice requires both PDF and XML files", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidEstimationID), errors.Is(err, usecase.ErrInvalidFolio), errors.Is(err, usecase.ErrInvalidAmount),
		errors.Is(err, usecase.ErrInvalidProjectID), errors.Is(err, usecase.ErrInvalidProjectName), errors.Is(err, usecase.ErrInvalidActor),
		errors.Is(err, usecase.ErrInvalidPaymentID), errors.Is(err, usecase.ErrInvalidMPPayload), errors.Is(err, usecase.ErrPaymentGatewayBadRequest):
		return errInvalidRequest
	case errors.Is(err, usecase.ErrPaymentGatewayCustomerNotFound):
		return pkg.NewDomainErrorSimple("PAYMENT_PROVIDER_CUSTOMER_NOT_FOUND", "Payer not found for this Mercado Pago test context", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrPaymentGatewayInvalidUsers):
		return pkg.NewDomainErrorSimple("PAYMENT_PROVIDER_INVALID_USERS", "Invalid users involved between seller token and payer test user", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrPaymentGatewayUnauthorized):
		return pkg.NewDomainErrorSimple("PAYMENT_PROVIDER_UNAUTHORIZED", "Payment provider unauthorized", http.StatusUnauthorized)
	case errors.Is(err, usecase.ErrPaymentNotApproved):
		return pkg.NewDomainErrorSimple("PAYMENT_NOT_APPROVED", "Payment was not approved by the provider", http.StatusPaymentRequired)
	case errors.Is(err, usecase.ErrPaymentGatewayNotConfigured):
		return pkg.NewDomainErrorSimple("PAYMENT_GATEWAY_NOT_CONFIGURED", "Payment gateway not configured", http.StatusServiceUnavailable)
	case errors.Is(err, usecase.ErrEstimationNotFound):
		return pkg.NewDomainErrorSimple("ESTIMATION_NOT_FOUND", "Estimation not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrProjectNotFound):
		return pkg.NewDomainErrorSimple("PROJECT_NOT_FOUND", "Project not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrBillingPaymentNotFound):
		return pkg.NewDomainErrorSimple("PAYMENT_NOT_FOUND", "Payment not found", http.StatusNotFound)
	case errors.Is(err, entities.ErrUnknownStatus):
		log.Printf("[http][handler] unknown status reached the API err=%v", err)
		return pkg.NewDomainError("UNKNOWN_STATUS", "Estimation has an unknown status", err, http.StatusInternalServerError)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}

func writeError(c *gin.Context, appErr *pkg.AppError) {
	c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
}

// requireActor returns the caller or writes 401 when the identity middleware did not run.
func requireActor(c *gin.Context) (entities.Actor, bool) {
	actor, ok := middleware.ActorFrom(c)
	if !ok {
		writeError(c, errUnauthenticated)
		return entities.Actor{}, false
	}
	return actor, true
}
