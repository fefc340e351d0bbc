package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"estimaciones_obra/internal/domain/entities"
	"estimaciones_obra/internal/domain/workflow"
	"estimaciones_obra/internal/usecase/interfaces"
	"fmt"
	"log"
	"strings"
	"time"
)

var (
	ErrBillingPaymentNotFound         = errors.New("billing payment not found")
	ErrInvalidPaymentID               = errors.New("invalid payment id")
	ErrInvalidMPPayload               = errors.New("invalid mercado pago payload")
	ErrEstimationNotReadyForPayment   = errors.New("estimation not validated by finanzas")
	ErrPaymentNotApproved             = errors.New("payment was not approved by the provider")
	ErrPaymentGatewayNotConfigured    = errors.New("payment gateway not configured")
	ErrPaymentGatewayBadRequest       = errors.New("payment gateway bad request")
	ErrPaymentGatewayUnauthorized     = errors.New("payment gateway unauthorized")
	ErrPaymentGatewayInvalidUsers     = errors.New("payment gateway invalid users involved")
	ErrPaymentGatewayCustomerNotFound = errors.New("payment gateway customer not found")
)

// PaymentOptions tunes payload validation for the configured gateway.
type PaymentOptions struct {
	// MockMode relaxes payload validation; the gateway answers without calling the provider.
	MockMode bool
	// SandboxMode is set when the access token is a TEST- credential.
	SandboxMode     bool
	TestPayerEmail  string
	TestPayerUserID string
}

// PaymentResult is the stored payment plus the approval step it triggered.
type PaymentResult struct {
	Payment entities.BillingPayment
	Outcome ApprovalOutcome
}

// IBillingPaymentUseCase is the pagos step: pay the contractor through the gateway, record the
// payment and mark the estimation as paid.
type IBillingPaymentUseCase interface {
	PayEstimation(ctx context.Context, estimationID string, actor entities.Actor, mpPayload json.RawMessage) (PaymentResult, error)
	GetByID(ctx context.Context, id string) (entities.BillingPayment, error)
	ListByEstimationID(ctx context.Context, estimationID string) ([]entities.BillingPayment, error)
}

type BillingPaymentUseCase struct {
	repo        interfaces.IBillingPaymentRepository
	estimations interfaces.IEstimationRepository
	gateway     interfaces.IPaymentGateway
	approvals   IApprovalUseCase
	opts        PaymentOptions
}

var _ IBillingPaymentUseCase = (*BillingPaymentUseCase)(nil)

func NewBillingPaymentUseCase(
	repo interfaces.IBillingPaymentRepository,
	estimations interfaces.IEstimationRepository,
	gateway interfaces.IPaymentGateway,
	approvals IApprovalUseCase,
	opts PaymentOptions,
) *BillingPaymentUseCase {
	return &BillingPaymentUseCase{
		repo:        repo,
		estimations: estimations,
		gateway:     gateway,
		approvals:   approvals,
		opts:        opts,
	}
}

// PayEstimation charges the estimation amount and advances validated_finanzas to paid. The
// charge runs under the approval lock, so concurrent requests for one estimation charge at
// most once. A previously approved payment is reused so a failed status update can be
// retried without charging twice.
func (u *BillingPaymentUseCase) PayEstimation(ctx context.Context, estimationID string, actor entities.Actor, mpPayload json.RawMessage) (PaymentResult, error) {
	log.Printf("[payment][usecase] pay start raw_estimation_id=%q payload_len=%d", estimationID, len(mpPayload))
	estimationID = strings.TrimSpace(estimationID)
	if estimationID == "" {
		return PaymentResult{}, ErrInvalidEstimationID
	}
	if actor.Role != entities.RolePagos {
		return PaymentResult{}, fmt.Errorf("%w: payment is a %s step, got %s", workflow.ErrInvalidTransition, entities.RolePagos, actor.Role)
	}
	payload, err := u.normalizePayload(mpPayload)
	if err != nil {
		log.Printf("[payment][usecase] invalid payload estimation_id=%s", estimationID)
		return PaymentResult{}, err
	}
	if u.gateway == nil {
		log.Printf("[payment][usecase] gateway not configured estimation_id=%s", estimationID)
		return PaymentResult{}, ErrPaymentGatewayNotConfigured
	}

	est, err := u.estimations.GetByID(ctx, estimationID)
	if err != nil {
		log.Printf("[payment][usecase] failed loading estimation estimation_id=%s err=%v", estimationID, err)
		return PaymentResult{}, err
	}
	if est.ID == "" {
		return PaymentResult{}, ErrEstimationNotFound
	}
	if est.Status.IsTerminal() {
		return PaymentResult{}, workflow.ErrTerminalState
	}
	if est.Status != entities.StatusValidatedFinanzas {
		log.Printf("[payment][usecase] estimation not ready estimation_id=%s status=%s", estimationID, est.Status)
		return PaymentResult{}, ErrEstimationNotReadyForPayment
	}

	var payment entities.BillingPayment
	outcome, err := u.approvals.SettlePayment(ctx, estimationID, actor, func(ctx context.Context, e entities.Estimation) error {
		p, err := u.settle(ctx, e, actor, payload)
		payment = p
		return err
	})
	if err != nil {
		log.Printf("[payment][usecase] pay failed estimation_id=%s payment_id=%s err=%v", estimationID, payment.ID, err)
		return PaymentResult{Payment: payment}, err
	}
	log.Printf("[payment][usecase] pay success estimation_id=%s payment_id=%s", estimationID, payment.ID)
	return PaymentResult{Payment: payment, Outcome: outcome}, nil
}

// settle returns the approved payment for e, charging the gateway only when none exists.
func (u *BillingPaymentUseCase) settle(ctx context.Context, e entities.Estimation, actor entities.Actor, payload json.RawMessage) (entities.BillingPayment, error) {
	existing, err := u.repo.ListByEstimationID(ctx, e.ID)
	if err != nil {
		return entities.BillingPayment{}, err
	}
	for _, p := range existing {
		if p.Status == entities.PaymentStatusApproved {
			log.Printf("[payment][usecase] reusing approved payment estimation_id=%s payment_id=%s", e.ID, p.ID)
			return p, nil
		}
	}

	payment, err := u.charge(ctx, e, actor, payload, idempotencyKey(e, len(existing)))
	if err != nil {
		return entities.BillingPayment{}, err
	}
	if payment.Status != entities.PaymentStatusApproved {
		log.Printf("[payment][usecase] payment not approved estimation_id=%s payment_id=%s status=%s", e.ID, payment.ID, payment.Status)
		return payment, ErrPaymentNotApproved
	}
	return payment, nil
}

// idempotencyKey identifies one charge attempt: the estimation version plus the number of
// payments already recorded, so a retry after a rejected payment gets a fresh key.
func idempotencyKey(e entities.Estimation, attempt int) string {
	return fmt.Sprintf("%s-v%d-a%d", e.ID, e.Version, attempt)
}

func (u *BillingPaymentUseCase) normalizePayload(mpPayload json.RawMessage) (json.RawMessage, error) {
	if len(mpPayload) == 0 || !json.Valid(mpPayload) {
		if u.opts.MockMode {
			return json.RawMessage("{}"), nil
		}
		return nil, ErrInvalidMPPayload
	}
	return mpPayload, nil
}

func (u *BillingPaymentUseCase) charge(ctx context.Context, est entities.Estimation, actor entities.Actor, payload json.RawMessage, key string) (entities.BillingPayment, error) {
	var reqMap map[string]any
	if err := json.Unmarshal(payload, &reqMap); err != nil {
		// Valid JSON that is not an object.
		return entities.BillingPayment{}, ErrInvalidMPPayload
	}
	if !u.opts.MockMode {
		if !hasNonEmptyString(reqMap, "payment_method_id") {
			log.Printf("[payment][usecase] missing payment_method_id estimation_id=%s", est.ID)
			return entities.BillingPayment{}, ErrInvalidMPPayload
		}
		u.normalizeSandboxPayer(reqMap)
		u.ensurePayerDefaults(reqMap)
		if !hasPayer(reqMap) {
			log.Printf("[payment][usecase] missing/invalid payer estimation_id=%s", est.ID)
			return entities.BillingPayment{}, ErrInvalidMPPayload
		}
	}

	if _, ok := reqMap["external_reference"]; !ok {
		reqMap["external_reference"] = est.ID
	}
	if _, ok := reqMap["description"]; !ok {
		reqMap["description"] = fmt.Sprintf("Estimation %s", est.Folio)
	}
	// The estimation amount is authoritative.
	reqMap["transaction_amount"] = est.Amount
	body, err := json.Marshal(reqMap)
	if err != nil {
		return entities.BillingPayment{}, err
	}

	log.Printf("[payment][usecase] calling payment gateway estimation_id=%s idempotency_key=%s", est.ID, key)
	providerPaymentID, providerStatus, providerResp, err := u.gateway.CreatePayment(ctx, key, body)
	if err != nil {
		log.Printf("[payment][usecase] payment gateway failed estimation_id=%s err=%v", est.ID, err)
		return entities.BillingPayment{}, mapGatewayError(err)
	}
	log.Printf("[payment][usecase] payment gateway success estimation_id=%s provider_payment_id=%s provider_status=%s", est.ID, providerPaymentID, providerStatus)

	var parsed map[string]interface{}
	if err := json.Unmarshal(providerResp, &parsed); err != nil {
		log.Printf("[payment][usecase] provider response unmarshal failed estimation_id=%s err=%v", est.ID, err)
	}

	p := entities.BillingPayment{
		ID:           providerPaymentID,
		EstimationID: est.ID,
		Amount:       est.Amount,
		PaidBy:       actor.UserName,
		Date:         time.Now().UTC(),
		Status:       paymentStatusFromProvider(providerStatus),
		MPPayloadRaw: providerResp,
		MPPayload:    parsed,
	}
	created, err := u.repo.Create(ctx, p)
	if errors.Is(err, interfaces.ErrAlreadyExists) {
		// The provider replayed a payment another request already recorded.
		log.Printf("[payment][usecase] payment already recorded estimation_id=%s payment_id=%s", est.ID, p.ID)
		return u.repo.GetByID(ctx, p.ID)
	}
	if err != nil {
		log.Printf("[payment][usecase] payment repository create failed estimation_id=%s payment_id=%s err=%v", est.ID, p.ID, err)
		return entities.BillingPayment{}, err
	}
	return created, nil
}

func paymentStatusFromProvider(s string) entities.PaymentStatus {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "approved", "authorized":
		return entities.PaymentStatusApproved
	case "rejected", "cancelled", "refunded", "charged_back":
		return entities.PaymentStatusDenied
	default:
		return entities.PaymentStatusPending
	}
}

func mapGatewayError(err error) error {
	switch {
	case isGatewayCustomerNotFound(err):
		return ErrPaymentGatewayCustomerNotFound
	case isGatewayInvalidUsers(err):
		return ErrPaymentGatewayInvalidUsers
	case isGatewayUnauthorized(err):
		return ErrPaymentGatewayUnauthorized
	case isGatewayBadRequest(err):
		return ErrPaymentGatewayBadRequest
	}
	return err
}

func hasNonEmptyString(m map[string]any, key string) bool {
	v, ok := m[key]
	if !ok {
		return false
	}
	s, ok := v.(string)
	if !ok {
		return false
	}
	return strings.TrimSpace(s) != ""
}

func hasPayer(m map[string]any) bool {
	v, ok := m["payer"]
	if !ok {
		return false
	}
	payer, ok := v.(map[string]any)
	if !ok {
		return false
	}
	return hasNonEmptyString(payer, "email") || hasPayerID(payer)
}

func hasPayerID(payer map[string]any) bool {
	v, ok := payer["id"]
	if !ok || v == nil {
		return false
	}
	s := strings.TrimSpace(fmt.Sprintf("%v", v))
	return s != "" && s != "<nil>"
}

func (u *BillingPaymentUseCase) ensurePayerDefaults(m map[string]any) {
	v, ok := m["payer"]
	if !ok || v == nil {
		v = map[string]any{}
		m["payer"] = v
	}
	payer, ok := v.(map[string]any)
	if !ok {
		return
	}
	if _, ok := payer["type"]; !ok {
		payer["type"] = "customer"
	}

	// Sandbox accepts either payer.id or payer.email; fill email only when both are missing.
	if !hasPayerID(payer) && !hasNonEmptyString(payer, "email") {
		if u.opts.TestPayerEmail != "" {
			payer["email"] = u.opts.TestPayerEmail
		} else if u.opts.SandboxMode {
			payer["email"] = "test_user_br@testuser.com"
		}
	}
}

func (u *BillingPaymentUseCase) normalizeSandboxPayer(m map[string]any) {
	if !u.opts.SandboxMode || u.opts.TestPayerUserID == "" || u.opts.TestPayerEmail == "" {
		return
	}
	payer, ok := m["payer"].(map[string]any)
	if !ok {
		return
	}
	if !hasPayerID(payer) || hasNonEmptyString(payer, "email") {
		return
	}
	rawID := strings.TrimSpace(fmt.Sprintf("%v", payer["id"]))
	if rawID != u.opts.TestPayerUserID {
		return
	}

	payer["email"] = u.opts.TestPayerEmail
	delete(payer, "id")
	log.Printf("[payment][usecase] mapped sandbox payer user_id to payer.email")
}

func isGatewayBadRequest(err error) bool {
	if err == nil {
		return false
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "\"error\":\"bad_request\"") || strings.Contains(msg, "\"status\":400")
}

func isGatewayUnauthorized(err error) bool {
	if err == nil {
		return false
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "\"error\":\"unauthorized\"") || strings.Contains(msg, "\"status\":401")
}

func isGatewayInvalidUsers(err error) bool {
	if err == nil {
		return false
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "invalid users involved") || strings.Contains(msg, "\"code\":2034")
}

func isGatewayCustomerNotFound(err error) bool {
	if err == nil {
		return false
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "customer not found") || strings.Contains(msg, "\"code\":2002")
}

func (u *BillingPaymentUseCase) GetByID(ctx context.Context, id string) (entities.BillingPayment, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.BillingPayment{}, ErrInvalidPaymentID
	}

	p, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.BillingPayment{}, err
	}
	if p.ID == "" {
		return entities.BillingPayment{}, ErrBillingPaymentNotFound
	}
	return p, nil
}

func (u *BillingPaymentUseCase) ListByEstimationID(ctx context.Context, estimationID string) ([]entities.BillingPayment, error) {
	estimationID = strings.TrimSpace(estimationID)
	if estimationID == "" {
		return nil, ErrInvalidEstimationID
	}
	return u.repo.ListByEstimationID(ctx, estimationID)
}
