package payments

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"
	"strconv"
	"sync"
	"time"

	"estimaciones_obra/internal/usecase/interfaces"

	"github.com/mercadopago/sdk-go/pkg/config"
	"github.com/mercadopago/sdk-go/pkg/payment"
)

var ErrMissingMercadoPagoAccessToken = errors.New("missing MERCADOPAGO_ACCESS_TOKEN")
var ErrMercadoPagoGatewayNotConfigured = errors.New("mercado pago gateway not configured")

const (
	idempotencyHeader = "X-Idempotency-Key"
	requestTimeout    = 30 * time.Second
)

type idempotencyKeyCtx struct{}

// idempotencyTransport stamps the idempotency key carried by the request context, replacing
// any key the SDK generated for the request.
type idempotencyTransport struct {
	base http.RoundTripper
}

func (t idempotencyTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	key, _ := req.Context().Value(idempotencyKeyCtx{}).(string)
	if key == "" {
		return t.base.RoundTrip(req)
	}
	req = req.Clone(req.Context())
	req.Header.Set(idempotencyHeader, key)
	return t.base.RoundTrip(req)
}

// MercadoPagoGateway pays estimations through the Mercado Pago payments API. In mock mode
// no request leaves the process and every payment is approved.
type MercadoPagoGateway struct {
	client   payment.Client
	mockMode bool
	now      func() time.Time

	mu     sync.Mutex
	issued map[string]mockResult
}

type mockResult struct {
	id   string
	body json.RawMessage
}

var _ interfaces.IPaymentGateway = (*MercadoPagoGateway)(nil)

func NewMercadoPagoGateway(accessToken string, mockMode bool) (*MercadoPagoGateway, error) {
	if mockMode {
		log.Printf("[payment][gateway] mock mode enabled")
		return &MercadoPagoGateway{mockMode: true, now: time.Now, issued: map[string]mockResult{}}, nil
	}

	if accessToken == "" {
		log.Printf("[payment][gateway] missing MERCADOPAGO_ACCESS_TOKEN")
		return nil, ErrMissingMercadoPagoAccessToken
	}

	httpClient := &http.Client{
		Timeout:   requestTimeout,
		Transport: idempotencyTransport{base: http.DefaultTransport},
	}
	cfg, err := config.New(accessToken, config.WithHTTPClient(httpClient))
	if err != nil {
		log.Printf("[payment][gateway] failed creating sdk config err=%v", err)
		return nil, err
	}
	log.Printf("[payment][gateway] Mercado Pago client initialized")

	return &MercadoPagoGateway{client: payment.NewClient(cfg), now: time.Now}, nil
}

func (g *MercadoPagoGateway) CreatePayment(ctx context.Context, idempotencyKey string, requestPayload json.RawMessage) (providerPaymentID string, providerStatus string, providerResponse json.RawMessage, err error) {
	if g != nil && g.mockMode {
		return g.mockPayment(idempotencyKey, requestPayload)
	}

	if g == nil || g.client == nil {
		log.Printf("[payment][gateway] gateway not configured")
		return "", "", nil, ErrMercadoPagoGatewayNotConfigured
	}
	log.Printf("[payment][gateway] create start payload_len=%d idempotency_key=%s", len(requestPayload), idempotencyKey)

	var req payment.Request
	if err := json.Unmarshal(requestPayload, &req); err != nil {
		log.Printf("[payment][gateway] payload unmarshal failed err=%v", err)
		return "", "", nil, err
	}

	if idempotencyKey != "" {
		ctx = context.WithValue(ctx, idempotencyKeyCtx{}, idempotencyKey)
	}
	resp, err := g.client.Create(ctx, req)
	if err != nil {
		log.Printf("[payment][gateway] sdk create failed err=%v", err)
		return "", "", nil, err
	}

	b, err := json.Marshal(resp)
	if err != nil {
		log.Printf("[payment][gateway] response marshal failed err=%v", err)
		return "", "", nil, err
	}
	log.Printf("[payment][gateway] create success provider_payment_id=%d provider_status=%s", resp.ID, resp.Status)

	return fmt.Sprintf("%d", resp.ID), resp.Status, b, nil
}

// mockPayment echoes the request back with an approved status. A repeated idempotency key
// returns the payment issued the first time.
func (g *MercadoPagoGateway) mockPayment(idempotencyKey string, requestPayload json.RawMessage) (string, string, json.RawMessage, error) {
	log.Printf("[payment][gateway] mock create start payload_len=%d idempotency_key=%s", len(requestPayload), idempotencyKey)

	g.mu.Lock()
	defer g.mu.Unlock()
	if prev, ok := g.issued[idempotencyKey]; ok && idempotencyKey != "" {
		log.Printf("[payment][gateway] mock replay provider_payment_id=%s", prev.id)
		return prev.id, "approved", prev.body, nil
	}

	resp := map[string]any{}
	if len(requestPayload) > 0 && json.Valid(requestPayload) {
		if err := json.Unmarshal(requestPayload, &resp); err != nil {
			resp = map[string]any{"request_payload_raw": string(requestPayload)}
		}
	}

	at := g.now().UTC()
	id := strconv.FormatInt(at.UnixNano(), 10)
	stamp := at.Format(time.RFC3339Nano)
	resp["id"] = id
	resp["status"] = "approved"
	resp["status_detail"] = "accredited"
	if _, ok := resp["date_created"]; !ok {
		resp["date_created"] = stamp
	}
	if _, ok := resp["date_approved"]; !ok {
		resp["date_approved"] = stamp
	}

	b, err := json.Marshal(resp)
	if err != nil {
		log.Printf("[payment][gateway] mock response marshal failed err=%v", err)
		return "", "", nil, err
	}

	if idempotencyKey != "" {
		if g.issued == nil {
			g.issued = map[string]mockResult{}
		}
		g.issued[idempotencyKey] = mockResult{id: id, body: b}
	}
	log.Printf("[payment][gateway] mock create success provider_payment_id=%s provider_status=approved", id)
	return id, "approved", b, nil
}
