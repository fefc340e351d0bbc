package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"strconv"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"estimaciones_obra/internal/domain/entities"
	"estimaciones_obra/internal/domain/workflow"
	"estimaciones_obra/internal/usecase/interfaces"
	mock_interfaces "estimaciones_obra/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

type paymentMocks struct {
	repo        *mock_interfaces.MockIBillingPaymentRepository
	estimations *mock_interfaces.MockIEstimationRepository
	gateway     *mock_interfaces.MockIPaymentGateway
}

func newPaymentUseCaseForTest(t *testing.T, opts PaymentOptions) (*BillingPaymentUseCase, paymentMocks) {
	t.Helper()
	ctrl := gomock.NewController(t)
	m := paymentMocks{
		repo:        mock_interfaces.NewMockIBillingPaymentRepository(ctrl),
		estimations: mock_interfaces.NewMockIEstimationRepository(ctrl),
		gateway:     mock_interfaces.NewMockIPaymentGateway(ctrl),
	}
	approvals := newApprovalUseCaseAt(m.estimations, nil, nil)
	return NewBillingPaymentUseCase(m.repo, m.estimations, m.gateway, approvals, opts), m
}

func readyForPayment() entities.Estimation {
	return entities.Estimation{
		ID: "est-1", Folio: "EST-7", Status: entities.StatusValidatedFinanzas,
		Activation: entities.AllRolesActive(), Amount: 77.2, Version: 8,
	}
}

func expectPaidStep(t *testing.T, m paymentMocks) {
	t.Helper()
	m.estimations.EXPECT().Save(gomock.Any(), gomock.Any(), int64(8), gomock.Any()).DoAndReturn(
		func(_ context.Context, e entities.Estimation, _ int64, entry entities.ApprovalHistoryEntry) (entities.Estimation, error) {
			if e.Status != entities.StatusPaid || entry.Role != entities.RolePagos {
				t.Fatalf("unexpected paid step: %+v %+v", e, entry)
			}
			return e, nil
		},
	)
}

func TestBillingPaymentUseCase_PayEstimation_Validations(t *testing.T) {
	pagos := actorOf(entities.RolePagos)

	t.Run("empty estimation id", func(t *testing.T) {
		uc := NewBillingPaymentUseCase(nil, nil, nil, nil, PaymentOptions{})
		_, err := uc.PayEstimation(context.Background(), " ", pagos, json.RawMessage(`{}`))
		if !errors.Is(err, ErrInvalidEstimationID) {
			t.Fatalf("expected ErrInvalidEstimationID, got %v", err)
		}
	})

	t.Run("only pagos pays", func(t *testing.T) {
		uc := NewBillingPaymentUseCase(nil, nil, nil, nil, PaymentOptions{})
		_, err := uc.PayEstimation(context.Background(), "est-1", actorOf(entities.RoleFinanzas), json.RawMessage(`{}`))
		if !errors.Is(err, workflow.ErrInvalidTransition) {
			t.Fatalf("expected ErrInvalidTransition, got %v", err)
		}
	})

	t.Run("empty payload", func(t *testing.T) {
		uc := NewBillingPaymentUseCase(nil, nil, nil, nil, PaymentOptions{})
		_, err := uc.PayEstimation(context.Background(), "est-1", pagos, nil)
		if !errors.Is(err, ErrInvalidMPPayload) {
			t.Fatalf("expected ErrInvalidMPPayload, got %v", err)
		}
	})

	t.Run("invalid json payload", func(t *testing.T) {
		uc := NewBillingPaymentUseCase(nil, nil, nil, nil, PaymentOptions{})
		_, err := uc.PayEstimation(context.Background(), "est-1", pagos, json.RawMessage(`{`))
		if !errors.Is(err, ErrInvalidMPPayload) {
			t.Fatalf("expected ErrInvalidMPPayload, got %v", err)
		}
	})

	t.Run("gateway not configured", func(t *testing.T) {
		uc := NewBillingPaymentUseCase(nil, nil, nil, nil, PaymentOptions{})
		_, err := uc.PayEstimation(context.Background(), "est-1", pagos, json.RawMessage(`{"payment_method_id":"pix"}`))
		if !errors.Is(err, ErrPaymentGatewayNotConfigured) {
			t.Fatalf("expected ErrPaymentGatewayNotConfigured, got %v", err)
		}
	})
}

func TestBillingPaymentUseCase_PayEstimation_EstimationChecks(t *testing.T) {
	pagos := actorOf(entities.RolePagos)
	payload := json.RawMessage(`{"payment_method_id":"pix","payer":{"email":"x@test.com"}}`)

	cases := []struct {
		name string
		e    entities.Estimation
		err  error
		want error
	}{
		{name: "not found", e: entities.Estimation{}, want: ErrEstimationNotFound},
		{name: "already paid", e: entities.Estimation{ID: "est-1", Status: entities.StatusPaid}, want: workflow.ErrTerminalState},
		{name: "not validated by finanzas", e: entities.Estimation{ID: "est-1", Status: entities.StatusFacturaSubida}, want: ErrEstimationNotReadyForPayment},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			uc, m := newPaymentUseCaseForTest(t, PaymentOptions{})
			m.estimations.EXPECT().GetByID(gomock.Any(), "est-1").Return(tc.e, nil)
			m.gateway.EXPECT().CreatePayment(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

			_, err := uc.PayEstimation(context.Background(), "est-1", pagos, payload)
			if !errors.Is(err, tc.want) {
				t.Fatalf("expected %v, got %v", tc.want, err)
			}
		})
	}

	t.Run("estimation repo error", func(t *testing.T) {
		uc, m := newPaymentUseCaseForTest(t, PaymentOptions{})
		m.estimations.EXPECT().GetByID(gomock.Any(), "est-1").Return(entities.Estimation{}, errors.New("db"))

		_, err := uc.PayEstimation(context.Background(), "est-1", pagos, payload)
		if err == nil || err.Error() != "db" {
			t.Fatalf("expected db error, got %v", err)
		}
	})
}

func TestBillingPaymentUseCase_PayEstimation_PayloadValidation(t *testing.T) {
	pagos := actorOf(entities.RolePagos)

	t.Run("missing payment_method_id", func(t *testing.T) {
		uc, m := newPaymentUseCaseForTest(t, PaymentOptions{})
		m.estimations.EXPECT().GetByID(gomock.Any(), "est-1").Return(readyForPayment(), nil).Times(2)
		m.repo.EXPECT().ListByEstimationID(gomock.Any(), "est-1").Return(nil, nil)

		_, err := uc.PayEstimation(context.Background(), "est-1", pagos, json.RawMessage(`{"payer":{"email":"x@test.com"}}`))
		if !errors.Is(err, ErrInvalidMPPayload) {
			t.Fatalf("expected ErrInvalidMPPayload, got %v", err)
		}
	})

	t.Run("missing payer outside sandbox", func(t *testing.T) {
		uc, m := newPaymentUseCaseForTest(t, PaymentOptions{})
		m.estimations.EXPECT().GetByID(gomock.Any(), "est-1").Return(readyForPayment(), nil).Times(2)
		m.repo.EXPECT().ListByEstimationID(gomock.Any(), "est-1").Return(nil, nil)

		_, err := uc.PayEstimation(context.Background(), "est-1", pagos, json.RawMessage(`{"payment_method_id":"pix"}`))
		if !errors.Is(err, ErrInvalidMPPayload) {
			t.Fatalf("expected ErrInvalidMPPayload, got %v", err)
		}
	})

	t.Run("json array payload", func(t *testing.T) {
		uc, m := newPaymentUseCaseForTest(t, PaymentOptions{})
		m.estimations.EXPECT().GetByID(gomock.Any(), "est-1").Return(readyForPayment(), nil).Times(2)
		m.repo.EXPECT().ListByEstimationID(gomock.Any(), "est-1").Return(nil, nil)

		_, err := uc.PayEstimation(context.Background(), "est-1", pagos, json.RawMessage(`[1,2]`))
		if !errors.Is(err, ErrInvalidMPPayload) {
			t.Fatalf("expected ErrInvalidMPPayload, got %v", err)
		}
	})
}

func TestBillingPaymentUseCase_PayEstimation_GatewayErrorMapping(t *testing.T) {
	pagos := actorOf(entities.RolePagos)
	cases := []struct {
		name string
		err  error
		want error
	}{
		{name: "customer not found", err: errors.New(`{"code":2002}`), want: ErrPaymentGatewayCustomerNotFound},
		{name: "invalid users", err: errors.New(`invalid users involved`), want: ErrPaymentGatewayInvalidUsers},
		{name: "unauthorized", err: errors.New(`{"error":"unauthorized"}`), want: ErrPaymentGatewayUnauthorized},
		{name: "bad request", err: errors.New(`{"status":400}`), want: ErrPaymentGatewayBadRequest},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			uc, m := newPaymentUseCaseForTest(t, PaymentOptions{})
			m.estimations.EXPECT().GetByID(gomock.Any(), "est-1").Return(readyForPayment(), nil).Times(2)
			m.repo.EXPECT().ListByEstimationID(gomock.Any(), "est-1").Return(nil, nil)
			m.gateway.EXPECT().CreatePayment(gomock.Any(), gomock.Any(), gomock.Any()).Return("", "", nil, tc.err)
			m.estimations.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

			_, err := uc.PayEstimation(context.Background(), "est-1", pagos, json.RawMessage(`{"payment_method_id":"pix","payer":{"email":"x@test.com"}}`))
			if !errors.Is(err, tc.want) {
				t.Fatalf("expected %v, got %v", tc.want, err)
			}
		})
	}
}

func TestBillingPaymentUseCase_PayEstimation_Success(t *testing.T) {
	pagos := actorOf(entities.RolePagos)

	t.Run("sandbox payer mapping and paid step", func(t *testing.T) {
		uc, m := newPaymentUseCaseForTest(t, PaymentOptions{
			SandboxMode: true, TestPayerUserID: "123", TestPayerEmail: "sandbox@test.com",
		})
		m.estimations.EXPECT().GetByID(gomock.Any(), "est-1").Return(readyForPayment(), nil).Times(2)
		m.repo.EXPECT().ListByEstimationID(gomock.Any(), "est-1").Return(nil, nil)
		m.gateway.EXPECT().CreatePayment(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, key string, payload json.RawMessage) (string, string, json.RawMessage, error) {
				if key != "est-1-v8-a0" {
					t.Fatalf("unexpected idempotency key %q", key)
				}
				var body map[string]any
				if err := json.Unmarshal(payload, &body); err != nil {
					t.Fatalf("payload should be valid json: %v", err)
				}
				if body["external_reference"] != "est-1" || body["description"] != "Estimation EST-7" {
					t.Fatalf("payload not enriched: %v", body)
				}
				if body["transaction_amount"] != float64(77.2) {
					t.Fatalf("transaction_amount should come from the estimation")
				}
				payer := body["payer"].(map[string]any)
				if payer["email"] != "sandbox@test.com" || payer["id"] != nil {
					t.Fatalf("expected sandbox payer mapping, got %v", payer)
				}
				return "pay-1", "approved", json.RawMessage(`{"id":1}`), nil
			},
		)
		m.repo.EXPECT().Create(gomock.Any(), gomock.AssignableToTypeOf(entities.BillingPayment{})).DoAndReturn(
			func(_ context.Context, p entities.BillingPayment) (entities.BillingPayment, error) {
				if p.ID != "pay-1" || p.EstimationID != "est-1" || p.Status != entities.PaymentStatusApproved {
					t.Fatalf("unexpected payment: %+v", p)
				}
				if p.Amount != 77.2 || p.PaidBy != "User pagos" || p.Date.IsZero() {
					t.Fatalf("unexpected payment fields: %+v", p)
				}
				return p, nil
			},
		)
		expectPaidStep(t, m)

		res, err := uc.PayEstimation(context.Background(), "est-1", pagos, json.RawMessage(`{"payment_method_id":"pix","payer":{"id":"123"}}`))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.Payment.ID != "pay-1" || res.Outcome.Estimation.Status != entities.StatusPaid {
			t.Fatalf("unexpected result: %+v", res)
		}
	})

	t.Run("mock mode accepts empty payload", func(t *testing.T) {
		uc, m := newPaymentUseCaseForTest(t, PaymentOptions{MockMode: true})
		m.estimations.EXPECT().GetByID(gomock.Any(), "est-1").Return(readyForPayment(), nil).Times(2)
		m.repo.EXPECT().ListByEstimationID(gomock.Any(), "est-1").Return(nil, nil)
		m.gateway.EXPECT().CreatePayment(gomock.Any(), gomock.Any(), gomock.Any()).Return("mock-1", "approved", json.RawMessage(`{}`), nil)
		m.repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, p entities.BillingPayment) (entities.BillingPayment, error) { return p, nil },
		)
		expectPaidStep(t, m)

		if _, err := uc.PayEstimation(context.Background(), "est-1", pagos, nil); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("approved payment is reused", func(t *testing.T) {
		uc, m := newPaymentUseCaseForTest(t, PaymentOptions{})
		m.estimations.EXPECT().GetByID(gomock.Any(), "est-1").Return(readyForPayment(), nil).Times(2)
		m.repo.EXPECT().ListByEstimationID(gomock.Any(), "est-1").Return([]entities.BillingPayment{
			{ID: "pay-0", Status: entities.PaymentStatusDenied},
			{ID: "pay-1", Status: entities.PaymentStatusApproved},
		}, nil)
		m.gateway.EXPECT().CreatePayment(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)
		m.repo.EXPECT().Create(gomock.Any(), gomock.Any()).Times(0)
		expectPaidStep(t, m)

		res, err := uc.PayEstimation(context.Background(), "est-1", pagos, json.RawMessage(`{"payment_method_id":"pix"}`))
		if err != nil || res.Payment.ID != "pay-1" {
			t.Fatalf("unexpected result err=%v res=%+v", err, res)
		}
	})
}

func TestBillingPaymentUseCase_PayEstimation_ProviderStatuses(t *testing.T) {
	pagos := actorOf(entities.RolePagos)
	cases := []struct {
		name           string
		providerStatus string
		want           entities.PaymentStatus
	}{
		{name: "rejected", providerStatus: "rejected", want: entities.PaymentStatusDenied},
		{name: "in process", providerStatus: "in_process", want: entities.PaymentStatusPending},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			uc, m := newPaymentUseCaseForTest(t, PaymentOptions{})
			m.estimations.EXPECT().GetByID(gomock.Any(), "est-1").Return(readyForPayment(), nil).Times(2)
			m.repo.EXPECT().ListByEstimationID(gomock.Any(), "est-1").Return(nil, nil)
			m.gateway.EXPECT().CreatePayment(gomock.Any(), gomock.Any(), gomock.Any()).Return("pay-1", tc.providerStatus, json.RawMessage(`{`), nil)
			m.repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
				func(_ context.Context, p entities.BillingPayment) (entities.BillingPayment, error) { return p, nil },
			)
			m.estimations.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

			res, err := uc.PayEstimation(context.Background(), "est-1", pagos, json.RawMessage(`{"payment_method_id":"pix","payer":{"email":"x@test.com"}}`))
			if !errors.Is(err, ErrPaymentNotApproved) {
				t.Fatalf("expected ErrPaymentNotApproved, got %v", err)
			}
			if res.Payment.Status != tc.want {
				t.Fatalf("expected status %s, got %s", tc.want, res.Payment.Status)
			}
		})
	}

	t.Run("repository create error", func(t *testing.T) {
		uc, m := newPaymentUseCaseForTest(t, PaymentOptions{})
		m.estimations.EXPECT().GetByID(gomock.Any(), "est-1").Return(readyForPayment(), nil).Times(2)
		m.repo.EXPECT().ListByEstimationID(gomock.Any(), "est-1").Return(nil, nil)
		m.gateway.EXPECT().CreatePayment(gomock.Any(), gomock.Any(), gomock.Any()).Return("pay-1", "approved", json.RawMessage(`{"id":1}`), nil)
		m.repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(entities.BillingPayment{}, errors.New("db-create"))
		m.estimations.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

		_, err := uc.PayEstimation(context.Background(), "est-1", pagos, json.RawMessage(`{"payment_method_id":"pix","payer":{"email":"x@test.com"}}`))
		if err == nil || err.Error() != "db-create" {
			t.Fatalf("expected db-create error, got %v", err)
		}
	})
}

func TestBillingPaymentUseCase_PayEstimation_Retries(t *testing.T) {
	pagos := actorOf(entities.RolePagos)
	payload := json.RawMessage(`{"payment_method_id":"pix","payer":{"email":"x@test.com"}}`)

	t.Run("rejected attempt gets a fresh idempotency key", func(t *testing.T) {
		uc, m := newPaymentUseCaseForTest(t, PaymentOptions{})
		m.estimations.EXPECT().GetByID(gomock.Any(), "est-1").Return(readyForPayment(), nil).Times(2)
		m.repo.EXPECT().ListByEstimationID(gomock.Any(), "est-1").Return([]entities.BillingPayment{
			{ID: "pay-0", Status: entities.PaymentStatusDenied},
		}, nil)
		m.gateway.EXPECT().CreatePayment(gomock.Any(), "est-1-v8-a1", gomock.Any()).Return("pay-1", "approved", json.RawMessage(`{}`), nil)
		m.repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, p entities.BillingPayment) (entities.BillingPayment, error) { return p, nil },
		)
		expectPaidStep(t, m)

		res, err := uc.PayEstimation(context.Background(), "est-1", pagos, payload)
		if err != nil || res.Payment.ID != "pay-1" {
			t.Fatalf("unexpected result err=%v res=%+v", err, res)
		}
	})

	t.Run("replayed payment already recorded", func(t *testing.T) {
		uc, m := newPaymentUseCaseForTest(t, PaymentOptions{})
		m.estimations.EXPECT().GetByID(gomock.Any(), "est-1").Return(readyForPayment(), nil).Times(2)
		m.repo.EXPECT().ListByEstimationID(gomock.Any(), "est-1").Return(nil, nil)
		m.gateway.EXPECT().CreatePayment(gomock.Any(), "est-1-v8-a0", gomock.Any()).Return("pay-1", "approved", json.RawMessage(`{}`), nil)
		m.repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(entities.BillingPayment{}, interfaces.ErrAlreadyExists)
		m.repo.EXPECT().GetByID(gomock.Any(), "pay-1").Return(entities.BillingPayment{
			ID: "pay-1", EstimationID: "est-1", Status: entities.PaymentStatusApproved,
		}, nil)
		expectPaidStep(t, m)

		res, err := uc.PayEstimation(context.Background(), "est-1", pagos, payload)
		if err != nil || res.Payment.ID != "pay-1" {
			t.Fatalf("unexpected result err=%v res=%+v", err, res)
		}
	})
}

// memoryEstimations holds one estimation and enforces the expected version on Save.
type memoryEstimations struct {
	mu sync.Mutex
	e  entities.Estimation
}

func (r *memoryEstimations) Create(_ context.Context, e entities.Estimation) (entities.Estimation, error) {
	return e, nil
}

func (r *memoryEstimations) GetByID(_ context.Context, _ string) (entities.Estimation, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.e, nil
}

func (r *memoryEstimations) GetByFolio(_ context.Context, _, _ string) (entities.Estimation, error) {
	return entities.Estimation{}, nil
}

func (r *memoryEstimations) ListByProjectID(_ context.Context, _ string) ([]entities.Estimation, error) {
	return nil, nil
}

func (r *memoryEstimations) Save(_ context.Context, e entities.Estimation, expectedVersion int64, _ entities.ApprovalHistoryEntry) (entities.Estimation, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.e.Version != expectedVersion {
		return entities.Estimation{}, interfaces.ErrConcurrentModification
	}
	r.e = e
	return e, nil
}

func (r *memoryEstimations) UpdateActivation(_ context.Context, _ string, _ entities.RoleActivation, _ int64) (entities.Estimation, error) {
	return r.e, nil
}

// gatedPayments blocks every ListByEstimationID call until release is closed, reporting each
// call on listed.
type gatedPayments struct {
	mu       sync.Mutex
	payments []entities.BillingPayment
	listed   chan struct{}
	release  chan struct{}
}

func (r *gatedPayments) Create(_ context.Context, p entities.BillingPayment) (entities.BillingPayment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.payments = append(r.payments, p)
	return p, nil
}

func (r *gatedPayments) GetByID(_ context.Context, _ string) (entities.BillingPayment, error) {
	return entities.BillingPayment{}, nil
}

func (r *gatedPayments) ListByEstimationID(_ context.Context, _ string) ([]entities.BillingPayment, error) {
	r.listed <- struct{}{}
	<-r.release
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]entities.BillingPayment(nil), r.payments...), nil
}

// tryLocker fails fast when the estimation is already locked.
type tryLocker struct {
	mu sync.Mutex
}

func (l *tryLocker) Acquire(_ context.Context, _ string) (func(), error) {
	if !l.mu.TryLock() {
		return nil, interfaces.ErrConcurrentModification
	}
	return l.mu.Unlock, nil
}

// countingGateway approves every charge and counts how many reached the provider.
type countingGateway struct {
	charges atomic.Int32
}

func (g *countingGateway) CreatePayment(_ context.Context, key string, _ json.RawMessage) (string, string, json.RawMessage, error) {
	n := g.charges.Add(1)
	return key + "-" + strconv.Itoa(int(n)), "approved", json.RawMessage(`{}`), nil
}

func TestBillingPaymentUseCase_PayEstimation_ConcurrentRequestsChargeOnce(t *testing.T) {
	estimations := &memoryEstimations{e: readyForPayment()}
	payments := &gatedPayments{listed: make(chan struct{}, 2), release: make(chan struct{})}
	gateway := &countingGateway{}
	approvals := newApprovalUseCaseAt(estimations, nil, &tryLocker{})
	uc := NewBillingPaymentUseCase(payments, estimations, gateway, approvals, PaymentOptions{MockMode: true})

	errs := make([]error, 2)
	var wg sync.WaitGroup
	pay := func(i int) {
		defer wg.Done()
		_, errs[i] = uc.PayEstimation(context.Background(), "est-1", actorOf(entities.RolePagos), nil)
	}

	wg.Add(1)
	go pay(0)
	<-payments.listed

	secondDone := make(chan struct{})
	wg.Add(1)
	go func() {
		pay(1)
		close(secondDone)
	}()
	select {
	case <-secondDone:
	case <-payments.listed:
	case <-time.After(2 * time.Second):
	}
	close(payments.release)
	wg.Wait()

	if got := gateway.charges.Load(); got != 1 {
		t.Fatalf("expected exactly one charge, got %d", got)
	}
	succeeded := 0
	for _, err := range errs {
		switch {
		case err == nil:
			succeeded++
		case errors.Is(err, interfaces.ErrConcurrentModification), errors.Is(err, workflow.ErrTerminalState):
		default:
			t.Fatalf("unexpected error: %v", err)
		}
	}
	if succeeded != 1 {
		t.Fatalf("expected one successful payment, got %d", succeeded)
	}
	if estimations.e.Status != entities.StatusPaid || len(payments.payments) != 1 {
		t.Fatalf("unexpected final state: status=%s payments=%d", estimations.e.Status, len(payments.payments))
	}
}

func TestBillingPaymentUseCase_Getters(t *testing.T) {
	t.Run("GetByID invalid", func(t *testing.T) {
		uc := NewBillingPaymentUseCase(nil, nil, nil, nil, PaymentOptions{})
		if _, err := uc.GetByID(context.Background(), ""); !errors.Is(err, ErrInvalidPaymentID) {
			t.Fatalf("expected ErrInvalidPaymentID, got %v", err)
		}
	})

	t.Run("GetByID not found", func(t *testing.T) {
		uc, m := newPaymentUseCaseForTest(t, PaymentOptions{})
		m.repo.EXPECT().GetByID(gomock.Any(), "id-1").Return(entities.BillingPayment{}, nil)

		if _, err := uc.GetByID(context.Background(), "id-1"); !errors.Is(err, ErrBillingPaymentNotFound) {
			t.Fatalf("expected ErrBillingPaymentNotFound, got %v", err)
		}
	})

	t.Run("GetByID success", func(t *testing.T) {
		uc, m := newPaymentUseCaseForTest(t, PaymentOptions{})
		m.repo.EXPECT().GetByID(gomock.Any(), "id-1").Return(entities.BillingPayment{ID: "id-1"}, nil)

		res, err := uc.GetByID(context.Background(), " id-1 ")
		if err != nil || res.ID != "id-1" {
			t.Fatalf("unexpected result err=%v res=%+v", err, res)
		}
	})

	t.Run("ListByEstimationID invalid", func(t *testing.T) {
		uc := NewBillingPaymentUseCase(nil, nil, nil, nil, PaymentOptions{})
		if _, err := uc.ListByEstimationID(context.Background(), " "); !errors.Is(err, ErrInvalidEstimationID) {
			t.Fatalf("expected ErrInvalidEstimationID, got %v", err)
		}
	})

	t.Run("ListByEstimationID success", func(t *testing.T) {
		uc, m := newPaymentUseCaseForTest(t, PaymentOptions{})
		expected := []entities.BillingPayment{{ID: "p1", Date: time.Now()}}
		m.repo.EXPECT().ListByEstimationID(gomock.Any(), "est-1").Return(expected, nil)

		res, err := uc.ListByEstimationID(context.Background(), " est-1 ")
		if err != nil || len(res) != 1 || res[0].ID != "p1" {
			t.Fatalf("unexpected result err=%v res=%+v", err, res)
		}
	})
}

func TestBillingPaymentUseCase_HelperFunctions(t *testing.T) {
	t.Run("hasNonEmptyString", func(t *testing.T) {
		if hasNonEmptyString(map[string]any{}, "x") || hasNonEmptyString(map[string]any{"x": 1}, "x") {
			t.Fatalf("expected false")
		}
		if hasNonEmptyString(map[string]any{"x": "   "}, "x") {
			t.Fatalf("expected false for empty string")
		}
		if !hasNonEmptyString(map[string]any{"x": "ok"}, "x") {
			t.Fatalf("expected true")
		}
	})

	t.Run("hasPayer", func(t *testing.T) {
		if hasPayer(map[string]any{}) || hasPayer(map[string]any{"payer": "x"}) || hasPayer(map[string]any{"payer": map[string]any{}}) {
			t.Fatalf("expected false")
		}
		if !hasPayer(map[string]any{"payer": map[string]any{"email": "a@b.com"}}) {
			t.Fatalf("expected true with email")
		}
		if !hasPayer(map[string]any{"payer": map[string]any{"id": 10}}) {
			t.Fatalf("expected true with id")
		}
		if hasPayerID(map[string]any{"id": nil}) || hasPayerID(map[string]any{"id": " "}) {
			t.Fatalf("expected false for nil/blank id")
		}
	})

	t.Run("ensurePayerDefaults in sandbox", func(t *testing.T) {
		uc := NewBillingPaymentUseCase(nil, nil, nil, nil, PaymentOptions{SandboxMode: true})
		m := map[string]any{}
		uc.ensurePayerDefaults(m)
		payer := m["payer"].(map[string]any)
		if payer["type"] != "customer" || payer["email"] != "test_user_br@testuser.com" {
			t.Fatalf("unexpected payer defaults: %v", payer)
		}
	})

	t.Run("paymentStatusFromProvider", func(t *testing.T) {
		if paymentStatusFromProvider(" Approved ") != entities.PaymentStatusApproved {
			t.Fatalf("expected approved")
		}
		if paymentStatusFromProvider("cancelled") != entities.PaymentStatusDenied {
			t.Fatalf("expected denied")
		}
		if paymentStatusFromProvider("") != entities.PaymentStatusPending {
			t.Fatalf("expected pending")
		}
	})
}
