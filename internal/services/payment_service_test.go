package services_test

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/google/uuid"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap/zaptest"

	"github.com/example/stabiliq/internal/models"
	"github.com/example/stabiliq/internal/repository"
	"github.com/example/stabiliq/internal/services"
	mock_services "github.com/example/stabiliq/internal/services/mocks"
)

func sequence(ids ...string) func() string {
	i := 0
	return func() string {
		id := ids[i%len(ids)]
		i++
		return id
	}
}

func counter() func() string {
	n := 0
	return func() string {
		n++
		return fmt.Sprintf("T%013d%06d", 1700000000000, n)
	}
}

var checkoutAccepted = &services.PayResult{
	Accepted:    true,
	CheckoutURL: "https://pay.example/checkout/abc",
	MerchantID:  "MERCHANT",
}

func TestResolveTransactionID(t *testing.T) {
	t.Run("regenerates until free", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		store := mock_services.NewMockTransactionStore(ctrl)
		svc := services.NewPaymentService(store, nil, zaptest.NewLogger(t),
			services.WithIDGenerator(sequence("T1", "T2", "T3", "T4")))

		gomock.InOrder(
			store.EXPECT().ExistsByMerchantTransactionID(gomock.Any(), "T1").Return(true, nil),
			store.EXPECT().ExistsByMerchantTransactionID(gomock.Any(), "T2").Return(true, nil),
			store.EXPECT().ExistsByMerchantTransactionID(gomock.Any(), "T3").Return(true, nil),
			store.EXPECT().ExistsByMerchantTransactionID(gomock.Any(), "T4").Return(false, nil),
		)

		id, err := svc.ResolveTransactionID(context.Background())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if id != "T4" {
			t.Fatalf("expected T4, got %s", id)
		}
	})

	t.Run("gives up after max attempts", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		store := mock_services.NewMockTransactionStore(ctrl)
		svc := services.NewPaymentService(store, nil, zaptest.NewLogger(t),
			services.WithIDGenerator(counter()), services.WithMaxIDAttempts(10))

		store.EXPECT().ExistsByMerchantTransactionID(gomock.Any(), gomock.Any()).Return(true, nil).Times(10)

		_, err := svc.ResolveTransactionID(context.Background())
		if !errors.Is(err, services.ErrTransactionIDExhausted) {
			t.Fatalf("expected ErrTransactionIDExhausted, got %v", err)
		}
	})

	t.Run("store error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		store := mock_services.NewMockTransactionStore(ctrl)
		svc := services.NewPaymentService(store, nil, zaptest.NewLogger(t), services.WithIDGenerator(counter()))

		dbErr := errors.New("connection reset")
		store.EXPECT().ExistsByMerchantTransactionID(gomock.Any(), gomock.Any()).Return(false, dbErr)

		_, err := svc.ResolveTransactionID(context.Background())
		if !errors.Is(err, dbErr) {
			t.Fatalf("expected wrapped db error, got %v", err)
		}
	})
}

func TestInitiatePaymentAccepted(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	store := mock_services.NewMockTransactionStore(ctrl)
	gateway := mock_services.NewMockPaymentGateway(ctrl)
	events := mock_services.NewMockEventPublisher(ctrl)
	svc := services.NewPaymentService(store, gateway, zaptest.NewLogger(t),
		services.WithIDGenerator(sequence("T1700000000000ABC123")),
		services.WithEventPublisher(events))

	var stored []*models.PaymentTransaction
	store.EXPECT().ExistsByMerchantTransactionID(gomock.Any(), "T1700000000000ABC123").Return(false, nil)
	gateway.EXPECT().Pay(gomock.Any(), services.PayRequest{
		MerchantTransactionID: "T1700000000000ABC123",
		Amount:                499,
		UserID:                "u1",
		Mobile:                "9999999999",
	}).Return(checkoutAccepted, nil)
	store.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, txn *models.PaymentTransaction) error {
		txn.ID = uuid.New()
		stored = append(stored, txn)
		return nil
	})
	events.EXPECT().Publish(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, ev services.PaymentEvent) error {
		if ev.Type != services.EventPaymentInitiated || ev.MerchantTransactionID != "T1700000000000ABC123" {
			t.Errorf("unexpected event %+v", ev)
		}
		return nil
	})

	res, err := svc.InitiatePayment(context.Background(), services.InitiatePaymentInput{Amount: 499, UserID: "u1", Mobile: "9999999999"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !res.Accepted || res.CheckoutURL != "https://pay.example/checkout/abc" {
		t.Fatalf("unexpected result %+v", res)
	}
	if res.MerchantTransactionID != "T1700000000000ABC123" {
		t.Errorf("expected merchant transaction id in result, got %q", res.MerchantTransactionID)
	}

	if len(stored) != 1 {
		t.Fatalf("expected exactly one stored record, got %d", len(stored))
	}
	txn := stored[0]
	if txn.PaymentStatus != models.PaymentStatusInitiated {
		t.Errorf("expected PAYMENT_INITIATED, got %s", txn.PaymentStatus)
	}
	if txn.Amount != 499 || txn.UserID != "u1" || txn.MerchantID != "MERCHANT" {
		t.Errorf("unexpected record %+v", txn)
	}
	if txn.MerchantTransactionID == "" || txn.Type != models.TransactionTypePayment {
		t.Errorf("unexpected record %+v", txn)
	}
}

func TestInitiatePaymentFailuresStoreNothing(t *testing.T) {
	tests := []struct {
		name       string
		result     *services.PayResult
		err        error
		wantErr    error
		wantReject bool
	}{
		{
			name:       "gateway gave no redirect url",
			result:     &services.PayResult{Code: "BAD_REQUEST", Message: "Something went wrong"},
			wantReject: true,
		},
		{
			name:    "connection refused",
			err:     &services.GatewayError{Err: errors.New("connection refused")},
			wantErr: services.ErrGatewayUnavailable,
		},
		{
			name:    "gateway 503",
			err:     &services.GatewayError{StatusCode: 503, Ambiguous: true, Err: errors.New("unavailable")},
			wantErr: services.ErrGatewayUnavailable,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			store := mock_services.NewMockTransactionStore(ctrl)
			gateway := mock_services.NewMockPaymentGateway(ctrl)
			svc := services.NewPaymentService(store, gateway, zaptest.NewLogger(t), services.WithIDGenerator(counter()))

			store.EXPECT().ExistsByMerchantTransactionID(gomock.Any(), gomock.Any()).Return(false, nil)
			gateway.EXPECT().Pay(gomock.Any(), gomock.Any()).Return(tt.result, tt.err)
			store.EXPECT().Create(gomock.Any(), gomock.Any()).Times(0)

			res, err := svc.InitiatePayment(context.Background(), services.InitiatePaymentInput{Amount: 499, UserID: "u1", Mobile: "9999999999"})
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("expected %v, got %v", tt.wantErr, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if res.Accepted || res.Message == "" {
				t.Fatalf("expected rejection with message, got %+v", res)
			}
		})
	}
}

func TestInitiatePaymentAmbiguousTimeoutFlagsReconciliation(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	store := mock_services.NewMockTransactionStore(ctrl)
	gateway := mock_services.NewMockPaymentGateway(ctrl)
	events := mock_services.NewMockEventPublisher(ctrl)
	svc := services.NewPaymentService(store, gateway, zaptest.NewLogger(t),
		services.WithIDGenerator(sequence("T1")), services.WithEventPublisher(events))

	store.EXPECT().ExistsByMerchantTransactionID(gomock.Any(), "T1").Return(false, nil)
	gateway.EXPECT().Pay(gomock.Any(), gomock.Any()).
		Return(nil, &services.GatewayError{Ambiguous: true, Err: context.DeadlineExceeded})
	events.EXPECT().Publish(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, ev services.PaymentEvent) error {
		if ev.Type != services.EventReconciliationRequired || ev.Reason != "gateway_timeout" || ev.MerchantTransactionID != "T1" {
			t.Errorf("unexpected event %+v", ev)
		}
		return nil
	})

	_, err := svc.InitiatePayment(context.Background(), services.InitiatePaymentInput{Amount: 499, UserID: "u1", Mobile: "9999999999"})
	if !errors.Is(err, services.ErrGatewayUnavailable) {
		t.Fatalf("expected ErrGatewayUnavailable, got %v", err)
	}
}

func TestInitiatePaymentPersistFailureStillAccepted(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	store := mock_services.NewMockTransactionStore(ctrl)
	gateway := mock_services.NewMockPaymentGateway(ctrl)
	events := mock_services.NewMockEventPublisher(ctrl)
	svc := services.NewPaymentService(store, gateway, zaptest.NewLogger(t),
		services.WithIDGenerator(sequence("T1")), services.WithEventPublisher(events))

	store.EXPECT().ExistsByMerchantTransactionID(gomock.Any(), "T1").Return(false, nil)
	gateway.EXPECT().Pay(gomock.Any(), gomock.Any()).Return(checkoutAccepted, nil)
	store.EXPECT().Create(gomock.Any(), gomock.Any()).Return(errors.New("database is down"))
	events.EXPECT().Publish(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, ev services.PaymentEvent) error {
		if ev.Type != services.EventReconciliationRequired || ev.Reason != "persist_failed" {
			t.Errorf("unexpected event %+v", ev)
		}
		if ev.CheckoutURL != checkoutAccepted.CheckoutURL {
			t.Errorf("reconciliation event must carry the checkout url, got %q", ev.CheckoutURL)
		}
		return nil
	})

	res, err := svc.InitiatePayment(context.Background(), services.InitiatePaymentInput{Amount: 499, UserID: "u1", Mobile: "9999999999"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !res.Accepted || res.CheckoutURL != checkoutAccepted.CheckoutURL {
		t.Fatalf("expected accepted result, got %+v", res)
	}
}

func TestInitiatePaymentDuplicateInsertReinitiates(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	store := mock_services.NewMockTransactionStore(ctrl)
	gateway := mock_services.NewMockPaymentGateway(ctrl)
	svc := services.NewPaymentService(store, gateway, zaptest.NewLogger(t),
		services.WithIDGenerator(sequence("T1", "T2")))

	second := &services.PayResult{Accepted: true, CheckoutURL: "https://pay.example/checkout/def", MerchantID: "MERCHANT"}
	gomock.InOrder(
		store.EXPECT().ExistsByMerchantTransactionID(gomock.Any(), "T1").Return(false, nil),
		gateway.EXPECT().Pay(gomock.Any(), gomock.Any()).Return(checkoutAccepted, nil),
		store.EXPECT().Create(gomock.Any(), gomock.Any()).Return(errors.Join(repository.ErrDuplicateKey, errors.New("23505"))),
		store.EXPECT().ExistsByMerchantTransactionID(gomock.Any(), "T2").Return(false, nil),
		gateway.EXPECT().Pay(gomock.Any(), gomock.Any()).Return(second, nil),
		store.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil),
	)

	res, err := svc.InitiatePayment(context.Background(), services.InitiatePaymentInput{Amount: 499, UserID: "u1", Mobile: "9999999999"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.MerchantTransactionID != "T2" || res.CheckoutURL != second.CheckoutURL {
		t.Fatalf("expected second checkout, got %+v", res)
	}
}

func TestInitiatePaymentValidation(t *testing.T) {
	tests := []services.InitiatePaymentInput{
		{Amount: 0, UserID: "u1", Mobile: "9999999999"},
		{Amount: -5, UserID: "u1", Mobile: "9999999999"},
		{Amount: 499, UserID: " ", Mobile: "9999999999"},
		{Amount: 499, UserID: "u1", Mobile: ""},
	}
	for _, in := range tests {
		ctrl := gomock.NewController(t)
		svc := services.NewPaymentService(mock_services.NewMockTransactionStore(ctrl), mock_services.NewMockPaymentGateway(ctrl), zaptest.NewLogger(t))

		_, err := svc.InitiatePayment(context.Background(), in)
		var verr *services.ValidationError
		if !errors.As(err, &verr) {
			t.Errorf("input %+v: expected ValidationError, got %v", in, err)
		}
		ctrl.Finish()
	}
}

func TestInitiatePaymentIdempotency(t *testing.T) {
	input := services.InitiatePaymentInput{Amount: 499, UserID: "u1", Mobile: "9999999999", IdempotencyKey: "k-1"}

	t.Run("replays completed result", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		idem := mock_services.NewMockIdempotencyStore(ctrl)
		svc := services.NewPaymentService(mock_services.NewMockTransactionStore(ctrl), mock_services.NewMockPaymentGateway(ctrl),
			zaptest.NewLogger(t), services.WithIdempotencyStore(idem))

		cached := &services.InitiatePaymentResult{Accepted: true, CheckoutURL: "https://pay.example/checkout/abc", MerchantTransactionID: "T1"}
		idem.EXPECT().Reserve(gomock.Any(), "u1:k-1", "499|9999999999").Return(cached, false, nil)

		res, err := svc.InitiatePayment(context.Background(), input)
		if err != nil || res != cached {
			t.Fatalf("expected cached result, got %+v, %v", res, err)
		}
	})

	t.Run("rejects key reused with a different body", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		idem := mock_services.NewMockIdempotencyStore(ctrl)
		svc := services.NewPaymentService(mock_services.NewMockTransactionStore(ctrl), mock_services.NewMockPaymentGateway(ctrl),
			zaptest.NewLogger(t), services.WithIdempotencyStore(idem))

		changed := input
		changed.Amount = 999
		idem.EXPECT().Reserve(gomock.Any(), "u1:k-1", "999|9999999999").Return(nil, false, services.ErrIdempotencyKeyReused)

		res, err := svc.InitiatePayment(context.Background(), changed)
		if !errors.Is(err, services.ErrIdempotencyKeyReused) || res != nil {
			t.Fatalf("expected ErrIdempotencyKeyReused, got %+v, %v", res, err)
		}
	})

	t.Run("concurrent duplicate", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		idem := mock_services.NewMockIdempotencyStore(ctrl)
		svc := services.NewPaymentService(mock_services.NewMockTransactionStore(ctrl), mock_services.NewMockPaymentGateway(ctrl),
			zaptest.NewLogger(t), services.WithIdempotencyStore(idem))

		idem.EXPECT().Reserve(gomock.Any(), "u1:k-1", "499|9999999999").Return(nil, false, nil)

		_, err := svc.InitiatePayment(context.Background(), input)
		if !errors.Is(err, services.ErrPaymentInProgress) {
			t.Fatalf("expected ErrPaymentInProgress, got %v", err)
		}
	})

	t.Run("completes accepted result", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		store := mock_services.NewMockTransactionStore(ctrl)
		gateway := mock_services.NewMockPaymentGateway(ctrl)
		idem := mock_services.NewMockIdempotencyStore(ctrl)
		svc := services.NewPaymentService(store, gateway, zaptest.NewLogger(t),
			services.WithIDGenerator(sequence("T1")), services.WithIdempotencyStore(idem))

		idem.EXPECT().Reserve(gomock.Any(), "u1:k-1", "499|9999999999").Return(nil, true, nil)
		store.EXPECT().ExistsByMerchantTransactionID(gomock.Any(), "T1").Return(false, nil)
		gateway.EXPECT().Pay(gomock.Any(), gomock.Any()).Return(checkoutAccepted, nil)
		store.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)
		idem.EXPECT().Complete(gomock.Any(), "u1:k-1", "499|9999999999", gomock.Any()).Return(nil)

		if _, err := svc.InitiatePayment(context.Background(), input); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("releases key on decline", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		store := mock_services.NewMockTransactionStore(ctrl)
		gateway := mock_services.NewMockPaymentGateway(ctrl)
		idem := mock_services.NewMockIdempotencyStore(ctrl)
		svc := services.NewPaymentService(store, gateway, zaptest.NewLogger(t),
			services.WithIDGenerator(sequence("T1")), services.WithIdempotencyStore(idem))

		idem.EXPECT().Reserve(gomock.Any(), "u1:k-1", "499|9999999999").Return(nil, true, nil)
		store.EXPECT().ExistsByMerchantTransactionID(gomock.Any(), "T1").Return(false, nil)
		gateway.EXPECT().Pay(gomock.Any(), gomock.Any()).Return(&services.PayResult{Message: "declined"}, nil)
		idem.EXPECT().Release(gomock.Any(), "u1:k-1").Return(nil)

		res, err := svc.InitiatePayment(context.Background(), input)
		if err != nil || res.Accepted {
			t.Fatalf("expected decline, got %+v, %v", res, err)
		}
	})

	t.Run("store outage fails open", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		store := mock_services.NewMockTransactionStore(ctrl)
		gateway := mock_services.NewMockPaymentGateway(ctrl)
		idem := mock_services.NewMockIdempotencyStore(ctrl)
		svc := services.NewPaymentService(store, gateway, zaptest.NewLogger(t),
			services.WithIDGenerator(sequence("T1")), services.WithIdempotencyStore(idem))

		idem.EXPECT().Reserve(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, false, errors.New("redis: connection refused"))
		store.EXPECT().ExistsByMerchantTransactionID(gomock.Any(), "T1").Return(false, nil)
		gateway.EXPECT().Pay(gomock.Any(), gomock.Any()).Return(checkoutAccepted, nil)
		store.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)

		res, err := svc.InitiatePayment(context.Background(), input)
		if err != nil || !res.Accepted {
			t.Fatalf("expected accepted result, got %+v, %v", res, err)
		}
	})
}

func TestListByUserClampsLimit(t *testing.T) {
	tests := []struct {
		in, want int
	}{
		{0, 50},
		{-3, 50},
		{20, 20},
		{5000, 1000},
	}
	for _, tt := range tests {
		ctrl := gomock.NewController(t)
		store := mock_services.NewMockTransactionStore(ctrl)
		svc := services.NewPaymentService(store, nil, zaptest.NewLogger(t))

		store.EXPECT().ListByUserID(gomock.Any(), "u1", tt.want).Return(nil, nil)

		txns, err := svc.ListByUser(context.Background(), "u1", tt.in)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if txns == nil {
			t.Errorf("expected empty slice, got nil")
		}
		ctrl.Finish()
	}
}

func TestGetByIDNotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	store := mock_services.NewMockTransactionStore(ctrl)
	svc := services.NewPaymentService(store, nil, zaptest.NewLogger(t))

	store.EXPECT().FindByID(gomock.Any(), "missing").Return(nil, repository.ErrNotFound)
	store.EXPECT().FindByMerchantTransactionID(gomock.Any(), "T404").Return(nil, repository.ErrNotFound)

	if _, err := svc.GetByID(context.Background(), "missing"); !errors.Is(err, services.ErrTransactionNotFound) {
		t.Errorf("expected ErrTransactionNotFound, got %v", err)
	}
	if _, err := svc.GetByMerchantTransactionID(context.Background(), "T404"); !errors.Is(err, services.ErrTransactionNotFound) {
		t.Errorf("expected ErrTransactionNotFound, got %v", err)
	}
}

func TestUpdateTransaction(t *testing.T) {
	success := models.PaymentStatusSuccess

	t.Run("rejects unknown status", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		svc := services.NewPaymentService(mock_services.NewMockTransactionStore(ctrl), nil, zaptest.NewLogger(t))

		bogus := models.PaymentStatus("PAID")
		_, err := svc.UpdateTransaction(context.Background(), "id", models.TransactionUpdate{PaymentStatus: &bogus})
		var verr *services.ValidationError
		if !errors.As(err, &verr) {
			t.Fatalf("expected ValidationError, got %v", err)
		}
	})

	t.Run("status change publishes event once", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		store := mock_services.NewMockTransactionStore(ctrl)
		events := mock_services.NewMockEventPublisher(ctrl)
		svc := services.NewPaymentService(store, nil, zaptest.NewLogger(t), services.WithEventPublisher(events))

		txn := &models.PaymentTransaction{MerchantTransactionID: "T1", UserID: "u1", PaymentStatus: success}
		upd := models.TransactionUpdate{PaymentStatus: &success}
		gomock.InOrder(
			store.EXPECT().UpdateByID(gomock.Any(), "id", upd).Return(txn, []string{"payment_status"}, nil),
			store.EXPECT().UpdateByID(gomock.Any(), "id", upd).Return(txn, nil, nil),
		)
		events.EXPECT().Publish(gomock.Any(), gomock.Any()).Return(nil).Times(1)

		first, err := svc.UpdateTransaction(context.Background(), "id", upd)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		second, err := svc.UpdateTransaction(context.Background(), "id", upd)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if first.PaymentStatus != second.PaymentStatus {
			t.Errorf("final states differ: %s vs %s", first.PaymentStatus, second.PaymentStatus)
		}
	})

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		store := mock_services.NewMockTransactionStore(ctrl)
		svc := services.NewPaymentService(store, nil, zaptest.NewLogger(t))

		store.EXPECT().UpdateByID(gomock.Any(), "missing", gomock.Any()).Return(nil, nil, repository.ErrNotFound)

		_, err := svc.UpdateTransaction(context.Background(), "missing", models.TransactionUpdate{PaymentStatus: &success})
		if !errors.Is(err, services.ErrTransactionNotFound) {
			t.Fatalf("expected ErrTransactionNotFound, got %v", err)
		}
	})
}

func TestHandleCallback(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	store := mock_services.NewMockTransactionStore(ctrl)
	svc := services.NewPaymentService(store, nil, zaptest.NewLogger(t))

	id := uuid.New()
	existing := &models.PaymentTransaction{Record: models.Record{ID: id}, MerchantTransactionID: "T1", PaymentStatus: models.PaymentStatusInitiated}
	cb := &services.CallbackPayload{Code: "PAYMENT_SUCCESS", Data: services.CallbackData{MerchantTransactionID: "T1", TransactionID: "PP123"}}

	store.EXPECT().FindByMerchantTransactionID(gomock.Any(), "T1").Return(existing, nil)
	store.EXPECT().UpdateByID(gomock.Any(), id.String(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, upd models.TransactionUpdate) (*models.PaymentTransaction, []string, error) {
			if upd.PaymentStatus == nil || *upd.PaymentStatus != models.PaymentStatusSuccess {
				t.Errorf("expected PAYMENT_SUCCESS update, got %+v", upd.PaymentStatus)
			}
			if upd.PhonepeTransactionID == nil || *upd.PhonepeTransactionID != "PP123" {
				t.Errorf("expected gateway transaction id, got %+v", upd.PhonepeTransactionID)
			}
			updated := *existing
			upd.Apply(&updated)
			return &updated, []string{"payment_status", "phonepe_transaction_id"}, nil
		})

	txn, err := svc.HandleCallback(context.Background(), cb)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if txn.PaymentStatus != models.PaymentStatusSuccess {
		t.Fatalf("expected PAYMENT_SUCCESS, got %s", txn.PaymentStatus)
	}
}

func TestAcknowledgeRedirect(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := mock_services.NewMockTransactionStore(ctrl)
	svc := services.NewPaymentService(store, nil, zaptest.NewLogger(t))

	id := uuid.New()
	pending := &models.PaymentTransaction{Record: models.Record{ID: id}, MerchantTransactionID: "T1", PaymentStatus: models.PaymentStatusInitiated}
	store.EXPECT().FindByMerchantTransactionID(gomock.Any(), "T1").Return(pending, nil)
	store.EXPECT().UpdateByID(gomock.Any(), id.String(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, upd models.TransactionUpdate) (*models.PaymentTransaction, []string, error) {
			if upd.IsUICallbackProcessed == nil || !*upd.IsUICallbackProcessed || upd.PaymentStatus != nil {
				t.Errorf("unexpected update %+v", upd)
			}
			done := *pending
			upd.Apply(&done)
			return &done, []string{"is_ui_callback_processed"}, nil
		})

	txn, err := svc.AcknowledgeRedirect(context.Background(), "T1")
	if err != nil {
		t.Fatalf("AcknowledgeRedirect: %v", err)
	}
	if !txn.IsUICallbackProcessed || txn.PaymentStatus != models.PaymentStatusInitiated {
		t.Fatalf("unexpected transaction %+v", txn)
	}

	acked := &models.PaymentTransaction{Record: models.Record{ID: id}, MerchantTransactionID: "T1", IsUICallbackProcessed: true}
	store.EXPECT().FindByMerchantTransactionID(gomock.Any(), "T1").Return(acked, nil)
	if _, err := svc.AcknowledgeRedirect(context.Background(), "T1"); err != nil {
		t.Fatalf("second AcknowledgeRedirect: %v", err)
	}

	store.EXPECT().FindByMerchantTransactionID(gomock.Any(), "T404").Return(nil, repository.ErrNotFound)
	if _, err := svc.AcknowledgeRedirect(context.Background(), "T404"); !errors.Is(err, services.ErrTransactionNotFound) {
		t.Fatalf("expected ErrTransactionNotFound, got %v", err)
	}
}
