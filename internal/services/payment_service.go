package services

import (
	"context"
	"errors"
	"fmt"
	"math"
	"slices"
	"strings"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.uber.org/zap"

	"github.com/example/stabiliq/internal/metrics"
	"github.com/example/stabiliq/internal/models"
	"github.com/example/stabiliq/internal/repository"
)

const (
	defaultIDAttempts   = 10
	defaultListLimit    = 50
	defaultMaxListLimit = 1000
	persistTimeout      = 5 * time.Second
)

// InitiatePaymentInput is one payment creation request.
type InitiatePaymentInput struct {
	Amount         float64
	UserID         string
	Mobile         string
	IdempotencyKey string
}

// InitiatePaymentResult is what the caller sees. Accepted=false carries the
// gateway's decline message.
type InitiatePaymentResult struct {
	Accepted              bool   `json:"accepted"`
	CheckoutURL           string `json:"checkoutUrl,omitempty"`
	MerchantTransactionID string `json:"merchantTransactionId,omitempty"`
	Message               string `json:"message,omitempty"`
}

func (in InitiatePaymentInput) validate() error {
	if math.IsNaN(in.Amount) || math.IsInf(in.Amount, 0) || in.Amount <= 0 {
		return invalid("amount must be a positive number")
	}
	if strings.TrimSpace(in.UserID) == "" {
		return invalid("userId is required")
	}
	if strings.TrimSpace(in.Mobile) == "" {
		return invalid("mobile is required")
	}
	return nil
}

// fingerprint identifies the request body an Idempotency-Key was first used with.
func (in InitiatePaymentInput) fingerprint() string {
	return fmt.Sprintf("%g|%s", in.Amount, strings.TrimSpace(in.Mobile))
}

// PaymentService orchestrates payment initiation and owns the transaction
// query and update operations.
type PaymentService struct {
	store       TransactionStore
	gateway     PaymentGateway
	events      EventPublisher
	idempotency IdempotencyStore
	log         *zap.Logger

	newID       func() string
	maxAttempts int
	listDefault int
	listMax     int
	now         func() time.Time
}

type PaymentOption func(*PaymentService)

// WithIDGenerator replaces the merchant transaction id generator.
func WithIDGenerator(fn func() string) PaymentOption {
	return func(s *PaymentService) { s.newID = fn }
}

// WithMaxIDAttempts bounds id regeneration and duplicate-insert retries.
func WithMaxIDAttempts(n int) PaymentOption {
	return func(s *PaymentService) {
		if n > 0 {
			s.maxAttempts = n
		}
	}
}

func WithListLimits(def, max int) PaymentOption {
	return func(s *PaymentService) {
		if def > 0 && max >= def {
			s.listDefault, s.listMax = def, max
		}
	}
}

func WithEventPublisher(p EventPublisher) PaymentOption {
	return func(s *PaymentService) { s.events = p }
}

func WithIdempotencyStore(st IdempotencyStore) PaymentOption {
	return func(s *PaymentService) { s.idempotency = st }
}

func NewPaymentService(store TransactionStore, gateway PaymentGateway, log *zap.Logger, opts ...PaymentOption) *PaymentService {
	s := &PaymentService{
		store:       store,
		gateway:     gateway,
		events:      NopEventPublisher{},
		log:         log.Named("payments"),
		newID:       NewTransactionID,
		maxAttempts: defaultIDAttempts,
		listDefault: defaultListLimit,
		listMax:     defaultMaxListLimit,
		now:         time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// ResolveTransactionID generates candidates until one is not used by an
// active transaction. It gives up with ErrTransactionIDExhausted.
func (s *PaymentService) ResolveTransactionID(ctx context.Context) (string, error) {
	for attempt := 1; attempt <= s.maxAttempts; attempt++ {
		candidate := s.newID()
		exists, err := s.store.ExistsByMerchantTransactionID(ctx, candidate)
		if err != nil {
			return "", fmt.Errorf("check merchant transaction id: %w", err)
		}
		if !exists {
			return candidate, nil
		}
		s.log.Warn("merchant transaction id already in use, regenerating",
			zap.String("merchant_transaction_id", candidate),
			zap.Int("attempt", attempt),
		)
	}
	return "", ErrTransactionIDExhausted
}

// InitiatePayment starts a checkout. A record is stored only after the gateway
// accepts the request.
func (s *PaymentService) InitiatePayment(ctx context.Context, in InitiatePaymentInput) (*InitiatePaymentResult, error) {
	ctx, span := tracer.Start(ctx, "PaymentService.InitiatePayment")
	defer span.End()
	span.SetAttributes(attribute.String("payment.user_id", in.UserID))

	res, err := s.initiateOnce(ctx, in)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}
	span.SetAttributes(attribute.Bool("payment.accepted", res.Accepted))
	return res, nil
}

// initiateOnce applies the Idempotency-Key, when present, around initiate.
func (s *PaymentService) initiateOnce(ctx context.Context, in InitiatePaymentInput) (*InitiatePaymentResult, error) {
	if err := in.validate(); err != nil {
		return nil, err
	}

	key := strings.TrimSpace(in.IdempotencyKey)
	if key == "" || s.idempotency == nil {
		return s.initiate(ctx, in)
	}

	key = in.UserID + ":" + key
	fingerprint := in.fingerprint()
	cached, reserved, err := s.idempotency.Reserve(ctx, key, fingerprint)
	switch {
	case errors.Is(err, ErrIdempotencyKeyReused):
		return nil, err
	case err != nil:
		s.log.Warn("idempotency store unavailable, continuing without it", zap.Error(err))
		return s.initiate(ctx, in)
	case cached != nil:
		s.log.Info("replaying payment initiation", zap.String("merchant_transaction_id", cached.MerchantTransactionID))
		return cached, nil
	case !reserved:
		return nil, ErrPaymentInProgress
	}

	res, err := s.initiate(ctx, in)
	if err == nil && res.Accepted {
		if cerr := s.idempotency.Complete(ctx, key, fingerprint, res); cerr != nil {
			s.log.Warn("failed to store idempotent result", zap.Error(cerr))
		}
		return res, nil
	}
	if rerr := s.idempotency.Release(context.WithoutCancel(ctx), key); rerr != nil {
		s.log.Warn("failed to release idempotency key", zap.Error(rerr))
	}
	return res, err
}

func (s *PaymentService) initiate(ctx context.Context, in InitiatePaymentInput) (*InitiatePaymentResult, error) {
	for round := 1; round <= s.maxAttempts; round++ {
		id, err := s.ResolveTransactionID(ctx)
		if err != nil {
			if errors.Is(err, ErrTransactionIDExhausted) {
				metrics.RecordPaymentInitiation("id_exhausted")
			}
			return nil, err
		}

		log := s.log.With(
			zap.String("merchant_transaction_id", id),
			zap.String("user_id", in.UserID),
			zap.Float64("amount", in.Amount),
			zap.String("mobile", in.Mobile),
		)

		result, err := s.gateway.Pay(ctx, PayRequest{
			MerchantTransactionID: id,
			Amount:                in.Amount,
			UserID:                in.UserID,
			Mobile:                in.Mobile,
		})
		if err != nil {
			s.gatewayFailed(ctx, log, id, in, err)
			return nil, err
		}
		if !result.Accepted {
			log.Info("gateway declined payment initiation", zap.String("code", result.Code), zap.String("message", result.Message))
			metrics.RecordPaymentInitiation("declined")
			return &InitiatePaymentResult{Message: result.Message}, nil
		}

		txn := &models.PaymentTransaction{
			MerchantTransactionID: id,
			MerchantID:            result.MerchantID,
			UserID:                in.UserID,
			Amount:                in.Amount,
			PaymentStatus:         models.PaymentStatusInitiated,
			Type:                  models.TransactionTypePayment,
		}

		// the gateway already holds this payment, so a cancelled request
		// must not abort the write
		persistCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), persistTimeout)
		err = s.store.Create(persistCtx, txn)
		cancel()

		accepted := &InitiatePaymentResult{Accepted: true, CheckoutURL: result.CheckoutURL, MerchantTransactionID: id}
		switch {
		case err == nil:
			log.Info("payment initiated", zap.String("transaction_id", txn.ID.String()))
			metrics.RecordPaymentInitiation("accepted")
			s.publish(ctx, PaymentEvent{
				Type:                  EventPaymentInitiated,
				TransactionID:         txn.ID.String(),
				MerchantTransactionID: id,
				UserID:                in.UserID,
				Amount:                in.Amount,
				Status:                models.PaymentStatusInitiated,
			})
			return accepted, nil

		case errors.Is(err, repository.ErrDuplicateKey):
			log.Warn("merchant transaction id taken at insert, gateway checkout orphaned; re-initiating",
				zap.String("event", "reconciliation_required"),
				zap.String("reason", "orphaned_checkout"),
				zap.String("checkout_url", result.CheckoutURL),
				zap.Int("round", round),
			)
			metrics.RecordReconciliationRequired("orphaned_checkout")
			s.publish(ctx, PaymentEvent{
				Type:                  EventReconciliationRequired,
				MerchantTransactionID: id,
				UserID:                in.UserID,
				Amount:                in.Amount,
				Reason:                "orphaned_checkout",
				CheckoutURL:           result.CheckoutURL,
			})
			continue

		default:
			log.Error("gateway accepted payment but it was not stored; reconcile manually",
				zap.String("event", "reconciliation_required"),
				zap.String("reason", "persist_failed"),
				zap.String("checkout_url", result.CheckoutURL),
				zap.Error(err),
			)
			metrics.RecordReconciliationRequired("persist_failed")
			metrics.RecordPaymentInitiation("accepted_unpersisted")
			s.publish(ctx, PaymentEvent{
				Type:                  EventReconciliationRequired,
				MerchantTransactionID: id,
				UserID:                in.UserID,
				Amount:                in.Amount,
				Status:                models.PaymentStatusInitiated,
				Reason:                "persist_failed",
				CheckoutURL:           result.CheckoutURL,
			})
			return accepted, nil
		}
	}

	metrics.RecordPaymentInitiation("id_exhausted")
	return nil, ErrTransactionIDExhausted
}

func (s *PaymentService) gatewayFailed(ctx context.Context, log *zap.Logger, id string, in InitiatePaymentInput, err error) {
	metrics.RecordPaymentInitiation("gateway_unavailable")

	var gwErr *GatewayError
	if !errors.As(err, &gwErr) || !gwErr.Ambiguous {
		log.Warn("payment gateway unavailable", zap.Error(err))
		return
	}

	log.Error("gateway outcome unknown; reconcile manually",
		zap.String("event", "reconciliation_required"),
		zap.String("reason", "gateway_timeout"),
		zap.Int("status", gwErr.StatusCode),
		zap.Error(err),
	)
	metrics.RecordReconciliationRequired("gateway_timeout")
	s.publish(ctx, PaymentEvent{
		Type:                  EventReconciliationRequired,
		MerchantTransactionID: id,
		UserID:                in.UserID,
		Amount:                in.Amount,
		Reason:                "gateway_timeout",
	})
}

func (s *PaymentService) publish(ctx context.Context, ev PaymentEvent) {
	ev.OccurredAt = s.now().UTC()
	if err := s.events.Publish(context.WithoutCancel(ctx), ev); err != nil {
		s.log.Warn("failed to publish payment event",
			zap.String("type", ev.Type),
			zap.String("merchant_transaction_id", ev.MerchantTransactionID),
			zap.Error(err),
		)
	}
}

// GetByID returns a transaction by internal id, soft-deleted ones included.
func (s *PaymentService) GetByID(ctx context.Context, id string) (*models.PaymentTransaction, error) {
	txn, err := s.store.FindByID(ctx, id)
	return txn, notFound(err)
}

// GetByMerchantTransactionID returns the active transaction with that id.
func (s *PaymentService) GetByMerchantTransactionID(ctx context.Context, id string) (*models.PaymentTransaction, error) {
	txn, err := s.store.FindByMerchantTransactionID(ctx, id)
	return txn, notFound(err)
}

// ListByUser returns a user's active transactions, newest first. A limit
// outside (0, max] falls back to the default or the maximum.
func (s *PaymentService) ListByUser(ctx context.Context, userID string, limit int) ([]models.PaymentTransaction, error) {
	switch {
	case limit <= 0:
		limit = s.listDefault
	case limit > s.listMax:
		limit = s.listMax
	}
	txns, err := s.store.ListByUserID(ctx, userID, limit)
	if err != nil {
		return nil, err
	}
	if txns == nil {
		txns = []models.PaymentTransaction{}
	}
	return txns, nil
}

// UpdateTransaction merges upd into the transaction. Re-applying the same
// update changes nothing.
func (s *PaymentService) UpdateTransaction(ctx context.Context, id string, upd models.TransactionUpdate) (*models.PaymentTransaction, error) {
	if err := validateUpdate(upd); err != nil {
		return nil, err
	}

	txn, changed, err := s.store.UpdateByID(ctx, id, upd)
	if err != nil {
		return nil, notFound(err)
	}
	if slices.Contains(changed, "payment_status") {
		s.log.Info("payment status changed",
			zap.String("merchant_transaction_id", txn.MerchantTransactionID),
			zap.String("status", string(txn.PaymentStatus)),
		)
		metrics.RecordStatusUpdate(string(txn.PaymentStatus))
		s.publish(ctx, PaymentEvent{
			Type:                  EventPaymentUpdated,
			TransactionID:         txn.ID.String(),
			MerchantTransactionID: txn.MerchantTransactionID,
			UserID:                txn.UserID,
			Amount:                txn.Amount,
			Status:                txn.PaymentStatus,
		})
	}
	return txn, nil
}

// HandleCallback applies a verified gateway callback to the matching
// transaction.
func (s *PaymentService) HandleCallback(ctx context.Context, cb *CallbackPayload) (*models.PaymentTransaction, error) {
	ctx, span := tracer.Start(ctx, "PaymentService.HandleCallback")
	defer span.End()
	span.SetAttributes(attribute.String("payment.merchant_transaction_id", cb.Data.MerchantTransactionID))

	txn, err := s.store.FindByMerchantTransactionID(ctx, cb.Data.MerchantTransactionID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			s.log.Warn("callback for unknown transaction",
				zap.String("merchant_transaction_id", cb.Data.MerchantTransactionID),
				zap.String("code", cb.Code),
			)
		}
		return nil, notFound(err)
	}
	return s.UpdateTransaction(ctx, txn.ID.String(), cb.Update())
}

// AcknowledgeRedirect records that the member's browser came back from the
// checkout page. The payment status itself only changes through the signed
// server-to-server callback.
func (s *PaymentService) AcknowledgeRedirect(ctx context.Context, merchantTransactionID string) (*models.PaymentTransaction, error) {
	txn, err := s.store.FindByMerchantTransactionID(ctx, merchantTransactionID)
	if err != nil {
		return nil, notFound(err)
	}
	if txn.IsUICallbackProcessed {
		return txn, nil
	}
	processed := true
	return s.UpdateTransaction(ctx, txn.ID.String(), models.TransactionUpdate{IsUICallbackProcessed: &processed})
}

func validateUpdate(upd models.TransactionUpdate) error {
	if upd.PaymentStatus != nil && !upd.PaymentStatus.Valid() {
		return invalid("invalid paymentStatus %q", *upd.PaymentStatus)
	}
	if upd.Type != nil && !upd.Type.Valid() {
		return invalid("invalid type %q", *upd.Type)
	}
	if upd.Plan != nil && !upd.Plan.Valid() {
		return invalid("invalid plan %q", *upd.Plan)
	}
	for name, v := range map[string]*float64{"amount": upd.Amount, "totalAmount": upd.TotalAmount} {
		if v != nil && (math.IsNaN(*v) || math.IsInf(*v, 0) || *v < 0) {
			return invalid("%s must be a non-negative number", name)
		}
	}
	return nil
}

func notFound(err error) error {
	if errors.Is(err, repository.ErrNotFound) {
		return ErrTransactionNotFound
	}
	return err
}
