package services

import (
	"context"
	"time"

	"github.com/example/stabiliq/internal/models"
)

//go:generate mockgen -source=ports.go -destination=mocks/ports_mock.go -package=mock_services

// TransactionStore persists payment transactions.
type TransactionStore interface {
	ExistsByMerchantTransactionID(ctx context.Context, id string) (bool, error)
	Create(ctx context.Context, txn *models.PaymentTransaction) error
	FindByID(ctx context.Context, id string) (*models.PaymentTransaction, error)
	FindByMerchantTransactionID(ctx context.Context, id string) (*models.PaymentTransaction, error)
	ListByUserID(ctx context.Context, userID string, limit int) ([]models.PaymentTransaction, error)
	UpdateByID(ctx context.Context, id string, upd models.TransactionUpdate) (*models.PaymentTransaction, []string, error)
}

// PaymentGateway starts a checkout at the payment provider.
type PaymentGateway interface {
	Pay(ctx context.Context, req PayRequest) (*PayResult, error)
}

// EventPublisher emits payment lifecycle events.
type EventPublisher interface {
	Publish(ctx context.Context, ev PaymentEvent) error
}

// IdempotencyStore deduplicates payment creation requests. Reserve returns a
// replayable result when the key already completed, reserved=false while
// another request holds the key, and ErrIdempotencyKeyReused when the key was
// first used with a different fingerprint.
type IdempotencyStore interface {
	Reserve(ctx context.Context, key, fingerprint string) (cached *InitiatePaymentResult, reserved bool, err error)
	Complete(ctx context.Context, key, fingerprint string, res *InitiatePaymentResult) error
	Release(ctx context.Context, key string) error
}

type UserStore interface {
	FindByEmail(ctx context.Context, email string) (*models.User, error)
	Create(ctx context.Context, user *models.User) error
}

type OTPStore interface {
	Create(ctx context.Context, email, codeHash string, expiresAt time.Time) error
	ConsumeValid(ctx context.Context, email string, now time.Time, match func(codeHash string) bool) (bool, error)
}

type LessonStore interface {
	MarkComplete(ctx context.Context, userID, moduleID, lessonID string) error
	CompletedLessons(ctx context.Context, userID string) (map[string]map[string]bool, error)
}

type StatusCheckStore interface {
	Create(ctx context.Context, check *models.StatusCheck) error
	List(ctx context.Context, limit int) ([]models.StatusCheck, error)
}

// Mailer delivers one email.
type Mailer interface {
	Send(ctx context.Context, msg EmailMessage) error
}
