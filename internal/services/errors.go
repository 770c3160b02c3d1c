package services

import (
	"errors"
	"fmt"
)

var (
	ErrTransactionNotFound    = errors.New("transaction not found")
	ErrTransactionIDExhausted = errors.New("could not allocate a unique merchant transaction id")
	ErrGatewayUnavailable     = errors.New("payment service unavailable")
	ErrPaymentInProgress      = errors.New("a payment with this idempotency key is already in progress")
	ErrIdempotencyKeyReused   = errors.New("idempotency key was already used with a different request")
	ErrUserNotFound           = errors.New("user not found")
	ErrUserNotRegistered      = errors.New("user not found, sign up first")
	ErrInvalidOTP             = errors.New("invalid or expired otp")
	ErrMailerNotConfigured    = errors.New("email delivery is not configured")
	ErrModuleNotFound         = errors.New("module not found")
	ErrLessonNotFound         = errors.New("lesson not found")
	ErrInvalidCallback        = errors.New("invalid gateway callback")
)

// ValidationError is a caller input problem; Message is safe to show.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

func invalid(format string, args ...any) error {
	return &ValidationError{Message: fmt.Sprintf(format, args...)}
}

// GatewayError is a transport-level failure talking to PhonePe. Ambiguous is
// set when the gateway may have committed the payment before we lost it
// (timeouts, cancellations and 5xx answers).
type GatewayError struct {
	StatusCode int
	Ambiguous  bool
	Err        error
}

func (e *GatewayError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("phonepe: unexpected status %d", e.StatusCode)
	}
	return fmt.Sprintf("phonepe: %v", e.Err)
}

func (e *GatewayError) Unwrap() error {
	return e.Err
}

// Is lets callers match any GatewayError with ErrGatewayUnavailable.
func (e *GatewayError) Is(target error) bool {
	return target == ErrGatewayUnavailable
}

// EmailDeliveryError wraps the last provider failure.
type EmailDeliveryError struct {
	Err error
}

func (e *EmailDeliveryError) Error() string {
	return fmt.Sprintf("send email: %v", e.Err)
}

func (e *EmailDeliveryError) Unwrap() error {
	return e.Err
}

// AssistanceLockedError is returned while a member is inside the waiting period.
type AssistanceLockedError struct {
	DaysRemaining int
}

func (e *AssistanceLockedError) Error() string {
	return fmt.Sprintf("Financial assistance is not yet available. Please wait %d more days.", e.DaysRemaining)
}
