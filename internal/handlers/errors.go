package handlers

import (
	"context"
	"errors"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/example/stabiliq/internal/middleware"
	"github.com/example/stabiliq/internal/services"
	"github.com/example/stabiliq/internal/utils"
)

// ErrorHandler renders every error as {"detail": message}. Errors that are
// not a *fiber.Error are logged and reported as a generic 500.
func ErrorHandler(log *zap.Logger) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		var fe *fiber.Error
		if !errors.As(err, &fe) {
			fe = serviceError(err)
		}
		if fe.Code >= fiber.StatusInternalServerError {
			log.Error("request failed",
				zap.String("method", c.Method()),
				zap.String("path", c.Path()),
				zap.Int("status", fe.Code),
				zap.Error(err),
			)
		}
		return c.Status(fe.Code).JSON(fiber.Map{"detail": fe.Message})
	}
}

func serviceError(err error) *fiber.Error {
	var (
		validation *services.ValidationError
		locked     *services.AssistanceLockedError
		delivery   *services.EmailDeliveryError
	)
	switch {
	case errors.As(err, &validation):
		return fiber.NewError(fiber.StatusBadRequest, validation.Message)
	case errors.Is(err, services.ErrInvalidOTP):
		return fiber.NewError(fiber.StatusBadRequest, "Invalid or expired OTP")
	case errors.Is(err, services.ErrInvalidCallback):
		return fiber.NewError(fiber.StatusBadRequest, "Invalid callback payload")
	case errors.As(err, &locked):
		return fiber.NewError(fiber.StatusForbidden, locked.Error())
	case errors.Is(err, services.ErrUserNotRegistered):
		return fiber.NewError(fiber.StatusNotFound, "User not found. Please sign up first.")
	case errors.Is(err, services.ErrUserNotFound):
		return fiber.NewError(fiber.StatusNotFound, "User not found")
	case errors.Is(err, services.ErrTransactionNotFound):
		return fiber.NewError(fiber.StatusNotFound, "Transaction not found")
	case errors.Is(err, services.ErrModuleNotFound):
		return fiber.NewError(fiber.StatusNotFound, "Module not found")
	case errors.Is(err, services.ErrLessonNotFound):
		return fiber.NewError(fiber.StatusNotFound, "Lesson not found")
	case errors.Is(err, services.ErrPaymentInProgress):
		return fiber.NewError(fiber.StatusConflict, "A payment with this Idempotency-Key is already in progress")
	case errors.Is(err, services.ErrIdempotencyKeyReused):
		return fiber.NewError(fiber.StatusUnprocessableEntity, "Idempotency-Key was already used with a different amount or mobile")
	case errors.Is(err, services.ErrGatewayUnavailable):
		return fiber.NewError(fiber.StatusServiceUnavailable, "Payment service unavailable")
	case errors.Is(err, services.ErrTransactionIDExhausted):
		return fiber.NewError(fiber.StatusServiceUnavailable, "Could not allocate a transaction id, please retry")
	case errors.Is(err, services.ErrMailerNotConfigured), errors.As(err, &delivery):
		return fiber.NewError(fiber.StatusServiceUnavailable, "Failed to send email, please try again later")
	case errors.Is(err, context.DeadlineExceeded):
		return fiber.NewError(fiber.StatusGatewayTimeout, "Request timeout")
	}
	return fiber.NewError(fiber.StatusInternalServerError, "Internal server error")
}

func currentIdentity(c *fiber.Ctx) (utils.Identity, error) {
	identity, ok := middleware.GetCurrentIdentity(c)
	if !ok {
		return utils.Identity{}, fiber.NewError(fiber.StatusUnauthorized, "Not authenticated")
	}
	return identity, nil
}
