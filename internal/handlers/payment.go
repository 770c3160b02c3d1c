package handlers

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/example/stabiliq/internal/middleware"
	"github.com/example/stabiliq/internal/models"
	"github.com/example/stabiliq/internal/services"
)

// IdempotencyKeyHeader lets clients retry payment creation safely.
const IdempotencyKeyHeader = "Idempotency-Key"

// PaymentHandler manages PhonePe payment endpoints.
type PaymentHandler struct {
	payments PaymentAPI
}

func NewPaymentHandler(payments PaymentAPI) *PaymentHandler {
	return &PaymentHandler{payments: payments}
}

type createPaymentRequest struct {
	Amount float64 `json:"amount"`
	Mobile string  `json:"mobile"`
}

// Create starts a checkout for the caller and returns the PhonePe page URL.
// A declined initiation is a 400 carrying the gateway message.
func (h *PaymentHandler) Create(c *fiber.Ctx) error {
	identity, err := currentIdentity(c)
	if err != nil {
		return err
	}

	var req createPaymentRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}

	result, err := h.payments.InitiatePayment(c.UserContext(), services.InitiatePaymentInput{
		Amount:         req.Amount,
		UserID:         identity.UserID,
		Mobile:         strings.TrimSpace(req.Mobile),
		IdempotencyKey: c.Get(IdempotencyKeyHeader),
	})
	if err != nil {
		return err
	}
	if !result.Accepted {
		return fiber.NewError(fiber.StatusBadRequest, result.Message)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"status":                true,
		"checkoutPageUrl":       result.CheckoutURL,
		"message":               result.Message,
		"merchantTransactionId": result.MerchantTransactionID,
	})
}

// ListMine returns the caller's transactions, newest first.
func (h *PaymentHandler) ListMine(c *fiber.Ctx) error {
	identity, err := currentIdentity(c)
	if err != nil {
		return err
	}

	txns, err := h.payments.ListByUser(c.UserContext(), identity.UserID, c.QueryInt("limit", 0))
	if err != nil {
		return err
	}
	return c.JSON(txns)
}

func (h *PaymentHandler) GetByMerchantTransactionID(c *fiber.Ctx) error {
	txn, err := h.payments.GetByMerchantTransactionID(c.UserContext(), c.Params("merchantTransactionId"))
	if err != nil {
		return err
	}
	return c.JSON(txn)
}

// GetByID returns one of the caller's transactions. Rows owned by other
// members read as not found.
func (h *PaymentHandler) GetByID(c *fiber.Ctx) error {
	txn, err := h.ownTransaction(c)
	if err != nil {
		return err
	}
	return c.JSON(txn)
}

// Update applies a partial update to one of the caller's transactions.
// Gateway-reported fields only change through the signed callback.
func (h *PaymentHandler) Update(c *fiber.Ctx) error {
	var upd models.TransactionUpdate
	if err := c.BodyParser(&upd); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}
	if upd.Empty() {
		return fiber.NewError(fiber.StatusBadRequest, "no fields to update")
	}
	if field := gatewayField(upd); field != "" {
		return fiber.NewError(fiber.StatusForbidden, field+" is reported by the payment gateway")
	}
	if _, err := h.ownTransaction(c); err != nil {
		return err
	}

	txn, err := h.payments.UpdateTransaction(c.UserContext(), c.Params("id"), upd)
	if err != nil {
		return err
	}
	return c.JSON(txn)
}

func (h *PaymentHandler) ownTransaction(c *fiber.Ctx) (*models.PaymentTransaction, error) {
	identity, err := currentIdentity(c)
	if err != nil {
		return nil, err
	}
	txn, err := h.payments.GetByID(c.UserContext(), c.Params("id"))
	if err != nil {
		return nil, err
	}
	if txn.UserID != identity.UserID {
		return nil, services.ErrTransactionNotFound
	}
	return txn, nil
}

// gatewayField names the first field in upd that only PhonePe may set.
func gatewayField(upd models.TransactionUpdate) string {
	switch {
	case upd.PaymentStatus != nil:
		return "paymentStatus"
	case upd.PhonepeTransactionID != nil:
		return "phonepeTransactionId"
	case len(upd.PaymentInstrument) > 0:
		return "paymentInstrument"
	case upd.Amount != nil:
		return "amount"
	case upd.TotalAmount != nil:
		return "totalAmount"
	case upd.MerchantID != nil:
		return "merchantId"
	}
	return ""
}

type redirectForm struct {
	Code          string `json:"code" form:"code"`
	TransactionID string `json:"transactionId" form:"transactionId"`
}

// Status is where PhonePe returns the member's browser after checkout. It
// reports the stored status and never changes it.
func (h *PaymentHandler) Status(c *fiber.Ctx) error {
	var form redirectForm
	if err := c.BodyParser(&form); err != nil || strings.TrimSpace(form.TransactionID) == "" {
		return fiber.NewError(fiber.StatusBadRequest, "transactionId is required")
	}

	txn, err := h.payments.AcknowledgeRedirect(c.UserContext(), strings.TrimSpace(form.TransactionID))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{
		"merchantTransactionId": txn.MerchantTransactionID,
		"paymentStatus":         txn.PaymentStatus,
		"code":                  form.Code,
	})
}

// Callback reconciles a signed PhonePe server-to-server notification.
func (h *PaymentHandler) Callback(c *fiber.Ctx) error {
	payload, ok := middleware.GetCallbackPayload(c)
	if !ok {
		return fiber.NewError(fiber.StatusBadRequest, "invalid callback body")
	}

	txn, err := h.payments.HandleCallback(c.UserContext(), payload)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{
		"success":               true,
		"merchantTransactionId": txn.MerchantTransactionID,
		"paymentStatus":         txn.PaymentStatus,
	})
}
