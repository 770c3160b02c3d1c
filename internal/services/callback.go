package services

import (
	"encoding/base64"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/example/stabiliq/internal/models"
)

// CallbackPayload is the decoded body PhonePe posts to the callback URL.
type CallbackPayload struct {
	Success bool         `json:"success"`
	Code    string       `json:"code"`
	Message string       `json:"message"`
	Data    CallbackData `json:"data"`
}

type CallbackData struct {
	MerchantID            string          `json:"merchantId"`
	MerchantTransactionID string          `json:"merchantTransactionId"`
	TransactionID         string          `json:"transactionId"`
	Amount                float64         `json:"amount"`
	State                 string          `json:"state"`
	ResponseCode          string          `json:"responseCode"`
	PaymentInstrument     json.RawMessage `json:"paymentInstrument"`
}

// DecodeCallback parses the base64 "response" field of a callback body.
func DecodeCallback(response string) (*CallbackPayload, error) {
	raw, err := base64.StdEncoding.DecodeString(strings.TrimSpace(response))
	if err != nil {
		return nil, fmt.Errorf("%w: response is not base64", ErrInvalidCallback)
	}
	var payload CallbackPayload
	if err := json.Unmarshal(raw, &payload); err != nil {
		return nil, fmt.Errorf("%w: response is not JSON", ErrInvalidCallback)
	}
	if strings.TrimSpace(payload.Data.MerchantTransactionID) == "" {
		return nil, fmt.Errorf("%w: missing merchantTransactionId", ErrInvalidCallback)
	}
	return &payload, nil
}

var callbackStatuses = map[string]models.PaymentStatus{
	"PAYMENT_SUCCESS":  models.PaymentStatusSuccess,
	"PAYMENT_PENDING":  models.PaymentStatusPending,
	"PAYMENT_DECLINED": models.PaymentStatusDeclined,
	"TIMED_OUT":        models.PaymentStatusTimedOut,
	"PAYMENT_ERROR":    models.PaymentStatusError,
}

// Status maps the gateway code onto our status enum. Unknown codes count as
// PAYMENT_ERROR.
func (p *CallbackPayload) Status() models.PaymentStatus {
	if s, ok := callbackStatuses[p.Code]; ok {
		return s
	}
	if s := models.PaymentStatus(p.Code); s.Valid() {
		return s
	}
	return models.PaymentStatusError
}

// Update converts the callback into a partial transaction update.
func (p *CallbackPayload) Update() models.TransactionUpdate {
	status := p.Status()
	upd := models.TransactionUpdate{PaymentStatus: &status}
	if id := strings.TrimSpace(p.Data.TransactionID); id != "" {
		upd.PhonepeTransactionID = &id
	}
	if len(p.Data.PaymentInstrument) > 0 && string(p.Data.PaymentInstrument) != "null" {
		upd.PaymentInstrument = p.Data.PaymentInstrument
	}
	return upd
}
