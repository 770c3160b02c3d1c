package models

import (
	"encoding/json"

	"github.com/google/uuid"
)

// PaymentStatus is the lifecycle state of a payment transaction.
type PaymentStatus string

const (
	PaymentStatusInitiated       PaymentStatus = "PAYMENT_INITIATED"
	PaymentStatusSuccess         PaymentStatus = "PAYMENT_SUCCESS"
	PaymentStatusPending         PaymentStatus = "PAYMENT_PENDING"
	PaymentStatusDeclined        PaymentStatus = "PAYMENT_DECLINED"
	PaymentStatusTimedOut        PaymentStatus = "TIMED_OUT"
	PaymentStatusError           PaymentStatus = "PAYMENT_ERROR"
	PaymentStatusRefundInitiated PaymentStatus = "REFUND_INITIATED"
	PaymentStatusPendingFailed   PaymentStatus = "PENDING_FAILED"
	PaymentStatusFailed          PaymentStatus = "FAILED"
)

var paymentStatuses = map[PaymentStatus]struct{}{
	PaymentStatusInitiated:       {},
	PaymentStatusSuccess:         {},
	PaymentStatusPending:         {},
	PaymentStatusDeclined:        {},
	PaymentStatusTimedOut:        {},
	PaymentStatusError:           {},
	PaymentStatusRefundInitiated: {},
	PaymentStatusPendingFailed:   {},
	PaymentStatusFailed:          {},
}

// FailedPaymentStatuses is the partition reporting treats as failed.
var FailedPaymentStatuses = []PaymentStatus{
	PaymentStatusError,
	PaymentStatusTimedOut,
	PaymentStatusDeclined,
	PaymentStatusFailed,
}

// Valid reports whether s belongs to the known status set.
func (s PaymentStatus) Valid() bool {
	_, ok := paymentStatuses[s]
	return ok
}

// Failed reports whether s is in the failed partition.
func (s PaymentStatus) Failed() bool {
	for _, failed := range FailedPaymentStatuses {
		if s == failed {
			return true
		}
	}
	return false
}

// TransactionType distinguishes payments from refunds.
type TransactionType string

const (
	TransactionTypePayment TransactionType = "payment"
	TransactionTypeRefund  TransactionType = "refund"
)

// Valid reports whether t is a known transaction type.
func (t TransactionType) Valid() bool {
	return t == TransactionTypePayment || t == TransactionTypeRefund
}

// Plan is a membership tier.
type Plan string

const (
	PlanBasic Plan = "basic"
	PlanPro   Plan = "pro"
)

// Valid reports whether p is a known plan.
func (p Plan) Valid() bool {
	return p == PlanBasic || p == PlanPro
}

// PaymentTransaction records one payment attempt at the gateway.
// merchant_transaction_id is unique among rows with is_deleted = false
// (partial index created by the SQL migrations).
type PaymentTransaction struct {
	Record
	MerchantTransactionID     string          `gorm:"column:merchant_transaction_id;size:64;index" json:"merchantTransactionId"`
	MerchantID                string          `gorm:"size:64" json:"merchantId"`
	TotalAmount               float64         `json:"totalAmount"`
	UserID                    string          `gorm:"size:64;index" json:"userId"`
	Amount                    float64         `json:"amount"`
	PhonepeTransactionID      string          `gorm:"column:phonepe_transaction_id;size:128" json:"phonepeTransactionId,omitempty"`
	PaymentStatus             PaymentStatus   `gorm:"size:32;index" json:"paymentStatus"`
	Type                      TransactionType `gorm:"size:16" json:"type"`
	RefundID                  *uuid.UUID      `gorm:"type:uuid" json:"refundId,omitempty"`
	IsUICallbackProcessed     bool            `gorm:"column:is_ui_callback_processed;not null;default:false" json:"isUiCallbackProcessed"`
	PaymentInstrument         json.RawMessage `gorm:"type:jsonb" json:"paymentInstrument,omitempty"`
	IsDeleted                 bool            `gorm:"not null;default:false;index" json:"isDeleted"`
	IsApplicationFeeProcessed bool            `gorm:"not null;default:false" json:"isApplicationFeeProcessed"`
	GatewayOrderID            string          `gorm:"size:128" json:"gatewayOrderId,omitempty"`
	Plan                      Plan            `gorm:"size:16" json:"plan,omitempty"`
}

// TransactionUpdate is a partial update; nil fields are left untouched.
type TransactionUpdate struct {
	MerchantID                *string          `json:"merchantId,omitempty"`
	TotalAmount               *float64         `json:"totalAmount,omitempty"`
	Amount                    *float64         `json:"amount,omitempty"`
	PhonepeTransactionID      *string          `json:"phonepeTransactionId,omitempty"`
	PaymentStatus             *PaymentStatus   `json:"paymentStatus,omitempty"`
	Type                      *TransactionType `json:"type,omitempty"`
	RefundID                  *uuid.UUID       `json:"refundId,omitempty"`
	IsUICallbackProcessed     *bool            `json:"isUiCallbackProcessed,omitempty"`
	PaymentInstrument         json.RawMessage  `json:"paymentInstrument,omitempty"`
	IsDeleted                 *bool            `json:"isDeleted,omitempty"`
	IsApplicationFeeProcessed *bool            `json:"isApplicationFeeProcessed,omitempty"`
	GatewayOrderID            *string          `json:"gatewayOrderId,omitempty"`
	Plan                      *Plan            `json:"plan,omitempty"`
}

// Empty reports whether the update carries no fields.
func (u TransactionUpdate) Empty() bool {
	return !(u.MerchantID != nil || u.TotalAmount != nil || u.Amount != nil ||
		u.PhonepeTransactionID != nil || u.PaymentStatus != nil || u.Type != nil ||
		u.RefundID != nil || u.IsUICallbackProcessed != nil || len(u.PaymentInstrument) > 0 ||
		u.IsDeleted != nil || u.IsApplicationFeeProcessed != nil || u.GatewayOrderID != nil || u.Plan != nil)
}

// Changes returns the columns whose values differ from current, keyed by
// column name. Applying the same update twice yields no changes the second time.
func (u TransactionUpdate) Changes(current *PaymentTransaction) map[string]any {
	changes := map[string]any{}
	if u.MerchantID != nil && *u.MerchantID != current.MerchantID {
		changes["merchant_id"] = *u.MerchantID
	}
	if u.TotalAmount != nil && *u.TotalAmount != current.TotalAmount {
		changes["total_amount"] = *u.TotalAmount
	}
	if u.Amount != nil && *u.Amount != current.Amount {
		changes["amount"] = *u.Amount
	}
	if u.PhonepeTransactionID != nil && *u.PhonepeTransactionID != current.PhonepeTransactionID {
		changes["phonepe_transaction_id"] = *u.PhonepeTransactionID
	}
	if u.PaymentStatus != nil && *u.PaymentStatus != current.PaymentStatus {
		changes["payment_status"] = *u.PaymentStatus
	}
	if u.Type != nil && *u.Type != current.Type {
		changes["type"] = *u.Type
	}
	if u.RefundID != nil && (current.RefundID == nil || *u.RefundID != *current.RefundID) {
		changes["refund_id"] = *u.RefundID
	}
	if u.IsUICallbackProcessed != nil && *u.IsUICallbackProcessed != current.IsUICallbackProcessed {
		changes["is_ui_callback_processed"] = *u.IsUICallbackProcessed
	}
	if len(u.PaymentInstrument) > 0 && !sameJSON(u.PaymentInstrument, current.PaymentInstrument) {
		changes["payment_instrument"] = string(u.PaymentInstrument)
	}
	if u.IsDeleted != nil && *u.IsDeleted != current.IsDeleted {
		changes["is_deleted"] = *u.IsDeleted
	}
	if u.IsApplicationFeeProcessed != nil && *u.IsApplicationFeeProcessed != current.IsApplicationFeeProcessed {
		changes["is_application_fee_processed"] = *u.IsApplicationFeeProcessed
	}
	if u.GatewayOrderID != nil && *u.GatewayOrderID != current.GatewayOrderID {
		changes["gateway_order_id"] = *u.GatewayOrderID
	}
	if u.Plan != nil && *u.Plan != current.Plan {
		changes["plan"] = *u.Plan
	}
	return changes
}

// Apply copies the update onto txn in memory.
func (u TransactionUpdate) Apply(txn *PaymentTransaction) {
	if u.MerchantID != nil {
		txn.MerchantID = *u.MerchantID
	}
	if u.TotalAmount != nil {
		txn.TotalAmount = *u.TotalAmount
	}
	if u.Amount != nil {
		txn.Amount = *u.Amount
	}
	if u.PhonepeTransactionID != nil {
		txn.PhonepeTransactionID = *u.PhonepeTransactionID
	}
	if u.PaymentStatus != nil {
		txn.PaymentStatus = *u.PaymentStatus
	}
	if u.Type != nil {
		txn.Type = *u.Type
	}
	if u.RefundID != nil {
		id := *u.RefundID
		txn.RefundID = &id
	}
	if u.IsUICallbackProcessed != nil {
		txn.IsUICallbackProcessed = *u.IsUICallbackProcessed
	}
	if len(u.PaymentInstrument) > 0 {
		txn.PaymentInstrument = u.PaymentInstrument
	}
	if u.IsDeleted != nil {
		txn.IsDeleted = *u.IsDeleted
	}
	if u.IsApplicationFeeProcessed != nil {
		txn.IsApplicationFeeProcessed = *u.IsApplicationFeeProcessed
	}
	if u.GatewayOrderID != nil {
		txn.GatewayOrderID = *u.GatewayOrderID
	}
	if u.Plan != nil {
		txn.Plan = *u.Plan
	}
}

func sameJSON(a, b json.RawMessage) bool {
	if len(b) == 0 {
		return false
	}
	var left, right any
	if json.Unmarshal(a, &left) != nil || json.Unmarshal(b, &right) != nil {
		return string(a) == string(b)
	}
	l, _ := json.Marshal(left)
	r, _ := json.Marshal(right)
	return string(l) == string(r)
}
