package model

import (
	"time"

	"github.com/muhammadheryan/kidswear/constant"
)

type PaymentRequest struct {
	OrderID string `json:"orderId" validate:"required"`
	// Amount is informational; the stored order total is authoritative.
	Amount *float64 `json:"amount,omitempty" validate:"omitempty,gte=0"`
}

// PaymentSession is issued per payment attempt and never stored as such.
type PaymentSession struct {
	PaymentID  string
	PaymentURL string
	Gateway    constant.PaymentMethod
}

type PaymentResponse struct {
	PaymentURL string `json:"paymentUrl"`
	PaymentID  string `json:"paymentId"`
}

type WebhookRequest struct {
	OrderID   string                 `json:"orderId" validate:"required"`
	PaymentID string                 `json:"paymentId" validate:"required"`
	Status    constant.PaymentStatus `json:"status" validate:"required,oneof=completed failed"`
}

type WebhookResponse struct {
	OK        bool `json:"ok"`
	Duplicate bool `json:"duplicate,omitempty"`
}

type WebhookOutcome string

const (
	WebhookApplied   WebhookOutcome = "applied"
	WebhookDuplicate WebhookOutcome = "duplicate"
	WebhookMismatch  WebhookOutcome = "mismatch"
	WebhookError     WebhookOutcome = "error"
	// WebhookCancelled is a completed payment for a cancelled order: the
	// payment is recorded, the order stays cancelled.
	WebhookCancelled WebhookOutcome = "cancelled"
)

// PaymentEvent is one journaled webhook delivery.
type PaymentEvent struct {
	ID         uint64         `db:"id" json:"id"`
	OrderID    string         `db:"order_id" json:"order_id"`
	PaymentID  string         `db:"payment_id" json:"payment_id"`
	Gateway    string         `db:"gateway" json:"gateway"`
	Status     string         `db:"status" json:"status"`
	Outcome    WebhookOutcome `db:"outcome" json:"outcome"`
	ReceivedAt time.Time      `db:"received_at" json:"received_at"`
}
