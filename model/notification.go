package model

import "github.com/muhammadheryan/kidswear/constant"

// NotificationEvent is the payload handed to the notification dispatcher and,
// in queued mode, serialized onto the broker.
type NotificationEvent struct {
	Type      constant.NotificationEventType `json:"type"`
	Order     Order                          `json:"order"`
	Items     []OrderItem                    `json:"items,omitempty"`
	PaymentID string                         `json:"payment_id,omitempty"`
	Status    constant.OrderStatus           `json:"status,omitempty"`
}
