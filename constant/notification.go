package constant

type NotificationEventType string

const (
	EventOrderCreated     NotificationEventType = "order-created"
	EventPaymentCompleted NotificationEventType = "payment-completed"
	EventPaymentFailed    NotificationEventType = "payment-failed"
	EventStatusChanged    NotificationEventType = "status-changed"
)
