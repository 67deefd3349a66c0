package notification

import (
	"context"
	"fmt"
	"sync"

	"github.com/muhammadheryan/kidswear/cmd/config"
	"github.com/muhammadheryan/kidswear/constant"
	"github.com/muhammadheryan/kidswear/model"
	"github.com/muhammadheryan/kidswear/thirdparty/email"
	"github.com/muhammadheryan/kidswear/thirdparty/whatsapp"
	"github.com/muhammadheryan/kidswear/utils/logger"
	"go.uber.org/multierr"
	"go.uber.org/zap"
)

// Notifier fans an order event out to customers and admins. It never fails:
// delivery problems are logged and swallowed.
type Notifier interface {
	Notify(ctx context.Context, evt *model.NotificationEvent)
}

type EmailSender interface {
	Enabled() bool
	Send(ctx context.Context, msg email.Message) error
}

type WhatsAppSender interface {
	Enabled() bool
	SendTemplate(ctx context.Context, msg whatsapp.TemplateMessage) error
}

// Templates maps events to WhatsApp template names. An empty name disables
// the channel for that event.
type Templates struct {
	OrderCreated     string
	PaymentCompleted string
	PaymentFailed    string
	OrderConfirmed   string
	OrderShipped     string
	OrderDelivered   string
}

func TemplatesFromConfig(cfg config.WhatsAppConfig) Templates {
	return Templates{
		OrderCreated:     cfg.OrderCreatedTemplate,
		PaymentCompleted: cfg.PaymentCompletedTemplate,
		PaymentFailed:    cfg.PaymentFailedTemplate,
		OrderConfirmed:   cfg.OrderConfirmedTemplate,
		OrderShipped:     cfg.OrderShippedTemplate,
		OrderDelivered:   cfg.OrderDeliveredTemplate,
	}
}

type dispatcher struct {
	email           EmailSender
	whatsapp        WhatsAppSender
	templates       Templates
	adminRecipients []string
}

func NewDispatcher(emailSender EmailSender, whatsappSender WhatsAppSender, templates Templates, adminRecipients string) Notifier {
	return &dispatcher{
		email:           emailSender,
		whatsapp:        whatsappSender,
		templates:       templates,
		adminRecipients: whatsapp.ParseRecipients(adminRecipients),
	}
}

func (d *dispatcher) Notify(ctx context.Context, evt *model.NotificationEvent) {
	if evt == nil {
		return
	}
	notifySafely("email", evt, func() error { return d.sendEmail(ctx, evt) })
	notifySafely("whatsapp", evt, func() error { return d.sendWhatsApp(ctx, evt) })
}

// notifySafely runs one channel send and makes sure nothing it does, error
// or panic, reaches the caller.
func notifySafely(channel string, evt *model.NotificationEvent, send func() error) {
	defer func() {
		if r := recover(); r != nil {
			logger.Error("[Notify] channel panicked",
				zap.String("channel", channel),
				zap.String("event", string(evt.Type)),
				zap.String("order_id", evt.Order.ID),
				zap.Any("panic", r),
			)
		}
	}()

	if err := send(); err != nil {
		logger.Warn("[Notify] channel failed",
			zap.String("channel", channel),
			zap.String("event", string(evt.Type)),
			zap.String("order_id", evt.Order.ID),
			zap.Error(err),
		)
	}
}

func (d *dispatcher) sendEmail(ctx context.Context, evt *model.NotificationEvent) error {
	if d.email == nil || !d.email.Enabled() || evt.Order.CustomerEmail == "" {
		return nil
	}
	msg, ok := composeEmail(evt)
	if !ok {
		return nil
	}
	msg.To = evt.Order.CustomerEmail
	msg.IdempotencyKey = idempotencyKey(evt)
	return d.email.Send(ctx, msg)
}

func (d *dispatcher) sendWhatsApp(ctx context.Context, evt *model.NotificationEvent) error {
	if d.whatsapp == nil || !d.whatsapp.Enabled() {
		return nil
	}
	template := d.templateFor(evt)
	if template == "" {
		return nil
	}
	msg := whatsapp.TemplateMessage{Template: template, Params: templateParams(evt)}

	var errs error
	if to := whatsapp.NormalizePhone(evt.Order.CustomerPhone); to != "" {
		customer := msg
		customer.To = to
		if err := d.whatsapp.SendTemplate(ctx, customer); err != nil {
			errs = multierr.Append(errs, fmt.Errorf("customer: %w", err))
		}
	}
	return multierr.Append(errs, d.broadcast(ctx, msg))
}

// broadcast sends one request per admin recipient in parallel and waits for
// all of them; one failing recipient never stops the others.
func (d *dispatcher) broadcast(ctx context.Context, msg whatsapp.TemplateMessage) error {
	var (
		wg   sync.WaitGroup
		mu   sync.Mutex
		errs error
	)
	for _, to := range d.adminRecipients {
		wg.Add(1)
		go func(to string) {
			defer wg.Done()
			// a worker panic would escape notifySafely, which only guards
			// the calling goroutine
			defer func() {
				if r := recover(); r != nil {
					mu.Lock()
					errs = multierr.Append(errs, fmt.Errorf("admin %s: panic: %v", to, r))
					mu.Unlock()
				}
			}()
			m := msg
			m.To = to
			if err := d.whatsapp.SendTemplate(ctx, m); err != nil {
				mu.Lock()
				errs = multierr.Append(errs, fmt.Errorf("admin %s: %w", to, err))
				mu.Unlock()
			}
		}(to)
	}
	wg.Wait()
	return errs
}

func (d *dispatcher) templateFor(evt *model.NotificationEvent) string {
	switch evt.Type {
	case constant.EventOrderCreated:
		return d.templates.OrderCreated
	case constant.EventPaymentCompleted:
		return d.templates.PaymentCompleted
	case constant.EventPaymentFailed:
		return d.templates.PaymentFailed
	case constant.EventStatusChanged:
		switch evt.Status {
		case constant.OrderStatusConfirmed:
			return d.templates.OrderConfirmed
		case constant.OrderStatusShipped:
			return d.templates.OrderShipped
		case constant.OrderStatusDelivered:
			return d.templates.OrderDelivered
		}
	}
	return ""
}

// idempotencyKey is "{event}:{orderId}[:{paymentId}]"; status changes use the
// new status as the event name.
func idempotencyKey(evt *model.NotificationEvent) string {
	name := string(evt.Type)
	if evt.Type == constant.EventStatusChanged {
		name = "order-" + string(evt.Status)
	}
	key := name + ":" + evt.Order.ID
	if evt.PaymentID != "" {
		key += ":" + evt.PaymentID
	}
	return key
}
