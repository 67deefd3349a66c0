package payment

import (
	"context"
	"net/url"
	"strings"
	"time"

	"github.com/muhammadheryan/kidswear/application/notification"
	"github.com/muhammadheryan/kidswear/cmd/config"
	"github.com/muhammadheryan/kidswear/constant"
	"github.com/muhammadheryan/kidswear/model"
	orderrepo "github.com/muhammadheryan/kidswear/repository/order"
	paymenteventrepo "github.com/muhammadheryan/kidswear/repository/paymentevent"
	"github.com/muhammadheryan/kidswear/utils/errors"
	"github.com/muhammadheryan/kidswear/utils/ident"
	"github.com/muhammadheryan/kidswear/utils/logger"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

const MockPaymentPath = "/pay/mock"

type PaymentApp interface {
	InitiatePayment(ctx context.Context, gateway constant.PaymentMethod, req *model.PaymentRequest) (*model.PaymentResponse, error)
	HandleWebhook(ctx context.Context, gateway constant.PaymentMethod, req *model.WebhookRequest) (*model.WebhookResponse, error)
	ListPaymentEvents(ctx context.Context, orderID string) ([]model.PaymentEvent, error)
}

type paymentAppImpl struct {
	config    *config.Config
	orderRepo orderrepo.OrderRepository
	// eventRepo is nil when no journal database is configured.
	eventRepo paymenteventrepo.PaymentEventRepository
	notifier  notification.Notifier
	now       func() time.Time
}

func NewPaymentApp(config *config.Config, orderRepo orderrepo.OrderRepository, eventRepo paymenteventrepo.PaymentEventRepository, notifier notification.Notifier) PaymentApp {
	return &paymentAppImpl{
		config:    config,
		orderRepo: orderRepo,
		eventRepo: eventRepo,
		notifier:  notifier,
		now:       time.Now,
	}
}

func (s *paymentAppImpl) InitiatePayment(ctx context.Context, gateway constant.PaymentMethod, req *model.PaymentRequest) (*model.PaymentResponse, error) {
	if !gateway.Valid() {
		return nil, errors.SetCustomError(constant.ErrNotFound)
	}

	order, err := s.orderRepo.GetOrder(ctx, req.OrderID)
	if err != nil {
		logger.Error("[InitiatePayment] get order", zap.String("order_id", req.OrderID), zap.Error(err))
		return nil, errors.Classify(err)
	}
	if order.PaymentStatus == constant.PaymentStatusCompleted {
		return nil, errors.SetCustomError(constant.ErrOrderAlreadyPaid)
	}
	if order.OrderStatus == constant.OrderStatusCancelled {
		logger.Info("[InitiatePayment] order cancelled", zap.String("order_id", order.ID))
		return nil, errors.SetCustomError(constant.ErrOrderCancelled)
	}
	if req.Amount != nil && !decimal.NewFromFloat(*req.Amount).Equal(decimal.NewFromInt(order.TotalAmount)) {
		logger.Info("[InitiatePayment] client amount ignored",
			zap.String("order_id", order.ID),
			zap.Float64("client_amount", *req.Amount),
			zap.Int64("total", order.TotalAmount),
		)
	}

	session := s.newSession(gateway, order.ID)

	pending := constant.PaymentStatusPending
	patch := &model.OrderPatch{
		PaymentID:     &session.PaymentID,
		PaymentStatus: &pending,
		PaymentMethod: &gateway,
	}
	if err := s.orderRepo.UpdateOrder(ctx, order.ID, patch); err != nil {
		logger.Error("[InitiatePayment] update order", zap.String("order_id", order.ID), zap.Error(err))
		return nil, errors.Classify(err)
	}

	return &model.PaymentResponse{PaymentURL: session.PaymentURL, PaymentID: session.PaymentID}, nil
}

func (s *paymentAppImpl) newSession(gateway constant.PaymentMethod, orderID string) model.PaymentSession {
	paymentID := ident.New(strings.ToUpper(string(gateway)), s.now())

	query := url.Values{}
	query.Set("gateway", string(gateway))
	query.Set("orderId", orderID)
	query.Set("paymentId", paymentID)

	return model.PaymentSession{
		PaymentID:  paymentID,
		PaymentURL: strings.TrimRight(s.config.Payment.PublicBaseURL, "/") + MockPaymentPath + "?" + query.Encode(),
		Gateway:    gateway,
	}
}

func (s *paymentAppImpl) HandleWebhook(ctx context.Context, gateway constant.PaymentMethod, req *model.WebhookRequest) (*model.WebhookResponse, error) {
	if !gateway.Valid() {
		return nil, errors.SetCustomError(constant.ErrNotFound)
	}

	order, err := s.orderRepo.GetOrder(ctx, req.OrderID)
	if err != nil {
		logger.Error("[HandleWebhook] get order", zap.String("order_id", req.OrderID), zap.Error(err))
		s.journal(ctx, gateway, req, model.WebhookError)
		return nil, errors.Classify(err)
	}

	// duplicate deliveries of an already settled payment change nothing
	if order.PaymentStatus == constant.PaymentStatusCompleted {
		logger.Info("[HandleWebhook] duplicate webhook", zap.String("order_id", order.ID), zap.String("payment_id", req.PaymentID))
		s.journal(ctx, gateway, req, model.WebhookDuplicate)
		return &model.WebhookResponse{OK: true, Duplicate: true}, nil
	}

	if order.HasPaymentID() && *order.PaymentID != req.PaymentID {
		logger.Info("[HandleWebhook] payment id mismatch",
			zap.String("order_id", order.ID),
			zap.String("expected", *order.PaymentID),
			zap.String("got", req.PaymentID),
		)
		s.journal(ctx, gateway, req, model.WebhookMismatch)
		return nil, errors.SetCustomError(constant.ErrPaymentMismatch)
	}

	paymentID := req.PaymentID
	patch := &model.OrderPatch{PaymentID: &paymentID}
	outcome := model.WebhookApplied
	var event constant.NotificationEventType
	switch req.Status {
	case constant.PaymentStatusCompleted:
		completed := constant.PaymentStatusCompleted
		patch.PaymentStatus = &completed
		if order.PaymentMethod == "" {
			patch.PaymentMethod = &gateway
		}
		// a cancelled order is never revived by a payment; the payment is
		// kept on record for a refund
		if order.OrderStatus == constant.OrderStatusCancelled {
			logger.Warn("[HandleWebhook] payment for cancelled order",
				zap.String("order_id", order.ID),
				zap.String("payment_id", paymentID),
			)
			outcome = model.WebhookCancelled
			break
		}
		confirmed := constant.OrderStatusConfirmed
		patch.OrderStatus = &confirmed
		event = constant.EventPaymentCompleted
	case constant.PaymentStatusFailed:
		failed := constant.PaymentStatusFailed
		patch.PaymentStatus = &failed
		event = constant.EventPaymentFailed
	default:
		return nil, errors.SetValidationError([]errors.FieldError{{Field: "status", Rule: "oneof"}})
	}

	if err := s.orderRepo.UpdateOrder(ctx, order.ID, patch); err != nil {
		logger.Error("[HandleWebhook] update order", zap.String("order_id", order.ID), zap.Error(err))
		s.journal(ctx, gateway, req, model.WebhookError)
		return nil, errors.Classify(err)
	}
	order.Apply(patch)
	s.journal(ctx, gateway, req, outcome)

	if event != "" {
		s.notifier.Notify(ctx, &model.NotificationEvent{
			Type:      event,
			Order:     *order,
			PaymentID: paymentID,
		})
	}

	return &model.WebhookResponse{OK: true}, nil
}

// journal records the webhook outcome. Failing to write it never fails the
// webhook.
func (s *paymentAppImpl) journal(ctx context.Context, gateway constant.PaymentMethod, req *model.WebhookRequest, outcome model.WebhookOutcome) {
	if s.eventRepo == nil {
		return
	}
	evt := &model.PaymentEvent{
		OrderID:    req.OrderID,
		PaymentID:  req.PaymentID,
		Gateway:    string(gateway),
		Status:     string(req.Status),
		Outcome:    outcome,
		ReceivedAt: s.now().UTC(),
	}
	if err := s.eventRepo.Insert(ctx, evt); err != nil {
		logger.Warn("[HandleWebhook] journal payment event", zap.String("order_id", req.OrderID), zap.Error(err))
	}
}

func (s *paymentAppImpl) ListPaymentEvents(ctx context.Context, orderID string) ([]model.PaymentEvent, error) {
	if s.eventRepo == nil {
		return nil, errors.SetNotConfiguredError("payment-journal")
	}
	events, err := s.eventRepo.ListByOrder(ctx, orderID)
	if err != nil {
		logger.Error("[ListPaymentEvents] list events", zap.String("order_id", orderID), zap.Error(err))
		return nil, errors.Classify(err)
	}
	if events == nil {
		events = []model.PaymentEvent{}
	}
	return events, nil
}
