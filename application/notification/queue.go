package notification

import (
	"context"

	"github.com/muhammadheryan/kidswear/model"
	"github.com/muhammadheryan/kidswear/utils/logger"
	"go.uber.org/zap"
)

type Publisher interface {
	PublishNotification(ctx context.Context, evt *model.NotificationEvent) error
}

// queueNotifier hands events to the broker so delivery happens outside the
// request. When publishing fails the event is delivered inline instead.
type queueNotifier struct {
	publisher Publisher
	fallback  Notifier
}

func NewQueueNotifier(publisher Publisher, fallback Notifier) Notifier {
	return &queueNotifier{publisher: publisher, fallback: fallback}
}

func (q *queueNotifier) Notify(ctx context.Context, evt *model.NotificationEvent) {
	if evt == nil {
		return
	}
	if err := q.publisher.PublishNotification(ctx, evt); err != nil {
		logger.Warn("[QueueNotifier] publish failed, delivering inline",
			zap.String("event", string(evt.Type)),
			zap.String("order_id", evt.Order.ID),
			zap.Error(err),
		)
		q.fallback.Notify(ctx, evt)
	}
}
