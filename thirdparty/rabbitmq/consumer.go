package rabbitmq

import (
	"context"
	"encoding/json"

	"github.com/muhammadheryan/kidswear/model"
	"github.com/muhammadheryan/kidswear/utils/logger"
	"github.com/rabbitmq/amqp091-go"
	"go.uber.org/zap"
)

// Handler receives decoded notification events. Delivery failures are the
// handler's business; the message is acked once the handler returns.
type Handler interface {
	Notify(ctx context.Context, evt *model.NotificationEvent)
}

type Consumer struct {
	conn    *amqp091.Connection
	channel *amqp091.Channel
	handler Handler
	log     *zap.Logger
}

func NewConsumer(url string, handler Handler) (*Consumer, error) {
	conn, channel, err := dial(url)
	if err != nil {
		return nil, err
	}
	return &Consumer{
		conn:    conn,
		channel: channel,
		handler: handler,
		log:     logger.With(zap.String("component", "notification-consumer")),
	}, nil
}

func (c *Consumer) Start(ctx context.Context) error {
	// Set QoS to 1 - process one message at a time
	err := c.channel.Qos(1, 0, false)
	if err != nil {
		return err
	}

	msgs, err := c.channel.Consume(
		NotificationQueue,
		"",    // consumer tag
		false, // auto-ack
		false, // exclusive
		false, // no-local
		false, // no-wait
		nil,   // arguments
	)
	if err != nil {
		return err
	}

	go func() {
		for {
			select {
			case <-ctx.Done():
				return
			case msg, ok := <-msgs:
				if !ok {
					return
				}
				c.handle(ctx, msg)
			}
		}
	}()

	return nil
}

func (c *Consumer) handle(ctx context.Context, msg amqp091.Delivery) {
	evt, err := decodeEvent(msg.Body)
	if err != nil {
		c.log.Error("dropping undecodable notification", zap.String("type", msg.Type), zap.Error(err))
		msg.Nack(false, false)
		return
	}

	c.handler.Notify(ctx, evt)
	if err := msg.Ack(false); err != nil {
		c.log.Warn("ack failed", zap.String("order_id", evt.Order.ID), zap.Error(err))
	}
}

func decodeEvent(body []byte) (*model.NotificationEvent, error) {
	var evt model.NotificationEvent
	if err := json.Unmarshal(body, &evt); err != nil {
		return nil, err
	}
	return &evt, nil
}

func (c *Consumer) Close() error {
	if c.channel != nil {
		c.channel.Close()
	}
	if c.conn != nil {
		c.conn.Close()
	}
	return nil
}
