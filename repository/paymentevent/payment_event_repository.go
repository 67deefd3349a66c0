package paymentevent

import (
	"context"

	"github.com/jmoiron/sqlx"
	"github.com/muhammadheryan/kidswear/model"
)

type SQL struct {
	conn *sqlx.DB
}

// PaymentEventRepository journals every webhook delivery and its outcome.
type PaymentEventRepository interface {
	Insert(ctx context.Context, evt *model.PaymentEvent) error
	ListByOrder(ctx context.Context, orderID string) ([]model.PaymentEvent, error)
}

func NewPaymentEventRepository(conn *sqlx.DB) PaymentEventRepository {
	return &SQL{conn: conn}
}

const (
	insertPaymentEventQuery = `INSERT INTO payment_event (order_id, payment_id, gateway, status, outcome, received_at) VALUES (?, ?, ?, ?, ?, ?)`
	listPaymentEventsQuery  = `SELECT id, order_id, payment_id, gateway, status, outcome, received_at FROM payment_event WHERE order_id = ? ORDER BY id`
)

func (s *SQL) Insert(ctx context.Context, evt *model.PaymentEvent) error {
	res, err := s.conn.ExecContext(ctx, insertPaymentEventQuery, evt.OrderID, evt.PaymentID, evt.Gateway, evt.Status, evt.Outcome, evt.ReceivedAt)
	if err != nil {
		return err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	evt.ID = uint64(id)
	return nil
}

func (s *SQL) ListByOrder(ctx context.Context, orderID string) ([]model.PaymentEvent, error) {
	events := make([]model.PaymentEvent, 0)
	if err := s.conn.SelectContext(ctx, &events, listPaymentEventsQuery, orderID); err != nil {
		return nil, err
	}
	return events, nil
}
