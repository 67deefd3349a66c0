package order

import (
	"context"
	"fmt"

	"github.com/muhammadheryan/kidswear/model"
	"github.com/muhammadheryan/kidswear/repository/recordstore"
)

const itemsPageSize = 100

type NocoDB struct {
	client  recordstore.TableClient
	profile recordstore.SchemaProfile
	tables  recordstore.Tables
}

type OrderRepository interface {
	CreateOrder(ctx context.Context, order *model.Order) error
	GetOrder(ctx context.Context, orderID string) (*model.Order, error)
	UpdateOrder(ctx context.Context, orderID string, patch *model.OrderPatch) error
	ListOrders(ctx context.Context, page, perPage int) ([]model.Order, int64, error)
	CreateOrderItem(ctx context.Context, item *model.OrderItem) error
	ListOrderItems(ctx context.Context, orderID string) ([]model.OrderItem, error)
}

func NewOrderRepository(client recordstore.TableClient, profile recordstore.SchemaProfile, tables recordstore.Tables) OrderRepository {
	return &NocoDB{client: client, profile: profile, tables: tables}
}

func (r *NocoDB) CreateOrder(ctx context.Context, order *model.Order) error {
	_, err := r.client.Create(ctx, r.tables.Orders, r.profile.EncodeOrder(order))
	return err
}

func (r *NocoDB) GetOrder(ctx context.Context, orderID string) (*model.Order, error) {
	row, err := recordstore.FindOne(ctx, r.client, r.tables.Orders, r.profile.OrderLookup(orderID))
	if err != nil {
		return nil, err
	}
	return r.profile.DecodeOrder(row)
}

// UpdateOrder resolves the business id to the store row first; the store
// only accepts mutations by row id.
func (r *NocoDB) UpdateOrder(ctx context.Context, orderID string, patch *model.OrderPatch) error {
	row, err := recordstore.FindOne(ctx, r.client, r.tables.Orders, r.profile.OrderLookup(orderID))
	if err != nil {
		return err
	}

	changes, err := r.profile.EncodeOrderPatch(patch, row)
	if err != nil {
		return err
	}
	if len(changes) == 0 {
		return nil
	}
	return r.client.Update(ctx, r.tables.Orders, recordstore.RowID(row), changes)
}

func (r *NocoDB) ListOrders(ctx context.Context, page, perPage int) ([]model.Order, int64, error) {
	rows, info, err := r.client.List(ctx, r.tables.Orders, recordstore.ListParams{
		Sort:   r.profile.OrderSort(),
		Limit:  perPage,
		Offset: (page - 1) * perPage,
	})
	if err != nil {
		return nil, 0, err
	}

	orders := make([]model.Order, 0, len(rows))
	for _, row := range rows {
		o, err := r.profile.DecodeOrder(row)
		if err != nil {
			return nil, 0, err
		}
		orders = append(orders, *o)
	}
	return orders, info.TotalRows, nil
}

func (r *NocoDB) CreateOrderItem(ctx context.Context, item *model.OrderItem) error {
	created, err := r.client.Create(ctx, r.tables.OrderItems, r.profile.EncodeOrderItem(item))
	if err != nil {
		return err
	}
	item.ID = recordstore.RowID(created)
	return nil
}

func (r *NocoDB) ListOrderItems(ctx context.Context, orderID string) ([]model.OrderItem, error) {
	where := r.profile.OrderItemsWhere(orderID)
	if where == "" {
		return []model.OrderItem{}, nil
	}

	items := make([]model.OrderItem, 0)
	for offset := 0; ; offset += itemsPageSize {
		rows, info, err := r.client.List(ctx, r.tables.OrderItems, recordstore.ListParams{
			Where:  where,
			Sort:   "Id",
			Limit:  itemsPageSize,
			Offset: offset,
		})
		if err != nil {
			return nil, err
		}
		for _, row := range rows {
			item, err := r.profile.DecodeOrderItem(row)
			if err != nil {
				return nil, fmt.Errorf("order %s: %w", orderID, err)
			}
			items = append(items, *item)
		}
		if len(rows) < itemsPageSize || info.IsLastPage {
			return items, nil
		}
	}
}
