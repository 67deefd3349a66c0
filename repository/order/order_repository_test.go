package order_test

import (
	"context"
	"testing"

	"github.com/muhammadheryan/kidswear/constant"
	mocks "github.com/muhammadheryan/kidswear/mocks/repository/recordstore"
	"github.com/muhammadheryan/kidswear/model"
	orderrepo "github.com/muhammadheryan/kidswear/repository/order"
	"github.com/muhammadheryan/kidswear/repository/recordstore"
	cerr "github.com/muhammadheryan/kidswear/utils/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var tables = recordstore.Tables{Products: "tbl_products", Orders: "tbl_orders", OrderItems: "tbl_items"}

func newRepo(t *testing.T) (orderrepo.OrderRepository, *mocks.TableClient) {
	client := mocks.NewTableClient(t)
	profile, err := recordstore.NewProfile(recordstore.ProfileSimple)
	require.NoError(t, err)
	return orderrepo.NewOrderRepository(client, profile, tables), client
}

func TestGetOrder(t *testing.T) {
	ctx := context.Background()

	t.Run("found", func(t *testing.T) {
		repo, client := newRepo(t)
		client.On("List", ctx, "tbl_orders", recordstore.ListParams{Where: "(order_id,eq,ORD-1)", Limit: 1}).
			Return([]recordstore.Row{{"Id": float64(7), "order_id": "ORD-1", "total_amount": "1850", "order_status": "pending"}}, &recordstore.PageInfo{TotalRows: 1}, nil)

		order, err := repo.GetOrder(ctx, "ORD-1")
		require.NoError(t, err)
		assert.Equal(t, "ORD-1", order.ID)
		assert.Equal(t, int64(1850), order.TotalAmount)
		assert.Equal(t, constant.OrderStatusPending, order.OrderStatus)
	})

	t.Run("missing", func(t *testing.T) {
		repo, client := newRepo(t)
		client.On("List", ctx, "tbl_orders", mock.Anything).Return([]recordstore.Row{}, &recordstore.PageInfo{}, nil)

		_, err := repo.GetOrder(ctx, "ORD-404")
		assert.True(t, cerr.Is(err, constant.ErrNotFound))
	})

	t.Run("filter injection resolves to not found without a store call", func(t *testing.T) {
		repo, _ := newRepo(t)

		_, err := repo.GetOrder(ctx, "x)~or(1,eq,1")
		assert.True(t, cerr.Is(err, constant.ErrNotFound))
	})
}

func TestUpdateOrder(t *testing.T) {
	ctx := context.Background()
	completed := constant.PaymentStatusCompleted
	confirmed := constant.OrderStatusConfirmed

	t.Run("patches by store row id", func(t *testing.T) {
		repo, client := newRepo(t)
		client.On("List", ctx, "tbl_orders", mock.Anything).
			Return([]recordstore.Row{{"Id": float64(7), "order_id": "ORD-1"}}, &recordstore.PageInfo{TotalRows: 1}, nil)
		client.On("Update", ctx, "tbl_orders", "7", recordstore.Row{
			"payment_status": "completed",
			"order_status":   "confirmed",
		}).Return(nil)

		err := repo.UpdateOrder(ctx, "ORD-1", &model.OrderPatch{PaymentStatus: &completed, OrderStatus: &confirmed})
		assert.NoError(t, err)
	})

	t.Run("empty patch skips the write", func(t *testing.T) {
		repo, client := newRepo(t)
		client.On("List", ctx, "tbl_orders", mock.Anything).
			Return([]recordstore.Row{{"Id": float64(7), "order_id": "ORD-1"}}, &recordstore.PageInfo{TotalRows: 1}, nil)

		assert.NoError(t, repo.UpdateOrder(ctx, "ORD-1", &model.OrderPatch{}))
	})
}

func TestListOrders(t *testing.T) {
	ctx := context.Background()
	repo, client := newRepo(t)
	client.On("List", ctx, "tbl_orders", recordstore.ListParams{Sort: "-CreatedAt", Limit: 20, Offset: 20}).
		Return([]recordstore.Row{
			{"Id": float64(2), "order_id": "ORD-2", "total_amount": float64(500)},
			{"Id": float64(1), "order_id": "ORD-1", "total_amount": float64(700)},
		}, &recordstore.PageInfo{TotalRows: 22}, nil)

	orders, total, err := repo.ListOrders(ctx, 2, 20)
	require.NoError(t, err)
	assert.Equal(t, int64(22), total)
	require.Len(t, orders, 2)
	assert.Equal(t, "ORD-2", orders[0].ID)
}

func TestCreateOrderItemAssignsRowID(t *testing.T) {
	ctx := context.Background()
	repo, client := newRepo(t)
	item := &model.OrderItem{OrderID: "ORD-1", ProductID: "3", ProductName: "Frock", ProductPrice: 500, Quantity: 2, Subtotal: 1000}
	client.On("Create", ctx, "tbl_items", mock.AnythingOfType("recordstore.Row")).
		Return(recordstore.Row{"Id": float64(41)}, nil)

	require.NoError(t, repo.CreateOrderItem(ctx, item))
	assert.Equal(t, "41", item.ID)
}

func TestListOrderItemsPages(t *testing.T) {
	ctx := context.Background()
	repo, client := newRepo(t)

	first := make([]recordstore.Row, 100)
	for i := range first {
		first[i] = recordstore.Row{"Id": float64(i + 1), "order_id": "ORD-1", "quantity": float64(1)}
	}
	client.On("List", ctx, "tbl_items", recordstore.ListParams{Where: "(order_id,eq,ORD-1)", Sort: "Id", Limit: 100, Offset: 0}).
		Return(first, &recordstore.PageInfo{TotalRows: 101}, nil).Once()
	client.On("List", ctx, "tbl_items", recordstore.ListParams{Where: "(order_id,eq,ORD-1)", Sort: "Id", Limit: 100, Offset: 100}).
		Return([]recordstore.Row{{"Id": float64(101), "order_id": "ORD-1", "quantity": float64(2)}}, &recordstore.PageInfo{TotalRows: 101, IsLastPage: true}, nil).Once()

	items, err := repo.ListOrderItems(ctx, "ORD-1")
	require.NoError(t, err)
	assert.Len(t, items, 101)
	assert.Equal(t, 2, items[100].Quantity)
}
