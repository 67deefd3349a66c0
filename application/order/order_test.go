package order_test

import (
	"context"
	"errors"
	"math"
	"strings"
	"testing"

	apporder "github.com/muhammadheryan/kidswear/application/order"
	"github.com/muhammadheryan/kidswear/constant"
	notificationmocks "github.com/muhammadheryan/kidswear/mocks/application/notification"
	ordermocks "github.com/muhammadheryan/kidswear/mocks/repository/order"
	productmocks "github.com/muhammadheryan/kidswear/mocks/repository/product"
	"github.com/muhammadheryan/kidswear/model"
	cerr "github.com/muhammadheryan/kidswear/utils/errors"
	"github.com/stretchr/testify/mock"
)

func ptr[T any](v T) *T { return &v }

func submission(items ...model.OrderItemSubmission) *model.OrderSubmission {
	return &model.OrderSubmission{
		CustomerName:     "Amina Rahman",
		CustomerPhone:    "+8801711111111",
		CustomerEmail:    "amina@example.com",
		CustomerAddress:  "House 12, Road 7",
		CustomerDistrict: "Dhaka",
		Items:            items,
		PaymentMethod:    constant.PaymentMethodBkash,
	}
}

func assertErrorType(t *testing.T, err error, want constant.ErrorType) {
	t.Helper()
	var ce cerr.CustomError
	if !errors.As(err, &ce) {
		t.Fatalf("error type = %T, want CustomError", err)
	}
	if ce.ErrorCode() != constant.ErrorTypeCode[want] {
		t.Fatalf("error code = %s, want %s", ce.ErrorCode(), constant.ErrorTypeCode[want])
	}
}

func TestOrderApp_CreateOrder(t *testing.T) {
	type fields struct {
		orderRepo   *ordermocks.OrderRepository
		productRepo *productmocks.ProductRepository
		notifier    *notificationmocks.Notifier
	}
	type args struct {
		ctx context.Context
		req *model.OrderSubmission
	}
	frock := &model.Product{ID: "1", Name: "Cotton Frock", Price: 500, IsActive: true}
	romper := &model.Product{ID: "2", Name: "Romper", Price: 850, IsActive: true}

	tests := []struct {
		name     string
		args     args
		mockCall func(f fields)
		wantErr  bool
		errCode  constant.ErrorType
	}{
		{
			name: "success: total and item snapshot come from the store",
			args: args{
				ctx: context.Background(),
				req: submission(model.OrderItemSubmission{
					ProductID: "1",
					Quantity:  1,
					Options:   map[string]string{"Age Range": "6M", "Color": "White"},
				}),
			},
			mockCall: func(f fields) {
				f.productRepo.On("GetByID", mock.Anything, "1").Return(frock, nil).Once()
				f.orderRepo.On("CreateOrder", mock.Anything, mock.MatchedBy(func(o *model.Order) bool {
					return strings.HasPrefix(o.ID, "ORD-") &&
						o.TotalAmount == 500 &&
						o.PaymentStatus == constant.PaymentStatusPending &&
						o.OrderStatus == constant.OrderStatusPending &&
						o.PaymentID == nil
				})).Return(nil).Once()
				f.orderRepo.On("CreateOrderItem", mock.Anything, mock.MatchedBy(func(it *model.OrderItem) bool {
					return it.ProductID == "1" &&
						it.ProductName == "Cotton Frock (Age Range: 6M · Color: White)" &&
						it.ProductPrice == 500 &&
						it.Size == "6M" && it.Color == "White" &&
						it.Quantity == 1 && it.Subtotal == 500
				})).Return(nil).Once()
				f.notifier.On("Notify", mock.Anything, mock.MatchedBy(func(e *model.NotificationEvent) bool {
					return e.Type == constant.EventOrderCreated && e.Order.TotalAmount == 500 && len(e.Items) == 1
				})).Return().Once()
			},
		},
		{
			name: "success: client prices and total are ignored",
			args: args{
				ctx: context.Background(),
				req: func() *model.OrderSubmission {
					s := submission(
						model.OrderItemSubmission{ProductID: "1", Quantity: 2, Price: ptr(1.0)},
						model.OrderItemSubmission{ProductID: "2", Quantity: 1, Price: ptr(1.0)},
					)
					s.TotalAmount = ptr(3.0)
					return s
				}(),
			},
			mockCall: func(f fields) {
				f.productRepo.On("GetByID", mock.Anything, "1").Return(frock, nil).Once()
				f.productRepo.On("GetByID", mock.Anything, "2").Return(romper, nil).Once()
				f.orderRepo.On("CreateOrder", mock.Anything, mock.MatchedBy(func(o *model.Order) bool {
					return o.TotalAmount == 1850
				})).Return(nil).Once()
				f.orderRepo.On("CreateOrderItem", mock.Anything, mock.MatchedBy(func(it *model.OrderItem) bool {
					return it.ProductID == "1" && it.Subtotal == 1000 && it.Size == constant.DefaultOption && it.Color == constant.DefaultOption
				})).Return(nil).Once()
				f.orderRepo.On("CreateOrderItem", mock.Anything, mock.MatchedBy(func(it *model.OrderItem) bool {
					return it.ProductID == "2" && it.Subtotal == 850 && it.ProductName == "Romper"
				})).Return(nil).Once()
				f.notifier.On("Notify", mock.Anything, mock.Anything).Return().Once()
			},
		},
		{
			name: "success: duplicate cart lines merge before pricing",
			args: args{
				ctx: context.Background(),
				req: submission(
					model.OrderItemSubmission{ProductID: "1", Quantity: 1, Options: map[string]string{"Size": "2Y", "Color": "Red"}},
					model.OrderItemSubmission{ProductID: "1", Quantity: 2, Options: map[string]string{" Color ": "Red", "Size": "2Y"}},
				),
			},
			mockCall: func(f fields) {
				f.productRepo.On("GetByID", mock.Anything, "1").Return(frock, nil).Once()
				f.orderRepo.On("CreateOrder", mock.Anything, mock.MatchedBy(func(o *model.Order) bool {
					return o.TotalAmount == 1500
				})).Return(nil).Once()
				f.orderRepo.On("CreateOrderItem", mock.Anything, mock.MatchedBy(func(it *model.OrderItem) bool {
					return it.Quantity == 3 && it.Size == "Red" && it.Color == "2Y"
				})).Return(nil).Once()
				f.notifier.On("Notify", mock.Anything, mock.Anything).Return().Once()
			},
		},
		{
			name: "error: quantity beyond int range is rejected before any write",
			args: args{
				ctx: context.Background(),
				req: submission(model.OrderItemSubmission{ProductID: "1", Quantity: math.MaxInt64 / 400}),
			},
			wantErr: true,
			errCode: constant.ErrValidation,
		},
		{
			name: "error: merged quantity over the line limit",
			args: args{
				ctx: context.Background(),
				req: submission(
					model.OrderItemSubmission{ProductID: "1", Quantity: 600},
					model.OrderItemSubmission{ProductID: "1", Quantity: 600},
				),
			},
			wantErr: true,
			errCode: constant.ErrValidation,
		},
		{
			name: "error: total that would overflow is never persisted",
			args: args{
				ctx: context.Background(),
				req: submission(model.OrderItemSubmission{ProductID: "9", Quantity: 3}),
			},
			mockCall: func(f fields) {
				f.productRepo.On("GetByID", mock.Anything, "9").
					Return(&model.Product{ID: "9", Name: "Gold Bib", Price: math.MaxInt64 / 2, IsActive: true}, nil).Once()
			},
			wantErr: true,
			errCode: constant.ErrValidation,
		},
		{
			name: "error: negative store price",
			args: args{
				ctx: context.Background(),
				req: submission(model.OrderItemSubmission{ProductID: "8", Quantity: 1}),
			},
			mockCall: func(f fields) {
				f.productRepo.On("GetByID", mock.Anything, "8").
					Return(&model.Product{ID: "8", Name: "Sock", Price: -5, IsActive: true}, nil).Once()
			},
			wantErr: true,
			errCode: constant.ErrValidation,
		},
		{
			name: "error: empty items",
			args: args{
				ctx: context.Background(),
				req: submission(),
			},
			wantErr: true,
			errCode: constant.ErrInvalidRequest,
		},
		{
			name: "error: unknown product",
			args: args{
				ctx: context.Background(),
				req: submission(model.OrderItemSubmission{ProductID: "404", Quantity: 1}),
			},
			mockCall: func(f fields) {
				f.productRepo.On("GetByID", mock.Anything, "404").Return(nil, cerr.SetCustomError(constant.ErrNotFound)).Once()
			},
			wantErr: true,
			errCode: constant.ErrNotFound,
		},
		{
			name: "error: inactive product",
			args: args{
				ctx: context.Background(),
				req: submission(model.OrderItemSubmission{ProductID: "3", Quantity: 1}),
			},
			mockCall: func(f fields) {
				f.productRepo.On("GetByID", mock.Anything, "3").Return(&model.Product{ID: "3", Price: 10}, nil).Once()
			},
			wantErr: true,
			errCode: constant.ErrProductUnavailable,
		},
		{
			name: "error: store not configured",
			args: args{
				ctx: context.Background(),
				req: submission(model.OrderItemSubmission{ProductID: "1", Quantity: 1}),
			},
			mockCall: func(f fields) {
				f.productRepo.On("GetByID", mock.Anything, "1").Return(nil, cerr.SetNotConfiguredError("nocodb")).Once()
			},
			wantErr: true,
			errCode: constant.ErrNotConfigured,
		},
		{
			name: "error: order write fails upstream",
			args: args{
				ctx: context.Background(),
				req: submission(model.OrderItemSubmission{ProductID: "1", Quantity: 1}),
			},
			mockCall: func(f fields) {
				f.productRepo.On("GetByID", mock.Anything, "1").Return(frock, nil).Once()
				f.orderRepo.On("CreateOrder", mock.Anything, mock.Anything).Return(cerr.SetUpstreamError("nocodb", 500)).Once()
			},
			wantErr: true,
			errCode: constant.ErrUpstream,
		},
		{
			name: "error: item write fails and the order is cancelled",
			args: args{
				ctx: context.Background(),
				req: submission(model.OrderItemSubmission{ProductID: "1", Quantity: 1}),
			},
			mockCall: func(f fields) {
				f.productRepo.On("GetByID", mock.Anything, "1").Return(frock, nil).Once()
				f.orderRepo.On("CreateOrder", mock.Anything, mock.Anything).Return(nil).Once()
				f.orderRepo.On("CreateOrderItem", mock.Anything, mock.Anything).Return(cerr.SetUpstreamError("nocodb", 0)).Once()
				f.orderRepo.On("UpdateOrder", mock.Anything, mock.AnythingOfType("string"), mock.MatchedBy(func(p *model.OrderPatch) bool {
					return p.OrderStatus != nil && *p.OrderStatus == constant.OrderStatusCancelled
				})).Return(errors.New("still down")).Once()
			},
			wantErr: true,
			errCode: constant.ErrUpstreamUnreachable,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			f := fields{
				orderRepo:   ordermocks.NewOrderRepository(t),
				productRepo: productmocks.NewProductRepository(t),
				notifier:    notificationmocks.NewNotifier(t),
			}
			if tt.mockCall != nil {
				tt.mockCall(f)
			}
			app := apporder.NewOrderApp(f.orderRepo, f.productRepo, f.notifier)

			got, err := app.CreateOrder(tt.args.ctx, tt.args.req)
			if (err != nil) != tt.wantErr {
				t.Fatalf("CreateOrder() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				assertErrorType(t, err, tt.errCode)
				return
			}
			if !strings.HasPrefix(got.ID, "ORD-") {
				t.Fatalf("CreateOrder() ID = %q, want ORD- prefix", got.ID)
			}
		})
	}
}

func TestOrderApp_GetOrder(t *testing.T) {
	t.Run("success: order with items", func(t *testing.T) {
		orderRepo := ordermocks.NewOrderRepository(t)
		orderRepo.On("GetOrder", mock.Anything, "ORD-1").Return(&model.Order{ID: "ORD-1"}, nil).Once()
		orderRepo.On("ListOrderItems", mock.Anything, "ORD-1").Return(nil, nil).Once()

		app := apporder.NewOrderApp(orderRepo, productmocks.NewProductRepository(t), notificationmocks.NewNotifier(t))
		got, err := app.GetOrder(context.Background(), "ORD-1")
		if err != nil {
			t.Fatalf("GetOrder() error = %v", err)
		}
		if got.Order.ID != "ORD-1" || got.Items == nil {
			t.Fatalf("GetOrder() = %+v", got)
		}
	})

	t.Run("error: not found", func(t *testing.T) {
		orderRepo := ordermocks.NewOrderRepository(t)
		orderRepo.On("GetOrder", mock.Anything, "ORD-X").Return(nil, cerr.SetCustomError(constant.ErrNotFound)).Once()

		app := apporder.NewOrderApp(orderRepo, productmocks.NewProductRepository(t), notificationmocks.NewNotifier(t))
		_, err := app.GetOrder(context.Background(), "ORD-X")
		assertErrorType(t, err, constant.ErrNotFound)
	})
}

func TestOrderApp_ListOrders(t *testing.T) {
	orderRepo := ordermocks.NewOrderRepository(t)
	orderRepo.On("ListOrders", mock.Anything, 1, 100).Return([]model.Order{{ID: "ORD-1"}}, int64(41), nil).Once()

	app := apporder.NewOrderApp(orderRepo, productmocks.NewProductRepository(t), notificationmocks.NewNotifier(t))
	got, err := app.ListOrders(context.Background(), 0, 500)
	if err != nil {
		t.Fatalf("ListOrders() error = %v", err)
	}
	if got.Page != 1 || got.PerPage != 100 || got.TotalCount != 41 || len(got.Items) != 1 {
		t.Fatalf("ListOrders() = %+v", got)
	}
}

func TestOrderApp_UpdateOrderStatus(t *testing.T) {
	type fields struct {
		orderRepo *ordermocks.OrderRepository
		notifier  *notificationmocks.Notifier
	}
	tests := []struct {
		name     string
		orderID  string
		status   constant.OrderStatus
		mockCall func(f fields)
		wantErr  bool
		errCode  constant.ErrorType
	}{
		{
			name:    "success: shipped notifies with the new status",
			orderID: "ORD-1",
			status:  constant.OrderStatusShipped,
			mockCall: func(f fields) {
				f.orderRepo.On("GetOrder", mock.Anything, "ORD-1").Return(&model.Order{ID: "ORD-1", OrderStatus: constant.OrderStatusConfirmed}, nil).Once()
				f.orderRepo.On("UpdateOrder", mock.Anything, "ORD-1", mock.MatchedBy(func(p *model.OrderPatch) bool {
					return *p.OrderStatus == constant.OrderStatusShipped && p.PaymentStatus == nil && p.PaymentID == nil
				})).Return(nil).Once()
				f.notifier.On("Notify", mock.Anything, mock.MatchedBy(func(e *model.NotificationEvent) bool {
					return e.Type == constant.EventStatusChanged && e.Status == constant.OrderStatusShipped && e.Order.OrderStatus == constant.OrderStatusShipped
				})).Return().Once()
			},
		},
		{
			name:    "error: invalid status",
			orderID: "ORD-1",
			status:  "lost",
			wantErr: true,
			errCode: constant.ErrValidation,
		},
		{
			name:    "error: order not found",
			orderID: "ORD-X",
			status:  constant.OrderStatusCancelled,
			mockCall: func(f fields) {
				f.orderRepo.On("GetOrder", mock.Anything, "ORD-X").Return(nil, cerr.SetCustomError(constant.ErrNotFound)).Once()
			},
			wantErr: true,
			errCode: constant.ErrNotFound,
		},
		{
			name:    "error: update fails upstream",
			orderID: "ORD-1",
			status:  constant.OrderStatusDelivered,
			mockCall: func(f fields) {
				f.orderRepo.On("GetOrder", mock.Anything, "ORD-1").Return(&model.Order{ID: "ORD-1"}, nil).Once()
				f.orderRepo.On("UpdateOrder", mock.Anything, "ORD-1", mock.Anything).Return(cerr.SetUpstreamError("nocodb", 503)).Once()
			},
			wantErr: true,
			errCode: constant.ErrUpstream,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			f := fields{orderRepo: ordermocks.NewOrderRepository(t), notifier: notificationmocks.NewNotifier(t)}
			if tt.mockCall != nil {
				tt.mockCall(f)
			}
			app := apporder.NewOrderApp(f.orderRepo, productmocks.NewProductRepository(t), f.notifier)

			_, err := app.UpdateOrderStatus(context.Background(), tt.orderID, tt.status)
			if (err != nil) != tt.wantErr {
				t.Fatalf("UpdateOrderStatus() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				assertErrorType(t, err, tt.errCode)
			}
		})
	}
}
