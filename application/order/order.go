package order

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/muhammadheryan/kidswear/application/notification"
	"github.com/muhammadheryan/kidswear/constant"
	"github.com/muhammadheryan/kidswear/model"
	orderrepo "github.com/muhammadheryan/kidswear/repository/order"
	productrepo "github.com/muhammadheryan/kidswear/repository/product"
	"github.com/muhammadheryan/kidswear/utils/errors"
	"github.com/muhammadheryan/kidswear/utils/ident"
	"github.com/muhammadheryan/kidswear/utils/logger"
	"github.com/muhammadheryan/kidswear/utils/variant"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

const orderIDPrefix = "ORD"

type OrderApp interface {
	CreateOrder(ctx context.Context, req *model.OrderSubmission) (*model.CreateOrderResponse, error)
	GetOrder(ctx context.Context, orderID string) (*model.OrderDetailResponse, error)
	ListOrders(ctx context.Context, page, perPage int) (*model.OrderListResponse, error)
	UpdateOrderStatus(ctx context.Context, orderID string, status constant.OrderStatus) (*model.Order, error)
}

type orderAppImpl struct {
	orderRepo   orderrepo.OrderRepository
	productRepo productrepo.ProductRepository
	notifier    notification.Notifier
	now         func() time.Time
}

func NewOrderApp(orderRepo orderrepo.OrderRepository, productRepo productrepo.ProductRepository, notifier notification.Notifier) OrderApp {
	return &orderAppImpl{orderRepo: orderRepo, productRepo: productRepo, notifier: notifier, now: time.Now}
}

type pricedLine struct {
	line     variant.Line
	product  *model.Product
	subtotal int64
}

// lineSubtotal is price × quantity; false when the price is negative or the
// product does not fit in int64.
func lineSubtotal(price int64, quantity int) (int64, bool) {
	if price < 0 || quantity < 0 {
		return 0, false
	}
	if quantity > 0 && price > math.MaxInt64/int64(quantity) {
		return 0, false
	}
	return price * int64(quantity), true
}

func addAmount(total, amount int64) (int64, bool) {
	if amount > math.MaxInt64-total {
		return 0, false
	}
	return total + amount, true
}

func (s *orderAppImpl) CreateOrder(ctx context.Context, req *model.OrderSubmission) (*model.CreateOrderResponse, error) {
	if len(req.Items) == 0 {
		return nil, errors.SetCustomError(constant.ErrInvalidRequest)
	}

	lines := make([]variant.Line, 0, len(req.Items))
	for i, item := range req.Items {
		if item.Quantity < 1 || item.Quantity > constant.MaxLineQuantity {
			return nil, errors.SetValidationError([]errors.FieldError{{Field: fmt.Sprintf("items[%d].quantity", i), Rule: "range"}})
		}
		lines = append(lines, variant.Line{
			ProductID: string(item.ProductID),
			Options:   item.Options,
			Quantity:  item.Quantity,
		})
	}
	lines = variant.MergeLines(lines)
	for _, line := range lines {
		if line.Quantity > constant.MaxLineQuantity {
			logger.Info("[CreateOrder] merged quantity over limit", zap.String("product_id", line.ProductID), zap.Int("quantity", line.Quantity))
			return nil, errors.SetValidationError([]errors.FieldError{{Field: "items", Rule: "lte"}})
		}
	}

	// price every line from the store, never from the client
	products := make(map[string]*model.Product, len(lines))
	priced := make([]pricedLine, 0, len(lines))
	var total int64
	for _, line := range lines {
		product, ok := products[line.ProductID]
		if !ok {
			p, err := s.productRepo.GetByID(ctx, line.ProductID)
			if err != nil {
				logger.Error("[CreateOrder] get product", zap.String("product_id", line.ProductID), zap.Error(err))
				return nil, errors.Classify(err)
			}
			if !p.IsActive {
				logger.Info("[CreateOrder] inactive product", zap.String("product_id", line.ProductID))
				return nil, errors.SetCustomError(constant.ErrProductUnavailable)
			}
			products[line.ProductID] = p
			product = p
		}
		subtotal, ok := lineSubtotal(product.Price, line.Quantity)
		if ok {
			total, ok = addAmount(total, subtotal)
		}
		if !ok {
			logger.Error("[CreateOrder] total out of range",
				zap.String("product_id", product.ID),
				zap.Int64("price", product.Price),
				zap.Int("quantity", line.Quantity),
			)
			return nil, errors.SetValidationError([]errors.FieldError{{Field: "total_amount", Rule: "range"}})
		}
		priced = append(priced, pricedLine{line: line, product: product, subtotal: subtotal})
	}

	if req.TotalAmount != nil && decimal.NewFromFloat(*req.TotalAmount).Round(0).IntPart() != total {
		logger.Info("[CreateOrder] client total ignored",
			zap.Float64("client_total", *req.TotalAmount),
			zap.Int64("total", total),
		)
	}

	order := &model.Order{
		ID:                  ident.New(orderIDPrefix, s.now()),
		CustomerName:        req.CustomerName,
		CustomerPhone:       req.CustomerPhone,
		CustomerEmail:       req.CustomerEmail,
		CustomerAddress:     req.CustomerAddress,
		CustomerDistrict:    req.CustomerDistrict,
		SpecialInstructions: req.SpecialInstructions,
		TotalAmount:         total,
		PaymentMethod:       req.PaymentMethod,
		PaymentStatus:       constant.PaymentStatusPending,
		OrderStatus:         constant.OrderStatusPending,
	}
	if err := s.orderRepo.CreateOrder(ctx, order); err != nil {
		logger.Error("[CreateOrder] create order", zap.Error(err))
		return nil, errors.Classify(err)
	}

	items := make([]model.OrderItem, 0, len(priced))
	for _, p := range priced {
		size, color := variant.PickFirstTwoOptions(p.line.Options)
		item := model.OrderItem{
			OrderID:      order.ID,
			ProductID:    p.product.ID,
			ProductName:  variant.DisplayName(p.product.Name, p.line.Options),
			ProductPrice: p.product.Price,
			Size:         size,
			Color:        color,
			Quantity:     p.line.Quantity,
			Subtotal:     p.subtotal,
		}
		if err := s.orderRepo.CreateOrderItem(ctx, &item); err != nil {
			logger.Error("[CreateOrder] create order item", zap.String("order_id", order.ID), zap.Error(err))
			s.abandonOrder(ctx, order.ID)
			return nil, errors.Classify(err)
		}
		items = append(items, item)
	}

	s.notifier.Notify(ctx, &model.NotificationEvent{
		Type:  constant.EventOrderCreated,
		Order: *order,
		Items: items,
	})

	return &model.CreateOrderResponse{ID: order.ID}, nil
}

// abandonOrder marks a half-written order cancelled so it never gets paid.
// The store has no transactions; if this write fails too the order stays
// pending with partial items.
func (s *orderAppImpl) abandonOrder(ctx context.Context, orderID string) {
	cancelled := constant.OrderStatusCancelled
	if err := s.orderRepo.UpdateOrder(ctx, orderID, &model.OrderPatch{OrderStatus: &cancelled}); err != nil {
		logger.Error("[CreateOrder] cancel partial order", zap.String("order_id", orderID), zap.Error(err))
	}
}

func (s *orderAppImpl) GetOrder(ctx context.Context, orderID string) (*model.OrderDetailResponse, error) {
	order, err := s.orderRepo.GetOrder(ctx, orderID)
	if err != nil {
		logger.Error("[GetOrder] get order", zap.String("order_id", orderID), zap.Error(err))
		return nil, errors.Classify(err)
	}

	items, err := s.orderRepo.ListOrderItems(ctx, orderID)
	if err != nil {
		logger.Error("[GetOrder] list items", zap.String("order_id", orderID), zap.Error(err))
		return nil, errors.Classify(err)
	}
	if items == nil {
		items = []model.OrderItem{}
	}

	return &model.OrderDetailResponse{Order: order, Items: items}, nil
}

func (s *orderAppImpl) ListOrders(ctx context.Context, page, perPage int) (*model.OrderListResponse, error) {
	page, perPage = normalizePage(page, perPage)

	orders, total, err := s.orderRepo.ListOrders(ctx, page, perPage)
	if err != nil {
		logger.Error("[ListOrders] list orders", zap.Error(err))
		return nil, errors.Classify(err)
	}
	if orders == nil {
		orders = []model.Order{}
	}

	return &model.OrderListResponse{Items: orders, TotalCount: total, Page: page, PerPage: perPage}, nil
}

func (s *orderAppImpl) UpdateOrderStatus(ctx context.Context, orderID string, status constant.OrderStatus) (*model.Order, error) {
	if !status.Valid() {
		return nil, errors.SetValidationError([]errors.FieldError{{Field: "status", Rule: "oneof"}})
	}

	order, err := s.orderRepo.GetOrder(ctx, orderID)
	if err != nil {
		logger.Error("[UpdateOrderStatus] get order", zap.String("order_id", orderID), zap.Error(err))
		return nil, errors.Classify(err)
	}

	patch := &model.OrderPatch{OrderStatus: &status}
	if err := s.orderRepo.UpdateOrder(ctx, orderID, patch); err != nil {
		logger.Error("[UpdateOrderStatus] update order", zap.String("order_id", orderID), zap.Error(err))
		return nil, errors.Classify(err)
	}
	order.Apply(patch)

	s.notifier.Notify(ctx, &model.NotificationEvent{
		Type:   constant.EventStatusChanged,
		Order:  *order,
		Status: status,
	})

	return order, nil
}

const (
	defaultPerPage = 20
	maxPerPage     = 100
)

func normalizePage(page, perPage int) (int, int) {
	if page < 1 {
		page = 1
	}
	if perPage < 1 {
		perPage = defaultPerPage
	}
	if perPage > maxPerPage {
		perPage = maxPerPage
	}
	return page, perPage
}
