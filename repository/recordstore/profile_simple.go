package recordstore

import (
	"fmt"
	"strings"

	"github.com/muhammadheryan/kidswear/constant"
	"github.com/muhammadheryan/kidswear/model"
)

// simpleProfile is the one-table-per-entity layout with natural field names.
// Products are addressed by their store row id; orders by an order_id column.
type simpleProfile struct{}

func (simpleProfile) Name() string { return ProfileSimple }

func (simpleProfile) ProductLookup(productID string) Lookup {
	if !isDigits(productID) {
		return Lookup{}
	}
	return Lookup{RowID: productID}
}

func (simpleProfile) ActiveProductsWhere() string {
	return "(is_active,eq,true)"
}

func (simpleProfile) DecodeProduct(row Row) (*model.Product, error) {
	price, err := asInt64(row["price"])
	if err != nil {
		return nil, fmt.Errorf("product %s: %w", RowID(row), err)
	}
	return &model.Product{
		ID:          RowID(row),
		Name:        asString(row["name"]),
		Price:       price,
		Description: asString(row["description"]),
		Brand:       asString(row["brand"]),
		Sizes:       asStringList(row["sizes"]),
		Colors:      asStringList(row["colors"]),
		IsActive:    asBool(row["is_active"]),
		StockStatus: asString(row["stock_status"]),
	}, nil
}

func (simpleProfile) EncodeProductPatch(patch *model.ProductPatch, _ Row) (Row, error) {
	row := Row{}
	if patch.Name != nil {
		row["name"] = *patch.Name
	}
	if patch.Price != nil {
		row["price"] = *patch.Price
	}
	if patch.Description != nil {
		row["description"] = *patch.Description
	}
	if patch.Brand != nil {
		row["brand"] = *patch.Brand
	}
	if patch.StockStatus != nil {
		row["stock_status"] = *patch.StockStatus
	}
	if patch.IsActive != nil {
		row["is_active"] = *patch.IsActive
	}
	return row, nil
}

func (simpleProfile) OrderLookup(orderID string) Lookup {
	return Lookup{Where: whereEq("order_id", orderID)}
}

func (simpleProfile) OrderSort() string {
	return "-" + createdAtField
}

func (simpleProfile) DecodeOrder(row Row) (*model.Order, error) {
	total, err := asInt64(row["total_amount"])
	if err != nil {
		return nil, fmt.Errorf("order %s: %w", asString(row["order_id"]), err)
	}
	return &model.Order{
		ID:                  asString(row["order_id"]),
		CustomerName:        asString(row["customer_name"]),
		CustomerPhone:       asString(row["customer_phone"]),
		CustomerEmail:       asString(row["customer_email"]),
		CustomerAddress:     asString(row["customer_address"]),
		CustomerDistrict:    asString(row["customer_district"]),
		SpecialInstructions: asStringPtr(row["special_instructions"]),
		TotalAmount:         total,
		PaymentMethod:       constant.PaymentMethod(strings.ToLower(asString(row["payment_method"]))),
		PaymentStatus:       constant.PaymentStatus(asString(row["payment_status"])),
		PaymentID:           asStringPtr(row["payment_id"]),
		OrderStatus:         constant.OrderStatus(asString(row["order_status"])),
		CreatedAt:           asTime(row[createdAtField]),
		UpdatedAt:           asTime(row[updatedAtField]),
	}, nil
}

func (simpleProfile) EncodeOrder(order *model.Order) Row {
	return Row{
		"order_id":             order.ID,
		"customer_name":        order.CustomerName,
		"customer_phone":       order.CustomerPhone,
		"customer_email":       order.CustomerEmail,
		"customer_address":     order.CustomerAddress,
		"customer_district":    order.CustomerDistrict,
		"special_instructions": order.SpecialInstructions,
		"total_amount":         order.TotalAmount,
		"payment_method":       string(order.PaymentMethod),
		"payment_status":       string(order.PaymentStatus),
		"payment_id":           order.PaymentID,
		"order_status":         string(order.OrderStatus),
	}
}

func (simpleProfile) EncodeOrderPatch(patch *model.OrderPatch, _ Row) (Row, error) {
	row := Row{}
	if patch.PaymentStatus != nil {
		row["payment_status"] = string(*patch.PaymentStatus)
	}
	if patch.PaymentMethod != nil {
		row["payment_method"] = string(*patch.PaymentMethod)
	}
	if patch.PaymentID != nil {
		row["payment_id"] = *patch.PaymentID
	}
	if patch.OrderStatus != nil {
		row["order_status"] = string(*patch.OrderStatus)
	}
	return row, nil
}

func (simpleProfile) OrderItemsWhere(orderID string) string {
	return whereEq("order_id", orderID)
}

func (simpleProfile) DecodeOrderItem(row Row) (*model.OrderItem, error) {
	price, err := asInt64(row["product_price"])
	if err != nil {
		return nil, fmt.Errorf("order item %s: %w", RowID(row), err)
	}
	quantity, err := asInt(row["quantity"])
	if err != nil {
		return nil, fmt.Errorf("order item %s: %w", RowID(row), err)
	}
	subtotal, err := asInt64(row["subtotal"])
	if err != nil {
		return nil, fmt.Errorf("order item %s: %w", RowID(row), err)
	}
	return &model.OrderItem{
		ID:           RowID(row),
		OrderID:      asString(row["order_id"]),
		ProductID:    asString(row["product_id"]),
		ProductName:  asString(row["product_name"]),
		ProductPrice: price,
		Size:         asString(row["size"]),
		Color:        asString(row["color"]),
		Quantity:     quantity,
		Subtotal:     subtotal,
	}, nil
}

func (simpleProfile) EncodeOrderItem(item *model.OrderItem) Row {
	return Row{
		"order_id":      item.OrderID,
		"product_id":    item.ProductID,
		"product_name":  item.ProductName,
		"product_price": item.ProductPrice,
		"size":          item.Size,
		"color":         item.Color,
		"quantity":      item.Quantity,
		"subtotal":      item.Subtotal,
	}
}
