package recordstore

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/muhammadheryan/kidswear/constant"
	"github.com/muhammadheryan/kidswear/model"
)

// packedProfile is the legacy layout. Business ids live in *Ref columns,
// distinct from store row ids, and fields without a column of their own are
// packed into a display column through the meta side channel.
type packedProfile struct{}

const (
	metaEmail         = "email"
	metaAddress       = "address"
	metaDistrict      = "district"
	metaNotes         = "notes"
	metaPaymentMethod = "payment_method"

	metaSize      = "size"
	metaColor     = "color"
	metaUnitPrice = "unit_price"

	metaBrand       = "brand"
	metaStockStatus = "stock_status"
	metaSizes       = "sizes"
	metaColors      = "colors"
)

func (packedProfile) Name() string { return ProfilePacked }

func (packedProfile) ProductLookup(productID string) Lookup {
	return Lookup{Where: whereEq("ProductRef", productID)}
}

func (packedProfile) ActiveProductsWhere() string {
	return "(Active,eq,true)"
}

func (packedProfile) DecodeProduct(row Row) (*model.Product, error) {
	price, err := asInt64(row["Price"])
	if err != nil {
		return nil, fmt.Errorf("product %s: %w", asString(row["ProductRef"]), err)
	}
	description, meta, err := DecodeMeta(asString(row["Notes"]))
	if err != nil {
		return nil, fmt.Errorf("product %s notes: %w", asString(row["ProductRef"]), err)
	}
	return &model.Product{
		ID:          asString(row["ProductRef"]),
		Name:        asString(row["Title"]),
		Price:       price,
		Description: description,
		Brand:       meta[metaBrand],
		Sizes:       asStringList(meta[metaSizes]),
		Colors:      asStringList(meta[metaColors]),
		IsActive:    asBool(row["Active"]),
		StockStatus: meta[metaStockStatus],
	}, nil
}

func (packedProfile) EncodeProductPatch(patch *model.ProductPatch, prev Row) (Row, error) {
	row := Row{}
	if patch.Name != nil {
		row["Title"] = *patch.Name
	}
	if patch.Price != nil {
		row["Price"] = *patch.Price
	}
	if patch.IsActive != nil {
		row["Active"] = *patch.IsActive
	}

	if patch.Description == nil && patch.Brand == nil && patch.StockStatus == nil {
		return row, nil
	}
	description, meta, err := DecodeMeta(asString(prev["Notes"]))
	if err != nil {
		return nil, fmt.Errorf("product %s notes: %w", asString(prev["ProductRef"]), err)
	}
	if patch.Description != nil {
		description = *patch.Description
	}
	changes := Meta{}
	if patch.Brand != nil {
		changes[metaBrand] = *patch.Brand
	}
	if patch.StockStatus != nil {
		changes[metaStockStatus] = *patch.StockStatus
	}
	row["Notes"] = EncodeMeta(description, meta.Merge(changes))
	return row, nil
}

func (packedProfile) OrderLookup(orderID string) Lookup {
	return Lookup{Where: whereEq("OrderRef", orderID)}
}

func (packedProfile) OrderSort() string {
	return "-" + createdAtField
}

func (packedProfile) DecodeOrder(row Row) (*model.Order, error) {
	ref := asString(row["OrderRef"])
	total, err := asInt64(row["Total"])
	if err != nil {
		return nil, fmt.Errorf("order %s: %w", ref, err)
	}
	name, meta, err := DecodeMeta(asString(row["Customer"]))
	if err != nil {
		return nil, fmt.Errorf("order %s customer: %w", ref, err)
	}

	order := &model.Order{
		ID:               ref,
		CustomerName:     name,
		CustomerPhone:    asString(row["Phone"]),
		CustomerEmail:    meta[metaEmail],
		CustomerAddress:  meta[metaAddress],
		CustomerDistrict: meta[metaDistrict],
		TotalAmount:      total,
		PaymentMethod:    constant.PaymentMethod(meta[metaPaymentMethod]),
		PaymentStatus:    constant.PaymentStatus(asString(row["PaymentStatus"])),
		PaymentID:        asStringPtr(row["PaymentRef"]),
		OrderStatus:      constant.OrderStatus(asString(row["Status"])),
		CreatedAt:        asTime(row[createdAtField]),
		UpdatedAt:        asTime(row[updatedAtField]),
	}
	if notes, ok := meta[metaNotes]; ok {
		order.SpecialInstructions = &notes
	}
	return order, nil
}

func (packedProfile) EncodeOrder(order *model.Order) Row {
	meta := Meta{
		metaEmail:         order.CustomerEmail,
		metaAddress:       order.CustomerAddress,
		metaDistrict:      order.CustomerDistrict,
		metaNotes:         derefString(order.SpecialInstructions),
		metaPaymentMethod: string(order.PaymentMethod),
	}
	return Row{
		"OrderRef":      order.ID,
		"Customer":      EncodeMeta(order.CustomerName, meta),
		"Phone":         order.CustomerPhone,
		"Total":         order.TotalAmount,
		"PaymentStatus": string(order.PaymentStatus),
		"PaymentRef":    order.PaymentID,
		"Status":        string(order.OrderStatus),
	}
}

func (packedProfile) EncodeOrderPatch(patch *model.OrderPatch, prev Row) (Row, error) {
	row := Row{}
	if patch.PaymentStatus != nil {
		row["PaymentStatus"] = string(*patch.PaymentStatus)
	}
	if patch.PaymentID != nil {
		row["PaymentRef"] = *patch.PaymentID
	}
	if patch.OrderStatus != nil {
		row["Status"] = string(*patch.OrderStatus)
	}
	if patch.PaymentMethod != nil {
		name, meta, err := DecodeMeta(asString(prev["Customer"]))
		if err != nil {
			return nil, fmt.Errorf("order %s customer: %w", asString(prev["OrderRef"]), err)
		}
		row["Customer"] = EncodeMeta(name, meta.Merge(Meta{metaPaymentMethod: string(*patch.PaymentMethod)}))
	}
	return row, nil
}

func (packedProfile) OrderItemsWhere(orderID string) string {
	return whereEq("OrderRef", orderID)
}

func (packedProfile) DecodeOrderItem(row Row) (*model.OrderItem, error) {
	name, meta, err := DecodeMeta(asString(row["Description"]))
	if err != nil {
		return nil, fmt.Errorf("order item %s: %w", RowID(row), err)
	}
	price, err := asInt64(meta[metaUnitPrice])
	if err != nil {
		return nil, fmt.Errorf("order item %s: %w", RowID(row), err)
	}
	quantity, err := asInt(row["Qty"])
	if err != nil {
		return nil, fmt.Errorf("order item %s: %w", RowID(row), err)
	}
	subtotal, err := asInt64(row["LineTotal"])
	if err != nil {
		return nil, fmt.Errorf("order item %s: %w", RowID(row), err)
	}
	return &model.OrderItem{
		ID:           RowID(row),
		OrderID:      asString(row["OrderRef"]),
		ProductID:    asString(row["ProductRef"]),
		ProductName:  name,
		ProductPrice: price,
		Size:         defaultOption(meta[metaSize]),
		Color:        defaultOption(meta[metaColor]),
		Quantity:     quantity,
		Subtotal:     subtotal,
	}, nil
}

func (packedProfile) EncodeOrderItem(item *model.OrderItem) Row {
	meta := Meta{
		metaSize:      item.Size,
		metaColor:     item.Color,
		metaUnitPrice: strconv.FormatInt(item.ProductPrice, 10),
	}
	return Row{
		"OrderRef":    item.OrderID,
		"ProductRef":  item.ProductID,
		"Description": EncodeMeta(item.ProductName, meta),
		"Qty":         item.Quantity,
		"LineTotal":   item.Subtotal,
	}
}

func defaultOption(s string) string {
	if strings.TrimSpace(s) == "" {
		return constant.DefaultOption
	}
	return s
}
