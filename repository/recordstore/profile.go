package recordstore

import (
	"fmt"

	"github.com/muhammadheryan/kidswear/model"
)

const (
	ProfileSimple = "simple"
	ProfilePacked = "packed"
)

// Lookup locates a single row, either directly by store row id or through a
// filter on a business id column.
type Lookup struct {
	RowID string
	Where string
}

// SchemaProfile maps domain types onto one physical table layout.
type SchemaProfile interface {
	Name() string

	ProductLookup(productID string) Lookup
	ActiveProductsWhere() string
	DecodeProduct(row Row) (*model.Product, error)
	// EncodeProductPatch receives the current row so packed fields can be
	// merged rather than replaced.
	EncodeProductPatch(patch *model.ProductPatch, prev Row) (Row, error)

	OrderLookup(orderID string) Lookup
	OrderSort() string
	DecodeOrder(row Row) (*model.Order, error)
	EncodeOrder(order *model.Order) Row
	EncodeOrderPatch(patch *model.OrderPatch, prev Row) (Row, error)

	OrderItemsWhere(orderID string) string
	DecodeOrderItem(row Row) (*model.OrderItem, error)
	EncodeOrderItem(item *model.OrderItem) Row
}

func NewProfile(name string) (SchemaProfile, error) {
	switch name {
	case "", ProfileSimple:
		return simpleProfile{}, nil
	case ProfilePacked:
		return packedProfile{}, nil
	default:
		return nil, fmt.Errorf("unknown schema profile %q", name)
	}
}
