package model

import (
	"bytes"
	"encoding/json"
	"strings"
	"time"

	"github.com/muhammadheryan/kidswear/constant"
)

// FlexibleID accepts either a JSON string or a JSON number.
type FlexibleID string

func (f *FlexibleID) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) > 0 && b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*f = FlexibleID(strings.TrimSpace(s))
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(b, &n); err != nil {
		return err
	}
	*f = FlexibleID(n.String())
	return nil
}

// OrderItemSubmission is one cart line as sent by the client. The legacy
// shape carries Size/Color instead of Options.
type OrderItemSubmission struct {
	ProductID FlexibleID        `json:"productId" validate:"required"`
	Quantity  int               `json:"quantity" validate:"gte=1,lte=1000"`
	Options   map[string]string `json:"options,omitempty"`
	Size      string            `json:"size,omitempty"`
	Color     string            `json:"color,omitempty"`
	// Price is whatever the client believes the price is. Never used.
	Price *float64 `json:"price,omitempty"`
}

type OrderSubmission struct {
	CustomerName        string                 `json:"customer_name" validate:"required,min=2"`
	CustomerPhone       string                 `json:"customer_phone" validate:"required,bdphone"`
	CustomerEmail       string                 `json:"customer_email" validate:"required,email"`
	CustomerAddress     string                 `json:"customer_address" validate:"required,min=5"`
	CustomerDistrict    string                 `json:"customer_district" validate:"required"`
	SpecialInstructions *string                `json:"special_instructions,omitempty"`
	Items               []OrderItemSubmission  `json:"items" validate:"required,min=1,dive"`
	TotalAmount         *float64               `json:"total_amount,omitempty" validate:"omitempty,gte=0"`
	PaymentMethod       constant.PaymentMethod `json:"payment_method" validate:"required,oneof=bkash nagad"`
}

// Normalize trims customer fields and rewrites legacy size/color items into
// the options shape.
func (s *OrderSubmission) Normalize() {
	s.CustomerName = strings.TrimSpace(s.CustomerName)
	s.CustomerPhone = strings.TrimSpace(s.CustomerPhone)
	s.CustomerEmail = strings.TrimSpace(s.CustomerEmail)
	s.CustomerAddress = strings.TrimSpace(s.CustomerAddress)
	s.CustomerDistrict = strings.TrimSpace(s.CustomerDistrict)
	if s.SpecialInstructions != nil {
		trimmed := strings.TrimSpace(*s.SpecialInstructions)
		if trimmed == "" {
			s.SpecialInstructions = nil
		} else {
			s.SpecialInstructions = &trimmed
		}
	}

	for i := range s.Items {
		item := &s.Items[i]
		if len(item.Options) == 0 && (item.Size != "" || item.Color != "") {
			item.Options = map[string]string{"Size": item.Size, "Color": item.Color}
		}
		item.Size, item.Color = "", ""
	}
}

type CreateOrderResponse struct {
	ID string `json:"id"`
}

type Order struct {
	ID                  string                 `json:"id"`
	CustomerName        string                 `json:"customer_name"`
	CustomerPhone       string                 `json:"customer_phone"`
	CustomerEmail       string                 `json:"customer_email"`
	CustomerAddress     string                 `json:"customer_address"`
	CustomerDistrict    string                 `json:"customer_district"`
	SpecialInstructions *string                `json:"special_instructions"`
	TotalAmount         int64                  `json:"total_amount"`
	PaymentMethod       constant.PaymentMethod `json:"payment_method"`
	PaymentStatus       constant.PaymentStatus `json:"payment_status"`
	PaymentID           *string                `json:"payment_id"`
	OrderStatus         constant.OrderStatus   `json:"order_status"`
	CreatedAt           *time.Time             `json:"created_at,omitempty"`
	UpdatedAt           *time.Time             `json:"updated_at,omitempty"`
}

// HasPaymentID reports whether a payment session has been recorded.
func (o *Order) HasPaymentID() bool {
	return o.PaymentID != nil && *o.PaymentID != ""
}

// OrderPatch lists the mutable order fields; nil means unchanged.
type OrderPatch struct {
	PaymentStatus *constant.PaymentStatus
	PaymentMethod *constant.PaymentMethod
	PaymentID     *string
	OrderStatus   *constant.OrderStatus
}

type OrderItem struct {
	ID           string `json:"id,omitempty"`
	OrderID      string `json:"order_id"`
	ProductID    string `json:"product_id"`
	ProductName  string `json:"product_name"`
	ProductPrice int64  `json:"product_price"`
	Size         string `json:"size"`
	Color        string `json:"color"`
	Quantity     int    `json:"quantity"`
	Subtotal     int64  `json:"subtotal"`
}

type OrderDetailResponse struct {
	Order *Order      `json:"order"`
	Items []OrderItem `json:"items"`
}

type OrderListResponse struct {
	Items      []Order `json:"items"`
	TotalCount int64   `json:"total_count"`
	Page       int     `json:"page"`
	PerPage    int     `json:"per_page"`
}

type StatusUpdateRequest struct {
	Status constant.OrderStatus `json:"status" validate:"required,oneof=pending confirmed shipped delivered cancelled"`
}

// Apply copies the set fields of patch onto o.
func (o *Order) Apply(patch *OrderPatch) {
	if patch == nil {
		return
	}
	if patch.PaymentStatus != nil {
		o.PaymentStatus = *patch.PaymentStatus
	}
	if patch.PaymentMethod != nil {
		o.PaymentMethod = *patch.PaymentMethod
	}
	if patch.PaymentID != nil {
		id := *patch.PaymentID
		o.PaymentID = &id
	}
	if patch.OrderStatus != nil {
		o.OrderStatus = *patch.OrderStatus
	}
}
