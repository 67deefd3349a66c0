package model

type Product struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Price       int64    `json:"price"`
	Description string   `json:"description,omitempty"`
	Brand       string   `json:"brand,omitempty"`
	Sizes       []string `json:"sizes,omitempty"`
	Colors      []string `json:"colors,omitempty"`
	IsActive    bool     `json:"is_active"`
	StockStatus string   `json:"stock_status,omitempty"`
}

// ProductPatch lists the admin-editable product fields; nil means unchanged.
type ProductPatch struct {
	Name        *string
	Price       *int64
	Description *string
	Brand       *string
	StockStatus *string
	IsActive    *bool
}

type ProductUpdateRequest struct {
	Name        *string `json:"name,omitempty" validate:"omitempty,min=1"`
	Price       *int64  `json:"price,omitempty" validate:"omitempty,gte=0"`
	Description *string `json:"description,omitempty"`
	Brand       *string `json:"brand,omitempty"`
	StockStatus *string `json:"stock_status,omitempty" validate:"omitempty,oneof=in_stock out_of_stock preorder"`
	IsActive    *bool   `json:"is_active,omitempty"`
}

func (r *ProductUpdateRequest) Patch() *ProductPatch {
	return &ProductPatch{
		Name:        r.Name,
		Price:       r.Price,
		Description: r.Description,
		Brand:       r.Brand,
		StockStatus: r.StockStatus,
		IsActive:    r.IsActive,
	}
}

type ProductListResponse struct {
	Items      []Product `json:"items"`
	TotalCount int64     `json:"total_count"`
	Page       int       `json:"page"`
	PerPage    int       `json:"per_page"`
}
