package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateProductRequest entrada para crear un producto.
type CreateProductRequest struct {
	Name       string          `json:"name"`
	Category   string          `json:"category"`
	Price      decimal.Decimal `json:"price"`
	ShowOnHome *bool           `json:"showOnHome"`
	Attributes map[string]any  `json:"attributes"`
}

// UpdateProductRequest patch de producto: solo campos presentes. El id del
// payload, si viene, se ignora (el identificador es inmutable).
type UpdateProductRequest struct {
	Name       *string          `json:"name"`
	Category   *string          `json:"category"`
	Price      *decimal.Decimal `json:"price"`
	ShowOnHome *bool            `json:"showOnHome"`
	Attributes map[string]any   `json:"attributes"`
}

// ProductSearchRequest filtros de búsqueda del catálogo (query string).
type ProductSearchRequest struct {
	Search   string `query:"search"`
	Category string `query:"category"`
	MinPrice string `query:"minPrice"`
	MaxPrice string `query:"maxPrice"`
	Sort     string `query:"sort"`
	PageRequest
}

// ProductResponse salida de un producto.
type ProductResponse struct {
	ID         string          `json:"id"`
	Name       string          `json:"name"`
	Category   string          `json:"category"`
	Price      decimal.Decimal `json:"price"`
	ShowOnHome bool            `json:"showOnHome"`
	Attributes map[string]any  `json:"attributes,omitempty"`
	CreatedAt  time.Time       `json:"createdAt"`
}

// ProductListResponse página del catálogo. TotalCount se calcula sobre el
// conjunto filtrado completo, independiente de la paginación.
type ProductListResponse struct {
	Items      []ProductResponse `json:"items"`
	TotalCount int64             `json:"totalCount"`
	Page       int               `json:"page"`
	Limit      int               `json:"limit"`
}
