package repository

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/garments-tracker-api/internal/domain/entity"
)

// Orden de resultados para el catálogo.
const (
	SortNewest    = "newest"
	SortPriceAsc  = "price_asc"
	SortPriceDesc = "price_desc"
)

// ProductFilter filtros del catálogo. Los punteros nulos significan
// "sin filtro"; Category == "all" también se ignora.
type ProductFilter struct {
	Search   string
	Category string
	MinPrice *decimal.Decimal
	MaxPrice *decimal.Decimal
	Sort     string // newest (default), price_asc, price_desc
	Limit    int
	Offset   int
}

// ProductRepository define el puerto de persistencia para Product.
type ProductRepository interface {
	Create(ctx context.Context, product *entity.Product) error
	GetByID(ctx context.Context, id string) (*entity.Product, error)
	Update(ctx context.Context, product *entity.Product) error
	Delete(ctx context.Context, id string) error
	// Search devuelve la página filtrada y el total sobre el conjunto
	// filtrado, independiente de la paginación.
	Search(ctx context.Context, f ProductFilter) ([]*entity.Product, int64, error)
	// ListHome devuelve los productos marcados para la portada,
	// más recientes primero.
	ListHome(ctx context.Context, limit int) ([]*entity.Product, error)
}
