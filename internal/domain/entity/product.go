package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product es un artículo del catálogo. Attributes guarda los campos libres
// que el catálogo no modela de forma fija (tallas, telas, colores, etc.).
type Product struct {
	ID         string
	Name       string
	Category   string
	Price      decimal.Decimal
	ShowOnHome bool
	Attributes map[string]any
	CreatedAt  time.Time
}
