package dto

import "github.com/shopspring/decimal"

// AdminStatsResponse resumen del panel: conteos aproximados y revenue de
// pedidos pagados. Sin pedidos pagados, revenue es cero.
type AdminStatsResponse struct {
	Users    int64           `json:"users"`
	Products int64           `json:"products"`
	Orders   int64           `json:"orders"`
	Revenue  decimal.Decimal `json:"revenue"`
}
