package order

import (
	"context"

	"github.com/jhoicas/garments-tracker-api/internal/domain/entity"
)

// ReceiptGenerator genera la representación PDF de un pedido (recibo con
// cabecera, líneas y diario de producción). Implementado en infrastructure/pdf.
type ReceiptGenerator interface {
	GenerateReceipt(ctx context.Context, o *entity.Order) ([]byte, error)
}
