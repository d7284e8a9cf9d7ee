// Package pdf genera el recibo PDF de un pedido: cabecera con comprador y
// fechas, tabla de líneas, total y el diario de producción.
package pdf

import (
	"context"
	"fmt"
	"strconv"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"github.com/jhoicas/garments-tracker-api/internal/application/order"
	"github.com/jhoicas/garments-tracker-api/internal/domain/entity"
)

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

var _ order.ReceiptGenerator = (*MarotoReceiptGenerator)(nil)

// MarotoReceiptGenerator implementa order.ReceiptGenerator usando Maroto v2.
type MarotoReceiptGenerator struct{}

// NewMarotoReceiptGenerator construye el generador.
func NewMarotoReceiptGenerator() *MarotoReceiptGenerator { return &MarotoReceiptGenerator{} }

// GenerateReceipt genera el PDF y devuelve sus bytes.
func (g *MarotoReceiptGenerator) GenerateReceipt(_ context.Context, o *entity.Order) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Recibo de pedido", true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(o))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(buyerRow(o))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))

	m.AddRows(itemsHeaderRow())
	for _, r := range itemRows(o.Items) {
		m.AddRows(r)
	}

	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(totalRow(o))

	if len(o.ProductionUpdates) > 0 {
		m.AddRows(line.NewRow(3))
		m.AddRows(journalTitleRow())
		for _, r := range journalRows(o.ProductionUpdates) {
			m.AddRows(r)
		}
	}

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar recibo: %w", err)
	}
	return doc.GetBytes(), nil
}

// headerRow: título (izq) y n° de pedido + fecha (der).
func headerRow(o *entity.Order) core.Row {
	fecha := o.CreatedAt.Format("02/01/2006")
	return row.New(16).Add(
		col.New(7).Add(
			text.New("Garments Tracker", props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New("Recibo de pedido", props.Text{Size: 9, Top: 9, Color: colorGray}),
		),
		col.New(5).Add(
			text.New("Pedido: "+o.ID, props.Text{Size: 8, Align: align.Right, Top: 2}),
			text.New("Fecha: "+fecha, props.Text{Size: 8, Align: align.Right, Top: 7}),
		),
	)
}

// buyerRow: comprador y estados del pedido.
func buyerRow(o *entity.Order) core.Row {
	return row.New(12).Add(
		col.New(6).Add(
			text.New("Comprador: "+o.BuyerEmail, props.Text{Size: 9, Top: 2}),
		),
		col.New(6).Add(
			text.New("Estado: "+o.Status, props.Text{Size: 9, Top: 1, Align: align.Right}),
			text.New("Pago: "+o.PaymentStatus, props.Text{Size: 9, Top: 6, Align: align.Right}),
		),
	)
}

func itemsHeaderRow() core.Row {
	bold := props.Text{Style: fontstyle.Bold, Size: 9}
	right := props.Text{Style: fontstyle.Bold, Size: 9, Align: align.Right}
	return row.New(8).Add(
		col.New(1).Add(text.New("Cant", bold)),
		col.New(5).Add(text.New("Descripción", bold)),
		col.New(2).Add(text.New("Talla/Color", bold)),
		col.New(4).Add(text.New("Precio", right)),
	)
}

func itemRows(items []entity.OrderItem) []core.Row {
	rows := make([]core.Row, 0, len(items))
	for _, it := range items {
		variant := it.Size
		if it.Color != "" {
			if variant != "" {
				variant += " / "
			}
			variant += it.Color
		}
		rows = append(rows, row.New(6).Add(
			col.New(1).Add(text.New(strconv.Itoa(it.Quantity), props.Text{Size: 8})),
			col.New(5).Add(text.New(it.Name, props.Text{Size: 8})),
			col.New(2).Add(text.New(variant, props.Text{Size: 8})),
			col.New(4).Add(text.New(it.Price.StringFixed(2), props.Text{Size: 8, Align: align.Right})),
		))
	}
	return rows
}

func totalRow(o *entity.Order) core.Row {
	return row.New(10).Add(
		col.New(8).Add(text.New("TOTAL", props.Text{Style: fontstyle.Bold, Size: 11, Top: 2})),
		col.New(4).Add(text.New(o.OrderPrice.StringFixed(2), props.Text{
			Style: fontstyle.Bold, Size: 11, Align: align.Right, Top: 2, Color: colorPrimary,
		})),
	)
}

func journalTitleRow() core.Row {
	return row.New(8).Add(
		col.New(12).Add(text.New("Diario de producción", props.Text{
			Style: fontstyle.Bold, Size: 10, Color: colorPrimary,
		})),
	)
}

func journalRows(updates []entity.ProductionUpdate) []core.Row {
	rows := make([]core.Row, 0, len(updates))
	for _, u := range updates {
		detail := u.Stage
		if u.Note != "" {
			detail += " - " + u.Note
		}
		rows = append(rows, row.New(6).Add(
			col.New(3).Add(text.New(u.CreatedAt.Format("02/01/2006 15:04"), props.Text{Size: 8, Color: colorGray})),
			col.New(7).Add(text.New(detail, props.Text{Size: 8})),
			col.New(2).Add(text.New(u.UpdatedBy, props.Text{Size: 8, Align: align.Right, Color: colorGray})),
		))
	}
	return rows
}
