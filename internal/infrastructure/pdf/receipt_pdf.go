// Package pdf genera el comprobante de donación de un lote de recepción.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Banco de Alimentos  │  Lote + Fecha                │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: Producto | Cantidad (base) | Unidad declarada       │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TOTAL RECIBIDO + Propósito                                 │
//	│  FOOTER: Leyenda de agradecimiento                          │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"

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
	"github.com/shopspring/decimal"

	appinventory "github.com/tu-usuario/banco-alimentos-api/internal/application/inventory"
	"github.com/tu-usuario/banco-alimentos-api/internal/domain/entity"
)

var _ appinventory.ReceiptPDFGenerator = (*ReceiptPDFGenerator)(nil)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 27, Green: 94, Blue: 32}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

// ── Generator ─────────────────────────────────────────────────────────────────

// ReceiptPDFGenerator implementa inventory.ReceiptPDFGenerator usando Maroto v2.
type ReceiptPDFGenerator struct {
	orgName string
}

// NewReceiptPDFGenerator construye el generador con el nombre de la organización.
func NewReceiptPDFGenerator(orgName string) *ReceiptPDFGenerator {
	return &ReceiptPDFGenerator{orgName: orgName}
}

// GenerateBatchPDF genera el comprobante del lote y devuelve sus bytes.
// Las líneas deben venir en orden de inserción (ListByBatch las devuelve así).
func (g *ReceiptPDFGenerator) GenerateBatchPDF(
	_ context.Context,
	batch string,
	lines []*entity.InventoryReceipt,
) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Comprobante de Donación", true).
		WithAuthor(g.orgName, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(g.orgName, batch, lines))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))

	m.AddRows(tableHeaderRow())
	for _, r := range tableLineRows(lines) {
		m.AddRows(r)
	}

	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(totalRow(lines))
	m.AddRows(footerRow())

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

// headerRow: nombre de la organización (izq) y lote + fecha (der).
func headerRow(orgName, batch string, lines []*entity.InventoryReceipt) core.Row {
	fecha := "—"
	if len(lines) > 0 {
		fecha = lines[0].CreatedAt.Format("02/01/2006")
	}
	return row.New(18).Add(
		col.New(7).Add(
			text.New(orgName, props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New("Comprobante de recepción de donaciones", props.Text{
				Size: 9, Top: 9, Color: colorGray,
			}),
		),
		col.New(5).Add(
			text.New("LOTE", props.Text{
				Style: fontstyle.Bold, Size: 8, Align: align.Right,
				Color: colorPrimary, Top: 1,
			}),
			text.New(batch, props.Text{
				Style: fontstyle.Bold, Size: 12, Align: align.Right, Top: 7,
			}),
			text.New("Fecha: "+fecha, props.Text{
				Size: 8, Align: align.Right, Top: 14, Color: colorGray,
			}),
		),
	)
}

// tableHeaderRow: cabecera de la tabla de líneas.
func tableHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a,
			Color: colorPrimary, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).Add(
		h("Producto", 6, align.Left),
		h("Cantidad (base)", 3, align.Right),
		h("Unidad declarada", 3, align.Right),
	)
}

// tableLineRows: una fila por línea de recepción.
func tableLineRows(lines []*entity.InventoryReceipt) []core.Row {
	result := make([]core.Row, 0, len(lines))
	for _, l := range lines {
		name := l.ProductName
		if name == "" {
			name = l.ProductID
		}
		result = append(result, row.New(7).Add(
			col.New(6).Add(text.New(
				name,
				props.Text{Size: 8, Align: align.Left, Top: 1, Left: 1},
			)),
			col.New(3).Add(text.New(
				l.Quantity.String(),
				props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1},
			)),
			col.New(3).Add(text.New(
				string(l.Unit),
				props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1},
			)),
		))
	}
	return result
}

// totalRow: total en unidades base y propósito del lote.
func totalRow(lines []*entity.InventoryReceipt) core.Row {
	total := decimal.Zero
	purpose := ""
	for _, l := range lines {
		total = total.Add(l.Quantity)
		purpose = l.Purpose
	}
	return row.New(14).Add(
		col.New(7).Add(
			text.New("Propósito: "+purpose, props.Text{
				Size: 8, Top: 3, Color: colorGray,
			}),
		),
		col.New(5).Add(
			text.New("TOTAL RECIBIDO: "+total.String(), props.Text{
				Style: fontstyle.Bold, Size: 10, Align: align.Right,
				Color: colorPrimary, Top: 3,
			}),
		),
	)
}

// footerRow: leyenda de agradecimiento.
func footerRow() core.Row {
	return row.New(10).Add(col.New(12).Add(
		text.New(
			"Gracias por su donación. Este comprobante certifica la recepción "+
				"de los productos listados en el inventario del banco de alimentos.",
			props.Text{Size: 6.5, Color: colorGray, Top: 3},
		),
	))
}
