// Package pdf implementa la generación del reporte de inventario en PDF.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Reporte de Inventario + fecha de generación         │
//	│  ─────────────────────────────────────────────────────────  │
//	│  RESUMEN: total ítems / bajo stock / agotados / categorías   │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: Ítem | Categoría | Cant | Reorden | Estado           │
//	│  ─────────────────────────────────────────────────────────  │
//	│  CATEGORÍAS: totales y alertas por categoría                 │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"
	"time"

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

	"github.com/jhoicas/almacen-api/internal/application/dto"
	"github.com/jhoicas/almacen-api/internal/application/usecase"
	"github.com/jhoicas/almacen-api/internal/domain/entity"
)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
	colorWhite   = &props.Color{Red: 255, Green: 255, Blue: 255}
	colorAlert   = &props.Color{Red: 180, Green: 40, Blue: 40}
)

// ── Generator ─────────────────────────────────────────────────────────────────

var _ usecase.ReportPDFGenerator = (*MarotoReportGenerator)(nil)

// MarotoReportGenerator implementa usecase.ReportPDFGenerator usando Maroto v2.
type MarotoReportGenerator struct{}

// NewMarotoReportGenerator construye el generador.
func NewMarotoReportGenerator() *MarotoReportGenerator { return &MarotoReportGenerator{} }

// GenerateInventoryReportPDF genera el PDF del reporte y devuelve sus bytes.
func (g *MarotoReportGenerator) GenerateInventoryReportPDF(
	_ context.Context,
	report *dto.InventoryReportResponse,
) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Reporte de Inventario", true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow())
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(summaryRow(report.Summary))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))

	m.AddRows(tableHeaderRow())
	for _, item := range report.Items {
		m.AddRows(itemRow(item))
	}

	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(categoryHeaderRow())
	for _, cat := range report.Categories {
		m.AddRows(categoryRow(cat))
	}

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("generar PDF del reporte: %w", err)
	}
	return doc.GetBytes(), nil
}

func headerRow() core.Row {
	return row.New(12).Add(
		col.New(8).Add(
			text.New("Reporte de Inventario", props.Text{
				Size: 14, Style: fontstyle.Bold, Color: colorPrimary,
			}),
		),
		col.New(4).Add(
			text.New(time.Now().Format("2006-01-02 15:04"), props.Text{
				Size: 9, Align: align.Right, Color: colorGray,
			}),
		),
	)
}

func summaryRow(s dto.ReportSummary) core.Row {
	cell := func(label string, value int64) core.Col {
		return col.New(3).Add(
			text.New(label, props.Text{Size: 8, Color: colorGray, Top: 1}),
			text.New(fmt.Sprintf("%d", value), props.Text{Size: 11, Style: fontstyle.Bold, Top: 5}),
		)
	}
	return row.New(12).Add(
		cell("Ítems", s.TotalItems),
		cell("Bajo stock", s.LowStockItems),
		cell("Agotados", s.OutOfStockItems),
		cell("Categorías", s.TotalCategories),
	)
}

func tableHeaderRow() core.Row {
	header := func(size int, label string, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Size: 8, Style: fontstyle.Bold, Color: colorWhite, Align: a, Top: 1.5,
		}))
	}
	return row.New(7).Add(
		header(4, "Ítem", align.Left),
		header(3, "Categoría", align.Left),
		header(2, "Cantidad", align.Right),
		header(1, "Reorden", align.Right),
		header(2, "Estado", align.Center),
	).WithStyle(&props.Cell{BackgroundColor: colorPrimary})
}

func itemRow(item dto.ReportItemRow) core.Row {
	statusColor := colorGray
	if item.Status != entity.StatusAvailable {
		statusColor = colorAlert
	}
	return row.New(6).Add(
		col.New(4).Add(text.New(item.Name, props.Text{Size: 8})),
		col.New(3).Add(text.New(item.Category, props.Text{Size: 8, Color: colorGray})),
		col.New(2).Add(text.New(fmt.Sprintf("%d", item.Quantity), props.Text{Size: 8, Align: align.Right})),
		col.New(1).Add(text.New(fmt.Sprintf("%d", item.ReorderLevel), props.Text{Size: 8, Align: align.Right})),
		col.New(2).Add(text.New(item.Status, props.Text{Size: 8, Align: align.Center, Color: statusColor})),
	)
}

func categoryHeaderRow() core.Row {
	return row.New(8).Add(
		col.New(12).Add(text.New("Resumen por categoría", props.Text{
			Size: 10, Style: fontstyle.Bold, Color: colorPrimary, Top: 2,
		})),
	)
}

func categoryRow(cat dto.CategoryReportRow) core.Row {
	return row.New(6).Add(
		col.New(5).Add(text.New(cat.Name, props.Text{Size: 8})),
		col.New(3).Add(text.New(fmt.Sprintf("%d ítems", cat.TotalItems), props.Text{Size: 8, Align: align.Right})),
		col.New(2).Add(text.New(fmt.Sprintf("%d bajo stock", cat.LowStock), props.Text{Size: 8, Align: align.Right, Color: colorGray})),
		col.New(2).Add(text.New(fmt.Sprintf("%d agotados", cat.OutOfStock), props.Text{Size: 8, Align: align.Right, Color: colorGray})),
	)
}
