// Package pdf implementa la generación del reporte de inventario en PDF.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Reporte de Inventario + fecha de generación        │
//	│  ─────────────────────────────────────────────────────────  │
//	│  RESUMEN: total ingredientes / valor total / costo promedio │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: Ingrediente | Unidad | Stock | Costo | Valor        │
//	│  ─────────────────────────────────────────────────────────  │
//	│  STOCK BAJO: Ingrediente | Stock | Mínimo | Criticidad %    │
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

	"github.com/jhoicas/Despensa-api/internal/application/report"
)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
	colorAlert   = &props.Color{Red: 170, Green: 30, Blue: 30}
)

// MarotoReportGenerator implementa report.PDFGenerator usando Maroto v2.
type MarotoReportGenerator struct{}

// NewMarotoReportGenerator construye el generador.
func NewMarotoReportGenerator() *MarotoReportGenerator { return &MarotoReportGenerator{} }

var _ report.PDFGenerator = (*MarotoReportGenerator)(nil)

// GenerateInventoryPDF genera el PDF y devuelve sus bytes.
func (g *MarotoReportGenerator) GenerateInventoryPDF(_ context.Context, data report.InventoryReportData) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Reporte de Inventario", true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(data))
	m.AddRows(line.NewRow(2, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(summaryRows(data)...)
	m.AddRows(line.NewRow(2, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(valuationRows(data)...)
	if len(data.LowStock) > 0 {
		m.AddRows(line.NewRow(2, props.Line{Color: colorAlert, Thickness: 0.5}))
		m.AddRows(lowStockRows(data)...)
	}

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("generar PDF de inventario: %w", err)
	}
	return doc.GetBytes(), nil
}

func headerRow(data report.InventoryReportData) core.Row {
	return row.New(12).Add(
		col.New(8).Add(
			text.New("Reporte de Inventario", props.Text{
				Size: 14, Style: fontstyle.Bold, Color: colorPrimary,
			}),
		),
		col.New(4).Add(
			text.New("Generado: "+data.GeneratedAt.Format("2006-01-02 15:04"), props.Text{
				Size: 8, Align: align.Right, Color: colorGray,
			}),
		),
	)
}

func summaryRows(data report.InventoryReportData) []core.Row {
	s := data.Summary
	return []core.Row{
		row.New(8).Add(
			summaryCol("Ingredientes", fmt.Sprintf("%d", s.TotalIngredients)),
			summaryCol("En stock bajo", fmt.Sprintf("%d", s.LowStockCount)),
			summaryCol("Valor total", s.TotalStockValue.StringFixed(2)),
			summaryCol("Costo promedio", s.AverageCost.StringFixed(2)),
		),
	}
}

func summaryCol(label, value string) core.Col {
	return col.New(3).Add(
		text.New(label, props.Text{Size: 7, Color: colorGray}),
		text.New(value, props.Text{Size: 10, Top: 3, Style: fontstyle.Bold}),
	)
}

func valuationRows(data report.InventoryReportData) []core.Row {
	rows := []core.Row{
		row.New(8).Add(
			headerCell("Ingrediente", 4),
			headerCell("Unidad", 2),
			headerCell("Stock", 2),
			headerCell("Costo", 2),
			headerCell("Valor", 2),
		),
	}
	for _, ing := range data.Ingredients.Ingredients {
		value := ing.StockQuantity.Mul(ing.UnitCost)
		rows = append(rows, row.New(6).Add(
			bodyCell(ing.Name, 4, align.Left),
			bodyCell(ing.Unit, 2, align.Left),
			bodyCell(ing.StockQuantity.StringFixed(2), 2, align.Right),
			bodyCell(ing.UnitCost.StringFixed(2), 2, align.Right),
			bodyCell(value.StringFixed(2), 2, align.Right),
		))
	}
	rows = append(rows, row.New(8).Add(
		col.New(8).Add(text.New("TOTAL", props.Text{Size: 9, Style: fontstyle.Bold, Align: align.Right})),
		col.New(4).Add(text.New(data.Summary.TotalStockValue.StringFixed(2), props.Text{
			Size: 9, Style: fontstyle.Bold, Align: align.Right, Color: colorPrimary,
		})),
	))
	return rows
}

func lowStockRows(data report.InventoryReportData) []core.Row {
	rows := []core.Row{
		row.New(10).Add(
			col.New(12).Add(text.New("Stock bajo", props.Text{
				Size: 11, Style: fontstyle.Bold, Color: colorAlert, Top: 2,
			})),
		),
		row.New(8).Add(
			headerCell("Ingrediente", 5),
			headerCell("Stock", 2),
			headerCell("Mínimo", 2),
			headerCell("Criticidad %", 3),
		),
	}
	for _, item := range data.LowStock {
		rows = append(rows, row.New(6).Add(
			bodyCell(item.Name, 5, align.Left),
			bodyCell(item.StockQuantity.StringFixed(2), 2, align.Right),
			bodyCell(item.MinimumStock.StringFixed(2), 2, align.Right),
			bodyCell(item.CriticalityRatio.StringFixed(1), 3, align.Right),
		))
	}
	return rows
}

func headerCell(label string, size int) core.Col {
	return col.New(size).Add(text.New(label, props.Text{
		Size: 8, Style: fontstyle.Bold, Color: colorPrimary,
	}))
}

func bodyCell(value string, size int, al align.Type) core.Col {
	return col.New(size).Add(text.New(value, props.Text{Size: 8, Align: al}))
}
