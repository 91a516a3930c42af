package usecase

import (
	"context"
	"sort"

	"github.com/jhoicas/almacen-api/internal/application/dto"
	"github.com/jhoicas/almacen-api/internal/domain/entity"
	"github.com/jhoicas/almacen-api/internal/domain/repository"
)

// ReportPDFGenerator puerto de salida para renderizar el reporte de
// inventario como PDF. El adaptador concreto (Maroto) vive en infraestructura.
type ReportPDFGenerator interface {
	GenerateInventoryReportPDF(ctx context.Context, report *dto.InventoryReportResponse) ([]byte, error)
}

// Tope de filas del reporte; el reporte es una foto, no un export completo.
const reportItemLimit = 500

// ReportUseCase genera el reporte de inventario: filas por ítem con estado,
// estadísticas por categoría y totales. Solo lectura.
type ReportUseCase struct {
	itemRepo repository.ItemRepository
	pdfGen   ReportPDFGenerator
}

// NewReportUseCase construye el caso de uso. pdfGen puede ser nil si no se
// expone el export PDF.
func NewReportUseCase(itemRepo repository.ItemRepository, pdfGen ReportPDFGenerator) *ReportUseCase {
	return &ReportUseCase{itemRepo: itemRepo, pdfGen: pdfGen}
}

// InventoryReport arma el reporte completo. El estado por fila sale de la
// misma clasificación que usan listados y dashboard.
func (uc *ReportUseCase) InventoryReport(ctx context.Context) (*dto.InventoryReportResponse, error) {
	items, err := uc.itemRepo.List(ctx, reportItemLimit, 0)
	if err != nil {
		return nil, err
	}

	rows := make([]dto.ReportItemRow, 0, len(items))
	byCategory := make(map[string]*dto.CategoryReportRow)
	var lowStock, outOfStock int64
	for _, item := range items {
		status := item.Status()
		rows = append(rows, dto.ReportItemRow{
			ID:           item.ID,
			Name:         item.Name,
			Category:     item.Category,
			Quantity:     item.Quantity,
			ReorderLevel: item.ReorderLevel,
			Status:       status,
		})

		name := item.Category
		if name == "" {
			name = "sin categoría"
		}
		cat, ok := byCategory[name]
		if !ok {
			cat = &dto.CategoryReportRow{Name: name}
			byCategory[name] = cat
		}
		cat.TotalItems++
		switch status {
		case entity.StatusLowStock:
			cat.LowStock++
			lowStock++
		case entity.StatusOutOfStock:
			cat.OutOfStock++
			outOfStock++
		}
	}

	categories := make([]dto.CategoryReportRow, 0, len(byCategory))
	for _, cat := range byCategory {
		categories = append(categories, *cat)
	}
	sort.Slice(categories, func(i, j int) bool { return categories[i].Name < categories[j].Name })

	return &dto.InventoryReportResponse{
		Summary: dto.ReportSummary{
			TotalItems:      int64(len(rows)),
			LowStockItems:   lowStock,
			OutOfStockItems: outOfStock,
			TotalCategories: int64(len(categories)),
		},
		Items:      rows,
		Categories: categories,
	}, nil
}

// InventoryReportPDF genera el reporte y lo renderiza como PDF.
func (uc *ReportUseCase) InventoryReportPDF(ctx context.Context) ([]byte, error) {
	report, err := uc.InventoryReport(ctx)
	if err != nil {
		return nil, err
	}
	return uc.pdfGen.GenerateInventoryReportPDF(ctx, report)
}
