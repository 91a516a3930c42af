package usecase

import (
	"context"

	"github.com/jhoicas/almacen-api/internal/application/dto"
	"github.com/jhoicas/almacen-api/internal/domain/repository"
)

// DashboardUseCase agrega las vistas del dashboard a partir de los
// repositorios. Solo lectura: nunca muta estado.
type DashboardUseCase struct {
	itemRepo repository.ItemRepository
	txRepo   repository.TransactionRepository
}

// NewDashboardUseCase construye el caso de uso.
func NewDashboardUseCase(itemRepo repository.ItemRepository, txRepo repository.TransactionRepository) *DashboardUseCase {
	return &DashboardUseCase{itemRepo: itemRepo, txRepo: txRepo}
}

// Overview devuelve los agregados del inventario: totales, conteos por
// estado de stock y resumen por categoría.
func (uc *DashboardUseCase) Overview(ctx context.Context) (*dto.DashboardResponse, error) {
	totals, err := uc.itemRepo.Totals(ctx)
	if err != nil {
		return nil, err
	}
	categories, err := uc.itemRepo.CategorySummary(ctx)
	if err != nil {
		return nil, err
	}
	txStats, err := uc.txRepo.Stats(ctx)
	if err != nil {
		return nil, err
	}

	var lowStock, outOfStock int64
	summary := make([]dto.CategorySummaryDTO, 0, len(categories))
	for _, cat := range categories {
		lowStock += cat.LowStock
		outOfStock += cat.OutOfStock
		summary = append(summary, dto.CategorySummaryDTO{
			Category:      cat.Category,
			ItemCount:     cat.TotalItems,
			TotalQuantity: cat.TotalQuantity,
		})
	}

	return &dto.DashboardResponse{
		TotalItems:        totals.TotalItems,
		TotalQuantity:     totals.TotalQuantity,
		TotalValue:        totals.TotalValue,
		LowStockItems:     lowStock,
		OutOfStockItems:   outOfStock,
		TotalTransactions: txStats.TotalTransactions,
		CategorySummary:   summary,
	}, nil
}

// TransactionStats devuelve las estadísticas del libro de movimientos.
func (uc *DashboardUseCase) TransactionStats(ctx context.Context) (*dto.TransactionStatsResponse, error) {
	stats, err := uc.txRepo.Stats(ctx)
	if err != nil {
		return nil, err
	}
	return &dto.TransactionStatsResponse{
		TotalTransactions: stats.TotalTransactions,
		StockIn:           stats.StockIn,
		StockOut:          stats.StockOut,
		TodayTransactions: stats.TodayCount,
	}, nil
}
