package dto

import "github.com/shopspring/decimal"

// CategorySummaryDTO resumen de una categoría para el dashboard.
type CategorySummaryDTO struct {
	Category      string `json:"category"`
	ItemCount     int64  `json:"item_count"`
	TotalQuantity int64  `json:"total_quantity"`
}

// DashboardResponse agregados del inventario para el dashboard.
type DashboardResponse struct {
	TotalItems        int64                `json:"total_items"`
	TotalQuantity     int64                `json:"total_quantity"`
	TotalValue        decimal.Decimal      `json:"total_value"`
	LowStockItems     int64                `json:"low_stock_items"`
	OutOfStockItems   int64                `json:"out_of_stock_items"`
	TotalTransactions int64                `json:"total_transactions"`
	CategorySummary   []CategorySummaryDTO `json:"category_summary"`
}

// TransactionStatsResponse estadísticas del libro de movimientos.
type TransactionStatsResponse struct {
	TotalTransactions int64 `json:"total_transactions"`
	StockIn           int64 `json:"stock_in"`
	StockOut          int64 `json:"stock_out"`
	TodayTransactions int64 `json:"today_transactions"`
}
