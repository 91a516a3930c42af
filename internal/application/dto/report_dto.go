package dto

// ReportItemRow fila del reporte de inventario.
type ReportItemRow struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Category     string `json:"category,omitempty"`
	Quantity     int64  `json:"quantity"`
	ReorderLevel int64  `json:"reorder_level"`
	Status       string `json:"status"`
}

// CategoryReportRow estadísticas por categoría.
type CategoryReportRow struct {
	Name       string `json:"name"`
	TotalItems int64  `json:"total_items"`
	LowStock   int64  `json:"low_stock"`
	OutOfStock int64  `json:"out_of_stock"`
}

// ReportSummary totales del reporte.
type ReportSummary struct {
	TotalItems      int64 `json:"total_items"`
	LowStockItems   int64 `json:"low_stock_items"`
	OutOfStockItems int64 `json:"out_of_stock_items"`
	TotalCategories int64 `json:"total_categories"`
}

// InventoryReportResponse reporte de inventario completo.
type InventoryReportResponse struct {
	Summary    ReportSummary       `json:"summary"`
	Items      []ReportItemRow     `json:"items"`
	Categories []CategoryReportRow `json:"categories"`
}
