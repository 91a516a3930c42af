package dto

// StockResponse stock almacenado de un ítem (camino rápido).
type StockResponse struct {
	ItemID   string `json:"item_id"`
	Quantity int64  `json:"quantity"`
}

// DerivedStockResponse stock derivado de reproducir el libro (auditoría).
type DerivedStockResponse struct {
	ItemID  string `json:"item_id"`
	Derived int64  `json:"derived"`
}

// ReconcileResponse comparación entre stock almacenado y derivado.
type ReconcileResponse struct {
	ItemID     string `json:"item_id"`
	Consistent bool   `json:"consistent"`
	Stored     int64  `json:"stored"`
	Derived    int64  `json:"derived"`
}

// StockListResponse listado de ítems filtrados por estado de stock.
type StockListResponse struct {
	Total int            `json:"total"`
	Items []ItemResponse `json:"items"`
}
