package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateItemRequest entrada para crear un ítem. Quantity es la línea base
// del ítem; después de crear, el stock solo cambia vía movimientos.
type CreateItemRequest struct {
	Name         string          `json:"name" validate:"required,min=1,max=200"`
	Category     string          `json:"category"`
	Quantity     int64           `json:"quantity" validate:"min=0"`
	ReorderLevel *int64          `json:"reorder_level" validate:"omitempty,min=0"`
	UnitPrice    decimal.Decimal `json:"unit_price"`
	Supplier     string          `json:"supplier"`
}

// UpdateItemRequest entrada para actualizar un ítem. No incluye Quantity:
// las cantidades solo se mueven con movimientos del libro.
type UpdateItemRequest struct {
	Name         *string          `json:"name" validate:"omitempty,min=1,max=200"`
	Category     *string          `json:"category"`
	ReorderLevel *int64           `json:"reorder_level" validate:"omitempty,min=0"`
	UnitPrice    *decimal.Decimal `json:"unit_price"`
	Supplier     *string          `json:"supplier"`
}

// ItemResponse salida de un ítem, con el estado de stock derivado.
type ItemResponse struct {
	ID           string          `json:"id"`
	Name         string          `json:"name"`
	Category     string          `json:"category,omitempty"`
	Quantity     int64           `json:"quantity"`
	ReorderLevel int64           `json:"reorder_level"`
	UnitPrice    decimal.Decimal `json:"unit_price"`
	Supplier     string          `json:"supplier,omitempty"`
	Status       string          `json:"status"`
	CreatedAt    time.Time       `json:"created_at"`
	UpdatedAt    time.Time       `json:"updated_at"`
}

// ItemListResponse lista paginada de ítems.
type ItemListResponse struct {
	Items []ItemResponse `json:"items"`
	Page  PageResponse   `json:"page"`
}
