package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados de stock derivados de (quantity, reorder_level).
const (
	StatusAvailable  = "available"
	StatusLowStock   = "low_stock"
	StatusOutOfStock = "out_of_stock"
)

// StockStatus clasifica el estado de stock de un ítem. Es la única función
// de clasificación del sistema: listados, reportes y dashboard deben usarla
// para que el estado sea idéntico en todas las vistas.
func StockStatus(quantity, reorderLevel int64) string {
	switch {
	case quantity == 0:
		return StatusOutOfStock
	case quantity <= reorderLevel:
		return StatusLowStock
	default:
		return StatusAvailable
	}
}

// Item representa un producto en inventario. Quantity es el stock actual
// autoritativo y solo lo muta el motor de movimientos; InitialQuantity es la
// línea base al crear el ítem, desde la cual se deriva el stock al reproducir
// el libro de movimientos.
type Item struct {
	ID              string
	Name            string // único por inventario, no vacío
	Category        string
	Quantity        int64
	InitialQuantity int64
	ReorderLevel    int64 // por defecto 5
	UnitPrice       decimal.Decimal
	Supplier        string
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// Status devuelve la clasificación de stock del ítem.
func (i *Item) Status() string {
	return StockStatus(i.Quantity, i.ReorderLevel)
}
