package repository

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/almacen-api/internal/domain/entity"
)

// CategoryStat resultado crudo de agregación por categoría.
type CategoryStat struct {
	Category      string
	TotalItems    int64
	TotalQuantity int64
	LowStock      int64
	OutOfStock    int64
}

// InventoryTotals agregados globales del inventario para el dashboard.
type InventoryTotals struct {
	TotalItems    int64
	TotalQuantity int64
	TotalValue    decimal.Decimal // Σ quantity × unit_price
}

// ItemRepository define el puerto de persistencia para Item (DIP).
// UpdateQuantity es de uso exclusivo del motor de movimientos, dentro de una
// transacción que tomó la fila con GetForUpdate; Update nunca toca quantity.
type ItemRepository interface {
	Create(ctx context.Context, item *entity.Item) error
	GetByID(ctx context.Context, id string) (*entity.Item, error)
	GetByName(ctx context.Context, name string) (*entity.Item, error)
	// GetForUpdate bloquea la fila del ítem (SELECT FOR UPDATE) para
	// serializar la sección crítica leer-calcular-escribir por ítem.
	GetForUpdate(ctx context.Context, id string) (*entity.Item, error)
	Update(ctx context.Context, item *entity.Item) error
	UpdateQuantity(ctx context.Context, id string, quantity int64) error
	Delete(ctx context.Context, id string) error
	List(ctx context.Context, limit, offset int) ([]*entity.Item, error)
	Count(ctx context.Context) (int64, error)

	// ListLowStock devuelve ítems con 0 < quantity <= reorder_level.
	ListLowStock(ctx context.Context) ([]*entity.Item, error)
	// ListOutOfStock devuelve ítems con quantity == 0.
	ListOutOfStock(ctx context.Context) ([]*entity.Item, error)

	CategorySummary(ctx context.Context) ([]CategoryStat, error)
	Totals(ctx context.Context) (*InventoryTotals, error)
}
