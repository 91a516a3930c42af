package stock

import (
	"context"

	"github.com/jhoicas/almacen-api/internal/domain/entity"
	"github.com/jhoicas/almacen-api/internal/domain/repository"
	"github.com/jhoicas/almacen-api/pkg/logger"
)

// ReconcileResult compara el stock almacenado con el derivado del libro.
type ReconcileResult struct {
	ItemID     string
	Consistent bool
	Stored     int64
	Derived    int64
}

// StockUseCase responde consultas de stock: el contador almacenado (camino
// rápido), el valor derivado de reproducir el libro (auditoría) y la
// comparación entre ambos. También expone las vistas agregadas por estado.
// Todas las operaciones son de solo lectura.
type StockUseCase struct {
	itemRepo repository.ItemRepository
	txRepo   repository.TransactionRepository
	log      *logger.Logger
}

// NewStockUseCase construye el caso de uso.
func NewStockUseCase(itemRepo repository.ItemRepository, txRepo repository.TransactionRepository, log *logger.Logger) *StockUseCase {
	return &StockUseCase{itemRepo: itemRepo, txRepo: txRepo, log: log}
}

// CurrentStock devuelve la cantidad almacenada del ítem. No toma bloqueos:
// observa, no muta.
func (uc *StockUseCase) CurrentStock(ctx context.Context, itemID string) (int64, error) {
	item, err := uc.itemRepo.GetByID(ctx, itemID)
	if err != nil {
		return 0, err
	}
	return item.Quantity, nil
}

// DerivedStock reproduce el libro completo del ítem desde su línea base y
// devuelve el stock calculado. La suma con signo es conmutativa, así que el
// orden de reproducción no afecta el resultado. Es el camino de auditoría,
// no el camino caliente.
func (uc *StockUseCase) DerivedStock(ctx context.Context, itemID string) (int64, error) {
	item, err := uc.itemRepo.GetByID(ctx, itemID)
	if err != nil {
		return 0, err
	}
	txs, err := uc.txRepo.ListAllByItem(ctx, itemID)
	if err != nil {
		return 0, err
	}
	derived := item.InitialQuantity
	for _, tx := range txs {
		derived += tx.SignedQuantity()
	}
	return derived, nil
}

// Reconcile compara el contador almacenado con el valor derivado. Una
// discrepancia indica un bug (por ejemplo una edición directa de cantidad
// que saltó el motor de movimientos); se reporta y se deja registro, nunca
// se corrige en silencio.
func (uc *StockUseCase) Reconcile(ctx context.Context, itemID string) (*ReconcileResult, error) {
	item, err := uc.itemRepo.GetByID(ctx, itemID)
	if err != nil {
		return nil, err
	}
	derived, err := uc.DerivedStock(ctx, itemID)
	if err != nil {
		return nil, err
	}

	result := &ReconcileResult{
		ItemID:     itemID,
		Consistent: item.Quantity == derived,
		Stored:     item.Quantity,
		Derived:    derived,
	}
	if !result.Consistent {
		uc.log.Warn().
			Str("item_id", itemID).
			Int64("stored", item.Quantity).
			Int64("derived", derived).
			Msg("stock inconsistente con el libro de movimientos")
	}
	return result, nil
}

// LowStockItems devuelve los ítems con 0 < quantity <= reorder_level.
func (uc *StockUseCase) LowStockItems(ctx context.Context) ([]*entity.Item, error) {
	return uc.itemRepo.ListLowStock(ctx)
}

// OutOfStockItems devuelve los ítems con quantity == 0.
func (uc *StockUseCase) OutOfStockItems(ctx context.Context) ([]*entity.Item, error) {
	return uc.itemRepo.ListOutOfStock(ctx)
}
