package ledger

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/almacen-api/internal/domain"
	"github.com/jhoicas/almacen-api/internal/domain/entity"
	"github.com/jhoicas/almacen-api/internal/domain/repository"
)

// ApplyTransactionUseCase aplica movimientos IN/OUT sobre un ítem de forma
// transaccional, con bloqueo de fila (SELECT FOR UPDATE) y Commit/Rollback.
// Es el único punto del sistema que muta cantidades de stock.
type ApplyTransactionUseCase struct {
	txRunner TxRunner
	itemRepo repository.ItemRepository
}

// NewApplyTransactionUseCase construye el caso de uso.
func NewApplyTransactionUseCase(txRunner TxRunner, itemRepo repository.ItemRepository) *ApplyTransactionUseCase {
	return &ApplyTransactionUseCase{txRunner: txRunner, itemRepo: itemRepo}
}

// TransactionInput entrada para aplicar un movimiento.
// Date es opcional; cero significa "ahora".
type TransactionInput struct {
	ItemID   string
	Type     string
	Quantity int64
	Notes    string
	Date     time.Time
}

// Apply valida el movimiento, abre una transacción, bloquea la fila del ítem,
// verifica no-negatividad para OUT y persiste la nueva cantidad junto con el
// registro del movimiento. Devuelve el movimiento creado, con el nombre del
// ítem capturado al momento de aplicar.
//
// Dos llamadas concurrentes sobre el mismo ítem se serializan en el bloqueo
// de fila; sobre ítems distintos no se bloquean entre sí.
func (uc *ApplyTransactionUseCase) Apply(ctx context.Context, input TransactionInput) (*entity.Transaction, error) {
	if input.ItemID == "" {
		return nil, domain.ErrInvalidInput
	}
	if !entity.ValidTransactionType(input.Type) {
		return nil, domain.ErrInvalidInput
	}
	if input.Quantity <= 0 {
		return nil, domain.ErrInvalidInput
	}

	// Chequeo rápido de existencia fuera de la transacción; la verificación
	// autoritativa vuelve a ocurrir bajo el bloqueo de fila.
	if _, err := uc.itemRepo.GetByID(ctx, input.ItemID); err != nil {
		return nil, err
	}

	now := time.Now()
	date := input.Date
	if date.IsZero() {
		date = now
	}

	var created *entity.Transaction
	err := uc.txRunner.Run(ctx, func(
		itemRepo repository.ItemRepository,
		txRepo repository.TransactionRepository,
	) error {
		// Bloquea la fila del ítem: sección crítica por ítem.
		item, err := itemRepo.GetForUpdate(ctx, input.ItemID)
		if err != nil {
			return err
		}

		newQuantity := item.Quantity
		switch input.Type {
		case entity.TransactionTypeIN:
			newQuantity += input.Quantity
		case entity.TransactionTypeOUT:
			newQuantity -= input.Quantity
		}
		if newQuantity < 0 {
			return &domain.InsufficientStockError{
				ItemID:    item.ID,
				Available: item.Quantity,
				Requested: input.Quantity,
			}
		}

		if err := itemRepo.UpdateQuantity(ctx, item.ID, newQuantity); err != nil {
			return err
		}

		created = &entity.Transaction{
			ID:        uuid.New().String(),
			ItemID:    item.ID,
			ItemName:  item.Name,
			Type:      input.Type,
			Quantity:  input.Quantity,
			Notes:     input.Notes,
			Date:      date,
			CreatedAt: now,
		}
		return txRepo.Create(ctx, created)
	})
	if err != nil {
		return nil, err
	}
	return created, nil
}
