package usecase_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/almacen-api/internal/application/dto"
	"github.com/jhoicas/almacen-api/internal/application/ledger"
	"github.com/jhoicas/almacen-api/internal/application/usecase"
	"github.com/jhoicas/almacen-api/internal/domain"
	"github.com/jhoicas/almacen-api/internal/domain/entity"
	"github.com/jhoicas/almacen-api/internal/infrastructure/memory"
)

func newItemFixture(t *testing.T) (*usecase.ItemUseCase, *ledger.ApplyTransactionUseCase) {
	t.Helper()
	store := memory.NewStore()
	itemRepo := memory.NewItemRepository(store)
	txRepo := memory.NewTransactionRepository(store)
	itemUC := usecase.NewItemUseCase(itemRepo, txRepo)
	applyUC := ledger.NewApplyTransactionUseCase(memory.NewTxRunner(store), itemRepo)
	return itemUC, applyUC
}

func TestItemCreate_Defaults(t *testing.T) {
	itemUC, _ := newItemFixture(t)

	item, err := itemUC.Create(context.Background(), dto.CreateItemRequest{
		Name:     "martillo",
		Quantity: 12,
	})
	require.NoError(t, err)
	assert.Equal(t, int64(5), item.ReorderLevel, "nivel de reorden por defecto")
	assert.Equal(t, int64(12), item.Quantity)
	assert.Equal(t, entity.StatusAvailable, item.Status)
	assert.NotEmpty(t, item.ID)
}

func TestItemCreate_Validaciones(t *testing.T) {
	itemUC, _ := newItemFixture(t)
	ctx := context.Background()

	_, err := itemUC.Create(ctx, dto.CreateItemRequest{Name: "", Quantity: 1})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = itemUC.Create(ctx, dto.CreateItemRequest{Name: "x", Quantity: -1})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	negPrice := decimal.NewFromInt(-3)
	_, err = itemUC.Create(ctx, dto.CreateItemRequest{Name: "x", Quantity: 1, UnitPrice: negPrice})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestItemCreate_NombreDuplicado(t *testing.T) {
	itemUC, _ := newItemFixture(t)
	ctx := context.Background()

	_, err := itemUC.Create(ctx, dto.CreateItemRequest{Name: "taladro", Quantity: 1})
	require.NoError(t, err)
	_, err = itemUC.Create(ctx, dto.CreateItemRequest{Name: "taladro", Quantity: 9})
	assert.ErrorIs(t, err, domain.ErrDuplicate)
}

// Update no acepta cantidad: solo metadatos. El stock queda intacto.
func TestItemUpdate_SoloMetadatos(t *testing.T) {
	itemUC, _ := newItemFixture(t)
	ctx := context.Background()

	created, err := itemUC.Create(ctx, dto.CreateItemRequest{Name: "sierra", Quantity: 8, Category: "herramientas"})
	require.NoError(t, err)

	newName := "sierra circular"
	newLevel := int64(10)
	updated, err := itemUC.Update(ctx, created.ID, dto.UpdateItemRequest{
		Name:         &newName,
		ReorderLevel: &newLevel,
	})
	require.NoError(t, err)
	assert.Equal(t, "sierra circular", updated.Name)
	assert.Equal(t, int64(10), updated.ReorderLevel)
	assert.Equal(t, int64(8), updated.Quantity, "la cantidad no cambia por Update")
	assert.Equal(t, entity.StatusLowStock, updated.Status, "el estado se recalcula con el nuevo reorden")
}

// Un ítem con movimientos en el libro no se puede eliminar.
func TestItemDelete_RechazaConHistorial(t *testing.T) {
	itemUC, applyUC := newItemFixture(t)
	ctx := context.Background()

	created, err := itemUC.Create(ctx, dto.CreateItemRequest{Name: "lija", Quantity: 5})
	require.NoError(t, err)

	_, err = applyUC.Apply(ctx, ledger.TransactionInput{
		ItemID: created.ID, Type: entity.TransactionTypeOUT, Quantity: 2,
	})
	require.NoError(t, err)

	err = itemUC.Delete(ctx, created.ID)
	assert.ErrorIs(t, err, domain.ErrConflict)

	// Sin historial sí se elimina.
	other, err := itemUC.Create(ctx, dto.CreateItemRequest{Name: "brocha", Quantity: 5})
	require.NoError(t, err)
	require.NoError(t, itemUC.Delete(ctx, other.ID))
	_, err = itemUC.GetByID(ctx, other.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
