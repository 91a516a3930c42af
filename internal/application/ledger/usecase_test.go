package ledger_test

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/almacen-api/internal/application/ledger"
	"github.com/jhoicas/almacen-api/internal/domain"
	"github.com/jhoicas/almacen-api/internal/domain/entity"
	"github.com/jhoicas/almacen-api/internal/infrastructure/memory"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

type fixture struct {
	store    *memory.Store
	itemRepo *memory.ItemRepo
	txRepo   *memory.TransactionRepo
	uc       *ledger.ApplyTransactionUseCase
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	store := memory.NewStore()
	return &fixture{
		store:    store,
		itemRepo: memory.NewItemRepository(store),
		txRepo:   memory.NewTransactionRepository(store),
		uc:       ledger.NewApplyTransactionUseCase(memory.NewTxRunner(store), memory.NewItemRepository(store)),
	}
}

// seedItem crea un ítem con la cantidad y nivel de reorden indicados.
func (f *fixture) seedItem(t *testing.T, id string, quantity, reorderLevel int64) *entity.Item {
	t.Helper()
	item := &entity.Item{
		ID:              id,
		Name:            "ítem-" + id,
		Quantity:        quantity,
		InitialQuantity: quantity,
		ReorderLevel:    reorderLevel,
	}
	require.NoError(t, f.itemRepo.Create(context.Background(), item))
	return item
}

func (f *fixture) currentQuantity(t *testing.T, id string) int64 {
	t.Helper()
	item, err := f.itemRepo.GetByID(context.Background(), id)
	require.NoError(t, err)
	return item.Quantity
}

// ──────────────────────────────────────────────────────────────────────────────
// Validaciones
// ──────────────────────────────────────────────────────────────────────────────

func TestApply_TipoInvalido(t *testing.T) {
	f := newFixture(t)
	f.seedItem(t, "a", 10, 5)

	_, err := f.uc.Apply(context.Background(), ledger.TransactionInput{
		ItemID: "a", Type: "TRANSFER", Quantity: 1,
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.Equal(t, int64(10), f.currentQuantity(t, "a"), "una entrada inválida no debe mutar nada")
}

func TestApply_CantidadNegativa(t *testing.T) {
	f := newFixture(t)
	f.seedItem(t, "a", 10, 5)

	// Escenario: IN con cantidad -5 debe fallar sin mutación.
	_, err := f.uc.Apply(context.Background(), ledger.TransactionInput{
		ItemID: "a", Type: entity.TransactionTypeIN, Quantity: -5,
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = f.uc.Apply(context.Background(), ledger.TransactionInput{
		ItemID: "a", Type: entity.TransactionTypeIN, Quantity: 0,
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.Equal(t, int64(10), f.currentQuantity(t, "a"))
}

func TestApply_ItemInexistente(t *testing.T) {
	f := newFixture(t)

	_, err := f.uc.Apply(context.Background(), ledger.TransactionInput{
		ItemID: "no-existe", Type: entity.TransactionTypeIN, Quantity: 1,
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)

	// No debe quedar ningún movimiento registrado.
	txs, err := f.txRepo.List(context.Background(), 10, 0)
	require.NoError(t, err)
	assert.Empty(t, txs)
}

// ──────────────────────────────────────────────────────────────────────────────
// Escenarios de stock
// ──────────────────────────────────────────────────────────────────────────────

// Escenario: ítem con stock 10 y reorden 5. OUT 6 deja 4 (low_stock),
// OUT 4 deja 0 (out_of_stock) y OUT 1 falla con stock insuficiente.
func TestApply_EscenarioSalidasSucesivas(t *testing.T) {
	f := newFixture(t)
	item := f.seedItem(t, "a", 10, 5)
	assert.Equal(t, entity.StatusAvailable, item.Status())

	ctx := context.Background()

	tx, err := f.uc.Apply(ctx, ledger.TransactionInput{ItemID: "a", Type: entity.TransactionTypeOUT, Quantity: 6})
	require.NoError(t, err)
	assert.Equal(t, "ítem-a", tx.ItemName, "el movimiento captura el nombre del ítem")
	assert.Equal(t, int64(4), f.currentQuantity(t, "a"))
	assert.Equal(t, entity.StatusLowStock, entity.StockStatus(4, 5))

	_, err = f.uc.Apply(ctx, ledger.TransactionInput{ItemID: "a", Type: entity.TransactionTypeOUT, Quantity: 4})
	require.NoError(t, err)
	assert.Equal(t, int64(0), f.currentQuantity(t, "a"))
	assert.Equal(t, entity.StatusOutOfStock, entity.StockStatus(0, 5))

	_, err = f.uc.Apply(ctx, ledger.TransactionInput{ItemID: "a", Type: entity.TransactionTypeOUT, Quantity: 1})
	require.ErrorIs(t, err, domain.ErrInsufficientStock)

	var insufficientErr *domain.InsufficientStockError
	require.ErrorAs(t, err, &insufficientErr)
	assert.Equal(t, int64(0), insufficientErr.Available)
	assert.Equal(t, int64(1), insufficientErr.Requested)
	assert.Equal(t, int64(0), f.currentQuantity(t, "a"), "el rechazo no debe mutar el stock")
}

// Frontera: OUT por exactamente el stock disponible llega a 0; una unidad
// más falla y deja el stock intacto.
func TestApply_FronteraStockExacto(t *testing.T) {
	f := newFixture(t)
	f.seedItem(t, "a", 7, 5)
	ctx := context.Background()

	_, err := f.uc.Apply(ctx, ledger.TransactionInput{ItemID: "a", Type: entity.TransactionTypeOUT, Quantity: 8})
	require.ErrorIs(t, err, domain.ErrInsufficientStock)
	assert.Equal(t, int64(7), f.currentQuantity(t, "a"))

	_, err = f.uc.Apply(ctx, ledger.TransactionInput{ItemID: "a", Type: entity.TransactionTypeOUT, Quantity: 7})
	require.NoError(t, err)
	assert.Equal(t, int64(0), f.currentQuantity(t, "a"))
}

func TestApply_EntradaSumaStock(t *testing.T) {
	f := newFixture(t)
	f.seedItem(t, "a", 3, 5)

	tx, err := f.uc.Apply(context.Background(), ledger.TransactionInput{
		ItemID: "a", Type: entity.TransactionTypeIN, Quantity: 9, Notes: "reposición semanal",
	})
	require.NoError(t, err)
	assert.Equal(t, int64(12), f.currentQuantity(t, "a"))
	assert.Equal(t, "reposición semanal", tx.Notes)
	assert.NotEmpty(t, tx.ID)
	assert.False(t, tx.Date.IsZero())
}

// Invariante: tras una serie de movimientos, el stock almacenado es la línea
// base más la suma con signo del libro.
func TestApply_InvarianteSumaDelLibro(t *testing.T) {
	f := newFixture(t)
	f.seedItem(t, "a", 10, 5)
	ctx := context.Background()

	moves := []ledger.TransactionInput{
		{ItemID: "a", Type: entity.TransactionTypeIN, Quantity: 5},
		{ItemID: "a", Type: entity.TransactionTypeOUT, Quantity: 3},
		{ItemID: "a", Type: entity.TransactionTypeIN, Quantity: 2},
		{ItemID: "a", Type: entity.TransactionTypeOUT, Quantity: 8},
	}
	for _, move := range moves {
		_, err := f.uc.Apply(ctx, move)
		require.NoError(t, err)
	}

	txs, err := f.txRepo.ListAllByItem(ctx, "a")
	require.NoError(t, err)
	derived := int64(10)
	for _, tx := range txs {
		derived += tx.SignedQuantity()
	}
	assert.Equal(t, derived, f.currentQuantity(t, "a"))
	assert.GreaterOrEqual(t, f.currentQuantity(t, "a"), int64(0))
}

// ──────────────────────────────────────────────────────────────────────────────
// Atomicidad y concurrencia
// ──────────────────────────────────────────────────────────────────────────────

// Dos OUT de 6 concurrentes sobre stock 10: exactamente uno debe pasar y el
// stock final debe ser 4. Nunca pueden pasar ambos (stock -2).
func TestApply_SalidasConcurrentesSobreMismoItem(t *testing.T) {
	f := newFixture(t)
	f.seedItem(t, "a", 10, 5)

	var wg sync.WaitGroup
	errs := make([]error, 2)
	for i := 0; i < 2; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, errs[i] = f.uc.Apply(context.Background(), ledger.TransactionInput{
				ItemID: "a", Type: entity.TransactionTypeOUT, Quantity: 6,
			})
		}(i)
	}
	wg.Wait()

	var ok, insufficient int
	for _, err := range errs {
		switch {
		case err == nil:
			ok++
		case assert.ErrorIs(t, err, domain.ErrInsufficientStock):
			insufficient++
		}
	}
	assert.Equal(t, 1, ok, "exactamente una salida debe pasar")
	assert.Equal(t, 1, insufficient, "la otra debe rechazarse por stock insuficiente")
	assert.Equal(t, int64(4), f.currentQuantity(t, "a"))
}

// La cancelación del contexto antes del commit no debe dejar estado parcial.
func TestApply_ContextoCancelado(t *testing.T) {
	f := newFixture(t)
	f.seedItem(t, "a", 10, 5)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := f.uc.Apply(ctx, ledger.TransactionInput{
		ItemID: "a", Type: entity.TransactionTypeOUT, Quantity: 6,
	})
	require.Error(t, err)
	assert.Equal(t, int64(10), f.currentQuantity(t, "a"))

	txs, err := f.txRepo.ListAllByItem(context.Background(), "a")
	require.NoError(t, err)
	assert.Empty(t, txs, "no debe quedar movimiento sin su actualización de stock")
}
