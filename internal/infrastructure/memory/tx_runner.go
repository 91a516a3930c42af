package memory

import (
	"context"

	"github.com/jhoicas/almacen-api/internal/application/ledger"
	"github.com/jhoicas/almacen-api/internal/domain/repository"
)

var _ ledger.TxRunner = (*TxRunner)(nil)

// TxRunner ejecuta callbacks con semántica transaccional sobre el Store:
// las transacciones se serializan entre sí y un error repone el snapshot
// previo, así que nunca queda estado parcial.
type TxRunner struct {
	store *Store
}

// NewTxRunner construye el runner sobre el store.
func NewTxRunner(store *Store) *TxRunner {
	return &TxRunner{store: store}
}

// Run toma el lock transaccional, fotografía el estado, ejecuta fn y ante
// cualquier error (o cancelación del contexto) repone la fotografía.
func (r *TxRunner) Run(ctx context.Context, fn func(
	itemRepo repository.ItemRepository,
	txRepo repository.TransactionRepository,
) error) error {
	r.store.txMu.Lock()
	defer r.store.txMu.Unlock()

	items, txs := r.store.snapshot()

	if err := ctx.Err(); err != nil {
		return err
	}
	if err := fn(NewItemRepository(r.store), NewTransactionRepository(r.store)); err != nil {
		r.store.restore(items, txs)
		return err
	}
	if err := ctx.Err(); err != nil {
		r.store.restore(items, txs)
		return err
	}
	return nil
}
