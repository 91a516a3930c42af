package memory

import (
	"context"
	"sort"
	"time"

	"github.com/jhoicas/almacen-api/internal/domain"
	"github.com/jhoicas/almacen-api/internal/domain/entity"
	"github.com/jhoicas/almacen-api/internal/domain/repository"
)

var _ repository.TransactionRepository = (*TransactionRepo)(nil)

// TransactionRepo implementación en memoria de TransactionRepository.
// Append-only, como el adaptador PostgreSQL.
type TransactionRepo struct {
	store *Store
}

// NewTransactionRepository construye el adaptador sobre el store.
func NewTransactionRepository(store *Store) *TransactionRepo {
	return &TransactionRepo{store: store}
}

// Create inserta un movimiento en el libro.
func (r *TransactionRepo) Create(_ context.Context, tx *entity.Transaction) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	if _, ok := r.store.txs[tx.ID]; ok {
		return domain.ErrDuplicate
	}
	r.store.txs[tx.ID] = *tx
	return nil
}

// GetByID obtiene un movimiento por ID.
func (r *TransactionRepo) GetByID(_ context.Context, id string) (*entity.Transaction, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	tx, ok := r.store.txs[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &tx, nil
}

// List devuelve movimientos paginados, más recientes primero.
func (r *TransactionRepo) List(_ context.Context, limit, offset int) ([]*entity.Transaction, error) {
	txs := r.sortedTxs(func(entity.Transaction) bool { return true })
	if offset >= len(txs) {
		return nil, nil
	}
	txs = txs[offset:]
	if limit < len(txs) {
		txs = txs[:limit]
	}
	return txs, nil
}

// ListByItem devuelve los movimientos de un ítem, paginados.
func (r *TransactionRepo) ListByItem(_ context.Context, itemID string, limit, offset int) ([]*entity.Transaction, error) {
	txs := r.sortedTxs(func(t entity.Transaction) bool { return t.ItemID == itemID })
	if offset >= len(txs) {
		return nil, nil
	}
	txs = txs[offset:]
	if limit < len(txs) {
		txs = txs[:limit]
	}
	return txs, nil
}

// ListAllByItem devuelve el libro completo de un ítem.
func (r *TransactionRepo) ListAllByItem(_ context.Context, itemID string) ([]*entity.Transaction, error) {
	return r.sortedTxs(func(t entity.Transaction) bool { return t.ItemID == itemID }), nil
}

// CountByItem devuelve cuántos movimientos tiene un ítem.
func (r *TransactionRepo) CountByItem(_ context.Context, itemID string) (int64, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	var count int64
	for _, tx := range r.store.txs {
		if tx.ItemID == itemID {
			count++
		}
	}
	return count, nil
}

// Stats agrega las estadísticas del libro.
func (r *TransactionRepo) Stats(_ context.Context) (*repository.TransactionStats, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	startOfToday := time.Now().Truncate(24 * time.Hour)
	stats := &repository.TransactionStats{}
	for _, tx := range r.store.txs {
		stats.TotalTransactions++
		switch tx.Type {
		case entity.TransactionTypeIN:
			stats.StockIn += tx.Quantity
		case entity.TransactionTypeOUT:
			stats.StockOut += tx.Quantity
		}
		if !tx.Date.Before(startOfToday) {
			stats.TodayCount++
		}
	}
	return stats, nil
}

func (r *TransactionRepo) sortedTxs(keep func(entity.Transaction) bool) []*entity.Transaction {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	var txs []*entity.Transaction
	for _, tx := range r.store.txs {
		if keep(tx) {
			found := tx
			txs = append(txs, &found)
		}
	}
	sort.Slice(txs, func(i, j int) bool {
		if !txs[i].Date.Equal(txs[j].Date) {
			return txs[i].Date.After(txs[j].Date)
		}
		return txs[i].CreatedAt.After(txs[j].CreatedAt)
	})
	return txs
}
