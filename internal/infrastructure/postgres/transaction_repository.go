package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/almacen-api/internal/domain"
	"github.com/jhoicas/almacen-api/internal/domain/entity"
	"github.com/jhoicas/almacen-api/internal/domain/repository"
)

var _ repository.TransactionRepository = (*TransactionRepo)(nil)

const transactionColumns = `id, item_id, item_name, type, quantity, notes, date, created_at`

// TransactionRepo implementación de TransactionRepository sobre PostgreSQL
// (usable con pool o tx). El libro es append-only: solo INSERT y SELECT.
type TransactionRepo struct {
	q Querier
}

// NewTransactionRepository construye el adaptador de movimientos. Pasar pool o tx (Querier).
func NewTransactionRepository(q Querier) *TransactionRepo {
	return &TransactionRepo{q: q}
}

func scanTransaction(row pgx.Row) (*entity.Transaction, error) {
	var t entity.Transaction
	err := row.Scan(&t.ID, &t.ItemID, &t.ItemName, &t.Type, &t.Quantity, &t.Notes, &t.Date, &t.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

// Create inserta un movimiento en el libro.
func (r *TransactionRepo) Create(ctx context.Context, tx *entity.Transaction) error {
	query := `
		INSERT INTO transactions (id, item_id, item_name, type, quantity, notes, date, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.q.Exec(ctx, query,
		tx.ID, tx.ItemID, tx.ItemName, tx.Type, tx.Quantity, tx.Notes, tx.Date, tx.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert transaction: %w", err)
	}
	return nil
}

// GetByID obtiene un movimiento por ID.
func (r *TransactionRepo) GetByID(ctx context.Context, id string) (*entity.Transaction, error) {
	query := `SELECT ` + transactionColumns + ` FROM transactions WHERE id = $1`
	tx, err := scanTransaction(r.q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get transaction: %w", err)
	}
	return tx, nil
}

// List devuelve movimientos paginados, más recientes primero.
func (r *TransactionRepo) List(ctx context.Context, limit, offset int) ([]*entity.Transaction, error) {
	query := `SELECT ` + transactionColumns + ` FROM transactions ORDER BY date DESC, created_at DESC LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list transactions: %w", err)
	}
	defer rows.Close()
	return collectTransactions(rows)
}

// ListByItem devuelve los movimientos de un ítem, paginados.
func (r *TransactionRepo) ListByItem(ctx context.Context, itemID string, limit, offset int) ([]*entity.Transaction, error) {
	query := `
		SELECT ` + transactionColumns + ` FROM transactions
		WHERE item_id = $1
		ORDER BY date DESC, created_at DESC
		LIMIT $2 OFFSET $3`
	rows, err := r.q.Query(ctx, query, itemID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list transactions by item: %w", err)
	}
	defer rows.Close()
	return collectTransactions(rows)
}

// ListAllByItem devuelve el libro completo de un ítem para la reproducción
// del stock derivado. El orden no afecta la suma.
func (r *TransactionRepo) ListAllByItem(ctx context.Context, itemID string) ([]*entity.Transaction, error) {
	query := `SELECT ` + transactionColumns + ` FROM transactions WHERE item_id = $1`
	rows, err := r.q.Query(ctx, query, itemID)
	if err != nil {
		return nil, fmt.Errorf("list all transactions by item: %w", err)
	}
	defer rows.Close()
	return collectTransactions(rows)
}

// CountByItem devuelve cuántos movimientos tiene un ítem.
func (r *TransactionRepo) CountByItem(ctx context.Context, itemID string) (int64, error) {
	var count int64
	err := r.q.QueryRow(ctx, `SELECT COUNT(*) FROM transactions WHERE item_id = $1`, itemID).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("count transactions by item: %w", err)
	}
	return count, nil
}

// Stats agrega las estadísticas del libro para el dashboard.
func (r *TransactionRepo) Stats(ctx context.Context) (*repository.TransactionStats, error) {
	query := `
		SELECT COUNT(*),
		       COALESCE(SUM(quantity) FILTER (WHERE type = 'IN'), 0),
		       COALESCE(SUM(quantity) FILTER (WHERE type = 'OUT'), 0),
		       COUNT(*) FILTER (WHERE date >= date_trunc('day', now()))
		FROM transactions`
	var s repository.TransactionStats
	if err := r.q.QueryRow(ctx, query).Scan(&s.TotalTransactions, &s.StockIn, &s.StockOut, &s.TodayCount); err != nil {
		return nil, fmt.Errorf("transaction stats: %w", err)
	}
	return &s, nil
}

func collectTransactions(rows pgx.Rows) ([]*entity.Transaction, error) {
	var txs []*entity.Transaction
	for rows.Next() {
		tx, err := scanTransaction(rows)
		if err != nil {
			return nil, fmt.Errorf("scan transaction: %w", err)
		}
		txs = append(txs, tx)
	}
	return txs, rows.Err()
}
