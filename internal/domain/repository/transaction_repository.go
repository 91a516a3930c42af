package repository

import (
	"context"

	"github.com/jhoicas/almacen-api/internal/domain/entity"
)

// TransactionStats agregados del libro de movimientos para el dashboard.
type TransactionStats struct {
	TotalTransactions int64
	StockIn           int64 // Σ quantity de movimientos IN
	StockOut          int64 // Σ quantity de movimientos OUT
	TodayCount        int64
}

// TransactionRepository define el puerto de persistencia para el libro de
// movimientos. El libro es append-only: no existen operaciones de edición
// ni de borrado individual.
type TransactionRepository interface {
	Create(ctx context.Context, tx *entity.Transaction) error
	GetByID(ctx context.Context, id string) (*entity.Transaction, error)
	List(ctx context.Context, limit, offset int) ([]*entity.Transaction, error)
	ListByItem(ctx context.Context, itemID string, limit, offset int) ([]*entity.Transaction, error)
	// ListAllByItem devuelve el libro completo de un ítem, para la
	// reproducción del stock derivado.
	ListAllByItem(ctx context.Context, itemID string) ([]*entity.Transaction, error)
	CountByItem(ctx context.Context, itemID string) (int64, error)
	Stats(ctx context.Context) (*TransactionStats, error)
}
