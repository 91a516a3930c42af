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

var _ repository.ItemRepository = (*ItemRepo)(nil)

const itemColumns = `id, name, category, quantity, initial_quantity, reorder_level, unit_price, supplier, created_at, updated_at`

// ItemRepo implementación de ItemRepository sobre PostgreSQL (usable con pool o tx).
type ItemRepo struct {
	q Querier
}

// NewItemRepository construye el adaptador de ítems. Pasar pool o tx (Querier).
func NewItemRepository(q Querier) *ItemRepo {
	return &ItemRepo{q: q}
}

func scanItem(row pgx.Row) (*entity.Item, error) {
	var i entity.Item
	err := row.Scan(
		&i.ID, &i.Name, &i.Category, &i.Quantity, &i.InitialQuantity,
		&i.ReorderLevel, &i.UnitPrice, &i.Supplier, &i.CreatedAt, &i.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &i, nil
}

// Create persiste un nuevo ítem con su cantidad como línea base.
func (r *ItemRepo) Create(ctx context.Context, item *entity.Item) error {
	query := `
		INSERT INTO items (id, name, category, quantity, initial_quantity, reorder_level, unit_price, supplier, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	_, err := r.q.Exec(ctx, query,
		item.ID, item.Name, item.Category, item.Quantity, item.InitialQuantity,
		item.ReorderLevel, item.UnitPrice, item.Supplier, item.CreatedAt, item.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert item: %w", err)
	}
	return nil
}

// GetByID obtiene un ítem por ID.
func (r *ItemRepo) GetByID(ctx context.Context, id string) (*entity.Item, error) {
	query := `SELECT ` + itemColumns + ` FROM items WHERE id = $1`
	item, err := scanItem(r.q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get item: %w", err)
	}
	return item, nil
}

// GetByName obtiene un ítem por nombre (único).
func (r *ItemRepo) GetByName(ctx context.Context, name string) (*entity.Item, error) {
	query := `SELECT ` + itemColumns + ` FROM items WHERE name = $1`
	item, err := scanItem(r.q.QueryRow(ctx, query, name))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get item by name: %w", err)
	}
	return item, nil
}

// GetForUpdate obtiene el ítem y bloquea la fila (SELECT FOR UPDATE).
// Serializa la sección crítica leer-calcular-escribir del motor de
// movimientos: dos appliers concurrentes sobre el mismo ítem esperan aquí.
func (r *ItemRepo) GetForUpdate(ctx context.Context, id string) (*entity.Item, error) {
	query := `SELECT ` + itemColumns + ` FROM items WHERE id = $1 FOR UPDATE`
	item, err := scanItem(r.q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get item for update: %w", err)
	}
	return item, nil
}

// Update actualiza los metadatos del ítem. No toca quantity ni
// initial_quantity: la cantidad solo la muta UpdateQuantity bajo bloqueo.
func (r *ItemRepo) Update(ctx context.Context, item *entity.Item) error {
	query := `
		UPDATE items
		SET name = $2, category = $3, reorder_level = $4, unit_price = $5, supplier = $6, updated_at = $7
		WHERE id = $1`
	tag, err := r.q.Exec(ctx, query,
		item.ID, item.Name, item.Category, item.ReorderLevel, item.UnitPrice, item.Supplier, item.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("update item: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// UpdateQuantity escribe la nueva cantidad de stock. Solo debe llamarse con
// la fila ya bloqueada por GetForUpdate, dentro de la misma transacción.
func (r *ItemRepo) UpdateQuantity(ctx context.Context, id string, quantity int64) error {
	query := `UPDATE items SET quantity = $2, updated_at = now() WHERE id = $1`
	tag, err := r.q.Exec(ctx, query, id, quantity)
	if err != nil {
		return fmt.Errorf("update item quantity: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Delete elimina un ítem. La política de historial la valida el caso de uso.
func (r *ItemRepo) Delete(ctx context.Context, id string) error {
	tag, err := r.q.Exec(ctx, `DELETE FROM items WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete item: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// List devuelve ítems paginados ordenados por nombre.
func (r *ItemRepo) List(ctx context.Context, limit, offset int) ([]*entity.Item, error) {
	query := `SELECT ` + itemColumns + ` FROM items ORDER BY name ASC LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list items: %w", err)
	}
	defer rows.Close()
	return collectItems(rows)
}

// Count devuelve el total de ítems.
func (r *ItemRepo) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := r.q.QueryRow(ctx, `SELECT COUNT(*) FROM items`).Scan(&count); err != nil {
		return 0, fmt.Errorf("count items: %w", err)
	}
	return count, nil
}

// ListLowStock devuelve ítems con 0 < quantity <= reorder_level, mayor
// déficit primero.
func (r *ItemRepo) ListLowStock(ctx context.Context) ([]*entity.Item, error) {
	query := `
		SELECT ` + itemColumns + ` FROM items
		WHERE quantity > 0 AND quantity <= reorder_level
		ORDER BY reorder_level - quantity DESC, name ASC`
	rows, err := r.q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list low stock: %w", err)
	}
	defer rows.Close()
	return collectItems(rows)
}

// ListOutOfStock devuelve ítems con quantity == 0.
func (r *ItemRepo) ListOutOfStock(ctx context.Context) ([]*entity.Item, error) {
	query := `SELECT ` + itemColumns + ` FROM items WHERE quantity = 0 ORDER BY name ASC`
	rows, err := r.q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list out of stock: %w", err)
	}
	defer rows.Close()
	return collectItems(rows)
}

// CategorySummary agrega conteos y cantidades por categoría.
func (r *ItemRepo) CategorySummary(ctx context.Context) ([]repository.CategoryStat, error) {
	query := `
		SELECT COALESCE(NULLIF(category, ''), 'sin categoría') AS category,
		       COUNT(*),
		       COALESCE(SUM(quantity), 0),
		       COUNT(*) FILTER (WHERE quantity > 0 AND quantity <= reorder_level),
		       COUNT(*) FILTER (WHERE quantity = 0)
		FROM items
		GROUP BY 1
		ORDER BY 1`
	rows, err := r.q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("category summary: %w", err)
	}
	defer rows.Close()

	var stats []repository.CategoryStat
	for rows.Next() {
		var s repository.CategoryStat
		if err := rows.Scan(&s.Category, &s.TotalItems, &s.TotalQuantity, &s.LowStock, &s.OutOfStock); err != nil {
			return nil, fmt.Errorf("scan category summary: %w", err)
		}
		stats = append(stats, s)
	}
	return stats, rows.Err()
}

// Totals agrega los totales globales del inventario.
func (r *ItemRepo) Totals(ctx context.Context) (*repository.InventoryTotals, error) {
	query := `
		SELECT COUNT(*),
		       COALESCE(SUM(quantity), 0),
		       COALESCE(SUM(quantity * unit_price), 0)
		FROM items`
	var t repository.InventoryTotals
	if err := r.q.QueryRow(ctx, query).Scan(&t.TotalItems, &t.TotalQuantity, &t.TotalValue); err != nil {
		return nil, fmt.Errorf("inventory totals: %w", err)
	}
	return &t, nil
}

func collectItems(rows pgx.Rows) ([]*entity.Item, error) {
	var items []*entity.Item
	for rows.Next() {
		item, err := scanItem(rows)
		if err != nil {
			return nil, fmt.Errorf("scan item: %w", err)
		}
		items = append(items, item)
	}
	return items, rows.Err()
}
