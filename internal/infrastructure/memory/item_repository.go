package memory

import (
	"context"
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/almacen-api/internal/domain"
	"github.com/jhoicas/almacen-api/internal/domain/entity"
	"github.com/jhoicas/almacen-api/internal/domain/repository"
)

var _ repository.ItemRepository = (*ItemRepo)(nil)

// ItemRepo implementación en memoria de ItemRepository.
type ItemRepo struct {
	store *Store
}

// NewItemRepository construye el adaptador sobre el store.
func NewItemRepository(store *Store) *ItemRepo {
	return &ItemRepo{store: store}
}

// Create persiste un nuevo ítem; nombre e ID deben ser únicos.
func (r *ItemRepo) Create(_ context.Context, item *entity.Item) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	if _, ok := r.store.items[item.ID]; ok {
		return domain.ErrDuplicate
	}
	for _, existing := range r.store.items {
		if existing.Name == item.Name {
			return domain.ErrDuplicate
		}
	}
	r.store.items[item.ID] = *item
	return nil
}

// GetByID obtiene un ítem por ID.
func (r *ItemRepo) GetByID(_ context.Context, id string) (*entity.Item, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	item, ok := r.store.items[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &item, nil
}

// GetByName obtiene un ítem por nombre.
func (r *ItemRepo) GetByName(_ context.Context, name string) (*entity.Item, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	for _, item := range r.store.items {
		if item.Name == name {
			found := item
			return &found, nil
		}
	}
	return nil, domain.ErrNotFound
}

// GetForUpdate obtiene el ítem para modificarlo. La exclusión mutua la da
// el lock transaccional del TxRunner, que serializa los Run entre sí.
func (r *ItemRepo) GetForUpdate(ctx context.Context, id string) (*entity.Item, error) {
	return r.GetByID(ctx, id)
}

// Update actualiza los metadatos del ítem sin tocar quantity ni
// initial_quantity, igual que el adaptador PostgreSQL.
func (r *ItemRepo) Update(_ context.Context, item *entity.Item) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	current, ok := r.store.items[item.ID]
	if !ok {
		return domain.ErrNotFound
	}
	for _, existing := range r.store.items {
		if existing.Name == item.Name && existing.ID != item.ID {
			return domain.ErrDuplicate
		}
	}
	current.Name = item.Name
	current.Category = item.Category
	current.ReorderLevel = item.ReorderLevel
	current.UnitPrice = item.UnitPrice
	current.Supplier = item.Supplier
	current.UpdatedAt = item.UpdatedAt
	r.store.items[item.ID] = current
	return nil
}

// UpdateQuantity escribe la nueva cantidad de stock.
func (r *ItemRepo) UpdateQuantity(_ context.Context, id string, quantity int64) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	item, ok := r.store.items[id]
	if !ok {
		return domain.ErrNotFound
	}
	item.Quantity = quantity
	item.UpdatedAt = time.Now()
	r.store.items[id] = item
	return nil
}

// Delete elimina un ítem.
func (r *ItemRepo) Delete(_ context.Context, id string) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	if _, ok := r.store.items[id]; !ok {
		return domain.ErrNotFound
	}
	delete(r.store.items, id)
	return nil
}

// List devuelve ítems paginados ordenados por nombre.
func (r *ItemRepo) List(_ context.Context, limit, offset int) ([]*entity.Item, error) {
	items := r.sortedItems(func(entity.Item) bool { return true })
	if offset >= len(items) {
		return nil, nil
	}
	items = items[offset:]
	if limit < len(items) {
		items = items[:limit]
	}
	return items, nil
}

// Count devuelve el total de ítems.
func (r *ItemRepo) Count(_ context.Context) (int64, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	return int64(len(r.store.items)), nil
}

// ListLowStock devuelve ítems con 0 < quantity <= reorder_level.
func (r *ItemRepo) ListLowStock(_ context.Context) ([]*entity.Item, error) {
	return r.sortedItems(func(i entity.Item) bool {
		return i.Quantity > 0 && i.Quantity <= i.ReorderLevel
	}), nil
}

// ListOutOfStock devuelve ítems con quantity == 0.
func (r *ItemRepo) ListOutOfStock(_ context.Context) ([]*entity.Item, error) {
	return r.sortedItems(func(i entity.Item) bool { return i.Quantity == 0 }), nil
}

// CategorySummary agrega conteos y cantidades por categoría.
func (r *ItemRepo) CategorySummary(_ context.Context) ([]repository.CategoryStat, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	byCategory := make(map[string]*repository.CategoryStat)
	for _, item := range r.store.items {
		name := item.Category
		if name == "" {
			name = "sin categoría"
		}
		stat, ok := byCategory[name]
		if !ok {
			stat = &repository.CategoryStat{Category: name}
			byCategory[name] = stat
		}
		stat.TotalItems++
		stat.TotalQuantity += item.Quantity
		switch entity.StockStatus(item.Quantity, item.ReorderLevel) {
		case entity.StatusLowStock:
			stat.LowStock++
		case entity.StatusOutOfStock:
			stat.OutOfStock++
		}
	}

	stats := make([]repository.CategoryStat, 0, len(byCategory))
	for _, stat := range byCategory {
		stats = append(stats, *stat)
	}
	sort.Slice(stats, func(i, j int) bool { return stats[i].Category < stats[j].Category })
	return stats, nil
}

// Totals agrega los totales globales del inventario.
func (r *ItemRepo) Totals(_ context.Context) (*repository.InventoryTotals, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	totals := &repository.InventoryTotals{TotalValue: decimal.Zero}
	for _, item := range r.store.items {
		totals.TotalItems++
		totals.TotalQuantity += item.Quantity
		totals.TotalValue = totals.TotalValue.Add(
			item.UnitPrice.Mul(decimal.NewFromInt(item.Quantity)),
		)
	}
	return totals, nil
}

func (r *ItemRepo) sortedItems(keep func(entity.Item) bool) []*entity.Item {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	var items []*entity.Item
	for _, item := range r.store.items {
		if keep(item) {
			found := item
			items = append(items, &found)
		}
	}
	sort.Slice(items, func(i, j int) bool { return items[i].Name < items[j].Name })
	return items
}
