package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/almacen-api/internal/application/dto"
	"github.com/jhoicas/almacen-api/internal/domain"
	"github.com/jhoicas/almacen-api/internal/domain/entity"
	"github.com/jhoicas/almacen-api/internal/domain/repository"
)

// Nivel de reorden por defecto al crear ítems sin indicarlo.
const defaultReorderLevel = 5

// ItemUseCase casos de uso CRUD para ítems. Quantity se maneja vía
// movimientos del libro: Update no la toca y Delete se rechaza cuando el
// ítem tiene historial.
type ItemUseCase struct {
	repo   repository.ItemRepository
	txRepo repository.TransactionRepository
}

// NewItemUseCase construye el caso de uso.
func NewItemUseCase(repo repository.ItemRepository, txRepo repository.TransactionRepository) *ItemUseCase {
	return &ItemUseCase{repo: repo, txRepo: txRepo}
}

// Create crea un nuevo ítem. La cantidad inicial queda como línea base para
// la derivación de stock desde el libro.
func (uc *ItemUseCase) Create(ctx context.Context, in dto.CreateItemRequest) (*dto.ItemResponse, error) {
	if in.Name == "" || in.Quantity < 0 || in.UnitPrice.IsNegative() {
		return nil, domain.ErrInvalidInput
	}
	if in.ReorderLevel != nil && *in.ReorderLevel < 0 {
		return nil, domain.ErrInvalidInput
	}
	existing, _ := uc.repo.GetByName(ctx, in.Name)
	if existing != nil {
		return nil, domain.ErrDuplicate
	}

	reorderLevel := int64(defaultReorderLevel)
	if in.ReorderLevel != nil {
		reorderLevel = *in.ReorderLevel
	}
	now := time.Now()
	item := &entity.Item{
		ID:              uuid.New().String(),
		Name:            in.Name,
		Category:        in.Category,
		Quantity:        in.Quantity,
		InitialQuantity: in.Quantity,
		ReorderLevel:    reorderLevel,
		UnitPrice:       in.UnitPrice,
		Supplier:        in.Supplier,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	if err := uc.repo.Create(ctx, item); err != nil {
		return nil, err
	}
	return ToItemResponse(item), nil
}

// GetByID obtiene un ítem por ID.
func (uc *ItemUseCase) GetByID(ctx context.Context, id string) (*dto.ItemResponse, error) {
	item, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return ToItemResponse(item), nil
}

// List devuelve ítems paginados con su estado de stock derivado.
func (uc *ItemUseCase) List(ctx context.Context, page dto.PageRequest) (*dto.ItemListResponse, error) {
	page.DefaultPage()
	items, err := uc.repo.List(ctx, page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	out := make([]dto.ItemResponse, 0, len(items))
	for _, item := range items {
		out = append(out, *ToItemResponse(item))
	}
	return &dto.ItemListResponse{
		Items: out,
		Page:  dto.PageResponse{Limit: page.Limit, Offset: page.Offset},
	}, nil
}

// Update actualiza los metadatos de un ítem. No permite modificar Quantity:
// una edición directa de cantidad saltaría el motor de movimientos y
// rompería la consistencia con el libro; debe registrarse un movimiento de
// ajuste en su lugar.
func (uc *ItemUseCase) Update(ctx context.Context, id string, in dto.UpdateItemRequest) (*dto.ItemResponse, error) {
	item, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if in.Name != nil {
		if *in.Name == "" {
			return nil, domain.ErrInvalidInput
		}
		other, _ := uc.repo.GetByName(ctx, *in.Name)
		if other != nil && other.ID != item.ID {
			return nil, domain.ErrDuplicate
		}
		item.Name = *in.Name
	}
	if in.Category != nil {
		item.Category = *in.Category
	}
	if in.ReorderLevel != nil {
		if *in.ReorderLevel < 0 {
			return nil, domain.ErrInvalidInput
		}
		item.ReorderLevel = *in.ReorderLevel
	}
	if in.UnitPrice != nil {
		if in.UnitPrice.IsNegative() {
			return nil, domain.ErrInvalidInput
		}
		item.UnitPrice = *in.UnitPrice
	}
	if in.Supplier != nil {
		item.Supplier = *in.Supplier
	}
	item.UpdatedAt = time.Now()
	if err := uc.repo.Update(ctx, item); err != nil {
		return nil, err
	}
	return ToItemResponse(item), nil
}

// Delete elimina un ítem sin historial. Si el ítem tiene movimientos en el
// libro se rechaza con ErrConflict: borrarlo dejaría movimientos huérfanos
// y borrar el libro destruiría la auditoría.
func (uc *ItemUseCase) Delete(ctx context.Context, id string) error {
	if _, err := uc.repo.GetByID(ctx, id); err != nil {
		return err
	}
	count, err := uc.txRepo.CountByItem(ctx, id)
	if err != nil {
		return err
	}
	if count > 0 {
		return domain.ErrConflict
	}
	return uc.repo.Delete(ctx, id)
}

// ToItemResponse mapea la entidad al contrato de respuesta.
func ToItemResponse(item *entity.Item) *dto.ItemResponse {
	return &dto.ItemResponse{
		ID:           item.ID,
		Name:         item.Name,
		Category:     item.Category,
		Quantity:     item.Quantity,
		ReorderLevel: item.ReorderLevel,
		UnitPrice:    item.UnitPrice,
		Supplier:     item.Supplier,
		Status:       item.Status(),
		CreatedAt:    item.CreatedAt,
		UpdatedAt:    item.UpdatedAt,
	}
}
