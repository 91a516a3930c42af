package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/almacen-api/internal/application/dto"
	"github.com/jhoicas/almacen-api/internal/application/stock"
	"github.com/jhoicas/almacen-api/internal/application/usecase"
	"github.com/jhoicas/almacen-api/internal/domain/entity"
)

// StockHandler maneja las consultas de stock y conciliación. Todas las
// rutas son de solo lectura.
type StockHandler struct {
	uc *stock.StockUseCase
}

// NewStockHandler construye el handler.
func NewStockHandler(uc *stock.StockUseCase) *StockHandler {
	return &StockHandler{uc: uc}
}

// Current godoc
// @Summary      Stock actual de un ítem (contador almacenado)
// @Tags         stock
// @Produce      json
// @Param        id  path  string  true  "ID del ítem"
// @Success      200  {object}  dto.StockResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/stock/{id} [get]
func (h *StockHandler) Current(c *fiber.Ctx) error {
	itemID := c.Params("id")
	quantity, err := h.uc.CurrentStock(c.Context(), itemID)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.StockResponse{ItemID: itemID, Quantity: quantity})
}

// Derived godoc
// @Summary      Stock derivado de reproducir el libro (auditoría)
// @Tags         stock
// @Produce      json
// @Param        id  path  string  true  "ID del ítem"
// @Success      200  {object}  dto.DerivedStockResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/stock/{id}/derived [get]
func (h *StockHandler) Derived(c *fiber.Ctx) error {
	itemID := c.Params("id")
	derived, err := h.uc.DerivedStock(c.Context(), itemID)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.DerivedStockResponse{ItemID: itemID, Derived: derived})
}

// Reconcile godoc
// @Summary      Comparar stock almacenado contra el derivado del libro
// @Description  Una discrepancia se reporta tal cual; nunca se corrige automáticamente.
// @Tags         stock
// @Produce      json
// @Param        id  path  string  true  "ID del ítem"
// @Success      200  {object}  dto.ReconcileResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/stock/{id}/reconcile [get]
func (h *StockHandler) Reconcile(c *fiber.Ctx) error {
	result, err := h.uc.Reconcile(c.Context(), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.ReconcileResponse{
		ItemID:     result.ItemID,
		Consistent: result.Consistent,
		Stored:     result.Stored,
		Derived:    result.Derived,
	})
}

// LowStock godoc
// @Summary      Ítems con stock bajo (0 < cantidad <= nivel de reorden)
// @Tags         stock
// @Produce      json
// @Success      200  {object}  dto.StockListResponse
// @Router       /api/stock/low [get]
func (h *StockHandler) LowStock(c *fiber.Ctx) error {
	items, err := h.uc.LowStockItems(c.Context())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(toStockList(items))
}

// OutOfStock godoc
// @Summary      Ítems agotados (cantidad == 0)
// @Tags         stock
// @Produce      json
// @Success      200  {object}  dto.StockListResponse
// @Router       /api/stock/out [get]
func (h *StockHandler) OutOfStock(c *fiber.Ctx) error {
	items, err := h.uc.OutOfStockItems(c.Context())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(toStockList(items))
}

func toStockList(items []*entity.Item) dto.StockListResponse {
	out := make([]dto.ItemResponse, 0, len(items))
	for _, item := range items {
		out = append(out, *usecase.ToItemResponse(item))
	}
	return dto.StockListResponse{Total: len(out), Items: out}
}
