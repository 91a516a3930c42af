package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/almacen-api/internal/application/dto"
	"github.com/jhoicas/almacen-api/internal/application/ledger"
	"github.com/jhoicas/almacen-api/internal/domain/entity"
	"github.com/jhoicas/almacen-api/internal/domain/repository"
)

// TransactionHandler maneja las peticiones HTTP de movimientos del libro.
type TransactionHandler struct {
	applyUC *ledger.ApplyTransactionUseCase
	txRepo  repository.TransactionRepository
}

// NewTransactionHandler construye el handler.
func NewTransactionHandler(applyUC *ledger.ApplyTransactionUseCase, txRepo repository.TransactionRepository) *TransactionHandler {
	return &TransactionHandler{applyUC: applyUC, txRepo: txRepo}
}

// Create godoc
// @Summary      Registrar un movimiento IN/OUT
// @Tags         transactions
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateTransactionRequest  true  "item_id, type (IN|OUT), quantity, notes"
// @Success      201   {object}  dto.TransactionResponse
// @Failure      400   {object}  dto.StockErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/transactions [post]
func (h *TransactionHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateTransactionRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	tx, err := h.applyUC.Apply(c.Context(), ledger.TransactionInput{
		ItemID:   in.ItemID,
		Type:     in.Type,
		Quantity: in.Quantity,
		Notes:    in.Notes,
	})
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(toTransactionResponse(tx))
}

// List godoc
// @Summary      Listar movimientos
// @Tags         transactions
// @Produce      json
// @Param        limit   query  int  false  "Tamaño de página"
// @Param        offset  query  int  false  "Desplazamiento"
// @Success      200  {object}  dto.TransactionListResponse
// @Router       /api/transactions [get]
func (h *TransactionHandler) List(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "paginación inválida"})
	}
	page.DefaultPage()
	txs, err := h.txRepo.List(c.Context(), page.Limit, page.Offset)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(toTransactionList(txs, page))
}

// ListByItem godoc
// @Summary      Listar movimientos de un ítem
// @Tags         transactions
// @Produce      json
// @Param        id      path   string  true   "ID del ítem"
// @Param        limit   query  int     false  "Tamaño de página"
// @Param        offset  query  int     false  "Desplazamiento"
// @Success      200  {object}  dto.TransactionListResponse
// @Router       /api/items/{id}/transactions [get]
func (h *TransactionHandler) ListByItem(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "paginación inválida"})
	}
	page.DefaultPage()
	txs, err := h.txRepo.ListByItem(c.Context(), c.Params("id"), page.Limit, page.Offset)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(toTransactionList(txs, page))
}

func toTransactionResponse(tx *entity.Transaction) dto.TransactionResponse {
	return dto.TransactionResponse{
		ID:        tx.ID,
		ItemID:    tx.ItemID,
		ItemName:  tx.ItemName,
		Type:      tx.Type,
		Quantity:  tx.Quantity,
		Notes:     tx.Notes,
		Date:      tx.Date,
		CreatedAt: tx.CreatedAt,
	}
}

func toTransactionList(txs []*entity.Transaction, page dto.PageRequest) dto.TransactionListResponse {
	out := make([]dto.TransactionResponse, 0, len(txs))
	for _, tx := range txs {
		out = append(out, toTransactionResponse(tx))
	}
	return dto.TransactionListResponse{
		Transactions: out,
		Page:         dto.PageResponse{Limit: page.Limit, Offset: page.Offset},
	}
}
