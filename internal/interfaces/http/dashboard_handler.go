package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/almacen-api/internal/application/usecase"
)

// DashboardHandler maneja las vistas agregadas del dashboard (solo lectura).
type DashboardHandler struct {
	uc *usecase.DashboardUseCase
}

// NewDashboardHandler construye el handler.
func NewDashboardHandler(uc *usecase.DashboardUseCase) *DashboardHandler {
	return &DashboardHandler{uc: uc}
}

// Overview godoc
// @Summary      Agregados del inventario
// @Tags         dashboard
// @Produce      json
// @Success      200  {object}  dto.DashboardResponse
// @Router       /api/dashboard [get]
func (h *DashboardHandler) Overview(c *fiber.Ctx) error {
	data, err := h.uc.Overview(c.Context())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(data)
}

// TransactionStats godoc
// @Summary      Estadísticas del libro de movimientos
// @Tags         dashboard
// @Produce      json
// @Success      200  {object}  dto.TransactionStatsResponse
// @Router       /api/dashboard/transactions [get]
func (h *DashboardHandler) TransactionStats(c *fiber.Ctx) error {
	stats, err := h.uc.TransactionStats(c.Context())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(stats)
}
