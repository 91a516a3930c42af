package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/almacen-api/internal/application/importer"
	"github.com/jhoicas/almacen-api/internal/application/ledger"
	"github.com/jhoicas/almacen-api/internal/application/stock"
	"github.com/jhoicas/almacen-api/internal/application/usecase"
	"github.com/jhoicas/almacen-api/internal/domain/repository"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	ItemUC          *usecase.ItemUseCase
	ApplyUC         *ledger.ApplyTransactionUseCase
	StockUC         *stock.StockUseCase
	ReportUC        *usecase.ReportUseCase
	DashboardUC     *usecase.DashboardUseCase
	ImportUC        *importer.ImportUseCase
	TransactionRepo repository.TransactionRepository
	ImportMaxBytes  int64
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Items
	items := api.Group("/items")
	itemHandler := NewItemHandler(deps.ItemUC)
	uploadHandler := NewUploadHandler(deps.ImportUC, deps.ImportMaxBytes)
	txHandler := NewTransactionHandler(deps.ApplyUC, deps.TransactionRepo)
	items.Post("/", itemHandler.Create)
	items.Get("/", itemHandler.List)
	items.Post("/import", uploadHandler.ImportItems)
	items.Get("/:id", itemHandler.GetByID)
	items.Put("/:id", itemHandler.Update)
	items.Delete("/:id", itemHandler.Delete)
	items.Get("/:id/transactions", txHandler.ListByItem)

	// Transactions (libro de movimientos)
	transactions := api.Group("/transactions")
	transactions.Post("/", txHandler.Create)
	transactions.Get("/", txHandler.List)

	// Stock y conciliación (solo lectura)
	stockGroup := api.Group("/stock")
	stockHandler := NewStockHandler(deps.StockUC)
	stockGroup.Get("/low", stockHandler.LowStock)
	stockGroup.Get("/out", stockHandler.OutOfStock)
	stockGroup.Get("/:id", stockHandler.Current)
	stockGroup.Get("/:id/derived", stockHandler.Derived)
	stockGroup.Get("/:id/reconcile", stockHandler.Reconcile)

	// Reportes
	reports := api.Group("/reports")
	reportHandler := NewReportHandler(deps.ReportUC)
	reports.Get("/inventory", reportHandler.Inventory)
	reports.Get("/inventory/pdf", reportHandler.InventoryPDF)

	// Dashboard
	dashboard := api.Group("/dashboard")
	dashboardHandler := NewDashboardHandler(deps.DashboardUC)
	dashboard.Get("/", dashboardHandler.Overview)
	dashboard.Get("/transactions", dashboardHandler.TransactionStats)
}
