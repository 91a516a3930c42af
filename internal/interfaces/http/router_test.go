package http_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/almacen-api/internal/application/dto"
	"github.com/jhoicas/almacen-api/internal/application/importer"
	"github.com/jhoicas/almacen-api/internal/application/ledger"
	"github.com/jhoicas/almacen-api/internal/application/stock"
	"github.com/jhoicas/almacen-api/internal/application/usecase"
	"github.com/jhoicas/almacen-api/internal/infrastructure/memory"
	"github.com/jhoicas/almacen-api/internal/infrastructure/pdf"
	apihttp "github.com/jhoicas/almacen-api/internal/interfaces/http"
	"github.com/jhoicas/almacen-api/pkg/logger"
)

// newTestApp levanta la API completa sobre el adaptador en memoria.
func newTestApp(t *testing.T) (*fiber.App, *usecase.ItemUseCase) {
	t.Helper()
	store := memory.NewStore()
	itemRepo := memory.NewItemRepository(store)
	txRepo := memory.NewTransactionRepository(store)
	itemUC := usecase.NewItemUseCase(itemRepo, txRepo)

	app := fiber.New()
	apihttp.Router(app, apihttp.RouterDeps{
		ItemUC:          itemUC,
		ApplyUC:         ledger.NewApplyTransactionUseCase(memory.NewTxRunner(store), itemRepo),
		StockUC:         stock.NewStockUseCase(itemRepo, txRepo, logger.Nop()),
		ReportUC:        usecase.NewReportUseCase(itemRepo, pdf.NewMarotoReportGenerator()),
		DashboardUC:     usecase.NewDashboardUseCase(itemRepo, txRepo),
		ImportUC:        importer.NewImportUseCase(itemUC, itemRepo),
		TransactionRepo: txRepo,
		ImportMaxBytes:  1 << 20,
	})
	return app, itemUC
}

func seedItem(t *testing.T, itemUC *usecase.ItemUseCase, name string, quantity int64) *dto.ItemResponse {
	t.Helper()
	item, err := itemUC.Create(context.Background(), dto.CreateItemRequest{Name: name, Quantity: quantity})
	require.NoError(t, err)
	return item
}

func doJSON(t *testing.T, app *fiber.App, method, target string, body interface{}) *http.Response {
	t.Helper()
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(payload)
	}
	req := httptest.NewRequest(method, target, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func decode(t *testing.T, resp *http.Response, out interface{}) {
	t.Helper()
	defer resp.Body.Close()
	require.NoError(t, json.NewDecoder(resp.Body).Decode(out))
}

func TestPostTransaction_RegistraSalida(t *testing.T) {
	app, itemUC := newTestApp(t)
	item := seedItem(t, itemUC, "martillo", 10)

	resp := doJSON(t, app, fiber.MethodPost, "/api/transactions", dto.CreateTransactionRequest{
		ItemID: item.ID, Type: "OUT", Quantity: 6, Notes: "despacho",
	})
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)

	var tx dto.TransactionResponse
	decode(t, resp, &tx)
	assert.Equal(t, item.ID, tx.ItemID)
	assert.Equal(t, "martillo", tx.ItemName)
	assert.Equal(t, int64(6), tx.Quantity)
	assert.NotEmpty(t, tx.ID)

	// El stock queda en 4.
	stockResp := doJSON(t, app, fiber.MethodGet, "/api/stock/"+item.ID, nil)
	require.Equal(t, fiber.StatusOK, stockResp.StatusCode)
	var current dto.StockResponse
	decode(t, stockResp, &current)
	assert.Equal(t, int64(4), current.Quantity)
}

// El rechazo por stock insuficiente lleva código propio y las cantidades
// disponibles y solicitadas, para que el cliente pueda mostrarlas.
func TestPostTransaction_StockInsuficiente(t *testing.T) {
	app, itemUC := newTestApp(t)
	item := seedItem(t, itemUC, "clavos", 3)

	resp := doJSON(t, app, fiber.MethodPost, "/api/transactions", dto.CreateTransactionRequest{
		ItemID: item.ID, Type: "OUT", Quantity: 5,
	})
	require.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

	var out dto.StockErrorResponse
	decode(t, resp, &out)
	assert.Equal(t, "INSUFFICIENT_STOCK", out.Code)
	assert.Equal(t, int64(3), out.Available)
	assert.Equal(t, int64(5), out.Requested)
}

func TestPostTransaction_Errores(t *testing.T) {
	app, itemUC := newTestApp(t)
	item := seedItem(t, itemUC, "lija", 5)

	cases := []struct {
		name string
		body dto.CreateTransactionRequest
		want int
		code string
	}{
		{"ítem inexistente", dto.CreateTransactionRequest{ItemID: "no-existe", Type: "IN", Quantity: 1}, fiber.StatusNotFound, "NOT_FOUND"},
		{"tipo inválido", dto.CreateTransactionRequest{ItemID: item.ID, Type: "TRANSFER", Quantity: 1}, fiber.StatusBadRequest, "VALIDATION"},
		{"cantidad cero", dto.CreateTransactionRequest{ItemID: item.ID, Type: "IN", Quantity: 0}, fiber.StatusBadRequest, "VALIDATION"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			resp := doJSON(t, app, fiber.MethodPost, "/api/transactions", tc.body)
			require.Equal(t, tc.want, resp.StatusCode)
			var out dto.ErrorResponse
			decode(t, resp, &out)
			assert.Equal(t, tc.code, out.Code)
		})
	}
}

func TestGetItemTransactions(t *testing.T) {
	app, itemUC := newTestApp(t)
	item := seedItem(t, itemUC, "tornillos", 20)

	for _, quantity := range []int64{5, 3} {
		resp := doJSON(t, app, fiber.MethodPost, "/api/transactions", dto.CreateTransactionRequest{
			ItemID: item.ID, Type: "OUT", Quantity: quantity,
		})
		require.Equal(t, fiber.StatusCreated, resp.StatusCode)
	}

	resp := doJSON(t, app, fiber.MethodGet, "/api/items/"+item.ID+"/transactions", nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	var list dto.TransactionListResponse
	decode(t, resp, &list)
	assert.Len(t, list.Transactions, 2)
}

func TestItemCRUDEndpoints(t *testing.T) {
	app, _ := newTestApp(t)

	resp := doJSON(t, app, fiber.MethodPost, "/api/items/", dto.CreateItemRequest{Name: "sierra", Quantity: 8})
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)
	var created dto.ItemResponse
	decode(t, resp, &created)
	assert.Equal(t, "available", created.Status)

	// Duplicado
	resp = doJSON(t, app, fiber.MethodPost, "/api/items/", dto.CreateItemRequest{Name: "sierra", Quantity: 1})
	require.Equal(t, fiber.StatusConflict, resp.StatusCode)

	resp = doJSON(t, app, fiber.MethodGet, "/api/items/"+created.ID, nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	resp = doJSON(t, app, fiber.MethodGet, "/api/items/no-existe", nil)
	require.Equal(t, fiber.StatusNotFound, resp.StatusCode)

	resp = doJSON(t, app, fiber.MethodDelete, "/api/items/"+created.ID, nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
}

// Eliminar un ítem con movimientos responde 409.
func TestDeleteItem_ConHistorial(t *testing.T) {
	app, itemUC := newTestApp(t)
	item := seedItem(t, itemUC, "brocha", 5)

	resp := doJSON(t, app, fiber.MethodPost, "/api/transactions", dto.CreateTransactionRequest{
		ItemID: item.ID, Type: "OUT", Quantity: 1,
	})
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)

	resp = doJSON(t, app, fiber.MethodDelete, "/api/items/"+item.ID, nil)
	require.Equal(t, fiber.StatusConflict, resp.StatusCode)
	var out dto.ErrorResponse
	decode(t, resp, &out)
	assert.Equal(t, "CONFLICT", out.Code)
}

func TestStockEndpoints(t *testing.T) {
	app, itemUC := newTestApp(t)
	item := seedItem(t, itemUC, "pernos", 10)
	seedItem(t, itemUC, "agotado", 0)

	resp := doJSON(t, app, fiber.MethodPost, "/api/transactions", dto.CreateTransactionRequest{
		ItemID: item.ID, Type: "OUT", Quantity: 7,
	})
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)

	resp = doJSON(t, app, fiber.MethodGet, "/api/stock/"+item.ID+"/derived", nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	var derived dto.DerivedStockResponse
	decode(t, resp, &derived)
	assert.Equal(t, int64(3), derived.Derived)

	resp = doJSON(t, app, fiber.MethodGet, "/api/stock/"+item.ID+"/reconcile", nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	var rec dto.ReconcileResponse
	decode(t, resp, &rec)
	assert.True(t, rec.Consistent)
	assert.Equal(t, int64(3), rec.Stored)

	resp = doJSON(t, app, fiber.MethodGet, "/api/stock/low", nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	var low dto.StockListResponse
	decode(t, resp, &low)
	require.Equal(t, 1, low.Total)
	assert.Equal(t, "pernos", low.Items[0].Name)

	resp = doJSON(t, app, fiber.MethodGet, "/api/stock/out", nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	var out dto.StockListResponse
	decode(t, resp, &out)
	require.Equal(t, 1, out.Total)
	assert.Equal(t, "agotado", out.Items[0].Name)
}

func TestDashboardEndpoint(t *testing.T) {
	app, itemUC := newTestApp(t)
	item := seedItem(t, itemUC, "tuercas", 10)

	resp := doJSON(t, app, fiber.MethodPost, "/api/transactions", dto.CreateTransactionRequest{
		ItemID: item.ID, Type: "IN", Quantity: 5,
	})
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)

	resp = doJSON(t, app, fiber.MethodGet, "/api/dashboard/", nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	var overview dto.DashboardResponse
	decode(t, resp, &overview)
	assert.Equal(t, int64(1), overview.TotalItems)
	assert.Equal(t, int64(15), overview.TotalQuantity)
}

func TestReportEndpoints(t *testing.T) {
	app, itemUC := newTestApp(t)
	seedItem(t, itemUC, "martillo", 12)

	resp := doJSON(t, app, fiber.MethodGet, "/api/reports/inventory", nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	var report dto.InventoryReportResponse
	decode(t, resp, &report)
	require.Len(t, report.Items, 1)
	assert.Equal(t, "martillo", report.Items[0].Name)

	resp = doJSON(t, app, fiber.MethodGet, "/api/reports/inventory/pdf", nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, "application/pdf", resp.Header.Get("Content-Type"))
	body, err := io.ReadAll(resp.Body)
	resp.Body.Close()
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(body, []byte("%PDF")))
}
