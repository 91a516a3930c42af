// Package importer implementa la carga masiva de ítems desde archivos Excel.
//
// La importación crea ítems nuevos con la cantidad de la hoja como línea
// base y actualiza metadatos de ítems existentes. Nunca sobreescribe la
// cantidad de un ítem existente: una diferencia entre la hoja y el stock
// actual se marca como "needs_adjustment" para que el operador registre un
// movimiento de ajuste en el libro, en lugar de perder la trazabilidad.
package importer

import (
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"

	"github.com/jhoicas/almacen-api/internal/application/dto"
	"github.com/jhoicas/almacen-api/internal/application/usecase"
	"github.com/jhoicas/almacen-api/internal/domain/repository"
)

// ImportUseCase procesa un archivo .xlsx de ítems.
type ImportUseCase struct {
	itemUC   *usecase.ItemUseCase
	itemRepo repository.ItemRepository
}

// NewImportUseCase construye el caso de uso.
func NewImportUseCase(itemUC *usecase.ItemUseCase, itemRepo repository.ItemRepository) *ImportUseCase {
	return &ImportUseCase{itemUC: itemUC, itemRepo: itemRepo}
}

// columnas reconocidas tras normalizar el encabezado (minúsculas, sin
// espacios ni guiones bajos). Los archivos reales llegan con encabezados
// inconsistentes: item_name, Item Name, QTY, Unit Price, vendor, etc.
var headerAliases = map[string]string{
	"itemname":     "name",
	"name":         "name",
	"item":         "name",
	"category":     "category",
	"categoryname": "category",
	"quantity":     "quantity",
	"qty":          "quantity",
	"reorderlevel": "reorder_level",
	"unitprice":    "unit_price",
	"price":        "unit_price",
	"supplier":     "supplier",
	"vendor":       "supplier",
}

func normalizeHeader(h string) string {
	h = strings.ToLower(strings.TrimSpace(h))
	h = strings.ReplaceAll(h, " ", "")
	h = strings.ReplaceAll(h, "_", "")
	return h
}

// ImportItems lee la primera hoja del archivo y procesa cada fila. Las filas
// inválidas no abortan la importación: quedan reportadas en el resultado.
func (uc *ImportUseCase) ImportItems(ctx context.Context, r io.Reader) (*dto.ImportResultResponse, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("abrir archivo excel: %w", err)
	}
	defer f.Close()

	sheet := f.GetSheetName(0)
	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("leer hoja %q: %w", sheet, err)
	}
	if len(rows) < 2 {
		return &dto.ImportResultResponse{Rows: []dto.ImportRowResult{}}, nil
	}

	// Mapear encabezados a campos conocidos
	fields := make(map[int]string, len(rows[0]))
	for i, h := range rows[0] {
		if field, ok := headerAliases[normalizeHeader(h)]; ok {
			fields[i] = field
		}
	}

	result := &dto.ImportResultResponse{Rows: make([]dto.ImportRowResult, 0, len(rows)-1)}
	for idx, cells := range rows[1:] {
		rowNum := idx + 2 // 1-based, tras el encabezado
		rowResult := uc.processRow(ctx, rowNum, fields, cells)
		switch rowResult.Action {
		case dto.ImportActionCreated:
			result.Created++
		case dto.ImportActionUpdated:
			result.Updated++
		case dto.ImportActionNeedsAdjustment:
			result.NeedsAdjustment++
		case dto.ImportActionError:
			result.Errors++
		}
		result.Rows = append(result.Rows, rowResult)
	}
	return result, nil
}

// importRow fila ya decodificada del archivo.
type importRow struct {
	Name         string
	Category     string
	Quantity     int64
	ReorderLevel *int64
	UnitPrice    decimal.Decimal
	Supplier     string
}

func parseRow(fields map[int]string, cells []string) (*importRow, error) {
	row := &importRow{UnitPrice: decimal.Zero}
	for i, cell := range cells {
		field, ok := fields[i]
		cell = strings.TrimSpace(cell)
		if !ok || cell == "" {
			continue
		}
		switch field {
		case "name":
			row.Name = cell
		case "category":
			row.Category = cell
		case "quantity":
			n, err := strconv.ParseInt(cell, 10, 64)
			if err != nil || n < 0 {
				return nil, fmt.Errorf("cantidad inválida %q", cell)
			}
			row.Quantity = n
		case "reorder_level":
			n, err := strconv.ParseInt(cell, 10, 64)
			if err != nil || n < 0 {
				return nil, fmt.Errorf("nivel de reorden inválido %q", cell)
			}
			row.ReorderLevel = &n
		case "unit_price":
			price, err := decimal.NewFromString(cell)
			if err != nil || price.IsNegative() {
				return nil, fmt.Errorf("precio inválido %q", cell)
			}
			row.UnitPrice = price
		case "supplier":
			row.Supplier = cell
		}
	}
	if row.Name == "" {
		return nil, fmt.Errorf("falta el nombre del ítem")
	}
	return row, nil
}

func (uc *ImportUseCase) processRow(ctx context.Context, rowNum int, fields map[int]string, cells []string) dto.ImportRowResult {
	row, err := parseRow(fields, cells)
	if err != nil {
		return dto.ImportRowResult{Row: rowNum, Action: dto.ImportActionError, Message: err.Error()}
	}

	existing, _ := uc.itemRepo.GetByName(ctx, row.Name)
	if existing == nil {
		// Ítem nuevo: la cantidad de la hoja es la línea base.
		_, err := uc.itemUC.Create(ctx, dto.CreateItemRequest{
			Name:         row.Name,
			Category:     row.Category,
			Quantity:     row.Quantity,
			ReorderLevel: row.ReorderLevel,
			UnitPrice:    row.UnitPrice,
			Supplier:     row.Supplier,
		})
		if err != nil {
			return dto.ImportRowResult{Row: rowNum, ItemName: row.Name, Action: dto.ImportActionError, Message: err.Error()}
		}
		return dto.ImportRowResult{Row: rowNum, ItemName: row.Name, Action: dto.ImportActionCreated}
	}

	// Ítem existente: solo metadatos. La cantidad no se pisa jamás.
	update := dto.UpdateItemRequest{}
	if row.Category != "" {
		update.Category = &row.Category
	}
	if row.ReorderLevel != nil {
		update.ReorderLevel = row.ReorderLevel
	}
	if !row.UnitPrice.IsZero() {
		update.UnitPrice = &row.UnitPrice
	}
	if row.Supplier != "" {
		update.Supplier = &row.Supplier
	}
	if _, err := uc.itemUC.Update(ctx, existing.ID, update); err != nil {
		return dto.ImportRowResult{Row: rowNum, ItemName: row.Name, Action: dto.ImportActionError, Message: err.Error()}
	}

	if row.Quantity != existing.Quantity {
		msg := fmt.Sprintf("la hoja trae cantidad %d y el stock actual es %d: registrar un movimiento de ajuste",
			row.Quantity, existing.Quantity)
		return dto.ImportRowResult{Row: rowNum, ItemName: row.Name, Action: dto.ImportActionNeedsAdjustment, Message: msg}
	}
	return dto.ImportRowResult{Row: rowNum, ItemName: row.Name, Action: dto.ImportActionUpdated}
}
