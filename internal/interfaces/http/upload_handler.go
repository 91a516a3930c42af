package http

import (
	"path/filepath"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/almacen-api/internal/application/dto"
	"github.com/jhoicas/almacen-api/internal/application/importer"
)

// UploadHandler maneja la importación masiva de ítems desde Excel.
type UploadHandler struct {
	uc       *importer.ImportUseCase
	maxBytes int64
}

// NewUploadHandler construye el handler. maxBytes limita el tamaño del archivo.
func NewUploadHandler(uc *importer.ImportUseCase, maxBytes int64) *UploadHandler {
	return &UploadHandler{uc: uc, maxBytes: maxBytes}
}

// ImportItems godoc
// @Summary      Importar ítems desde un archivo Excel
// @Description  Crea ítems nuevos con la cantidad de la hoja como línea base.
//
//	Nunca sobreescribe cantidades de ítems existentes: las diferencias se
//	reportan como needs_adjustment para registrar un movimiento de ajuste.
//
// @Tags         items
// @Accept       multipart/form-data
// @Produce      json
// @Param        file  formData  file  true  "Archivo .xlsx"
// @Success      200  {object}  dto.ImportResultResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/items/import [post]
func (h *UploadHandler) ImportItems(c *fiber.Ctx) error {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "falta el archivo 'file'"})
	}
	if fileHeader.Size > h.maxBytes {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "FILE_TOO_LARGE", Message: "el archivo excede el tamaño máximo"})
	}
	ext := strings.ToLower(filepath.Ext(fileHeader.Filename))
	if ext != ".xlsx" && ext != ".xls" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_FILE", Message: "solo se aceptan archivos Excel (.xlsx)"})
	}

	f, err := fileHeader.Open()
	if err != nil {
		return respondError(c, err)
	}
	defer f.Close()

	result, err := h.uc.ImportItems(c.Context(), f)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_FILE", Message: err.Error()})
	}
	return c.JSON(result)
}
