package http

import (
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/acheileads/achei-leads-api/internal/application/dto"
	"github.com/acheileads/achei-leads-api/internal/application/export"
)

// ExportHandler expõe os downloads de CSV e PDF da base de leads.
type ExportHandler struct {
	uc *export.ExportUseCase
}

// NewExportHandler constrói o handler.
func NewExportHandler(uc *export.ExportUseCase) *ExportHandler {
	return &ExportHandler{uc: uc}
}

// CSV godoc
// @Summary      Exporta empresas em CSV (UTF-8 com BOM)
// @Tags         export
// @Accept       json
// @Produce      text/csv
// @Security     BearerAuth
// @Param        request body dto.ExportRequest true "Categorias, modo e ids"
// @Success      200 {file} file
// @Failure      400 {object} dto.ErrorResponse
// @Router       /api/export/csv [post]
func (h *ExportHandler) CSV(c *fiber.Ctx) error {
	var req dto.ExportRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "JSON inválido"})
	}
	data, err := h.uc.CSV(GetUserID(c), req)
	if err != nil {
		return respondError(c, err)
	}
	filename := fmt.Sprintf("leads-%s.csv", time.Now().Format("2006-01-02"))
	c.Set(fiber.HeaderContentType, "text/csv; charset=utf-8")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+filename+`"`)
	return c.Send(data)
}

// PDF godoc
// @Summary      Exporta o relatório de leads em PDF
// @Tags         export
// @Accept       json
// @Produce      application/pdf
// @Security     BearerAuth
// @Param        request body dto.ExportRequest true "IDs (vazio = todas)"
// @Success      200 {file} file
// @Router       /api/export/pdf [post]
func (h *ExportHandler) PDF(c *fiber.Ctx) error {
	var req dto.ExportRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "JSON inválido"})
	}
	data, err := h.uc.PDF(c.Context(), GetUserID(c), req)
	if err != nil {
		return respondError(c, err)
	}
	filename := fmt.Sprintf("relatorio-leads-%s.pdf", time.Now().Format("2006-01-02"))
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+filename+`"`)
	return c.Send(data)
}
