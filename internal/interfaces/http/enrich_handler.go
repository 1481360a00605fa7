package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/acheileads/achei-leads-api/internal/application/dto"
	"github.com/acheileads/achei-leads-api/internal/application/enrich"
)

// EnrichHandler expõe o enriquecimento de empresas por IA.
type EnrichHandler struct {
	uc *enrich.EnrichUseCase
}

// NewEnrichHandler constrói o handler.
func NewEnrichHandler(uc *enrich.EnrichUseCase) *EnrichHandler {
	return &EnrichHandler{uc: uc}
}

// Enrich godoc
// @Summary      Enriquece uma empresa com busca web + IA
// @Description  Consome 1 crédito; estornado se o pipeline falhar após o consumo
// @Tags         enrich
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "ID da empresa"
// @Success      200 {object} dto.EnrichResponse
// @Failure      402 {object} dto.ErrorResponse
// @Failure      503 {object} dto.ErrorResponse
// @Router       /api/companies/{id}/enrich [post]
func (h *EnrichHandler) Enrich(c *fiber.Ctx) error {
	resp, err := h.uc.Enrich(c.Context(), GetUserID(c), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(resp)
}

// EnrichBulk godoc
// @Summary      Enriquece empresas em sequência
// @Tags         enrich
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body dto.BulkEnrichRequest true "IDs das empresas"
// @Success      200 {object} dto.BatchReport
// @Router       /api/companies/enrich-bulk [post]
func (h *EnrichHandler) EnrichBulk(c *fiber.Ctx) error {
	var req dto.BulkEnrichRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "JSON inválido"})
	}
	if len(req.IDs) == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "ids não pode ser vazio"})
	}
	return c.JSON(h.uc.EnrichBulk(c.Context(), GetUserID(c), req))
}
