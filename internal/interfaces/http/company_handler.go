package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/acheileads/achei-leads-api/internal/application/dto"
	"github.com/acheileads/achei-leads-api/internal/application/usecase"
)

// CompanyHandler expõe a base pessoal de empresas: importação, CRUD e telefones.
type CompanyHandler struct {
	uc *usecase.CompanyUseCase
}

// NewCompanyHandler constrói o handler.
func NewCompanyHandler(uc *usecase.CompanyUseCase) *CompanyHandler {
	return &CompanyHandler{uc: uc}
}

// Import godoc
// @Summary      Importa resultados de busca para a base pessoal
// @Description  Consome 1 crédito por empresa importada; duplicadas por CNPJ são puladas
// @Tags         companies
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body dto.ImportRequest true "Empresas a importar"
// @Success      200 {object} dto.BatchReport
// @Failure      402 {object} dto.ErrorResponse
// @Router       /api/companies/import [post]
func (h *CompanyHandler) Import(c *fiber.Ctx) error {
	var req dto.ImportRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "JSON inválido"})
	}
	if len(req.Empresas) == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "empresas não pode ser vazio"})
	}
	report, err := h.uc.Import(c.Context(), GetUserID(c), req)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(report)
}

// List godoc
// @Summary      Lista as empresas do usuário com filtros e paginação
// @Tags         companies
// @Produce      json
// @Security     BearerAuth
// @Param        stage_id    query string false "ID da etapa; 'null' filtra sem etapa"
// @Param        cidade      query string false "Cidade"
// @Param        uf          query string false "UF"
// @Param        enriquecida query string false "true/false"
// @Param        busca       query string false "Busca por nome ou CNPJ"
// @Param        limit       query int    false "Tamanho da página (padrão 20)"
// @Param        offset      query int    false "Deslocamento"
// @Success      200 {array} dto.CompanyResponse
// @Router       /api/companies [get]
func (h *CompanyHandler) List(c *fiber.Ctx) error {
	var req dto.ListCompaniesRequest
	if err := c.QueryParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "parâmetros de consulta inválidos"})
	}
	req.DefaultPage()
	companies, page, err := h.uc.List(GetUserID(c), req)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"empresas": companies, "page": page})
}

// GetByID godoc
// @Summary      Detalha uma empresa da base pessoal
// @Tags         companies
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "ID da empresa"
// @Success      200 {object} dto.CompanyResponse
// @Failure      404 {object} dto.ErrorResponse
// @Router       /api/companies/{id} [get]
func (h *CompanyHandler) GetByID(c *fiber.Ctx) error {
	resp, err := h.uc.GetByID(GetUserID(c), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(resp)
}

// Update godoc
// @Summary      Edita campos de uma empresa
// @Tags         companies
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id      path string                   true "ID da empresa"
// @Param        request body dto.UpdateCompanyRequest true "Campos a alterar"
// @Success      200 {object} dto.CompanyResponse
// @Failure      404 {object} dto.ErrorResponse
// @Router       /api/companies/{id} [put]
func (h *CompanyHandler) Update(c *fiber.Ctx) error {
	var req dto.UpdateCompanyRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "JSON inválido"})
	}
	resp, err := h.uc.Update(GetUserID(c), c.Params("id"), req)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(resp)
}

// Delete godoc
// @Summary      Exclui uma empresa e seus telefones
// @Tags         companies
// @Security     BearerAuth
// @Param        id path string true "ID da empresa"
// @Success      204
// @Failure      404 {object} dto.ErrorResponse
// @Router       /api/companies/{id} [delete]
func (h *CompanyHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(GetUserID(c), c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// BulkDelete godoc
// @Summary      Exclui empresas em lote
// @Tags         companies
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body dto.BulkDeleteRequest true "IDs a excluir"
// @Success      200 {object} dto.BatchReport
// @Router       /api/companies/bulk-delete [post]
func (h *CompanyHandler) BulkDelete(c *fiber.Ctx) error {
	var req dto.BulkDeleteRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "JSON inválido"})
	}
	if len(req.IDs) == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "ids não pode ser vazio"})
	}
	return c.JSON(h.uc.BulkDelete(GetUserID(c), req))
}

// AddPhone godoc
// @Summary      Adiciona um telefone a uma empresa
// @Tags         companies
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id      path string                 true "ID da empresa"
// @Param        request body dto.CreatePhoneRequest true "Telefone"
// @Success      201 {object} dto.PhoneResponse
// @Failure      409 {object} dto.ErrorResponse
// @Router       /api/companies/{id}/phones [post]
func (h *CompanyHandler) AddPhone(c *fiber.Ctx) error {
	var req dto.CreatePhoneRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "JSON inválido"})
	}
	if req.Numero == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "numero é obrigatório"})
	}
	resp, err := h.uc.AddPhone(GetUserID(c), c.Params("id"), req)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(resp)
}

// UpdatePhone godoc
// @Summary      Edita um telefone (status de validação, WhatsApp)
// @Tags         companies
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        phoneId path string                 true "ID do telefone"
// @Param        request body dto.UpdatePhoneRequest true "Campos a alterar"
// @Success      200 {object} dto.PhoneResponse
// @Failure      404 {object} dto.ErrorResponse
// @Router       /api/phones/{phoneId} [put]
func (h *CompanyHandler) UpdatePhone(c *fiber.Ctx) error {
	var req dto.UpdatePhoneRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "JSON inválido"})
	}
	resp, err := h.uc.UpdatePhone(GetUserID(c), c.Params("phoneId"), req)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(resp)
}

// DeletePhone godoc
// @Summary      Remove um telefone
// @Tags         companies
// @Security     BearerAuth
// @Param        phoneId path string true "ID do telefone"
// @Success      204
// @Failure      404 {object} dto.ErrorResponse
// @Router       /api/phones/{phoneId} [delete]
func (h *CompanyHandler) DeletePhone(c *fiber.Ctx) error {
	if err := h.uc.DeletePhone(GetUserID(c), c.Params("phoneId")); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
