package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/acheileads/achei-leads-api/internal/application/dto"
	"github.com/acheileads/achei-leads-api/internal/application/usecase"
)

// MessageHandler expõe templates de mensagem, renderização e histórico de envio.
type MessageHandler struct {
	uc *usecase.MessageUseCase
}

// NewMessageHandler constrói o handler.
func NewMessageHandler(uc *usecase.MessageUseCase) *MessageHandler {
	return &MessageHandler{uc: uc}
}

// CreateTemplate godoc
// @Summary      Cria um template de mensagem
// @Tags         messages
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body dto.CreateTemplateRequest true "Template"
// @Success      201 {object} dto.TemplateResponse
// @Failure      409 {object} dto.ErrorResponse
// @Router       /api/messages/templates [post]
func (h *MessageHandler) CreateTemplate(c *fiber.Ctx) error {
	var req dto.CreateTemplateRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "JSON inválido"})
	}
	if req.Nome == "" || req.Canal == "" || req.Corpo == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "nome, canal e corpo são obrigatórios"})
	}
	resp, err := h.uc.CreateTemplate(GetUserID(c), req)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(resp)
}

// ListTemplates godoc
// @Summary      Lista os templates do usuário
// @Tags         messages
// @Produce      json
// @Security     BearerAuth
// @Success      200 {array} dto.TemplateResponse
// @Router       /api/messages/templates [get]
func (h *MessageHandler) ListTemplates(c *fiber.Ctx) error {
	templates, err := h.uc.ListTemplates(GetUserID(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(templates)
}

// UpdateTemplate godoc
// @Summary      Edita um template
// @Tags         messages
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id      path string                    true "ID do template"
// @Param        request body dto.UpdateTemplateRequest true "Campos a alterar"
// @Success      200 {object} dto.TemplateResponse
// @Failure      404 {object} dto.ErrorResponse
// @Router       /api/messages/templates/{id} [put]
func (h *MessageHandler) UpdateTemplate(c *fiber.Ctx) error {
	var req dto.UpdateTemplateRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "JSON inválido"})
	}
	resp, err := h.uc.UpdateTemplate(GetUserID(c), c.Params("id"), req)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(resp)
}

// DeleteTemplate godoc
// @Summary      Exclui um template
// @Tags         messages
// @Security     BearerAuth
// @Param        id path string true "ID do template"
// @Success      204
// @Failure      404 {object} dto.ErrorResponse
// @Router       /api/messages/templates/{id} [delete]
func (h *MessageHandler) DeleteTemplate(c *fiber.Ctx) error {
	if err := h.uc.DeleteTemplate(GetUserID(c), c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// Render godoc
// @Summary      Renderiza um template contra os dados de uma empresa
// @Description  Substitui placeholders como {{nome}}, {{cidade}} e {{cnpj}}
// @Tags         messages
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body dto.RenderRequest true "Template e empresa"
// @Success      200 {object} dto.RenderResponse
// @Failure      404 {object} dto.ErrorResponse
// @Router       /api/messages/render [post]
func (h *MessageHandler) Render(c *fiber.Ctx) error {
	var req dto.RenderRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "JSON inválido"})
	}
	if req.TemplateID == "" || req.CompanyID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "template_id e company_id são obrigatórios"})
	}
	resp, err := h.uc.Render(GetUserID(c), req)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(resp)
}

// Send godoc
// @Summary      Registra o envio de uma mensagem para um telefone
// @Description  Para canal whatsapp devolve o deep link wa.me com o corpo renderizado
// @Tags         messages
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body dto.SendMessageRequest true "Template, empresa e telefone"
// @Success      200 {object} dto.SendMessageResponse
// @Failure      404 {object} dto.ErrorResponse
// @Router       /api/messages/send [post]
func (h *MessageHandler) Send(c *fiber.Ctx) error {
	var req dto.SendMessageRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "JSON inválido"})
	}
	if req.TemplateID == "" || req.CompanyID == "" || req.PhoneID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "template_id, company_id e phone_id são obrigatórios"})
	}
	resp, err := h.uc.Send(GetUserID(c), req)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(resp)
}

// History godoc
// @Summary      Histórico de envios, opcionalmente por empresa
// @Tags         messages
// @Produce      json
// @Security     BearerAuth
// @Param        company_id query string false "Filtra por empresa"
// @Param        limit      query int    false "Tamanho da página (padrão 20)"
// @Param        offset     query int    false "Deslocamento"
// @Success      200 {array} dto.HistoryResponse
// @Router       /api/messages/history [get]
func (h *MessageHandler) History(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "parâmetros de consulta inválidos"})
	}
	page.DefaultPage()
	history, err := h.uc.History(GetUserID(c), c.Query("company_id"), page)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(history)
}
