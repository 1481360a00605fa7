package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/acheileads/achei-leads-api/internal/application/dto"
	"github.com/acheileads/achei-leads-api/internal/application/usecase"
)

// CRMHandler expõe o funil kanban: etapas, quadro, movimentações e atividades.
type CRMHandler struct {
	uc *usecase.CRMUseCase
}

// NewCRMHandler constrói o handler.
func NewCRMHandler(uc *usecase.CRMUseCase) *CRMHandler {
	return &CRMHandler{uc: uc}
}

// ── Etapas ────────────────────────────────────────────────────────────────────

// CreateStage godoc
// @Summary      Cria uma etapa do funil
// @Tags         crm
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body dto.CreateStageRequest true "Etapa"
// @Success      201 {object} dto.StageResponse
// @Router       /api/crm/stages [post]
func (h *CRMHandler) CreateStage(c *fiber.Ctx) error {
	var req dto.CreateStageRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "JSON inválido"})
	}
	if req.Nome == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "nome é obrigatório"})
	}
	resp, err := h.uc.CreateStage(GetUserID(c), req)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(resp)
}

// ListStages godoc
// @Summary      Lista as etapas do funil em ordem
// @Tags         crm
// @Produce      json
// @Security     BearerAuth
// @Success      200 {array} dto.StageResponse
// @Router       /api/crm/stages [get]
func (h *CRMHandler) ListStages(c *fiber.Ctx) error {
	stages, err := h.uc.ListStages(GetUserID(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(stages)
}

// UpdateStage godoc
// @Summary      Edita nome ou cor de uma etapa
// @Tags         crm
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id      path string                 true "ID da etapa"
// @Param        request body dto.UpdateStageRequest true "Campos a alterar"
// @Success      200 {object} dto.StageResponse
// @Failure      404 {object} dto.ErrorResponse
// @Router       /api/crm/stages/{id} [put]
func (h *CRMHandler) UpdateStage(c *fiber.Ctx) error {
	var req dto.UpdateStageRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "JSON inválido"})
	}
	resp, err := h.uc.UpdateStage(GetUserID(c), c.Params("id"), req)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(resp)
}

// ReorderStages godoc
// @Summary      Reordena as colunas do funil
// @Tags         crm
// @Accept       json
// @Security     BearerAuth
// @Param        request body dto.ReorderStagesRequest true "IDs na nova ordem"
// @Success      204
// @Router       /api/crm/stages/reorder [put]
func (h *CRMHandler) ReorderStages(c *fiber.Ctx) error {
	var req dto.ReorderStagesRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "JSON inválido"})
	}
	if len(req.IDs) == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "ids não pode ser vazio"})
	}
	if err := h.uc.ReorderStages(GetUserID(c), req); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// DeleteStage godoc
// @Summary      Exclui uma etapa; as empresas dela ficam sem etapa
// @Tags         crm
// @Security     BearerAuth
// @Param        id path string true "ID da etapa"
// @Success      204
// @Failure      404 {object} dto.ErrorResponse
// @Router       /api/crm/stages/{id} [delete]
func (h *CRMHandler) DeleteStage(c *fiber.Ctx) error {
	if err := h.uc.DeleteStage(GetUserID(c), c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// Board godoc
// @Summary      Quadro kanban com contagem e valor total por coluna
// @Tags         crm
// @Produce      json
// @Security     BearerAuth
// @Success      200 {object} dto.BoardResponse
// @Router       /api/crm/board [get]
func (h *CRMHandler) Board(c *fiber.Ctx) error {
	board, err := h.uc.Board(GetUserID(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(board)
}

// MoveCompany godoc
// @Summary      Move uma empresa entre etapas (registra no histórico)
// @Tags         crm
// @Accept       json
// @Security     BearerAuth
// @Param        id      path string                 true "ID da empresa"
// @Param        request body dto.MoveCompanyRequest true "Etapa destino (null = sem etapa)"
// @Success      204
// @Failure      404 {object} dto.ErrorResponse
// @Router       /api/companies/{id}/stage [put]
func (h *CRMHandler) MoveCompany(c *fiber.Ctx) error {
	var req dto.MoveCompanyRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "JSON inválido"})
	}
	if err := h.uc.MoveCompany(GetUserID(c), c.Params("id"), req); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// StageHistory godoc
// @Summary      Histórico de movimentações de uma empresa no funil
// @Tags         crm
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "ID da empresa"
// @Success      200 {array} dto.StageHistoryResponse
// @Router       /api/companies/{id}/stage-history [get]
func (h *CRMHandler) StageHistory(c *fiber.Ctx) error {
	history, err := h.uc.StageHistory(GetUserID(c), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(history)
}

// ── Atividades ────────────────────────────────────────────────────────────────

// CreateActivity godoc
// @Summary      Registra uma atividade de CRM para a empresa
// @Tags         crm
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id      path string                    true "ID da empresa"
// @Param        request body dto.CreateActivityRequest true "Atividade"
// @Success      201 {object} dto.ActivityResponse
// @Failure      404 {object} dto.ErrorResponse
// @Router       /api/companies/{id}/activities [post]
func (h *CRMHandler) CreateActivity(c *fiber.Ctx) error {
	var req dto.CreateActivityRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "JSON inválido"})
	}
	if req.Tipo == "" || req.Descricao == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "tipo e descricao são obrigatórios"})
	}
	resp, err := h.uc.CreateActivity(GetUserID(c), c.Params("id"), req)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(resp)
}

// ListActivities godoc
// @Summary      Lista as atividades de uma empresa
// @Tags         crm
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "ID da empresa"
// @Success      200 {array} dto.ActivityResponse
// @Router       /api/companies/{id}/activities [get]
func (h *CRMHandler) ListActivities(c *fiber.Ctx) error {
	activities, err := h.uc.ListActivities(GetUserID(c), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(activities)
}

// ListPendingActivities godoc
// @Summary      Atividades pendentes do usuário em todas as empresas
// @Tags         crm
// @Produce      json
// @Security     BearerAuth
// @Success      200 {array} dto.ActivityResponse
// @Router       /api/crm/activities/pending [get]
func (h *CRMHandler) ListPendingActivities(c *fiber.Ctx) error {
	activities, err := h.uc.ListPendingActivities(GetUserID(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(activities)
}

// UpdateActivity godoc
// @Summary      Edita ou conclui uma atividade
// @Tags         crm
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id      path string                    true "ID da atividade"
// @Param        request body dto.UpdateActivityRequest true "Campos a alterar"
// @Success      200 {object} dto.ActivityResponse
// @Failure      404 {object} dto.ErrorResponse
// @Router       /api/crm/activities/{id} [put]
func (h *CRMHandler) UpdateActivity(c *fiber.Ctx) error {
	var req dto.UpdateActivityRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "JSON inválido"})
	}
	resp, err := h.uc.UpdateActivity(GetUserID(c), c.Params("id"), req)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(resp)
}

// DeleteActivity godoc
// @Summary      Exclui uma atividade
// @Tags         crm
// @Security     BearerAuth
// @Param        id path string true "ID da atividade"
// @Success      204
// @Failure      404 {object} dto.ErrorResponse
// @Router       /api/crm/activities/{id} [delete]
func (h *CRMHandler) DeleteActivity(c *fiber.Ctx) error {
	if err := h.uc.DeleteActivity(GetUserID(c), c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
