package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/acheileads/achei-leads-api/internal/application/dto"
	"github.com/acheileads/achei-leads-api/internal/application/usecase"
)

// CreditHandler expõe saldo, extrato e pacotes de créditos.
type CreditHandler struct {
	uc *usecase.CreditUseCase
}

// NewCreditHandler constrói o handler.
func NewCreditHandler(uc *usecase.CreditUseCase) *CreditHandler {
	return &CreditHandler{uc: uc}
}

// Balance godoc
// @Summary      Saldo de créditos do usuário
// @Tags         credits
// @Produce      json
// @Security     BearerAuth
// @Success      200 {object} dto.BalanceResponse
// @Router       /api/credits/balance [get]
func (h *CreditHandler) Balance(c *fiber.Ctx) error {
	resp, err := h.uc.Balance(GetUserID(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(resp)
}

// Transactions godoc
// @Summary      Extrato de créditos paginado
// @Tags         credits
// @Produce      json
// @Security     BearerAuth
// @Param        limit  query int false "Tamanho da página (padrão 20)"
// @Param        offset query int false "Deslocamento"
// @Success      200 {array} dto.TransactionResponse
// @Router       /api/credits/transactions [get]
func (h *CreditHandler) Transactions(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "parâmetros de consulta inválidos"})
	}
	page.DefaultPage()
	txs, meta, err := h.uc.Transactions(GetUserID(c), page)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"transacoes": txs, "page": meta})
}

// Packages godoc
// @Summary      Pacotes de créditos à venda
// @Tags         credits
// @Produce      json
// @Security     BearerAuth
// @Success      200 {array} dto.PackageResponse
// @Router       /api/credits/packages [get]
func (h *CreditHandler) Packages(c *fiber.Ctx) error {
	packages, err := h.uc.Packages()
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(packages)
}
