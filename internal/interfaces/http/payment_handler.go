package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/acheileads/achei-leads-api/internal/application/billing"
	"github.com/acheileads/achei-leads-api/internal/application/dto"
)

// PaymentHandler expõe a compra de créditos via PIX.
type PaymentHandler struct {
	uc      *billing.PixUseCase
	watcher *billing.Watcher
}

// NewPaymentHandler constrói o handler.
func NewPaymentHandler(uc *billing.PixUseCase, watcher *billing.Watcher) *PaymentHandler {
	return &PaymentHandler{uc: uc, watcher: watcher}
}

// CreateCharge godoc
// @Summary      Cria uma cobrança PIX para um pacote de créditos
// @Description  Devolve BR Code e QR Code; o servidor acompanha o pagamento a cada 3s
// @Tags         payments
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body dto.CreatePixRequest true "Pacote"
// @Success      201 {object} dto.PixPaymentResponse
// @Failure      404 {object} dto.ErrorResponse
// @Router       /api/payments/pix [post]
func (h *PaymentHandler) CreateCharge(c *fiber.Ctx) error {
	var req dto.CreatePixRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "JSON inválido"})
	}
	if req.PackageID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "package_id é obrigatório"})
	}
	userID := GetUserID(c)
	resp, err := h.uc.CreateCharge(c.Context(), userID, req)
	if err != nil {
		return respondError(c, err)
	}
	h.watcher.Start(userID, resp.ID, resp.ExpiraEm)
	return c.Status(fiber.StatusCreated).JSON(resp)
}

// CheckStatus godoc
// @Summary      Consulta o status de uma cobrança PIX
// @Description  Confirmação credita o pacote; a operação é idempotente
// @Tags         payments
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "ID da cobrança"
// @Success      200 {object} dto.PixPaymentResponse
// @Failure      410 {object} dto.ErrorResponse
// @Router       /api/payments/pix/{id}/status [get]
func (h *PaymentHandler) CheckStatus(c *fiber.Ctx) error {
	resp, err := h.uc.CheckStatus(c.Context(), GetUserID(c), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(resp)
}

// GetPayment godoc
// @Summary      Detalha uma cobrança PIX
// @Tags         payments
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "ID da cobrança"
// @Success      200 {object} dto.PixPaymentResponse
// @Failure      404 {object} dto.ErrorResponse
// @Router       /api/payments/pix/{id} [get]
func (h *PaymentHandler) GetPayment(c *fiber.Ctx) error {
	resp, err := h.uc.GetPayment(GetUserID(c), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(resp)
}

// StopWatch godoc
// @Summary      Para o acompanhamento de uma cobrança (fechamento do dialog)
// @Tags         payments
// @Security     BearerAuth
// @Param        id path string true "ID da cobrança"
// @Success      204
// @Router       /api/payments/pix/{id}/watch [delete]
func (h *PaymentHandler) StopWatch(c *fiber.Ctx) error {
	h.watcher.Stop(c.Params("id"))
	return c.SendStatus(fiber.StatusNoContent)
}
