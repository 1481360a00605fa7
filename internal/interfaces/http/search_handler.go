package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/acheileads/achei-leads-api/internal/application/dto"
	"github.com/acheileads/achei-leads-api/internal/application/search"
)

// SearchHandler expõe as buscas de prospecção e as listas de referência.
type SearchHandler struct {
	uc     *search.SearchUseCase
	listas *search.ListasUseCase
}

// NewSearchHandler constrói o handler.
func NewSearchHandler(uc *search.SearchUseCase, listas *search.ListasUseCase) *SearchHandler {
	return &SearchHandler{uc: uc, listas: listas}
}

// ByCNAE godoc
// @Summary      Busca empresas por CNAE e localização
// @Tags         search
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body dto.SearchByCNAERequest true "Filtros da busca"
// @Success      200 {object} dto.SearchResponse
// @Failure      402 {object} dto.ErrorResponse
// @Failure      429 {object} dto.ErrorResponse
// @Failure      503 {object} dto.ErrorResponse
// @Router       /api/search/cnae [post]
func (h *SearchHandler) ByCNAE(c *fiber.Ctx) error {
	var req dto.SearchByCNAERequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "JSON inválido"})
	}
	if req.CNAE == "" || len(req.UF) != 2 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "cnae e uf (2 letras) são obrigatórios"})
	}
	resp, err := h.uc.ByCNAE(c.Context(), GetUserID(c), req)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(resp)
}

// ByCNPJ godoc
// @Summary      Consulta os dados cadastrais de um CNPJ
// @Tags         search
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body dto.SearchByCNPJRequest true "CNPJ com ou sem máscara"
// @Success      200 {object} dto.SearchResponse
// @Failure      400 {object} dto.ErrorResponse
// @Failure      429 {object} dto.ErrorResponse
// @Router       /api/search/cnpj [post]
func (h *SearchHandler) ByCNPJ(c *fiber.Ctx) error {
	var req dto.SearchByCNPJRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "JSON inválido"})
	}
	resp, err := h.uc.ByCNPJ(c.Context(), GetUserID(c), req)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(resp)
}

// ByCEP godoc
// @Summary      Busca empresas por CEP
// @Tags         search
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body dto.SearchByCEPRequest true "CEP e filtros"
// @Success      200 {object} dto.SearchResponse
// @Failure      429 {object} dto.ErrorResponse
// @Router       /api/search/cep [post]
func (h *SearchHandler) ByCEP(c *fiber.Ctx) error {
	var req dto.SearchByCEPRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "JSON inválido"})
	}
	if req.CEP == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "cep é obrigatório"})
	}
	resp, err := h.uc.ByCEP(c.Context(), GetUserID(c), req)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(resp)
}

// ByMaps godoc
// @Summary      Busca estabelecimentos no Google Maps
// @Tags         search
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body dto.SearchMapsRequest true "Consulta e cidade"
// @Success      200 {object} dto.SearchResponse
// @Failure      429 {object} dto.ErrorResponse
// @Router       /api/search/maps [post]
func (h *SearchHandler) ByMaps(c *fiber.Ctx) error {
	var req dto.SearchMapsRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "JSON inválido"})
	}
	if req.Consulta == "" || req.Cidade == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "consulta e cidade são obrigatórios"})
	}
	resp, err := h.uc.ByMaps(c.Context(), GetUserID(c), req)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(resp)
}

// ListCNAEs godoc
// @Summary      Lista de referência de CNAEs
// @Tags         listas
// @Produce      json
// @Security     BearerAuth
// @Param        filtro query string false "Filtro por código ou descrição (sem acentos)"
// @Success      200 {array} dto.CNAEItem
// @Router       /api/listas/cnaes [get]
func (h *SearchHandler) ListCNAEs(c *fiber.Ctx) error {
	items, err := h.listas.CNAEs(c.Context(), c.Query("filtro"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(items)
}

// ListMunicipios godoc
// @Summary      Lista de referência de municípios por UF
// @Tags         listas
// @Produce      json
// @Security     BearerAuth
// @Param        uf     query string true  "Sigla da UF"
// @Param        filtro query string false "Filtro por nome (sem acentos)"
// @Success      200 {array} dto.MunicipioItem
// @Router       /api/listas/municipios [get]
func (h *SearchHandler) ListMunicipios(c *fiber.Ctx) error {
	uf := c.Query("uf")
	if len(uf) != 2 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "uf (2 letras) é obrigatória"})
	}
	items, err := h.listas.Municipios(c.Context(), uf, c.Query("filtro"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(items)
}
