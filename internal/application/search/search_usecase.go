// Package search implementa as buscas de empresas contra provedores externos.
// Todas seguem o mesmo pipeline linear: usuário autenticado → verificação e
// consumo da quota em janela fixa → registro de auditoria → chamada ao
// provedor → normalização para o resultado comum.
package search

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/acheileads/achei-leads-api/internal/application/dto"
	"github.com/acheileads/achei-leads-api/internal/application/ports"
	"github.com/acheileads/achei-leads-api/internal/domain"
	"github.com/acheileads/achei-leads-api/internal/domain/entity"
	"github.com/acheileads/achei-leads-api/internal/domain/repository"
	"github.com/acheileads/achei-leads-api/pkg/cnpj"
)

// Nomes de endpoint registrados na auditoria e usados como chave de quota.
const (
	EndpointCNAE = "search-by-cnae"
	EndpointCNPJ = "search-cnpja"
	EndpointCEP  = "search-by-cep"
	EndpointMaps = "search-google-maps"
)

// SearchUseCase orquestra as quatro buscas de empresa.
type SearchUseCase struct {
	limiter     ports.RateLimiter
	auditRepo   repository.AuditRepository
	companyProv ports.CompanySearchProvider
	cnpjProv    ports.CNPJLookupProvider
	placesProv  ports.PlacesProvider
}

// NewSearchUseCase constrói o caso de uso com as portas de saída.
func NewSearchUseCase(
	limiter ports.RateLimiter,
	auditRepo repository.AuditRepository,
	companyProv ports.CompanySearchProvider,
	cnpjProv ports.CNPJLookupProvider,
	placesProv ports.PlacesProvider,
) *SearchUseCase {
	return &SearchUseCase{
		limiter:     limiter,
		auditRepo:   auditRepo,
		companyProv: companyProv,
		cnpjProv:    cnpjProv,
		placesProv:  placesProv,
	}
}

// ByCNAE busca empresas por atividade econômica e localização.
func (uc *SearchUseCase) ByCNAE(ctx context.Context, userID string, in dto.SearchByCNAERequest) (*dto.SearchResponse, error) {
	if err := uc.gate(ctx, userID, EndpointCNAE, in); err != nil {
		return nil, err
	}
	results, err := uc.companyProv.SearchByCNAE(ctx, ports.CNAEQuery{
		CNAE:      in.CNAE,
		UF:        in.UF,
		Municipio: in.Municipio,
		Limite:    in.Limite,
	})
	if err != nil {
		return nil, err
	}
	return toSearchResponse(results), nil
}

// ByCNPJ consulta um CNPJ. O dígito verificador é validado localmente antes de
// gastar quota ou chamar o provedor; o resultado é uma lista de um item.
func (uc *SearchUseCase) ByCNPJ(ctx context.Context, userID string, in dto.SearchByCNPJRequest) (*dto.SearchResponse, error) {
	digits := cnpj.Normalize(in.CNPJ)
	if err := cnpj.Validate(digits); err != nil {
		return nil, domain.ErrInvalidInput
	}
	if err := uc.gate(ctx, userID, EndpointCNPJ, in); err != nil {
		return nil, err
	}
	result, err := uc.cnpjProv.LookupCNPJ(ctx, digits)
	if err != nil {
		return nil, err
	}
	if result == nil {
		return toSearchResponse(nil), nil
	}
	return toSearchResponse([]dto.CompanyResult{*result}), nil
}

// ByCEP busca empresas por CEP, com CNAE opcional.
func (uc *SearchUseCase) ByCEP(ctx context.Context, userID string, in dto.SearchByCEPRequest) (*dto.SearchResponse, error) {
	if err := uc.gate(ctx, userID, EndpointCEP, in); err != nil {
		return nil, err
	}
	results, err := uc.companyProv.SearchByCEP(ctx, ports.CEPQuery{
		CEP:    in.CEP,
		CNAE:   in.CNAE,
		Limite: in.Limite,
	})
	if err != nil {
		return nil, err
	}
	return toSearchResponse(results), nil
}

// ByMaps busca estabelecimentos no estilo Google Maps.
func (uc *SearchUseCase) ByMaps(ctx context.Context, userID string, in dto.SearchMapsRequest) (*dto.SearchResponse, error) {
	if err := uc.gate(ctx, userID, EndpointMaps, in); err != nil {
		return nil, err
	}
	results, err := uc.placesProv.SearchPlaces(ctx, in.Consulta, in.Cidade)
	if err != nil {
		return nil, err
	}
	return toSearchResponse(results), nil
}

// gate aplica quota e auditoria, nessa ordem. Quota estourada devolve
// ErrRateLimited SEM chamar o provedor; a requisição barrada também é auditada.
func (uc *SearchUseCase) gate(ctx context.Context, userID, endpoint string, params any) error {
	allowed, _, err := uc.limiter.Allow(ctx, userID, endpoint)
	if err != nil {
		return err
	}

	status := http.StatusOK
	if !allowed {
		status = http.StatusTooManyRequests
	}
	uc.audit(userID, endpoint, params, status)

	if !allowed {
		return domain.ErrRateLimited
	}
	return nil
}

// audit registra a chamada; falha de auditoria não bloqueia a busca.
func (uc *SearchUseCase) audit(userID, endpoint string, params any, status int) {
	body, err := json.Marshal(params)
	if err != nil {
		body = []byte("{}")
	}
	_ = uc.auditRepo.Create(&entity.APIAuditLog{
		ID:         uuid.New().String(),
		UserID:     userID,
		Endpoint:   endpoint,
		Parametros: string(body),
		Status:     status,
		CreatedAt:  time.Now(),
	})
}

func toSearchResponse(results []dto.CompanyResult) *dto.SearchResponse {
	if results == nil {
		results = []dto.CompanyResult{}
	}
	return &dto.SearchResponse{Resultados: results, Total: len(results)}
}
