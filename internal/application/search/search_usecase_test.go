package search_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/acheileads/achei-leads-api/internal/application/dto"
	"github.com/acheileads/achei-leads-api/internal/application/ports"
	"github.com/acheileads/achei-leads-api/internal/application/search"
	"github.com/acheileads/achei-leads-api/internal/domain"
	"github.com/acheileads/achei-leads-api/internal/domain/entity"
)

const searchTestUser = "00000000-0000-0000-0000-000000000004"

// cnpjValido passa no dígito verificador.
const cnpjValido = "11222333000181"

// ── Fakes das portas de saída ─────────────────────────────────────────────────

type fakeLimiter struct {
	allowed   bool
	remaining int
	calls     int
}

func (l *fakeLimiter) Allow(_ context.Context, _, _ string) (bool, int, error) {
	l.calls++
	return l.allowed, l.remaining, nil
}

type fakeAuditRepo struct {
	logs []*entity.APIAuditLog
}

func (r *fakeAuditRepo) Create(log *entity.APIAuditLog) error {
	cp := *log
	r.logs = append(r.logs, &cp)
	return nil
}

type fakeSearchProviders struct {
	searchCalls int
	lookupCalls int
	placesCalls int
	results     []dto.CompanyResult
}

func (p *fakeSearchProviders) SearchByCNAE(_ context.Context, _ ports.CNAEQuery) ([]dto.CompanyResult, error) {
	p.searchCalls++
	return p.results, nil
}

func (p *fakeSearchProviders) SearchByCEP(_ context.Context, _ ports.CEPQuery) ([]dto.CompanyResult, error) {
	p.searchCalls++
	return p.results, nil
}

func (p *fakeSearchProviders) LookupCNPJ(_ context.Context, _ string) (*dto.CompanyResult, error) {
	p.lookupCalls++
	if len(p.results) == 0 {
		return nil, nil
	}
	return &p.results[0], nil
}

func (p *fakeSearchProviders) SearchPlaces(_ context.Context, _, _ string) ([]dto.CompanyResult, error) {
	p.placesCalls++
	return p.results, nil
}

func buildSearchUC(allowed bool) (*search.SearchUseCase, *fakeLimiter, *fakeAuditRepo, *fakeSearchProviders) {
	limiter := &fakeLimiter{allowed: allowed, remaining: 10}
	audit := &fakeAuditRepo{}
	prov := &fakeSearchProviders{results: []dto.CompanyResult{{Nome: "Padaria Estrela", CNPJ: cnpjValido}}}
	uc := search.NewSearchUseCase(limiter, audit, prov, prov, prov)
	return uc, limiter, audit, prov
}

// ── Testes ────────────────────────────────────────────────────────────────────

func TestByCNAE_DentroDaQuota(t *testing.T) {
	uc, limiter, audit, prov := buildSearchUC(true)

	resp, err := uc.ByCNAE(context.Background(), searchTestUser, dto.SearchByCNAERequest{
		CNAE: "5611-2/01", UF: "SP", Municipio: "São Paulo",
	})
	require.NoError(t, err)

	assert.Equal(t, 1, resp.Total)
	assert.Equal(t, 1, limiter.calls)
	assert.Equal(t, 1, prov.searchCalls)

	// Toda chamada é auditada, com o status que foi devolvido.
	require.Len(t, audit.logs, 1)
	assert.Equal(t, search.EndpointCNAE, audit.logs[0].Endpoint)
	assert.Equal(t, 200, audit.logs[0].Status)
}

func TestByCNAE_QuotaEstouradaNaoChamaProvedor(t *testing.T) {
	uc, _, audit, prov := buildSearchUC(false)

	_, err := uc.ByCNAE(context.Background(), searchTestUser, dto.SearchByCNAERequest{
		CNAE: "5611-2/01", UF: "SP",
	})
	require.ErrorIs(t, err, domain.ErrRateLimited)

	assert.Equal(t, 0, prov.searchCalls, "quota estourada não pode gastar chamada do provedor")

	// A chamada bloqueada também fica na auditoria, com status 429.
	require.Len(t, audit.logs, 1)
	assert.Equal(t, 429, audit.logs[0].Status)
}

func TestByCNPJ_InvalidoNaoGastaQuota(t *testing.T) {
	uc, limiter, audit, prov := buildSearchUC(true)

	_, err := uc.ByCNPJ(context.Background(), searchTestUser, dto.SearchByCNPJRequest{CNPJ: "11222333000100"})
	require.ErrorIs(t, err, domain.ErrInvalidInput)

	// Dígito verificador inválido é barrado antes do gate: nada de quota,
	// auditoria ou provedor.
	assert.Equal(t, 0, limiter.calls)
	assert.Empty(t, audit.logs)
	assert.Equal(t, 0, prov.lookupCalls)
}

func TestByCNPJ_ValidoComMascara(t *testing.T) {
	uc, _, _, prov := buildSearchUC(true)

	resp, err := uc.ByCNPJ(context.Background(), searchTestUser, dto.SearchByCNPJRequest{CNPJ: "11.222.333/0001-81"})
	require.NoError(t, err)

	assert.Equal(t, 1, prov.lookupCalls)
	require.Equal(t, 1, resp.Total)
	assert.Equal(t, cnpjValido, resp.Resultados[0].CNPJ)
}

func TestByMaps_ResultadoVazioNaoEhNil(t *testing.T) {
	uc, _, _, prov := buildSearchUC(true)
	prov.results = nil

	resp, err := uc.ByMaps(context.Background(), searchTestUser, dto.SearchMapsRequest{
		Consulta: "padarias", Cidade: "Campinas",
	})
	require.NoError(t, err)

	assert.NotNil(t, resp.Resultados, "lista vazia serializa como [], nunca null")
	assert.Equal(t, 0, resp.Total)
}
