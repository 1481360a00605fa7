// Package enrich implementa a pipeline de enriquecimento por IA: buscas web
// sequenciais, extração estruturada pelo modelo e validação heurística antes
// de gravar qualquer campo na empresa.
package enrich

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/acheileads/achei-leads-api/internal/application/batch"
	"github.com/acheileads/achei-leads-api/internal/application/dto"
	"github.com/acheileads/achei-leads-api/internal/application/ports"
	"github.com/acheileads/achei-leads-api/internal/domain"
	"github.com/acheileads/achei-leads-api/internal/domain/entity"
	"github.com/acheileads/achei-leads-api/internal/domain/repository"
)

// Parâmetros da coleta de contexto.
const (
	maxResultadosPorBusca = 5
	maxRunesPorTrecho     = 300
)

// CreditTxRunner contrato de transação de créditos: consumo e estorno com o
// saldo sob lock. Implementado pela infraestrutura.
type CreditTxRunner interface {
	RunCredit(ctx context.Context, fn func(creditRepo repository.CreditRepository) error) error
}

// EnrichUseCase pipeline de enriquecimento de empresa.
type EnrichUseCase struct {
	companyRepo repository.CompanyRepository
	webSearch   ports.WebSearchProvider
	llm         ports.LLMService
	txRunner    CreditTxRunner
	logger      zerolog.Logger
}

// NewEnrichUseCase constrói o caso de uso com as portas de saída.
func NewEnrichUseCase(
	companyRepo repository.CompanyRepository,
	webSearch ports.WebSearchProvider,
	llm ports.LLMService,
	txRunner CreditTxRunner,
	logger zerolog.Logger,
) *EnrichUseCase {
	return &EnrichUseCase{
		companyRepo: companyRepo,
		webSearch:   webSearch,
		llm:         llm,
		txRunner:    txRunner,
		logger:      logger,
	}
}

// Enrich enriquece uma empresa: consome 1 crédito, roda a pipeline e grava os
// campos validados. Se a pipeline falhar depois do consumo, o crédito é
// estornado (lançamento "estorno").
func (uc *EnrichUseCase) Enrich(ctx context.Context, userID, companyID string) (*dto.EnrichResponse, error) {
	company, err := uc.companyRepo.GetByID(userID, companyID)
	if err != nil {
		return nil, err
	}
	if company == nil {
		return nil, domain.ErrNotFound
	}

	if err := uc.consume(ctx, userID, company); err != nil {
		return nil, err
	}

	resp, err := uc.pipeline(ctx, company)
	if err != nil {
		uc.refund(ctx, userID, company)
		return nil, err
	}
	return resp, nil
}

// EnrichBulk enriquece em sequência, continuando após falhas individuais.
func (uc *EnrichUseCase) EnrichBulk(ctx context.Context, userID string, in dto.BulkEnrichRequest) *dto.BatchReport {
	report := batch.Run(in.IDs,
		func(id string) string { return id },
		func(id string) error {
			_, err := uc.Enrich(ctx, userID, id)
			return err
		})
	out := &dto.BatchReport{
		Total:    report.Total,
		Sucessos: report.Sucessos,
		Falhas:   report.Falhas,
		Itens:    make([]dto.BatchItemResult, 0, len(report.Itens)),
	}
	for _, i := range report.Itens {
		out.Itens = append(out.Itens, dto.BatchItemResult{ID: i.ID, Sucesso: i.Sucesso, Erro: i.Erro})
	}
	return out
}

// consume debita 1 crédito com o saldo sob lock. Saldo nunca fica negativo.
func (uc *EnrichUseCase) consume(ctx context.Context, userID string, company *entity.Company) error {
	return uc.txRunner.RunCredit(ctx, func(creditRepo repository.CreditRepository) error {
		saldo, err := creditRepo.GetBalanceForUpdate(userID)
		if err != nil {
			return err
		}
		if saldo < 1 {
			return domain.ErrInsufficientCredits
		}
		if err := creditRepo.AdjustBalance(userID, -1); err != nil {
			return err
		}
		return creditRepo.AddTransaction(&entity.CreditTransaction{
			ID:         uuid.New().String(),
			UserID:     userID,
			Tipo:       entity.CreditTipoConsumo,
			Quantidade: -1,
			Descricao:  fmt.Sprintf("Enriquecimento por IA: %s", company.Nome),
			Referencia: company.ID,
			CreatedAt:  time.Now(),
		})
	})
}

// refund estorna o crédito consumido quando a pipeline falha.
func (uc *EnrichUseCase) refund(ctx context.Context, userID string, company *entity.Company) {
	err := uc.txRunner.RunCredit(ctx, func(creditRepo repository.CreditRepository) error {
		if err := creditRepo.AdjustBalance(userID, 1); err != nil {
			return err
		}
		return creditRepo.AddTransaction(&entity.CreditTransaction{
			ID:         uuid.New().String(),
			UserID:     userID,
			Tipo:       entity.CreditTipoEstorno,
			Quantidade: 1,
			Descricao:  fmt.Sprintf("Estorno: enriquecimento falhou (%s)", company.Nome),
			Referencia: company.ID,
			CreatedAt:  time.Now(),
		})
	})
	if err != nil {
		uc.logger.Error().Err(err).Str("company_id", company.ID).Msg("estorno de crédito falhou")
	}
}

// pipeline coleta contexto, extrai via LLM, valida e grava.
func (uc *EnrichUseCase) pipeline(ctx context.Context, company *entity.Company) (*dto.EnrichResponse, error) {
	contexto, err := uc.collectContext(ctx, company)
	if err != nil {
		return nil, err
	}

	raw, err := uc.llm.ExtractCompanyContacts(ctx, ports.ExtractionInput{
		Nome:     company.Nome,
		CNPJ:     company.CNPJ,
		Cidade:   company.Cidade,
		UF:       company.UF,
		Contexto: contexto,
	})
	if err != nil {
		return nil, err
	}

	validated := ValidateExtraction(raw)

	// Só campos validados entram; campos não encontrados ficam como estão.
	if validated.Website != nil {
		company.Website = validated.Website
	}
	if validated.Email != nil {
		company.Email = validated.Email
	}
	if validated.Instagram != nil {
		company.Instagram = validated.Instagram
	}
	if validated.Facebook != nil {
		company.Facebook = validated.Facebook
	}
	if validated.LinkedIn != nil {
		company.LinkedIn = validated.LinkedIn
	}
	if resumo := buildResumo(validated); resumo != "" {
		company.ResumoIA = &resumo
	}

	now := time.Now()
	company.EnriquecidaEm = &now
	company.UpdatedAt = now

	if err := uc.companyRepo.Update(company); err != nil {
		return nil, err
	}

	return &dto.EnrichResponse{
		CompanyID:     company.ID,
		Website:       company.Website,
		Email:         company.Email,
		Instagram:     company.Instagram,
		Facebook:      company.Facebook,
		LinkedIn:      company.LinkedIn,
		ResumoIA:      company.ResumoIA,
		EnriquecidaEm: company.EnriquecidaEm,
	}, nil
}

// collectContext roda as três buscas em sequência (presença geral, contato,
// redes sociais) e concatena os trechos truncados. Falha individual de busca é
// tolerada; erro só quando todas falham.
func (uc *EnrichUseCase) collectContext(ctx context.Context, company *entity.Company) (string, error) {
	local := strings.TrimSpace(company.Cidade + " " + company.UF)
	queries := []string{
		strings.TrimSpace(company.Nome + " " + local),
		strings.TrimSpace(company.Nome + " " + local + " contato email telefone site"),
		strings.TrimSpace(company.Nome + " instagram facebook linkedin"),
	}

	var b strings.Builder
	falhas := 0
	for _, q := range queries {
		results, err := uc.webSearch.Search(ctx, q)
		if err != nil {
			falhas++
			uc.logger.Warn().Err(err).Str("query", q).Msg("busca web do enriquecimento falhou")
			continue
		}
		if len(results) > maxResultadosPorBusca {
			results = results[:maxResultadosPorBusca]
		}
		for _, r := range results {
			b.WriteString(r.Titulo)
			b.WriteString(" | ")
			b.WriteString(r.Link)
			b.WriteString("\n")
			b.WriteString(truncateRunes(r.Trecho, maxRunesPorTrecho))
			b.WriteString("\n\n")
		}
	}
	if falhas == len(queries) {
		return "", fmt.Errorf("%w: todas as buscas de contexto falharam", domain.ErrProviderUnavailable)
	}
	return b.String(), nil
}

// buildResumo compõe um resumo curto a partir dos nomes extraídos e validados.
func buildResumo(v *dto.AIExtractionDTO) string {
	var partes []string
	if v.RazaoSocial != nil {
		partes = append(partes, "Razão social: "+*v.RazaoSocial)
	}
	if v.NomeFantasia != nil {
		partes = append(partes, "Nome fantasia: "+*v.NomeFantasia)
	}
	return strings.Join(partes, ". ")
}

// truncateRunes corta por runas, não bytes, para não partir UTF-8 no meio.
func truncateRunes(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n])
}
