package ports

import (
	"context"

	"github.com/acheileads/achei-leads-api/internal/application/dto"
)

// ExtractionInput é o material de entrada da extração por IA: identificação da
// empresa mais o contexto concatenado dos trechos de busca web.
type ExtractionInput struct {
	Nome     string
	CNPJ     string
	Cidade   string
	UF       string
	Contexto string
}

// LLMService define a porta de saída para o modelo de linguagem que extrai
// contatos estruturados do texto de busca. Qualquer adaptador (OpenAI, Gemini,
// mock) deve implementar esta interface; o use case só conhece o contrato.
type LLMService interface {
	// ExtractCompanyContacts devolve os campos brutos extraídos pelo modelo
	// (antes da validação heurística). O contexto deve levar timeout.
	ExtractCompanyContacts(ctx context.Context, in ExtractionInput) (*dto.AIExtractionDTO, error)
}
