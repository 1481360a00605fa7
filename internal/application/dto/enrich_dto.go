package dto

import "time"

// AIExtractionDTO é a saída bruta do modelo de IA, antes da validação heurística.
// nil = o modelo não encontrou o campo com confiança (null no JSON).
type AIExtractionDTO struct {
	RazaoSocial  *string `json:"razao_social"`
	NomeFantasia *string `json:"nome_fantasia"`
	Website      *string `json:"website"`
	Email        *string `json:"email"`
	Instagram    *string `json:"instagram"`
	Facebook     *string `json:"facebook"`
	LinkedIn     *string `json:"linkedin"`
}

// EnrichResponse resultado do enriquecimento de uma empresa.
type EnrichResponse struct {
	CompanyID     string     `json:"company_id"`
	Website       *string    `json:"website,omitempty"`
	Email         *string    `json:"email,omitempty"`
	Instagram     *string    `json:"instagram,omitempty"`
	Facebook      *string    `json:"facebook,omitempty"`
	LinkedIn      *string    `json:"linkedin,omitempty"`
	ResumoIA      *string    `json:"resumo_ia,omitempty"`
	EnriquecidaEm *time.Time `json:"enriquecida_em"`
}

// BulkEnrichRequest ids das empresas a enriquecer em sequência.
type BulkEnrichRequest struct {
	IDs []string `json:"ids" validate:"required,min=1"`
}
