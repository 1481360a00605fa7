package ports

import (
	"context"

	"github.com/acheileads/achei-leads-api/internal/application/dto"
)

// CNAEQuery consulta de empresas por atividade econômica e localização.
type CNAEQuery struct {
	CNAE      string
	UF        string
	Municipio string
	Limite    int
}

// CEPQuery consulta de empresas por CEP (com CNAE opcional).
type CEPQuery struct {
	CEP    string
	CNAE   string
	Limite int
}

// CompanySearchProvider porta de saída para o provedor de busca de empresas
// (Casa dos Dados ou compatível). Os adaptadores devolvem os erros tipados do
// domínio (ErrProviderCredits, ErrProviderRateLimited, ErrProviderUnavailable,
// ErrProviderParse) para que o use case mapeie o status HTTP correto.
type CompanySearchProvider interface {
	SearchByCNAE(ctx context.Context, q CNAEQuery) ([]dto.CompanyResult, error)
	SearchByCEP(ctx context.Context, q CEPQuery) ([]dto.CompanyResult, error)
}

// CNPJLookupProvider porta de saída para consulta de CNPJ (CNPJá ou compatível).
type CNPJLookupProvider interface {
	LookupCNPJ(ctx context.Context, cnpjDigits string) (*dto.CompanyResult, error)
}

// PlacesProvider porta de saída para busca estilo Google Maps (Serper Places).
type PlacesProvider interface {
	SearchPlaces(ctx context.Context, consulta, cidade string) ([]dto.CompanyResult, error)
}

// WebResult é um resultado de busca web usado no fan-out do enriquecimento.
type WebResult struct {
	Titulo string
	Link   string
	Trecho string
}

// WebSearchProvider porta de saída para busca web genérica (Serper Search).
type WebSearchProvider interface {
	Search(ctx context.Context, query string) ([]WebResult, error)
}
