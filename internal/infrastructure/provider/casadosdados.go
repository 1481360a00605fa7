package provider

import (
	"context"
	"net/http"
	"strings"

	"github.com/acheileads/achei-leads-api/internal/application/dto"
	"github.com/acheileads/achei-leads-api/internal/application/ports"
)

var _ ports.CompanySearchProvider = (*CasaDosDadosClient)(nil)

// CasaDosDadosClient adaptador do provedor de busca de empresas por CNAE/CEP.
type CasaDosDadosClient struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
}

// NewCasaDosDadosClient constrói o adaptador.
func NewCasaDosDadosClient(baseURL, apiKey string) *CasaDosDadosClient {
	return &CasaDosDadosClient{
		baseURL:    strings.TrimRight(baseURL, "/"),
		apiKey:     apiKey,
		httpClient: newHTTPClient(),
	}
}

// ── Estruturas do protocolo do provedor ───────────────────────────────────────

type cddQuery struct {
	AtividadePrincipal []string `json:"atividade_principal,omitempty"`
	UF                 []string `json:"uf,omitempty"`
	Municipio          []string `json:"municipio,omitempty"`
	CEP                []string `json:"cep,omitempty"`
	SituacaoCadastral  string   `json:"situacao_cadastral"`
}

type cddRequest struct {
	Query   cddQuery `json:"query"`
	Page    int      `json:"page"`
	PerPage int      `json:"per_page"`
}

type cddCompany struct {
	RazaoSocial   string `json:"razao_social"`
	NomeFantasia  string `json:"nome_fantasia"`
	CNPJ          string `json:"cnpj"`
	CNAEFiscal    string `json:"cnae_fiscal"`
	CNAEDescricao string `json:"cnae_fiscal_descricao"`
	Municipio     string `json:"municipio"`
	UF            string `json:"uf"`
	Logradouro    string `json:"logradouro"`
	Numero        string `json:"numero"`
	CEP           string `json:"cep"`
	Telefone1     string `json:"ddd_telefone_1"`
	Telefone2     string `json:"ddd_telefone_2"`
	Email         string `json:"email"`
}

type cddResponse struct {
	Data struct {
		Count    int          `json:"count"`
		Empresas []cddCompany `json:"cnpj"`
	} `json:"data"`
}

// ── Implementação das portas ──────────────────────────────────────────────────

// SearchByCNAE busca empresas por atividade econômica e localização.
func (c *CasaDosDadosClient) SearchByCNAE(ctx context.Context, q ports.CNAEQuery) ([]dto.CompanyResult, error) {
	req := cddRequest{
		Query: cddQuery{
			AtividadePrincipal: []string{q.CNAE},
			SituacaoCadastral:  "ATIVA",
		},
		Page:    1,
		PerPage: limiteOuPadrao(q.Limite),
	}
	if q.UF != "" {
		req.Query.UF = []string{q.UF}
	}
	if q.Municipio != "" {
		req.Query.Municipio = []string{q.Municipio}
	}
	return c.search(ctx, req)
}

// SearchByCEP busca empresas por CEP, com CNAE opcional.
func (c *CasaDosDadosClient) SearchByCEP(ctx context.Context, q ports.CEPQuery) ([]dto.CompanyResult, error) {
	req := cddRequest{
		Query: cddQuery{
			CEP:               []string{q.CEP},
			SituacaoCadastral: "ATIVA",
		},
		Page:    1,
		PerPage: limiteOuPadrao(q.Limite),
	}
	if q.CNAE != "" {
		req.Query.AtividadePrincipal = []string{q.CNAE}
	}
	return c.search(ctx, req)
}

func (c *CasaDosDadosClient) search(ctx context.Context, req cddRequest) ([]dto.CompanyResult, error) {
	headers := map[string]string{"api-key": c.apiKey}

	var resp cddResponse
	if err := doJSON(ctx, c.httpClient, http.MethodPost, c.baseURL, headers, req, &resp); err != nil {
		return nil, err
	}

	results := make([]dto.CompanyResult, 0, len(resp.Data.Empresas))
	for _, e := range resp.Data.Empresas {
		results = append(results, normalizeCDD(e))
	}
	return results, nil
}

// normalizeCDD converte o formato do provedor para o resultado comum.
func normalizeCDD(e cddCompany) dto.CompanyResult {
	nome := e.NomeFantasia
	if nome == "" {
		nome = e.RazaoSocial
	}

	endereco := strings.TrimSpace(e.Logradouro)
	if e.Numero != "" {
		endereco = strings.TrimSpace(endereco + ", " + e.Numero)
	}

	r := dto.CompanyResult{
		Nome:          nome,
		CNPJ:          e.CNPJ,
		CNAE:          e.CNAEFiscal,
		CNAEDescricao: e.CNAEDescricao,
		Cidade:        e.Municipio,
		UF:            e.UF,
		Endereco:      endereco,
		CEP:           e.CEP,
		Email:         e.Email,
	}
	for _, tel := range []string{e.Telefone1, e.Telefone2} {
		if tel == "" {
			continue
		}
		r.Telefones = append(r.Telefones, dto.PhoneResult{
			Numero: tel,
			Tipo:   tipoTelefone(tel),
		})
	}
	return r
}

// tipoTelefone classifica pelo nono dígito após o DDD (celulares começam com 9).
func tipoTelefone(numero string) string {
	digits := strings.Map(func(r rune) rune {
		if r >= '0' && r <= '9' {
			return r
		}
		return -1
	}, numero)
	if len(digits) >= 11 && digits[2] == '9' {
		return "celular"
	}
	return "fixo"
}

func limiteOuPadrao(limite int) int {
	if limite <= 0 || limite > 100 {
		return 20
	}
	return limite
}
