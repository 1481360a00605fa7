package provider

import (
	"context"
	"net/http"
	"strings"

	"github.com/acheileads/achei-leads-api/internal/application/dto"
	"github.com/acheileads/achei-leads-api/internal/application/ports"
)

var _ ports.PlacesProvider = (*SerperClient)(nil)
var _ ports.WebSearchProvider = (*SerperClient)(nil)

// SerperClient adaptador do provedor de busca web e de locais (Serper).
// Atende duas portas: PlacesProvider (busca estilo Google Maps) e
// WebSearchProvider (fan-out do enriquecimento).
type SerperClient struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
}

// NewSerperClient constrói o adaptador.
func NewSerperClient(baseURL, apiKey string) *SerperClient {
	return &SerperClient{
		baseURL:    strings.TrimRight(baseURL, "/"),
		apiKey:     apiKey,
		httpClient: newHTTPClient(),
	}
}

// ── Estruturas do protocolo do provedor ───────────────────────────────────────

type serperRequest struct {
	Q  string `json:"q"`
	GL string `json:"gl"`
	HL string `json:"hl"`
}

type serperPlace struct {
	Title       string `json:"title"`
	Address     string `json:"address"`
	PhoneNumber string `json:"phoneNumber"`
	Website     string `json:"website"`
}

type serperPlacesResponse struct {
	Places []serperPlace `json:"places"`
}

type serperOrganic struct {
	Title   string `json:"title"`
	Link    string `json:"link"`
	Snippet string `json:"snippet"`
}

type serperSearchResponse struct {
	Organic []serperOrganic `json:"organic"`
}

// ── Implementação das portas ──────────────────────────────────────────────────

// SearchPlaces busca estabelecimentos no estilo Google Maps.
func (c *SerperClient) SearchPlaces(ctx context.Context, consulta, cidade string) ([]dto.CompanyResult, error) {
	q := consulta
	if cidade != "" {
		q = consulta + " em " + cidade
	}
	req := serperRequest{Q: q, GL: "br", HL: "pt-br"}
	headers := map[string]string{"X-API-KEY": c.apiKey}

	var resp serperPlacesResponse
	if err := doJSON(ctx, c.httpClient, http.MethodPost, c.baseURL+"/places", headers, req, &resp); err != nil {
		return nil, err
	}

	results := make([]dto.CompanyResult, 0, len(resp.Places))
	for _, p := range resp.Places {
		r := dto.CompanyResult{
			Nome:     p.Title,
			Cidade:   cidade,
			Endereco: p.Address,
			Website:  p.Website,
		}
		if p.PhoneNumber != "" {
			r.Telefones = append(r.Telefones, dto.PhoneResult{
				Numero: p.PhoneNumber,
				Tipo:   tipoTelefone(p.PhoneNumber),
			})
		}
		results = append(results, r)
	}
	return results, nil
}

// Search faz uma busca web genérica e devolve os resultados orgânicos.
func (c *SerperClient) Search(ctx context.Context, query string) ([]ports.WebResult, error) {
	req := serperRequest{Q: query, GL: "br", HL: "pt-br"}
	headers := map[string]string{"X-API-KEY": c.apiKey}

	var resp serperSearchResponse
	if err := doJSON(ctx, c.httpClient, http.MethodPost, c.baseURL+"/search", headers, req, &resp); err != nil {
		return nil, err
	}

	results := make([]ports.WebResult, 0, len(resp.Organic))
	for _, o := range resp.Organic {
		results = append(results, ports.WebResult{
			Titulo: o.Title,
			Link:   o.Link,
			Trecho: o.Snippet,
		})
	}
	return results, nil
}
