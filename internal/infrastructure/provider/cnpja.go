package provider

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/acheileads/achei-leads-api/internal/application/dto"
	"github.com/acheileads/achei-leads-api/internal/application/ports"
)

var _ ports.CNPJLookupProvider = (*CNPJAClient)(nil)

// CNPJAClient adaptador do provedor de consulta de CNPJ.
type CNPJAClient struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
}

// NewCNPJAClient constrói o adaptador.
func NewCNPJAClient(baseURL, apiKey string) *CNPJAClient {
	return &CNPJAClient{
		baseURL:    strings.TrimRight(baseURL, "/"),
		apiKey:     apiKey,
		httpClient: newHTTPClient(),
	}
}

// ── Estruturas do protocolo do provedor ───────────────────────────────────────

type cnpjaOffice struct {
	TaxID   string `json:"taxId"`
	Alias   string `json:"alias"`
	Company struct {
		Name string `json:"name"`
	} `json:"company"`
	MainActivity struct {
		ID   int    `json:"id"`
		Text string `json:"text"`
	} `json:"mainActivity"`
	Address struct {
		Street string `json:"street"`
		Number string `json:"number"`
		City   string `json:"city"`
		State  string `json:"state"`
		Zip    string `json:"zip"`
	} `json:"address"`
	Phones []struct {
		Area   string `json:"area"`
		Number string `json:"number"`
	} `json:"phones"`
	Emails []struct {
		Address string `json:"address"`
	} `json:"emails"`
}

// ── Implementação da porta ────────────────────────────────────────────────────

// LookupCNPJ consulta um estabelecimento pelo CNPJ (somente dígitos).
func (c *CNPJAClient) LookupCNPJ(ctx context.Context, cnpjDigits string) (*dto.CompanyResult, error) {
	headers := map[string]string{"Authorization": c.apiKey}

	var office cnpjaOffice
	url := c.baseURL + "/office/" + cnpjDigits
	if err := doJSON(ctx, c.httpClient, http.MethodGet, url, headers, nil, &office); err != nil {
		return nil, err
	}

	nome := office.Alias
	if nome == "" {
		nome = office.Company.Name
	}

	endereco := strings.TrimSpace(office.Address.Street)
	if office.Address.Number != "" {
		endereco = strings.TrimSpace(endereco + ", " + office.Address.Number)
	}

	r := &dto.CompanyResult{
		Nome:          nome,
		CNPJ:          office.TaxID,
		CNAE:          cnaeFromID(office.MainActivity.ID),
		CNAEDescricao: office.MainActivity.Text,
		Cidade:        office.Address.City,
		UF:            office.Address.State,
		Endereco:      endereco,
		CEP:           office.Address.Zip,
	}
	for _, p := range office.Phones {
		numero := p.Area + p.Number
		r.Telefones = append(r.Telefones, dto.PhoneResult{
			Numero: numero,
			Tipo:   tipoTelefone(numero),
		})
	}
	if len(office.Emails) > 0 {
		r.Email = office.Emails[0].Address
	}
	return r, nil
}

// cnaeFromID formata o código numérico do provedor como CNAE de 7 dígitos.
func cnaeFromID(id int) string {
	if id == 0 {
		return ""
	}
	return fmt.Sprintf("%07d", id)
}
