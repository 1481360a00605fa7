package provider

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/acheileads/achei-leads-api/internal/application/ports"
)

var _ ports.PaymentProvider = (*AbacatePayClient)(nil)

// Validade de uma cobrança PIX.
const pixExpiry = time.Hour

// AbacatePayClient adaptador do provedor de pagamentos PIX.
type AbacatePayClient struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
}

// NewAbacatePayClient constrói o adaptador.
func NewAbacatePayClient(baseURL, apiKey string) *AbacatePayClient {
	return &AbacatePayClient{
		baseURL:    strings.TrimRight(baseURL, "/"),
		apiKey:     apiKey,
		httpClient: newHTTPClient(),
	}
}

// ── Estruturas do protocolo do provedor ───────────────────────────────────────

type abacateCreateRequest struct {
	Amount      int64  `json:"amount"`    // centavos
	ExpiresIn   int    `json:"expiresIn"` // segundos
	Description string `json:"description"`
	ExternalID  string `json:"externalId"`
}

type abacateCharge struct {
	ID           string `json:"id"`
	BRCode       string `json:"brCode"`
	BRCodeBase64 string `json:"brCodeBase64"`
	Status       string `json:"status"`
}

type abacateResponse struct {
	Data abacateCharge `json:"data"`
}

// ── Implementação da porta ────────────────────────────────────────────────────

// CreateCharge cria uma cobrança PIX com validade de 1 hora.
func (c *AbacatePayClient) CreateCharge(ctx context.Context, valor decimal.Decimal, descricao, referencia string) (*ports.PixCharge, error) {
	req := abacateCreateRequest{
		Amount:      valor.Mul(decimal.NewFromInt(100)).IntPart(),
		ExpiresIn:   int(pixExpiry.Seconds()),
		Description: descricao,
		ExternalID:  referencia,
	}
	headers := map[string]string{"Authorization": "Bearer " + c.apiKey}

	var resp abacateResponse
	if err := doJSON(ctx, c.httpClient, http.MethodPost, c.baseURL+"/pixQrCode/create", headers, req, &resp); err != nil {
		return nil, err
	}
	if resp.Data.ID == "" {
		return nil, fmt.Errorf("provider: cobrança criada sem id")
	}

	return &ports.PixCharge{
		ProviderID:   resp.Data.ID,
		BRCode:       resp.Data.BRCode,
		QRCodeBase64: resp.Data.BRCodeBase64,
		Valor:        valor,
		ExpiraEm:     time.Now().Add(pixExpiry),
	}, nil
}

// GetChargeStatus consulta o status da cobrança no provedor e normaliza.
func (c *AbacatePayClient) GetChargeStatus(ctx context.Context, providerID string) (string, error) {
	headers := map[string]string{"Authorization": "Bearer " + c.apiKey}

	var resp abacateResponse
	url := c.baseURL + "/pixQrCode/check?id=" + providerID
	if err := doJSON(ctx, c.httpClient, http.MethodGet, url, headers, nil, &resp); err != nil {
		return "", err
	}

	switch strings.ToUpper(resp.Data.Status) {
	case "PAID", "COMPLETED":
		return ports.ChargePaid, nil
	case "EXPIRED", "CANCELLED":
		return ports.ChargeExpired, nil
	default:
		return ports.ChargePending, nil
	}
}
