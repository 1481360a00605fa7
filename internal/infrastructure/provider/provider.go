// Package provider contém os adaptadores HTTP dos provedores externos de
// busca e pagamento. Todos mapeiam falhas para os erros tipados do domínio:
//
//	402 → domain.ErrProviderCredits      (créditos do provedor esgotados)
//	429 → domain.ErrProviderRateLimited  (quota do provedor)
//	corpo HTML → domain.ErrProviderUnavailable (provedor fora do ar / gateway)
//	JSON inválido → domain.ErrProviderParse
package provider

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/acheileads/achei-leads-api/internal/domain"
)

const maxBodySize = 1 << 20 // 1 MiB

// newHTTPClient cliente padrão dos adaptadores deste pacote.
func newHTTPClient() *http.Client {
	return &http.Client{Timeout: 30 * time.Second}
}

// doJSON executa a requisição, aplica a política de erros comum e decodifica o
// corpo JSON em out. headers extras vêm do adaptador (chave de API etc.).
func doJSON(ctx context.Context, client *http.Client, method, url string, headers map[string]string, payload, out any) error {
	var body io.Reader
	if payload != nil {
		b, err := json.Marshal(payload)
		if err != nil {
			return fmt.Errorf("provider: serializar request: %w", err)
		}
		body = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, body)
	if err != nil {
		return fmt.Errorf("provider: criar HTTP request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	resp, err := client.Do(req)
	if err != nil {
		if ctx.Err() != nil {
			return fmt.Errorf("provider: timeout ou cancelamento: %w", ctx.Err())
		}
		return fmt.Errorf("%w: %v", domain.ErrProviderUnavailable, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxBodySize))
	if err != nil {
		return fmt.Errorf("provider: ler resposta: %w", err)
	}

	switch resp.StatusCode {
	case http.StatusPaymentRequired:
		return domain.ErrProviderCredits
	case http.StatusTooManyRequests:
		return domain.ErrProviderRateLimited
	}

	// Gateways devolvem páginas HTML de erro no lugar do JSON esperado.
	if looksLikeHTML(raw) {
		return fmt.Errorf("%w: HTTP %d com corpo HTML", domain.ErrProviderUnavailable, resp.StatusCode)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("%w: HTTP %d: %s", domain.ErrProviderParse, resp.StatusCode, truncate(string(raw), 200))
	}

	if out != nil {
		if err := json.Unmarshal(raw, out); err != nil {
			return fmt.Errorf("%w: %v", domain.ErrProviderParse, err)
		}
	}
	return nil
}

func looksLikeHTML(body []byte) bool {
	trimmed := strings.TrimSpace(string(body))
	lower := strings.ToLower(trimmed)
	return strings.HasPrefix(lower, "<!doctype") || strings.HasPrefix(lower, "<html")
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
