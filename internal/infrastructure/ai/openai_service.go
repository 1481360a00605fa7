package ai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"regexp"
	"strings"
	"time"

	"github.com/acheileads/achei-leads-api/internal/application/dto"
	"github.com/acheileads/achei-leads-api/internal/application/ports"
)

// Verificação em tempo de compilação de que OpenAIService implementa LLMService.
var _ ports.LLMService = (*OpenAIService)(nil)

const (
	openAIChatURL = "https://api.openai.com/v1/chat/completions"

	extractionSystemPrompt = `Você é um assistente de prospecção B2B no Brasil especializado em localizar contatos de empresas.
Devolva APENAS um objeto JSON válido (sem markdown, sem blocos de código` + " ```json" + `) com esta estrutura exata:
{
  "razao_social": "<razão social encontrada ou null>",
  "nome_fantasia": "<nome fantasia ou null>",
  "website": "<URL do site oficial ou null>",
  "email": "<e-mail de contato ou null>",
  "instagram": "<URL do perfil no Instagram ou null>",
  "facebook": "<URL da página no Facebook ou null>",
  "linkedin": "<URL da página no LinkedIn ou null>"
}

Regras:
- Use SOMENTE informações presentes no contexto fornecido. Nunca invente ou complete valores.
- Se um campo não aparecer no contexto com certeza, devolva null nesse campo.
- URLs devem ser completas, começando com http ou https.
- Não inclua texto fora do JSON. Apenas o objeto JSON.`
)

// OpenAIService adaptador que implementa LLMService usando a API REST da OpenAI
// (ou qualquer endpoint compatível com Chat Completions).
// Usa net/http da biblioteca padrão; não requer o SDK oficial.
type OpenAIService struct {
	baseURL    string
	apiKey     string
	model      string
	httpClient *http.Client
}

// NewOpenAIService constrói o adaptador.
// baseURL vazio usa a API pública da OpenAI; model costuma ser "gpt-4o-mini".
// Se apiKey estiver vazio as chamadas devolvem erro descritivo em vez de panic.
func NewOpenAIService(baseURL, apiKey, model string) *OpenAIService {
	if baseURL == "" {
		baseURL = openAIChatURL
	}
	return &OpenAIService{
		baseURL: baseURL,
		apiKey:  apiKey,
		model:   model,
		httpClient: &http.Client{
			// Timeout de rede de 25 s; o use case impõe ainda um context.WithTimeout.
			Timeout: 25 * time.Second,
		},
	}
}

// ── Estruturas internas do protocolo Chat Completions ─────────────────────────

type openAIRequest struct {
	Model       string          `json:"model"`
	Temperature float64         `json:"temperature"`
	Messages    []openAIMessage `json:"messages"`
}

type openAIMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type openAIResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
	Error *struct {
		Type    string `json:"type"`
		Message string `json:"message"`
	} `json:"error"`
}

// jsonBlockRe extrai o primeiro objeto JSON do texto mesmo que o modelo o
// envolva em markdown. Captura do primeiro '{' até o último '}'.
var jsonBlockRe = regexp.MustCompile(`(?s)\{.*\}`)

// ── Implementação da porta ────────────────────────────────────────────────────

// ExtractCompanyContacts envia a identificação da empresa e o contexto de busca
// web ao modelo e devolve os campos extraídos, ainda sem validação heurística.
func (s *OpenAIService) ExtractCompanyContacts(ctx context.Context, in ports.ExtractionInput) (*dto.AIExtractionDTO, error) {
	if s.apiKey == "" {
		return nil, fmt.Errorf("AI: OPENAI_API_KEY não configurado")
	}

	userContent := fmt.Sprintf("Empresa: %s\nCNPJ: %s\nCidade: %s/%s\n\nContexto de busca web:\n%s",
		in.Nome, in.CNPJ, in.Cidade, in.UF, in.Contexto)

	payload := openAIRequest{
		Model:       s.model,
		Temperature: 0,
		Messages: []openAIMessage{
			{Role: "system", Content: extractionSystemPrompt},
			{Role: "user", Content: userContent},
		},
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("AI: serializar request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.baseURL, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("AI: criar HTTP request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+s.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.httpClient.Do(req)
	if err != nil {
		if ctx.Err() != nil {
			return nil, fmt.Errorf("AI: timeout ou cancelamento: %w", ctx.Err())
		}
		return nil, fmt.Errorf("AI: chamada HTTP falhou: %w", err)
	}
	defer resp.Body.Close()

	rawBody, err := io.ReadAll(io.LimitReader(resp.Body, 64*1024))
	if err != nil {
		return nil, fmt.Errorf("AI: ler resposta: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		var errResp openAIResponse
		if jsonErr := json.Unmarshal(rawBody, &errResp); jsonErr == nil && errResp.Error != nil {
			return nil, fmt.Errorf("AI: OpenAI error (%s): %s", errResp.Error.Type, errResp.Error.Message)
		}
		return nil, fmt.Errorf("AI: OpenAI HTTP %d: %s", resp.StatusCode, string(rawBody))
	}

	var oaResp openAIResponse
	if err := json.Unmarshal(rawBody, &oaResp); err != nil {
		return nil, fmt.Errorf("AI: desserializar resposta OpenAI: %w", err)
	}

	if len(oaResp.Choices) == 0 {
		return nil, fmt.Errorf("AI: modelo devolveu resposta vazia")
	}

	rawText := oaResp.Choices[0].Message.Content

	// Parse seguro: extrair só o bloco JSON mesmo que o modelo adicione texto.
	cleanJSON := extractJSON(rawText)
	if cleanJSON == "" {
		return nil, fmt.Errorf("AI: nenhum JSON válido na resposta do modelo (resposta: %s)", rawText)
	}

	var extraction dto.AIExtractionDTO
	if err := json.Unmarshal([]byte(cleanJSON), &extraction); err != nil {
		return nil, fmt.Errorf("AI: parsear JSON de extração: %w (JSON extraído: %s)", err, cleanJSON)
	}

	return &extraction, nil
}

// extractJSON extrai o primeiro objeto JSON bem formado de um texto livre.
// Estratégia em dois passos:
//  1. Remover blocos de código markdown (```json … ``` ou ``` … ```).
//  2. Usar regex para capturar o primeiro bloco { … }.
func extractJSON(text string) string {
	text = strings.TrimSpace(text)
	if idx := strings.Index(text, "```"); idx != -1 {
		// Tirar a linha de abertura (```json ou ```)
		after := text[idx+3:]
		if nl := strings.Index(after, "\n"); nl != -1 {
			after = after[nl+1:]
		}
		// Tirar o fechamento ```
		if close := strings.LastIndex(after, "```"); close != -1 {
			after = after[:close]
		}
		text = strings.TrimSpace(after)
	}

	if strings.HasPrefix(text, "{") {
		return text
	}

	match := jsonBlockRe.FindString(text)
	return strings.TrimSpace(match)
}
