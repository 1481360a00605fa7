package ai

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractJSON_BlocoMarkdown(t *testing.T) {
	raw := "```json\n{\"email\": \"contato@empresa.com.br\"}\n```"
	assert.Equal(t, `{"email": "contato@empresa.com.br"}`, extractJSON(raw))
}

func TestExtractJSON_BlocoSemLinguagem(t *testing.T) {
	raw := "```\n{\"website\": null}\n```"
	assert.Equal(t, `{"website": null}`, extractJSON(raw))
}

func TestExtractJSON_JSONPuro(t *testing.T) {
	raw := `{"razao_social": "Padaria Estrela LTDA"}`
	assert.Equal(t, raw, extractJSON(raw))
}

func TestExtractJSON_TextoAoRedor(t *testing.T) {
	// Modelos às vezes ignoram a instrução e explicam antes do JSON.
	raw := "Aqui estão os dados extraídos:\n{\"email\": \"a@b.com\"}\nEspero ter ajudado!"
	assert.Equal(t, `{"email": "a@b.com"}`, extractJSON(raw))
}

func TestExtractJSON_SemJSON(t *testing.T) {
	assert.Empty(t, extractJSON("não encontrei nenhuma informação"))
}
