package enrich_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/acheileads/achei-leads-api/internal/application/dto"
	"github.com/acheileads/achei-leads-api/internal/application/enrich"
)

func ptr(s string) *string { return &s }

func TestValidateExtraction_DescartaValoresComAsterisco(t *testing.T) {
	out := enrich.ValidateExtraction(&dto.AIExtractionDTO{
		RazaoSocial: ptr("Empresa *** LTDA"),
		Email:       ptr("contato@empresa.com.br"),
	})
	require.NotNil(t, out)

	// O modelo às vezes devolve máscaras censuradas; nunca persistimos isso.
	assert.Nil(t, out.RazaoSocial)
	assert.Equal(t, "contato@empresa.com.br", *out.Email)
}

func TestValidateExtraction_URLsPrecisamDeEsquemaHTTP(t *testing.T) {
	out := enrich.ValidateExtraction(&dto.AIExtractionDTO{
		Website:   ptr("www.empresa.com.br"), // sem esquema
		Instagram: ptr("https://instagram.com/empresa"),
	})

	assert.Nil(t, out.Website)
	assert.Equal(t, "https://instagram.com/empresa", *out.Instagram)
}

func TestValidateExtraction_RedeSocialExigeDominioDaPlataforma(t *testing.T) {
	out := enrich.ValidateExtraction(&dto.AIExtractionDTO{
		Instagram: ptr("https://outrosite.com/empresa"),
		Facebook:  ptr("https://facebook.com/empresa"),
		LinkedIn:  ptr("https://linkedin.com/company/empresa"),
	})

	assert.Nil(t, out.Instagram, "link que não aponta para instagram.com deve ser descartado")
	assert.NotNil(t, out.Facebook)
	assert.NotNil(t, out.LinkedIn)
}

func TestValidateExtraction_EmailSemArroba(t *testing.T) {
	out := enrich.ValidateExtraction(&dto.AIExtractionDTO{
		Email: ptr("contato.empresa.com.br"),
	})
	assert.Nil(t, out.Email)
}

func TestValidateExtraction_TrimEStringVazia(t *testing.T) {
	out := enrich.ValidateExtraction(&dto.AIExtractionDTO{
		RazaoSocial:  ptr("  Padaria Estrela LTDA  "),
		NomeFantasia: ptr("   "),
	})

	require.NotNil(t, out.RazaoSocial)
	assert.Equal(t, "Padaria Estrela LTDA", *out.RazaoSocial)
	assert.Nil(t, out.NomeFantasia, "valor só com espaços vira nil")
}

func TestValidateExtraction_EntradaNula(t *testing.T) {
	out := enrich.ValidateExtraction(nil)
	require.NotNil(t, out)
	assert.Nil(t, out.RazaoSocial)
	assert.Nil(t, out.Email)
}
