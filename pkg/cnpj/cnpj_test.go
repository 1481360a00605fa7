package cnpj_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/acheileads/achei-leads-api/pkg/cnpj"
)

// CNPJs reais de exemplo com DV correto.
const (
	cnpjValido     = "11222333000181" // DVs 8 e 1
	cnpjFormatado  = "11.222.333/0001-81"
	cnpjDVErrado   = "11222333000182"
	cnpjCurto      = "1122233300018"
	cnpjRepetido   = "11111111111111"
)

func TestValidate_CNPJValido(t *testing.T) {
	assert.NoError(t, cnpj.Validate(cnpjValido))
}

func TestValidate_AceitaPontuacao(t *testing.T) {
	assert.NoError(t, cnpj.Validate(cnpjFormatado))
}

func TestValidate_DVIncorreto(t *testing.T) {
	err := cnpj.Validate(cnpjDVErrado)
	assert.Error(t, err, "segundo DV alterado deve ser rejeitado")
}

func TestValidate_TamanhoErrado(t *testing.T) {
	assert.Error(t, cnpj.Validate(cnpjCurto))
	assert.Error(t, cnpj.Validate(""))
}

func TestValidate_DigitosRepetidos(t *testing.T) {
	assert.Error(t, cnpj.Validate(cnpjRepetido),
		"sequência repetida passa no módulo 11 mas não é um CNPJ real")
}

func TestNormalize(t *testing.T) {
	assert.Equal(t, "11222333000181", cnpj.Normalize(cnpjFormatado))
	assert.Equal(t, "", cnpj.Normalize("abc"))
}

func TestFormat(t *testing.T) {
	assert.Equal(t, cnpjFormatado, cnpj.Format(cnpjValido))
	// Entrada com tamanho errado volta intacta
	assert.Equal(t, "123", cnpj.Format("123"))
}
