package batch_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/acheileads/achei-leads-api/internal/application/batch"
)

func TestRun_TodosComSucesso(t *testing.T) {
	items := []string{"a", "b", "c"}
	r := batch.Run(items, func(s string) string { return s }, func(string) error { return nil })

	assert.Equal(t, 3, r.Total)
	assert.Equal(t, 3, r.Sucessos)
	assert.Equal(t, 0, r.Falhas)
}

func TestRun_ContinuaAposFalha(t *testing.T) {
	items := []string{"a", "b", "c"}
	r := batch.Run(items, func(s string) string { return s }, func(s string) error {
		if s == "b" {
			return errors.New("saldo insuficiente")
		}
		return nil
	})

	assert.Equal(t, 2, r.Sucessos)
	assert.Equal(t, 1, r.Falhas)
	// O lote segue a ordem de entrada e não interrompe no erro
	assert.True(t, r.Itens[0].Sucesso)
	assert.False(t, r.Itens[1].Sucesso)
	assert.Equal(t, "saldo insuficiente", r.Itens[1].Erro)
	assert.True(t, r.Itens[2].Sucesso)
}

func TestRun_ListaVazia(t *testing.T) {
	r := batch.Run(nil, func(s string) string { return s }, func(string) error { return nil })
	assert.Equal(t, 0, r.Total)
	assert.Empty(t, r.Itens)
}
