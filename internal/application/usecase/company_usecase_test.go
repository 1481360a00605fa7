package usecase_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/acheileads/achei-leads-api/internal/application/dto"
	"github.com/acheileads/achei-leads-api/internal/application/usecase"
	"github.com/acheileads/achei-leads-api/internal/domain/entity"
)

const importTestUser = "00000000-0000-0000-0000-000000000001"

func buildCompanyUC(saldoInicial int) (*usecase.CompanyUseCase, *fakeCompanyRepo, *fakePhoneRepo, *fakeCreditRepo) {
	companyRepo := newFakeCompanyRepo()
	phoneRepo := newFakePhoneRepo()
	creditRepo := newFakeCreditRepo()
	creditRepo.saldos[importTestUser] = saldoInicial
	runner := &fakeImportTxRunner{creditRepo: creditRepo, companyRepo: companyRepo, phoneRepo: phoneRepo}
	uc := usecase.NewCompanyUseCase(companyRepo, phoneRepo, creditRepo, runner)
	return uc, companyRepo, phoneRepo, creditRepo
}

func TestImport_ConsomeUmCreditoPorEmpresa(t *testing.T) {
	uc, companyRepo, phoneRepo, creditRepo := buildCompanyUC(5)

	report, err := uc.Import(context.Background(), importTestUser, dto.ImportRequest{
		Empresas: []dto.CompanyResult{
			{
				Nome: "Padaria Estrela",
				CNPJ: "11.222.333/0001-81",
				Telefones: []dto.PhoneResult{
					{Numero: "11999990000", Tipo: "celular", WhatsApp: true},
				},
			},
			{Nome: "Mercado Central", Cidade: "Campinas", UF: "SP"},
		},
	})
	require.NoError(t, err)

	assert.Equal(t, 2, report.Sucessos)
	assert.Equal(t, 0, report.Falhas)
	assert.Equal(t, 3, creditRepo.saldos[importTestUser], "2 importações devem consumir 2 créditos")
	assert.Len(t, companyRepo.companies, 2)
	assert.Len(t, phoneRepo.phones, 1)

	// Cada consumo gera um lançamento de -1 no extrato.
	require.Len(t, creditRepo.txs, 2)
	for _, tx := range creditRepo.txs {
		assert.Equal(t, entity.CreditTipoConsumo, tx.Tipo)
		assert.Equal(t, -1, tx.Quantidade)
		assert.NotEmpty(t, tx.Referencia)
	}
}

func TestImport_SaldoInsuficienteNaoImporta(t *testing.T) {
	uc, companyRepo, _, creditRepo := buildCompanyUC(1)

	report, err := uc.Import(context.Background(), importTestUser, dto.ImportRequest{
		Empresas: []dto.CompanyResult{
			{Nome: "Empresa A"},
			{Nome: "Empresa B"},
			{Nome: "Empresa C"},
		},
	})
	require.NoError(t, err)

	// Só a primeira cabe no saldo; as demais falham e o lote continua.
	assert.Equal(t, 1, report.Sucessos)
	assert.Equal(t, 2, report.Falhas)
	assert.Equal(t, 0, creditRepo.saldos[importTestUser])
	assert.Len(t, companyRepo.companies, 1)
}

func TestImport_CNPJDuplicadoEhPulado(t *testing.T) {
	uc, companyRepo, _, creditRepo := buildCompanyUC(10)

	first, err := uc.Import(context.Background(), importTestUser, dto.ImportRequest{
		Empresas: []dto.CompanyResult{{Nome: "Padaria Estrela", CNPJ: "11222333000181"}},
	})
	require.NoError(t, err)
	require.Equal(t, 1, first.Sucessos)

	// Mesma empresa de novo, agora com máscara: deve ser detectada como duplicada.
	second, err := uc.Import(context.Background(), importTestUser, dto.ImportRequest{
		Empresas: []dto.CompanyResult{{Nome: "Padaria Estrela", CNPJ: "11.222.333/0001-81"}},
	})
	require.NoError(t, err)

	assert.Equal(t, 0, second.Sucessos)
	assert.Equal(t, 1, second.Falhas)
	assert.Len(t, companyRepo.companies, 1)
	assert.Equal(t, 9, creditRepo.saldos[importTestUser], "duplicada não consome crédito")
}

func TestImport_NomeObrigatorio(t *testing.T) {
	uc, _, _, creditRepo := buildCompanyUC(10)

	report, err := uc.Import(context.Background(), importTestUser, dto.ImportRequest{
		Empresas: []dto.CompanyResult{{CNPJ: "11222333000181"}},
	})
	require.NoError(t, err)

	assert.Equal(t, 1, report.Falhas)
	assert.Equal(t, 10, creditRepo.saldos[importTestUser])
}

func TestDelete_RemoveTelefonesJunto(t *testing.T) {
	uc, companyRepo, phoneRepo, _ := buildCompanyUC(5)

	_, err := uc.Import(context.Background(), importTestUser, dto.ImportRequest{
		Empresas: []dto.CompanyResult{{
			Nome:      "Padaria Estrela",
			Telefones: []dto.PhoneResult{{Numero: "11999990000"}, {Numero: "1133334444"}},
		}},
	})
	require.NoError(t, err)
	require.Len(t, phoneRepo.phones, 2)

	var companyID string
	for id := range companyRepo.companies {
		companyID = id
	}
	require.NoError(t, uc.Delete(importTestUser, companyID))

	assert.Empty(t, companyRepo.companies)
	assert.Empty(t, phoneRepo.phones)
}
