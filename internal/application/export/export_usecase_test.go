package export_test

import (
	"bytes"
	"context"
	"encoding/csv"
	"sort"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/acheileads/achei-leads-api/internal/application/dto"
	"github.com/acheileads/achei-leads-api/internal/application/export"
	"github.com/acheileads/achei-leads-api/internal/domain"
	"github.com/acheileads/achei-leads-api/internal/domain/entity"
	"github.com/acheileads/achei-leads-api/internal/domain/repository"
)

const exportTestUser = "00000000-0000-0000-0000-000000000005"

// ── Fakes mínimos dos repositórios ────────────────────────────────────────────

type stubCompanyRepo struct {
	companies []*entity.Company
}

func (r *stubCompanyRepo) Create(*entity.Company) error { return nil }
func (r *stubCompanyRepo) GetByID(string, string) (*entity.Company, error) { return nil, nil }
func (r *stubCompanyRepo) Update(*entity.Company) error { return nil }
func (r *stubCompanyRepo) Delete(string, string) error { return nil }
func (r *stubCompanyRepo) ExistsByCNPJ(string, string) (bool, error) { return false, nil }
func (r *stubCompanyRepo) SetStage(string, string, *string) error { return nil }
func (r *stubCompanyRepo) ReassignStageToNull(string, string) error { return nil }
func (r *stubCompanyRepo) StageAggregates(string) ([]repository.StageAggregate, error) {
	return nil, nil
}

// List devolve por nome para saída estável nos asserts.
func (r *stubCompanyRepo) List(userID string, f repository.CompanyFilter) ([]*entity.Company, int, error) {
	var out []*entity.Company
	for _, c := range r.companies {
		if len(f.IDs) == 0 || containsID(f.IDs, c.ID) {
			out = append(out, c)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Nome < out[j].Nome })
	return out, len(out), nil
}

func containsID(ids []string, id string) bool {
	for _, v := range ids {
		if v == id {
			return true
		}
	}
	return false
}

type stubPhoneRepo struct {
	byCompany map[string][]*entity.Phone
}

func (r *stubPhoneRepo) Create(*entity.Phone) error { return nil }
func (r *stubPhoneRepo) GetByID(string) (*entity.Phone, error) { return nil, nil }
func (r *stubPhoneRepo) ListByCompany(id string) ([]*entity.Phone, error) { return r.byCompany[id], nil }
func (r *stubPhoneRepo) Update(*entity.Phone) error { return nil }
func (r *stubPhoneRepo) Delete(string) error { return nil }
func (r *stubPhoneRepo) DeleteByCompany(string) error { return nil }
func (r *stubPhoneRepo) ListByCompanies(ids []string) (map[string][]*entity.Phone, error) {
	return r.byCompany, nil
}

type stubProfileRepo struct{}

func (r *stubProfileRepo) Create(*entity.Profile) error { return nil }
func (r *stubProfileRepo) GetByID(id string) (*entity.Profile, error) {
	return &entity.Profile{ID: id, Nome: "Maria Prospecta", Email: "maria@exemplo.com.br"}, nil
}
func (r *stubProfileRepo) FindByEmail(string) (*entity.Profile, error) { return nil, nil }
func (r *stubProfileRepo) Update(*entity.Profile) error { return nil }

type stubPDFGen struct {
	lastInput export.ReportInput
}

func (g *stubPDFGen) GenerateLeadReport(_ context.Context, in export.ReportInput) ([]byte, error) {
	g.lastInput = in
	return []byte("%PDF-1.7 stub"), nil
}

// ── Cenário ───────────────────────────────────────────────────────────────────

func buildExportUC() (*export.ExportUseCase, *stubPDFGen) {
	enriquecidaEm := time.Date(2025, 6, 10, 14, 30, 0, 0, time.UTC)
	site := "https://padariaestrela.com.br"
	companies := []*entity.Company{
		{
			ID:            "c1",
			UserID:        exportTestUser,
			Nome:          "Padaria Estrela",
			CNPJ:          "11222333000181",
			CNAE:          "1091-1/02",
			CNAEDescricao: "Padaria e confeitaria",
			Cidade:        "São Paulo",
			UF:            "SP",
			Endereco:      "Rua das Flores, 100",
			CEP:           "01001-000",
			Website:       &site,
			EnriquecidaEm: &enriquecidaEm,
		},
		{
			ID:     "c2",
			UserID: exportTestUser,
			Nome:   "Mercado Central",
			Cidade: "Campinas",
			UF:     "SP",
		},
	}
	phones := map[string][]*entity.Phone{
		"c1": {
			{ID: "p1", CompanyID: "c1", Numero: "11999990000", Tipo: "celular", WhatsApp: true},
			{ID: "p2", CompanyID: "c1", Numero: "1133334444", Tipo: "fixo"},
		},
	}
	gen := &stubPDFGen{}
	uc := export.NewExportUseCase(
		&stubCompanyRepo{companies: companies},
		&stubPhoneRepo{byCompany: phones},
		&stubProfileRepo{},
		gen,
	)
	return uc, gen
}

func parseCSV(t *testing.T, data []byte) [][]string {
	t.Helper()
	// O arquivo começa com o BOM UTF-8; tira antes de parsear.
	trimmed := bytes.TrimPrefix(data, []byte{0xEF, 0xBB, 0xBF})
	rows, err := csv.NewReader(bytes.NewReader(trimmed)).ReadAll()
	require.NoError(t, err)
	return rows
}

// ── Testes CSV ────────────────────────────────────────────────────────────────

func TestCSV_ComecaComBOM(t *testing.T) {
	uc, _ := buildExportUC()

	data, err := uc.CSV(exportTestUser, dto.ExportRequest{Categorias: []string{dto.CategoriaEmpresa}})
	require.NoError(t, err)

	assert.True(t, bytes.HasPrefix(data, []byte{0xEF, 0xBB, 0xBF}),
		"Excel só abre como UTF-8 com o BOM na frente")
}

func TestCSV_PorEmpresaJuntaTelefones(t *testing.T) {
	uc, _ := buildExportUC()

	data, err := uc.CSV(exportTestUser, dto.ExportRequest{
		Categorias: []string{dto.CategoriaEmpresa, dto.CategoriaTelefone},
		Modo:       dto.ModoPorEmpresa,
	})
	require.NoError(t, err)

	rows := parseCSV(t, data)
	require.Len(t, rows, 3, "cabeçalho + 2 empresas")

	header := rows[0]
	assert.Equal(t, []string{"nome", "cnpj", "cnae", "cnae_descricao", "cidade", "uf", "endereco", "cep", "telefones"}, header)

	// Empresas vêm ordenadas por nome: Mercado Central primeiro.
	assert.Equal(t, "Mercado Central", rows[1][0])
	assert.Equal(t, "", rows[1][8], "empresa sem telefone exporta coluna vazia")

	assert.Equal(t, "Padaria Estrela", rows[2][0])
	assert.Equal(t, "11.222.333/0001-81", rows[2][1], "CNPJ sai formatado")
	assert.Equal(t, "11999990000; 1133334444", rows[2][8], "telefones unidos com ponto e vírgula")
}

func TestCSV_PorTelefoneUmaLinhaPorNumero(t *testing.T) {
	uc, _ := buildExportUC()

	data, err := uc.CSV(exportTestUser, dto.ExportRequest{
		Categorias: []string{dto.CategoriaEmpresa, dto.CategoriaTelefone},
		Modo:       dto.ModoPorTelefone,
	})
	require.NoError(t, err)

	rows := parseCSV(t, data)
	// cabeçalho + 1 linha do Mercado (sem telefone) + 2 linhas da Padaria.
	require.Len(t, rows, 4)

	assert.Equal(t, []string{"nome", "cnpj", "cnae", "cnae_descricao", "cidade", "uf", "endereco", "cep", "telefone", "tipo", "whatsapp"}, rows[0])

	// Empresa sem telefone ainda aparece, com as colunas de telefone vazias.
	assert.Equal(t, "Mercado Central", rows[1][0])
	assert.Equal(t, "", rows[1][8])

	assert.Equal(t, "Padaria Estrela", rows[2][0])
	assert.Equal(t, "11999990000", rows[2][8])
	assert.Equal(t, "celular", rows[2][9])
	assert.Equal(t, "sim", rows[2][10])

	assert.Equal(t, "Padaria Estrela", rows[3][0])
	assert.Equal(t, "1133334444", rows[3][8])
	assert.Equal(t, "nao", rows[3][10])
}

func TestCSV_CategoriaIA(t *testing.T) {
	uc, _ := buildExportUC()

	data, err := uc.CSV(exportTestUser, dto.ExportRequest{
		Categorias: []string{dto.CategoriaIA},
		IDs:        []string{"c1"},
	})
	require.NoError(t, err)

	rows := parseCSV(t, data)
	require.Len(t, rows, 2)
	assert.Equal(t, []string{"resumo_ia", "enriquecida_em"}, rows[0])
	assert.Equal(t, "10/06/2025 14:30", rows[1][1])
}

func TestCSV_CategoriaInvalida(t *testing.T) {
	uc, _ := buildExportUC()

	_, err := uc.CSV(exportTestUser, dto.ExportRequest{Categorias: []string{"inexistente"}})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestCSV_SemCategorias(t *testing.T) {
	uc, _ := buildExportUC()

	_, err := uc.CSV(exportTestUser, dto.ExportRequest{})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

// ── Testes PDF ────────────────────────────────────────────────────────────────

func TestPDF_MontaRelatorioComTitularETotais(t *testing.T) {
	uc, gen := buildExportUC()

	data, err := uc.PDF(context.Background(), exportTestUser, dto.ExportRequest{})
	require.NoError(t, err)
	assert.NotEmpty(t, data)

	in := gen.lastInput
	assert.Equal(t, "Maria Prospecta", in.Titular)
	assert.Equal(t, "Todas as empresas", in.Filtro)
	assert.Len(t, in.Empresas, 2)
	assert.Equal(t, 1, in.Enriquecidas)
}
