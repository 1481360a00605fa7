// Package export gera os arquivos de exportação da base de leads: CSV por
// categorias de campo e relatório em PDF.
package export

import (
	"bytes"
	"context"
	"encoding/csv"
	"fmt"
	"strings"
	"time"

	"github.com/acheileads/achei-leads-api/internal/application/dto"
	"github.com/acheileads/achei-leads-api/internal/domain"
	"github.com/acheileads/achei-leads-api/internal/domain/entity"
	"github.com/acheileads/achei-leads-api/internal/domain/repository"
	"github.com/acheileads/achei-leads-api/pkg/cnpj"
)

// utf8BOM prefixo que faz o Excel abrir o CSV como UTF-8.
var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// Separador de telefones no modo por_empresa.
const phoneJoinSep = "; "

// ReportPDFGenerator porta de saída do relatório PDF de leads.
type ReportPDFGenerator interface {
	GenerateLeadReport(ctx context.Context, in ReportInput) ([]byte, error)
}

// ReportInput material do relatório PDF: dono, filtro aplicado e linhas.
type ReportInput struct {
	Titular      string
	Filtro       string
	GeradoEm     time.Time
	Empresas     []ReportCompany
	Enriquecidas int
}

// ReportCompany linha da tabela do relatório.
type ReportCompany struct {
	Nome        string
	CNPJ        string
	Cidade      string
	UF          string
	Telefones   string
	Enriquecida bool
}

// ExportUseCase monta os exports de CSV e PDF.
type ExportUseCase struct {
	companyRepo repository.CompanyRepository
	phoneRepo   repository.PhoneRepository
	profileRepo repository.ProfileRepository
	pdfGen      ReportPDFGenerator
}

// NewExportUseCase constrói o caso de uso com os ports.
func NewExportUseCase(
	companyRepo repository.CompanyRepository,
	phoneRepo repository.PhoneRepository,
	profileRepo repository.ProfileRepository,
	pdfGen ReportPDFGenerator,
) *ExportUseCase {
	return &ExportUseCase{
		companyRepo: companyRepo,
		phoneRepo:   phoneRepo,
		profileRepo: profileRepo,
		pdfGen:      pdfGen,
	}
}

// CSV gera o arquivo: UTF-8 com BOM, aspas padrão do encoding/csv, colunas
// definidas pelas categorias pedidas, linhas definidas pelo modo.
func (uc *ExportUseCase) CSV(userID string, in dto.ExportRequest) ([]byte, error) {
	modo := in.Modo
	if modo == "" {
		modo = dto.ModoPorEmpresa
	}
	if err := validateRequest(in.Categorias, modo); err != nil {
		return nil, err
	}

	companies, phones, err := uc.load(userID, in.IDs)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	buf.Write(utf8BOM)
	w := csv.NewWriter(&buf)

	if err := w.Write(headerRow(in.Categorias, modo)); err != nil {
		return nil, fmt.Errorf("export csv: %w", err)
	}
	for _, c := range companies {
		for _, record := range companyRows(c, phones[c.ID], in.Categorias, modo) {
			if err := w.Write(record); err != nil {
				return nil, fmt.Errorf("export csv: %w", err)
			}
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, fmt.Errorf("export csv: %w", err)
	}
	return buf.Bytes(), nil
}

// PDF gera o relatório de leads via gerador Maroto.
func (uc *ExportUseCase) PDF(ctx context.Context, userID string, in dto.ExportRequest) ([]byte, error) {
	companies, phones, err := uc.load(userID, in.IDs)
	if err != nil {
		return nil, err
	}
	profile, err := uc.profileRepo.GetByID(userID)
	if err != nil {
		return nil, err
	}

	report := ReportInput{
		Filtro:   filtroLabel(in.IDs),
		GeradoEm: time.Now(),
		Empresas: make([]ReportCompany, 0, len(companies)),
	}
	if profile != nil {
		report.Titular = profile.Nome
	}
	for _, c := range companies {
		if c.Enriquecida() {
			report.Enriquecidas++
		}
		report.Empresas = append(report.Empresas, ReportCompany{
			Nome:        c.Nome,
			CNPJ:        cnpj.Format(c.CNPJ),
			Cidade:      c.Cidade,
			UF:          c.UF,
			Telefones:   joinPhones(phones[c.ID]),
			Enriquecida: c.Enriquecida(),
		})
	}
	return uc.pdfGen.GenerateLeadReport(ctx, report)
}

// load carrega as empresas do export (todas ou por ids) e os telefones agrupados.
func (uc *ExportUseCase) load(userID string, ids []string) ([]*entity.Company, map[string][]*entity.Phone, error) {
	f := repository.CompanyFilter{Limit: 10000}
	if len(ids) > 0 {
		f.IDs = ids
	}
	companies, _, err := uc.companyRepo.List(userID, f)
	if err != nil {
		return nil, nil, err
	}
	companyIDs := make([]string, 0, len(companies))
	for _, c := range companies {
		companyIDs = append(companyIDs, c.ID)
	}
	phones, err := uc.phoneRepo.ListByCompanies(companyIDs)
	if err != nil {
		return nil, nil, err
	}
	return companies, phones, nil
}

// ── Montagem de colunas e linhas ──────────────────────────────────────────────

func validateRequest(categorias []string, modo string) error {
	if len(categorias) == 0 {
		return domain.ErrInvalidInput
	}
	valid := map[string]bool{
		dto.CategoriaEmpresa:  true,
		dto.CategoriaContato:  true,
		dto.CategoriaRedes:    true,
		dto.CategoriaIA:       true,
		dto.CategoriaTelefone: true,
	}
	for _, c := range categorias {
		if !valid[c] {
			return domain.ErrInvalidInput
		}
	}
	if modo != dto.ModoPorEmpresa && modo != dto.ModoPorTelefone {
		return domain.ErrInvalidInput
	}
	return nil
}

// headerRow monta o cabeçalho na ordem fixa das categorias pedidas.
func headerRow(categorias []string, modo string) []string {
	var header []string
	for _, cat := range categorias {
		switch cat {
		case dto.CategoriaEmpresa:
			header = append(header, "nome", "cnpj", "cnae", "cnae_descricao", "cidade", "uf", "endereco", "cep")
		case dto.CategoriaContato:
			header = append(header, "website", "email")
		case dto.CategoriaRedes:
			header = append(header, "instagram", "facebook", "linkedin")
		case dto.CategoriaIA:
			header = append(header, "resumo_ia", "enriquecida_em")
		case dto.CategoriaTelefone:
			if modo == dto.ModoPorTelefone {
				header = append(header, "telefone", "tipo", "whatsapp")
			} else {
				header = append(header, "telefones")
			}
		}
	}
	return header
}

// companyRows monta as linhas de uma empresa conforme o modo: uma linha com os
// telefones unidos, ou uma linha por telefone com os demais campos repetidos.
func companyRows(c *entity.Company, phones []*entity.Phone, categorias []string, modo string) [][]string {
	base := func(phone *entity.Phone) []string {
		var record []string
		for _, cat := range categorias {
			switch cat {
			case dto.CategoriaEmpresa:
				record = append(record, c.Nome, cnpj.Format(c.CNPJ), c.CNAE, c.CNAEDescricao, c.Cidade, c.UF, c.Endereco, c.CEP)
			case dto.CategoriaContato:
				record = append(record, derefOrEmpty(c.Website), derefOrEmpty(c.Email))
			case dto.CategoriaRedes:
				record = append(record, derefOrEmpty(c.Instagram), derefOrEmpty(c.Facebook), derefOrEmpty(c.LinkedIn))
			case dto.CategoriaIA:
				record = append(record, derefOrEmpty(c.ResumoIA), formatTime(c.EnriquecidaEm))
			case dto.CategoriaTelefone:
				if modo == dto.ModoPorTelefone {
					if phone != nil {
						record = append(record, phone.Numero, phone.Tipo, boolLabel(phone.WhatsApp))
					} else {
						record = append(record, "", "", "")
					}
				} else {
					record = append(record, joinPhones(phones))
				}
			}
		}
		return record
	}

	if modo == dto.ModoPorTelefone {
		if len(phones) == 0 {
			// Empresa sem telefone ainda aparece, com as colunas de telefone vazias.
			return [][]string{base(nil)}
		}
		rows := make([][]string, 0, len(phones))
		for _, p := range phones {
			rows = append(rows, base(p))
		}
		return rows
	}
	return [][]string{base(nil)}
}

func joinPhones(phones []*entity.Phone) string {
	numeros := make([]string, 0, len(phones))
	for _, p := range phones {
		numeros = append(numeros, p.Numero)
	}
	return strings.Join(numeros, phoneJoinSep)
}

func derefOrEmpty(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func formatTime(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.Format("02/01/2006 15:04")
}

func boolLabel(b bool) string {
	if b {
		return "sim"
	}
	return "nao"
}

func filtroLabel(ids []string) string {
	if len(ids) == 0 {
		return "Todas as empresas"
	}
	return fmt.Sprintf("%d empresas selecionadas", len(ids))
}
