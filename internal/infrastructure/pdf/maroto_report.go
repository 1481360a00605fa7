// Package pdf implementa o relatório de leads em PDF com Maroto v2.
//
// Layout da página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Relatório de Leads │ Titular + Data                 │
//	│  ─────────────────────────────────────────────────────────  │
//	│  RESUMO: filtro aplicado / total / enriquecidas              │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABELA: Empresa | CNPJ | Cidade/UF | Telefones | IA         │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TOTAIS                                                       │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"github.com/acheileads/achei-leads-api/internal/application/export"
)

var _ export.ReportPDFGenerator = (*MarotoReportGenerator)(nil)

// ── Paleta de cores ───────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 22, Green: 101, Blue: 52}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

// ── Generator ─────────────────────────────────────────────────────────────────

// MarotoReportGenerator implementa export.ReportPDFGenerator usando Maroto v2.
type MarotoReportGenerator struct{}

// NewMarotoReportGenerator constrói o gerador.
func NewMarotoReportGenerator() *MarotoReportGenerator { return &MarotoReportGenerator{} }

// GenerateLeadReport gera o PDF e devolve seus bytes.
func (g *MarotoReportGenerator) GenerateLeadReport(_ context.Context, in export.ReportInput) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Relatório de Leads", true).
		WithAuthor("Achei Leads", true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(in))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(summaryRow(in))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))

	m.AddRows(tableHeaderRow())
	for _, r := range tableRows(in.Empresas) {
		m.AddRows(r)
	}

	m.AddRows(line.NewRow(1, props.Line{Color: colorGray, Thickness: 0.3}))
	m.AddRows(totalsRow(in))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: gerar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Seções ────────────────────────────────────────────────────────────────────

// headerRow: título (esq) e titular + data (dir).
func headerRow(in export.ReportInput) core.Row {
	return row.New(16).Add(
		col.New(7).Add(
			text.New("Relatório de Leads", props.Text{
				Style: fontstyle.Bold, Size: 14, Color: colorPrimary, Top: 1,
			}),
		),
		col.New(5).Add(
			text.New(in.Titular, props.Text{
				Size: 10, Align: align.Right, Top: 2,
			}),
			text.New("Gerado em "+in.GeradoEm.Format("02/01/2006 15:04"), props.Text{
				Size: 8, Align: align.Right, Top: 8, Color: colorGray,
			}),
		),
	)
}

func summaryRow(in export.ReportInput) core.Row {
	return row.New(8).Add(
		col.New(12).Add(
			text.New(fmt.Sprintf("%s — %d empresas, %d enriquecidas por IA",
				in.Filtro, len(in.Empresas), in.Enriquecidas), props.Text{
				Size: 9, Top: 1, Color: colorGray,
			}),
		),
	)
}

func tableHeaderRow() core.Row {
	header := props.Text{Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1}
	return row.New(7).Add(
		col.New(4).Add(text.New("Empresa", header)),
		col.New(3).Add(text.New("CNPJ", header)),
		col.New(2).Add(text.New("Cidade/UF", header)),
		col.New(2).Add(text.New("Telefones", header)),
		col.New(1).Add(text.New("IA", header)),
	)
}

func tableRows(empresas []export.ReportCompany) []core.Row {
	cell := props.Text{Size: 8, Top: 1}
	rows := make([]core.Row, 0, len(empresas))
	for _, e := range empresas {
		cidade := e.Cidade
		if e.UF != "" {
			cidade = e.Cidade + "/" + e.UF
		}
		ia := "-"
		if e.Enriquecida {
			ia = "sim"
		}
		rows = append(rows, row.New(6).Add(
			col.New(4).Add(text.New(e.Nome, cell)),
			col.New(3).Add(text.New(e.CNPJ, cell)),
			col.New(2).Add(text.New(cidade, cell)),
			col.New(2).Add(text.New(e.Telefones, cell)),
			col.New(1).Add(text.New(ia, cell)),
		))
	}
	return rows
}

func totalsRow(in export.ReportInput) core.Row {
	return row.New(10).Add(
		col.New(12).Add(
			text.New(fmt.Sprintf("Total: %d empresas", len(in.Empresas)), props.Text{
				Style: fontstyle.Bold, Size: 10, Align: align.Right, Top: 2,
			}),
		),
	)
}
