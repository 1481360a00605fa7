package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Company representa uma empresa importada para a base do usuário (lead).
// Os campos de enriquecimento e de CRM são opcionais (ponteiros = coluna NULL).
type Company struct {
	ID            string
	UserID        string
	Nome          string
	CNPJ          string
	CNAE          string
	CNAEDescricao string
	Cidade        string
	UF            string
	Endereco      string
	CEP           string

	// Enriquecimento (preenchidos pela pipeline de IA; nil = não encontrado)
	Website       *string
	Email         *string
	Instagram     *string
	Facebook      *string
	LinkedIn      *string
	ResumoIA      *string
	EnriquecidaEm *time.Time

	// CRM (kanban)
	CRMStageID         *string
	ValorNegocio       *decimal.Decimal
	PrevisaoFechamento *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}

// Enriquecida indica se a empresa já passou pela pipeline de enriquecimento.
func (c *Company) Enriquecida() bool {
	return c.EnriquecidaEm != nil
}
