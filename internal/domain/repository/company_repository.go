package repository

import (
	"github.com/shopspring/decimal"

	"github.com/acheileads/achei-leads-api/internal/domain/entity"
)

// CompanyFilter filtros de listagem de empresas. Campos vazios são ignorados.
type CompanyFilter struct {
	IDs             []string
	StageID         *string // filtra por etapa; StageUnassigned=true filtra sem etapa
	StageUnassigned bool
	Cidade          string
	UF              string
	Enriquecida     *bool
	Busca           string // match parcial em nome ou CNPJ
	Limit           int
	Offset          int
}

// StageAggregate agregado por etapa para o quadro kanban.
// StageID nil representa a coluna "sem etapa".
type StageAggregate struct {
	StageID    *string
	Count      int
	ValorTotal decimal.Decimal
}

// CompanyRepository define a porta de persistência para Company.
// Todas as operações são escopadas pelo usuário dono (row-level por aplicação).
type CompanyRepository interface {
	Create(company *entity.Company) error
	GetByID(userID, id string) (*entity.Company, error)
	List(userID string, f CompanyFilter) ([]*entity.Company, int, error)
	Update(company *entity.Company) error
	Delete(userID, id string) error

	// ExistsByCNPJ evita importação duplicada do mesmo CNPJ na base do usuário.
	ExistsByCNPJ(userID, cnpj string) (bool, error)

	// SetStage move a empresa para outra etapa do funil (nil = sem etapa).
	SetStage(userID, companyID string, stageID *string) error
	// ReassignStageToNull desvincula todas as empresas de uma etapa (antes de excluí-la).
	ReassignStageToNull(userID, stageID string) error
	// StageAggregates devolve contagem e soma de valor por etapa para o kanban.
	StageAggregates(userID string) ([]StageAggregate, error)
}
