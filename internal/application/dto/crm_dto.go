package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateStageRequest nova etapa do funil.
type CreateStageRequest struct {
	Nome string `json:"nome" validate:"required,max=100"`
	Cor  string `json:"cor" validate:"omitempty,max=9"`
}

// UpdateStageRequest edição de etapa.
type UpdateStageRequest struct {
	Nome string `json:"nome" validate:"omitempty,max=100"`
	Cor  string `json:"cor" validate:"omitempty,max=9"`
}

// ReorderStagesRequest nova ordem das colunas (posicao = índice na lista).
type ReorderStagesRequest struct {
	IDs []string `json:"ids" validate:"required,min=1"`
}

// StageResponse saída de uma etapa.
type StageResponse struct {
	ID      string `json:"id"`
	Nome    string `json:"nome"`
	Cor     string `json:"cor"`
	Posicao int    `json:"posicao"`
}

// MoveCompanyRequest move a empresa no kanban. StageID nil = sem etapa.
type MoveCompanyRequest struct {
	StageID *string `json:"stage_id"`
}

// BoardColumn coluna do quadro kanban com agregados.
type BoardColumn struct {
	Stage      *StageResponse  `json:"stage"` // nil = coluna "sem etapa"
	Quantidade int             `json:"quantidade"`
	ValorTotal decimal.Decimal `json:"valor_total"`
}

// BoardResponse quadro kanban completo.
type BoardResponse struct {
	Colunas []BoardColumn `json:"colunas"`
}

// CreateActivityRequest nova atividade de CRM.
type CreateActivityRequest struct {
	Tipo       string     `json:"tipo" validate:"required,oneof=nota ligacao email reuniao tarefa"`
	Descricao  string     `json:"descricao" validate:"required"`
	Vencimento *time.Time `json:"vencimento"`
}

// UpdateActivityRequest edição/conclusão de atividade.
type UpdateActivityRequest struct {
	Descricao  *string    `json:"descricao"`
	Concluida  *bool      `json:"concluida"`
	Vencimento *time.Time `json:"vencimento"`
}

// ActivityResponse saída de uma atividade.
type ActivityResponse struct {
	ID         string     `json:"id"`
	CompanyID  string     `json:"company_id"`
	Tipo       string     `json:"tipo"`
	Descricao  string     `json:"descricao"`
	Concluida  bool       `json:"concluida"`
	Vencimento *time.Time `json:"vencimento,omitempty"`
	CreatedAt  time.Time  `json:"created_at"`
}

// StageHistoryResponse movimentação registrada no histórico do funil.
type StageHistoryResponse struct {
	ID          string    `json:"id"`
	CompanyID   string    `json:"company_id"`
	FromStageID *string   `json:"from_stage_id"`
	ToStageID   *string   `json:"to_stage_id"`
	MovedAt     time.Time `json:"moved_at"`
}
