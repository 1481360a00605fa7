package entity

import "time"

// Tipos válidos para CrmActivity.
const (
	ActivityTipoNota    = "nota"
	ActivityTipoLigacao = "ligacao"
	ActivityTipoEmail   = "email"
	ActivityTipoReuniao = "reuniao"
	ActivityTipoTarefa  = "tarefa"
)

// CrmActivity representa uma atividade de CRM ligada a uma empresa.
type CrmActivity struct {
	ID         string
	UserID     string
	CompanyID  string
	Tipo       string // nota, ligacao, email, reuniao, tarefa
	Descricao  string
	Concluida  bool
	Vencimento *time.Time // opcional
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// StageHistory registra cada movimentação de empresa entre etapas do funil.
// FromStageID/ToStageID nil representam a coluna "sem etapa".
type StageHistory struct {
	ID          string
	UserID      string
	CompanyID   string
	FromStageID *string
	ToStageID   *string
	MovedAt     time.Time
}
