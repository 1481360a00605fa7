package repository

import "github.com/acheileads/achei-leads-api/internal/domain/entity"

// ActivityRepository define a porta de persistência para CrmActivity e StageHistory.
type ActivityRepository interface {
	Create(activity *entity.CrmActivity) error
	GetByID(userID, id string) (*entity.CrmActivity, error)
	ListByCompany(userID, companyID string) ([]*entity.CrmActivity, error)
	// ListPending devolve atividades não concluídas do usuário, vencimento primeiro.
	ListPending(userID string) ([]*entity.CrmActivity, error)
	Update(activity *entity.CrmActivity) error
	Delete(userID, id string) error

	AddStageHistory(h *entity.StageHistory) error
	ListStageHistory(userID, companyID string) ([]*entity.StageHistory, error)
}
