package repository

import "github.com/acheileads/achei-leads-api/internal/domain/entity"

// MessageRepository define a porta de persistência para templates e histórico de mensagens.
type MessageRepository interface {
	CreateTemplate(t *entity.MessageTemplate) error
	GetTemplate(userID, id string) (*entity.MessageTemplate, error)
	ListTemplates(userID string) ([]*entity.MessageTemplate, error)
	UpdateTemplate(t *entity.MessageTemplate) error
	DeleteTemplate(userID, id string) error

	AddHistory(h *entity.MessageHistory) error
	ListHistory(userID, companyID string, limit, offset int) ([]*entity.MessageHistory, error)
}
