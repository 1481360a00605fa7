package repository

import "github.com/acheileads/achei-leads-api/internal/domain/entity"

// StageRepository define a porta de persistência para PipelineStage.
type StageRepository interface {
	Create(stage *entity.PipelineStage) error
	GetByID(userID, id string) (*entity.PipelineStage, error)
	ListByUser(userID string) ([]*entity.PipelineStage, error)
	Update(stage *entity.PipelineStage) error
	// UpdatePositions aplica a nova ordem das colunas (posicao = índice na lista).
	UpdatePositions(userID string, orderedIDs []string) error
	Delete(userID, id string) error
}
