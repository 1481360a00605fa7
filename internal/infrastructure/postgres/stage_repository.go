package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/acheileads/achei-leads-api/internal/domain"
	"github.com/acheileads/achei-leads-api/internal/domain/entity"
	"github.com/acheileads/achei-leads-api/internal/domain/repository"
)

var _ repository.StageRepository = (*StageRepo)(nil)

// StageRepo implementação de StageRepository (usável com pool ou tx).
type StageRepo struct {
	q Querier
}

// NewStageRepository constrói o adaptador. Passar pool ou tx (Querier).
func NewStageRepository(q Querier) *StageRepo {
	return &StageRepo{q: q}
}

// Create persiste uma nova etapa.
func (r *StageRepo) Create(s *entity.PipelineStage) error {
	query := `
		INSERT INTO crm_pipeline_stages (id, user_id, nome, cor, posicao, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.q.Exec(context.Background(), query,
		s.ID, s.UserID, s.Nome, s.Cor, s.Posicao, s.CreatedAt, s.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert stage: %w", err)
	}
	return nil
}

// GetByID busca uma etapa do usuário por ID.
func (r *StageRepo) GetByID(userID, id string) (*entity.PipelineStage, error) {
	query := `
		SELECT id, user_id, nome, cor, posicao, created_at, updated_at
		FROM crm_pipeline_stages WHERE user_id = $1 AND id = $2`
	var s entity.PipelineStage
	err := r.q.QueryRow(context.Background(), query, userID, id).Scan(
		&s.ID, &s.UserID, &s.Nome, &s.Cor, &s.Posicao, &s.CreatedAt, &s.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get stage: %w", err)
	}
	return &s, nil
}

// ListByUser lista etapas do usuário por posição.
func (r *StageRepo) ListByUser(userID string) ([]*entity.PipelineStage, error) {
	query := `
		SELECT id, user_id, nome, cor, posicao, created_at, updated_at
		FROM crm_pipeline_stages WHERE user_id = $1 ORDER BY posicao`
	rows, err := r.q.Query(context.Background(), query, userID)
	if err != nil {
		return nil, fmt.Errorf("list stages: %w", err)
	}
	defer rows.Close()

	var list []*entity.PipelineStage
	for rows.Next() {
		var s entity.PipelineStage
		if err := rows.Scan(&s.ID, &s.UserID, &s.Nome, &s.Cor, &s.Posicao, &s.CreatedAt, &s.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan stage: %w", err)
		}
		list = append(list, &s)
	}
	return list, rows.Err()
}

// Update atualiza nome e cor da etapa.
func (r *StageRepo) Update(s *entity.PipelineStage) error {
	query := `
		UPDATE crm_pipeline_stages SET nome = $3, cor = $4, updated_at = $5
		WHERE user_id = $1 AND id = $2`
	tag, err := r.q.Exec(context.Background(), query, s.UserID, s.ID, s.Nome, s.Cor, s.UpdatedAt)
	if err != nil {
		return fmt.Errorf("update stage: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// UpdatePositions aplica a nova ordem das colunas (posicao = índice na lista).
func (r *StageRepo) UpdatePositions(userID string, orderedIDs []string) error {
	for i, id := range orderedIDs {
		_, err := r.q.Exec(context.Background(),
			`UPDATE crm_pipeline_stages SET posicao = $3, updated_at = now() WHERE user_id = $1 AND id = $2`,
			userID, id, i)
		if err != nil {
			return fmt.Errorf("update stage position: %w", err)
		}
	}
	return nil
}

// Delete exclui uma etapa do usuário.
func (r *StageRepo) Delete(userID, id string) error {
	tag, err := r.q.Exec(context.Background(),
		`DELETE FROM crm_pipeline_stages WHERE user_id = $1 AND id = $2`, userID, id)
	if err != nil {
		return fmt.Errorf("delete stage: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
