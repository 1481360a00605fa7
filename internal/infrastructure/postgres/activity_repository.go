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

var _ repository.ActivityRepository = (*ActivityRepo)(nil)

// ActivityRepo implementação de ActivityRepository (usável com pool ou tx).
type ActivityRepo struct {
	q Querier
}

// NewActivityRepository constrói o adaptador. Passar pool ou tx (Querier).
func NewActivityRepository(q Querier) *ActivityRepo {
	return &ActivityRepo{q: q}
}

// Create persiste uma nova atividade.
func (r *ActivityRepo) Create(a *entity.CrmActivity) error {
	query := `
		INSERT INTO crm_activities (id, user_id, company_id, tipo, descricao, concluida, vencimento, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.q.Exec(context.Background(), query,
		a.ID, a.UserID, a.CompanyID, a.Tipo, a.Descricao, a.Concluida, a.Vencimento, a.CreatedAt, a.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert activity: %w", err)
	}
	return nil
}

// GetByID busca uma atividade do usuário por ID.
func (r *ActivityRepo) GetByID(userID, id string) (*entity.CrmActivity, error) {
	query := `
		SELECT id, user_id, company_id, tipo, descricao, concluida, vencimento, created_at, updated_at
		FROM crm_activities WHERE user_id = $1 AND id = $2`
	var a entity.CrmActivity
	err := r.q.QueryRow(context.Background(), query, userID, id).Scan(
		&a.ID, &a.UserID, &a.CompanyID, &a.Tipo, &a.Descricao, &a.Concluida, &a.Vencimento, &a.CreatedAt, &a.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get activity: %w", err)
	}
	return &a, nil
}

// ListByCompany lista as atividades de uma empresa, mais recentes primeiro.
func (r *ActivityRepo) ListByCompany(userID, companyID string) ([]*entity.CrmActivity, error) {
	query := `
		SELECT id, user_id, company_id, tipo, descricao, concluida, vencimento, created_at, updated_at
		FROM crm_activities WHERE user_id = $1 AND company_id = $2 ORDER BY created_at DESC`
	return r.list(query, userID, companyID)
}

// ListPending lista atividades não concluídas do usuário, vencimento primeiro.
func (r *ActivityRepo) ListPending(userID string) ([]*entity.CrmActivity, error) {
	query := `
		SELECT id, user_id, company_id, tipo, descricao, concluida, vencimento, created_at, updated_at
		FROM crm_activities WHERE user_id = $1 AND concluida = false
		ORDER BY vencimento NULLS LAST, created_at DESC`
	return r.list(query, userID)
}

// Update atualiza descrição, conclusão e vencimento.
func (r *ActivityRepo) Update(a *entity.CrmActivity) error {
	query := `
		UPDATE crm_activities SET descricao = $3, concluida = $4, vencimento = $5, updated_at = $6
		WHERE user_id = $1 AND id = $2`
	tag, err := r.q.Exec(context.Background(), query,
		a.UserID, a.ID, a.Descricao, a.Concluida, a.Vencimento, a.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update activity: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Delete exclui uma atividade do usuário.
func (r *ActivityRepo) Delete(userID, id string) error {
	tag, err := r.q.Exec(context.Background(),
		`DELETE FROM crm_activities WHERE user_id = $1 AND id = $2`, userID, id)
	if err != nil {
		return fmt.Errorf("delete activity: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// AddStageHistory registra uma movimentação no histórico do funil.
func (r *ActivityRepo) AddStageHistory(h *entity.StageHistory) error {
	query := `
		INSERT INTO crm_stage_history (id, user_id, company_id, from_stage_id, to_stage_id, moved_at)
		VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.q.Exec(context.Background(), query,
		h.ID, h.UserID, h.CompanyID, h.FromStageID, h.ToStageID, h.MovedAt,
	)
	if err != nil {
		return fmt.Errorf("insert stage history: %w", err)
	}
	return nil
}

// ListStageHistory lista o histórico de movimentações de uma empresa.
func (r *ActivityRepo) ListStageHistory(userID, companyID string) ([]*entity.StageHistory, error) {
	query := `
		SELECT id, user_id, company_id, from_stage_id, to_stage_id, moved_at
		FROM crm_stage_history WHERE user_id = $1 AND company_id = $2 ORDER BY moved_at DESC`
	rows, err := r.q.Query(context.Background(), query, userID, companyID)
	if err != nil {
		return nil, fmt.Errorf("list stage history: %w", err)
	}
	defer rows.Close()

	var list []*entity.StageHistory
	for rows.Next() {
		var h entity.StageHistory
		if err := rows.Scan(&h.ID, &h.UserID, &h.CompanyID, &h.FromStageID, &h.ToStageID, &h.MovedAt); err != nil {
			return nil, fmt.Errorf("scan stage history: %w", err)
		}
		list = append(list, &h)
	}
	return list, rows.Err()
}

func (r *ActivityRepo) list(query string, args ...any) ([]*entity.CrmActivity, error) {
	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list activities: %w", err)
	}
	defer rows.Close()

	var list []*entity.CrmActivity
	for rows.Next() {
		var a entity.CrmActivity
		if err := rows.Scan(&a.ID, &a.UserID, &a.CompanyID, &a.Tipo, &a.Descricao, &a.Concluida, &a.Vencimento, &a.CreatedAt, &a.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan activity: %w", err)
		}
		list = append(list, &a)
	}
	return list, rows.Err()
}
