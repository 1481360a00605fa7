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

var _ repository.MessageRepository = (*MessageRepo)(nil)

// MessageRepo implementação de MessageRepository (usável com pool ou tx).
type MessageRepo struct {
	q Querier
}

// NewMessageRepository constrói o adaptador. Passar pool ou tx (Querier).
func NewMessageRepository(q Querier) *MessageRepo {
	return &MessageRepo{q: q}
}

// CreateTemplate persiste um novo template.
func (r *MessageRepo) CreateTemplate(t *entity.MessageTemplate) error {
	query := `
		INSERT INTO message_templates (id, user_id, nome, canal, corpo, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.q.Exec(context.Background(), query,
		t.ID, t.UserID, t.Nome, t.Canal, t.Corpo, t.CreatedAt, t.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert template: %w", err)
	}
	return nil
}

// GetTemplate busca um template do usuário por ID.
func (r *MessageRepo) GetTemplate(userID, id string) (*entity.MessageTemplate, error) {
	query := `
		SELECT id, user_id, nome, canal, corpo, created_at, updated_at
		FROM message_templates WHERE user_id = $1 AND id = $2`
	var t entity.MessageTemplate
	err := r.q.QueryRow(context.Background(), query, userID, id).Scan(
		&t.ID, &t.UserID, &t.Nome, &t.Canal, &t.Corpo, &t.CreatedAt, &t.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get template: %w", err)
	}
	return &t, nil
}

// ListTemplates lista os templates do usuário.
func (r *MessageRepo) ListTemplates(userID string) ([]*entity.MessageTemplate, error) {
	query := `
		SELECT id, user_id, nome, canal, corpo, created_at, updated_at
		FROM message_templates WHERE user_id = $1 ORDER BY nome`
	rows, err := r.q.Query(context.Background(), query, userID)
	if err != nil {
		return nil, fmt.Errorf("list templates: %w", err)
	}
	defer rows.Close()

	var list []*entity.MessageTemplate
	for rows.Next() {
		var t entity.MessageTemplate
		if err := rows.Scan(&t.ID, &t.UserID, &t.Nome, &t.Canal, &t.Corpo, &t.CreatedAt, &t.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan template: %w", err)
		}
		list = append(list, &t)
	}
	return list, rows.Err()
}

// UpdateTemplate atualiza nome, canal e corpo.
func (r *MessageRepo) UpdateTemplate(t *entity.MessageTemplate) error {
	query := `
		UPDATE message_templates SET nome = $3, canal = $4, corpo = $5, updated_at = $6
		WHERE user_id = $1 AND id = $2`
	tag, err := r.q.Exec(context.Background(), query, t.UserID, t.ID, t.Nome, t.Canal, t.Corpo, t.UpdatedAt)
	if err != nil {
		return fmt.Errorf("update template: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// DeleteTemplate exclui um template do usuário.
func (r *MessageRepo) DeleteTemplate(userID, id string) error {
	tag, err := r.q.Exec(context.Background(),
		`DELETE FROM message_templates WHERE user_id = $1 AND id = $2`, userID, id)
	if err != nil {
		return fmt.Errorf("delete template: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// AddHistory registra um envio no log.
func (r *MessageRepo) AddHistory(h *entity.MessageHistory) error {
	query := `
		INSERT INTO message_history (id, user_id, company_id, phone_id, canal, corpo, status, enviado_em)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.q.Exec(context.Background(), query,
		h.ID, h.UserID, h.CompanyID, h.PhoneID, h.Canal, h.Corpo, h.Status, h.EnviadoEm,
	)
	if err != nil {
		return fmt.Errorf("insert message history: %w", err)
	}
	return nil
}

// ListHistory lista o log de envio, opcionalmente filtrado por empresa.
func (r *MessageRepo) ListHistory(userID, companyID string, limit, offset int) ([]*entity.MessageHistory, error) {
	query := `
		SELECT id, user_id, company_id, phone_id, canal, corpo, status, enviado_em
		FROM message_history WHERE user_id = $1`
	args := []any{userID}
	if companyID != "" {
		query += ` AND company_id = $2 ORDER BY enviado_em DESC LIMIT $3 OFFSET $4`
		args = append(args, companyID, limit, offset)
	} else {
		query += ` ORDER BY enviado_em DESC LIMIT $2 OFFSET $3`
		args = append(args, limit, offset)
	}
	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list message history: %w", err)
	}
	defer rows.Close()

	var list []*entity.MessageHistory
	for rows.Next() {
		var h entity.MessageHistory
		if err := rows.Scan(&h.ID, &h.UserID, &h.CompanyID, &h.PhoneID, &h.Canal, &h.Corpo, &h.Status, &h.EnviadoEm); err != nil {
			return nil, fmt.Errorf("scan message history: %w", err)
		}
		list = append(list, &h)
	}
	return list, rows.Err()
}
