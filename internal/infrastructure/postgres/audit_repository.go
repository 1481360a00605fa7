package postgres

import (
	"context"
	"fmt"

	"github.com/acheileads/achei-leads-api/internal/domain/entity"
	"github.com/acheileads/achei-leads-api/internal/domain/repository"
)

var _ repository.AuditRepository = (*AuditRepo)(nil)

// AuditRepo implementação de AuditRepository (append-only).
type AuditRepo struct {
	q Querier
}

// NewAuditRepository constrói o adaptador. Passar pool ou tx (Querier).
func NewAuditRepository(q Querier) *AuditRepo {
	return &AuditRepo{q: q}
}

// Create registra uma chamada a provedor externo.
func (r *AuditRepo) Create(l *entity.APIAuditLog) error {
	query := `
		INSERT INTO api_audit_logs (id, user_id, endpoint, parametros, status, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.q.Exec(context.Background(), query,
		l.ID, l.UserID, l.Endpoint, l.Parametros, l.Status, l.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert audit log: %w", err)
	}
	return nil
}
