package repository

import "github.com/acheileads/achei-leads-api/internal/domain/entity"

// AuditRepository define a porta de escrita do log de auditoria de chamadas externas.
type AuditRepository interface {
	Create(log *entity.APIAuditLog) error
}
