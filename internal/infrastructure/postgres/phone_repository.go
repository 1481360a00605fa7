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

var _ repository.PhoneRepository = (*PhoneRepo)(nil)

// PhoneRepo implementação de PhoneRepository (usável com pool ou tx).
type PhoneRepo struct {
	q Querier
}

// NewPhoneRepository constrói o adaptador. Passar pool ou tx (Querier).
func NewPhoneRepository(q Querier) *PhoneRepo {
	return &PhoneRepo{q: q}
}

// Create persiste um novo telefone.
func (r *PhoneRepo) Create(p *entity.Phone) error {
	query := `
		INSERT INTO company_phones (id, company_id, numero, tipo, status_validacao, whatsapp, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.q.Exec(context.Background(), query,
		p.ID, p.CompanyID, p.Numero, p.Tipo, p.StatusValidacao, p.WhatsApp, p.CreatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert phone: %w", err)
	}
	return nil
}

// GetByID busca um telefone por ID.
func (r *PhoneRepo) GetByID(id string) (*entity.Phone, error) {
	query := `
		SELECT id, company_id, numero, tipo, status_validacao, whatsapp, created_at
		FROM company_phones WHERE id = $1`
	var p entity.Phone
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&p.ID, &p.CompanyID, &p.Numero, &p.Tipo, &p.StatusValidacao, &p.WhatsApp, &p.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get phone: %w", err)
	}
	return &p, nil
}

// ListByCompany lista os telefones de uma empresa.
func (r *PhoneRepo) ListByCompany(companyID string) ([]*entity.Phone, error) {
	query := `
		SELECT id, company_id, numero, tipo, status_validacao, whatsapp, created_at
		FROM company_phones WHERE company_id = $1 ORDER BY created_at`
	rows, err := r.q.Query(context.Background(), query, companyID)
	if err != nil {
		return nil, fmt.Errorf("list phones: %w", err)
	}
	defer rows.Close()
	return scanPhones(rows)
}

// ListByCompanies devolve os telefones agrupados por empresa (export).
func (r *PhoneRepo) ListByCompanies(companyIDs []string) (map[string][]*entity.Phone, error) {
	if len(companyIDs) == 0 {
		return map[string][]*entity.Phone{}, nil
	}
	query := `
		SELECT id, company_id, numero, tipo, status_validacao, whatsapp, created_at
		FROM company_phones WHERE company_id = ANY($1) ORDER BY created_at`
	rows, err := r.q.Query(context.Background(), query, companyIDs)
	if err != nil {
		return nil, fmt.Errorf("list phones by companies: %w", err)
	}
	defer rows.Close()

	list, err := scanPhones(rows)
	if err != nil {
		return nil, err
	}
	out := make(map[string][]*entity.Phone, len(companyIDs))
	for _, p := range list {
		out[p.CompanyID] = append(out[p.CompanyID], p)
	}
	return out, nil
}

// Update atualiza status de validação, tipo e flag de whatsapp.
func (r *PhoneRepo) Update(p *entity.Phone) error {
	query := `
		UPDATE company_phones SET numero = $2, tipo = $3, status_validacao = $4, whatsapp = $5
		WHERE id = $1`
	tag, err := r.q.Exec(context.Background(), query,
		p.ID, p.Numero, p.Tipo, p.StatusValidacao, p.WhatsApp,
	)
	if err != nil {
		return fmt.Errorf("update phone: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Delete exclui um telefone por ID.
func (r *PhoneRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM company_phones WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete phone: %w", err)
	}
	return nil
}

// DeleteByCompany exclui os telefones da empresa (cascata manual, mesma tx do delete da empresa).
func (r *PhoneRepo) DeleteByCompany(companyID string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM company_phones WHERE company_id = $1`, companyID)
	if err != nil {
		return fmt.Errorf("delete phones by company: %w", err)
	}
	return nil
}

func scanPhones(rows pgx.Rows) ([]*entity.Phone, error) {
	var list []*entity.Phone
	for rows.Next() {
		var p entity.Phone
		if err := rows.Scan(&p.ID, &p.CompanyID, &p.Numero, &p.Tipo, &p.StatusValidacao, &p.WhatsApp, &p.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan phone: %w", err)
		}
		list = append(list, &p)
	}
	return list, rows.Err()
}
