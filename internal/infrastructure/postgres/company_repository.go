package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/acheileads/achei-leads-api/internal/domain"
	"github.com/acheileads/achei-leads-api/internal/domain/entity"
	"github.com/acheileads/achei-leads-api/internal/domain/repository"
)

var _ repository.CompanyRepository = (*CompanyRepo)(nil)

const companyColumns = `id, user_id, nome, cnpj, cnae, cnae_descricao, cidade, uf, endereco, cep,
	website, email, instagram, facebook, linkedin, resumo_ia, enriquecida_em,
	crm_stage_id, valor_negocio, previsao_fechamento, created_at, updated_at`

// CompanyRepo implementação de CompanyRepository (usável com pool ou tx).
type CompanyRepo struct {
	q Querier
}

// NewCompanyRepository constrói o adaptador. Passar pool ou tx (Querier).
func NewCompanyRepository(q Querier) *CompanyRepo {
	return &CompanyRepo{q: q}
}

// Create persiste uma nova empresa.
func (r *CompanyRepo) Create(c *entity.Company) error {
	query := `
		INSERT INTO companies (` + companyColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20, $21, $22)`
	_, err := r.q.Exec(context.Background(), query,
		c.ID, c.UserID, c.Nome, c.CNPJ, c.CNAE, c.CNAEDescricao, c.Cidade, c.UF, c.Endereco, c.CEP,
		c.Website, c.Email, c.Instagram, c.Facebook, c.LinkedIn, c.ResumoIA, c.EnriquecidaEm,
		c.CRMStageID, c.ValorNegocio, c.PrevisaoFechamento, c.CreatedAt, c.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert company: %w", err)
	}
	return nil
}

// GetByID busca uma empresa do usuário por ID.
func (r *CompanyRepo) GetByID(userID, id string) (*entity.Company, error) {
	query := `SELECT ` + companyColumns + ` FROM companies WHERE user_id = $1 AND id = $2`
	row := r.q.QueryRow(context.Background(), query, userID, id)
	c, err := scanCompany(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get company: %w", err)
	}
	return c, nil
}

// List lista empresas do usuário aplicando filtros e paginação.
// Devolve também o total sem paginação (para a UI exibir contagem).
func (r *CompanyRepo) List(userID string, f repository.CompanyFilter) ([]*entity.Company, int, error) {
	where := []string{"user_id = $1"}
	args := []any{userID}

	arg := func(v any) string {
		args = append(args, v)
		return fmt.Sprintf("$%d", len(args))
	}

	if len(f.IDs) > 0 {
		where = append(where, "id = ANY("+arg(f.IDs)+")")
	}
	if f.StageUnassigned {
		where = append(where, "crm_stage_id IS NULL")
	} else if f.StageID != nil {
		where = append(where, "crm_stage_id = "+arg(*f.StageID))
	}
	if f.Cidade != "" {
		where = append(where, "cidade ILIKE "+arg(f.Cidade))
	}
	if f.UF != "" {
		where = append(where, "uf = "+arg(strings.ToUpper(f.UF)))
	}
	if f.Enriquecida != nil {
		if *f.Enriquecida {
			where = append(where, "enriquecida_em IS NOT NULL")
		} else {
			where = append(where, "enriquecida_em IS NULL")
		}
	}
	if f.Busca != "" {
		p := arg("%" + f.Busca + "%")
		where = append(where, "(nome ILIKE "+p+" OR cnpj ILIKE "+p+")")
	}

	cond := strings.Join(where, " AND ")

	var total int
	countQuery := "SELECT COUNT(*) FROM companies WHERE " + cond
	if err := r.q.QueryRow(context.Background(), countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count companies: %w", err)
	}

	query := "SELECT " + companyColumns + " FROM companies WHERE " + cond + " ORDER BY created_at DESC"
	if f.Limit > 0 {
		query += " LIMIT " + arg(f.Limit) + " OFFSET " + arg(f.Offset)
	}

	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("list companies: %w", err)
	}
	defer rows.Close()

	var list []*entity.Company
	for rows.Next() {
		c, err := scanCompany(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("scan company: %w", err)
		}
		list = append(list, c)
	}
	return list, total, rows.Err()
}

// Update atualiza todos os campos mutáveis da empresa.
func (r *CompanyRepo) Update(c *entity.Company) error {
	query := `
		UPDATE companies SET
			nome = $3, cnpj = $4, cnae = $5, cnae_descricao = $6, cidade = $7, uf = $8,
			endereco = $9, cep = $10, website = $11, email = $12, instagram = $13,
			facebook = $14, linkedin = $15, resumo_ia = $16, enriquecida_em = $17,
			crm_stage_id = $18, valor_negocio = $19, previsao_fechamento = $20, updated_at = $21
		WHERE user_id = $1 AND id = $2`
	tag, err := r.q.Exec(context.Background(), query,
		c.UserID, c.ID, c.Nome, c.CNPJ, c.CNAE, c.CNAEDescricao, c.Cidade, c.UF,
		c.Endereco, c.CEP, c.Website, c.Email, c.Instagram,
		c.Facebook, c.LinkedIn, c.ResumoIA, c.EnriquecidaEm,
		c.CRMStageID, c.ValorNegocio, c.PrevisaoFechamento, c.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update company: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Delete exclui uma empresa do usuário (telefones são excluídos via PhoneRepo na mesma tx).
func (r *CompanyRepo) Delete(userID, id string) error {
	tag, err := r.q.Exec(context.Background(),
		`DELETE FROM companies WHERE user_id = $1 AND id = $2`, userID, id)
	if err != nil {
		return fmt.Errorf("delete company: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// ExistsByCNPJ verifica se a base do usuário já tem o CNPJ.
func (r *CompanyRepo) ExistsByCNPJ(userID, cnpj string) (bool, error) {
	var exists bool
	err := r.q.QueryRow(context.Background(),
		`SELECT EXISTS(SELECT 1 FROM companies WHERE user_id = $1 AND cnpj = $2)`,
		userID, cnpj).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("exists company by cnpj: %w", err)
	}
	return exists, nil
}

// SetStage move a empresa para outra etapa do funil (nil = sem etapa).
func (r *CompanyRepo) SetStage(userID, companyID string, stageID *string) error {
	tag, err := r.q.Exec(context.Background(),
		`UPDATE companies SET crm_stage_id = $3, updated_at = now() WHERE user_id = $1 AND id = $2`,
		userID, companyID, stageID)
	if err != nil {
		return fmt.Errorf("set company stage: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// ReassignStageToNull desvincula todas as empresas da etapa (antes de excluí-la).
func (r *CompanyRepo) ReassignStageToNull(userID, stageID string) error {
	_, err := r.q.Exec(context.Background(),
		`UPDATE companies SET crm_stage_id = NULL, updated_at = now() WHERE user_id = $1 AND crm_stage_id = $2`,
		userID, stageID)
	if err != nil {
		return fmt.Errorf("reassign stage: %w", err)
	}
	return nil
}

// StageAggregates devolve contagem e soma de valor por etapa (kanban).
// crm_stage_id NULL agrupa a coluna "sem etapa".
func (r *CompanyRepo) StageAggregates(userID string) ([]repository.StageAggregate, error) {
	query := `
		SELECT crm_stage_id, COUNT(*), COALESCE(SUM(valor_negocio), 0)
		FROM companies WHERE user_id = $1
		GROUP BY crm_stage_id`
	rows, err := r.q.Query(context.Background(), query, userID)
	if err != nil {
		return nil, fmt.Errorf("stage aggregates: %w", err)
	}
	defer rows.Close()

	var out []repository.StageAggregate
	for rows.Next() {
		var a repository.StageAggregate
		var total decimal.Decimal
		if err := rows.Scan(&a.StageID, &a.Count, &total); err != nil {
			return nil, fmt.Errorf("scan aggregate: %w", err)
		}
		a.ValorTotal = total
		out = append(out, a)
	}
	return out, rows.Err()
}

// scanCompany lê uma linha na ordem de companyColumns.
func scanCompany(row pgx.Row) (*entity.Company, error) {
	var c entity.Company
	err := row.Scan(
		&c.ID, &c.UserID, &c.Nome, &c.CNPJ, &c.CNAE, &c.CNAEDescricao, &c.Cidade, &c.UF, &c.Endereco, &c.CEP,
		&c.Website, &c.Email, &c.Instagram, &c.Facebook, &c.LinkedIn, &c.ResumoIA, &c.EnriquecidaEm,
		&c.CRMStageID, &c.ValorNegocio, &c.PrevisaoFechamento, &c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &c, nil
}
