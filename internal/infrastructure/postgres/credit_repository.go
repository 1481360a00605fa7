package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/acheileads/achei-leads-api/internal/domain/entity"
	"github.com/acheileads/achei-leads-api/internal/domain/repository"
)

var _ repository.CreditRepository = (*CreditRepo)(nil)
var _ repository.CreditPackageRepository = (*CreditPackageRepo)(nil)

// CreditRepo implementação de CreditRepository (usável com pool ou tx).
type CreditRepo struct {
	q Querier
}

// NewCreditRepository constrói o adaptador. Passar pool ou tx (Querier).
func NewCreditRepository(q Querier) *CreditRepo {
	return &CreditRepo{q: q}
}

// GetBalance devolve o saldo corrente (0 se o usuário ainda não tem linha).
func (r *CreditRepo) GetBalance(userID string) (int, error) {
	var saldo int
	err := r.q.QueryRow(context.Background(),
		`SELECT saldo FROM user_credits WHERE user_id = $1`, userID).Scan(&saldo)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, nil
		}
		return 0, fmt.Errorf("get balance: %w", err)
	}
	return saldo, nil
}

// GetBalanceForUpdate lê o saldo com lock de linha. Só faz sentido dentro de uma tx.
func (r *CreditRepo) GetBalanceForUpdate(userID string) (int, error) {
	var saldo int
	err := r.q.QueryRow(context.Background(),
		`SELECT saldo FROM user_credits WHERE user_id = $1 FOR UPDATE`, userID).Scan(&saldo)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, nil
		}
		return 0, fmt.Errorf("get balance for update: %w", err)
	}
	return saldo, nil
}

// AdjustBalance soma delta ao saldo (upsert: cria a linha se não existir).
func (r *CreditRepo) AdjustBalance(userID string, delta int) error {
	query := `
		INSERT INTO user_credits (user_id, saldo, updated_at) VALUES ($1, $2, now())
		ON CONFLICT (user_id) DO UPDATE SET saldo = user_credits.saldo + $2, updated_at = now()`
	_, err := r.q.Exec(context.Background(), query, userID, delta)
	if err != nil {
		return fmt.Errorf("adjust balance: %w", err)
	}
	return nil
}

// AddTransaction insere um lançamento imutável no extrato.
func (r *CreditRepo) AddTransaction(t *entity.CreditTransaction) error {
	query := `
		INSERT INTO credit_transactions (id, user_id, tipo, quantidade, descricao, referencia, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.q.Exec(context.Background(), query,
		t.ID, t.UserID, t.Tipo, t.Quantidade, t.Descricao, t.Referencia, t.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert credit transaction: %w", err)
	}
	return nil
}

// ListTransactions lista o extrato do usuário, mais recentes primeiro.
func (r *CreditRepo) ListTransactions(userID string, limit, offset int) ([]*entity.CreditTransaction, error) {
	query := `
		SELECT id, user_id, tipo, quantidade, descricao, referencia, created_at
		FROM credit_transactions WHERE user_id = $1 ORDER BY created_at DESC LIMIT $2 OFFSET $3`
	rows, err := r.q.Query(context.Background(), query, userID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list credit transactions: %w", err)
	}
	defer rows.Close()

	var list []*entity.CreditTransaction
	for rows.Next() {
		var t entity.CreditTransaction
		if err := rows.Scan(&t.ID, &t.UserID, &t.Tipo, &t.Quantidade, &t.Descricao, &t.Referencia, &t.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan credit transaction: %w", err)
		}
		list = append(list, &t)
	}
	return list, rows.Err()
}

// CreditPackageRepo implementação de CreditPackageRepository.
type CreditPackageRepo struct {
	q Querier
}

// NewCreditPackageRepository constrói o adaptador. Passar pool ou tx (Querier).
func NewCreditPackageRepository(q Querier) *CreditPackageRepo {
	return &CreditPackageRepo{q: q}
}

// ListActive lista os pacotes ativos, mais baratos primeiro.
func (r *CreditPackageRepo) ListActive() ([]*entity.CreditPackage, error) {
	query := `
		SELECT id, nome, creditos, preco, ativo, created_at
		FROM credit_packages WHERE ativo = true ORDER BY preco`
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list packages: %w", err)
	}
	defer rows.Close()

	var list []*entity.CreditPackage
	for rows.Next() {
		var p entity.CreditPackage
		if err := rows.Scan(&p.ID, &p.Nome, &p.Creditos, &p.Preco, &p.Ativo, &p.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan package: %w", err)
		}
		list = append(list, &p)
	}
	return list, rows.Err()
}

// GetByID busca um pacote por ID.
func (r *CreditPackageRepo) GetByID(id string) (*entity.CreditPackage, error) {
	query := `
		SELECT id, nome, creditos, preco, ativo, created_at
		FROM credit_packages WHERE id = $1`
	var p entity.CreditPackage
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&p.ID, &p.Nome, &p.Creditos, &p.Preco, &p.Ativo, &p.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get package: %w", err)
	}
	return &p, nil
}

// Upsert insere ou atualiza pelo nome (seeder).
func (r *CreditPackageRepo) Upsert(p *entity.CreditPackage) error {
	query := `
		INSERT INTO credit_packages (id, nome, creditos, preco, ativo, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (nome) DO UPDATE SET creditos = $3, preco = $4, ativo = $5`
	_, err := r.q.Exec(context.Background(), query,
		p.ID, p.Nome, p.Creditos, p.Preco, p.Ativo, p.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("upsert package: %w", err)
	}
	return nil
}
