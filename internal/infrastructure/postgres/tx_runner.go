package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/acheileads/achei-leads-api/internal/application/billing"
	"github.com/acheileads/achei-leads-api/internal/application/enrich"
	"github.com/acheileads/achei-leads-api/internal/application/usecase"
	"github.com/acheileads/achei-leads-api/internal/domain/repository"
)

// Verificação em tempo de compilação dos contratos de transação.
var _ usecase.ImportTxRunner = (*TxRunner)(nil)
var _ billing.PaymentTxRunner = (*TxRunner)(nil)
var _ enrich.CreditTxRunner = (*TxRunner)(nil)

// TxRunner executa callbacks dentro de uma transação PostgreSQL.
type TxRunner struct {
	pool *pgxpool.Pool
}

// NewTxRunner constrói o runner com o pool.
func NewTxRunner(pool *pgxpool.Pool) *TxRunner {
	return &TxRunner{pool: pool}
}

// RunImport inicia uma transação com os repos de crédito, empresa e telefone
// (consumo de 1 crédito + insert de empresa e telefones, tudo ou nada).
func (r *TxRunner) RunImport(ctx context.Context, fn func(
	creditRepo repository.CreditRepository,
	companyRepo repository.CompanyRepository,
	phoneRepo repository.PhoneRepository,
) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	creditRepo := NewCreditRepository(tx)
	companyRepo := NewCompanyRepository(tx)
	phoneRepo := NewPhoneRepository(tx)

	if err := fn(creditRepo, companyRepo, phoneRepo); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

// RunCredit inicia uma transação só com o repo de créditos
// (consumo ou estorno com o saldo sob lock de linha).
func (r *TxRunner) RunCredit(ctx context.Context, fn func(creditRepo repository.CreditRepository) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if err := fn(NewCreditRepository(tx)); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

// RunPayment inicia uma transação com os repos de crédito e pagamento
// (confirmação PIX: marcar pago + lançar compra + somar saldo, idempotente).
func (r *TxRunner) RunPayment(ctx context.Context, fn func(
	creditRepo repository.CreditRepository,
	paymentRepo repository.PaymentRepository,
) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	creditRepo := NewCreditRepository(tx)
	paymentRepo := NewPaymentRepository(tx)

	if err := fn(creditRepo, paymentRepo); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}
