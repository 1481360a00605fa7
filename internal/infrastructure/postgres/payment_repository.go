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

var _ repository.PaymentRepository = (*PaymentRepo)(nil)

const paymentColumns = `id, user_id, package_id, provider_id, brcode, qrcode_base64, valor, creditos,
	status, creditado, expira_em, created_at, updated_at`

// PaymentRepo implementação de PaymentRepository (usável com pool ou tx).
type PaymentRepo struct {
	q Querier
}

// NewPaymentRepository constrói o adaptador. Passar pool ou tx (Querier).
func NewPaymentRepository(q Querier) *PaymentRepo {
	return &PaymentRepo{q: q}
}

// Create persiste uma nova cobrança PIX.
func (r *PaymentRepo) Create(p *entity.PixPayment) error {
	query := `
		INSERT INTO pix_payments (` + paymentColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`
	_, err := r.q.Exec(context.Background(), query,
		p.ID, p.UserID, p.PackageID, p.ProviderID, p.BRCode, p.QRCodeBase64, p.Valor, p.Creditos,
		p.Status, p.Creditado, p.ExpiraEm, p.CreatedAt, p.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert pix payment: %w", err)
	}
	return nil
}

// GetByID busca uma cobrança do usuário por ID.
func (r *PaymentRepo) GetByID(userID, id string) (*entity.PixPayment, error) {
	query := `SELECT ` + paymentColumns + ` FROM pix_payments WHERE user_id = $1 AND id = $2`
	var p entity.PixPayment
	err := r.q.QueryRow(context.Background(), query, userID, id).Scan(
		&p.ID, &p.UserID, &p.PackageID, &p.ProviderID, &p.BRCode, &p.QRCodeBase64, &p.Valor, &p.Creditos,
		&p.Status, &p.Creditado, &p.ExpiraEm, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get pix payment: %w", err)
	}
	return &p, nil
}

// Update atualiza status, flag de crédito e updated_at.
func (r *PaymentRepo) Update(p *entity.PixPayment) error {
	query := `
		UPDATE pix_payments SET status = $2, creditado = $3, updated_at = $4
		WHERE id = $1`
	tag, err := r.q.Exec(context.Background(), query, p.ID, p.Status, p.Creditado, p.UpdatedAt)
	if err != nil {
		return fmt.Errorf("update pix payment: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// ListPending devolve cobranças pendentes e não expiradas (retomada do watcher no boot).
func (r *PaymentRepo) ListPending() ([]*entity.PixPayment, error) {
	query := `SELECT ` + paymentColumns + ` FROM pix_payments WHERE status = $1 AND expira_em > now()`
	rows, err := r.q.Query(context.Background(), query, entity.PixStatusPendente)
	if err != nil {
		return nil, fmt.Errorf("list pending payments: %w", err)
	}
	defer rows.Close()

	var list []*entity.PixPayment
	for rows.Next() {
		var p entity.PixPayment
		if err := rows.Scan(
			&p.ID, &p.UserID, &p.PackageID, &p.ProviderID, &p.BRCode, &p.QRCodeBase64, &p.Valor, &p.Creditos,
			&p.Status, &p.Creditado, &p.ExpiraEm, &p.CreatedAt, &p.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan pix payment: %w", err)
		}
		list = append(list, &p)
	}
	return list, rows.Err()
}
