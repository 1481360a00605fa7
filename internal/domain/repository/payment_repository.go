package repository

import "github.com/acheileads/achei-leads-api/internal/domain/entity"

// PaymentRepository define a porta de persistência para PixPayment.
type PaymentRepository interface {
	Create(payment *entity.PixPayment) error
	GetByID(userID, id string) (*entity.PixPayment, error)
	Update(payment *entity.PixPayment) error
	// ListPending devolve cobranças pendentes e não expiradas (retomada do watcher).
	ListPending() ([]*entity.PixPayment, error)
}
