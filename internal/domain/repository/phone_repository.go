package repository

import "github.com/acheileads/achei-leads-api/internal/domain/entity"

// PhoneRepository define a porta de persistência para Phone.
type PhoneRepository interface {
	Create(phone *entity.Phone) error
	GetByID(id string) (*entity.Phone, error)
	ListByCompany(companyID string) ([]*entity.Phone, error)
	// ListByCompanies devolve os telefones agrupados por empresa (export CSV/PDF).
	ListByCompanies(companyIDs []string) (map[string][]*entity.Phone, error)
	Update(phone *entity.Phone) error
	Delete(id string) error
	// DeleteByCompany exclui os telefones em cascata com a empresa (mesma tx).
	DeleteByCompany(companyID string) error
}
